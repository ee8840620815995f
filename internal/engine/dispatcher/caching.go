package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Transpiler = (*CachingTranspiler)(nil)

// CachingTranspiler serves repeated transforms of identical input from a
// persistent cache.
type CachingTranspiler struct {
	kind    domain.Transformer
	version string
	next    ports.Transpiler
	cache   ports.TransformCache
	logger  ports.Logger
	now     func() time.Time
}

// NewCachingTranspiler wraps next. Results are keyed by kind, the version of
// next when it implements ports.Versioned, and the full transform input.
func NewCachingTranspiler(
	kind domain.Transformer,
	next ports.Transpiler,
	cache ports.TransformCache,
	logger ports.Logger,
) *CachingTranspiler {
	var version string
	if v, ok := next.(ports.Versioned); ok {
		version = v.Version()
	}
	return &CachingTranspiler{
		kind:    kind,
		version: version,
		next:    next,
		cache:   cache,
		logger:  logger,
		now:     time.Now,
	}
}

// Transform returns the cached result for in, or runs the wrapped transpiler
// and stores its result. Cache write failures are logged and otherwise ignored.
func (c *CachingTranspiler) Transform(ctx context.Context, in domain.TransformInput) (domain.TransformResult, error) {
	key, err := TransformKey(c.kind, c.version, in)
	if err != nil {
		return domain.TransformResult{}, err
	}

	entry, err := c.cache.Get(key)
	if err != nil {
		return domain.TransformResult{}, zerr.With(zerr.Wrap(err, "failed to read transform cache"), "key", key)
	}
	if entry != nil {
		c.logger.Info("transform cache hit: " + in.Filename)
		if v, ok := ports.VertexFromContext(ctx); ok {
			v.Cached()
		}
		return domain.TransformResult{Code: entry.Code, SourceMap: entry.SourceMap}, nil
	}

	result, err := c.next.Transform(ctx, in)
	if err != nil {
		return domain.TransformResult{}, err
	}

	if err := c.cache.Put(domain.CachedTransform{
		Key:       key,
		Code:      result.Code,
		SourceMap: result.SourceMap,
		Timestamp: c.now(),
	}); err != nil {
		c.logger.Warn(fmt.Sprintf("failed to store transform of %s: %v", in.Filename, err))
	}
	return result, nil
}

// TransformKey computes the cache key of a transform by a transpiler of the
// given kind and version.
func TransformKey(kind domain.Transformer, version string, in domain.TransformInput) (string, error) {
	// encoding/json sorts map keys, so equal options hash equally.
	opts, err := json.Marshal(in.Options)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to encode transform options"), "file", in.Filename)
	}

	h := xxhash.New()
	for _, part := range []string{string(kind), version, in.Filename, in.Source, string(opts)} {
		_, _ = h.WriteString(part)
		_, _ = h.Write([]byte{0})
	}
	if in.SourceMap {
		_, _ = h.Write([]byte{1})
	}
	return fmt.Sprintf("%016x", h.Sum64()), nil
}

// cachingProvider wraps every acquired transpiler in a CachingTranspiler.
// Transpilers without a version are keyed by their script location.
type cachingProvider struct {
	next   ports.TranspilerProvider
	cache  ports.TransformCache
	logger ports.Logger
}

func (p *cachingProvider) Acquire(ctx context.Context, kind domain.Transformer, script string) (ports.Transpiler, error) {
	t, err := p.next.Acquire(ctx, kind, script)
	if err != nil {
		return nil, err
	}
	c := NewCachingTranspiler(kind, t, p.cache, p.logger)
	if c.version == "" {
		c.version = script
	}
	return c, nil
}
