package dispatcher

import (
	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine holds the collaborators shared by every dispatcher and assembles a
// Dispatcher for a given configuration.
type Engine struct {
	logger       ports.Logger
	reader       ports.SourceReader
	native       ports.Transpiler
	text         ports.TextLoader
	provider     ports.TranspilerProvider
	instrumenter ports.Instrumenter
	openCache    ports.TransformCacheFactory
}

// NewEngine creates an Engine. openCache may be nil to disable persistent caching.
func NewEngine(
	logger ports.Logger,
	reader ports.SourceReader,
	native ports.Transpiler,
	text ports.TextLoader,
	provider ports.TranspilerProvider,
	instrumenter ports.Instrumenter,
	openCache ports.TransformCacheFactory,
) *Engine {
	return &Engine{
		logger:       logger,
		reader:       reader,
		native:       native,
		text:         text,
		provider:     provider,
		instrumenter: instrumenter,
		openCache:    openCache,
	}
}

// Dispatcher returns a Dispatcher with one strategy per transformer.
func (e *Engine) Dispatcher(cfg domain.Config) (*Dispatcher, error) {
	native := e.native
	var provider ports.TranspilerProvider = e.provider

	if cfg.CacheFile != "" && e.openCache != nil {
		cache, err := e.openCache(cfg.CacheFile)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to open transform cache"), "path", cfg.CacheFile)
		}
		native = NewCachingTranspiler(domain.TransformerNative, native, cache, e.logger)
		provider = &cachingProvider{next: provider, cache: cache, logger: e.logger}
	}

	var instrumenter ports.Instrumenter
	if cfg.Coverage {
		instrumenter = e.instrumenter
	}

	return New(e.logger, map[domain.Transformer]Strategy{
		domain.TransformerNative: NewNativeStrategy(e.reader, native, instrumenter),
		domain.TransformerJSX:    NewBrowserStrategy(domain.TransformerJSX, e.text, provider),
		domain.TransformerBabel:  NewBrowserStrategy(domain.TransformerBabel, e.text, provider),
	}), nil
}
