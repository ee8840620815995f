package dispatcher

import (
	"context"
	"maps"

	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

var _ Strategy = (*BrowserStrategy)(nil)

// BrowserStrategy fetches sources as text and transforms them with a
// script-hosted transformer.
type BrowserStrategy struct {
	kind     domain.Transformer
	text     ports.TextLoader
	provider ports.TranspilerProvider
}

// NewBrowserStrategy creates a strategy for the given browser transformer.
func NewBrowserStrategy(kind domain.Transformer, text ports.TextLoader, provider ports.TranspilerProvider) *BrowserStrategy {
	return &BrowserStrategy{
		kind:     kind,
		text:     text,
		provider: provider,
	}
}

// Compile acquires the transformer and the source text concurrently, then
// transforms the text and annotates the output with its location.
//
// The text is fetched from the location the resolver maps name to; the
// annotation names BaseURL + name.
//
// A transform failure aborts the load; no partial text is delivered.
func (s *BrowserStrategy) Compile(ctx context.Context, name string, req Request) (string, error) {
	cfg := req.Config
	location := req.Resolver.ToURL(name)
	url := cfg.BaseURL + name

	var (
		transpiler ports.Transpiler
		content    string
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := s.provider.Acquire(gctx, s.kind, cfg.Scripts[s.kind])
		if err != nil {
			return failure(domain.ErrAcquireFailed, err, "failed to acquire "+string(s.kind), name)
		}
		transpiler = t
		return nil
	})
	g.Go(func() error {
		c, err := s.text.Load(gctx, location)
		if err != nil {
			return failure(domain.ErrSourceRead, err, "error while fetching "+location, name)
		}
		content = c
		return nil
	})
	if err := g.Wait(); err != nil {
		return "", err
	}

	inline := cfg.WantsInlineSourceMap()
	result, err := transpiler.Transform(ctx, s.input(name, content, cfg, inline))
	if err != nil {
		return "", failure(domain.ErrTransformFailed, err, "error while running "+string(s.kind)+" on "+name, name)
	}

	text, err := domain.Annotate(result, name, url, inline)
	if err != nil {
		return "", failure(domain.ErrTransformFailed, err, "error while annotating "+name, name)
	}
	return text, nil
}

func (s *BrowserStrategy) input(name, content string, cfg domain.Config, inline bool) domain.TransformInput {
	in := domain.TransformInput{
		Source:    domain.EnsurePragma(content, cfg.UsePragma),
		Filename:  name,
		SourceMap: inline,
	}

	switch s.kind {
	case domain.TransformerBabel:
		opts := maps.Clone(cfg.BabelOptions)
		if opts == nil {
			opts = make(map[string]any)
		}
		opts["filename"] = name
		if _, ok := opts["sourceMaps"]; inline && !ok {
			opts["sourceMaps"] = true
		}
		in.Options = opts
	default:
		opts := cfg.NativeOptions()
		if inline {
			opts["sourceMap"] = true
		}
		in.Options = opts
	}
	return in
}
