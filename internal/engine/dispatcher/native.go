package dispatcher

import (
	"context"
	"errors"

	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ Strategy = (*NativeStrategy)(nil)

// NativeStrategy reads sources from disk and transforms them in-process.
type NativeStrategy struct {
	reader       ports.SourceReader
	transpiler   ports.Transpiler
	instrumenter ports.Instrumenter
}

// NewNativeStrategy creates the server-side strategy. instrumenter may be nil,
// in which case coverage requests are ignored.
func NewNativeStrategy(
	reader ports.SourceReader,
	transpiler ports.Transpiler,
	instrumenter ports.Instrumenter,
) *NativeStrategy {
	return &NativeStrategy{
		reader:       reader,
		transpiler:   transpiler,
		instrumenter: instrumenter,
	}
}

// Compile reads the module synchronously and transforms it.
func (s *NativeStrategy) Compile(ctx context.Context, name string, req Request) (string, error) {
	cfg := req.Config
	path := req.Resolver.ToURL(name)

	content, err := s.reader.ReadFile(path)
	if err != nil {
		return "", failure(domain.ErrSourceRead, err, "error while reading "+path, path)
	}

	result, err := s.transpiler.Transform(ctx, domain.TransformInput{
		Source:   domain.EnsurePragma(content, cfg.UsePragma),
		Filename: path,
		Options:  cfg.NativeOptions(),
	})
	if err != nil {
		return "", failure(domain.ErrTransformFailed, err, "error while running transformer on "+path, path)
	}

	code := result.Code
	if cfg.Coverage && s.instrumenter != nil {
		code, err = s.instrumenter.Instrument(ctx, code, path, domain.CoverageOptions{
			Script:   cfg.CoverageScript,
			Variable: cfg.CoverageVariable,
		})
		if err != nil {
			return "", failure(domain.ErrTransformFailed, err, "error while instrumenting "+path, path)
		}
	}
	return code, nil
}

// failure classifies err with kind and wraps it with a message naming the
// failing location.
func failure(kind, err error, msg, path string) error {
	return zerr.With(zerr.Wrap(errors.Join(kind, err), "jsx: "+msg), "path", path)
}
