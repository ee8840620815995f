package esbuild

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Bundler = (*Bundler)(nil)

// Bundler links modules into a single IIFE script with esbuild.
type Bundler struct {
	target api.Target
}

// NewBundler creates a Bundler emitting ES2015 output.
func NewBundler() *Bundler {
	return &Bundler{target: api.ES2015}
}

// Bundle implements ports.Bundler.
func (b *Bundler) Bundle(ctx context.Context, root, entry, ext string, compile ports.CompileFunc) ([]byte, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve root"), "root", root)
	}

	result := api.Build(api.BuildOptions{
		EntryPoints:   []string{Prefix + entry},
		AbsWorkingDir: absRoot,
		Bundle:        true,
		Write:         false,
		Format:        api.FormatIIFE,
		Target:        b.target,
		LogLevel:      api.LogLevelSilent,
		Plugins:       []api.Plugin{Plugin(ctx, absRoot, ext, compile)},
	})

	if len(result.Errors) > 0 {
		texts := make([]string, 0, len(result.Errors))
		for _, msg := range result.Errors {
			texts = append(texts, msg.Text)
		}
		err := zerr.With(zerr.New(strings.Join(texts, "; ")), "entry", entry)
		return nil, zerr.Wrap(err, "bundle failed")
	}
	if len(result.OutputFiles) == 0 {
		return nil, zerr.With(zerr.New("bundle produced no output"), "entry", entry)
	}
	return result.OutputFiles[0].Contents, nil
}
