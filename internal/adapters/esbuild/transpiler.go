// Package esbuild adapts the esbuild Go API as the native JSX transpiler and
// exposes module loading to esbuild builds.
package esbuild

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/jsxload/internal/core/domain"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Transpiler = (*Transpiler)(nil)

var targets = map[string]api.Target{
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"esnext": api.ESNext,
}

var jsxModes = map[string]api.JSX{
	"transform": api.JSXTransform,
	"preserve":  api.JSXPreserve,
	"automatic": api.JSXAutomatic,
}

// Transpiler transforms JSX in-process with esbuild.
type Transpiler struct{}

// NewTranspiler creates a new Transpiler.
func NewTranspiler() *Transpiler {
	return &Transpiler{}
}

// Transform converts the JSX in in.Source to JavaScript.
//
// Recognised options: jsxFactory, jsxFragment, jsx, jsxImportSource, target,
// minify, stripTypes and sourceMap. Other keys, such as harmony, are accepted
// and ignored since esbuild always parses modern syntax.
func (t *Transpiler) Transform(ctx context.Context, in domain.TransformInput) (domain.TransformResult, error) {
	if err := ctx.Err(); err != nil {
		return domain.TransformResult{}, err
	}

	opts, err := transformOptions(in)
	if err != nil {
		return domain.TransformResult{}, err
	}

	result := api.Transform(in.Source, opts)
	if len(result.Errors) > 0 {
		return domain.TransformResult{}, messageError(in.Filename, result.Errors[0])
	}

	out := domain.TransformResult{Code: string(result.Code)}
	if opts.Sourcemap == api.SourceMapExternal {
		out.SourceMap = result.Map
	}
	return out, nil
}

func transformOptions(in domain.TransformInput) (api.TransformOptions, error) {
	opts := api.TransformOptions{
		Loader:     api.LoaderJSX,
		Sourcefile: in.Filename,
		LogLevel:   api.LogLevelSilent,
	}

	if in.SourceMap || boolOption(in.Options, "sourceMap") {
		opts.Sourcemap = api.SourceMapExternal
	}
	if boolOption(in.Options, "stripTypes") {
		opts.Loader = api.LoaderTSX
	}
	if boolOption(in.Options, "minify") {
		opts.MinifyWhitespace = true
		opts.MinifyIdentifiers = true
		opts.MinifySyntax = true
	}

	opts.JSXFactory = stringOption(in.Options, "jsxFactory")
	opts.JSXFragment = stringOption(in.Options, "jsxFragment")
	opts.JSXImportSource = stringOption(in.Options, "jsxImportSource")

	if mode := stringOption(in.Options, "jsx"); mode != "" {
		jsx, ok := jsxModes[mode]
		if !ok {
			return opts, zerr.With(zerr.New("unsupported jsx mode"), "jsx", mode)
		}
		opts.JSX = jsx
	}

	if name := stringOption(in.Options, "target"); name != "" {
		target, ok := targets[strings.ToLower(name)]
		if !ok {
			return opts, zerr.With(zerr.New("unsupported target"), "target", name)
		}
		opts.Target = target
	}
	return opts, nil
}

func messageError(filename string, msg api.Message) error {
	err := zerr.With(zerr.New(msg.Text), "file", filename)
	if msg.Location != nil {
		err = zerr.With(err, "line", msg.Location.Line)
		err = zerr.With(err, "column", msg.Location.Column)
		return zerr.Wrap(err, fmt.Sprintf("%s:%d:%d", filename, msg.Location.Line, msg.Location.Column))
	}
	return err
}

func boolOption(opts map[string]any, key string) bool {
	v, _ := opts[key].(bool)
	return v
}

func stringOption(opts map[string]any, key string) string {
	v, _ := opts[key].(string)
	return v
}
