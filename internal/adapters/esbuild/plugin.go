package esbuild

import (
	"context"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	// Namespace holds every module loaded through the plugin.
	Namespace = "jsx"
	// Prefix marks a bare module name, as in "jsx!Widget".
	Prefix = "jsx!"
)

// Plugin exposes module loading to an esbuild build. Imports ending in ext,
// or carrying the jsx! prefix, are resolved to module names below root and
// compiled through compile.
func Plugin(ctx context.Context, root, ext string, compile ports.CompileFunc) api.Plugin {
	filter := "^" + regexp.QuoteMeta(Prefix) + "|" + regexp.QuoteMeta(ext) + "$"

	return api.Plugin{
		Name: Namespace,
		Setup: func(build api.PluginBuild) {
			build.OnResolve(api.OnResolveOptions{Filter: filter},
				func(args api.OnResolveArgs) (api.OnResolveResult, error) {
					name, err := moduleName(root, args)
					if err != nil {
						return api.OnResolveResult{}, err
					}
					return api.OnResolveResult{Path: name, Namespace: Namespace}, nil
				})

			build.OnLoad(api.OnLoadOptions{Filter: `.*`, Namespace: Namespace},
				func(args api.OnLoadArgs) (api.OnLoadResult, error) {
					text, err := compile(ctx, args.Path)
					if err != nil {
						return api.OnLoadResult{}, err
					}
					return api.OnLoadResult{
						Contents:   &text,
						Loader:     api.LoaderJS,
						ResolveDir: filepath.Join(root, filepath.FromSlash(path.Dir(args.Path))),
					}, nil
				})
		},
	}
}

// moduleName maps an import to a slash separated module name relative to root.
func moduleName(root string, args api.OnResolveArgs) (string, error) {
	if name, ok := strings.CutPrefix(args.Path, Prefix); ok {
		return name, nil
	}

	target := filepath.FromSlash(args.Path)
	if !filepath.IsAbs(target) {
		target = filepath.Join(args.ResolveDir, target)
	}
	rel, err := filepath.Rel(root, target)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", zerr.With(zerr.New("import escapes module root"), "path", args.Path)
	}
	return filepath.ToSlash(rel), nil
}
