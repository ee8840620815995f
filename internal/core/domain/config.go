package domain

import (
	"maps"

	"go.trai.ch/zerr"
)

const (
	// DefaultFileExtension is appended to module names that do not carry it.
	DefaultFileExtension = ".jsx"
	// DefaultPluginName prefixes module names written into a bundle.
	DefaultPluginName = "jsx"
)

// Runtime describes the environment the host loader runs in.
type Runtime string

const (
	// RuntimeServer reads sources from disk and uses the native transpiler.
	RuntimeServer Runtime = "server"
	// RuntimeBrowser fetches sources as text and uses a script-hosted transformer.
	RuntimeBrowser Runtime = "browser"
)

// ParseRuntime converts a configuration string to a Runtime.
// The empty string maps to RuntimeServer.
func ParseRuntime(s string) (Runtime, error) {
	switch Runtime(s) {
	case "", RuntimeServer:
		return RuntimeServer, nil
	case RuntimeBrowser:
		return RuntimeBrowser, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownRuntime, "invalid runtime"), "runtime", s)
	}
}

// Transformer identifies a transform strategy.
type Transformer string

const (
	// TransformerNative is the synchronous, in-process transpiler used on servers.
	TransformerNative Transformer = "native"
	// TransformerJSX is the script-hosted JSXTransformer.
	TransformerJSX Transformer = "JSXTransformer"
	// TransformerBabel is the script-hosted Babel standalone build.
	TransformerBabel Transformer = "babel"
)

// ParseTransformer converts a configuration string to a browser Transformer.
// The empty string maps to TransformerJSX.
func ParseTransformer(s string) (Transformer, error) {
	switch Transformer(s) {
	case "", TransformerJSX:
		return TransformerJSX, nil
	case TransformerBabel:
		return TransformerBabel, nil
	default:
		return "", zerr.With(zerr.Wrap(ErrUnknownTransformer, "invalid transformer"), "transformer", s)
	}
}

// Config is the per-request configuration bag.
type Config struct {
	// Root is the directory module names are resolved against on the server runtime.
	Root string
	// FileExtension overrides the JSX suffix. Empty means DefaultFileExtension.
	FileExtension string
	// TransformOptions are handed to the native transpiler and to JSXTransformer.
	TransformOptions map[string]any
	// BabelOptions are handed to Babel.
	BabelOptions map[string]any
	// UsePragma enables insertion of the legacy JSX pragma comment.
	UsePragma bool
	// InlineSourceMap requests a data-URL source map instead of a sourceURL comment.
	InlineSourceMap bool
	// Transformer selects the browser transformer.
	Transformer Transformer
	// Runtime selects between the native and the browser strategies.
	Runtime Runtime
	// IsBuild marks a batch build pass; compiled text is recorded in the build session.
	IsBuild bool
	// BaseURL prefixes module names to build browser locations.
	BaseURL string

	// Scripts maps a browser transformer to the script that defines it.
	Scripts map[Transformer]string
	// Coverage enables instrumentation of native output.
	Coverage bool
	// CoverageScript is the script that defines the coverage instrumenter.
	CoverageScript string
	// CoverageVariable names the global the instrumented code reports into.
	CoverageVariable string

	// CacheFile is the persistent transform cache. Empty disables it.
	CacheFile string
	// Modules lists the modules compiled by a build pass.
	Modules []string
	// Output is the bundle destination of a build pass.
	Output string
	// PluginName prefixes module names written into a bundle.
	PluginName string
}

// Extension returns the configured JSX suffix.
func (c Config) Extension() string {
	if c.FileExtension == "" {
		return DefaultFileExtension
	}
	return c.FileExtension
}

// Plugin returns the configured plugin name.
func (c Config) Plugin() string {
	if c.PluginName == "" {
		return DefaultPluginName
	}
	return c.PluginName
}

// NativeOptions returns a copy of the transform options, defaulting to harmony mode.
func (c Config) NativeOptions() map[string]any {
	if len(c.TransformOptions) == 0 {
		return map[string]any{"harmony": true}
	}
	return maps.Clone(c.TransformOptions)
}

// WantsInlineSourceMap reports whether a data-URL source map was requested,
// either directly or through the transform options.
func (c Config) WantsInlineSourceMap() bool {
	if c.InlineSourceMap {
		return true
	}
	v, _ := c.TransformOptions["inlineSourceMap"].(bool)
	return v
}

// SelectTransformer picks the strategy for a request.
// The server runtime always uses the native transpiler.
func SelectTransformer(c Config) Transformer {
	if c.Runtime == "" || c.Runtime == RuntimeServer {
		return TransformerNative
	}
	if c.Transformer == "" {
		return TransformerJSX
	}
	return c.Transformer
}

// WithDefaults returns a copy of c with every unset selector filled in.
func (c Config) WithDefaults() Config {
	if c.FileExtension == "" {
		c.FileExtension = DefaultFileExtension
	}
	if c.PluginName == "" {
		c.PluginName = DefaultPluginName
	}
	if c.Runtime == "" {
		c.Runtime = RuntimeServer
	}
	if c.Transformer == "" {
		c.Transformer = TransformerJSX
	}
	return c
}
