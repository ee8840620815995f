package domain

// TransformInput is what a transpiler receives for a single module.
type TransformInput struct {
	// Source is the raw module text, after pragma insertion.
	Source string
	// Filename identifies the module in diagnostics and source maps.
	Filename string
	// Options are passed through to the transpiler untouched.
	Options map[string]any
	// SourceMap asks the transpiler to return a source map alongside the code.
	SourceMap bool
}

// TransformResult is the output of a transpiler.
type TransformResult struct {
	Code string
	// SourceMap holds the serialized (JSON) source map, if the transpiler produced one.
	SourceMap []byte
}

// CoverageOptions configures code coverage instrumentation.
type CoverageOptions struct {
	// Script defines the instrumenter.
	Script string
	// Variable is the global instrumented code reports into.
	Variable string
}
