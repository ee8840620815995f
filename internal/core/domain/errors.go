package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceRead is returned when the raw source text of a module cannot be read.
	ErrSourceRead = zerr.New("source read failed")

	// ErrTransformFailed is returned when a transpiler rejects a module.
	ErrTransformFailed = zerr.New("transform failed")

	// ErrAcquireFailed is returned when a transpiler or text collaborator cannot be obtained.
	ErrAcquireFailed = zerr.New("collaborator acquisition failed")

	// ErrUnknownTransformer is returned when no strategy is registered for the selected transformer.
	ErrUnknownTransformer = zerr.New("unknown transformer")

	// ErrUnknownRuntime is returned when the configured runtime is neither server nor browser.
	ErrUnknownRuntime = zerr.New("unknown runtime")

	// ErrInvalidSourceMap is returned when a transpiler produced a source map that cannot be decoded.
	ErrInvalidSourceMap = zerr.New("invalid source map")

	// ErrNoModulesSpecified is returned when a build is requested without any module.
	ErrNoModulesSpecified = zerr.New("no modules specified")

	// ErrBuildFailed is returned when at least one module of a build pass failed to load.
	ErrBuildFailed = zerr.New("build failed")
)
