package ports

import (
	"context"

	"go.trai.ch/jsxload/internal/core/domain"
)

// Transpiler rewrites JSX source into plain JavaScript.
//
//go:generate go run go.uber.org/mock/mockgen -source=transpiler.go -destination=mocks/mock_transpiler.go -package=mocks
type Transpiler interface {
	// Transform converts the input. Errors describe the rejected source.
	Transform(ctx context.Context, in domain.TransformInput) (domain.TransformResult, error)
}

// Versioned is implemented by transpilers whose output depends on a
// replaceable implementation, such as a loaded script.
type Versioned interface {
	// Version changes whenever the implementation does.
	Version() string
}

// TranspilerProvider hands out script-hosted transpilers.
type TranspilerProvider interface {
	// Acquire returns the transpiler of the given kind, defined by script.
	// Implementations load each script at most once.
	Acquire(ctx context.Context, kind domain.Transformer, script string) (Transpiler, error)
}

// Instrumenter rewrites compiled code to collect coverage.
type Instrumenter interface {
	// Instrument returns code instrumented to report into variable.
	// An empty variable lets the implementation pick one.
	Instrument(ctx context.Context, code, path string, opts domain.CoverageOptions) (string, error)
}
