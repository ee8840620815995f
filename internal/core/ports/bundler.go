package ports

import "context"

// CompileFunc compiles the module called name into executable text.
type CompileFunc func(ctx context.Context, name string) (string, error)

// Bundler links a module and everything it imports into a single script.
//
//go:generate go run go.uber.org/mock/mockgen -source=bundler.go -destination=mocks/mock_bundler.go -package=mocks
type Bundler interface {
	// Bundle links entry, a module name below root. Modules ending in ext are
	// compiled through compile; everything else is left to the bundler.
	Bundle(ctx context.Context, root, entry, ext string, compile CompileFunc) ([]byte, error)
}
