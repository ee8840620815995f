package ports

import "io"

// ModuleWriter emits named module blocks into a bundle.
//
//go:generate go run go.uber.org/mock/mockgen -source=writer.go -destination=mocks/mock_writer.go -package=mocks
type ModuleWriter interface {
	// AsModule writes text as the module called name.
	AsModule(name, text string) error
}

// LoadCallback receives the outcome of a single module load.
// Exactly one of its methods is called per load.
type LoadCallback interface {
	// FromText delivers the compiled module text.
	FromText(text string)
	// Error reports why the module could not be loaded.
	Error(err error)
}

// ModuleWriterFactory creates a ModuleWriter emitting into w.
type ModuleWriterFactory func(w io.Writer) ModuleWriter
