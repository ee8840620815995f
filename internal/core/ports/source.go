// Package ports defines the core interfaces for the application.
package ports

import "context"

// SourceReader reads module sources synchronously.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type SourceReader interface {
	// ReadFile returns the UTF-8 content of the file at path.
	ReadFile(path string) (string, error)
}

// TextLoader fetches module sources from a browser location.
type TextLoader interface {
	// Load returns the text found at url.
	Load(ctx context.Context, url string) (string, error)
}
