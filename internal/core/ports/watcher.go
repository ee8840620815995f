package ports

import (
	"context"
	"iter"
)

// WatchOp identifies the kind of file system change.
type WatchOp int

const (
	// OpCreate is a newly created file or directory.
	OpCreate WatchOp = iota
	// OpWrite is a modified file.
	OpWrite
	// OpRemove is a removed or renamed file.
	OpRemove
)

// WatchEvent is a single file system change.
type WatchEvent struct {
	Path      string
	Operation WatchOp
}

// Watcher observes a directory tree.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start begins watching root recursively until ctx is done.
	Start(ctx context.Context, root string) error
	// Stop releases the watcher.
	Stop() error
	// Events yields file system events until the watcher stops.
	Events() iter.Seq[WatchEvent]
}

// WatcherFactory creates a fresh Watcher.
type WatcherFactory func() (Watcher, error)
