package ports

import "go.trai.ch/jsxload/internal/core/domain"

// TransformCache persists transpiler results across build passes.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type TransformCache interface {
	// Get retrieves the cached transform for key.
	// Returns nil, nil if not found.
	Get(key string) (*domain.CachedTransform, error)

	// Put stores a transform.
	Put(entry domain.CachedTransform) error
}

// TransformCacheFactory opens the transform cache stored at path.
type TransformCacheFactory func(path string) (TransformCache, error)
