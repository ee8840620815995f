package fs

import (
	"path/filepath"
	"strings"

	"go.trai.ch/jsxload/internal/core/ports"
)

var _ ports.Resolver = (*Resolver)(nil)

// Resolver maps module names to files below a root directory, or to
// locations below a root URL.
type Resolver struct {
	root  string
	isURL bool
}

// NewResolver creates a Resolver rooted at root.
func NewResolver(root string) *Resolver {
	if strings.Contains(root, "://") {
		return &Resolver{root: strings.TrimSuffix(root, "/"), isURL: true}
	}
	return &Resolver{root: filepath.Clean(root)}
}

// NewResolverFactory returns a ports.ResolverFactory creating Resolvers.
func NewResolverFactory() ports.ResolverFactory {
	return func(root string) ports.Resolver {
		return NewResolver(root)
	}
}

// ToURL joins name onto the root. Absolute names are returned unchanged.
func (r *Resolver) ToURL(name string) string {
	if r.isURL {
		return r.root + "/" + strings.TrimPrefix(filepath.ToSlash(name), "/")
	}
	name = filepath.FromSlash(name)
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(r.root, name)
}
