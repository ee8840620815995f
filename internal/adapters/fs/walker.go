// Package fs provides file system adapters for resolving, reading and
// discovering module sources.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleDiscoverer = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct {
	ignores []string
}

// NewWalker creates a Walker skipping directories matching any of ignores.
// VCS directories and node_modules are always skipped.
func NewWalker(ignores ...string) *Walker {
	return &Walker{ignores: ignores}
}

// WalkFiles yields all files below root. Yielded paths include root.
func (w *Walker) WalkFiles(root string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				if path != root && w.skipDir(d.Name()) {
					return filepath.SkipDir
				}
				return nil
			}
			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root))
		}
	}
}

// Discover implements ports.ModuleDiscoverer. Names are sorted.
func (w *Walker) Discover(root, ext string) ([]string, error) {
	var names []string
	for path, err := range w.WalkFiles(root) {
		if err != nil {
			return nil, err
		}
		if !strings.HasSuffix(path, ext) {
			continue
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to relativize path"), "path", path)
		}
		names = append(names, strings.TrimSuffix(filepath.ToSlash(rel), ext))
	}
	slices.Sort(names)
	return names, nil
}

func (w *Walker) skipDir(name string) bool {
	switch name {
	case ".git", ".jj", "node_modules":
		return true
	}
	for _, ignore := range w.ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}
	return false
}
