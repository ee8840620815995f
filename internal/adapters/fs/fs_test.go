package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jsxload/internal/adapters/fs"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestResolver_ToURL(t *testing.T) {
	r := fs.NewResolver("/srv/app/")

	assert.Equal(t, filepath.FromSlash("/srv/app/Widget.jsx"), r.ToURL("Widget.jsx"))
	assert.Equal(t, filepath.FromSlash("/srv/app/components/Button.jsx"), r.ToURL("components/Button.jsx"))
	assert.Equal(t, filepath.FromSlash("/abs/Other.jsx"), r.ToURL(filepath.FromSlash("/abs/Other.jsx")))
}

func TestResolver_ToURL_URLRoot(t *testing.T) {
	r := fs.NewResolver("http://cdn.test/js/")

	assert.Equal(t, "http://cdn.test/js/Widget.jsx", r.ToURL("Widget.jsx"))
	assert.Equal(t, "http://cdn.test/js/components/Button.jsx", r.ToURL("components/Button.jsx"))
}

func TestResolverFactory(t *testing.T) {
	factory := fs.NewResolverFactory()
	r := factory("root")

	assert.Equal(t, filepath.Join("root", "Widget.jsx"), r.ToURL("Widget.jsx"))
}

func TestReader_ReadFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "Widget.jsx")
	writeFile(t, path, "\xEF\xBB\xBFvar w = <Widget />;")

	content, err := fs.NewReader().ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "var w = <Widget />;", content)
}

func TestReader_ReadFile_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Missing.jsx")

	_, err := fs.NewReader().ReadFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReader_ReadFile_InvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Bad.jsx")
	writeFile(t, path, "\xff\xfe")

	_, err := fs.NewReader().ReadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UTF-8")
}

func TestWalker_Discover(t *testing.T) {
	// tmp/
	//   .git/Hidden.jsx
	//   node_modules/react/Dep.jsx
	//   vendor/Vendored.jsx
	//   components/Button.jsx
	//   Widget.jsx
	//   util.js
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, ".git", "Hidden.jsx"), "")
	writeFile(t, filepath.Join(tmpDir, "node_modules", "react", "Dep.jsx"), "")
	writeFile(t, filepath.Join(tmpDir, "vendor", "Vendored.jsx"), "")
	writeFile(t, filepath.Join(tmpDir, "components", "Button.jsx"), "")
	writeFile(t, filepath.Join(tmpDir, "Widget.jsx"), "")
	writeFile(t, filepath.Join(tmpDir, "util.js"), "")

	names, err := fs.NewWalker("vendor").Discover(tmpDir, ".jsx")
	require.NoError(t, err)
	assert.Equal(t, []string{"Widget", "components/Button"}, names)
}

func TestWalker_Discover_MissingRoot(t *testing.T) {
	_, err := fs.NewWalker().Discover(filepath.Join(t.TempDir(), "nope"), ".jsx")
	require.Error(t, err)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"a", "b", "c"} {
		writeFile(t, filepath.Join(tmpDir, name), "")
	}

	count := 0
	for _, err := range fs.NewWalker().WalkFiles(tmpDir) {
		require.NoError(t, err)
		count++
		break
	}
	assert.Equal(t, 1, count)
}
