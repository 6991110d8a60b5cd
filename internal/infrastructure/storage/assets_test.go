package storage

import (
	"io"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAssets(t *testing.T) *Assets {
	t.Helper()
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "index.html", []byte("<html>app</html>"), 0o644))
	require.NoError(t, afero.WriteFile(fs, "static/js/main.js", []byte("console.log(1)"), 0o644))
	return NewAssetsWithFs(afero.NewReadOnlyFs(fs))
}

func readAll(t *testing.T, f afero.File) string {
	t.Helper()
	defer f.Close()
	b, err := io.ReadAll(f)
	require.NoError(t, err)
	return string(b)
}

func TestAssets_ServesExistingFile(t *testing.T) {
	f, info, err := newTestAssets(t).Resolve("/static/js/main.js")
	require.NoError(t, err)
	assert.Equal(t, "main.js", info.Name())
	assert.Equal(t, "console.log(1)", readAll(t, f))
}

func TestAssets_FallsBackToIndex(t *testing.T) {
	a := newTestAssets(t)
	for _, p := range []string{"", "/", "/dashboard/settings", "/static", "/../../etc/passwd"} {
		f, info, err := a.Resolve(p)
		require.NoError(t, err, "path %q", p)
		assert.Equal(t, IndexFile, info.Name())
		assert.Equal(t, "<html>app</html>", readAll(t, f))
	}
}

func TestAssets_MissingBuild(t *testing.T) {
	_, _, err := NewAssetsWithFs(afero.NewMemMapFs()).Resolve("/")
	assert.Error(t, err)
}
