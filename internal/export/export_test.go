package export

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

func TestWriteCreatesMarkdownFile(t *testing.T) {
	dir := t.TempDir()
	b := api.NewBlueprint("id-1", "Catalyst 9300/48P", "# Blueprint\nbody", time.Now())

	path, err := Write(b, dir)
	require.NoError(t, err)
	assert.Equal(t, ".md", filepath.Ext(path))
	assert.Contains(t, filepath.Base(path), "catalyst-9300-48p")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, b.Content, string(data))
}

func TestWriteToExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out.md")
	b := api.NewBlueprint("id-1", "MX-480", "content", time.Now())

	require.NoError(t, WriteTo(b, path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(data))
}

func TestSanitizeFallback(t *testing.T) {
	assert.Equal(t, "blueprint", sanitize("///"))
}
