package format

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZJAVED2012/PAKNet-AI/internal/render"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

func TestRenderNodesBullets(t *testing.T) {
	out := RenderNodes(render.Parse("- one\n- two"))
	assert.Contains(t, out, "• one")
	assert.Contains(t, out, "• two")
}

func TestRenderNodesRenumbersOrderedRuns(t *testing.T) {
	out := RenderNodes(render.Parse("5. first\n9. second\n\n3. restart"))
	assert.Contains(t, out, "1. first")
	assert.Contains(t, out, "2. second")
	assert.Contains(t, out, "1. restart")
}

func TestRenderNodesCodeIndented(t *testing.T) {
	out := RenderNodes(render.Parse("```\nconf t\n```"))
	assert.Contains(t, out, "    ")
	assert.Contains(t, out, "conf t")
}

func TestWritePrettyBlueprintIncludesMetaAndBody(t *testing.T) {
	b := api.NewBlueprint("id-1", "MX-480", "# Title\n\nBody **bold** text", time.Now())

	var buf bytes.Buffer
	require.NoError(t, WritePrettyBlueprint(&buf, b))

	out := buf.String()
	assert.Contains(t, out, "MX-480")
	assert.Contains(t, out, "Title")
	assert.Contains(t, out, "bold")
}
