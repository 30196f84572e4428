package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ZJAVED2012/PAKNet-AI/internal/history"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

func testModel(t *testing.T) Model {
	t.Helper()
	return New(context.Background(), Config{
		Store: history.NewMem(10),
		Generate: func(_ context.Context, _ string) (string, error) {
			return "# ok", nil
		},
	})
}

func TestEmptyInputDoesNotSubmit(t *testing.T) {
	m := testModel(t)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(Model)

	assert.Equal(t, viewPrompt, got.view, "empty device model must not start a generation")
	assert.Nil(t, cmd)
}

func TestGenerationFailureClearsRecordAndShowsBanner(t *testing.T) {
	m := testModel(t)
	b := api.NewBlueprint("id-1", "MX-480", "# old", time.Now())
	m.current = &b
	m.view = viewGenerating

	next, _ := m.Update(generateDoneMsg{err: errors.New("unable to reach AI services")})
	got := next.(Model)

	assert.Nil(t, got.current, "previous record is cleared on failure")
	assert.Contains(t, got.errMsg, "unable to reach AI services")
	assert.Equal(t, viewPrompt, got.view)
}

func TestGenerationSuccessShowsBlueprint(t *testing.T) {
	m := testModel(t)
	m.view = viewGenerating
	b := api.NewBlueprint("id-1", "MX-480", "# Blueprint\n- step", time.Now())

	next, _ := m.Update(generateDoneMsg{bp: b})
	got := next.(Model)

	require.NotNil(t, got.current)
	assert.Equal(t, viewBlueprint, got.view)
	assert.Equal(t, "MX-480", got.current.DeviceModel)
	assert.Empty(t, got.errMsg)
}

func TestKeysIgnoredWhileGenerating(t *testing.T) {
	m := testModel(t)
	m.view = viewGenerating

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := next.(Model)

	assert.Equal(t, viewGenerating, got.view)
	assert.Nil(t, cmd)
}

func TestHistoryFuzzyFilter(t *testing.T) {
	h := newHistoryModel()
	now := time.Now()
	h.setItems([]api.Blueprint{
		api.NewBlueprint("1", "Cisco Catalyst 9300", "a", now),
		api.NewBlueprint("2", "Juniper MX-480", "b", now),
		api.NewBlueprint("3", "FortiGate 100F", "c", now),
	})

	h.handleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("mx")})
	require.Len(t, h.matches, 1)
	sel, ok := h.selected()
	require.True(t, ok)
	assert.Equal(t, "Juniper MX-480", sel.DeviceModel)

	h.handleKey(tea.KeyMsg{Type: tea.KeyCtrlL})
	assert.Len(t, h.matches, 3)
}
