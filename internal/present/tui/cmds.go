package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ZJAVED2012/PAKNet-AI/internal/export"
	"github.com/ZJAVED2012/PAKNet-AI/internal/history"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// generateDoneMsg conveys the result of one generation round trip.
type generateDoneMsg struct {
	bp        api.Blueprint
	err       error
	appendErr error // history write failure; display still proceeds
}

// historyMsg conveys a reload of the history list.
type historyMsg struct {
	items []api.Blueprint
	err   error
}

// copyDoneMsg conveys the clipboard write outcome.
type copyDoneMsg struct{ err error }

// exportDoneMsg conveys the file export outcome.
type exportDoneMsg struct {
	path string
	err  error
}

// generateCmd runs the single-shot generation call off the UI loop. The
// record is appended to history on success before the result message lands.
func generateCmd(ctx context.Context, gen GenerateFunc, store history.Store, deviceModel string) tea.Cmd {
	return func() tea.Msg {
		content, err := gen(ctx, deviceModel)
		if err != nil {
			return generateDoneMsg{err: err}
		}
		b := api.NewBlueprint(api.NewID(), deviceModel, content, time.Now())
		return generateDoneMsg{bp: b, appendErr: store.Append(ctx, b)}
	}
}

func loadHistoryCmd(ctx context.Context, store history.Store) tea.Cmd {
	return func() tea.Msg {
		items, err := store.List(ctx)
		return historyMsg{items: items, err: err}
	}
}

func copyCmd(b api.Blueprint) tea.Cmd {
	return func() tea.Msg {
		return copyDoneMsg{err: clipboard.WriteAll(b.Content)}
	}
}

func exportCmd(b api.Blueprint, dir string) tea.Cmd {
	return func() tea.Msg {
		path, err := export.Write(b, dir)
		return exportDoneMsg{path: path, err: err}
	}
}
