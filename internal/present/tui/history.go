package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// historyModel is the filterable history list. Typing narrows the list with
// fuzzy matching on device models; arrows move the cursor.
type historyModel struct {
	items   []api.Blueprint
	matches []int // indices into items, in display order
	cursor  int
	filter  string
	width   int
	height  int
}

func newHistoryModel() historyModel {
	return historyModel{}
}

func (h *historyModel) setSize(w, height int) {
	h.width = w
	h.height = height
}

func (h *historyModel) setItems(items []api.Blueprint) {
	h.items = items
	h.applyFilter()
}

func (h *historyModel) applyFilter() {
	if h.filter == "" {
		h.matches = make([]int, len(h.items))
		for i := range h.items {
			h.matches[i] = i
		}
	} else {
		names := make([]string, len(h.items))
		for i, it := range h.items {
			names[i] = it.DeviceModel
		}
		found := fuzzy.Find(h.filter, names)
		h.matches = make([]int, len(found))
		for i, f := range found {
			h.matches[i] = f.Index
		}
	}
	if h.cursor >= len(h.matches) {
		h.cursor = len(h.matches) - 1
	}
	if h.cursor < 0 {
		h.cursor = 0
	}
}

func (h *historyModel) selected() (api.Blueprint, bool) {
	if len(h.matches) == 0 || h.cursor >= len(h.matches) {
		return api.Blueprint{}, false
	}
	return h.items[h.matches[h.cursor]], true
}

func (h *historyModel) handleKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "up":
		if h.cursor > 0 {
			h.cursor--
		}
	case "down":
		if h.cursor < len(h.matches)-1 {
			h.cursor++
		}
	case "backspace":
		if h.filter != "" {
			h.filter = h.filter[:len(h.filter)-1]
			h.applyFilter()
		}
	case "ctrl+l":
		h.filter = ""
		h.applyFilter()
	default:
		if msg.Type == tea.KeyRunes {
			h.filter += string(msg.Runes)
			h.applyFilter()
		}
	}
}

func (h historyModel) view() string {
	var sb strings.Builder
	sb.WriteString(styleTitle.Render("History"))
	sb.WriteString("  ")
	if h.filter != "" {
		sb.WriteString(styleDim.Render("filter: " + h.filter))
	} else {
		sb.WriteString(styleDim.Render("type to filter"))
	}
	sb.WriteString("\n\n")

	if len(h.matches) == 0 {
		sb.WriteString(styleDim.Render("no blueprints yet"))
		sb.WriteString("\n")
	}
	for i, idx := range h.matches {
		it := h.items[idx]
		row := fmt.Sprintf("%-40s %s",
			truncate(it.DeviceModel, 40),
			it.CreatedAt.Local().Format(time.RFC3339))
		if i == h.cursor {
			sb.WriteString(styleSelected.Render("> " + row))
		} else {
			sb.WriteString("  " + row)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(styleDim.Render("enter open · esc back · ctrl+l clear filter"))
	return sb.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
