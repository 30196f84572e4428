// Package tui is the interactive front-end: a prompt for the device model,
// a generating state with the input disabled, the rendered blueprint in a
// scrollable viewport, and a filterable history list.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ZJAVED2012/PAKNet-AI/internal/history"
	"github.com/ZJAVED2012/PAKNet-AI/internal/present/format"
	"github.com/ZJAVED2012/PAKNet-AI/internal/render"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// GenerateFunc runs one generation call. Kept as a function so the client
// (and its credential check) resolves lazily, per attempt.
type GenerateFunc func(ctx context.Context, deviceModel string) (string, error)

// Config holds the parameters needed to launch the TUI.
type Config struct {
	Store     history.Store
	Generate  GenerateFunc
	ExportDir string
}

type view int

const (
	viewPrompt view = iota
	viewGenerating
	viewBlueprint
	viewHistory
)

// Model is the root TUI model that routes between views.
type Model struct {
	ctx context.Context
	cfg Config

	view  view
	input textinput.Model
	spin  spinner.Model
	vp    viewport.Model

	current *api.Blueprint
	hist    historyModel

	errMsg   string
	status   string
	width    int
	height   int
	quitting bool
}

// New creates the root model.
func New(ctx context.Context, cfg Config) Model {
	ti := textinput.New()
	ti.Placeholder = "Device model, e.g. Cisco Catalyst 9300"
	ti.CharLimit = 120
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styleTitle

	return Model{
		ctx:   ctx,
		cfg:   cfg,
		view:  viewPrompt,
		input: ti,
		spin:  sp,
		vp:    viewport.New(80, 20),
		hist:  newHistoryModel(),
	}
}

// Run launches the program in the alternate screen.
func Run(ctx context.Context, cfg Config) error {
	p := tea.NewProgram(New(ctx, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, loadHistoryCmd(m.ctx, m.cfg.Store))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.vp.Width = msg.Width
		m.vp.Height = msg.Height - 4 // title, status bar, padding
		m.hist.setSize(msg.Width, msg.Height-4)
		return m, nil

	case spinner.TickMsg:
		if m.view != viewGenerating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case generateDoneMsg:
		return m.onGenerateDone(msg)

	case historyMsg:
		if msg.err != nil {
			m.status = "history unavailable: " + msg.err.Error()
			return m, nil
		}
		m.hist.setItems(msg.items)
		return m, nil

	case copyDoneMsg:
		if msg.err != nil {
			m.status = "copy failed: " + msg.err.Error()
		} else {
			m.status = "copied Markdown to clipboard"
		}
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export failed: " + msg.err.Error()
		} else {
			m.status = "exported to " + msg.path
		}
		return m, nil
	}
	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case viewPrompt:
		switch msg.String() {
		case "enter":
			device := strings.TrimSpace(m.input.Value())
			if device == "" {
				// Submit stays disabled on empty input.
				return m, nil
			}
			m.view = viewGenerating
			m.errMsg = ""
			m.status = ""
			return m, tea.Batch(
				m.spin.Tick,
				generateCmd(m.ctx, m.cfg.Generate, m.cfg.Store, device),
			)
		case "tab":
			m.view = viewHistory
			return m, loadHistoryCmd(m.ctx, m.cfg.Store)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case viewGenerating:
		// Interaction surface is disabled while the call is in flight.
		return m, nil

	case viewBlueprint:
		switch msg.String() {
		case "q":
			m.quitting = true
			return m, tea.Quit
		case "n", "esc":
			m.view = viewPrompt
			m.input.SetValue("")
			m.input.Focus()
			return m, textinput.Blink
		case "h":
			m.view = viewHistory
			return m, loadHistoryCmd(m.ctx, m.cfg.Store)
		case "c":
			if m.current != nil {
				return m, copyCmd(*m.current)
			}
			return m, nil
		case "e":
			if m.current != nil {
				return m, exportCmd(*m.current, m.cfg.ExportDir)
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd

	case viewHistory:
		switch msg.String() {
		case "esc":
			if m.current != nil {
				m.view = viewBlueprint
			} else {
				m.view = viewPrompt
				m.input.Focus()
			}
			return m, nil
		case "enter":
			if b, ok := m.hist.selected(); ok {
				m.showBlueprint(b)
			}
			return m, nil
		default:
			m.hist.handleKey(msg)
			return m, nil
		}
	}
	return m, nil
}

func (m Model) onGenerateDone(msg generateDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		// A failed generation clears the previous record; only the error
		// banner remains.
		m.current = nil
		m.errMsg = msg.err.Error()
		m.view = viewPrompt
		m.input.Focus()
		return m, textinput.Blink
	}
	m.showBlueprint(msg.bp)
	if msg.appendErr != nil {
		m.status = "history not saved: " + msg.appendErr.Error()
	}
	return m, loadHistoryCmd(m.ctx, m.cfg.Store)
}

func (m *Model) showBlueprint(b api.Blueprint) {
	m.current = &b
	m.errMsg = ""
	m.vp.SetContent(format.RenderNodes(render.Parse(b.Content)))
	m.vp.GotoTop()
	m.view = viewBlueprint
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	var body string
	switch m.view {
	case viewPrompt:
		var sb strings.Builder
		sb.WriteString(styleTitle.Render("PAKNet AI deployment blueprint generator"))
		sb.WriteString("\n\n")
		sb.WriteString(m.input.View())
		sb.WriteString("\n\n")
		if m.errMsg != "" {
			sb.WriteString(styleError.Render(m.errMsg))
			sb.WriteString("\n")
		}
		sb.WriteString(styleDim.Render("enter generate · tab history · ctrl+c quit"))
		body = sb.String()
	case viewGenerating:
		body = fmt.Sprintf("%s generating blueprint for %s…",
			m.spin.View(), styleTitle.Render(strings.TrimSpace(m.input.Value())))
	case viewBlueprint:
		header := ""
		if m.current != nil {
			header = styleTitle.Render(m.current.DeviceModel) + "\n"
		}
		body = header + m.vp.View() + "\n" +
			styleDim.Render("c copy · e export · h history · n new · q quit")
	case viewHistory:
		body = m.hist.view()
	}
	return body + "\n" + m.statusBar()
}

func (m Model) statusBar() string {
	s := m.status
	if s == "" {
		s = "ready"
	}
	if m.width > 0 {
		return styleBar.Width(m.width).Render(s)
	}
	return styleBar.Render(s)
}
