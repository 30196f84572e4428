package format

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/ZJAVED2012/PAKNet-AI/internal/render"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#2a54a5", Dark: "#73b8ff"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#828c99", Dark: "#6c7680"}

	styleH1   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true)
	styleH2   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleH3   = lipgloss.NewStyle().Bold(true)
	styleBold = lipgloss.NewStyle().Bold(true)
	styleCode = lipgloss.NewStyle().Foreground(colorDim)
	styleMeta = lipgloss.NewStyle().Foreground(colorDim)
)

// WritePrettyBlueprint renders a record with a metadata header followed by
// the styled blueprint body.
func WritePrettyBlueprint(w io.Writer, b api.Blueprint) error {
	meta := fmt.Sprintf("%s · %s · %s",
		b.DeviceModel,
		b.CreatedAt.Local().Format(time.RFC3339),
		shortFingerprint(b))
	if _, err := fmt.Fprintln(w, styleMeta.Render(meta)); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, RenderNodes(render.Parse(b.Content)))
	return err
}

// RenderNodes returns the styled terminal text for a parsed blueprint.
// Ordered list items are renumbered per contiguous run since the parser
// strips the source numbering.
func RenderNodes(nodes []render.Node) string {
	var sb strings.Builder
	ordinal := 0

	for _, n := range nodes {
		if n.Kind != render.KindListItem || !n.Ordered {
			ordinal = 0
		}
		switch n.Kind {
		case render.KindHeading:
			switch n.Level {
			case 1:
				sb.WriteString(styleH1.Render(n.Text))
			case 2:
				sb.WriteString(styleH2.Render(n.Text))
			default:
				sb.WriteString(styleH3.Render(n.Text))
			}
			sb.WriteByte('\n')
		case render.KindListItem:
			if n.Ordered {
				ordinal++
				sb.WriteString(fmt.Sprintf("  %d. %s\n", ordinal, n.Text))
			} else {
				sb.WriteString("  • " + n.Text + "\n")
			}
		case render.KindCodeBlock:
			for _, line := range n.Lines {
				sb.WriteString("    " + styleCode.Render(line) + "\n")
			}
		case render.KindParagraph:
			for _, sp := range n.Spans {
				if sp.Bold {
					sb.WriteString(styleBold.Render(sp.Text))
				} else {
					sb.WriteString(sp.Text)
				}
			}
			sb.WriteByte('\n')
		case render.KindBlank:
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func shortFingerprint(b api.Blueprint) string {
	fp := b.Fingerprint()
	if len(fp) > 12 {
		fp = fp[:12]
	}
	return fp
}
