package present

import (
	"io"

	"github.com/ZJAVED2012/PAKNet-AI/internal/present/format"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

type Mode int

const (
	ModePretty Mode = iota
	ModePlain
	ModeJSON
	ModeMarkdown
)

type Options struct {
	Mode       Mode
	JSONIndent bool
	Headers    bool
}

// ParseMode parses a string like "pretty", "plain", "json", "markdown".
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "pretty":
		return ModePretty, true
	case "plain":
		return ModePlain, true
	case "json":
		return ModeJSON, true
	case "markdown", "md":
		return ModeMarkdown, true
	default:
		return ModePretty, false
	}
}

// RenderBlueprint renders a single record according to options.
func RenderBlueprint(w io.Writer, b api.Blueprint, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONBlueprint(w, b, opts.JSONIndent)
	case ModePlain:
		return format.WritePlainBlueprint(w, b)
	case ModeMarkdown:
		_, err := io.WriteString(w, b.Content)
		return err
	default:
		return format.WritePrettyBlueprint(w, b)
	}
}

// RenderList renders the history list according to options.
func RenderList(w io.Writer, items []api.Blueprint, opts Options) error {
	switch opts.Mode {
	case ModeJSON:
		return format.WriteJSONList(w, items, opts.JSONIndent)
	default:
		return format.WritePlainList(w, items, opts.Headers)
	}
}
