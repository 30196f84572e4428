package format

import (
	"encoding/json"
	"io"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

func WriteJSONBlueprint(w io.Writer, b api.Blueprint, indent bool) error {
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(b)
}

func WriteJSONList(w io.Writer, items []api.Blueprint, indent bool) error {
	if items == nil {
		items = []api.Blueprint{}
	}
	enc := json.NewEncoder(w)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(items)
}
