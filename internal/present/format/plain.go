package format

import (
	"fmt"
	"io"
	"time"

	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

// WritePlainList writes one tab-separated row per record.
func WritePlainList(w io.Writer, items []api.Blueprint, headers bool) error {
	if headers {
		if _, err := fmt.Fprintln(w, "ID\tDEVICE MODEL\tCREATED"); err != nil {
			return err
		}
	}
	for _, b := range items {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\n",
			b.ID, b.DeviceModel, b.CreatedAt.Local().Format(time.RFC3339))
		if err != nil {
			return err
		}
	}
	return nil
}

// WritePlainBlueprint writes an unstyled detail view with the raw Markdown.
func WritePlainBlueprint(w io.Writer, b api.Blueprint) error {
	_, err := fmt.Fprintf(w, "ID: %s\nDevice: %s\nCreated: %s\n---\n%s\n",
		b.ID,
		b.DeviceModel,
		b.CreatedAt.Local().Format(time.RFC3339),
		b.Content)
	return err
}
