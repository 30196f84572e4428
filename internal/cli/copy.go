package cli

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

func newCopyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "copy [id|device-model]",
		Short: "Copy a blueprint's raw Markdown to the clipboard (latest by default)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBlueprint(cmd, strings.TrimSpace(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			if err := clipboard.WriteAll(b.Content); err != nil {
				return fmt.Errorf("clipboard write: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "copied blueprint for %s\n", b.DeviceModel)
			return nil
		},
	}
	return cmd
}
