package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZJAVED2012/PAKNet-AI/internal/export"
)

func newExportCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export [id|device-model]",
		Short: "Export a blueprint's Markdown to a file (latest by default)",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			b, err := resolveBlueprint(cmd, strings.TrimSpace(strings.Join(args, " ")))
			if err != nil {
				return err
			}
			if outPath != "" {
				if err := export.WriteTo(b, outPath); err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), outPath)
				return nil
			}
			path, err := export.Write(b, app.Cfg.GetString("export.dir"))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "explicit output file path")
	return cmd
}
