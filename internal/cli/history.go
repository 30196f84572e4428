package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZJAVED2012/PAKNet-AI/internal/history"
	"github.com/ZJAVED2012/PAKNet-AI/internal/present"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Manage the local blueprint history",
	}
	cmd.AddCommand(newHistoryListCmd())
	cmd.AddCommand(newHistoryShowCmd())
	cmd.AddCommand(newHistoryClearCmd())
	return cmd
}

func newHistoryListCmd() *cobra.Command {
	var outputMode string
	var noHeaders bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored blueprints, most recent first",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			items, err := app.Store.List(cmd.Context())
			if err != nil {
				return err
			}
			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			return present.RenderList(cmd.OutOrStdout(), items, present.Options{
				Mode:    mode,
				Headers: !noHeaders,
			})
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "plain", "output mode: plain|json")
	cmd.Flags().BoolVar(&noHeaders, "no-headers", false, "omit column headers")
	return cmd
}

func newHistoryShowCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "show <id|device-model>",
		Short: "Display a stored blueprint",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := resolveBlueprint(cmd, strings.Join(args, " "))
			if err != nil {
				return err
			}
			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}
			opts := present.Options{Mode: mode}
			if mode == present.ModePretty {
				return withPager(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), func(w io.Writer) error {
					return present.RenderBlueprint(w, b, opts)
				})
			}
			return present.RenderBlueprint(cmd.OutOrStdout(), b, opts)
		},
	}
	cmd.Flags().StringVar(&outputMode, "output", "pretty", "output mode: pretty|plain|json|markdown")
	return cmd
}

func newHistoryClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every stored blueprint",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			if err := app.Store.Clear(cmd.Context()); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "history cleared")
			return nil
		},
	}
	return cmd
}

// resolveBlueprint accepts either a record ID or a device model; "latest"
// selects the most recent record.
func resolveBlueprint(cmd *cobra.Command, key string) (api.Blueprint, error) {
	app := getApp(cmd)
	ctx := cmd.Context()

	if key == "" || key == "latest" {
		b, err := app.Store.Latest(ctx)
		if errors.Is(err, history.ErrNotFound) {
			return api.Blueprint{}, errors.New("no blueprints in history")
		}
		return b, err
	}

	b, err := app.Store.Get(ctx, key)
	if err == nil {
		return b, nil
	}
	if !errors.Is(err, history.ErrNotFound) {
		return api.Blueprint{}, err
	}

	// Fall back to an exact device-model match.
	items, err := app.Store.List(ctx)
	if err != nil {
		return api.Blueprint{}, err
	}
	for _, it := range items {
		if strings.EqualFold(it.DeviceModel, key) {
			return it, nil
		}
	}
	return api.Blueprint{}, fmt.Errorf("no blueprint matches %q", key)
}
