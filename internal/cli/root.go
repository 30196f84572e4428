package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ZJAVED2012/PAKNet-AI/internal/config"
	"github.com/ZJAVED2012/PAKNet-AI/internal/present/tui"
	"github.com/ZJAVED2012/PAKNet-AI/internal/wire"
)

type ctxKey string

const appKey ctxKey = "app"

// Execute builds the root cobra.Command and runs the CLI.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd constructs the Cobra root command and wires dependencies.
func NewRootCmd() *cobra.Command {
	var cfgPath string

	cmd := &cobra.Command{
		Use:           "paknet",
		Short:         "Generate network deployment blueprints with AI",
		SilenceUsage:  true, // don't show usage on runtime errors
		SilenceErrors: true, // let main print errors once
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load config with Viper.
			v := viper.New()
			if cfgPath != "" {
				v.SetConfigFile(cfgPath)
			}
			if err := config.Load(cmd.Context(), v); err != nil {
				return err
			}
			// Wire up the app and stash it in context for subcommands.
			app, err := wire.BuildApp(cmd.Context(), v)
			if err != nil {
				return err
			}
			ctx := context.WithValue(cmd.Context(), appKey, app)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if v := cmd.Context().Value(appKey); v != nil {
				return v.(*wire.App).Close()
			}
			return nil
		},
		// Bare `paknet` launches the interactive front-end.
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			return tui.Run(cmd.Context(), tui.Config{
				Store:     app.Store,
				Generate:  generateFunc(app),
				ExportDir: app.Cfg.GetString("export.dir"),
			})
		},
	}

	cmd.PersistentFlags().StringVar(&cfgPath, "config", "", "path to config file (yaml|toml)")

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newCopyCmd())
	cmd.AddCommand(newExportCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

// generateFunc adapts the lazily built generation service for the TUI.
func generateFunc(app *wire.App) tui.GenerateFunc {
	return func(ctx context.Context, deviceModel string) (string, error) {
		svc, err := app.Generator()
		if err != nil {
			return "", err
		}
		return svc.Generate(ctx, deviceModel)
	}
}

func getApp(cmd *cobra.Command) *wire.App {
	v := cmd.Context().Value(appKey)
	if v == nil {
		fmt.Fprintln(os.Stderr, "internal error: app not initialized")
		os.Exit(1)
	}
	return v.(*wire.App)
}
