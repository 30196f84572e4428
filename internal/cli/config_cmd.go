package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ZJAVED2012/PAKNet-AI/internal/config"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect and bootstrap configuration",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var force bool
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a commented default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.DefaultConfigPath()
			if _, err := os.Stat(path); err == nil && !force {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
			}
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return err
			}
			if err := os.WriteFile(path, []byte(config.RenderDefaultTOML()), 0o644); err != nil {
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)
			out := cmd.OutOrStdout()
			if file := app.Cfg.ConfigFileUsed(); file != "" {
				_, _ = fmt.Fprintf(out, "# loaded from %s\n", file)
			} else {
				_, _ = fmt.Fprintln(out, "# no config file found, showing defaults and environment")
			}
			for _, o := range config.GetConfigOptions() {
				val := app.Cfg.Get(o.Key)
				if o.Key == "api.key" {
					if s, _ := val.(string); s != "" {
						val = "(set)"
					}
				}
				_, _ = fmt.Fprintf(out, "%s = %v\n", o.Key, val)
			}
			return nil
		},
	}
	return cmd
}
