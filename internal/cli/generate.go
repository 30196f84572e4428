package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ZJAVED2012/PAKNet-AI/internal/present"
	"github.com/ZJAVED2012/PAKNet-AI/pkg/api"
)

func newGenerateCmd() *cobra.Command {
	var outputMode string
	cmd := &cobra.Command{
		Use:   "generate <device-model>",
		Short: "Generate a deployment blueprint for a device model",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app := getApp(cmd)

			deviceModel := strings.TrimSpace(strings.Join(args, " "))
			if deviceModel == "" {
				return errors.New("device model must not be empty")
			}
			mode, ok := present.ParseMode(strings.ToLower(outputMode))
			if !ok {
				return fmt.Errorf("invalid --output: %s", outputMode)
			}

			svc, err := app.Generator()
			if err != nil {
				return hintCredentials(err)
			}
			content, err := svc.Generate(cmd.Context(), deviceModel)
			if err != nil {
				return err
			}

			b := api.NewBlueprint(api.NewID(), deviceModel, content, time.Now())
			if err := app.Store.Append(cmd.Context(), b); err != nil {
				// The blueprint is still shown; history just didn't stick.
				app.Log.Printf("history append failed id=%s err=%v", b.ID, err)
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
