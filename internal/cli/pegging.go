package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"pcp360/internal/api"
	"pcp360/internal/demo"
	"pcp360/internal/panel"
)

func newPeggingCmd(app *App) *cobra.Command {
	demoFallback := true
	cmd := &cobra.Command{
		Use:   "pegging <material>",
		Short: "Print the production orders linked to a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := panel.Options[*api.PeggingLite]{
				RequiresCode: true,
				Empty: func(p *api.PeggingLite) bool {
					return p == nil || p.SemOrdens || len(p.Ordens) == 0
				},
			}
			if demoFallback {
				opts.Fallback = func(code string) (*api.PeggingLite, bool) {
					p := demo.Pegging(code)
					return p, p != nil
				}
			}
			ctrl := panel.New(opts)
			tk, ok := ctrl.Trigger(args[0])
			if !ok {
				return errors.New(ctrl.State().Message)
			}
			payload, err := app.Client().Pegging(cmd.Context(), tk.Code)
			st := ctrl.Resolve(tk, payload, err)
			if st.Phase == panel.Error {
				return errors.New(st.Message)
			}
			if st.Demo {
				fmt.Fprintln(cmd.ErrOrStderr(), "backend unavailable; showing demo dataset")
			}
			if st.Phase == panel.Empty {
				fmt.Fprintf(cmd.ErrOrStderr(), "no production orders linked to %s\n", tk.Code)
			}
			return writeOut(cmd, app, st.Payload)
		},
	}
	cmd.Flags().BoolVar(&demoFallback, "demo-fallback", true, "Fall back to the built-in demo dataset when the backend fails")
	return cmd
}
