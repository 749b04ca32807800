package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pcp360/internal/api"
	"pcp360/internal/chart"
	"pcp360/internal/panel"
)

func newBoardCmd(app *App) *cobra.Command {
	var (
		weeks      int
		exportPath string
	)
	cmd := &cobra.Command{
		Use:   "board <material>",
		Short: "Print the weekly planning board for a material",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl := panel.New[*api.PlanningBoard](panel.Options[*api.PlanningBoard]{
				RequiresCode: true,
			})
			tk, ok := ctrl.Trigger(args[0])
			if !ok {
				return errors.New(ctrl.State().Message)
			}
			payload, err := app.Client().Board(cmd.Context(), tk.Code, weeks)
			st := ctrl.Resolve(tk, payload, err)
			if st.Phase == panel.Error {
				return errors.New(st.Message)
			}
			if exportPath != "" {
				if err := exportBoardChart(exportPath, st.Payload); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "chart written to %s\n", exportPath)
			}
			return writeOut(cmd, app, st.Payload)
		},
	}
	cmd.Flags().IntVar(&weeks, "weeks", 0, "Planning horizon in weeks, clamped server-side to 1..12 (0 = backend default)")
	cmd.Flags().StringVar(&exportPath, "export", "", "Write the weekly series as an HTML chart to this file")
	return cmd
}

func exportBoardChart(path string, board *api.PlanningBoard) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.WritePlanningBoard(f, board); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
