package cli

import (
	"github.com/spf13/cobra"
)

func newSummaryCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the consolidated overview (KPIs, critical materials, orders, capacity)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Client().Summary(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, out)
		},
	}
}

func newInsightsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "insights",
		Short: "Print the business-language alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Client().Insights(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, out)
		},
	}
}

func newCapacityCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "capacity",
		Short: "Print the per-work-center capacity analysis",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Client().CapacityIA(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, out)
		},
	}
}

func newHealthCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := app.Client().HealthCheck(cmd.Context())
			if err != nil {
				return err
			}
			return writeOut(cmd, app, out)
		},
	}
}
