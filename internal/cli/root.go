// Package cli wires the pcp360 command tree. Running without a subcommand
// opens the interactive dashboard; subcommands print single panels for
// scripting.
package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"pcp360/internal/api"
	"pcp360/internal/format"
	"pcp360/internal/tui"
)

const defaultAPIURL = "http://localhost:8000"

// App carries the process-wide settings shared by every subcommand. There
// is one backend base URL for the whole process, never per panel.
type App struct {
	APIURL     string
	Timeout    time.Duration
	PrettyJSON bool
	Format     string
}

// Client builds the API client subcommands and the dashboard talk through.
func (app *App) Client() api.Client {
	return api.New(app.APIURL, app.Timeout)
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "pcp360",
		Short:        "PCP 360 production planning dashboard",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand => interactive dashboard.
			if cmd.HasSubCommands() && len(args) == 0 {
				return tui.Run(app.Client())
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&app.APIURL, "api", envOr("PCP360_API_URL", defaultAPIURL), "Backend base URL")
	cmd.PersistentFlags().DurationVar(&app.Timeout, "timeout", envDurationOr("PCP360_TIMEOUT", 30*time.Second), "Per-request timeout")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print output")
	cmd.PersistentFlags().StringVar(&app.Format, "format", envOr("PCP360_FORMAT", "json"), "Output format (json|edn)")

	cmd.AddCommand(newSummaryCmd(app))
	cmd.AddCommand(newInsightsCmd(app))
	cmd.AddCommand(newCapacityCmd(app))
	cmd.AddCommand(newBoardCmd(app))
	cmd.AddCommand(newPeggingCmd(app))
	cmd.AddCommand(newHealthCmd(app))
	cmd.AddCommand(newVersionCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// envDurationOr reads a duration from the environment, ignoring values
// time.ParseDuration rejects.
func envDurationOr(k string, d time.Duration) time.Duration {
	if v := os.Getenv(k); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	return format.Write(cmd.OutOrStdout(), v, app.Format, app.PrettyJSON)
}
