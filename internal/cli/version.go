package cli

import (
	"github.com/spf13/cobra"

	"pcp360/internal/buildinfo"
)

func newVersionCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			return writeOut(cmd, app, map[string]any{
				"version": buildinfo.DisplayVersion(),
				"commit":  buildinfo.Commit,
				"date":    buildinfo.Date,
			})
		},
	}
}
