package commands

import (
	"runtime"

	"github.com/spf13/cobra"

	"github.com/mdtidy/mdtidy/internal/cli/output"
)

// NewVersionCommand creates the version command.
func NewVersionCommand(version, buildDate, gitCommit string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := rendererFrom(cmd.Context())
			if r == nil {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), "")
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(map[string]string{
					"version":   version,
					"buildDate": buildDate,
					"gitCommit": gitCommit,
					"goVersion": runtime.Version(),
					"platform":  runtime.GOOS + "/" + runtime.GOARCH,
				})
			}

			r.Printf("mdtidy %s\n", version)
			r.Printf("  build date: %s\n", buildDate)
			r.Printf("  git commit: %s\n", gitCommit)
			r.Printf("  go version: %s\n", runtime.Version())
			r.Printf("  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
			return nil
		},
	}
}
