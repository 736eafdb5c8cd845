package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mdtidy/mdtidy/internal/cli/output"
	"github.com/mdtidy/mdtidy/pkg/lint"
)

// ruleInfo is the JSON shape for one rule listing.
type ruleInfo struct {
	Alias       string `json:"alias"`
	Name        string `json:"name"`
	Group       string `json:"group"`
	Description string `json:"description"`
	Enabled     bool   `json:"enabled"`
}

// NewRulesCommand creates the rules command.
func NewRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "List the available lint rules",
		Long: `List every registered rule in execution order, grouped by category,
with its alias and whether the current settings enable it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := rendererFrom(cmd.Context())
			if r == nil {
				r = output.NewRenderer(cmd.OutOrStdout(), cmd.ErrOrStderr(), "")
			}
			settings := settingsFrom(cmd.Context())

			infos := make([]ruleInfo, 0, lint.Count())
			for _, def := range lint.All() {
				opts := settings.RuleOptions(def.Alias)
				infos = append(infos, ruleInfo{
					Alias:       def.Alias,
					Name:        def.Name,
					Group:       def.Group,
					Description: def.Description,
					Enabled:     def.Enabled(opts),
				})
			}

			if r.EffectiveMode() == output.ModeJSON {
				return r.JSON(infos)
			}

			styles := r.Styles()
			group := ""
			for _, info := range infos {
				if info.Group != group {
					if group != "" {
						r.Println("")
					}
					group = info.Group
					r.Println(styles.Bold.Render(group))
				}
				state := styles.Success.Render("enabled")
				if !info.Enabled {
					state = styles.Muted.Render("disabled")
				}
				r.Printf("  %-32s %-8s %s\n", info.Alias, state, info.Description)
			}
			r.Printf("\n%s\n", fmt.Sprintf("%d rules registered", len(infos)))
			return nil
		},
	}
}
