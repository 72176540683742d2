package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"github.com/lexafrica/lexsearch/internal/config"
	"github.com/lexafrica/lexsearch/internal/ui"
)

func newSourcesCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "sources",
		Short: "List the registered jurisdiction sources",
		Long: `List every source in the registry with its jurisdiction,
credibility tier, and capabilities.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			_, reg, cleanup, err := buildEngine(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			if jsonOutput {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(reg.All())
			}

			ui.New(cmd.OutOrStdout()).Sources(reg.All())
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
