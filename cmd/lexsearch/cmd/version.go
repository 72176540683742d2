package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lexafrica/lexsearch/pkg/version"
)

func newVersionCmd() *cobra.Command {
	var asJSON bool
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the build identity of this binary",
		Long:  "Show the version, commit, build date and platform this lexsearch binary was built from.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			info := version.Current()
			switch {
			case short:
				_, err := fmt.Fprintln(out, info.Version)
				return err
			case asJSON:
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			default:
				_, err := fmt.Fprintln(out, info)
				return err
			}
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "machine-readable build info")
	cmd.Flags().BoolVar(&short, "short", false, "bare version number only")

	return cmd
}
