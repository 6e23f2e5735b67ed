package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd(catalogPath, format *string) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate a catalog file",
		Long:  "Parse the catalog file and check that every share, schema, and table descriptor is complete.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			catalog, err := openCatalog(*catalogPath, *format)
			if err != nil {
				return err
			}
			stats := catalog.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d shares, %d schemas, %d tables)\n",
				*catalogPath, stats.Shares, stats.Schemas, stats.Tables)
			return nil
		},
	}
}
