package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"assessctl/internal/store"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the data file",
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := store.MarshalSchema(store.Schema())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(b))
		return nil
	},
}
