package cli

import (
	"github.com/spf13/cobra"

	"assessctl/internal/models"
	"assessctl/internal/search"
	"assessctl/internal/view"
)

var studentQuery string

// studentCmd groups student subcommands.
var studentCmd = &cobra.Command{
	Use:   "student",
	Short: "Work with students",
}

var studentLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List students, optionally filtered by name",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore()
		if err != nil {
			return err
		}
		t, err := view.NewTable(models.StudentHeaders, search.Students(studentQuery, d.Students), "Students")
		if err != nil {
			return err
		}
		t.Align(0, view.AlignRight)
		return t.Fprint(cmd.OutOrStdout())
	},
}

func init() {
	studentLsCmd.Flags().StringVarP(&studentQuery, "find", "f", "", "fuzzy match on full name")
	studentCmd.AddCommand(studentLsCmd)
	rootCmd.AddCommand(studentCmd)
}
