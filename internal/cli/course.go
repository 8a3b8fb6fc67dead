package cli

import (
	"github.com/spf13/cobra"

	"assessctl/internal/models"
	"assessctl/internal/view"
)

// courseCmd groups course subcommands.
var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Work with courses",
}

var courseLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List courses",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore()
		if err != nil {
			return err
		}
		t, err := view.NewTable(models.CourseHeaders, d.Courses, "Courses")
		if err != nil {
			return err
		}
		t.Align(0, view.AlignRight).Align(3, view.AlignRight)
		return t.Fprint(cmd.OutOrStdout())
	},
}

func init() {
	courseCmd.AddCommand(courseLsCmd)
	rootCmd.AddCommand(courseCmd)
}
