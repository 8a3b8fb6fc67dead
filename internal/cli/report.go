package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	apperr "assessctl/internal/errors"
	"assessctl/internal/grading"
	"assessctl/internal/view"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Print grade reports",
}

var reportCourseCmd = &cobra.Command{
	Use:   "course <code>",
	Short: "Print the marks of every student in a course",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore()
		if err != nil {
			return err
		}
		c, err := d.CourseByCode(args[0])
		if err != nil {
			return err
		}
		_, rows, err := grading.CourseReport(d, grading.DefaultScale, c.ID)
		if err != nil {
			return err
		}
		t, err := view.NewTable(grading.StudentMarkHeaders, rows, c.String())
		if err != nil {
			return err
		}
		for _, i := range grading.StudentMarkNumeric {
			t.Align(i, view.AlignRight)
		}
		t.AddFooter(grading.AverageFooter(rows))
		return t.Fprint(cmd.OutOrStdout())
	},
}

var reportStudentCmd = &cobra.Command{
	Use:   "student <id>",
	Short: "Print a student's marks and GPA",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return apperr.InvalidInput("student id", "expected an integer value")
		}
		d, err := openStore()
		if err != nil {
			return err
		}
		s, rows, err := grading.StudentReport(d, grading.DefaultScale, id)
		if err != nil {
			return err
		}
		t, err := view.NewTable(grading.CourseMarkHeaders, rows, s.String())
		if err != nil {
			return err
		}
		for _, i := range grading.CourseMarkNumeric {
			t.Align(i, view.AlignRight)
		}
		t.AddFooter(grading.GPAFooter(rows))
		return t.Fprint(cmd.OutOrStdout())
	},
}

func init() {
	reportCmd.AddCommand(reportCourseCmd, reportStudentCmd)
	rootCmd.AddCommand(reportCmd)
}
