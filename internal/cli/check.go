package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	checkJSON bool
)

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkJSON, "json", false, "output JSON report")
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check the data file for dangling references, duplicates and out-of-range scores",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := openStore()
		if err != nil {
			return err
		}
		rep := d.Check(settings.Grading)
		out := cmd.OutOrStdout()

		if checkJSON {
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(rep); err != nil {
				return err
			}
		} else {
			for _, it := range rep.Items {
				if len(it.Errors) > 0 {
					fmt.Fprintf(out, "ERR  %s  %s\n", it.Record, strings.Join(it.Errors, "; "))
				}
				if len(it.Warnings) > 0 {
					fmt.Fprintf(out, "WARN %s  %s\n", it.Record, strings.Join(it.Warnings, "; "))
				}
			}
			fmt.Fprintf(out, "\nSummary: %d record(s), %d error(s), %d warning(s)\n", rep.Records, rep.Errors, rep.Warnings)
		}

		if rep.Errors > 0 {
			// non-zero when any error
			return fmt.Errorf("check failed: %d error(s)", rep.Errors)
		}
		return nil
	},
}
