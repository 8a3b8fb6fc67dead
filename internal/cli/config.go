package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfg "assessctl/internal/config"
)

func init() { rootCmd.AddCommand(configCmd) }

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Initialize and show configuration locations",
	Long:  "Create the assessctl config directory and config.yaml when missing, then print where configuration, data and logs live.",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := configFile
		if path == "" {
			p, err := cfg.Path()
			if err != nil {
				return err
			}
			path = p
		}

		out := cmd.OutOrStdout()
		if fileExists(path) {
			fmt.Fprintf(out, "• keeping existing config: %s\n", path)
		} else {
			c, err := cfg.Default()
			if err != nil {
				return err
			}
			if err := cfg.SaveFile(path, c); err != nil {
				return err
			}
			fmt.Fprintf(out, "✓ created config: %s\n", path)
		}

		fmt.Fprintf(out, "\ndata file: %s\n", settings.DataFile)
		fmt.Fprintf(out, "log file:  %s\n", settings.LogFile)
		return nil
	},
}

func fileExists(path string) bool {
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		return true
	}
	return false
}
