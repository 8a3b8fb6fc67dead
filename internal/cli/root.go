package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"assessctl/internal/app"
	"assessctl/internal/config"
	"assessctl/internal/console"
	"assessctl/internal/forms"
	"assessctl/internal/store"
	"assessctl/internal/system"
)

var (
	dataFile   string
	configFile string
	accessible bool

	// settings is loaded before any command runs.
	settings config.Config
)

var rootCmd = &cobra.Command{
	Use:   "assessctl",
	Short: "assessctl – continuous assessment console",
	Long:  "assessctl keeps courses, students and their marks, and opens an interactive menu when run without a subcommand.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadSettings()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default action: launch the interactive console
		return runInteractive(cmd)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dataFile, "data", "", "data file to use instead of the configured one")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is <config dir>/config.yaml)")
	rootCmd.Flags().BoolVar(&accessible, "accessible", false, "use plain line prompts instead of forms")
}

func loadSettings() error {
	var err error
	if configFile != "" {
		settings, err = config.LoadFile(configFile)
	} else {
		settings, err = config.Load()
	}
	if err != nil {
		return err
	}
	if dataFile != "" {
		settings.DataFile = dataFile
	}
	return system.SetLevel(settings.LogLevel)
}

func openStore() (*store.DataContext, error) {
	return store.Open(settings.DataFile)
}

func runInteractive(cmd *cobra.Command) error {
	d, err := openStore()
	if err != nil {
		return err
	}
	restore, err := system.LogToFile(settings.LogFile)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = restore() }()

	term := console.New(os.Stdin, cmd.OutOrStdout())
	session := app.New(d, term, forms.NewHuhPrompter(accessible), settings)
	if w, werr := store.Watch(settings.DataFile); werr != nil {
		system.Logger.Warn("data file watch disabled", "err", werr)
	} else {
		defer func() { _ = w.Close() }()
		session.WatchChanges(w)
	}
	err = session.Run()
	term.Clear()
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Execute runs the CLI.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		system.Logger.Error(err.Error())
		os.Exit(1)
	}
}
