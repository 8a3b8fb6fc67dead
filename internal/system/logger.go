package system

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	clog "github.com/charmbracelet/log"
)

// LogLevelEnv overrides the configured log level.
const LogLevelEnv = "ASSESSCTL_LOG_LEVEL"

// Logger is the shared application logger for CLI output.
// It prints to stderr with timestamps enabled for better UX.
var Logger = clog.NewWithOptions(os.Stderr, clog.Options{
	ReportTimestamp: true,
})

// SetLevel applies level, or the LogLevelEnv override when set.
// An empty level keeps the current one.
func SetLevel(level string) error {
	if env := strings.TrimSpace(os.Getenv(LogLevelEnv)); env != "" {
		level = env
	}
	if strings.TrimSpace(level) == "" {
		return nil
	}
	lvl, err := clog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return fmt.Errorf("log level %q: %w", level, err)
	}
	Logger.SetLevel(lvl)
	return nil
}

// LogToFile sends Logger output to path until the returned func is called,
// which restores stderr. The interactive screen owns the terminal, so log
// lines must not land on it.
func LogToFile(path string) (func() error, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, err
	}
	Logger.SetOutput(f)
	return func() error {
		Logger.SetOutput(os.Stderr)
		return f.Close()
	}, nil
}

// SetOutput redirects Logger; tests use it to capture log lines.
func SetOutput(w io.Writer) { Logger.SetOutput(w) }
