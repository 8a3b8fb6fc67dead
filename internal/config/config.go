package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperr "assessctl/internal/errors"
)

// Config is the on-disk application configuration.
type Config struct {
	// DataFile is the JSON data file holding courses, students and marks.
	DataFile string `yaml:"data_file"`
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
	// LogFile receives log output while the interactive screen is open.
	LogFile string  `yaml:"log_file"`
	Grading Grading `yaml:"grading"`
}

// Grading bounds the component scores accepted when recording marks.
type Grading struct {
	MaxAttendance float64 `yaml:"max_attendance"`
	MaxAssignment float64 `yaml:"max_assignment"`
	MaxEndOfTerm  float64 `yaml:"max_end_of_term"`
}

// DefaultGrading splits 100 marks as 10 attendance, 30 assignment and 60
// end of term.
var DefaultGrading = Grading{MaxAttendance: 10, MaxAssignment: 30, MaxEndOfTerm: 60}

// Default returns the configuration used when no file exists.
func Default() (Config, error) {
	dir, err := Dir()
	if err != nil {
		return Config{}, err
	}
	return Config{
		DataFile: filepath.Join(dir, "data.json"),
		LogLevel: "info",
		LogFile:  filepath.Join(dir, AppName+".log"),
		Grading:  DefaultGrading,
	}, nil
}

// Load reads the default config file. Missing file yields Default.
func Load() (Config, error) {
	p, err := Path()
	if err != nil {
		return Config{}, err
	}
	return LoadFile(p)
}

// LoadFile reads the config at path. Missing file yields Default; fields
// absent from the file keep their default values.
func LoadFile(path string) (Config, error) {
	cfg, err := Default()
	if err != nil {
		return cfg, err
	}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, apperr.Wrap(err, apperr.CodeConfigInvalid, fmt.Sprintf("parse %s", path))
	}
	cfg.DataFile = expandHome(cfg.DataFile)
	cfg.LogFile = expandHome(cfg.LogFile)
	return cfg, cfg.Validate()
}

// Save writes cfg to the default config path.
func Save(cfg Config) error {
	p, err := Path()
	if err != nil {
		return err
	}
	return SaveFile(p, cfg)
}

// SaveFile writes cfg to path, creating the directory if needed.
func SaveFile(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

// Validate rejects configurations the application cannot run with.
func (c Config) Validate() error {
	if strings.TrimSpace(c.DataFile) == "" {
		return apperr.ConfigInvalid("data_file is empty")
	}
	g := c.Grading
	if g.MaxAttendance < 0 || g.MaxAssignment < 0 || g.MaxEndOfTerm < 0 {
		return apperr.ConfigInvalid("grading maxima must not be negative")
	}
	if g.MaxAttendance+g.MaxAssignment+g.MaxEndOfTerm <= 0 {
		return apperr.ConfigInvalid("grading maxima add up to zero")
	}
	return nil
}

func expandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
