package config

import (
	"flag"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Default values for configuration
const (
	DefaultWidth    = 800
	DefaultHeight   = 500
	DefaultLogLevel = "info"

	MinWidth  = 200
	MinHeight = 150
)

// Config holds the application configuration
type Config struct {
	Width      int
	Height     int
	Seed       int64
	ThemePath  string
	LogFile    string
	LogLevel   logrus.Level
	ProfileDir string
	Theme      Theme
}

// ParseArgs parses command line arguments and returns a Config
func ParseArgs(args []string) (*Config, error) {
	fs := flag.NewFlagSet("mousepong", flag.ContinueOnError)

	width := fs.Int("width", DefaultWidth, "logical court width")
	height := fs.Int("height", DefaultHeight, "logical court height")
	seed := fs.Int64("seed", 0, "random seed for serves (0 = time based)")
	theme := fs.String("theme", "", "YAML theme file")
	logFile := fs.String("log", "", "write logs to this file")
	logLevel := fs.String("log-level", DefaultLogLevel, "log level (debug, info, warn, error)")
	profileDir := fs.String("cpuprofile", "", "write a CPU profile into this directory")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() > 0 {
		return nil, errors.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	if *width < MinWidth {
		return nil, errors.Errorf("width must be at least %d, got %d", MinWidth, *width)
	}
	if *height < MinHeight {
		return nil, errors.Errorf("height must be at least %d, got %d", MinHeight, *height)
	}

	level, err := logrus.ParseLevel(*logLevel)
	if err != nil {
		return nil, errors.Wrap(err, "invalid --log-level")
	}

	cfg := &Config{
		Width:      *width,
		Height:     *height,
		Seed:       *seed,
		ThemePath:  *theme,
		LogFile:    *logFile,
		LogLevel:   level,
		ProfileDir: *profileDir,
		Theme:      DefaultTheme(),
	}

	if cfg.ThemePath != "" {
		t, err := LoadTheme(cfg.ThemePath)
		if err != nil {
			return nil, err
		}
		cfg.Theme = t
	}

	return cfg, nil
}
