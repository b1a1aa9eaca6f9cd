package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/lox/roshambo/internal/config"
	"github.com/lox/roshambo/internal/display"
)

// Globals are flags shared by every command
type Globals struct {
	Config   string `short:"c" default:"${config_file}" help:"Path to HCL configuration file"`
	LogLevel string `help:"Log level (debug|info|warn|error), overrides config"`
	LogFile  string `help:"Write logs to this file instead of stderr, overrides config"`
	NoColor  bool   `help:"Disable colored output"`
}

// settings loads the config file and applies the global overrides
func (g *Globals) settings() (config.Settings, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return config.Settings{}, err
	}

	s, err := cfg.Resolve(config.Default())
	if err != nil {
		return s, fmt.Errorf("%s: %w", g.Config, err)
	}

	if g.LogLevel != "" {
		level, err := log.ParseLevel(g.LogLevel)
		if err != nil {
			return s, fmt.Errorf("--log-level: %w", err)
		}
		s.LogLevel = level
	}
	if g.LogFile != "" {
		s.LogFile = g.LogFile
	}
	return s, nil
}

func (g *Globals) console(out io.Writer) *display.Console {
	if g.NoColor {
		return display.NewConsole(out, display.WithoutColor())
	}
	return display.NewConsole(out)
}
