// Package config loads roshambo settings from an HCL file.
//
// Every block and attribute is optional:
//
//	match {
//	  rounds           = 5
//	  stop_early       = true
//	  on_invalid_input = "abort" # or "reprompt"
//	}
//
//	log {
//	  level = "warn"
//	  file  = "roshambo.log"
//	}
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/roshambo/internal/game"
	"github.com/lox/roshambo/internal/match"
)

// DefaultFile is the config file read when --config is not given
const DefaultFile = "roshambo.hcl"

// Config represents the complete configuration
type Config struct {
	Match *MatchSettings `hcl:"match,block"`
	Log   *LogSettings   `hcl:"log,block"`
}

// MatchSettings configures how a match is played
type MatchSettings struct {
	Rounds         *int    `hcl:"rounds,optional"`
	StopEarly      *bool   `hcl:"stop_early,optional"`
	OnInvalidInput *string `hcl:"on_invalid_input,optional"`
}

// LogSettings configures logging
type LogSettings struct {
	Level *string `hcl:"level,optional"`
	File  *string `hcl:"file,optional"`
}

// Settings is the resolved configuration after defaults are applied
type Settings struct {
	BestOf         match.BestOf
	StopEarly      bool
	OnInvalidInput game.InputPolicy
	LogLevel       log.Level
	LogFile        string
}

// Default returns the built-in settings
func Default() Settings {
	return Settings{
		BestOf:         match.DefaultBestOf(),
		StopEarly:      true,
		OnInvalidInput: game.AbortOnInvalid,
		LogLevel:       log.WarnLevel,
	}
}

// Load reads filename. A missing file is not an error and yields an empty
// Config, so only defaults apply.
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	return &cfg, nil
}

// Resolve applies the file on top of base. Every value present in the file is
// validated; the first bad one is returned as an error naming its attribute.
func (c *Config) Resolve(base Settings) (Settings, error) {
	s := base

	if m := c.Match; m != nil {
		if m.Rounds != nil {
			bestOf, err := match.NewBestOf(*m.Rounds)
			if err != nil {
				return s, fmt.Errorf("match.rounds: %w", err)
			}
			s.BestOf = bestOf
		}
		if m.StopEarly != nil {
			s.StopEarly = *m.StopEarly
		}
		if m.OnInvalidInput != nil {
			policy, err := game.ParseInputPolicy(*m.OnInvalidInput)
			if err != nil {
				return s, fmt.Errorf("match.on_invalid_input: %w", err)
			}
			s.OnInvalidInput = policy
		}
	}

	if l := c.Log; l != nil {
		if l.Level != nil {
			level, err := log.ParseLevel(*l.Level)
			if err != nil {
				return s, fmt.Errorf("log.level: %w", err)
			}
			s.LogLevel = level
		}
		if l.File != nil {
			s.LogFile = *l.File
		}
	}

	return s, nil
}
