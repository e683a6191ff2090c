// Package config provides configuration for the rules engine and its collaborators.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// 0=nothing, 1=game events, 2=running commentary of every move
	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer

	// Grouped settings
	Rules  *RulesConfig
	Render *RenderConfig
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
		Rules:      NewRulesConfig(),
		Render:     NewRenderConfig(),
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks every grouped setting.
func (c *Config) Validate() error {
	if c.Render != nil {
		if err := c.Render.Validate(); err != nil {
			return err
		}
	}
	return nil
}
