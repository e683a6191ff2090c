package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithStrictEnPassant enables the last-move requirement for en passant.
func (b *ConfigBuilder) WithStrictEnPassant(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictEnPassant = enabled
	return b
}

// WithSquareSize sets the SVG square size.
func (b *ConfigBuilder) WithSquareSize(size int) *ConfigBuilder {
	b.cfg.Render.SquareSize = size
	return b
}

// WithColour controls ANSI colours in terminal output.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Render.UseColour = enabled
	return b
}

// ShowSuggestions controls whether suggested squares are marked.
func (b *ConfigBuilder) ShowSuggestions(show bool) *ConfigBuilder {
	b.cfg.Render.ShowSuggestions = show
	return b
}

// ShowLabels controls whether file and rank labels are printed.
func (b *ConfigBuilder) ShowLabels(show bool) *ConfigBuilder {
	b.cfg.Render.ShowLabels = show
	return b
}
