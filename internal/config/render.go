package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// RenderConfig holds settings for the board renderers.
type RenderConfig struct {
	// SquareSize is the edge length of one square in SVG output
	SquareSize int

	// UseColour enables ANSI colours in the terminal board
	UseColour bool

	// ShowSuggestions marks squares flagged as suggestions
	ShowSuggestions bool

	// ShowLabels prints file and rank labels around the board
	ShowLabels bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		SquareSize:      60,
		UseColour:       true,
		ShowSuggestions: true,
		ShowLabels:      true,
	}
}

// Validate checks that the render configuration is valid.
func (r *RenderConfig) Validate() error {
	if r.SquareSize <= 0 {
		return fmt.Errorf("square size (%d) must be positive: %w", r.SquareSize, errors.ErrInvalidConfig)
	}
	return nil
}
