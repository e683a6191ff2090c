package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// Text writes the board as rows of three-character cells, row 0 first.
// Without colour, suggested squares are bracketed and last-move squares
// carry a trailing apostrophe.
func Text(w io.Writer, state *chess.GameState, cfg *config.RenderConfig) error {
	if cfg == nil {
		cfg = config.NewRenderConfig()
	}
	t := DefaultTheme
	label := color.New(t.Label)

	for row := 0; row < chess.BoardSize; row++ {
		var sb strings.Builder
		if cfg.ShowLabels {
			sb.WriteString(paint(label, cfg.UseColour, rank(state, row)+" "))
		}
		for col := 0; col < chess.BoardSize; col++ {
			sb.WriteString(cell(state, chess.Address{Row: row, Col: col}, cfg, t))
		}
		if _, err := fmt.Fprintln(w, sb.String()); err != nil {
			return err
		}
	}

	if cfg.ShowLabels {
		var sb strings.Builder
		sb.WriteString("  ")
		for _, f := range files(state) {
			sb.WriteString(" " + f + " ")
		}
		if _, err := fmt.Fprintln(w, paint(label, cfg.UseColour, sb.String())); err != nil {
			return err
		}
	}
	return nil
}

// cell renders one square.
func cell(state *chess.GameState, a chess.Address, cfg *config.RenderConfig, t Theme) string {
	sq := &state.Board.Squares[a.Row][a.Col]
	glyph := Glyph(sq.Occupant)
	suggested := cfg.ShowSuggestions && sq.Suggesting
	last := isLastMove(state, a)

	if !cfg.UseColour {
		if glyph == " " {
			glyph = "."
		}
		switch {
		case suggested:
			return "[" + glyph + "]"
		case last:
			return " " + glyph + "'"
		default:
			return " " + glyph + " "
		}
	}

	bg := t.SquareLight
	if sq.Colour == chess.Dark {
		bg = t.SquareDark
	}
	if last {
		bg = t.LastMove
	}
	if suggested {
		bg = t.Suggestion
		if glyph == " " {
			glyph = "•"
		}
	}
	fg := t.White
	if sq.Occupant != nil && sq.Occupant.Colour == chess.Black {
		fg = t.Black
	}
	return paint(color.New(bg, fg), true, " "+glyph+" ")
}

// paint applies c to s when colour output is on.
func paint(c *color.Color, on bool, s string) string {
	if !on {
		return s
	}
	return c.Sprint(s)
}
