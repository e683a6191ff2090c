// Package render draws a game state for people: a coloured terminal board
// and an SVG snapshot.
package render

import (
	"github.com/fatih/color"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Theme holds the terminal colours used by Text.
type Theme struct {
	SquareLight color.Attribute
	SquareDark  color.Attribute
	LastMove    color.Attribute
	Suggestion  color.Attribute
	White       color.Attribute
	Black       color.Attribute
	Label       color.Attribute
}

// DefaultTheme is used by Text.
var DefaultTheme = Theme{
	SquareLight: color.BgHiWhite,
	SquareDark:  color.BgGreen,
	LastMove:    color.BgYellow,
	Suggestion:  color.BgCyan,
	White:       color.FgHiBlue,
	Black:       color.FgBlack,
	Label:       color.FgHiBlack,
}

// SVG palette.
const (
	svgLight      = "#f0d9b5"
	svgDark       = "#b58863"
	svgLastMove   = "#cdd26a"
	svgSuggestion = "#1e90ff"
)

// glyphs holds the unicode symbols indexed by piece type.
var (
	whiteGlyphs = [...]string{"♔", "♕", "♗", "♘", "♖", "♙"}
	blackGlyphs = [...]string{"♚", "♛", "♝", "♞", "♜", "♟"}
)

// Glyph returns the unicode symbol of p, or a space for nil.
func Glyph(p *chess.Piece) string {
	if p == nil || p.Type < chess.King || p.Type > chess.Pawn {
		return " "
	}
	if p.Colour == chess.White {
		return whiteGlyphs[p.Type]
	}
	return blackGlyphs[p.Type]
}

// isLastMove reports whether a is either end of the last relocation.
func isLastMove(state *chess.GameState, a chess.Address) bool {
	lm := state.LastMove
	return lm != nil && (lm.From == a || lm.To == a)
}

// files returns the file letters in column order for this orientation.
func files(state *chess.GameState) []string {
	out := make([]string, chess.BoardSize)
	for col := range out {
		out[col] = state.SquareName(chess.Address{Row: chess.BoardSize - 1, Col: col})[:1]
	}
	return out
}

// rank returns the rank digit of row in this orientation.
func rank(state *chess.GameState, row int) string {
	return state.SquareName(chess.Address{Row: row, Col: 0})[1:]
}
