package render

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// SVG writes a snapshot of the board: one rect per square, a glyph per
// piece, a dot on each suggested square and tinted last-move squares.
func SVG(w io.Writer, state *chess.GameState, cfg *config.RenderConfig) error {
	if cfg == nil {
		cfg = config.NewRenderConfig()
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	size := cfg.SquareSize
	margin := 0
	if cfg.ShowLabels {
		margin = size / 2
	}
	edge := size*chess.BoardSize + margin

	canvas := svg.New(w)
	canvas.Start(edge, edge)
	canvas.Title(fmt.Sprintf("%v to move", state.TurnColour()))

	canvas.Gid("squares")
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			a := chess.Address{Row: row, Col: col}
			fill := svgLight
			if state.Board.Squares[row][col].Colour == chess.Dark {
				fill = svgDark
			}
			if isLastMove(state, a) {
				fill = svgLastMove
			}
			canvas.Rect(margin+col*size, row*size, size, size, "fill:"+fill)
		}
	}
	canvas.Gend()

	canvas.Gid("pieces")
	glyphStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", size*3/4)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			sq := &state.Board.Squares[row][col]
			cx, cy := margin+col*size+size/2, row*size+size/2
			if sq.Occupant != nil {
				canvas.Text(cx, cy, Glyph(sq.Occupant), glyphStyle)
			}
			if cfg.ShowSuggestions && sq.Suggesting {
				canvas.Circle(cx, cy, size/6, "fill:"+svgSuggestion+";fill-opacity:0.6")
			}
		}
	}
	canvas.Gend()

	if cfg.ShowLabels {
		labelStyle := fmt.Sprintf("text-anchor:middle;dominant-baseline:central;font-size:%dpx", size/4)
		canvas.Gid("labels")
		for row := 0; row < chess.BoardSize; row++ {
			canvas.Text(margin/2, row*size+size/2, rank(state, row), labelStyle)
		}
		for col, f := range files(state) {
			canvas.Text(margin+col*size+size/2, chess.BoardSize*size+margin/2, f, labelStyle)
		}
		canvas.Gend()
	}

	canvas.End()
	return nil
}
