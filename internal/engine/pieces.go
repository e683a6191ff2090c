package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// generate fills g.moves for the piece at g.from.
func (g *generator) generate() {
	switch g.piece.Type {
	case chess.King:
		g.kingMoves()
	case chess.Queen:
		g.slide(allRays)
	case chess.Bishop:
		g.slide(diagonalRays)
	case chess.Rook:
		g.slide(orthogonalRays)
	case chess.Knight:
		g.knightMoves()
	case chess.Pawn:
		g.pawnMoves()
	}
}

// knightMoves accepts any in-range target not held by the knight's own side.
func (g *generator) knightMoves() {
	g.validateSteps(raySteps(g.from, knightRays, 1), nil)
}

// kingMoves offers the eight adjacent squares and the two castling targets.
func (g *generator) kingMoves() {
	g.validateSteps(raySteps(g.from, allRays, 1), g.blocking(Blocked{}))
	g.validateSteps(g.castlingSteps(), g.castlingValidator())
}
