// Package engine provides move generation, classification and move application.
package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction names one ray or fixed offset a piece can step along.
type Direction int

const (
	Top Direction = iota
	Bottom
	Left
	Right
	TopLeft
	TopRight
	BottomLeft
	BottomRight

	// Knight jumps, named by the long leg first.
	KnightTopLeft
	KnightTopRight
	KnightLeftTop
	KnightLeftBottom
	KnightRightTop
	KnightRightBottom
	KnightBottomLeft
	KnightBottomRight

	// Pawn directions, relative to the side the pawn advances towards.
	Forward
	ForwardLeft
	ForwardRight

	// King pseudo-directions.
	CastleKingside
	CastleQueenside
)

var directionNames = [...]string{
	"top", "bottom", "left", "right", "topLeft", "topRight", "bottomLeft", "bottomRight",
	"knightTopLeft", "knightTopRight", "knightLeftTop", "knightLeftBottom",
	"knightRightTop", "knightRightBottom", "knightBottomLeft", "knightBottomRight",
	"forward", "forwardLeft", "forwardRight",
	"castleKingside", "castleQueenside",
}

// String returns the name of the direction.
func (d Direction) String() string {
	if d >= 0 && int(d) < len(directionNames) {
		return directionNames[d]
	}
	return "unknown"
}

// ray is a direction together with its unit offset.
type ray struct {
	dir        Direction
	dRow, dCol int
}

var (
	diagonalRays = []ray{
		{TopLeft, -1, -1},
		{TopRight, -1, 1},
		{BottomLeft, 1, -1},
		{BottomRight, 1, 1},
	}
	orthogonalRays = []ray{
		{Left, 0, -1},
		{Top, -1, 0},
		{Right, 0, 1},
		{Bottom, 1, 0},
	}
	allRays    = append(append([]ray{}, diagonalRays...), orthogonalRays...)
	knightRays = []ray{
		{KnightTopLeft, -2, -1},
		{KnightTopRight, -2, 1},
		{KnightLeftTop, -1, -2},
		{KnightLeftBottom, 1, -2},
		{KnightRightTop, -1, 2},
		{KnightRightBottom, 1, 2},
		{KnightBottomLeft, 2, -1},
		{KnightBottomRight, 2, 1},
	}
)

// Step is one candidate target along a direction.
type Step struct {
	Direction Direction
	Target    chess.Address
}

// raySteps returns, for each ray, the target at the given distance from from.
func raySteps(from chess.Address, rays []ray, distance int) []Step {
	steps := make([]Step, len(rays))
	for i, r := range rays {
		steps[i] = Step{
			Direction: r.dir,
			Target:    from.Offset(r.dRow*distance, r.dCol*distance),
		}
	}
	return steps
}

// Validator decides whether a step is legal for domain reasons and, if so,
// classifies it. Bounds and same-colour checks are applied around it.
type Validator func(step Step) (chess.MoveType, bool)

// Blocked records the directions already obstructed during one generation pass.
type Blocked map[Direction]bool

// exhausted reports whether no step can produce a further move: every
// direction is either blocked or has left the board.
func (b Blocked) exhausted(steps []Step) bool {
	for _, s := range steps {
		if !b[s.Direction] && s.Target.InBounds() {
			return false
		}
	}
	return true
}

// generator accumulates the candidates of one piece during one pass.
type generator struct {
	rules Rules
	state *chess.GameState
	from  chess.Address
	piece *chess.Piece
	moves []chess.Candidate
}

// validateSteps appends every legal step to the candidate list.
func (g *generator) validateSteps(steps []Step, validate Validator) {
	for _, step := range steps {
		if step.Target.IsNone() || !step.Target.InBounds() {
			continue
		}

		moveType := chess.Standard
		if validate != nil {
			t, ok := validate(step)
			if !ok {
				continue
			}
			moveType = t
		}

		// No self-capture.
		if occupant := g.state.Board.Occupant(step.Target); occupant != nil && occupant.Colour == g.piece.Colour {
			continue
		}

		g.moves = append(g.moves, chess.Candidate{Target: step.Target, Type: moveType})
	}
}

// blocking returns the default validator: a direction stays open until it
// yields an occupied square, after which it is closed for greater distances.
func (g *generator) blocking(blocked Blocked) Validator {
	return func(step Step) (chess.MoveType, bool) {
		if blocked[step.Direction] {
			return 0, false
		}
		blocked[step.Direction] = g.state.Board.Occupant(step.Target) != nil
		return chess.Standard, true
	}
}

// slide walks every ray outward, one distance per call to validateSteps.
func (g *generator) slide(rays []ray) {
	blocked := Blocked{}
	for distance := 1; distance < chess.BoardSize; distance++ {
		steps := raySteps(g.from, rays, distance)
		g.validateSteps(steps, g.blocking(blocked))
		if blocked.exhausted(steps) {
			break
		}
	}
}
