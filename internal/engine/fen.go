package engine

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castlingRights holds the castling availability field of a FEN string.
type castlingRights map[chess.Colour][2]bool // [kingside, queenside]

// NewStateFromFEN creates a game state from a FEN string with ours playing
// from the lower side of the board. Step counts are inferred from
// placement, castling rights and the en passant field.
func NewStateFromFEN(fen string, ours chess.Colour) (*chess.GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	state, err := chess.NewGameState(ours)
	if err != nil {
		return nil, err
	}

	if err := parsePiecePositions(state, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(state, parts); err != nil {
		return nil, err
	}

	rights, err := parseCastlingRights(parts)
	if err != nil {
		return nil, err
	}
	inferStepCounts(state, rights)

	if err := parseEnPassant(state, parts); err != nil {
		return nil, err
	}
	parseClocks(state, parts)

	return state, nil
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(state *chess.GameState, positions string) error {
	rank := chess.BoardSize - 1
	file := 0

	for _, c := range positions {
		switch {
		case c == '/':
			if file != chess.BoardSize {
				return fmt.Errorf("short rank %d: %w", rank+1, errors.ErrInvalidFEN)
			}
			rank--
			file = 0
		case c >= '1' && c <= '8':
			file += int(c - '0')
		default:
			pieceType, ok := chess.ParsePieceLetter(byte(c))
			if !ok {
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
			if file >= chess.BoardSize || rank < 0 {
				return fmt.Errorf("position out of bounds: %w", errors.ErrInvalidFEN)
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}

			addr := state.AddressOf(file, rank)
			state.Board.Squares[addr.Row][addr.Col].Occupant = state.Board.NewPiece(pieceType, colour)
			file++
		}
		if file > chess.BoardSize {
			return fmt.Errorf("long rank %d: %w", rank+1, errors.ErrInvalidFEN)
		}
	}
	if rank != 0 || file != chess.BoardSize {
		return fmt.Errorf("incomplete placement: %w", errors.ErrInvalidFEN)
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(state *chess.GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	var toMove chess.Colour
	switch parts[1] {
	case "w":
		toMove = chess.White
	case "b":
		toMove = chess.Black
	default:
		return fmt.Errorf("invalid side to move: %s: %w", parts[1], errors.ErrInvalidFEN)
	}
	state.CurrentTurn = chess.Enemy
	if state.IsOurs(toMove) {
		state.CurrentTurn = chess.Our
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(parts []string) (castlingRights, error) {
	rights := castlingRights{}
	if len(parts) < 3 || parts[2] == "-" {
		return rights, nil
	}
	for _, c := range parts[2] {
		colour := chess.White
		if unicode.IsLower(c) {
			colour = chess.Black
		}
		r := rights[colour]
		switch unicode.ToLower(c) {
		case 'k':
			r[0] = true
		case 'q':
			r[1] = true
		default:
			return nil, fmt.Errorf("invalid castling character: %c: %w", c, errors.ErrInvalidFEN)
		}
		rights[colour] = r
	}
	return rights, nil
}

// inferStepCounts gives every piece the smallest step count consistent with
// its square and the castling rights.
func inferStepCounts(state *chess.GameState, rights castlingRights) {
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		king := kingHome(state, colour)
		kingside := rookHome(king, state.Castling.Kingside)
		queenside := rookHome(king, state.Castling.Queenside)
		r := rights[colour]

		for _, addr := range state.Board.Pieces(colour) {
			p := state.Board.Occupant(addr)
			switch p.Type {
			case chess.Pawn:
				p.StepCount = abs(addr.Row - state.PawnRow(colour))
			case chess.King:
				if addr != king || (!r[0] && !r[1]) {
					p.StepCount = 1
				}
			case chess.Rook:
				home := (addr == kingside && r[0]) || (addr == queenside && r[1])
				if !home {
					p.StepCount = 1
				}
			}
		}
	}
}

// parseEnPassant parses the en passant target square field. The pawn that
// just passed the square is given a single step and recorded as the last move.
func parseEnPassant(state *chess.GameState, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	skipped, err := state.ParseSquareName(parts[3])
	if err != nil {
		return fmt.Errorf("en passant square %q: %w", parts[3], errors.ErrInvalidFEN)
	}

	mover := state.TurnColour().Opposite()
	forward := state.Forward(mover)
	if skipped.Row != state.PawnRow(mover)+forward {
		return fmt.Errorf("en passant square %s off the double step row: %w", parts[3], errors.ErrInvalidFEN)
	}
	landing := skipped.Offset(forward, 0)
	p := state.Board.Occupant(landing)
	if p == nil || p.Type != chess.Pawn || p.Colour != mover {
		return fmt.Errorf("no pawn passed %s: %w", parts[3], errors.ErrInvalidFEN)
	}
	p.StepCount = 1
	state.LastMove = &chess.LastMove{From: skipped.Offset(-forward, 0), To: landing}
	return nil
}

// parseClocks parses the fullmove number field. The halfmove clock is not tracked.
func parseClocks(state *chess.GameState, parts []string) {
	if len(parts) >= 6 {
		fmt.Sscanf(parts[5], "%d", &state.MoveNumber) //nolint:errcheck // keeps the default on bad input
	}
}

// kingHome returns the starting square of colour's king.
func kingHome(state *chess.GameState, colour chess.Colour) chess.Address {
	col := 0
	for i, t := range chess.BackRank(state.OurColour) {
		if t == chess.King {
			col = i
		}
	}
	return chess.Address{Row: state.HomeRow(colour), Col: col}
}

// StateToFEN converts a game state to a FEN string.
func StateToFEN(state *chess.GameState) string {
	var sb strings.Builder

	writePiecePositions(&sb, state)
	sb.WriteByte(' ')
	writeSideToMove(&sb, state)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, state)
	sb.WriteByte(' ')
	writeEnPassant(&sb, state)
	fmt.Fprintf(&sb, " 0 %d", state.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, state *chess.GameState) {
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			p := state.Board.Occupant(state.AddressOf(file, rank))
			if p == nil {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			letter := p.Type.Letter()
			if p.Colour == chess.Black {
				letter = byte(unicode.ToLower(rune(letter)))
			}
			sb.WriteByte(letter)
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, state *chess.GameState) {
	if state.TurnColour() == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, state *chess.GameState) {
	hasCastling := false
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		kingside, queenside := canStillCastle(state, colour)
		letters := []byte{'K', 'Q'}
		if colour == chess.Black {
			letters = []byte{'k', 'q'}
		}
		if kingside {
			sb.WriteByte(letters[0])
			hasCastling = true
		}
		if queenside {
			sb.WriteByte(letters[1])
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// canStillCastle reports whether colour's king and each rook are unmoved on their home squares.
func canStillCastle(state *chess.GameState, colour chess.Colour) (kingside, queenside bool) {
	home := kingHome(state, colour)
	king := state.Board.Occupant(home)
	if king == nil || king.Type != chess.King || king.Colour != colour || king.HasMoved() {
		return false, false
	}
	unmovedRook := func(a chess.Address) bool {
		p := state.Board.Occupant(a)
		return p != nil && p.Type == chess.Rook && p.Colour == colour && !p.HasMoved()
	}
	return unmovedRook(rookHome(home, state.Castling.Kingside)),
		unmovedRook(rookHome(home, state.Castling.Queenside))
}

// writeEnPassant writes the square skipped by a double pawn step on the last move.
func writeEnPassant(sb *strings.Builder, state *chess.GameState) {
	lm := state.LastMove
	if lm != nil && abs(lm.To.Row-lm.From.Row) == 2 && lm.To.Col == lm.From.Col {
		if p := state.Board.Occupant(lm.To); p != nil && p.Type == chess.Pawn && p.StepCount == 1 {
			skipped := chess.Address{Row: (lm.From.Row + lm.To.Row) / 2, Col: lm.To.Col}
			sb.WriteString(state.SquareName(skipped))
			return
		}
	}
	sb.WriteByte('-')
}

// MustStateFromFEN is like NewStateFromFEN but panics on error. It is meant
// for fixed positions in tests and examples.
func MustStateFromFEN(fen string, ours chess.Colour) *chess.GameState {
	state, err := NewStateFromFEN(fen, ours)
	if err != nil {
		panic(err)
	}
	return state
}
