package main

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// moveSpec is one move read from the command line. Promote is set when the
// token names a promotion piece.
type moveSpec struct {
	From    chess.Address
	To      chess.Address
	Promote *chess.PieceType
}

// parseColour converts a -colour value. Random is reported separately.
func parseColour(s string) (colour chess.Colour, random bool, err error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "white", "w":
		return chess.White, false, nil
	case "black", "b":
		return chess.Black, false, nil
	case "random", "r", "":
		return chess.White, true, nil
	default:
		return chess.White, false, fmt.Errorf("colour %q: %w", s, errors.ErrInvalidColourAssignment)
	}
}

// parsePromotion converts a promotion letter to a piece type.
func parsePromotion(s string) (chess.PieceType, error) {
	if len(s) == 1 {
		if pt, ok := chess.ParsePieceLetter(s[0]); ok && chess.CanPromoteTo(pt) {
			return pt, nil
		}
	}
	return chess.Queen, fmt.Errorf("promotion piece %q: %w", s, errors.ErrIllegalMove)
}

// parseSquare accepts either an algebraic name or the row-col form.
func parseSquare(state *chess.GameState, s string) (chess.Address, error) {
	if strings.Contains(s, "-") {
		return chess.ParseAddress(s)
	}
	return state.ParseSquareName(s)
}

// parseMove parses "e2e4", "b7b8q", "6-4:4-4" or "1-1:0-1:q".
func parseMove(state *chess.GameState, token string) (moveSpec, error) {
	token = strings.TrimSpace(token)
	var from, to, promo string

	if strings.Contains(token, ":") {
		parts := strings.Split(token, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return moveSpec{}, fmt.Errorf("move %q: %w", token, errors.ErrInvalidAddress)
		}
		from, to = parts[0], parts[1]
		if len(parts) == 3 {
			promo = parts[2]
		}
	} else {
		if len(token) != 4 && len(token) != 5 {
			return moveSpec{}, fmt.Errorf("move %q: %w", token, errors.ErrInvalidAddress)
		}
		from, to, promo = token[0:2], token[2:4], token[4:]
	}

	var spec moveSpec
	var err error
	if spec.From, err = parseSquare(state, from); err != nil {
		return moveSpec{}, fmt.Errorf("move %q: %w", token, err)
	}
	if spec.To, err = parseSquare(state, to); err != nil {
		return moveSpec{}, fmt.Errorf("move %q: %w", token, err)
	}
	if promo != "" {
		pt, err := parsePromotion(promo)
		if err != nil {
			return moveSpec{}, fmt.Errorf("move %q: %w", token, err)
		}
		spec.Promote = &pt
	}
	return spec, nil
}

// splitMoves splits a comma or space separated move list.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n'
	})
}
