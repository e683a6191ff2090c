package main

import (
	"reflect"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseColour(t *testing.T) {
	tests := []struct {
		in         string
		want       chess.Colour
		wantRandom bool
		wantErr    bool
	}{
		{"white", chess.White, false, false},
		{"W", chess.White, false, false},
		{"black", chess.Black, false, false},
		{" b ", chess.Black, false, false},
		{"random", chess.White, true, false},
		{"", chess.White, true, false},
		{"green", chess.White, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, random, err := parseColour(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseColour(%q) error = %v; wantErr %v", tt.in, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, errors.ErrInvalidColourAssignment) {
					t.Errorf("error = %v; want ErrInvalidColourAssignment", err)
				}
				return
			}
			if got != tt.want || random != tt.wantRandom {
				t.Errorf("parseColour(%q) = %v, %v; want %v, %v", tt.in, got, random, tt.want, tt.wantRandom)
			}
		})
	}
}

func TestParsePromotion(t *testing.T) {
	for in, want := range map[string]chess.PieceType{
		"q": chess.Queen, "R": chess.Rook, "b": chess.Bishop, "n": chess.Knight,
	} {
		got, err := parsePromotion(in)
		if err != nil || got != want {
			t.Errorf("parsePromotion(%q) = %v, %v; want %v", in, got, err, want)
		}
	}

	for _, in := range []string{"k", "p", "qq", ""} {
		if _, err := parsePromotion(in); !errors.Is(err, errors.ErrIllegalMove) {
			t.Errorf("parsePromotion(%q) error = %v; want ErrIllegalMove", in, err)
		}
	}
}

func TestParseMove(t *testing.T) {
	white, _ := chess.NewGameState(chess.White)
	black, _ := chess.NewGameState(chess.Black)
	knight := chess.Knight

	tests := []struct {
		name    string
		state   *chess.GameState
		token   string
		want    moveSpec
		wantErr error
	}{
		{
			name:  "algebraic ours white",
			state: white,
			token: "e2e4",
			want:  moveSpec{From: chess.Address{Row: 6, Col: 4}, To: chess.Address{Row: 4, Col: 4}},
		},
		{
			name:  "algebraic ours black",
			state: black,
			token: "e7e5",
			want:  moveSpec{From: chess.Address{Row: 6, Col: 3}, To: chess.Address{Row: 4, Col: 3}},
		},
		{
			name:  "algebraic with promotion",
			state: white,
			token: "b7b8n",
			want:  moveSpec{From: chess.Address{Row: 1, Col: 1}, To: chess.Address{Row: 0, Col: 1}, Promote: &knight},
		},
		{
			name:  "row-col",
			state: white,
			token: "6-4:4-4",
			want:  moveSpec{From: chess.Address{Row: 6, Col: 4}, To: chess.Address{Row: 4, Col: 4}},
		},
		{
			name:  "row-col with promotion",
			state: black,
			token: " 1-1:0-1:n ",
			want:  moveSpec{From: chess.Address{Row: 1, Col: 1}, To: chess.Address{Row: 0, Col: 1}, Promote: &knight},
		},
		{name: "too short", state: white, token: "e2", wantErr: errors.ErrInvalidAddress},
		{name: "off board", state: white, token: "e2e9", wantErr: errors.ErrOutOfBounds},
		{name: "row-col off board", state: white, token: "6-4:8-4", wantErr: errors.ErrOutOfBounds},
		{name: "too many parts", state: white, token: "6-4:4-4:q:x", wantErr: errors.ErrInvalidAddress},
		{name: "bad promotion", state: white, token: "b7b8k", wantErr: errors.ErrIllegalMove},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMove(tt.state, tt.token)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("parseMove(%q) error = %v; want %v", tt.token, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseMove(%q) unexpected error: %v", tt.token, err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseMove(%q) = %+v; want %+v", tt.token, got, tt.want)
			}
		})
	}
}

func TestSplitMoves(t *testing.T) {
	got := splitMoves("e2e4, e7e5,,g1f3\tb8c6\n")
	want := []string{"e2e4", "e7e5", "g1f3", "b8c6"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("splitMoves() = %v; want %v", got, want)
	}
	if got := splitMoves(""); len(got) != 0 {
		t.Errorf("splitMoves(\"\") = %v; want empty", got)
	}
}
