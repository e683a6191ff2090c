// chess-rules replays moves through the rules engine and prints the
// resulting board, its FEN and the legal moves of a chosen piece.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/render"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chess-rules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	closeOutput, err := setupOutputFile(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg)
	closeOutput()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setupOutputFile points the output at the -o file. The returned func
// closes it and must be called once output is complete.
func setupOutputFile(cfg *config.Config) (func(), error) {
	if *outputFile == "" {
		return func() {}, nil
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		return nil, fmt.Errorf("creating output file %s: %w", *outputFile, err)
	}
	cfg.OutputFile = file
	return func() {
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}, nil
}

// run sets up a game from the flags, replays the moves and writes the report.
func run(cfg *config.Config) error {
	g := game.New(cfg)
	if err := setupGame(g); err != nil {
		return err
	}

	defaultPromotion, err := parsePromotion(*promoteFlag)
	if err != nil {
		return err
	}
	if err := replay(g, splitMoves(*movesFlag), defaultPromotion); err != nil {
		return err
	}

	out := cfg.OutputFile
	var listed []chess.Candidate
	if *listFlag != "" {
		from, err := parseSquare(g.State(), *listFlag)
		if err != nil {
			return err
		}
		if listed, err = g.GenerateMoves(from); err != nil {
			return err
		}
		if err := g.SuggestSquares(listed); err != nil {
			return err
		}
	}

	if err := report(out, g, cfg); err != nil {
		return err
	}
	if *listFlag != "" {
		fmt.Fprintf(out, "Moves from %s: %s\n", *listFlag, formatCandidates(g.State(), listed))
	}
	if *allFlag {
		moves, err := g.LegalMoves()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Legal moves (%d): %s\n", len(moves), formatMoves(g.State(), moves))
	}

	if *svgFile != "" {
		return writeSVG(*svgFile, g.State(), cfg.Render)
	}
	return nil
}

// setupGame applies -colour and -fen.
func setupGame(g *game.Game) error {
	ours, random, err := parseColour(*colourFlag)
	if err != nil {
		return err
	}
	if *fenFlag != "" {
		return g.LoadFEN(*fenFlag, ours)
	}
	if random {
		_, err := g.SetupRandom()
		return err
	}
	return g.Setup(ours)
}

// replay applies each move token, classified from the generated targets.
// Promotions are resolved with the token's piece or the default.
func replay(g *game.Game, tokens []string, defaultPromotion chess.PieceType) error {
	for i, token := range tokens {
		spec, err := parseMove(g.State(), token)
		if err != nil {
			return err
		}

		moveType := chess.Standard
		cands, err := g.GenerateMoves(spec.From)
		if err != nil {
			return err
		}
		if c, ok := chess.Lookup(cands, spec.To); ok {
			moveType = c.Type
		}

		state, err := g.ApplyMove(chess.Move{From: spec.From, To: spec.To, Type: moveType})
		if err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, token, err)
		}
		if state.Promotion != nil {
			chosen := defaultPromotion
			if spec.Promote != nil {
				chosen = *spec.Promote
			}
			if _, err := g.ResolvePromotion(state.Promotion.Address, chosen); err != nil {
				return fmt.Errorf("move %d (%s): %w", i+1, token, err)
			}
		}
	}
	return nil
}

// report writes the board, FEN and side to move.
func report(w io.Writer, g *game.Game, cfg *config.Config) error {
	state := g.State()
	fmt.Fprintf(w, "Game %s, %v playing from the bottom\n", g.Name, state.OurColour)
	if err := render.Text(w, state, cfg.Render); err != nil {
		return err
	}
	fen, err := g.FEN()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "FEN: %s\n", fen)
	fmt.Fprintf(w, "%v to move (%v)\n", state.TurnColour(), state.CurrentTurn)
	return nil
}

func formatCandidates(state *chess.GameState, cands []chess.Candidate) string {
	if len(cands) == 0 {
		return "none"
	}
	parts := make([]string, len(cands))
	for i, c := range cands {
		parts[i] = state.SquareName(c.Target)
		if c.Type != chess.Standard {
			parts[i] += "(" + c.Type.String() + ")"
		}
	}
	return strings.Join(parts, " ")
}

func formatMoves(state *chess.GameState, moves []chess.Move) string {
	if len(moves) == 0 {
		return "none"
	}
	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = state.SquareName(m.From) + state.SquareName(m.To)
	}
	return strings.Join(parts, " ")
}

// writeSVG writes the SVG snapshot to path.
func writeSVG(path string, state *chess.GameState, cfg *config.RenderConfig) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating SVG file %s: %w", path, err)
	}
	defer file.Close()
	return render.SVG(file, state, cfg)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chess-rules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Replays moves through the chess rules engine and prints the board.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove formats (-moves):\n")
	fmt.Fprintf(os.Stderr, "  e2e4       from and to square names\n")
	fmt.Fprintf(os.Stderr, "  b7b8n      promotion to the named piece\n")
	fmt.Fprintf(os.Stderr, "  6-4:4-4    row-col addresses, top row first\n")
}
