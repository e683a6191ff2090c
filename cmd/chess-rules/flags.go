// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessrules-go/internal/config"
)

var (
	// Game setup
	colourFlag = flag.String("colour", "white", "Colour of the lower side: white, black or random")
	fenFlag    = flag.String("fen", "", "Start from this FEN position instead of the initial one")

	// Moves
	movesFlag   = flag.String("moves", "", "Comma separated moves to replay, as e2e4 or 6-4:4-4 (append q/r/b/n to promote)")
	promoteFlag = flag.String("promote", "q", "Default promotion piece: q, r, b or n")
	listFlag    = flag.String("list", "", "List the legal moves of the piece on this square (e2 or 6-4)")
	allFlag     = flag.Bool("all", false, "List every legal move of the side to move")

	// Rules
	strictEP = flag.Bool("strict-ep", false, "Only allow en passant directly after the double step")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	svgFile    = flag.String("svg", "", "Write an SVG snapshot of the final board to this file")
	squareSize = flag.Int("square", 60, "SVG square size in pixels")
	noColour   = flag.Bool("nocolour", false, "Disable ANSI colours")
	noLabels   = flag.Bool("nolabels", false, "Don't print file and rank labels")

	// Logging
	verbosity = flag.Int("v", 1, "Verbosity: 0 silent, 1 game events, 2 every move")
	quiet     = flag.Bool("s", false, "Silent mode (same as -v 0)")

	version = flag.Bool("version", false, "Print version and exit")
	help    = flag.Bool("h", false, "Show help")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyRulesFlags(cfg)
	applyRenderFlags(cfg)

	cfg.Verbosity = *verbosity
	if *quiet {
		cfg.Verbosity = 0
	}
}

// applyRulesFlags configures rule switches.
func applyRulesFlags(cfg *config.Config) {
	cfg.Rules.StrictEnPassant = *strictEP
}

// applyRenderFlags configures board rendering.
func applyRenderFlags(cfg *config.Config) {
	cfg.Render.SquareSize = *squareSize
	cfg.Render.UseColour = !*noColour
	cfg.Render.ShowLabels = !*noLabels
}
