package config

// RulesConfig holds the rule switches passed to the engine.
type RulesConfig struct {
	// StrictEnPassant additionally requires the captured pawn's double step
	// to be the last move played. By default only its step count and row
	// are checked.
	StrictEnPassant bool
}

// NewRulesConfig creates a RulesConfig with default values.
// All switches are off by default.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
