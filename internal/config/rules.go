package config

// RulesConfig holds rule-set options passed to every game.
type RulesConfig struct {
	// StrictCastling also refuses castling through an attacked square.
	StrictCastling bool
}

// NewRulesConfig creates a RulesConfig with default values.
func NewRulesConfig() *RulesConfig {
	return &RulesConfig{}
}
