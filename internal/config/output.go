package config

// OutputConfig holds settings related to board and move rendering.
type OutputConfig struct {
	// ASCII renders pieces as letters (PNBRQK / pnbrqk) instead of Unicode figurines
	ASCII bool

	// MovesPerLine is the number of entries per line in move listings
	MovesPerLine int
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MovesPerLine: 4,
	}
}
