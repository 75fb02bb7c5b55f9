package config

// PlayConfig holds settings for the play loop and move pickers.
type PlayConfig struct {
	// Seed seeds the move pickers' random source. 0 picks a time-based seed.
	Seed uint64
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{}
}

// PerftConfig holds settings for perft runs.
type PerftConfig struct {
	// Workers is the number of goroutines splitting root moves
	Workers int

	// MaxDepth guards against runaway depths from the shell
	MaxDepth int

	// MaxNodes aborts a divided count once its total passes it. 0 means no limit
	MaxNodes uint64

	// UseHashTable memoises subtree counts by position key
	UseHashTable bool
}

// NewPerftConfig creates a PerftConfig with default values.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers:      1,
		MaxDepth:     6,
		UseHashTable: true,
	}
}

// StorageConfig holds settings for the match results store.
type StorageConfig struct {
	// Dir is the badger directory. Empty disables recording.
	Dir string
}

// NewStorageConfig creates a StorageConfig with default values.
func NewStorageConfig() *StorageConfig {
	return &StorageConfig{}
}

// Enabled reports whether results should be recorded.
func (s *StorageConfig) Enabled() bool {
	return s.Dir != ""
}
