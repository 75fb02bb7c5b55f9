package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithASCII switches rendering to piece letters.
func (b *ConfigBuilder) WithASCII(enabled bool) *ConfigBuilder {
	b.cfg.Output.ASCII = enabled
	return b
}

// WithStrictCastling enables the attacked-transit-square castling check.
func (b *ConfigBuilder) WithStrictCastling(enabled bool) *ConfigBuilder {
	b.cfg.Rules.StrictCastling = enabled
	return b
}

// WithSeed sets the move pickers' random seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithPerftWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithPerftWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithPerftMaxDepth sets the deepest perft the shell accepts.
func (b *ConfigBuilder) WithPerftMaxDepth(depth int) *ConfigBuilder {
	b.cfg.Perft.MaxDepth = depth
	return b
}

// WithPerftMaxNodes sets the node budget of a divided perft.
func (b *ConfigBuilder) WithPerftMaxNodes(n uint64) *ConfigBuilder {
	b.cfg.Perft.MaxNodes = n
	return b
}

// WithPerftHashTable enables or disables perft memoisation.
func (b *ConfigBuilder) WithPerftHashTable(enabled bool) *ConfigBuilder {
	b.cfg.Perft.UseHashTable = enabled
	return b
}

// WithStorageDir sets the results store directory.
func (b *ConfigBuilder) WithStorageDir(dir string) *ConfigBuilder {
	b.cfg.Storage.Dir = dir
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
