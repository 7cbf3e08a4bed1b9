package core

// RuntimeConfig contains per-process settings resolved from flags and config files.
type RuntimeConfig struct {
	Seed     int64  // RNG seed for secret selection; 0 means time-based
	WordList string // registry name of the word list in use
	Policy   string // scoring policy name ("classic" or "strict")
	Color    bool   // whether output carries color attributes
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Seed:     0, // 0 means use current time in platform layer
		WordList: "standard",
		Policy:   "classic",
		Color:    true,
	}
}
