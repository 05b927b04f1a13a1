package life

import "strconv"

// Config holds the parameters fixed when an Engine is created.
type Config struct {
	Width  int
	Height int

	// ReseedThreshold is the generation count that triggers an automatic
	// reseed. Zero disables automatic reseeding.
	ReseedThreshold int

	// Workers splits each tick into this many row bands. Values below 2 keep
	// the tick on the calling goroutine.
	Workers int

	// CycleColor picks a new foreground color on every reseed.
	CycleColor bool
}

// DefaultConfig returns the 64x64 panel configuration.
func DefaultConfig() Config {
	return Config{
		Width:           64,
		Height:          64,
		ReseedThreshold: 600,
		Workers:         1,
		CycleColor:      true,
	}
}

// FromMap populates a Config from a string map, starting from DefaultConfig.
func FromMap(cfg map[string]string) Config {
	return DefaultConfig().Apply(cfg)
}

// Apply returns a copy of c with the overrides in cfg applied. Unknown keys
// and unparsable values are ignored.
func (c Config) Apply(cfg map[string]string) Config {
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["threshold"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ReseedThreshold = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["cycle_color"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.CycleColor = parsed
		}
	}
	return c
}
