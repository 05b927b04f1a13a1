package app

import (
	"crypto/rand"
	"flag"
	"fmt"
	"strings"
	"time"

	"matrix-life/internal/core"
	"matrix-life/internal/life"
)

// kvList collects repeatable key=value flags.
type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Map splits the entries into a key/value map; malformed entries are skipped.
func (l kvList) Map() map[string]string {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		out[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return out
}

// Config represents the command-line parameters for the application.
type Config struct {
	Preset  string
	Scale   int
	TPS     int
	GPS     int
	Seed    int64
	Entropy bool
	Overlay string
	Set     kvList

	Listen      string
	Journal     string
	Generations int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "clock", Scale: 8, TPS: 60, GPS: 10}
}

// Bind attaches the shared configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "preset to run ("+strings.Join(life.PresetNames(), ", ")+")")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "display ticks per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random source (0 picks one from the clock)")
	fs.BoolVar(&c.Entropy, "entropy", c.Entropy, "draw randomness from the OS entropy source instead of a seeded generator")
	fs.StringVar(&c.Overlay, "overlay", c.Overlay, "override the preset overlay (none, clock, stats)")
	fs.Var(&c.Set, "set", "engine override in key=value form (repeatable): w, h, threshold, workers, cycle_color")
}

// BindHeadless attaches the shared flags plus the headless runner's outputs.
func (c *Config) BindHeadless(fs *flag.FlagSet) {
	c.Bind(fs)
	fs.StringVar(&c.Listen, "listen", c.Listen, "address serving the websocket frame stream, e.g. :8080")
	fs.StringVar(&c.Journal, "journal", c.Journal, "path of the SQLite epoch journal (empty disables it)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "stop after this many generations (0 runs forever)")
}

// Resolve looks up the preset and applies the flag overrides to it.
func (c *Config) Resolve() (life.Preset, error) {
	p, ok := life.LookupPreset(c.Preset)
	if !ok {
		return life.Preset{}, fmt.Errorf("unknown preset %q (have %s)", c.Preset, strings.Join(life.PresetNames(), ", "))
	}
	p.Config = p.Config.Apply(c.Set.Map())
	switch mode := life.Overlay(c.Overlay); mode {
	case "":
	case life.OverlayNone, life.OverlayClock, life.OverlayStats:
		p.Overlay = mode
	default:
		return life.Preset{}, fmt.Errorf("unknown overlay %q", c.Overlay)
	}
	return p, nil
}

// Source builds the random source selected by the flags and describes it for
// logging.
func (c *Config) Source() (core.Source, string) {
	if c.Entropy {
		return core.NewReaderSource(rand.Reader), "entropy"
	}
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.NewRNG(seed), fmt.Sprintf("seed %d", seed)
}

// NewEngine resolves the configuration and constructs the engine.
func (c *Config) NewEngine() (*life.Engine, life.Preset, string, error) {
	p, err := c.Resolve()
	if err != nil {
		return nil, life.Preset{}, "", err
	}
	src, desc := c.Source()
	eng, err := life.New(p.Config, src)
	if err != nil {
		return nil, life.Preset{}, "", err
	}
	return eng, p, desc, nil
}
