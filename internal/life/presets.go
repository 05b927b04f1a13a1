package life

import "sort"

// Overlay names the text drawn over the grid.
type Overlay string

const (
	OverlayNone  Overlay = "none"
	OverlayClock Overlay = "clock"
	OverlayStats Overlay = "stats"
)

// Preset bundles an engine configuration with its display options.
type Preset struct {
	Config  Config
	Overlay Overlay
}

var presets = map[string]Preset{}

// RegisterPreset adds a preset under the provided name.
func RegisterPreset(name string, p Preset) {
	if name == "" {
		return
	}
	presets[name] = p
}

// LookupPreset returns the preset registered under name.
func LookupPreset(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// PresetNames lists the registered presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	clock := DefaultConfig()
	RegisterPreset("clock", Preset{Config: clock, Overlay: OverlayClock})

	ambient := DefaultConfig()
	ambient.ReseedThreshold = 1000
	RegisterPreset("ambient", Preset{Config: ambient, Overlay: OverlayNone})
}
