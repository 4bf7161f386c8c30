package config

import "sort"

// Presets are well-known landmarks in the Mandelbrot set, each with a
// center, magnification and an iteration bound deep enough to resolve
// its detail.
var Presets = map[string]*Config{
	"home": {
		Center: CenterConfig{Re: -0.7, Im: 0},
		Zoom:   1, MaxIterations: 150,
	},
	"seahorse": {
		// Seahorse Valley: dense filaments and repeating seahorse curls.
		Center: CenterConfig{Re: -0.75, Im: 0.1},
		Zoom:   35, MaxIterations: 600,
	},
	"elephant": {
		// Elephant Valley: large bulb with trunk-like tendrils.
		Center: CenterConfig{Re: -1.8, Im: -0.06},
		Zoom:   35, MaxIterations: 600,
	},
	"spiral-minibrot": {
		// Small Mandelbrot copy with tight spiral arms.
		Center: CenterConfig{Re: -0.74275, Im: 0.13175},
		Zoom:   2300, MaxIterations: 1500,
	},
	"triple-spiral": {
		// Threefold symmetric spiral structure.
		Center: CenterConfig{Re: -0.7465, Im: 0.0965},
		Zoom:   1150, MaxIterations: 1200,
	},
	"dragon-valley": {
		// Deep, highly detailed spiral filaments.
		Center: CenterConfig{Re: -0.7375, Im: 0.1825},
		Zoom:   700, MaxIterations: 1000,
	},
	"minibrot-spiral": {
		// Self-similar Mandelbrot copy inside a spiral arm.
		Center: CenterConfig{Re: -1.73825, Im: -0.02275},
		Zoom:   2300, MaxIterations: 1500,
	},
}

// GetPreset returns a full config for a named preset: the preset's
// viewpoint over the default image settings. Nil if unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Center = p.Center
	cfg.Zoom = p.Zoom
	cfg.MaxIterations = p.MaxIterations
	return cfg
}

// ListPresets returns the preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
