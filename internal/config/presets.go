package config

import "sort"

// Presets are named tunings for the demo and headless runs. Each starts
// from the defaults and overrides a handful of fields.
var presetOverrides = map[string]func(*Config){
	"calm": func(c *Config) {
		c.Wind = []WindLayer{
			{Amplitude: 0.22, Frequency: 0.5, PhaseMul: 1.0},
			{Amplitude: 0.12, Frequency: 1.1, PhaseMul: 1.7},
		}
		c.BumpKick = 0.08
	},
	"breezy": func(c *Config) {
		// The defaults.
	},
	"storm": func(c *Config) {
		c.Wind = []WindLayer{
			{Amplitude: 1.0, Frequency: 0.8, PhaseMul: 1.0},
			{Amplitude: 0.6, Frequency: 1.6, PhaseMul: 1.7},
			{Amplitude: 0.3, Frequency: 2.9, PhaseMul: 2.3},
		}
		c.Damping = 0.6
		c.BumpKick = 0.35
	},
	"mobile": func(c *Config) {
		c.PointerStrength = 0
		c.MobileWindScale = 0.5
	},
}

// GetPreset returns the named preset, or nil if it does not exist.
func GetPreset(name string) *Config {
	override, ok := presetOverrides[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	override(cfg)
	return cfg
}

// ListPresets returns the available preset names, sorted.
func ListPresets() []string {
	names := make([]string, 0, len(presetOverrides))
	for name := range presetOverrides {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
