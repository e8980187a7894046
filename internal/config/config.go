package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/letterdrop/internal/forces"
)

const (
	DefaultGravity       = 900.0
	DefaultDamping       = 0.9
	DefaultDrag          = 0.004
	DefaultDropDuration  = 0.65
	DefaultRiseDuration  = 1.5
	DefaultTransDuration = 0.8
	DefaultRopeInitial   = 120.0
	DefaultRopeFinal     = 200.0
	DefaultDropOvershoot = 60.0
	DefaultRopeMin       = 70.0
	DefaultRetractFrac   = 0.6
)

// WindLayer is one sinusoid of the wind model as it appears in a tuning
// file.
type WindLayer struct {
	Amplitude float64 `yaml:"amplitude"`
	Frequency float64 `yaml:"frequency"`
	PhaseMul  float64 `yaml:"phase_mul"`
}

// Config carries every tunable of the animation: phase durations, rope
// checkpoints, force constants, and interaction thresholds.
type Config struct {
	// Phase durations, seconds.
	DropDuration       float64 `yaml:"drop_duration"`
	RiseDuration       float64 `yaml:"rise_duration"`
	TransitionDuration float64 `yaml:"transition_duration"`

	// Rope checkpoints, surface units.
	RopeInitial   float64 `yaml:"rope_initial"`
	RopeFinal     float64 `yaml:"rope_final"`
	DropOvershoot float64 `yaml:"drop_overshoot"`
	RopeMin       float64 `yaml:"rope_min"`
	RetractFrac   float64 `yaml:"retract_frac"`

	// Force constants.
	Gravity float64     `yaml:"gravity"`
	Damping float64     `yaml:"damping"`
	Drag    float64     `yaml:"drag"`
	Wind    []WindLayer `yaml:"wind"`

	// Wind attenuation.
	MobileWindScale float64 `yaml:"mobile_wind_scale"`
	ScrollWindFade  float64 `yaml:"scroll_wind_fade"`

	// Pointer interaction.
	PointerRadius   float64 `yaml:"pointer_radius"`
	PointerStrength float64 `yaml:"pointer_strength"`

	// Neighbor collision.
	CollisionClearance float64 `yaml:"collision_clearance"`
	CollisionStrength  float64 `yaml:"collision_strength"`

	// Ambient bump jostle.
	BumpZoneHeight float64 `yaml:"bump_zone_height"`
	BumpScrollMax  float64 `yaml:"bump_scroll_max"`
	BumpKick       float64 `yaml:"bump_kick"`
	BumpInterval   float64 `yaml:"bump_interval"`

	Seed int64 `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		DropDuration:       DefaultDropDuration,
		RiseDuration:       DefaultRiseDuration,
		TransitionDuration: DefaultTransDuration,
		RopeInitial:        DefaultRopeInitial,
		RopeFinal:          DefaultRopeFinal,
		DropOvershoot:      DefaultDropOvershoot,
		RopeMin:            DefaultRopeMin,
		RetractFrac:        DefaultRetractFrac,
		Gravity:            DefaultGravity,
		Damping:            DefaultDamping,
		Drag:               DefaultDrag,
		Wind:               defaultWindLayers(),
		MobileWindScale:    0.6,
		ScrollWindFade:     0.7,
		PointerRadius:      150,
		PointerStrength:    1200,
		CollisionClearance: 10,
		CollisionStrength:  0.015,
		BumpZoneHeight:     200,
		BumpScrollMax:      4,
		BumpKick:           0.18,
		BumpInterval:       0.2,
	}
}

// defaultWindLayers mirrors the force model's canonical wind table so
// the tuning defaults cannot drift from it.
func defaultWindLayers() []WindLayer {
	table := forces.DefaultWind()
	layers := make([]WindLayer, len(table))
	for i, h := range table {
		layers[i] = WindLayer{Amplitude: h.Amplitude, Frequency: h.Frequency, PhaseMul: h.PhaseMul}
	}
	return layers
}

// Load reads a yaml tuning file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects tunings the engine cannot run.
func (c *Config) Validate() error {
	if c.DropDuration <= 0 || c.RiseDuration <= 0 || c.TransitionDuration <= 0 {
		return fmt.Errorf("phase durations must be positive")
	}
	if c.RopeMin <= 0 || c.RopeFinal <= c.RopeMin {
		return fmt.Errorf("rope_final must exceed rope_min, both positive")
	}
	if c.Gravity <= 0 {
		return fmt.Errorf("gravity must be positive, got %f", c.Gravity)
	}
	if c.Drag < 0 || c.Drag >= 1 {
		return fmt.Errorf("drag must be in [0, 1), got %f", c.Drag)
	}
	if len(c.Wind) == 0 {
		return fmt.Errorf("wind table must have at least one layer")
	}
	return nil
}
