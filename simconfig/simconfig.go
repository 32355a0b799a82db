// Package simconfig is a small YAML-loadable configuration surface for
// the handful of tunables the network and stepper need. It follows the
// teacher's utils/config Config/RuntimeConfig split (a raw YAML struct
// plus a derived, defaults-applied runtime struct) cut down from the
// teacher's MongoDB/map-input configuration, which has no equivalent
// here since this core loads no persisted map or person data.
package simconfig

import (
	"os"

	"gopkg.in/yaml.v2"
)

// Config is the raw YAML configuration shape. Zero values mean
// "unspecified"; NewRuntimeConfig fills them with defaults.
type Config struct {
	// SeparationMin is the minimum gap, in length units, below which a
	// following vehicle is suppressed for the tick. Zero means use the
	// stepper package's SeparationMin constant.
	SeparationMin float64 `yaml:"separation_min,omitempty"`
	// DefaultSpeedLimit is applied to a junction's lanes on insertion
	// when no per-junction override is given. Zero means use
	// network.DefaultSpeedLimit.
	DefaultSpeedLimit float64 `yaml:"default_speed_limit,omitempty"`
	// RandomSeed seeds the stepper's successor-choice generator.
	RandomSeed uint64 `yaml:"random_seed,omitempty"`
}

// RuntimeConfig is Config with every default applied, ready to hand to
// network.New and stepper.New.
type RuntimeConfig struct {
	SeparationMin     float64
	DefaultSpeedLimit float64
	RandomSeed        uint64
}

const defaultSeparationMin = 5.0
const defaultSpeedLimit = 10.0

// NewRuntimeConfig derives a RuntimeConfig from cfg, applying defaults
// to any zero-valued field.
func NewRuntimeConfig(cfg Config) *RuntimeConfig {
	rc := &RuntimeConfig{
		SeparationMin:     cfg.SeparationMin,
		DefaultSpeedLimit: cfg.DefaultSpeedLimit,
		RandomSeed:        cfg.RandomSeed,
	}
	if rc.SeparationMin == 0 {
		rc.SeparationMin = defaultSeparationMin
	}
	if rc.DefaultSpeedLimit == 0 {
		rc.DefaultSpeedLimit = defaultSpeedLimit
	}
	return rc
}

// Load reads and parses a YAML config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
