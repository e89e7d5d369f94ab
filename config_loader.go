package nsga3

import (
	"encoding/json"
	"fmt"
	"os"
)

// ConfigPreset names a predefined configuration for a common problem
// shape. It exists so callers can select a starting point by name
// (e.g. from a CLI flag) rather than constructing a Config literal.
type ConfigPreset string

const (
	PresetBiObjective   ConfigPreset = "bi_objective"
	PresetManyObjective ConfigPreset = "many_objective"
	PresetDefault       ConfigPreset = "default"
)

// NewConfigFromPreset returns the Config matching a named preset, or
// ErrInvalidParam if the name is unrecognized.
func NewConfigFromPreset(preset ConfigPreset) (*Config, error) {
	switch preset {
	case PresetBiObjective:
		return NewBiObjectiveConfig(), nil
	case PresetManyObjective:
		return NewManyObjectiveConfig(), nil
	case PresetDefault, "":
		return NewDefaultConfig(), nil
	default:
		return nil, fmt.Errorf("unknown config preset %q: %w", preset, ErrInvalidParam)
	}
}

// LoadConfigFromFile loads a Config from a JSON file.
// Note: Rand must be set separately, since it cannot be serialized.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("nsga3: failed to read config file: %w", err)
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("nsga3: failed to parse config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("nsga3: invalid config: %w", err)
	}

	return config, nil
}

// SaveConfigToFile saves a Config to a JSON file.
// Note: Rand is not saved, since it cannot be serialized.
func SaveConfigToFile(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("nsga3: failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("nsga3: failed to write config file: %w", err)
	}

	return nil
}

// ValidateConfig checks that a configuration is internally consistent,
// returning a wrapped ErrInvalidParam describing the first problem
// found.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("nsga3: config is nil: %w", ErrInvalidParam)
	}

	if config.ObjectiveCount < 1 {
		return fmt.Errorf("nsga3: objective_count must be >= 1 (got %d): %w",
			config.ObjectiveCount, ErrInvalidParam)
	}

	if config.ReferencePrecision < 1 {
		return fmt.Errorf("nsga3: reference_precision must be >= 1 (got %d): %w",
			config.ReferencePrecision, ErrInvalidParam)
	}

	if config.PopulationSize < 1 {
		return fmt.Errorf("nsga3: population_size must be >= 1 (got %d): %w",
			config.PopulationSize, ErrInvalidParam)
	}

	if config.ConcurrentThreshold < 0 {
		return fmt.Errorf("nsga3: concurrent_threshold must be >= 0 (got %d): %w",
			config.ConcurrentThreshold, ErrInvalidParam)
	}

	return nil
}
