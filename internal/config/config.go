package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all configuration for the demonstrations
type Config struct {
	Narrator NarratorConfig
	Demo     DemoConfig
}

// NarratorConfig controls how flavour text is picked
type NarratorConfig struct {
	Seed int64 // 0 seeds from the clock
}

// DemoConfig controls the demonstration binaries
type DemoConfig struct {
	Verbose bool // log service activity to stderr
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	seed, err := getEnvAsInt64OrDefault("NARRATOR_SEED", 0)
	if err != nil {
		return nil, err
	}

	verbose, err := getEnvAsBoolOrDefault("DEMO_VERBOSE", false)
	if err != nil {
		return nil, err
	}

	return &Config{
		Narrator: NarratorConfig{
			Seed: seed,
		},
		Demo: DemoConfig{
			Verbose: verbose,
		},
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt64OrDefault(key string, defaultValue int64) (int64, error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) (bool, error) {
	value := getEnvOrDefault(key, "")
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean: %w", key, err)
	}
	return parsed, nil
}
