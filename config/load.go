package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment keys read by Load
const (
	EnvPrefix       = "HARVEST_"
	EnvDuration     = EnvPrefix + "DURATION"      // Go duration, e.g. 90s
	EnvGoal         = EnvPrefix + "GOAL"          // Integer
	EnvSeed         = EnvPrefix + "SEED"          // Unsigned integer
	EnvAudioEnabled = EnvPrefix + "AUDIO_ENABLED" // Bool
	EnvMasterVolume = EnvPrefix + "MASTER_VOLUME" // 0-100
	EnvHoldMs       = EnvPrefix + "HOLD_MS"       // Milliseconds
)

// DefaultEnvFile is loaded by Load when present
const DefaultEnvFile = ".env"

// Load builds a configuration: defaults, then the YAML file at path (skipped
// when path is empty), then envFile (skipped when missing), then HARVEST_*
// environment variables, then validation
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.mergeFile(path); err != nil {
			return nil, err
		}
	}

	if envFile != "" {
		// godotenv never overrides variables already set in the process
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFile overlays the YAML document at path onto c; absent keys keep their values
func (c *Config) mergeFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// applyEnv overrides fields from HARVEST_* variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvDuration); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvDuration, err)
		}
		c.Duration = d
	}

	if v := os.Getenv(EnvGoal); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvGoal, err)
		}
		c.Goal = n
	}

	if v := os.Getenv(EnvSeed); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvSeed, err)
		}
		c.Seed = n
	}

	if v := os.Getenv(EnvAudioEnabled); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvAudioEnabled, err)
		}
		c.Audio.Enabled = b
	}

	// Master volume is given as 0-100 and clamped
	if v := os.Getenv(EnvMasterVolume); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvMasterVolume, err)
		}
		c.Audio.MasterVolume = min(max(float64(n)/100.0, 0), 1)
	}

	if v := os.Getenv(EnvHoldMs); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvHoldMs, err)
		}
		c.Input.HoldDuration = time.Duration(n) * time.Millisecond
	}

	return nil
}
