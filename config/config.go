// Package config reads runtime settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// StoreKind selects the leaderboard backend
type StoreKind string

const (
	StoreMemory StoreKind = "memory"
	StoreFile   StoreKind = "file"
	StoreRedis  StoreKind = "redis"
)

// Config holds all configuration for the game
type Config struct {
	Debug bool
	// Seed fixes the shuffle base; zero derives it from the clock
	Seed       uint64
	LayoutPath string
	KeymapPath string
	Store      StoreConfig
	Redis      RedisConfig
	Audio      AudioConfig
}

// StoreConfig holds leaderboard persistence settings
type StoreConfig struct {
	Kind    StoreKind
	DataDir string
}

// RedisConfig holds Redis-specific configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// AudioConfig holds chime settings
type AudioConfig struct {
	Enabled bool
	Volume  float64
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Debug:      getEnvAsBoolOrDefault("WALK_DEBUG", false),
		LayoutPath: os.Getenv("WALK_LAYOUT"),
		KeymapPath: os.Getenv("WALK_KEYMAP"),
		Store: StoreConfig{
			Kind:    StoreKind(strings.ToLower(getEnvOrDefault("WALK_STORE", string(StoreFile)))),
			DataDir: getEnvOrDefault("WALK_DATA_DIR", "data"),
		},
		Redis: RedisConfig{
			Addr:     getEnvOrDefault("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Audio: AudioConfig{
			Enabled: getEnvAsBoolOrDefault("WALK_AUDIO", true),
			Volume:  0.5,
		},
	}

	if v := os.Getenv("WALK_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("WALK_SEED: %w", err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("WALK_VOLUME"); v != "" {
		vol, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, fmt.Errorf("WALK_VOLUME: %w", err)
		}
		if vol < 0 || vol > 1 {
			return nil, fmt.Errorf("WALK_VOLUME must be within [0,1], got %v", vol)
		}
		cfg.Audio.Volume = vol
	}

	switch cfg.Store.Kind {
	case StoreMemory, StoreFile, StoreRedis:
	default:
		return nil, fmt.Errorf("WALK_STORE must be memory, file or redis, got %q", cfg.Store.Kind)
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
