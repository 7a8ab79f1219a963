package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var walkVars = []string{
	"WALK_DEBUG", "WALK_SEED", "WALK_LAYOUT", "WALK_KEYMAP", "WALK_STORE", "WALK_DATA_DIR",
	"REDIS_ADDR", "REDIS_PASSWORD", "REDIS_DB", "WALK_AUDIO", "WALK_VOLUME",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range walkVars {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Zero(t, cfg.Seed)
	assert.Equal(t, StoreFile, cfg.Store.Kind)
	assert.Equal(t, "data", cfg.Store.DataDir)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.True(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.5, cfg.Audio.Volume, 1e-9)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("WALK_DEBUG", "1")
	t.Setenv("WALK_SEED", "42")
	t.Setenv("WALK_LAYOUT", "clinic.yaml")
	t.Setenv("WALK_STORE", "Redis")
	t.Setenv("REDIS_ADDR", "cache:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("WALK_AUDIO", "false")
	t.Setenv("WALK_VOLUME", "0.25")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "clinic.yaml", cfg.LayoutPath)
	assert.Equal(t, StoreRedis, cfg.Store.Kind)
	assert.Equal(t, "cache:6380", cfg.Redis.Addr)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.False(t, cfg.Audio.Enabled)
	assert.InDelta(t, 0.25, cfg.Audio.Volume, 1e-9)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bad seed", "WALK_SEED", "abc"},
		{"negative seed", "WALK_SEED", "-1"},
		{"bad volume", "WALK_VOLUME", "loud"},
		{"volume out of range", "WALK_VOLUME", "1.5"},
		{"unknown store", "WALK_STORE", "postgres"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestMalformedNumbersFallBack(t *testing.T) {
	clearEnv(t)
	t.Setenv("REDIS_DB", "two")
	t.Setenv("WALK_DEBUG", "maybe")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Redis.DB)
	assert.False(t, cfg.Debug)
}
