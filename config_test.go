package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("MAX_PHOTO_BYTES", "")

		cfg := LoadConfig()
		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, int64(defaultMaxPhotoBytes), cfg.MaxPhotoBytes)
		assert.NoError(t, cfg.Validate())
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("APP_ENV", "production")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("MAX_PHOTO_BYTES", "2048")

		cfg := LoadConfig()
		assert.Equal(t, 9090, cfg.Port)
		assert.Equal(t, "production", cfg.Env)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, int64(2048), cfg.MaxPhotoBytes)
	})

	t.Run("ignores malformed numbers", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		assert.Equal(t, 8080, LoadConfig().Port)
	})
}

func TestConfigValidate(t *testing.T) {
	valid := Config{Port: 8080, LogLevel: "info", MaxPhotoBytes: 1}
	require.NoError(t, valid.Validate())

	badPort := valid
	badPort.Port = 70000
	assert.Error(t, badPort.Validate())

	badLevel := valid
	badLevel.LogLevel = "verbose"
	assert.Error(t, badLevel.Validate())

	badPhoto := valid
	badPhoto.MaxPhotoBytes = 0
	assert.Error(t, badPhoto.Validate())
}

func TestRootCommandFlags(t *testing.T) {
	t.Run("flags override loaded values", func(t *testing.T) {
		cfg := Config{Port: 9090, Env: "development", LogLevel: "info", MaxPhotoBytes: 1024}

		var got Config
		cmd := newRootCmd(&cfg, func(c Config) error {
			got = c
			return nil
		})
		cmd.SetArgs([]string{"--port", "7000", "--log-level", "warn"})
		require.NoError(t, cmd.Execute())

		assert.Equal(t, 7000, got.Port)
		assert.Equal(t, "warn", got.LogLevel)
		assert.Equal(t, "development", got.Env)
	})

	t.Run("rejects an invalid config before running", func(t *testing.T) {
		cfg := Config{Port: 9090, LogLevel: "info", MaxPhotoBytes: 1024}

		ran := false
		cmd := newRootCmd(&cfg, func(Config) error {
			ran = true
			return nil
		})
		cmd.SetArgs([]string{"--log-level", "loud"})
		cmd.SetErr(io.Discard)
		assert.Error(t, cmd.Execute())
		assert.False(t, ran)
	})
}
