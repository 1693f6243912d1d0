package main

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/kiryu-dev/knucklebones/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerNamesFlag(t *testing.T) {
	var names playerNames
	fs := flag.NewFlagSet("knucklebones", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Var(&names, "p", "")

	require.NoError(t, fs.Parse([]string{"-p", "ann", "-p", "bob"}))
	assert.Equal(t, playerNames{"ann", "bob"}, names)
	assert.Equal(t, "ann,bob", names.String())

	require.Error(t, fs.Parse([]string{"-p", "cat"}))
}

func TestLoadConfig(t *testing.T) {
	t.Run("explicit missing path is an error", func(t *testing.T) {
		_, err := loadConfig(filepath.Join(t.TempDir(), "absent.yml"))
		require.Error(t, err)
	})

	t.Run("missing default path falls back to defaults", func(t *testing.T) {
		wd, err := os.Getwd()
		require.NoError(t, err)
		require.NoError(t, os.Chdir(t.TempDir()))
		defer func() {
			_ = os.Chdir(wd)
		}()

		cfg, err := loadConfig(defaultConfigPath)

		require.NoError(t, err)
		assert.Equal(t, config.Default(), cfg)
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := newLogger(config.LogConfig{Level: "debug", Output: filepath.Join(t.TempDir(), "log.json")})
	require.NoError(t, err)
	logger.Debug("hello")
	require.NoError(t, logger.Sync())

	_, err = newLogger(config.LogConfig{Level: "loud", Output: "stderr"})
	require.Error(t, err)
}
