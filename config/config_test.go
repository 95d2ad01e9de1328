package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "goban.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("using defaults without file or flags", func(t *testing.T) {
		cfg, err := Load("", nil)

		require.NoError(t, err)
		require.Equal(t, "selfplay", cfg.Mode)
		require.Equal(t, "strength", cfg.Experiment)
		require.Equal(t, 9, cfg.BoardSize)
		require.Equal(t, 200, cfg.Rounds)
		require.Equal(t, 1.5, cfg.Temperature)
		require.Equal(t, 10, cfg.Games)
		require.Equal(t, 500, cfg.MaxMoves)
		require.Equal(t, uint64(0), cfg.Seed)
		require.Equal(t, "experiments", cfg.OutputDir)
		require.Equal(t, "info", cfg.LogLevel)
		require.False(t, cfg.ShowBoard)
	})

	t.Run("reading a config file", func(t *testing.T) {
		path := writeConfig(t, "mode: experiment\nboard_size: 13\nrounds: 50\nduration: 2s\nseed: 42\n")

		cfg, err := Load(path, nil)

		require.NoError(t, err)
		require.Equal(t, "experiment", cfg.Mode)
		require.Equal(t, 13, cfg.BoardSize)
		require.Equal(t, 50, cfg.Rounds)
		require.Equal(t, 2*time.Second, cfg.Duration)
		require.Equal(t, uint64(42), cfg.Seed)
	})

	t.Run("overriding the file with flags that were set", func(t *testing.T) {
		path := writeConfig(t, "board_size: 13\nrounds: 50\n")
		flags := Flags()
		require.NoError(t, flags.Parse([]string{"--board-size", "5", "--show-board"}))

		cfg, err := Load(path, flags)

		require.NoError(t, err)
		require.Equal(t, 5, cfg.BoardSize, "Flag should win over the file")
		require.Equal(t, 50, cfg.Rounds, "Unset flags should not shadow the file")
		require.True(t, cfg.ShowBoard)
	})

	t.Run("reading environment variables", func(t *testing.T) {
		t.Setenv("GOBAN_GAMES", "3")
		t.Setenv("GOBAN_MAX_MOVES", "40")

		cfg, err := Load("", nil)

		require.NoError(t, err)
		require.Equal(t, 3, cfg.Games)
		require.Equal(t, 40, cfg.MaxMoves)
	})

	t.Run("failing on a missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)

		require.Error(t, err)
	})

	t.Run("failing on invalid values", func(t *testing.T) {
		_, err := Load(writeConfig(t, "board_size: 25\n"), nil)

		require.ErrorContains(t, err, "board size 25")
	})
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{Mode: "selfplay", Experiment: "strength", BoardSize: 9, Rounds: 10, Games: 1, Temperature: 1.5}
	}
	base := valid()
	require.NoError(t, base.Validate())

	cases := map[string]func(c *Config){
		"unknown mode":         func(c *Config) { c.Mode = "tournament" },
		"unknown experiment":   func(c *Config) { c.Experiment = "ladder" },
		"board size":           func(c *Config) { c.BoardSize = 0 },
		"rounds or duration":   func(c *Config) { c.Rounds = 0 },
		"games must be":        func(c *Config) { c.Games = 0 },
		"temperature must not": func(c *Config) { c.Temperature = -1 },
	}
	for want, mutate := range cases {
		c := valid()
		mutate(&c)
		require.ErrorContains(t, c.Validate(), want)
	}

	durationOnly := valid()
	durationOnly.Rounds = 0
	durationOnly.Duration = time.Second
	require.NoError(t, durationOnly.Validate(), "A duration budget alone is enough")
}
