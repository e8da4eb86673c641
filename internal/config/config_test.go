package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
	require.NoError(t, DefaultServer().Game.Validate())
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "game.yaml")
	data := []byte("seed: 42\nmap:\n  style: bsp\n  width: 60\nmonsters:\n  hp: 20\n  max_per_room: 2\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, StyleBSP, cfg.Map.Style)
	assert.Equal(t, 60, cfg.Map.Width)
	assert.Equal(t, 43, cfg.Map.Height, "unset fields keep their default")
	assert.Equal(t, 20, cfg.Monsters.HP)
	assert.Equal(t, 4, cfg.Monsters.Power)
	assert.Equal(t, 2, cfg.Monsters.MaxPerRoom)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("map: [unclosed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Game)
	}{
		{"tiny map", func(g *Game) { g.Map.Width = 10 }},
		{"unknown style", func(g *Game) { g.Map.Style = "cave" }},
		{"no rooms", func(g *Game) { g.Map.MaxRooms = 0 }},
		{"inverted room sizes", func(g *Game) { g.Map.RoomMaxSize = g.Map.RoomMinSize }},
		{"rooms too big", func(g *Game) { g.Map.RoomMaxSize = 40 }},
		{"dead player", func(g *Game) { g.Player.HP = 0 }},
		{"free moves", func(g *Game) { g.MoveCost = 0 }},
		{"negative items", func(g *Game) { g.Items.MaxPerRoom = -1 }},
		{"unknown log level", func(g *Game) { g.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Default()
			tt.mutate(&g)
			assert.ErrorIs(t, g.Validate(), ErrInvalidConfig)
		})
	}
}

func TestLoadServer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.yaml")
	data := []byte("port: 2300\ngame:\n  seed: 7\n")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	cfg, err := LoadServer(path)
	require.NoError(t, err)
	assert.Equal(t, 2300, cfg.Port)
	assert.Equal(t, int64(7), cfg.Game.Seed)
	assert.Equal(t, 30, cfg.Game.Player.HP)

	require.NoError(t, os.WriteFile(path, []byte("port: 70000\n"), 0o644))
	_, err = LoadServer(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"error", slog.LevelError},
		{"nonsense", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Game{LogLevel: tt.in}.Level())
		})
	}
}
