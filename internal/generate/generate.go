// Package generate carves dungeon maps. Every generator fills Rooms in the
// order they were dug; the first room is where the player starts.
package generate

import (
	"goblin-warparty/internal/config"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/rng"
)

// Style selects the generation algorithm.
type Style uint8

const (
	StyleRooms Style = iota // random rooms joined in dig order
	StyleBSP                // binary space partition
)

// CorridorStyle selects the shape of connecting tunnels.
type CorridorStyle uint8

const (
	CorridorLShaped CorridorStyle = iota
	CorridorZShaped
	CorridorStraight
)

// Config drives generation of one map.
type Config struct {
	Width, Height int
	Style         Style

	// Rooms and corridors.
	MaxRooms    int
	RoomMinSize int
	RoomMaxSize int
	FrameWidth  int

	// BSP.
	MinLeafSize   int
	MaxLeafSize   int
	RoomPadding   int
	CorridorStyle CorridorStyle

	Rand *rng.Random
}

// FromConfig derives a generator config from the game's map settings.
func FromConfig(c config.MapConfig, r *rng.Random) Config {
	style := StyleRooms
	if c.Style == config.StyleBSP {
		style = StyleBSP
	}
	return Config{
		Width:         c.Width,
		Height:        c.Height,
		Style:         style,
		MaxRooms:      c.MaxRooms,
		RoomMinSize:   c.RoomMinSize,
		RoomMaxSize:   c.RoomMaxSize,
		FrameWidth:    3,
		MinLeafSize:   c.RoomMinSize + 2,
		MaxLeafSize:   c.RoomMaxSize * 2,
		RoomPadding:   1,
		CorridorStyle: CorridorLShaped,
		Rand:          r,
	}
}

// Generate builds a map in the configured style. The blocked layer is
// computed from the finished walls.
func Generate(cfg Config) *gamemap.GameMap {
	var m *gamemap.GameMap
	switch cfg.Style {
	case StyleBSP:
		m = bsp(cfg)
	default:
		m = roomsAndCorridors(cfg)
	}
	m.RecomputeBlocked()
	return m
}
