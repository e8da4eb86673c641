package generate

import "goblin-warparty/internal/gamemap"

// roomsAndCorridors places up to MaxRooms random rooms, dropping any that
// overlap an earlier one, and joins each new room to the previous one.
func roomsAndCorridors(cfg Config) *gamemap.GameMap {
	m := gamemap.New(cfg.Width, cfg.Height)
	r := cfg.Rand

	for range cfg.MaxRooms {
		w := r.Range(cfg.RoomMinSize, cfg.RoomMaxSize)
		h := r.Range(cfg.RoomMinSize, cfg.RoomMaxSize)
		x := r.InclusiveRange(cfg.FrameWidth, m.Width-w-cfg.FrameWidth)
		y := r.InclusiveRange(cfg.FrameWidth, m.Height-h-cfg.FrameWidth)
		room := gamemap.NewRect(x, y, w, h)

		overlaps := false
		for _, other := range m.Rooms {
			if room.Intersects(other) {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}

		carveRoom(m, room)
		if n := len(m.Rooms); n > 0 {
			px, py := m.Rooms[n-1].Center()
			nx, ny := room.Center()
			if r.FlipCoin() {
				carveH(m, px, nx, py)
				carveV(m, py, ny, nx)
			} else {
				carveH(m, px, nx, ny)
				carveV(m, py, ny, px)
			}
		}
		m.Rooms = append(m.Rooms, room)
	}
	return m
}

// carveRoom floors the interior of room, leaving its top and left edges
// as wall.
func carveRoom(m *gamemap.GameMap, room gamemap.Rect) {
	for y := room.Y1 + 1; y <= room.Y2; y++ {
		for x := room.X1 + 1; x <= room.X2; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
}
