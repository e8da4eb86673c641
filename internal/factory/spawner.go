package factory

import (
	"goblin-warparty/internal/config"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/rng"
)

// NewRandomMonster creates an orc or a goblin with equal odds.
func NewRandomMonster(w *ecs.World, r *rng.Random, x, y int, cfg config.Game) ecs.EntityID {
	if r.FlipCoin() {
		return NewOrc(w, x, y, cfg)
	}
	return NewGoblin(w, x, y, cfg)
}

// NewRandomItem creates a potion half the time and one of the scrolls
// otherwise.
func NewRandomItem(w *ecs.World, r *rng.Random, x, y int, items config.ItemStats) ecs.EntityID {
	switch roll := r.RollDie(8); {
	case roll <= 4:
		return NewHealthPotion(w, x, y, items)
	case roll <= 6:
		return NewMagicMissileScroll(w, x, y, items)
	case roll == 7:
		return NewFireballScroll(w, x, y, items)
	default:
		return NewConfusionScroll(w, x, y, items)
	}
}

// SpawnRoom fills one room with monsters and items on distinct interior
// cells. Each count is a die roll offset by three, so many rooms stay empty.
func SpawnRoom(w *ecs.World, m *gamemap.GameMap, r *rng.Random, room gamemap.Rect, cfg config.Game) {
	monsters := max(0, r.RollDie(cfg.Monsters.MaxPerRoom+3)-3)
	items := max(0, r.RollDie(cfg.Items.MaxPerRoom+3)-3)

	taken := make(map[int]bool)
	for _, idx := range spawnPoints(m, r, room, monsters, taken) {
		p := m.Point(idx)
		NewRandomMonster(w, r, p.X, p.Y, cfg)
	}
	for _, idx := range spawnPoints(m, r, room, items, taken) {
		p := m.Point(idx)
		NewRandomItem(w, r, p.X, p.Y, cfg.Items)
	}
}

// spawnPoints picks up to count free floor cells strictly inside room.
func spawnPoints(m *gamemap.GameMap, r *rng.Random, room gamemap.Rect, count int, taken map[int]bool) []int {
	var out []int
	for attempts := 0; len(out) < count && attempts < count*20; attempts++ {
		x := room.X1 + r.Range(1, room.X2-room.X1)
		y := room.Y1 + r.Range(1, room.Y2-room.Y1)
		if !m.InBounds(x, y) || m.At(x, y) != gamemap.TileFloor {
			continue
		}
		idx := m.Idx(x, y)
		if taken[idx] {
			continue
		}
		taken[idx] = true
		out = append(out, idx)
	}
	return out
}

// SpawnMap creates the world clock, puts the player in the centre of the
// first room and populates every other room. It returns the player.
func SpawnMap(w *ecs.World, m *gamemap.GameMap, r *rng.Random, cfg config.Game) ecs.EntityID {
	NewGlobalTurn(w)
	px, py := 1, 1
	if len(m.Rooms) > 0 {
		px, py = m.Rooms[0].Center()
	}
	player := NewPlayer(w, px, py, cfg)
	if len(m.Rooms) > 1 {
		for _, room := range m.Rooms[1:] {
			SpawnRoom(w, m, r, room, cfg)
		}
	}
	return player
}
