package generate

import "goblin-warparty/internal/gamemap"

// carveCorridor digs a tunnel between (x1,y1) and (x2,y2).
func carveCorridor(m *gamemap.GameMap, x1, y1, x2, y2 int, cfg Config) {
	switch cfg.CorridorStyle {
	case CorridorZShaped:
		carveZShaped(m, x1, y1, x2, y2)
	case CorridorStraight:
		carveH(m, x1, x2, y1)
		carveV(m, y1, y2, x2)
	default:
		if cfg.Rand.FlipCoin() {
			carveH(m, x1, x2, y1)
			carveV(m, y1, y2, x2)
		} else {
			carveV(m, y1, y2, x1)
			carveH(m, x1, x2, y2)
		}
	}
}

func carveH(m *gamemap.GameMap, x1, x2, y int) {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		m.SafeSet(x, y, gamemap.TileFloor)
	}
}

func carveV(m *gamemap.GameMap, y1, y2, x int) {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		m.SafeSet(x, y, gamemap.TileFloor)
	}
}

func carveZShaped(m *gamemap.GameMap, x1, y1, x2, y2 int) {
	midY := (y1 + y2) / 2
	carveV(m, y1, midY, x1)
	carveH(m, x1, x2, midY)
	carveV(m, midY, y2, x2)
}
