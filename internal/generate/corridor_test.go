package generate

import (
	"testing"

	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/rng"
)

// floorRow reports whether every tile at y between x1 and x2 is floor.
func floorRow(m *gamemap.GameMap, x1, x2, y int) bool {
	for x := min(x1, x2); x <= max(x1, x2); x++ {
		if m.At(x, y) != gamemap.TileFloor {
			return false
		}
	}
	return true
}

// floorCol reports whether every tile at x between y1 and y2 is floor.
func floorCol(m *gamemap.GameMap, y1, y2, x int) bool {
	for y := min(y1, y2); y <= max(y1, y2); y++ {
		if m.At(x, y) != gamemap.TileFloor {
			return false
		}
	}
	return true
}

func TestCarveH(t *testing.T) {
	m := gamemap.New(20, 20)
	carveH(m, 3, 8, 5)

	if !floorRow(m, 3, 8, 5) {
		t.Error("carveH(3,8,5) should carve floor from x=3 to x=8 at y=5")
	}
	if m.At(2, 5) != gamemap.TileWall || m.At(9, 5) != gamemap.TileWall {
		t.Error("tiles beyond the tunnel should remain wall")
	}
}

func TestCarveVReversedArgs(t *testing.T) {
	m := gamemap.New(20, 20)
	carveV(m, 7, 2, 4)
	if !floorCol(m, 2, 7, 4) {
		t.Error("carveV with reversed y args should still carve y=2..7")
	}
	if m.At(4, 1) != gamemap.TileWall || m.At(4, 8) != gamemap.TileWall {
		t.Error("tiles beyond the tunnel should remain wall")
	}
}

func TestCarveOutOfBoundsIsClipped(t *testing.T) {
	m := gamemap.New(10, 10)
	carveH(m, -5, 15, 3)
	if !floorRow(m, 0, 9, 3) {
		t.Error("in-bounds part of the tunnel should be carved")
	}
}

func TestCorridorStyles(t *testing.T) {
	tests := []struct {
		name  string
		style CorridorStyle
		check func(m *gamemap.GameMap) bool
	}{
		{"straight", CorridorStraight, func(m *gamemap.GameMap) bool {
			return floorRow(m, 2, 10, 2) && floorCol(m, 2, 8, 10)
		}},
		{"z-shaped", CorridorZShaped, func(m *gamemap.GameMap) bool {
			return floorCol(m, 2, 5, 2) && floorRow(m, 2, 10, 5) && floorCol(m, 5, 8, 10)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := gamemap.New(20, 20)
			carveCorridor(m, 2, 2, 10, 8, Config{CorridorStyle: tt.style, Rand: rng.New(0)})
			if !tt.check(m) {
				t.Errorf("%s corridor left a gap", tt.name)
			}
		})
	}
}

func TestCorridorLShapedConnects(t *testing.T) {
	// Both branches of the coin flip must join the endpoints.
	for seed := range 10 {
		m := gamemap.New(20, 20)
		carveCorridor(m, 2, 2, 10, 8, Config{CorridorStyle: CorridorLShaped, Rand: rng.New(int64(seed))})
		m.RecomputeBlocked()
		if got := reachable(m, 2, 2); got != floorCount(m) {
			t.Errorf("seed %d: corridor is not a single connected path", seed)
		}
		if m.At(10, 8) != gamemap.TileFloor {
			t.Errorf("seed %d: end tile should be floor", seed)
		}
	}
}
