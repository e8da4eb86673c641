package generate

import (
	"testing"

	"goblin-warparty/internal/config"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/rng"
)

func testConfig(style Style, seed int64) Config {
	c := config.Default().Map
	cfg := FromConfig(c, rng.New(seed))
	cfg.Style = style
	return cfg
}

// reachable flood-fills from (x, y) over floor tiles.
func reachable(m *gamemap.GameMap, x, y int) int {
	seen := make([]bool, len(m.Tiles))
	queue := []int{m.Idx(x, y)}
	seen[queue[0]] = true
	count := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++
		for _, ex := range m.Exits(cur) {
			if !seen[ex.Idx] {
				seen[ex.Idx] = true
				queue = append(queue, ex.Idx)
			}
		}
	}
	return count
}

func floorCount(m *gamemap.GameMap) int {
	n := 0
	for _, t := range m.Tiles {
		if t == gamemap.TileFloor {
			n++
		}
	}
	return n
}

func TestGenerateAllFloorConnected(t *testing.T) {
	for _, style := range []Style{StyleRooms, StyleBSP} {
		for seed := int64(0); seed < 10; seed++ {
			m := Generate(testConfig(style, seed))
			if len(m.Rooms) == 0 {
				t.Fatalf("style=%d seed=%d: no rooms", style, seed)
			}
			sx, sy := m.Rooms[0].Center()
			if m.At(sx, sy) != gamemap.TileFloor {
				t.Fatalf("style=%d seed=%d: start (%d,%d) is not floor", style, seed, sx, sy)
			}
			if got, want := reachable(m, sx, sy), floorCount(m); got != want {
				t.Errorf("style=%d seed=%d: reached %d of %d floor tiles", style, seed, got, want)
			}
		}
	}
}

func TestGenerateKeepsBorderWalls(t *testing.T) {
	for _, style := range []Style{StyleRooms, StyleBSP} {
		m := Generate(testConfig(style, 3))
		for x := 0; x < m.Width; x++ {
			if m.At(x, 0) != gamemap.TileWall || m.At(x, m.Height-1) != gamemap.TileWall {
				t.Fatalf("style=%d: border breached at column %d", style, x)
			}
		}
		for y := 0; y < m.Height; y++ {
			if m.At(0, y) != gamemap.TileWall || m.At(m.Width-1, y) != gamemap.TileWall {
				t.Fatalf("style=%d: border breached at row %d", style, y)
			}
		}
	}
}

func TestGenerateRoomsDoNotOverlap(t *testing.T) {
	m := Generate(testConfig(StyleRooms, 11))
	if len(m.Rooms) > 30 {
		t.Fatalf("got %d rooms, want at most 30", len(m.Rooms))
	}
	for i, a := range m.Rooms {
		for _, b := range m.Rooms[i+1:] {
			if a.Intersects(b) {
				t.Errorf("rooms %+v and %+v overlap", a, b)
			}
		}
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(testConfig(StyleRooms, 99))
	b := Generate(testConfig(StyleRooms, 99))
	for i := range a.Tiles {
		if a.Tiles[i] != b.Tiles[i] {
			t.Fatalf("tile %d differs between runs with the same seed", i)
		}
	}
}

func TestGenerateBlockedMatchesWalls(t *testing.T) {
	m := Generate(testConfig(StyleBSP, 5))
	for i, tile := range m.Tiles {
		if m.Blocked[i] != (tile == gamemap.TileWall) {
			t.Fatalf("blocked[%d] = %v for %s", i, m.Blocked[i], tile)
		}
	}
}

func TestFromConfigStyle(t *testing.T) {
	c := config.Default().Map
	if got := FromConfig(c, rng.New(1)).Style; got != StyleRooms {
		t.Errorf("default style = %d, want rooms", got)
	}
	c.Style = config.StyleBSP
	if got := FromConfig(c, rng.New(1)).Style; got != StyleBSP {
		t.Errorf("bsp style = %d, want bsp", got)
	}
}
