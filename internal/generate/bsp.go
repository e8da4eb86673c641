package generate

import "goblin-warparty/internal/gamemap"

// leaf is a node in the BSP tree.
type leaf struct {
	X, Y, W, H  int
	left, right *leaf
	room        *gamemap.Rect
}

func (l *leaf) isSplit() bool { return l.left != nil || l.right != nil }

// split divides the leaf in two, returning false when it is too small.
func (l *leaf) split(cfg Config) bool {
	if l.isSplit() {
		return false
	}
	// Cut across the longer side once it is clearly longer.
	horizontal := cfg.Rand.FlipCoin()
	if l.W > l.H && float64(l.W)/float64(l.H) >= 1.25 {
		horizontal = false
	} else if l.H > l.W && float64(l.H)/float64(l.W) >= 1.25 {
		horizontal = true
	}

	size := l.W
	if horizontal {
		size = l.H
	}
	lo, hi := cfg.MinLeafSize, size-cfg.MinLeafSize
	if size <= cfg.MinLeafSize*2 || lo >= hi {
		return false
	}
	at := cfg.Rand.InclusiveRange(lo, hi)

	if horizontal {
		l.left = &leaf{X: l.X, Y: l.Y, W: l.W, H: at}
		l.right = &leaf{X: l.X, Y: l.Y + at, W: l.W, H: l.H - at}
	} else {
		l.left = &leaf{X: l.X, Y: l.Y, W: at, H: l.H}
		l.right = &leaf{X: l.X + at, Y: l.Y, W: l.W - at, H: l.H}
	}
	return true
}

// createRooms carves one room inside every terminal leaf.
func (l *leaf) createRooms(m *gamemap.GameMap, cfg Config) {
	if l.isSplit() {
		if l.left != nil {
			l.left.createRooms(m, cfg)
		}
		if l.right != nil {
			l.right.createRooms(m, cfg)
		}
		return
	}

	pad := cfg.RoomPadding
	maxW := max(3, min(cfg.RoomMaxSize, l.W-2*pad))
	maxH := max(3, min(cfg.RoomMaxSize, l.H-2*pad))
	rw := cfg.Rand.InclusiveRange(min(cfg.RoomMinSize, maxW), maxW)
	rh := cfg.Rand.InclusiveRange(min(cfg.RoomMinSize, maxH), maxH)

	rx := l.X + pad + cfg.Rand.Range(0, max(1, l.W-rw-2*pad+1))
	ry := l.Y + pad + cfg.Rand.Range(0, max(1, l.H-rh-2*pad+1))

	// Keep a one-tile wall border around the map.
	rx, ry = max(rx, 1), max(ry, 1)
	rw = min(rw, m.Width-rx-1)
	rh = min(rh, m.Height-ry-1)
	if rw < 3 || rh < 3 {
		return
	}

	room := gamemap.Rect{X1: rx, Y1: ry, X2: rx + rw - 1, Y2: ry + rh - 1}
	l.room = &room
	for y := room.Y1; y <= room.Y2; y++ {
		for x := room.X1; x <= room.X2; x++ {
			m.Set(x, y, gamemap.TileFloor)
		}
	}
	m.Rooms = append(m.Rooms, room)
}

// anyRoom returns a room from this subtree, preferring the left side.
func (l *leaf) anyRoom() *gamemap.Rect {
	if l.room != nil {
		return l.room
	}
	if l.left != nil {
		if r := l.left.anyRoom(); r != nil {
			return r
		}
	}
	if l.right != nil {
		return l.right.anyRoom()
	}
	return nil
}

// connect joins the two halves of every split leaf, bottom up.
func (l *leaf) connect(m *gamemap.GameMap, cfg Config) {
	if l.left == nil || l.right == nil {
		return
	}
	l.left.connect(m, cfg)
	l.right.connect(m, cfg)

	a, b := l.left.anyRoom(), l.right.anyRoom()
	if a == nil || b == nil {
		return
	}
	ax, ay := a.Center()
	bx, by := b.Center()
	carveCorridor(m, ax, ay, bx, by, cfg)
}

func bsp(cfg Config) *gamemap.GameMap {
	m := gamemap.New(cfg.Width, cfg.Height)
	root := &leaf{W: cfg.Width, H: cfg.Height}

	leaves := []*leaf{root}
	for changed := true; changed; {
		changed = false
		next := make([]*leaf, 0, len(leaves)*2)
		for _, lf := range leaves {
			if lf.isSplit() {
				next = append(next, lf.left, lf.right)
				continue
			}
			big := lf.W > cfg.MaxLeafSize || lf.H > cfg.MaxLeafSize
			if (big || cfg.Rand.Rand().Float64() > 0.25) && lf.split(cfg) {
				next = append(next, lf.left, lf.right)
				changed = true
				continue
			}
			next = append(next, lf)
		}
		leaves = next
	}

	root.createRooms(m, cfg)
	root.connect(m, cfg)
	return m
}
