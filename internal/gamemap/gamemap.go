// Package gamemap holds the dungeon grid: static tiles plus the per-cell
// revealed, visible, blocked and content indexes the turn core maintains.
package gamemap

import (
	"math"

	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/geom"
)

// Rect is an axis-aligned rectangle used for rooms.
type Rect struct {
	X1 int `yaml:"x1"`
	Y1 int `yaml:"y1"`
	X2 int `yaml:"x2"`
	Y2 int `yaml:"y2"`
}

// NewRect builds a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether r overlaps other (inclusive edges).
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// GameMap is a fixed-size grid stored row-major: idx = y*Width + x.
//
// Content is a derived index rebuilt every tick from Position facets and is
// never persisted. Blocked is the wall layer OR'd with blocking actors.
type GameMap struct {
	Width, Height int
	Tiles         []TileKind
	Revealed      []bool
	Visible       []bool
	Blocked       []bool
	Content       [][]ecs.EntityID
	Rooms         []Rect
}

// New creates a GameMap filled with walls.
func New(width, height int) *GameMap {
	n := width * height
	m := &GameMap{
		Width:    width,
		Height:   height,
		Tiles:    make([]TileKind, n),
		Revealed: make([]bool, n),
		Visible:  make([]bool, n),
		Blocked:  make([]bool, n),
		Content:  make([][]ecs.EntityID, n),
	}
	m.RecomputeBlocked()
	return m
}

// Idx converts (x, y) to a flat index. The caller checks bounds.
func (m *GameMap) Idx(x, y int) int {
	return y*m.Width + x
}

// Coord converts a flat index back to (x, y).
func (m *GameMap) Coord(idx int) (int, int) {
	return idx % m.Width, idx / m.Width
}

// Point converts a flat index to a geometry point.
func (m *GameMap) Point(idx int) geom.Point {
	x, y := m.Coord(idx)
	return geom.Point{X: x, Y: y}
}

// InBounds reports whether (x, y) is within the map boundaries.
func (m *GameMap) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile kind at (x, y). Panics if out of bounds.
func (m *GameMap) At(x, y int) TileKind {
	return m.Tiles[m.Idx(x, y)]
}

// Set replaces the tile at (x, y).
func (m *GameMap) Set(x, y int, t TileKind) {
	m.Tiles[m.Idx(x, y)] = t
}

// SafeSet replaces the tile at (x, y) when it is in bounds.
func (m *GameMap) SafeSet(x, y int, t TileKind) {
	if m.InBounds(x, y) {
		m.Set(x, y, t)
	}
}

// IsBlocked reports whether movement into (x, y) is forbidden. Cells outside
// the map count as blocked.
func (m *GameMap) IsBlocked(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Blocked[m.Idx(x, y)]
}

// SetBlocked sets the blocked flag for one in-bounds cell.
func (m *GameMap) SetBlocked(x, y int, blocked bool) {
	if m.InBounds(x, y) {
		m.Blocked[m.Idx(x, y)] = blocked
	}
}

// MoveBlocker clears the blocked flag at from and sets it at to.
func (m *GameMap) MoveBlocker(from, to geom.Point) {
	m.SetBlocked(from.X, from.Y, false)
	m.SetBlocked(to.X, to.Y, true)
}

// IsOpaque reports whether (x, y) stops light. Cells outside the map are
// opaque.
func (m *GameMap) IsOpaque(x, y int) bool {
	if !m.InBounds(x, y) {
		return true
	}
	return m.Tiles[m.Idx(x, y)] == TileWall
}

// IsVisible reports whether (x, y) is inside the player's current view.
func (m *GameMap) IsVisible(x, y int) bool {
	return m.InBounds(x, y) && m.Visible[m.Idx(x, y)]
}

// IsRevealed reports whether (x, y) has ever been seen.
func (m *GameMap) IsRevealed(x, y int) bool {
	return m.InBounds(x, y) && m.Revealed[m.Idx(x, y)]
}

// RecomputeBlocked resets Blocked to the static wall layer only.
func (m *GameMap) RecomputeBlocked() {
	for i, t := range m.Tiles {
		m.Blocked[i] = t == TileWall
	}
}

// ClearContent empties every cell's content list.
func (m *GameMap) ClearContent() {
	for i := range m.Content {
		m.Content[i] = m.Content[i][:0]
	}
}

// AddContent records that id occupies cell idx.
func (m *GameMap) AddContent(idx int, id ecs.EntityID) {
	m.Content[idx] = append(m.Content[idx], id)
}

// ContentAt returns the entities indexed at (x, y).
func (m *GameMap) ContentAt(x, y int) []ecs.EntityID {
	if !m.InBounds(x, y) {
		return nil
	}
	return m.Content[m.Idx(x, y)]
}

// ResetVisible marks every cell as not currently visible.
func (m *GameMap) ResetVisible() {
	for i := range m.Visible {
		m.Visible[i] = false
	}
}

var cardinal = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Exits returns the cardinal neighbours of idx that can be entered.
func (m *GameMap) Exits(idx int) []geom.Exit {
	x, y := m.Coord(idx)
	exits := make([]geom.Exit, 0, 4)
	for _, d := range cardinal {
		nx, ny := x+d[0], y+d[1]
		if !m.IsBlocked(nx, ny) {
			exits = append(exits, geom.Exit{Idx: m.Idx(nx, ny), Cost: 1})
		}
	}
	return exits
}

// PathingDistance is the straight-line distance between two cells.
func (m *GameMap) PathingDistance(a, b int) float64 {
	ax, ay := m.Coord(a)
	bx, by := m.Coord(b)
	dx, dy := float64(ax-bx), float64(ay-by)
	return math.Sqrt(dx*dx + dy*dy)
}
