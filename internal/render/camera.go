package render

import "goblin-warparty/internal/geom"

// Camera translates between world coordinates and screen coordinates.
// World X is multiplied by 2 because emoji occupy 2 terminal columns.
type Camera struct {
	OffsetX    int
	OffsetY    int
	ViewWidth  int // in terminal columns
	ViewHeight int // in terminal rows
}

// NewCamera creates a camera of the given viewport size at the origin.
func NewCamera(viewW, viewH int) *Camera {
	return &Camera{ViewWidth: viewW, ViewHeight: viewH}
}

// Follow centres the camera on p without scrolling past the map edges when
// the map is larger than the viewport.
func (c *Camera) Follow(p geom.Point, mapW, mapH int) {
	tilesW := c.ViewWidth / 2
	c.OffsetX = clampOffset(p.X-tilesW/2, mapW, tilesW)
	c.OffsetY = clampOffset(p.Y-c.ViewHeight/2, mapH, c.ViewHeight)
}

func clampOffset(off, size, view int) int {
	if size <= view {
		return 0
	}
	return max(0, min(off, size-view))
}

// WorldToScreen converts world p to screen (sx, sy).
// visible is false when the result falls outside the viewport.
func (c *Camera) WorldToScreen(p geom.Point) (sx, sy int, visible bool) {
	sx = (p.X - c.OffsetX) * 2
	sy = p.Y - c.OffsetY
	visible = sx >= 0 && sx+1 < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

// ScreenToWorld converts screen (sx, sy) to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy int) geom.Point {
	return geom.Point{X: sx/2 + c.OffsetX, Y: sy + c.OffsetY}
}
