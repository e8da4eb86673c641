package system

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/geom"
)

// Visibility recomputes every dirty viewshed. When the player's viewshed
// changes the map's visible layer and the IsVisible markers are rebuilt
// from it.
type Visibility struct{}

func (Visibility) Name() string { return "visibility" }

func (Visibility) Run(ctx *Context) {
	w, m := ctx.World, ctx.Map
	for _, id := range w.Query(component.CViewshed, component.CPosition) {
		vs := w.Get(id, component.CViewshed).(component.Viewshed)
		if !vs.Dirty {
			continue
		}
		pos := w.Get(id, component.CPosition).(component.Position)

		fov := geom.FieldOfView(pos.Point(), vs.Range, m)
		tiles := make([]geom.Point, 0, len(fov))
		for _, p := range fov {
			if m.InBounds(p.X, p.Y) {
				tiles = append(tiles, p)
			}
		}
		vs.Dirty = false
		vs.VisibleTiles = tiles
		w.Add(id, vs)

		if !w.Has(id, component.CPlayer) {
			continue
		}
		m.ResetVisible()
		w.Clear(component.CIsVisible)
		for _, p := range vs.VisibleTiles {
			idx := m.Idx(p.X, p.Y)
			m.Revealed[idx] = true
			m.Visible[idx] = true
			for _, e := range m.Content[idx] {
				w.Add(e, component.IsVisible{})
			}
		}
	}
}
