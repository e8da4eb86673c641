package system

import "goblin-warparty/internal/component"

// MapIndexing rebuilds the blocked layer and the per-cell content index
// from the current positions.
type MapIndexing struct{}

func (MapIndexing) Name() string { return "map_indexing" }

func (MapIndexing) Run(ctx *Context) {
	w, m := ctx.World, ctx.Map
	m.RecomputeBlocked()
	m.ClearContent()
	for _, id := range w.Query(component.CPosition) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.InBounds(pos.X, pos.Y) {
			continue
		}
		if w.Has(id, component.CBlocksTile) {
			m.SetBlocked(pos.X, pos.Y, true)
		}
		m.AddContent(m.Idx(pos.X, pos.Y), id)
	}
}
