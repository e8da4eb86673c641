package system

import "goblin-warparty/internal/component"

// Movement applies WantsToMove. The move cost is charged whether or not the
// destination turns out to be blocked.
type Movement struct{}

func (Movement) Name() string { return "movement" }

func (r Movement) Run(ctx *Context) {
	w, m := ctx.World, ctx.Map
	defer w.Clear(component.CWantsToMove)

	for _, id := range w.Query(component.CWantsToMove) {
		dest := w.Get(id, component.CWantsToMove).(component.WantsToMove).Destination
		mover := w.Get(id, component.CCanMove)
		from, ok := positionOf(w, id)
		if mover == nil || !ok || !charge(w, id, mover.(component.CanMove).TimeCost) {
			ctx.logger(r).Error("move intent on entity that cannot move", "entity", id)
			continue
		}
		if m.IsBlocked(dest.X, dest.Y) {
			continue
		}

		w.Add(id, component.Position{X: dest.X, Y: dest.Y})
		if c := w.Get(id, component.CViewshed); c != nil {
			vs := c.(component.Viewshed)
			vs.Dirty = true
			w.Add(id, vs)
		}
		if w.Has(id, component.CBlocksTile) {
			m.MoveBlocker(from, dest)
		}
		if w.Has(id, component.CPlayer) {
			ctx.Res.PlayerPos = dest
		}
	}
}
