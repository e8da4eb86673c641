package system

import "goblin-warparty/internal/component"

// ItemPickup moves items from the floor into their collector's backpack.
// Picking up something already carried or already gone is a no-op.
type ItemPickup struct{}

func (ItemPickup) Name() string { return "item_pickup" }

func (ItemPickup) Run(ctx *Context) {
	w := ctx.World
	defer w.Clear(component.CWantsToPickUp)

	for _, id := range w.Query(component.CWantsToPickUp) {
		in := w.Get(id, component.CWantsToPickUp).(component.WantsToPickUp)
		if !w.Alive(in.Item) || !w.Has(in.Item, component.CItem) || !w.Has(in.Item, component.CPosition) {
			continue
		}
		w.Remove(in.Item, component.CPosition)
		w.Add(in.Item, component.InBackpack{Owner: in.Collector})
		if in.Collector == ctx.Res.Player {
			ctx.Log.Addf("You pick up the %s.", nameOf(w, in.Item))
		}
	}
}

// ItemDrop puts carried items down at their owner's feet.
type ItemDrop struct{}

func (ItemDrop) Name() string { return "item_drop" }

func (r ItemDrop) Run(ctx *Context) {
	w := ctx.World
	defer w.Clear(component.CWantsToDrop)

	for _, id := range w.Query(component.CWantsToDrop) {
		item := w.Get(id, component.CWantsToDrop).(component.WantsToDrop).Item
		bp := w.Get(item, component.CInBackpack)
		if bp == nil || bp.(component.InBackpack).Owner != id {
			continue
		}
		pos, ok := positionOf(w, id)
		if !ok {
			ctx.logger(r).Error("drop intent on entity without position", "entity", id)
			continue
		}
		w.Remove(item, component.CInBackpack)
		w.Add(item, component.Position{X: pos.X, Y: pos.Y})
		if id == ctx.Res.Player {
			ctx.Log.Addf("You drop the %s.", nameOf(w, item))
		}
	}
}
