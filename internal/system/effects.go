package system

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/geom"
)

// ItemUse applies WantsToUseItem. Without a target point the item affects
// its user; with one it affects whatever is indexed at the point, or at
// every cell in a field of view of AreaOfEffect.Radius around it.
// A consumable is destroyed only if it affected someone.
type ItemUse struct{}

func (ItemUse) Name() string { return "item_use" }

func (r ItemUse) Run(ctx *Context) {
	w := ctx.World
	defer w.Clear(component.CWantsToUseItem)

	for _, user := range w.Query(component.CWantsToUseItem) {
		in := w.Get(user, component.CWantsToUseItem).(component.WantsToUseItem)
		if !w.Alive(in.Item) || !w.Has(in.Item, component.CItem) {
			ctx.logger(r).Error("use intent names a missing item", "entity", user, "item", in.Item)
			continue
		}

		var affected []ecs.EntityID
		for _, id := range r.targets(ctx, user, in) {
			if w.Has(id, component.CCombatStats) {
				affected = append(affected, id)
			}
		}

		itemName := nameOf(w, in.Item)
		byPlayer := user == ctx.Res.Player
		used := false

		if c := w.Get(in.Item, component.CProvidesHealing); c != nil {
			amount := c.(component.ProvidesHealing).Amount
			for _, id := range affected {
				stats := w.Get(id, component.CCombatStats).(component.CombatStats)
				stats.HP = min(stats.MaxHP, stats.HP+amount)
				w.Add(id, stats)
				used = true
				if byPlayer {
					ctx.Log.Addf("You use the %s, healing %d hp.", itemName, amount)
				}
			}
		}

		if c := w.Get(in.Item, component.CInflictsDamage); c != nil {
			amount := c.(component.InflictsDamage).Amount
			for _, id := range affected {
				inflict(w, id, amount)
				used = true
				if byPlayer {
					ctx.Log.Addf("You use %s on %s, inflicting %d hp.", itemName, nameOf(w, id), amount)
				}
			}
		}

		if c := w.Get(in.Item, component.CCausesConfusion); c != nil {
			turns := c.(component.CausesConfusion).Turns
			for _, id := range affected {
				w.Add(id, component.Confusion{TurnsRemaining: turns})
				used = true
				if byPlayer {
					ctx.Log.Addf("You use %s on %s, confusing them.", itemName, nameOf(w, id))
				}
			}
		}

		if used && w.Has(in.Item, component.CConsumable) {
			w.DestroyEntity(in.Item)
		}
	}
}

func (ItemUse) targets(ctx *Context, user ecs.EntityID, in component.WantsToUseItem) []ecs.EntityID {
	w, m := ctx.World, ctx.Map
	if in.Target == nil {
		return []ecs.EntityID{user}
	}
	p := *in.Target
	aoe := w.Get(in.Item, component.CAreaOfEffect)
	if aoe == nil {
		return m.ContentAt(p.X, p.Y)
	}
	var out []ecs.EntityID
	for _, cell := range geom.FieldOfView(p, aoe.(component.AreaOfEffect).Radius, m) {
		out = append(out, m.ContentAt(cell.X, cell.Y)...)
	}
	return out
}
