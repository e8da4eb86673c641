package system

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/ecs"
)

// MeleeCombat resolves WantsToMelee. The attack cost is charged even when
// the attack does nothing.
type MeleeCombat struct{}

func (MeleeCombat) Name() string { return "melee_combat" }

func (r MeleeCombat) Run(ctx *Context) {
	w := ctx.World
	defer w.Clear(component.CWantsToMelee)

	for _, id := range w.Query(component.CWantsToMelee) {
		target := w.Get(id, component.CWantsToMelee).(component.WantsToMelee).Target
		melee := w.Get(id, component.CCanMelee)
		sc := w.Get(id, component.CCombatStats)
		if melee == nil || sc == nil || !charge(w, id, melee.(component.CanMelee).TimeCost) {
			ctx.logger(r).Error("melee intent on entity that cannot fight", "entity", id)
			continue
		}
		stats := sc.(component.CombatStats)
		if stats.HP <= 0 {
			continue
		}
		tc := w.Get(target, component.CCombatStats)
		if tc == nil {
			ctx.logger(r).Error("melee target has no combat stats", "entity", id, "target", target)
			continue
		}
		targetStats := tc.(component.CombatStats)
		if targetStats.HP <= 0 {
			continue
		}

		damage := max(0, stats.Power-targetStats.Defense)
		if damage == 0 {
			ctx.Log.Addf("%s is unable to hurt %s.", nameOf(w, id), nameOf(w, target))
			continue
		}
		ctx.Log.Addf("%s hits %s for %d hp.", nameOf(w, id), nameOf(w, target), damage)
		inflict(w, target, damage)
	}
}

// Damage applies the accumulated SuffersDamage of the tick.
type Damage struct{}

func (Damage) Name() string { return "damage" }

func (Damage) Run(ctx *Context) {
	w := ctx.World
	defer w.Clear(component.CSuffersDamage)

	for _, id := range w.Query(component.CSuffersDamage, component.CCombatStats) {
		amount := w.Get(id, component.CSuffersDamage).(component.SuffersDamage).Amount
		stats := w.Get(id, component.CCombatStats).(component.CombatStats)
		stats.HP -= amount
		w.Add(id, stats)
	}
}

// DeleteTheDead removes every non-player actor with HP <= 0. A dead player
// stays in the world so the game can show the end screen.
type DeleteTheDead struct{}

func (DeleteTheDead) Name() string { return "delete_the_dead" }

func (r DeleteTheDead) Run(ctx *Context) {
	w := ctx.World
	var dead []ecs.EntityID
	for _, id := range w.Query(component.CCombatStats) {
		if w.Get(id, component.CCombatStats).(component.CombatStats).HP > 0 {
			continue
		}
		if w.Has(id, component.CPlayer) {
			if ctx.Res.RunState.IsTurn() {
				ctx.Log.Add("You are dead")
			}
			continue
		}
		ctx.Log.Addf("%s is dead", nameOf(w, id))
		dead = append(dead, id)
	}
	for _, id := range dead {
		w.DestroyEntity(id)
		ctx.logger(r).Debug("entity purged", "entity", id)
	}
}
