package engine

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/geom"
	"goblin-warparty/internal/turn"
)

func positionOf(w *ecs.World, id ecs.EntityID) geom.Point {
	if c := w.Get(id, component.CPosition); c != nil {
		return c.(component.Position).Point()
	}
	return geom.Point{}
}

// PlayerDead reports whether the player has run out of hit points.
func (e *Engine) PlayerDead() bool {
	c := e.World.Get(e.Res.Player, component.CCombatStats)
	return c == nil || c.(component.CombatStats).HP <= 0
}

// MovePlayer posts a melee intent against the first fighter at the
// destination, or a move intent otherwise. It reports false, posting
// nothing, when the destination is outside the map or solid rock.
func (e *Engine) MovePlayer(dx, dy int) bool {
	dest := e.Res.PlayerPos.Add(dx, dy)
	if !e.Map.InBounds(dest.X, dest.Y) || e.Map.At(dest.X, dest.Y) == gamemap.TileWall {
		return false
	}
	player := e.Res.Player
	for _, id := range e.Map.ContentAt(dest.X, dest.Y) {
		if id != player && e.World.Has(id, component.CCombatStats) {
			e.World.Insert(player, component.WantsToMelee{Target: id})
			return true
		}
	}
	e.World.Insert(player, component.WantsToMove{Destination: dest})
	return true
}

// Wait posts a voluntary wait for the player.
func (e *Engine) Wait() {
	e.World.Insert(e.Res.Player, component.WantsToWait{Cause: component.WaitChoice})
}

// PickUp posts a pickup of the first item under the player.
func (e *Engine) PickUp() bool {
	p := e.Res.PlayerPos
	for _, id := range e.World.Query(component.CItem, component.CPosition) {
		if positionOf(e.World, id) == p {
			e.World.Insert(e.Res.Player, component.WantsToPickUp{Collector: e.Res.Player, Item: id})
			return true
		}
	}
	e.Log.Add("There is nothing to pick up.")
	return false
}

// Backpack lists the items the player carries in creation order.
func (e *Engine) Backpack() []ecs.EntityID {
	var items []ecs.EntityID
	for _, id := range e.World.Query(component.CInBackpack) {
		if e.World.Get(id, component.CInBackpack).(component.InBackpack).Owner == e.Res.Player {
			items = append(items, id)
		}
	}
	return items
}

// UseItem posts a use of item. A nil target applies it to the player.
func (e *Engine) UseItem(item ecs.EntityID, target *geom.Point) {
	e.World.Insert(e.Res.Player, component.WantsToUseItem{Item: item, Target: target})
}

// DropItem posts a drop of item at the player's feet.
func (e *Engine) DropItem(item ecs.EntityID) {
	e.World.Insert(e.Res.Player, component.WantsToDrop{Item: item})
}

// Targeting returns the item awaiting a target and its reach.
func (e *Engine) Targeting() (ecs.EntityID, int, bool) {
	return e.target.item, e.target.reach, e.state == turn.ShowTargeting
}

// InReach reports whether p can be targeted: the player sees it and it is
// within reach tiles.
func (e *Engine) InReach(p geom.Point, reach int) bool {
	c := e.World.Get(e.Res.Player, component.CViewshed)
	if c == nil || !c.(component.Viewshed).CanSee(p) {
		return false
	}
	return geom.Distance(e.Res.PlayerPos, p) <= float64(reach)
}

// TargetCells lists every cell the pending targeted item can reach.
func (e *Engine) TargetCells() []geom.Point {
	if e.state != turn.ShowTargeting {
		return nil
	}
	c := e.World.Get(e.Res.Player, component.CViewshed)
	if c == nil {
		return nil
	}
	var cells []geom.Point
	for _, p := range c.(component.Viewshed).VisibleTiles {
		if geom.Distance(e.Res.PlayerPos, p) <= float64(e.target.reach) {
			cells = append(cells, p)
		}
	}
	return cells
}
