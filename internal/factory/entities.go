// Package factory builds the entities of a new world.
package factory

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/config"
	"goblin-warparty/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Render orders; higher draws on top.
const (
	orderItem    = 2
	orderMonster = 5
	orderPlayer  = 10
)

// NewGlobalTurn creates the world clock pseudo-actor. Create it before any
// other actor so it wins time-score ties.
func NewGlobalTurn(w *ecs.World) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.GlobalTurn{})
	w.Add(id, component.TakesTurn{})
	return id
}

// NewPlayer creates the player entity at (x, y).
func NewPlayer(w *ecs.World, x, y int, cfg config.Game) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       "🧙",
		FGColor:     tcell.ColorYellow,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderPlayer,
	})
	w.Add(id, component.Player{})
	w.Add(id, component.Name{Name: "Player"})
	w.Add(id, component.Viewshed{Range: cfg.Player.Sight, Dirty: true})
	w.Add(id, component.CombatStats{
		MaxHP:   cfg.Player.HP,
		HP:      cfg.Player.HP,
		Defense: cfg.Player.Defense,
		Power:   cfg.Player.Power,
	})
	w.Add(id, component.TakesTurn{})
	w.Add(id, component.CanMove{TimeCost: cfg.MoveCost})
	w.Add(id, component.CanMelee{TimeCost: cfg.MeleeCost})
	return id
}

// NewOrc creates an orc at (x, y).
func NewOrc(w *ecs.World, x, y int, cfg config.Game) ecs.EntityID {
	return newMonster(w, x, y, "👹", "Orc", cfg)
}

// NewGoblin creates a goblin at (x, y).
func NewGoblin(w *ecs.World, x, y int, cfg config.Game) ecs.EntityID {
	return newMonster(w, x, y, "👺", "Goblin", cfg)
}

func newMonster(w *ecs.World, x, y int, glyph, name string, cfg config.Game) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     tcell.ColorRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderMonster,
	})
	w.Add(id, component.Monster{})
	w.Add(id, component.Name{Name: name})
	w.Add(id, component.Viewshed{Range: cfg.Monsters.Sight, Dirty: true})
	w.Add(id, component.BlocksTile{})
	w.Add(id, component.CombatStats{
		MaxHP:   cfg.Monsters.HP,
		HP:      cfg.Monsters.HP,
		Defense: cfg.Monsters.Defense,
		Power:   cfg.Monsters.Power,
	})
	w.Add(id, component.TakesTurn{})
	w.Add(id, component.CanMove{TimeCost: cfg.MoveCost})
	w.Add(id, component.CanMelee{TimeCost: cfg.MeleeCost})
	return id
}

// NewHealthPotion creates a potion that heals its user.
func NewHealthPotion(w *ecs.World, x, y int, items config.ItemStats) ecs.EntityID {
	id := newItem(w, x, y, "🧪", "Health Potion", tcell.ColorFuchsia)
	w.Add(id, component.ProvidesHealing{Amount: items.PotionHeal})
	return id
}

// NewMagicMissileScroll creates a scroll that damages one target.
func NewMagicMissileScroll(w *ecs.World, x, y int, items config.ItemStats) ecs.EntityID {
	id := newItem(w, x, y, "📜", "Magic Missile Scroll", tcell.ColorAqua)
	w.Add(id, component.Ranged{Range: items.MissileRange})
	w.Add(id, component.InflictsDamage{Amount: items.MissileDamage})
	return id
}

// NewFireballScroll creates a scroll that damages everything around the
// target point.
func NewFireballScroll(w *ecs.World, x, y int, items config.ItemStats) ecs.EntityID {
	id := newItem(w, x, y, "🔥", "Fireball Scroll", tcell.ColorOrange)
	w.Add(id, component.Ranged{Range: items.FireballRange})
	w.Add(id, component.InflictsDamage{Amount: items.FireballDamage})
	w.Add(id, component.AreaOfEffect{Radius: items.FireballRadius})
	return id
}

// NewConfusionScroll creates a scroll that confuses one target.
func NewConfusionScroll(w *ecs.World, x, y int, items config.ItemStats) ecs.EntityID {
	id := newItem(w, x, y, "🌀", "Confusion Scroll", tcell.ColorPink)
	w.Add(id, component.Ranged{Range: items.ConfusionRange})
	w.Add(id, component.CausesConfusion{Turns: items.ConfusionTurns})
	return id
}

func newItem(w *ecs.World, x, y int, glyph, name string, fg tcell.Color) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Renderable{
		Glyph:       glyph,
		FGColor:     fg,
		BGColor:     tcell.ColorDefault,
		RenderOrder: orderItem,
	})
	w.Add(id, component.Item{})
	w.Add(id, component.Consumable{})
	w.Add(id, component.Name{Name: name})
	return id
}
