// Package system holds the resolvers. Each resolver reads the intents and
// facets it owns, applies the outcome to the world, and drains its intent
// store before returning.
package system

import (
	"log/slog"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/gamelog"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/geom"
	"goblin-warparty/internal/rng"
	"goblin-warparty/internal/turn"
)

// Resources are the world-wide singletons shared by the resolvers.
type Resources struct {
	Player    ecs.EntityID             `yaml:"player"`
	PlayerPos geom.Point               `yaml:"player_pos"`
	Clock     turn.GlobalTurnTimeScore `yaml:"clock"`
	RunState  turn.RunState            `yaml:"-"`
}

// Context is everything a resolver may touch during one run.
type Context struct {
	World  *ecs.World
	Map    *gamemap.GameMap
	Rand   *rng.Random
	Log    *gamelog.Log
	Logger *slog.Logger
	Res    *Resources
}

// Resolver is one stage of the intent pipeline.
type Resolver interface {
	Name() string
	Run(ctx *Context)
}

func (ctx *Context) logger(r Resolver) *slog.Logger {
	l := ctx.Logger
	if l == nil {
		l = slog.Default()
	}
	return l.With("resolver", r.Name())
}

// nameOf returns the display name of id, or "Something" if it has none.
func nameOf(w *ecs.World, id ecs.EntityID) string {
	if c := w.Get(id, component.CName); c != nil {
		return c.(component.Name).Name
	}
	return "Something"
}

func positionOf(w *ecs.World, id ecs.EntityID) (geom.Point, bool) {
	c := w.Get(id, component.CPosition)
	if c == nil {
		return geom.Point{}, false
	}
	return c.(component.Position).Point(), true
}

// charge adds cost to id's time-score. It reports false if id is not
// scheduled.
func charge(w *ecs.World, id ecs.EntityID, cost uint32) bool {
	c := w.Get(id, component.CTakesTurn)
	if c == nil {
		return false
	}
	tt := c.(component.TakesTurn)
	tt.TimeScore += cost
	w.Add(id, tt)
	return true
}

// inflict queues damage on target. Several hits in the same tick add up.
func inflict(w *ecs.World, target ecs.EntityID, amount int) {
	if c := w.Get(target, component.CSuffersDamage); c != nil {
		amount += c.(component.SuffersDamage).Amount
	}
	w.Add(target, component.SuffersDamage{Amount: amount})
}
