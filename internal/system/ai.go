package system

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/geom"
)

// meleeReach is the largest distance at which two actors are adjacent.
const meleeReach = 1.01

var wanderDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// MonsterDecision posts exactly one intent for every monster in the
// current batch.
type MonsterDecision struct{}

func (MonsterDecision) Name() string { return "monster_decision" }

func (MonsterDecision) Run(ctx *Context) {
	w, m := ctx.World, ctx.Map
	player := ctx.Res.Player
	playerPos := ctx.Res.PlayerPos
	playerAlive := player != 0 && w.Alive(player)

	for _, id := range w.Query(component.CMonster, component.CPosition, component.CViewshed, component.CWantsToTakeTurn) {
		if w.Has(id, component.CConfusion) {
			w.Insert(id, component.WantsToWait{Cause: component.WaitConfusion})
			continue
		}

		pos := w.Get(id, component.CPosition).(component.Position).Point()
		vs := w.Get(id, component.CViewshed).(component.Viewshed)

		switch {
		case playerAlive && geom.Distance(pos, playerPos) < meleeReach:
			w.Insert(id, component.WantsToMelee{Target: player})

		case playerAlive && vs.CanSee(playerPos):
			path := geom.AStar(m.Idx(pos.X, pos.Y), m.Idx(playerPos.X, playerPos.Y), m)
			if path.Success && len(path.Steps) > 1 {
				w.Insert(id, component.WantsToMove{Destination: m.Point(path.Steps[1])})
			} else {
				w.Insert(id, component.WantsToWait{Cause: component.WaitChoice})
			}

		default:
			d := wanderDirs[ctx.Rand.RollDie(4)-1]
			if ctx.Rand.RollDie(7) > 1 {
				w.Insert(id, component.WantsToMove{Destination: pos.Add(d[0], d[1])})
			} else {
				w.Insert(id, component.WantsToWait{Cause: component.WaitChoice})
			}
		}
	}
}
