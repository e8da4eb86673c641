package system

import (
	"goblin-warparty/internal/component"
	"goblin-warparty/internal/turn"
)

// GlobalTurn advances the world clock when the clock actor is scheduled,
// and ticks every active Confusion once per advance.
type GlobalTurn struct{}

func (GlobalTurn) Name() string { return "global_turn" }

func (r GlobalTurn) Run(ctx *Context) {
	w := ctx.World
	advanced := false
	for _, id := range w.Query(component.CGlobalTurn, component.CTakesTurn, component.CWantsToTakeTurn) {
		tt := w.Get(id, component.CTakesTurn).(component.TakesTurn)
		tt.TimeScore += turn.GlobalTurnIncrement
		w.Add(id, tt)
		ctx.Res.Clock.TimeScore = tt.TimeScore
		advanced = true
	}
	if !advanced {
		return
	}
	ctx.logger(r).Debug("world clock advanced", "time_score", ctx.Res.Clock.TimeScore)

	for _, id := range w.Query(component.CTakesTurn, component.CConfusion) {
		c := w.Get(id, component.CConfusion).(component.Confusion)
		c.TurnsRemaining--
		if c.TurnsRemaining <= 0 {
			w.Remove(id, component.CConfusion)
			if id == ctx.Res.Player {
				ctx.Log.Add("You are no longer confused.")
			}
			continue
		}
		w.Add(id, c)
	}
}

// Wait reschedules every waiting actor one unit after the world clock.
type Wait struct{}

func (Wait) Name() string { return "wait" }

func (r Wait) Run(ctx *Context) {
	w := ctx.World
	defer w.Clear(component.CWantsToWait)

	next := ctx.Res.Clock.TimeScore + 1
	for _, id := range w.Query(component.CWantsToWait) {
		c := w.Get(id, component.CTakesTurn)
		if c == nil {
			ctx.logger(r).Error("wait intent on unscheduled entity", "entity", id)
			continue
		}
		tt := c.(component.TakesTurn)
		// Scores never move backwards.
		tt.TimeScore = max(tt.TimeScore, next)
		w.Add(id, tt)

		cause := w.Get(id, component.CWantsToWait).(component.WantsToWait).Cause
		ctx.logger(r).Debug("actor waits", "entity", id, "cause", cause.String(), "time_score", tt.TimeScore)
	}
}
