package turn

import (
	"cmp"
	"slices"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/ecs"
)

const (
	// TimeScoreCeiling bounds scores: once any score passes it, every score
	// is rebased on the current minimum.
	TimeScoreCeiling uint32 = 1000
	// GlobalTurnIncrement is how far the world clock advances per turn.
	GlobalTurnIncrement uint32 = 100
)

// GlobalTurnTimeScore mirrors the world clock actor's time-score. Waiting
// actors are rescheduled relative to it.
type GlobalTurnTimeScore struct {
	TimeScore uint32 `yaml:"time_score"`
}

// Normalize rebases every time-score on the current minimum once a score has
// grown past TimeScoreCeiling. Relative order is unchanged. It returns the
// amount subtracted, zero when nothing was done.
func Normalize(w *ecs.World, clock *GlobalTurnTimeScore) uint32 {
	ids := w.Query(component.CTakesTurn)
	if len(ids) == 0 {
		return 0
	}

	lowest, highest := ^uint32(0), uint32(0)
	for _, id := range ids {
		s := w.Get(id, component.CTakesTurn).(component.TakesTurn).TimeScore
		lowest = min(lowest, s)
		highest = max(highest, s)
	}
	if highest <= TimeScoreCeiling || lowest == 0 {
		return 0
	}

	for _, id := range ids {
		tt := w.Get(id, component.CTakesTurn).(component.TakesTurn)
		tt.TimeScore -= lowest
		w.Add(id, tt)
	}
	if clock.TimeScore >= lowest {
		clock.TimeScore -= lowest
	} else {
		clock.TimeScore = 0
	}
	return lowest
}

type candidate struct {
	id    ecs.EntityID
	score uint32
}

// Decide clears last round's WantsToTakeTurn markers, picks the next batch
// and marks it. Actors with equal scores are ordered by creation.
//
// The lowest actor acts alone when it is the player, the world clock or
// currently visible. Otherwise the batch is the run of off-screen actors up
// to (not including) the first actor that would act alone.
func Decide(w *ecs.World) ([]ecs.EntityID, RunState) {
	w.Clear(component.CWantsToTakeTurn)

	ids := w.Query(component.CTakesTurn)
	order := make([]candidate, 0, len(ids))
	for _, id := range ids {
		order = append(order, candidate{id: id, score: w.Get(id, component.CTakesTurn).(component.TakesTurn).TimeScore})
	}
	slices.SortStableFunc(order, func(a, b candidate) int {
		return cmp.Compare(a.score, b.score)
	})

	var batch []ecs.EntityID
	playerTurn := false
	for i, c := range order {
		isPlayer := w.Has(c.id, component.CPlayer)
		actsAlone := isPlayer ||
			w.Has(c.id, component.CGlobalTurn) ||
			w.Has(c.id, component.CIsVisible)
		// A visible actor also closes a run of invisible ones, so this
		// single check covers the visibility transition.
		if actsAlone {
			if i == 0 {
				batch = append(batch, c.id)
				playerTurn = isPlayer
			}
			break
		}
		batch = append(batch, c.id)
	}

	for _, id := range batch {
		w.Insert(id, component.WantsToTakeTurn{})
	}

	if playerTurn {
		return batch, AwaitingInput
	}
	return batch, WorldTurn
}

// Schedule normalizes scores and then decides the next batch.
func Schedule(w *ecs.World, clock *GlobalTurnTimeScore) ([]ecs.EntityID, RunState) {
	Normalize(w, clock)
	return Decide(w)
}
