package component

import (
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/geom"
)

// Intents live for one tick. The resolver that owns each type clears the
// whole store at the end of its run.
const (
	CWantsToMove    ecs.ComponentType = 25
	CWantsToMelee   ecs.ComponentType = 26
	CWantsToPickUp  ecs.ComponentType = 27
	CWantsToUseItem ecs.ComponentType = 28
	CWantsToDrop    ecs.ComponentType = 29
	CWantsToWait    ecs.ComponentType = 30
)

type WantsToMove struct {
	Destination geom.Point
}

func (WantsToMove) Type() ecs.ComponentType { return CWantsToMove }

type WantsToMelee struct {
	Target ecs.EntityID
}

func (WantsToMelee) Type() ecs.ComponentType { return CWantsToMelee }

type WantsToPickUp struct {
	Collector ecs.EntityID
	Item      ecs.EntityID
}

func (WantsToPickUp) Type() ecs.ComponentType { return CWantsToPickUp }

// WantsToUseItem with a nil Target applies the item to its user.
type WantsToUseItem struct {
	Item   ecs.EntityID
	Target *geom.Point
}

func (WantsToUseItem) Type() ecs.ComponentType { return CWantsToUseItem }

type WantsToDrop struct {
	Item ecs.EntityID
}

func (WantsToDrop) Type() ecs.ComponentType { return CWantsToDrop }

// WaitCause is narration only; it never changes the score a wait charges.
type WaitCause uint8

const (
	WaitChoice WaitCause = iota
	WaitConfusion
	WaitStun
)

func (c WaitCause) String() string {
	switch c {
	case WaitConfusion:
		return "confusion"
	case WaitStun:
		return "stun"
	default:
		return "choice"
	}
}

type WantsToWait struct {
	Cause WaitCause
}

func (WantsToWait) Type() ecs.ComponentType { return CWantsToWait }
