package component

import "goblin-warparty/internal/ecs"

const (
	CTakesTurn       ecs.ComponentType = 5
	CCanMove         ecs.ComponentType = 6
	CCanMelee        ecs.ComponentType = 7
	CGlobalTurn      ecs.ComponentType = 8
	CWantsToTakeTurn ecs.ComponentType = 9
)

// TakesTurn carries the scheduling key. Lower scores act sooner.
type TakesTurn struct {
	TimeScore uint32 `yaml:"time_score"`
}

func (TakesTurn) Type() ecs.ComponentType { return CTakesTurn }

// CanMove marks an actor able to move; TimeCost is charged per move.
type CanMove struct {
	TimeCost uint32 `yaml:"time_cost"`
}

func (CanMove) Type() ecs.ComponentType { return CCanMove }

// CanMelee marks an actor able to attack; TimeCost is charged per attack.
type CanMelee struct {
	TimeCost uint32 `yaml:"time_cost"`
}

func (CanMelee) Type() ecs.ComponentType { return CCanMelee }

// GlobalTurn marks the world-clock pseudo-actor. Exactly one exists.
type GlobalTurn struct{}

func (GlobalTurn) Type() ecs.ComponentType { return CGlobalTurn }

// WantsToTakeTurn is posted by the scheduler on every member of the batch.
type WantsToTakeTurn struct{}

func (WantsToTakeTurn) Type() ecs.ComponentType { return CWantsToTakeTurn }
