package component

import "goblin-warparty/internal/ecs"

const (
	CInBackpack      ecs.ComponentType = 18
	CProvidesHealing ecs.ComponentType = 19
	CInflictsDamage  ecs.ComponentType = 20
	CRanged          ecs.ComponentType = 21
	CAreaOfEffect    ecs.ComponentType = 22
	CCausesConfusion ecs.ComponentType = 23
)

// InBackpack replaces Position while an item is carried.
type InBackpack struct {
	Owner ecs.EntityID `yaml:"owner"`
}

func (InBackpack) Type() ecs.ComponentType { return CInBackpack }

type ProvidesHealing struct {
	Amount int `yaml:"amount"`
}

func (ProvidesHealing) Type() ecs.ComponentType { return CProvidesHealing }

type InflictsDamage struct {
	Amount int `yaml:"amount"`
}

func (InflictsDamage) Type() ecs.ComponentType { return CInflictsDamage }

// Ranged items need an explicit target point within Range tiles.
type Ranged struct {
	Range int `yaml:"range"`
}

func (Ranged) Type() ecs.ComponentType { return CRanged }

// AreaOfEffect expands a point target to everything in a field of view of
// Radius around it.
type AreaOfEffect struct {
	Radius int `yaml:"radius"`
}

func (AreaOfEffect) Type() ecs.ComponentType { return CAreaOfEffect }

// CausesConfusion applies Confusion{Turns} to every affected actor.
type CausesConfusion struct {
	Turns int `yaml:"turns"`
}

func (CausesConfusion) Type() ecs.ComponentType { return CCausesConfusion }
