package component

import "goblin-warparty/internal/ecs"

const (
	CCombatStats   ecs.ComponentType = 2
	CSuffersDamage ecs.ComponentType = 3
)

// CombatStats is mutated only by the damage and item-use resolvers.
// An actor with HP <= 0 is removed by the next death purge (players excepted).
type CombatStats struct {
	MaxHP   int `yaml:"max_hp"`
	HP      int `yaml:"hp"`
	Defense int `yaml:"defense"`
	Power   int `yaml:"power"`
}

func (CombatStats) Type() ecs.ComponentType { return CCombatStats }

// SuffersDamage accumulates incoming damage within one tick.
type SuffersDamage struct {
	Amount int `yaml:"amount"`
}

func (SuffersDamage) Type() ecs.ComponentType { return CSuffersDamage }
