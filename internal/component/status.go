package component

import "goblin-warparty/internal/ecs"

const CConfusion ecs.ComponentType = 24

// Confusion is ticked down once each time the world clock advances.
type Confusion struct {
	TurnsRemaining int `yaml:"turns_remaining"`
}

func (Confusion) Type() ecs.ComponentType { return CConfusion }
