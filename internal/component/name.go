package component

import "goblin-warparty/internal/ecs"

const CName ecs.ComponentType = 16

type Name struct {
	Name string `yaml:"name"`
}

func (Name) Type() ecs.ComponentType { return CName }
