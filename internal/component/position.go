package component

import (
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/geom"
)

const CPosition ecs.ComponentType = 1

type Position struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Point converts the position to a geometry point.
func (p Position) Point() geom.Point { return geom.Point{X: p.X, Y: p.Y} }
