package component

import (
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/geom"
)

const CViewshed ecs.ComponentType = 4

// Viewshed is the set of tiles an actor can currently see. Dirty is set
// whenever the owner's position changes.
type Viewshed struct {
	VisibleTiles []geom.Point `yaml:"-"`
	Range        int          `yaml:"range"`
	Dirty        bool         `yaml:"dirty"`
}

func (Viewshed) Type() ecs.ComponentType { return CViewshed }

// CanSee reports whether p is in the visible set.
func (v Viewshed) CanSee(p geom.Point) bool {
	for _, t := range v.VisibleTiles {
		if t == p {
			return true
		}
	}
	return false
}
