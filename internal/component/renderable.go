package component

import (
	"goblin-warparty/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

const CRenderable ecs.ComponentType = 17

type Renderable struct {
	Glyph       string      `yaml:"glyph"`
	FGColor     tcell.Color `yaml:"fg"`
	BGColor     tcell.Color `yaml:"bg"`
	RenderOrder int         `yaml:"render_order"`
}

func (Renderable) Type() ecs.ComponentType { return CRenderable }
