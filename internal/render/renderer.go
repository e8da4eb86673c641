package render

import (
	"slices"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/ecs"
	"goblin-warparty/internal/engine"
	"goblin-warparty/internal/gamemap"
	"goblin-warparty/internal/geom"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of rows reserved below the map.
const hudRows = 6

// Renderer draws one engine onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
	theme  Theme
	cursor *geom.Point
}

// NewRenderer creates a Renderer for the given screen.
func NewRenderer(screen tcell.Screen) *Renderer {
	r := &Renderer{screen: screen, theme: DefaultTheme}
	r.Resize()
	return r
}

// Resize adapts the viewport to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera = NewCamera(w, max(1, h-hudRows))
}

// SetCursor shows the targeting cursor at p; nil hides it.
func (r *Renderer) SetCursor(p *geom.Point) { r.cursor = p }

// Camera exposes the viewport, for mapping mouse clicks to cells.
func (r *Renderer) Camera() *Camera { return r.camera }

// DrawFrame renders the map, entities, HUD and any open menu.
func (r *Renderer) DrawFrame(e *engine.Engine) {
	r.screen.Clear()
	r.camera.Follow(e.Res.PlayerPos, e.Map.Width, e.Map.Height)
	r.drawMap(e.Map)
	r.drawTargets(e)
	r.drawEntities(e.World, e.Map)
	r.drawCursor()
	r.DrawHUD(e)
	r.drawMenu(e)
	r.screen.Show()
}

// drawMap renders every revealed tile; remembered tiles are drawn dim.
func (r *Renderer) drawMap(m *gamemap.GameMap) {
	style := tcell.StyleDefault.Background(r.theme.Background)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if !m.IsRevealed(x, y) {
				continue
			}
			sx, sy, onScreen := r.camera.WorldToScreen(geom.Point{X: x, Y: y})
			if !onScreen {
				continue
			}
			wall := m.At(x, y) == gamemap.TileWall
			var glyph string
			switch {
			case m.IsVisible(x, y) && wall:
				glyph = r.theme.Wall
			case m.IsVisible(x, y):
				glyph = r.theme.Floor
			case wall:
				glyph = r.theme.DimWall
			default:
				glyph = r.theme.DimFloor
			}
			r.putGlyph(sx, sy, glyph, style)
		}
	}
}

// drawTargets tints every cell the pending targeted item can reach.
func (r *Renderer) drawTargets(e *engine.Engine) {
	style := tcell.StyleDefault.Background(r.theme.Reticle)
	for _, p := range e.TargetCells() {
		if sx, sy, ok := r.camera.WorldToScreen(p); ok {
			r.screen.SetContent(sx, sy, ' ', nil, style)
			r.screen.SetContent(sx+1, sy, ' ', nil, style)
		}
	}
}

// drawCursor brackets the cell under the targeting cursor.
func (r *Renderer) drawCursor() {
	if r.cursor == nil {
		return
	}
	if sx, sy, ok := r.camera.WorldToScreen(*r.cursor); ok {
		cur := tcell.StyleDefault.Background(r.theme.Cursor)
		r.screen.SetContent(sx, sy, '[', nil, cur)
		r.screen.SetContent(sx+1, sy, ']', nil, cur)
	}
}

type drawable struct {
	pos  geom.Point
	rend component.Renderable
}

// drawEntities draws entities on visible cells, lowest RenderOrder first.
func (r *Renderer) drawEntities(w *ecs.World, m *gamemap.GameMap) {
	var list []drawable
	for _, id := range w.Query(component.CPosition, component.CRenderable) {
		pos := w.Get(id, component.CPosition).(component.Position)
		if !m.IsVisible(pos.X, pos.Y) {
			continue
		}
		list = append(list, drawable{pos: pos.Point(), rend: w.Get(id, component.CRenderable).(component.Renderable)})
	}
	slices.SortStableFunc(list, func(a, b drawable) int {
		return a.rend.RenderOrder - b.rend.RenderOrder
	})
	for _, d := range list {
		sx, sy, onScreen := r.camera.WorldToScreen(d.pos)
		if !onScreen {
			continue
		}
		style := tcell.StyleDefault.Foreground(d.rend.FGColor).Background(r.theme.Background)
		r.putGlyph(sx, sy, d.rend.Glyph, style)
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	r.screen.SetContent(x, y, runes[0], runes[1:], style)
	if runewidth.StringWidth(glyph) == 2 {
		// Fill the second column to avoid rendering artifacts.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
