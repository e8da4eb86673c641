package render

import (
	"fmt"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/engine"
	"goblin-warparty/internal/turn"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// MenuKeys labels backpack slots; slot i is selected by MenuKeys[i].
const MenuKeys = "abcdefghijklmnopqrstuvwxyz"

// drawMenu overlays the inventory or drop list when one is open.
func (r *Renderer) drawMenu(e *engine.Engine) {
	var title string
	switch e.State() {
	case turn.ShowInventory:
		title = "Inventory"
	case turn.ShowDropItem:
		title = "Drop which item?"
	default:
		return
	}

	lines := []string{title}
	items := e.Backpack()
	for i, id := range items {
		if i >= len(MenuKeys) {
			break
		}
		name := "?"
		if c := e.World.Get(id, component.CName); c != nil {
			name = c.(component.Name).Name
		}
		lines = append(lines, fmt.Sprintf("(%c) %s", MenuKeys[i], name))
	}
	if len(items) == 0 {
		lines = append(lines, "Your backpack is empty.")
	}
	lines = append(lines, "ESC to cancel")

	width := 0
	for _, l := range lines {
		width = max(width, runewidth.StringWidth(l))
	}
	r.drawBox(2, 1, width+4, len(lines)+2, lines)
}

// drawBox fills a bordered box and writes lines inside it.
func (r *Renderer) drawBox(x, y, w, h int, lines []string) {
	style := tcell.StyleDefault.Foreground(r.theme.Text).Background(r.theme.Background)
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			ch := ' '
			switch {
			case (row == y || row == y+h-1) && (col == x || col == x+w-1):
				ch = '+'
			case row == y || row == y+h-1:
				ch = '─'
			case col == x || col == x+w-1:
				ch = '│'
			}
			r.screen.SetContent(col, row, ch, nil, style)
		}
	}
	for i, l := range lines {
		r.drawText(x+2, y+1+i, l, style)
	}
}
