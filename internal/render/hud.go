package render

import (
	"fmt"

	"goblin-warparty/internal/component"
	"goblin-warparty/internal/engine"
	"goblin-warparty/internal/turn"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// logLines is how many log entries fit under the status line.
const logLines = hudRows - 2

// DrawHUD renders the status bar and message log at the bottom of the screen.
func (r *Renderer) DrawHUD(e *engine.Engine) {
	_, screenH := r.screen.Size()
	hudY := screenH - hudRows

	r.drawHLine(hudY, tcell.ColorGray)

	hpText := "HP: ?"
	hpStyle := tcell.StyleDefault.Foreground(r.theme.Text)
	if c := e.World.Get(e.Res.Player, component.CCombatStats); c != nil {
		stats := c.(component.CombatStats)
		hpText = fmt.Sprintf("HP: %d/%d  POW:%d DEF:%d", stats.HP, stats.MaxHP, stats.Power, stats.Defense)
		if stats.HP*4 <= stats.MaxHP {
			hpStyle = hpStyle.Foreground(r.theme.Danger)
		}
	}
	status := fmt.Sprintf("%s  Turn: %d", hpText, e.Res.Clock.TimeScore)
	if e.State() == turn.ShowTargeting {
		status += "  Select a target (Enter to fire, Esc to cancel)"
	}
	r.drawText(0, hudY+1, status, hpStyle)

	logStyle := tcell.StyleDefault.Foreground(r.theme.Log)
	for i, entry := range e.Log.Visible(logLines) {
		r.drawText(0, hudY+2+i, entry.String(), logStyle)
	}
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x, truncated to the screen width.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	w, _ := r.screen.Size()
	col := x
	for _, ch := range runewidth.Truncate(text, max(0, w-x), "…") {
		r.screen.SetContent(col, y, ch, nil, style)
		col += max(1, runewidth.RuneWidth(ch))
	}
}
