package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-arcade/internal/core"
)

// KeyMap defines the key bindings used during play.
type KeyMap struct {
	Pause key.Binding
	Close key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Pause, k.Close}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Pause, k.Close}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Pause: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p", "pause"),
		),
		Close: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// MapKey translates a key message to a game event.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.EventKind {
	switch {
	case key.Matches(msg, k.Close):
		return core.EventClose
	case key.Matches(msg, k.Pause):
		return core.EventPause
	}
	return core.EventNone
}

// Viewport maps terminal cells to world units and back. Each cell covers a
// WorldW/Cols by WorldH/Rows patch of the world.
type Viewport struct {
	Cols, Rows     int
	WorldW, WorldH int
}

// ToWorld returns the world point at the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) core.Point {
	if v.Cols <= 0 || v.Rows <= 0 {
		return core.Point{}
	}
	return core.Pt(
		(float64(x)+0.5)*float64(v.WorldW)/float64(v.Cols),
		(float64(y)+0.5)*float64(v.WorldH)/float64(v.Rows),
	)
}

// ToCell returns the cell containing world point p. The result may lie
// outside the grid.
func (v Viewport) ToCell(p core.Point) (int, int) {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return 0, 0
	}
	x := p.X * float64(v.Cols) / float64(v.WorldW)
	y := p.Y * float64(v.Rows) / float64(v.WorldH)
	return floor(x), floor(y)
}

// RectToCells converts a world rectangle to the cells it covers, keeping
// at least one cell in each direction.
func (v Viewport) RectToCells(r core.Rect) core.Rect {
	x0, y0 := v.ToCell(core.Pt(float64(r.X), float64(r.Y)))
	x1, y1 := v.ToCell(core.Pt(float64(r.Right()), float64(r.Bottom())))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

// BoxToCells converts a world box to cells like RectToCells.
func (v Viewport) BoxToCells(b core.Box) core.Rect {
	x0, y0 := v.ToCell(core.Pt(b.X, b.Y))
	x1, y1 := v.ToCell(core.Pt(b.X+b.W, b.Y+b.H))
	return core.NewRect(x0, y0, core.Max(x1-x0, 1), core.Max(y1-y0, 1))
}

func floor(f float64) int {
	i := int(f)
	if f < 0 && float64(i) != f {
		i--
	}
	return i
}
