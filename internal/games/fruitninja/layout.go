package fruitninja

import (
	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/core"
)

// ButtonID identifies a clickable region.
type ButtonID int

const (
	ButtonNone ButtonID = iota
	ButtonStart
	ButtonSettings
	ButtonQuit
	ButtonMenu
	ButtonBack
	ButtonResolution
)

// Button is a labelled rectangle in world units.
type Button struct {
	ID         ButtonID
	Label      string
	Rect       core.Rect
	Resolution config.Resolution // Set for ButtonResolution
}

// Layout holds every button rectangle for one resolution. Rectangles are
// anchored relative to the screen center.
type Layout struct {
	Width, Height int

	Start       Button
	Settings    Button
	Quit        Button
	Menu        Button
	Back        Button
	Resolutions []Button
}

const (
	buttonW     = 200
	buttonH     = 50
	wideButtonW = 300
	buttonGap   = 100
)

// NewLayout computes button rectangles for a width x height surface.
// Resolution buttons stack upward from just below center in list order.
func NewLayout(width, height int, resolutions []config.Resolution) Layout {
	mx, my := width/2, height/2
	l := Layout{
		Width:    width,
		Height:   height,
		Start:    Button{ID: ButtonStart, Label: "START", Rect: core.NewRect(mx-100, my, buttonW, buttonH)},
		Settings: Button{ID: ButtonSettings, Label: "SETTINGS", Rect: core.NewRect(mx-100, my+buttonGap, buttonW, buttonH)},
		Quit:     Button{ID: ButtonQuit, Label: "QUIT", Rect: core.NewRect(mx-100, my+2*buttonGap, buttonW, buttonH)},
		Menu:     Button{ID: ButtonMenu, Label: "MENU", Rect: core.NewRect(mx-100, my+buttonGap, buttonW, buttonH)},
		Back:     Button{ID: ButtonBack, Label: "BACK", Rect: core.NewRect(mx-100, height-100, wideButtonW, buttonH)},
	}
	for i, res := range resolutions {
		l.Resolutions = append(l.Resolutions, Button{
			ID:         ButtonResolution,
			Label:      "res: " + res.String(),
			Rect:       core.NewRect(mx-100, my+buttonGap-i*buttonGap, wideButtonW, buttonH),
			Resolution: res,
		})
	}
	return l
}

// Buttons returns the buttons active in a mode, in hit-test order.
func (l Layout) Buttons(mode Mode, gameOver bool) []Button {
	switch mode {
	case ModeMenu:
		return []Button{l.Start, l.Settings, l.Quit}
	case ModeSettings:
		return append([]Button{l.Back}, l.Resolutions...)
	case ModePaused:
		return []Button{l.Menu, l.Quit}
	case ModePlaying:
		if gameOver {
			return []Button{l.Menu, l.Quit}
		}
	}
	return nil
}

// HitTest returns the first button under p.
func HitTest(buttons []Button, p core.Point) (Button, bool) {
	for _, b := range buttons {
		if b.Rect.ContainsPoint(p) {
			return b, true
		}
	}
	return Button{}, false
}
