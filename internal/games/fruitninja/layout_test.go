package fruitninja

import (
	"testing"

	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/core"
)

func TestLayoutDefaultResolution(t *testing.T) {
	l := NewLayout(1400, 800, config.DefaultConfig().Window.Resolutions)

	tests := []struct {
		name string
		got  core.Rect
		want core.Rect
	}{
		{"start", l.Start.Rect, core.NewRect(600, 400, 200, 50)},
		{"settings", l.Settings.Rect, core.NewRect(600, 500, 200, 50)},
		{"quit", l.Quit.Rect, core.NewRect(600, 600, 200, 50)},
		{"menu", l.Menu.Rect, core.NewRect(600, 500, 200, 50)},
		{"back", l.Back.Rect, core.NewRect(600, 700, 300, 50)},
		{"res 1280x720", l.Resolutions[0].Rect, core.NewRect(600, 500, 300, 50)},
		{"res 1400x800", l.Resolutions[1].Rect, core.NewRect(600, 400, 300, 50)},
		{"res 1920x1080", l.Resolutions[2].Rect, core.NewRect(600, 300, 300, 50)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %+v, want %+v", tt.name, tt.got, tt.want)
		}
	}

	if l.Resolutions[2].Label != "res: 1920x1080" {
		t.Errorf("label = %q", l.Resolutions[2].Label)
	}
}

func TestLayoutButtonsPerMode(t *testing.T) {
	l := NewLayout(1400, 800, config.DefaultConfig().Window.Resolutions)

	tests := []struct {
		mode     Mode
		gameOver bool
		want     []ButtonID
	}{
		{ModeMenu, false, []ButtonID{ButtonStart, ButtonSettings, ButtonQuit}},
		{ModeSettings, false, []ButtonID{ButtonBack, ButtonResolution, ButtonResolution, ButtonResolution}},
		{ModePlaying, false, nil},
		{ModePlaying, true, []ButtonID{ButtonMenu, ButtonQuit}},
		{ModePaused, false, []ButtonID{ButtonMenu, ButtonQuit}},
	}
	for _, tt := range tests {
		got := l.Buttons(tt.mode, tt.gameOver)
		if len(got) != len(tt.want) {
			t.Errorf("%s/%v: %d buttons, want %d", tt.mode, tt.gameOver, len(got), len(tt.want))
			continue
		}
		for i := range got {
			if got[i].ID != tt.want[i] {
				t.Errorf("%s/%v: button %d = %v, want %v", tt.mode, tt.gameOver, i, got[i].ID, tt.want[i])
			}
		}
	}
}

func TestHitTestEdges(t *testing.T) {
	b := Button{ID: ButtonStart, Rect: core.NewRect(10, 10, 20, 10)}
	tests := []struct {
		p    core.Point
		want bool
	}{
		{core.Pt(10, 10), true},
		{core.Pt(29.9, 19.9), true},
		{core.Pt(30, 15), false},
		{core.Pt(15, 20), false},
		{core.Pt(9.9, 15), false},
	}
	for _, tt := range tests {
		_, ok := HitTest([]Button{b}, tt.p)
		if ok != tt.want {
			t.Errorf("HitTest(%v) = %v, want %v", tt.p, ok, tt.want)
		}
	}
}
