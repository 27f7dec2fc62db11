package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-arcade/internal/assets"
	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/core"
	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
	"github.com/vovakirdan/fruit-arcade/internal/leaderboard"
	"github.com/vovakirdan/fruit-arcade/internal/storage"
)

func newTestGame(t *testing.T) *fruitninja.Game {
	t.Helper()
	board, err := leaderboard.Open(&leaderboard.MemoryStore{})
	if err != nil {
		t.Fatal(err)
	}
	rt := core.RuntimeConfig{ScreenW: 1400, ScreenH: 800, TickRate: 60, Seed: 1}
	return fruitninja.New(config.DefaultConfig(), rt, board)
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		msg  tea.KeyMsg
		want core.EventKind
	}{
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}, core.EventPause},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'P'}}, core.EventPause},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.EventClose},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, core.EventNone},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.EventNone},
	}
	for _, tt := range tests {
		if got := km.MapKey(tt.msg); got != tt.want {
			t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}

func TestViewport(t *testing.T) {
	vp := Viewport{Cols: 140, Rows: 80, WorldW: 1400, WorldH: 800}

	if p := vp.ToWorld(0, 0); p != core.Pt(5, 5) {
		t.Errorf("ToWorld(0,0) = %v, want (5,5)", p)
	}
	if x, y := vp.ToCell(core.Pt(705, 425)); x != 70 || y != 42 {
		t.Errorf("ToCell = (%d,%d), want (70,42)", x, y)
	}
	if x, y := vp.ToCell(core.Pt(-1, -15)); x != -1 || y != -2 {
		t.Errorf("ToCell(negative) = (%d,%d), want (-1,-2)", x, y)
	}
	if r := vp.RectToCells(core.NewRect(600, 400, 200, 50)); r != core.NewRect(60, 40, 20, 5) {
		t.Errorf("RectToCells = %+v", r)
	}
	if r := vp.BoxToCells(core.NewBox(0, 0, 3, 3)); r.W != 1 || r.H != 1 {
		t.Errorf("tiny box should cover one cell, got %+v", r)
	}
}

func TestRendererMenu(t *testing.T) {
	g := newTestGame(t)
	g.Update(time.Now(), core.NewInput(core.Pt(605, 405)))

	screen := core.NewScreen(140, 80)
	NewRenderer(nil).Draw(screen, g.Scene(time.Now()))

	if row := rowText(screen, 42); !strings.Contains(row, "START") {
		t.Errorf("row 42 = %q, want START label", row)
	}
	if cell := screen.GetCell(61, 41); cell.Bg != fruitninja.ButtonHover {
		t.Errorf("hovered START cell bg = %v", cell.Bg)
	}
	if cell := screen.GetCell(61, 61); cell.Bg != fruitninja.ButtonIdle {
		t.Errorf("idle QUIT cell bg = %v", cell.Bg)
	}
	if cell := screen.GetCell(60, 40); cell.Rune != pointerRune {
		t.Errorf("pointer cell = %q", cell.Rune)
	}

	out := RenderScreen(screen)
	if !strings.Contains(out, "SETTINGS") {
		t.Error("rendered output missing SETTINGS")
	}
}

func TestRendererDropsStaleSamples(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Assets.Dir = t.TempDir()
	cache := assets.NewCache(cfg.Assets, 100, 1400, 800, nil)
	r := NewRenderer(cache)

	sc := fruitninja.Scene{Width: 1400, Height: 800, Backdrop: fruitninja.BackdropWelcome}
	r.Draw(core.NewScreen(140, 80), sc)
	if len(r.backdrops) != 1 {
		t.Fatalf("backdrops = %d after first frame, want 1", len(r.backdrops))
	}

	for _, size := range [][2]int{{100, 40}, {120, 50}, {140, 80}} {
		r.Draw(core.NewScreen(size[0], size[1]), sc)
	}
	if len(r.backdrops) != 1 {
		t.Errorf("backdrops = %d after terminal resizes, want 1", len(r.backdrops))
	}
	if r.vp.Cols != 140 || r.vp.Rows != 80 {
		t.Errorf("viewport = %+v", r.vp)
	}

	sc.Width, sc.Height = 1920, 1080
	sc.Fruits = []fruitninja.Fruit{fruitninja.NewFruit("apple", 100, 100)}
	sc.FruitSize = 100
	r.Draw(core.NewScreen(140, 80), sc)
	if len(r.backdrops) != 1 || len(r.sprites) != 1 {
		t.Errorf("after resolution change backdrops=%d sprites=%d, want 1 and 1", len(r.backdrops), len(r.sprites))
	}
}

func TestModelClickStartsGame(t *testing.T) {
	g := newTestGame(t)
	var m tea.Model = NewModel(g, NewRenderer(nil), 60)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 80})
	m, _ = m.Update(tea.MouseMsg{X: 70, Y: 42, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, cmd := m.Update(TickMsg(time.Now()))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if g.Mode() != fruitninja.ModePlaying {
		t.Fatalf("mode = %s, want playing", g.Mode())
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("HUD missing from view")
	}
}

func TestModelCloseQuits(t *testing.T) {
	g := newTestGame(t)
	var m tea.Model = NewModel(g, NewRenderer(nil), 60)

	m, _ = m.Update(tea.WindowSizeMsg{Width: 140, Height: 80})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	m, cmd := m.Update(TickMsg(time.Now()))

	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("close should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestHistoryModel(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	m := NewHistoryModel(store, 100, 30)
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty history should say so")
	}

	store.SaveRun(storage.Run{Score: 3, Elapsed: 12.5, Resolution: "1400x800"})
	store.SaveRun(storage.Run{Score: 9, Elapsed: 40, RecordRank: 1, Resolution: "1400x800"})

	m = NewHistoryModel(store, 100, 30)
	if len(m.runs) != 2 || m.runs[0].Score != 9 {
		t.Fatalf("recent runs = %+v", m.runs)
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	if m.view != ViewBest || m.runs[0].Score != 9 {
		t.Errorf("view = %v runs = %+v", m.view, m.runs)
	}
	if !strings.Contains(m.View(), "2 runs") {
		t.Error("stats line missing")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'X'}})
	m = next.(HistoryModel)
	if len(m.runs) != 0 {
		t.Errorf("runs after clear = %d", len(m.runs))
	}
}

func rowText(s *core.Screen, y int) string {
	var sb strings.Builder
	for x := range s.Width() {
		sb.WriteRune(s.GetCell(x, y).Rune)
	}
	return sb.String()
}
