package fruitninja

import (
	"fmt"
	"time"

	"github.com/vovakirdan/fruit-arcade/internal/core"
	"github.com/vovakirdan/fruit-arcade/internal/leaderboard"
)

// Screen text shared by every frontend.
const (
	PauseMessage     = "Game paused, press 'P' to unpause"
	PauseHint        = "P - pause"
	LostBanner       = "YOU LOST"
	RecordBanner     = "%d. NEW RECORD SCORE!"
	LeaderboardTitle = "Best Scores:"
)

// Text colors.
var (
	ButtonIdle  = core.ColorRed
	ButtonHover = core.ColorGreen
	TextColor   = core.ColorWhite
)

// HUD is the in-play overlay.
type HUD struct {
	Elapsed float64 // Seconds
	Score   int
	Lives   int
	FPS     float64
}

// Text is one line of text anchored at its top-left corner in world units.
type Text struct {
	At    core.Point
	Value string
	Color core.Color
}

// Scene is an immutable snapshot of everything a frontend needs to draw one
// frame. Frontends never reach into Game state directly.
type Scene struct {
	Mode     Mode
	Width    int
	Height   int
	Backdrop Backdrop
	Pointer  core.Point

	Buttons   []Button
	Fruits    []Fruit
	FruitSize float64
	Texts     []Text

	ShowHUD  bool
	HUD      HUD
	Alert    bool // Life-lost red overlay
	GameOver bool
	Banner   string
	Result   Result

	Leaderboard []leaderboard.Ranked
}

// Hovered reports whether the pointer is over b.
func (sc Scene) Hovered(b Button) bool {
	return b.Rect.ContainsPoint(sc.Pointer)
}

// ButtonColor returns the fill color for b this frame.
func (sc Scene) ButtonColor(b Button) core.Color {
	if sc.Hovered(b) {
		return ButtonHover
	}
	return ButtonIdle
}

// Scene builds the snapshot for the frame at now.
func (g *Game) Scene(now time.Time) Scene {
	over := g.session != nil && g.session.GameOver()
	sc := Scene{
		Mode:      g.mode,
		Width:     g.width,
		Height:    g.height,
		Backdrop:  g.backdrop,
		Pointer:   g.pointer,
		Buttons:   g.layout.Buttons(g.mode, over),
		FruitSize: g.cfg.Gameplay.FruitSize,
		GameOver:  over,
	}

	switch g.mode {
	case ModePlaying:
		if over {
			sc.Result = *g.result
			sc.Banner = Banner(sc.Result)
			sc.Leaderboard = g.board.Table().Ranked()
			sc.Texts = gameOverTexts(sc)
			break
		}
		sc.Fruits = g.Fruits()
		sc.Alert = g.alertVisible(now)
		sc.ShowHUD = true
		sc.HUD = HUD{
			Elapsed: Seconds(g.session.Elapsed(now)),
			Score:   g.session.Score(),
			Lives:   g.session.Lives(),
			FPS:     g.fps,
		}
		sc.Texts = hudTexts(sc)
	case ModePaused:
		sc.Texts = []Text{{
			At:    core.Pt(float64(g.width/2-g.width/5), float64(g.height/2-100)),
			Value: PauseMessage,
			Color: TextColor,
		}}
	}
	return sc
}

func hudTexts(sc Scene) []Text {
	h := sc.HUD
	return []Text{
		{At: core.Pt(10, 10), Value: fmt.Sprintf("Time: %.2fs", h.Elapsed), Color: TextColor},
		{At: core.Pt(10, 50), Value: fmt.Sprintf("Score: %d", h.Score), Color: TextColor},
		{At: core.Pt(10, 90), Value: fmt.Sprintf("Lives: %d", h.Lives), Color: TextColor},
		{At: core.Pt(10, 130), Value: fmt.Sprintf("FPS: %.0f", h.FPS), Color: TextColor},
		{At: core.Pt(float64(sc.Width-150), 10), Value: PauseHint, Color: TextColor},
	}
}

func gameOverTexts(sc Scene) []Text {
	x := float64(sc.Width/2 - 100)
	my := float64(sc.Height / 2)

	texts := []Text{
		{At: core.Pt(x, my-300), Value: LeaderboardTitle, Color: core.ColorYellow},
	}
	for i, line := range LeaderboardLines(sc.Leaderboard) {
		texts = append(texts, Text{
			At:    core.Pt(x, my-300+30+float64(i*30)),
			Value: line,
			Color: TextColor,
		})
	}
	return append(texts,
		Text{At: core.Pt(x, my-100), Value: sc.Banner, Color: core.ColorRed},
		Text{At: core.Pt(x, my-50), Value: fmt.Sprintf("Total score: %d", sc.Result.Score), Color: core.ColorRed},
		Text{At: core.Pt(x, my), Value: fmt.Sprintf("Time: %.2fs", sc.Result.Elapsed), Color: core.ColorRed},
	)
}

// LeaderboardLines formats ranked entries for display.
func LeaderboardLines(ranked []leaderboard.Ranked) []string {
	lines := make([]string, len(ranked))
	for i, r := range ranked {
		lines[i] = fmt.Sprintf("%s: Score: %d, Time: %.2fs", r.Rank, r.Score, r.Time)
	}
	return lines
}

// Banner returns the game-over headline for a result.
func Banner(r Result) string {
	if r.NewRecord() {
		return fmt.Sprintf(RecordBanner, r.RecordRank)
	}
	return LostBanner
}
