// Package fruitninja implements the Fruit Ninja game-state engine.
// Fruits rise from the bottom edge, the player slices them by moving the
// pointer over them, and each fruit that escapes through the top costs a life.
package fruitninja

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/core"
	"github.com/vovakirdan/fruit-arcade/internal/leaderboard"
)

// Mode is the top-level application state.
type Mode string

const (
	ModeMenu     Mode = "menu"
	ModePlaying  Mode = "playing"
	ModeSettings Mode = "settings"
	ModePaused   Mode = "paused"
)

// Backdrop selects the background image for a frame.
type Backdrop int

const (
	BackdropWelcome Backdrop = iota // Menu and settings
	BackdropArena                   // Playing and paused
)

// Option configures a Game.
type Option func(*Game)

// WithSounds sets the sound cue sink.
func WithSounds(s Sounds) Option {
	return func(g *Game) { g.sounds = s }
}

// WithDisplay sets the viewport collaborator notified on resolution change.
func WithDisplay(d Display) Option {
	return func(g *Game) { g.display = d }
}

// WithRecorder sets the archive for finished sessions.
func WithRecorder(r RunRecorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.logger = l }
}

// Game is the frame-driven controller. Frontends call Update once per
// frame with the wall clock and the batch of polled input, then draw Scene.
type Game struct {
	cfg     config.Config
	width   int
	height  int
	mode    Mode
	layout  Layout
	spawner *Spawner
	board   *leaderboard.Board

	session  *Session
	fruits   []Fruit
	pointer  core.Point
	backdrop Backdrop

	alertActive bool
	alertStart  time.Time
	result      *Result

	fps       float64
	lastFrame time.Time
	quit      bool

	sounds   Sounds
	display  Display
	recorder RunRecorder
	logger   *log.Logger
}

// New creates a game in the menu state. The leaderboard is passed in
// explicitly and updated when a session ends.
func New(cfg config.Config, rt core.RuntimeConfig, board *leaderboard.Board, opts ...Option) *Game {
	kinds := make([]Kind, len(cfg.Gameplay.FruitKinds))
	for i, k := range cfg.Gameplay.FruitKinds {
		kinds[i] = Kind(k)
	}

	g := &Game{
		cfg:      cfg,
		width:    rt.ScreenW,
		height:   rt.ScreenH,
		mode:     ModeMenu,
		spawner:  NewSpawner(rt.Seed, kinds, cfg.Gameplay.SpawnOdds, cfg.Gameplay.SpawnMargin),
		board:    board,
		backdrop: BackdropWelcome,
		sounds:   nopSounds{},
		display:  nopDisplay{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = log.New(io.Discard)
	}
	g.layout = NewLayout(g.width, g.height, cfg.Window.Resolutions)
	return g
}

// Mode returns the current top-level state.
func (g *Game) Mode() Mode { return g.mode }

// Session returns the active session, nil outside play.
func (g *Game) Session() *Session { return g.session }

// Fruits returns a copy of the live fruit list.
func (g *Game) Fruits() []Fruit {
	out := make([]Fruit, len(g.fruits))
	copy(out, g.fruits)
	return out
}

// Size returns the current resolution in world units.
func (g *Game) Size() (width, height int) { return g.width, g.height }

// Layout returns the button layout for the current resolution.
func (g *Game) Layout() Layout { return g.layout }

// Result returns the last finished session, nil if none since the menu.
func (g *Game) Result() *Result { return g.result }

// Leaderboard returns the current top-5 table.
func (g *Game) Leaderboard() leaderboard.Table { return g.board.Table() }

// FPS returns the smoothed frame rate.
func (g *Game) FPS() float64 { return g.fps }

// Update advances one frame: simulation first (when playing), then input
// events in arrival order. Returns false once the application should exit.
func (g *Game) Update(now time.Time, in core.Input) bool {
	g.trackFrame(now)
	g.pointer = in.Pointer

	if g.mode == ModePlaying {
		g.step(now)
	}

	for _, e := range in.Events {
		g.handle(now, e)
		if g.quit {
			break
		}
	}
	return !g.quit
}

// step runs one Playing frame: ramp check, fruit pass, spawn.
func (g *Game) step(now time.Time) {
	g.expireAlert(now)

	s := g.session
	if s.GameOver() {
		return
	}

	if s.rampCheck(now) {
		g.logger.Debug("difficulty step", "fall_speed", s.FallSpeed())
	}

	g.advanceFruits(now)

	if s.Lives() == 0 {
		g.finish(now)
		return
	}

	if f, ok := g.spawner.Maybe(g.width, g.height); ok {
		g.fruits = append(g.fruits, f)
	}
}

// advanceFruits moves every fruit, then keeps only those neither sliced nor
// escaped. Collision is tested before the exit check.
func (g *Game) advanceFruits(now time.Time) {
	s := g.session
	size := g.cfg.Gameplay.FruitSize
	speed := s.FallSpeed()

	kept := make([]Fruit, 0, len(g.fruits))
	for _, f := range g.fruits {
		f.Advance(speed)

		if f.Box(size).Contains(g.pointer) {
			s.addPoint()
			g.sounds.Play(CueSlice)
			continue
		}

		if f.Exited(size) {
			s.loseLife()
			g.sounds.Play(CueLifeLost)
			g.alertActive = true
			g.alertStart = now
			continue
		}

		kept = append(kept, f)
	}
	g.fruits = kept
}

// finish freezes the session, updates the leaderboard and archives the run.
func (g *Game) finish(now time.Time) {
	s := g.session
	if !s.finish(now) {
		return
	}
	d, _ := s.FinalElapsed()
	res := Result{
		Score:   s.Score(),
		Elapsed: Seconds(d),
		Width:   g.width,
		Height:  g.height,
	}

	rank, ok, err := g.board.Submit(res.Score, res.Elapsed)
	if err != nil {
		g.logger.Error("saving leaderboard", "err", err)
	}
	if ok {
		res.RecordRank = rank
	}
	g.result = &res

	g.logger.Info("game over", "score", res.Score, "elapsed", res.Elapsed, "rank", res.RecordRank)

	if g.recorder != nil {
		if err := g.recorder.RecordRun(res); err != nil {
			g.logger.Warn("recording run", "err", err)
		}
	}
}

// handle applies one input event to the state machine.
func (g *Game) handle(now time.Time, e core.Event) {
	if e.Kind == core.EventClose {
		g.quit = true
		return
	}

	switch g.mode {
	case ModeMenu:
		g.handleMenu(now, e)
	case ModeSettings:
		g.handleSettings(e)
	case ModePlaying:
		g.handlePlaying(now, e)
	case ModePaused:
		g.handlePaused(now, e)
	}
}

func (g *Game) handleMenu(now time.Time, e core.Event) {
	b, ok := g.clicked(e)
	if !ok {
		return
	}
	switch b.ID {
	case ButtonStart:
		g.start(now)
	case ButtonSettings:
		g.mode = ModeSettings
	case ButtonQuit:
		g.quit = true
	}
}

func (g *Game) handleSettings(e core.Event) {
	b, ok := g.clicked(e)
	if !ok {
		return
	}
	switch b.ID {
	case ButtonBack:
		g.mode = ModeMenu
	case ButtonResolution:
		g.Resize(b.Resolution.Width, b.Resolution.Height)
	}
}

func (g *Game) handlePlaying(now time.Time, e core.Event) {
	if g.session.GameOver() {
		g.handleEndButtons(e)
		return
	}
	if e.Kind == core.EventPause {
		g.session.Pause(now)
		g.mode = ModePaused
	}
}

func (g *Game) handlePaused(now time.Time, e core.Event) {
	if e.Kind == core.EventPause {
		g.session.Resume(now)
		g.mode = ModePlaying
		return
	}
	g.handleEndButtons(e)
}

// handleEndButtons serves the menu and quit buttons shown on the pause and
// game-over screens.
func (g *Game) handleEndButtons(e core.Event) {
	b, ok := g.clicked(e)
	if !ok {
		return
	}
	switch b.ID {
	case ButtonMenu:
		g.toMenu()
	case ButtonQuit:
		g.quit = true
	}
}

func (g *Game) clicked(e core.Event) (Button, bool) {
	if e.Kind != core.EventClick {
		return Button{}, false
	}
	over := g.session != nil && g.session.GameOver()
	return HitTest(g.layout.Buttons(g.mode, over), e.At)
}

// start begins a fresh session. The ramp clock is anchored at now.
func (g *Game) start(now time.Time) {
	g.session = NewSession(g.cfg.Gameplay, g.cfg.Difficulty, now)
	g.fruits = nil
	g.result = nil
	g.alertActive = false
	g.backdrop = BackdropArena
	g.mode = ModePlaying
	g.logger.Info("session started", "resolution", fmt.Sprintf("%dx%d", g.width, g.height))
}

// toMenu drops the session and returns to the welcome screen.
func (g *Game) toMenu() {
	g.session = nil
	g.fruits = nil
	g.result = nil
	g.alertActive = false
	g.backdrop = BackdropWelcome
	g.mode = ModeMenu
}

// Resize changes the resolution. Layout is recomputed and the display is
// asked to reload backdrops; live fruits keep their coordinates.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.width, g.height = width, height
	g.layout = NewLayout(width, height, g.cfg.Window.Resolutions)
	g.display.Resize(width, height)
	g.logger.Info("resolution changed", "width", width, "height", height)
}

// alertVisible reports whether the life-lost overlay is showing at now.
func (g *Game) alertVisible(now time.Time) bool {
	return g.alertActive && now.Sub(g.alertStart) <= g.cfg.Gameplay.LifeAlert()
}

// expireAlert clears the one-shot overlay once its duration has passed.
func (g *Game) expireAlert(now time.Time) {
	if g.alertActive && !g.alertVisible(now) {
		g.alertActive = false
	}
}

// trackFrame maintains an exponentially smoothed frame rate.
func (g *Game) trackFrame(now time.Time) {
	if !g.lastFrame.IsZero() {
		if dt := now.Sub(g.lastFrame).Seconds(); dt > 0 {
			inst := 1 / dt
			if g.fps == 0 {
				g.fps = inst
			} else {
				g.fps = g.fps*0.9 + inst*0.1
			}
		}
	}
	g.lastFrame = now
}
