package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/fruit-arcade/internal/core"
	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
)

// Model is the Bubble Tea model driving one game. Mouse and key messages
// are collected into the frame input and handed to the game on each tick.
type Model struct {
	game     *fruitninja.Game
	screen   *core.Screen
	renderer *Renderer
	keys     KeyMap
	tickRate int

	cols, rows int
	input      core.Input
	lastTick   time.Time
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game. The grid size
// is taken from the first WindowSizeMsg.
func NewModel(game *fruitninja.Game, renderer *Renderer, tickRate int) Model {
	if tickRate <= 0 {
		tickRate = 60
	}
	return Model{
		game:     game,
		screen:   core.NewScreen(0, 0),
		renderer: renderer,
		keys:     DefaultKeyMap(),
		tickRate: tickRate,
		input:    core.NewInput(core.Pt(-1, -1)),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if kind := m.keys.MapKey(msg); kind != core.EventNone {
			m.input.Push(core.Event{Kind: kind})
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg), nil

	case tea.WindowSizeMsg:
		m.cols, m.rows = msg.Width, msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// viewport maps the terminal grid onto the game's current resolution.
func (m Model) viewport() Viewport {
	w, h := m.game.Size()
	return Viewport{Cols: m.cols, Rows: m.rows, WorldW: w, WorldH: h}
}

// handleMouse tracks the pointer and turns left presses into clicks.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	p := m.viewport().ToWorld(msg.X, msg.Y)
	m.input.Pointer = p
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		m.input.Click()
	}
	return m
}

// handleTick runs one game frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.lastTick = now
	running := m.game.Update(now, m.input)
	m.input.Clear()
	if !running {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.cols == 0 || m.rows == 0 {
		return ""
	}
	now := m.lastTick
	if now.IsZero() {
		now = time.Now()
	}
	m.renderer.Draw(m.screen, m.game.Scene(now))
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given game.
func Run(game *fruitninja.Game, renderer *Renderer, tickRate int) error {
	model := NewModel(game, renderer, tickRate)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	_, err := p.Run()
	return err
}
