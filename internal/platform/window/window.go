// Package window runs the game in a desktop window through Ebitengine.
// World units map one-to-one onto window pixels.
package window

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/fruit-arcade/internal/assets"
	"github.com/vovakirdan/fruit-arcade/internal/core"
	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
)

const pointerRadius = 5

// alertColor is the life-lost overlay: red at half opacity, premultiplied.
var alertColor = color.RGBA{R: 128, A: 128}

// LoadFace loads a TrueType/OpenType font at size, falling back to the
// built-in bitmap font when the file is missing or invalid.
func LoadFace(path string, size float64, logger *log.Logger) text.Face {
	data, err := os.ReadFile(path)
	if err == nil {
		var src *text.GoTextFaceSource
		src, err = text.NewGoTextFaceSource(bytes.NewReader(data))
		if err == nil {
			return &text.GoTextFace{Source: src, Size: size}
		}
	}
	if logger != nil {
		logger.Warn("font unavailable, using built-in bitmap font", "path", path, "err", err)
	}
	return text.NewGoXFace(bitmapfont.Face)
}

// Display resizes the window and the asset cache when the resolution
// changes. It satisfies fruitninja.Display.
type Display struct {
	cache *assets.Cache

	mu     sync.Mutex
	images map[*image.RGBA]*ebiten.Image
}

// NewDisplay creates a display over cache.
func NewDisplay(cache *assets.Cache) *Display {
	d := &Display{
		cache:  cache,
		images: make(map[*image.RGBA]*ebiten.Image),
	}
	cache.OnResize(func(int, int) { d.dropImages() })
	return d
}

// Resize reloads backdrops at the new size and resizes the window.
func (d *Display) Resize(width, height int) {
	d.cache.Resize(width, height)
	ebiten.SetWindowSize(width, height)
}

// image returns the GPU image for a cached bitmap, uploading on first use.
func (d *Display) image(src *image.RGBA) *ebiten.Image {
	d.mu.Lock()
	defer d.mu.Unlock()
	if img, ok := d.images[src]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(src)
	d.images[src] = img
	return img
}

// dropImages forgets uploaded backdrops after a resize.
func (d *Display) dropImages() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for src, img := range d.images {
		img.Deallocate()
		delete(d.images, src)
	}
}

// Game adapts fruitninja.Game to ebiten.Game.
type Game struct {
	game    *fruitninja.Game
	display *Display
	face    text.Face
	logger  *log.Logger
}

// New creates the Ebitengine adapter.
func New(game *fruitninja.Game, display *Display, face text.Face, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{game: game, display: display, face: face, logger: logger}
}

// Update polls input and advances one frame.
func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	p := core.Pt(float64(x), float64(y))
	in := core.NewInput(p)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Click()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		in.Push(core.Event{Kind: core.EventPause})
	}
	if ebiten.IsWindowBeingClosed() {
		in.Push(core.Event{Kind: core.EventClose})
	}

	if !g.game.Update(time.Now(), in) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	sc := g.game.Scene(time.Now())

	screen.DrawImage(g.display.image(g.display.cache.Backdrop(sc.Backdrop)), nil)

	for _, f := range sc.Fruits {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(f.X, f.Y)
		screen.DrawImage(g.display.image(g.display.cache.Sprite(f.Kind)), op)
	}

	if sc.Alert {
		vector.DrawFilledRect(screen, 0, 0, float32(sc.Width), float32(sc.Height), alertColor, false)
	}

	for _, b := range sc.Buttons {
		g.drawButton(screen, b, toRGBA(sc.ButtonColor(b)))
	}

	for _, t := range sc.Texts {
		g.drawText(screen, t.Value, t.At.X, t.At.Y, toRGBA(t.Color))
	}

	vector.DrawFilledCircle(screen, float32(sc.Pointer.X), float32(sc.Pointer.Y), pointerRadius, toRGBA(core.ColorRed), true)
}

func (g *Game) drawButton(screen *ebiten.Image, b fruitninja.Button, fill color.RGBA) {
	r := b.Rect
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), fill, false)

	w, h := text.Measure(b.Label, g.face, 0)
	cx, cy := r.Center()
	g.drawText(screen, b.Label, float64(cx)-w/2, float64(cy)-h/2, toRGBA(fruitninja.TextColor))
}

func (g *Game) drawText(screen *ebiten.Image, s string, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.face, op)
}

// Layout keeps the logical screen equal to the game resolution.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.game.Size()
}

func toRGBA(c core.Color) color.RGBA {
	r, gr, b := c.Channels()
	return color.RGBA{R: r, G: gr, B: b, A: 255}
}

// Options configures the window.
type Options struct {
	Title    string
	TickRate int
}

// Run opens the window and blocks until the game terminates.
func Run(g *Game, opts Options) error {
	w, h := g.game.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)
	if opts.TickRate > 0 {
		ebiten.SetTPS(opts.TickRate)
	}

	g.logger.Info("window opened", "width", w, "height", h)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
