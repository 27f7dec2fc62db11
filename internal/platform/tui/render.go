package tui

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/fruit-arcade/internal/assets"
	"github.com/vovakirdan/fruit-arcade/internal/core"
	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
)

const pointerRune = '●'

// Fruit colors used when no sprite cache is attached.
var fruitColors = map[fruitninja.Kind]core.Color{
	"watermelon": core.ColorGreen,
	"apple":      core.ColorRed,
	"banana":     core.ColorYellow,
}

// cellImage is an image sampled down to one color per cell. ColorDefault
// marks transparent cells.
type cellImage struct {
	w, h   int
	colors []core.Color
}

func (c cellImage) at(x, y int) core.Color {
	return c.colors[y*c.w+x]
}

// sampleImage scales img to w x h and converts each pixel to a cell color.
func sampleImage(img image.Image, w, h int) cellImage {
	out := cellImage{w: w, h: h, colors: make([]core.Color, w*h)}
	if w <= 0 || h <= 0 {
		return out
	}
	scaled := assets.Scale(img, w, h)
	for y := range h {
		for x := range w {
			p := scaled.RGBAAt(x, y)
			if p.A < 128 {
				continue
			}
			out.colors[y*w+x] = core.RGB(p.R, p.G, p.B)
		}
	}
	return out
}

type spriteKey struct {
	kind fruitninja.Kind
	w, h int
}

// Renderer draws scenes into a cell screen. Sampled images are cached for
// the current viewport and dropped when the grid or resolution changes.
type Renderer struct {
	cache     *assets.Cache
	vp        Viewport
	backdrops map[fruitninja.Backdrop]cellImage
	sprites   map[spriteKey]cellImage
}

// NewRenderer creates a renderer. cache may be nil, in which case backdrops
// are left blank and fruits are drawn as colored blocks.
func NewRenderer(cache *assets.Cache) *Renderer {
	return &Renderer{
		cache:     cache,
		backdrops: make(map[fruitninja.Backdrop]cellImage),
		sprites:   make(map[spriteKey]cellImage),
	}
}

// useViewport resets the sampled images when vp differs from the last one.
func (r *Renderer) useViewport(vp Viewport) {
	if vp == r.vp {
		return
	}
	r.vp = vp
	clear(r.backdrops)
	clear(r.sprites)
}

// Draw renders sc into dst.
func (r *Renderer) Draw(dst *core.Screen, sc fruitninja.Scene) {
	vp := Viewport{Cols: dst.Width(), Rows: dst.Height(), WorldW: sc.Width, WorldH: sc.Height}

	r.useViewport(vp)
	dst.Clear()
	r.drawBackdrop(dst, vp, sc.Backdrop)

	for _, f := range sc.Fruits {
		r.drawFruit(dst, vp, f, sc.FruitSize)
	}

	if sc.Alert {
		dst.Tint(core.ColorAlert)
	}

	for _, b := range sc.Buttons {
		drawButton(dst, vp, b, sc.ButtonColor(b))
	}

	for _, t := range sc.Texts {
		x, y := vp.ToCell(t.At)
		dst.DrawText(x, y, t.Value, t.Color)
	}

	px, py := vp.ToCell(sc.Pointer)
	dst.Set(px, py, pointerRune, core.ColorRed)
}

func (r *Renderer) drawBackdrop(dst *core.Screen, vp Viewport, b fruitninja.Backdrop) {
	if r.cache == nil {
		return
	}
	img, ok := r.backdrops[b]
	if !ok {
		img = sampleImage(r.cache.Backdrop(b), vp.Cols, vp.Rows)
		r.backdrops[b] = img
	}
	for y := range img.h {
		for x := range img.w {
			if c := img.at(x, y); !c.IsDefault() {
				dst.SetBg(x, y, c)
			}
		}
	}
}

func (r *Renderer) drawFruit(dst *core.Screen, vp Viewport, f fruitninja.Fruit, size float64) {
	cells := vp.BoxToCells(f.Box(size))

	if r.cache == nil {
		c, ok := fruitColors[f.Kind]
		if !ok {
			c = core.ColorOrange
		}
		dst.DrawRect(cells, c)
		return
	}

	key := spriteKey{kind: f.Kind, w: cells.W, h: cells.H}
	img, ok := r.sprites[key]
	if !ok {
		img = sampleImage(r.cache.Sprite(f.Kind), cells.W, cells.H)
		r.sprites[key] = img
	}
	for y := range img.h {
		for x := range img.w {
			if c := img.at(x, y); !c.IsDefault() {
				dst.SetBg(cells.X+x, cells.Y+y, c)
			}
		}
	}
}

func drawButton(dst *core.Screen, vp Viewport, b fruitninja.Button, fill core.Color) {
	cells := vp.RectToCells(b.Rect)
	dst.DrawRect(cells, fill)

	label := []rune(b.Label)
	x := cells.X + (cells.W-len(label))/2
	y := cells.Y + cells.H/2
	for i, ch := range label {
		cx := x + i
		if !cells.Contains(cx, y) {
			continue
		}
		dst.Set(cx, y, ch, fruitninja.TextColor)
	}
}

// styleCache maps cell color pairs to lipgloss styles.
var styleCache = map[[2]core.Color]lipgloss.Style{}

func cellStyle(fg, bg core.Color) lipgloss.Style {
	key := [2]core.Color{fg, bg}
	if s, ok := styleCache[key]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if !fg.IsDefault() {
		s = s.Foreground(lipgloss.Color(fg.Hex()))
	}
	if !bg.IsDefault() {
		s = s.Background(lipgloss.Color(bg.Hex()))
	}
	styleCache[key] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(cellStyle(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
