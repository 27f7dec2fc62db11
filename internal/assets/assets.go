// Package assets loads and caches the images the frontends draw: one sprite
// per fruit kind and the two backdrops scaled to the current resolution.
// A missing or unreadable file never fails the game; it is replaced by a
// blank image of the requested size.
package assets

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Backdrops ship as JPEG
	_ "image/png"  // Fruit sprites ship as PNG
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/log"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
)

// Load decodes an image file in any registered format.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// Scale resamples src to exactly w x h.
func Scale(src image.Image, w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Blank returns an opaque black image of size w x h.
func Blank(w, h int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	return dst
}

// LoadScaled loads path and scales it to w x h, falling back to Blank.
// The returned error is informational; the image is always usable.
func LoadScaled(path string, w, h int) (*image.RGBA, error) {
	img, err := Load(path)
	if err != nil {
		return Blank(w, h), err
	}
	return Scale(img, w, h), nil
}

// Cache maps fruit kinds and backdrops to decoded images. It is safe for
// concurrent use so frontends may draw from a separate goroutine.
type Cache struct {
	cfg       config.AssetsConfig
	fruitSize int
	logger    *log.Logger

	mu       sync.RWMutex
	sprites  map[fruitninja.Kind]*image.RGBA
	welcome  *image.RGBA
	arena    *image.RGBA
	width    int
	height   int
	onResize []func(width, height int)
}

// NewCache creates a cache and loads both backdrops at width x height.
func NewCache(cfg config.AssetsConfig, fruitSize, width, height int, logger *log.Logger) *Cache {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Cache{
		cfg:       cfg,
		fruitSize: fruitSize,
		logger:    logger,
		sprites:   make(map[fruitninja.Kind]*image.RGBA),
	}
	c.loadBackdrops(width, height)
	return c
}

// Preload loads a sprite for every kind up front.
func (c *Cache) Preload(kinds []string) {
	for _, k := range kinds {
		c.Sprite(fruitninja.Kind(k))
	}
}

// Sprite returns the image for a fruit kind, loading it on first use.
func (c *Cache) Sprite(kind fruitninja.Kind) *image.RGBA {
	c.mu.RLock()
	img, ok := c.sprites[kind]
	c.mu.RUnlock()
	if ok {
		return img
	}

	img, err := LoadScaled(c.cfg.FruitPath(string(kind)), c.fruitSize, c.fruitSize)
	if err != nil {
		c.logger.Warn("fruit sprite missing, using blank", "kind", kind, "err", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.sprites[kind]; ok {
		return cached
	}
	c.sprites[kind] = img
	return img
}

// Backdrop returns the backdrop image at the current resolution.
func (c *Cache) Backdrop(b fruitninja.Backdrop) *image.RGBA {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if b == fruitninja.BackdropArena {
		return c.arena
	}
	return c.welcome
}

// Size returns the resolution the backdrops are scaled to.
func (c *Cache) Size() (width, height int) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.width, c.height
}

// OnResize registers a hook run after backdrops are reloaded.
func (c *Cache) OnResize(fn func(width, height int)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onResize = append(c.onResize, fn)
}

// Resize reloads both backdrops scaled to the new resolution. Sprites are
// in world units and stay as they are.
func (c *Cache) Resize(width, height int) {
	c.loadBackdrops(width, height)

	c.mu.RLock()
	hooks := append([]func(int, int){}, c.onResize...)
	c.mu.RUnlock()
	for _, fn := range hooks {
		fn(width, height)
	}
}

func (c *Cache) loadBackdrops(width, height int) {
	welcome, err := LoadScaled(c.cfg.AssetPath(c.cfg.WelcomeBackdrop), width, height)
	if err != nil {
		c.logger.Warn("welcome backdrop missing, using blank", "err", err)
	}
	arena, err := LoadScaled(c.cfg.AssetPath(c.cfg.ArenaBackdrop), width, height)
	if err != nil {
		c.logger.Warn("arena backdrop missing, using blank", "err", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.welcome, c.arena = welcome, arena
	c.width, c.height = width, height
}

// Ensure Cache implements fruitninja.Display.
var _ fruitninja.Display = (*Cache)(nil)
