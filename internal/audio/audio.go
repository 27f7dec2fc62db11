// Package audio plays the slice and life-lost cues through the system
// speaker. Clips are decoded once into memory; playback mixes a fresh
// streamer per cue so overlapping slices do not cut each other off.
package audio

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"

	"github.com/vovakirdan/fruit-arcade/internal/config"
	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
)

const (
	sampleRate = beep.SampleRate(44100)
	// Resampling quality passed to beep.Resample.
	resampleQuality = 4
)

// Clip is a decoded sound held in memory at the speaker sample rate.
type Clip struct {
	buf    *beep.Buffer
	volume float64 // Linear gain in [0, 1]
}

// LoadClip decodes an MP3 or WAV file. volume is a linear gain.
func LoadClip(path string, volume float64) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audio: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".wav":
		streamer, format, err = wav.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("audio: unsupported format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("audio: decode %s: %w", path, err)
	}
	defer streamer.Close()

	target := format
	target.SampleRate = sampleRate
	buf := beep.NewBuffer(target)
	if format.SampleRate == sampleRate {
		buf.Append(streamer)
	} else {
		buf.Append(beep.Resample(resampleQuality, format.SampleRate, sampleRate, streamer))
	}
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("audio: read %s: %w", path, err)
	}

	return &Clip{buf: buf, volume: volume}, nil
}

// Len returns the clip length in samples.
func (c *Clip) Len() int {
	return c.buf.Len()
}

// Duration returns the clip length.
func (c *Clip) Duration() time.Duration {
	return sampleRate.D(c.buf.Len())
}

// Streamer returns a new streamer over the whole clip with its gain applied.
func (c *Clip) Streamer() beep.Streamer {
	s := c.buf.Streamer(0, c.buf.Len())
	if c.volume >= 1 {
		return s
	}
	return &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(math.Max(c.volume, 0)),
		Silent:   c.volume <= 0,
	}
}

// Player implements fruitninja.Sounds on top of the beep speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	clips       map[fruitninja.Cue]*Clip
	initialized bool
	logger      *log.Logger
}

// NewPlayer creates a player with no clips loaded.
func NewPlayer(logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{
		mixer:  &beep.Mixer{},
		clips:  make(map[fruitninja.Cue]*Clip),
		logger: logger,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Load decodes the configured cue files. A clip that cannot be loaded is
// logged and its cue stays silent.
func (p *Player) Load(cfg config.AssetsConfig) {
	p.Set(fruitninja.CueSlice, cfg.AssetPath(cfg.SliceSound), cfg.SliceVolume)
	p.Set(fruitninja.CueLifeLost, cfg.AssetPath(cfg.LifeLostSound), cfg.LifeLostVolume)
}

// Set loads path as the clip for cue.
func (p *Player) Set(cue fruitninja.Cue, path string, volume float64) {
	clip, err := LoadClip(path, volume)
	if err != nil {
		p.logger.Warn("sound missing, cue disabled", "cue", cue, "err", err)
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.clips[cue] = clip
}

// Has reports whether a clip is loaded for cue.
func (p *Player) Has(cue fruitninja.Cue) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.clips[cue] != nil
}

// Play starts the clip for cue. Missing clips and an uninitialized speaker
// are silently skipped.
func (p *Player) Play(cue fruitninja.Cue) {
	p.mu.Lock()
	clip := p.clips[cue]
	ready := p.initialized
	p.mu.Unlock()

	if clip == nil || !ready {
		return
	}

	speaker.Lock()
	p.mixer.Add(clip.Streamer())
	speaker.Unlock()
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Ensure Player implements fruitninja.Sounds.
var _ fruitninja.Sounds = (*Player)(nil)
