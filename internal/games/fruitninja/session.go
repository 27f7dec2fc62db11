package fruitninja

import (
	"time"

	"github.com/vovakirdan/fruit-arcade/internal/config"
)

// Session is the state of one play-through, created on Start and dropped
// when returning to the menu.
type Session struct {
	score       int
	lives       int
	ramp        *config.Ramp
	startTime   time.Time
	pausedAccum time.Duration
	pausedAt    time.Time
	paused      bool
	gameOver    bool
	final       time.Duration
}

// NewSession starts a session at now.
func NewSession(gameplay config.GameplayConfig, difficulty config.DifficultyConfig, now time.Time) *Session {
	return &Session{
		lives:     gameplay.Lives,
		ramp:      config.NewRamp(difficulty, gameplay.InitialFallSpeed, now),
		startTime: now,
	}
}

// Score returns the number of sliced fruits.
func (s *Session) Score() int { return s.score }

// Lives returns the remaining lives, never below zero.
func (s *Session) Lives() int { return s.lives }

// FallSpeed returns the current signed per-frame displacement.
func (s *Session) FallSpeed() float64 { return s.ramp.Speed() }

// LastRamp returns when the fall speed last changed.
func (s *Session) LastRamp() time.Time { return s.ramp.LastStep() }

// StartTime returns when play began.
func (s *Session) StartTime() time.Time { return s.startTime }

// PausedAccum returns total time spent paused so far (completed pauses only).
func (s *Session) PausedAccum() time.Duration { return s.pausedAccum }

// GameOver reports whether lives ran out.
func (s *Session) GameOver() bool { return s.gameOver }

// Paused reports whether a pause is in progress.
func (s *Session) Paused() bool { return s.paused }

// FinalElapsed returns the frozen play time. ok is false until game over.
func (s *Session) FinalElapsed() (d time.Duration, ok bool) {
	return s.final, s.gameOver
}

// addPoint credits one sliced fruit.
func (s *Session) addPoint() {
	s.score++
}

// loseLife removes a life, flooring at zero.
func (s *Session) loseLife() {
	if s.lives > 0 {
		s.lives--
	}
}

// rampCheck applies a difficulty step if due.
func (s *Session) rampCheck(now time.Time) bool {
	return s.ramp.Check(now)
}

// Pause records the start of a pause. Ignored if already paused.
func (s *Session) Pause(now time.Time) {
	if s.paused {
		return
	}
	s.paused = true
	s.pausedAt = now
}

// Resume adds the paused interval to the accumulator.
func (s *Session) Resume(now time.Time) {
	if !s.paused {
		return
	}
	if d := now.Sub(s.pausedAt); d > 0 {
		s.pausedAccum += d
	}
	s.paused = false
}

// Elapsed returns play time: now - start - pausedAccum. While paused the
// clock reads as it did when the pause began; after game over it is frozen.
func (s *Session) Elapsed(now time.Time) time.Duration {
	if s.gameOver {
		return s.final
	}
	if s.paused {
		now = s.pausedAt
	}
	return now.Sub(s.startTime) - s.pausedAccum
}

// finish freezes the elapsed time. Only the first call has any effect.
func (s *Session) finish(now time.Time) bool {
	if s.gameOver {
		return false
	}
	s.final = s.Elapsed(now)
	s.gameOver = true
	return true
}

// Seconds converts a play duration to the leaderboard's time unit,
// truncated to milliseconds.
func Seconds(d time.Duration) float64 {
	return d.Truncate(time.Millisecond).Seconds()
}
