package config

import "time"

// Ramp escalates the fruit fall speed on a fixed interval.
// Speed is negative (fruits travel toward the top edge) and only ever
// becomes more negative; there is no floor.
type Ramp struct {
	cfg   DifficultyConfig
	speed float64
	last  time.Time
}

// NewRamp creates a ramp starting at initialSpeed with its clock anchored at now.
func NewRamp(cfg DifficultyConfig, initialSpeed float64, now time.Time) *Ramp {
	return &Ramp{
		cfg:   cfg,
		speed: initialSpeed,
		last:  now,
	}
}

// IsEnabled returns whether the ramp escalates at all.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.IntervalMS > 0
}

// Check applies at most one step if more than one interval has passed since
// the last step. A frame that arrives several intervals late (e.g. after a
// long pause) still yields a single step. Reports whether a step happened.
func (r *Ramp) Check(now time.Time) bool {
	if !r.IsEnabled() {
		return false
	}
	if now.Sub(r.last) <= r.cfg.Interval() {
		return false
	}
	r.speed -= r.cfg.Step
	r.last = now
	return true
}

// Speed returns the current signed per-frame displacement.
func (r *Ramp) Speed() float64 {
	return r.speed
}

// LastStep returns the time of the last step (or of creation).
func (r *Ramp) LastStep() time.Time {
	return r.last
}
