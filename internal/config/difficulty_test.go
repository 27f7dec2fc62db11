package config

import (
	"math"
	"testing"
	"time"
)

func TestRampStepsOncePerInterval(t *testing.T) {
	start := time.Unix(1000, 0)
	r := NewRamp(DifficultyConfig{Enabled: true, IntervalMS: 5000, Step: 1.05}, -1, start)

	if r.Check(start.Add(5000 * time.Millisecond)) {
		t.Error("exactly one interval should not step (strictly greater required)")
	}
	if !r.Check(start.Add(5001 * time.Millisecond)) {
		t.Fatal("expected a step after the interval elapsed")
	}
	if got := r.Speed(); math.Abs(got-(-2.05)) > 1e-9 {
		t.Errorf("Speed() = %v, expected -2.05", got)
	}
	if !r.LastStep().Equal(start.Add(5001 * time.Millisecond)) {
		t.Errorf("LastStep() = %v, expected anchor moved to step time", r.LastStep())
	}
}

func TestRampDoesNotCompound(t *testing.T) {
	start := time.Unix(0, 0)
	r := NewRamp(DifficultyConfig{Enabled: true, IntervalMS: 5000, Step: 1.05}, -1, start)

	// A frame arriving after four intervals yields a single step.
	if !r.Check(start.Add(20 * time.Second)) {
		t.Fatal("expected a step")
	}
	if got := r.Speed(); math.Abs(got-(-2.05)) > 1e-9 {
		t.Errorf("Speed() = %v, expected a single decrement to -2.05", got)
	}
	if r.Check(start.Add(21 * time.Second)) {
		t.Error("no second step until another interval passes")
	}
}

func TestRampMonotonic(t *testing.T) {
	start := time.Unix(0, 0)
	r := NewRamp(DifficultyConfig{Enabled: true, IntervalMS: 5000, Step: 1.05}, -1, start)

	prev := r.Speed()
	steps := 0
	now := start
	for i := 0; i < 60*120; i++ { // two minutes at 60 fps
		now = now.Add(time.Second / 60)
		stepped := r.Check(now)
		cur := r.Speed()
		if cur > prev {
			t.Fatalf("speed increased at frame %d: %v -> %v", i, prev, cur)
		}
		if stepped {
			steps++
			if math.Abs((prev-cur)-1.05) > 1e-9 {
				t.Fatalf("step size = %v, expected 1.05", prev-cur)
			}
		} else if cur != prev {
			t.Fatalf("speed changed without a step at frame %d", i)
		}
		prev = cur
	}
	if steps < 20 || steps > 24 {
		t.Errorf("expected about 23 steps in two minutes, got %d", steps)
	}
}

func TestRampDisabled(t *testing.T) {
	start := time.Unix(0, 0)
	r := NewRamp(DifficultyConfig{Enabled: false, IntervalMS: 5000, Step: 1.05}, -1, start)

	if r.Check(start.Add(time.Hour)) {
		t.Error("disabled ramp should never step")
	}
	if r.Speed() != -1 {
		t.Errorf("Speed() = %v, expected -1", r.Speed())
	}
}
