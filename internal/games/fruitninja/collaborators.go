package fruitninja

// Cue is a sound effect trigger.
type Cue int

const (
	CueSlice    Cue = iota // Fruit sliced
	CueLifeLost            // Fruit escaped through the top edge
)

// String returns the cue name.
func (c Cue) String() string {
	switch c {
	case CueSlice:
		return "slice"
	case CueLifeLost:
		return "life-lost"
	default:
		return "unknown"
	}
}

// Sounds plays cues. Implementations must not block the frame.
type Sounds interface {
	Play(cue Cue)
}

// Display is told about resolution changes so it can resize its viewport
// and reload backdrops scaled to the new size.
type Display interface {
	Resize(width, height int)
}

// Result describes a finished session.
type Result struct {
	Score      int
	Elapsed    float64 // Seconds, frozen at game over
	RecordRank int     // 1-based leaderboard rank, 0 if not a record
	Width      int
	Height     int
}

// NewRecord reports whether the run entered the leaderboard.
func (r Result) NewRecord() bool {
	return r.RecordRank > 0
}

// RunRecorder archives finished sessions.
type RunRecorder interface {
	RecordRun(r Result) error
}

type nopSounds struct{}

func (nopSounds) Play(Cue) {}

type nopDisplay struct{}

func (nopDisplay) Resize(int, int) {}
