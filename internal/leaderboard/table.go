// Package leaderboard implements the fixed-size ranked table of best
// (score, time) results and its write-through persistence.
package leaderboard

import (
	"fmt"
	"sort"
	"strconv"
)

// Size is the number of entries the table always holds.
const Size = 5

// Entry is one leaderboard result. Time is the elapsed play time in seconds.
type Entry struct {
	Score int
	Time  float64
}

// Beats reports whether e ranks strictly above other: higher score wins,
// equal scores are broken by the shorter time.
func (e Entry) Beats(other Entry) bool {
	return e.Score > other.Score || (e.Score == other.Score && e.Time < other.Time)
}

// Ranked is an entry paired with its rank label ("1".."5").
type Ranked struct {
	Rank string
	Entry
}

// Table holds exactly Size entries sorted by (score desc, time asc).
// The zero value is a valid table of zero entries.
type Table struct {
	entries [Size]Entry
}

// NewTable returns a table of Size zero entries.
func NewTable() Table {
	return Table{}
}

// FromEntries builds a table from exactly Size entries in any order.
func FromEntries(entries []Entry) (Table, error) {
	if len(entries) != Size {
		return Table{}, fmt.Errorf("leaderboard: need %d entries, got %d", Size, len(entries))
	}
	var t Table
	for i, e := range entries {
		if e.Score < 0 || e.Time < 0 {
			return Table{}, fmt.Errorf("leaderboard: entry %d has negative value (%d, %v)", i, e.Score, e.Time)
		}
		t.entries[i] = e
	}
	t.sort()
	return t, nil
}

func (t *Table) sort() {
	s := t.entries[:]
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Beats(s[j])
	})
}

// Entries returns a copy of the entries in rank order.
func (t Table) Entries() []Entry {
	out := make([]Entry, Size)
	copy(out, t.entries[:])
	return out
}

// Ranked returns the entries with their rank labels derived from position.
func (t Table) Ranked() []Ranked {
	out := make([]Ranked, Size)
	for i, e := range t.entries {
		out[i] = Ranked{Rank: strconv.Itoa(i + 1), Entry: e}
	}
	return out
}

// position returns the index the result would take, or -1 if it does not qualify.
func (t Table) position(e Entry) int {
	for i, cur := range t.entries {
		if e.Beats(cur) {
			return i
		}
	}
	return -1
}

// Qualifies reports whether (score, time) would displace an existing entry.
func (t Table) Qualifies(score int, time float64) bool {
	return t.position(Entry{Score: score, Time: time}) >= 0
}

// Insert places (score, time) at the first position it beats, shifting the
// entries below it down one rank and dropping the last. It returns the
// 1-based rank taken. If the result does not qualify the table is unchanged
// and ok is false.
func (t *Table) Insert(score int, time float64) (rank int, ok bool) {
	e := Entry{Score: score, Time: time}
	i := t.position(e)
	if i < 0 {
		return 0, false
	}
	copy(t.entries[i+1:], t.entries[i:Size-1])
	t.entries[i] = e
	return i + 1, true
}
