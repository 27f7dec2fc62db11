package leaderboard

import "fmt"

// Board owns the live table and writes it through to its store on every
// qualifying insertion. It is an explicitly passed value; the game
// controller holds the only reference.
type Board struct {
	table Table
	store Store
}

// Open loads the table from store. On a load error the board still opens
// with whatever table the store returned, and the error is reported.
func Open(store Store) (*Board, error) {
	t, err := store.Load()
	b := &Board{table: t, store: store}
	if err != nil {
		return b, fmt.Errorf("leaderboard: load: %w", err)
	}
	return b, nil
}

// Table returns a copy of the current table.
func (b *Board) Table() Table {
	return b.table
}

// Qualifies reports whether the result would enter the table.
func (b *Board) Qualifies(score int, time float64) bool {
	return b.table.Qualifies(score, time)
}

// Submit inserts a result and persists immediately if it qualified.
// A non-qualifying result leaves the table and the store untouched.
// If the write fails the in-memory table keeps the new entry.
func (b *Board) Submit(score int, time float64) (rank int, ok bool, err error) {
	rank, ok = b.table.Insert(score, time)
	if !ok {
		return 0, false, nil
	}
	if err := b.store.Save(b.table); err != nil {
		return rank, true, fmt.Errorf("leaderboard: save: %w", err)
	}
	return rank, true, nil
}
