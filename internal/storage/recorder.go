package storage

import (
	"fmt"

	"github.com/vovakirdan/fruit-arcade/internal/games/fruitninja"
)

// Ensure Store implements fruitninja.RunRecorder.
var _ fruitninja.RunRecorder = (*Store)(nil)

// RecordRun archives a finished session.
func (s *Store) RecordRun(r fruitninja.Result) error {
	_, err := s.SaveRun(Run{
		Score:      r.Score,
		Elapsed:    r.Elapsed,
		RecordRank: r.RecordRank,
		Resolution: fmt.Sprintf("%dx%d", r.Width, r.Height),
	})
	return err
}
