package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
)

// Store persists a Table.
type Store interface {
	Load() (Table, error)
	Save(Table) error
}

// FileStore keeps the table as pretty-printed JSON mapping rank labels
// "1".."5" to [score, time] pairs.
type FileStore struct {
	path   string
	logger *log.Logger
}

// NewFileStore creates a store for the given path. A nil logger discards output.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the file location.
func (s *FileStore) Path() string {
	return s.path
}

// Load reads the table. A missing file or any schema violation recreates
// the default zero table on disk. The returned error is non-nil only when
// that recreation cannot be written; the default table is still returned.
func (s *FileStore) Load() (Table, error) {
	data, err := os.ReadFile(s.path)
	if err == nil {
		t, decodeErr := Decode(data)
		if decodeErr == nil {
			return t, nil
		}
		s.logger.Warn("leaderboard file is invalid, recreating defaults", "path", s.path, "error", decodeErr)
	} else if errors.Is(err, os.ErrNotExist) {
		s.logger.Info("leaderboard file missing, creating defaults", "path", s.path)
	} else {
		s.logger.Warn("cannot read leaderboard file, recreating defaults", "path", s.path, "error", err)
	}

	t := NewTable()
	if err := s.Save(t); err != nil {
		return t, err
	}
	return t, nil
}

// Save writes the full table, replacing the file atomically.
func (s *FileStore) Save(t Table) error {
	data, err := Encode(t)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("leaderboard: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".best_scores-*.json")
	if err != nil {
		return fmt.Errorf("leaderboard: cannot create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("leaderboard: cannot write %s: %w", s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("leaderboard: cannot write %s: %w", s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("leaderboard: cannot replace %s: %w", s.path, err)
	}
	return nil
}

// Encode renders the table in the persisted JSON format.
func Encode(t Table) ([]byte, error) {
	doc := make(map[string][2]float64, Size)
	for _, r := range t.Ranked() {
		doc[r.Rank] = [2]float64{float64(r.Score), r.Time}
	}
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return nil, fmt.Errorf("leaderboard: cannot encode: %w", err)
	}
	return append(data, '\n'), nil
}

// Decode parses the persisted JSON format. Every rank label "1".."5" must be
// present with a [score, time] pair where score is a non-negative integer and
// time is non-negative.
func Decode(data []byte) (Table, error) {
	var doc map[string][]float64
	if err := json.Unmarshal(data, &doc); err != nil {
		return Table{}, fmt.Errorf("leaderboard: cannot decode: %w", err)
	}
	if len(doc) != Size {
		return Table{}, fmt.Errorf("leaderboard: expected %d ranks, got %d", Size, len(doc))
	}

	entries := make([]Entry, 0, Size)
	for i := 1; i <= Size; i++ {
		key := strconv.Itoa(i)
		pair, ok := doc[key]
		if !ok {
			return Table{}, fmt.Errorf("leaderboard: missing rank %q", key)
		}
		if len(pair) != 2 {
			return Table{}, fmt.Errorf("leaderboard: rank %q needs [score, time], got %d values", key, len(pair))
		}
		score, tm := pair[0], pair[1]
		if score != math.Trunc(score) || score > math.MaxInt32 {
			return Table{}, fmt.Errorf("leaderboard: rank %q score %v is not an integer", key, score)
		}
		entries = append(entries, Entry{Score: int(score), Time: tm})
	}
	return FromEntries(entries)
}

// MemoryStore keeps the table in memory. Useful when no file is wanted.
type MemoryStore struct {
	Table Table
	Saves int
}

// Load returns the stored table.
func (m *MemoryStore) Load() (Table, error) {
	return m.Table, nil
}

// Save stores the table and counts the write.
func (m *MemoryStore) Save(t Table) error {
	m.Table = t
	m.Saves++
	return nil
}
