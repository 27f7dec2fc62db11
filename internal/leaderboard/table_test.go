package leaderboard

import (
	"math/rand"
	"testing"
)

func mustTable(t *testing.T, entries ...Entry) Table {
	t.Helper()
	tbl, err := FromEntries(entries)
	if err != nil {
		t.Fatalf("FromEntries() failed: %v", err)
	}
	return tbl
}

func sampleTable(t *testing.T) Table {
	return mustTable(t,
		Entry{300, 50.0},
		Entry{250, 55.0},
		Entry{200, 60.0},
		Entry{150, 65.0},
		Entry{100, 70.0},
	)
}

func TestInsertNewTopScore(t *testing.T) {
	tbl := sampleTable(t)

	rank, ok := tbl.Insert(350, 45.0)
	if !ok {
		t.Fatal("Insert should report an update")
	}
	if rank != 1 {
		t.Errorf("rank = %d, expected 1", rank)
	}

	expected := []Entry{{350, 45.0}, {300, 50.0}, {250, 55.0}, {200, 60.0}, {150, 65.0}}
	for i, e := range tbl.Entries() {
		if e != expected[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, e, expected[i])
		}
	}
}

func TestInsertTieBrokenByTime(t *testing.T) {
	tbl := sampleTable(t)

	rank, ok := tbl.Insert(200, 59.5)
	if !ok || rank != 3 {
		t.Fatalf("Insert(200, 59.5) = (%d, %v), expected (3, true)", rank, ok)
	}
	entries := tbl.Entries()
	if entries[2] != (Entry{200, 59.5}) || entries[3] != (Entry{200, 60.0}) {
		t.Errorf("faster equal score should rank above: %+v", entries)
	}

	if tbl.Qualifies(100, 70.0) {
		t.Error("identical score and time must not qualify")
	}
}

func TestInsertNonQualifyingIsNoop(t *testing.T) {
	tbl := sampleTable(t)
	before := tbl.Entries()

	for i := 0; i < 3; i++ {
		rank, ok := tbl.Insert(50, 10.0)
		if ok || rank != 0 {
			t.Fatalf("Insert(50, 10) = (%d, %v), expected no update", rank, ok)
		}
	}
	for i, e := range tbl.Entries() {
		if e != before[i] {
			t.Errorf("entry %d changed to %+v", i, e)
		}
	}
}

func TestInsertIntoZeroTable(t *testing.T) {
	tbl := NewTable()

	if tbl.Qualifies(0, 0) {
		t.Error("0/0 should not beat 0/0")
	}
	// A zero score with positive time never beats a zero entry.
	if tbl.Qualifies(0, 12.5) {
		t.Error("0 points in 12.5s should not beat 0 points in 0s")
	}
	rank, ok := tbl.Insert(1, 12.5)
	if !ok || rank != 1 {
		t.Fatalf("Insert(1, 12.5) = (%d, %v), expected (1, true)", rank, ok)
	}
	rank, ok = tbl.Insert(1, 20.0)
	if !ok || rank != 2 {
		t.Fatalf("Insert(1, 20) = (%d, %v), expected (2, true)", rank, ok)
	}
}

func TestInsertKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	tbl := NewTable()

	for i := 0; i < 500; i++ {
		score := rng.Intn(60)
		tm := float64(rng.Intn(20000)) / 100
		tbl.Insert(score, tm)

		entries := tbl.Entries()
		if len(entries) != Size {
			t.Fatalf("table has %d entries", len(entries))
		}
		for j := 1; j < Size; j++ {
			if entries[j].Beats(entries[j-1]) {
				t.Fatalf("entries out of order after insert %d: %+v", i, entries)
			}
		}
	}
}

func TestRankedLabels(t *testing.T) {
	tbl := sampleTable(t)
	tbl.Insert(260, 1.0)

	for i, r := range tbl.Ranked() {
		want := string(rune('1' + i))
		if r.Rank != want {
			t.Errorf("rank label %d = %q, expected %q", i, r.Rank, want)
		}
	}
	if tbl.Ranked()[1].Score != 260 {
		t.Errorf("rank 2 should hold the new entry, got %+v", tbl.Ranked()[1])
	}
}

func TestFromEntriesValidation(t *testing.T) {
	if _, err := FromEntries([]Entry{{1, 1}}); err == nil {
		t.Error("expected error for short entry list")
	}
	if _, err := FromEntries([]Entry{{1, 1}, {1, 1}, {1, 1}, {1, 1}, {-1, 0}}); err == nil {
		t.Error("expected error for negative score")
	}

	tbl := mustTable(t, Entry{1, 5}, Entry{9, 1}, Entry{5, 2}, Entry{5, 1}, Entry{0, 0})
	expected := []Entry{{9, 1}, {5, 1}, {5, 2}, {1, 5}, {0, 0}}
	for i, e := range tbl.Entries() {
		if e != expected[i] {
			t.Errorf("entry %d = %+v, expected %+v", i, e, expected[i])
		}
	}
}
