package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/vovakirdan/fruit-arcade/internal/leaderboard"
)

func TestPrintScoresEmpty(t *testing.T) {
	var buf bytes.Buffer
	printScores(&buf, "best_scores.json", leaderboard.NewTable())

	if !strings.Contains(buf.String(), "No scores recorded yet.") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestPrintScores(t *testing.T) {
	table := leaderboard.NewTable()
	table.Insert(350, 45)
	table.Insert(120, 30.5)

	var buf bytes.Buffer
	printScores(&buf, "best_scores.json", table)
	out := buf.String()

	for _, want := range []string{"1     350     45.00s", "2     120     30.50s", "5     0       0.00s"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
