package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordrain/internal/model"
)

func TestSummarize(t *testing.T) {
	records := []model.ScoreRecord{
		{Score: 100, WPM: 20, Level: 0, Accuracy: 0.8, Words: 5, Misses: 1},
		{Score: 1300, WPM: 40, Level: 1, Accuracy: 1.0, Words: 15, Misses: 0},
	}
	sum := Summarize(records)
	if sum.Games != 2 || sum.BestScore != 1300 || sum.AvgScore != 700 {
		t.Fatalf("unexpected score aggregates: %+v", sum)
	}
	if sum.BestWPM != 40 || sum.AvgWPM != 30 || sum.BestLevel != 1 {
		t.Fatalf("unexpected speed aggregates: %+v", sum)
	}
	if sum.Words != 20 || sum.Misses != 1 {
		t.Fatalf("unexpected word totals: %+v", sum)
	}
	if empty := Summarize(nil); empty.Games != 0 {
		t.Fatalf("expected empty summary, got %+v", empty)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{1, 1, 1}); got != "+++" {
		t.Fatalf("expected flat sparkline, got %q", got)
	}
	got := Sparkline([]float64{0, 10})
	if got != " @" {
		t.Fatalf("expected min and max glyphs, got %q", got)
	}
}

func TestRenderScoreTable(t *testing.T) {
	var buf bytes.Buffer
	records := []model.ScoreRecord{{
		User:     "emma",
		PlayedAt: time.Date(2025, 3, 1, 12, 0, 0, 0, time.Local),
		Lang:     "en",
		Score:    1234.4,
		WPM:      41.26,
		Level:    1,
		Words:    12,
		Misses:   3,
		Accuracy: 0.9,
	}}
	if err := RenderScoreTable(&buf, records); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, needle := range []string{"Score", "emma", "1234", "41.3", "90.0%", "2025-03-01 12:00"} {
		if !strings.Contains(out, needle) {
			t.Fatalf("table missing %q:\n%s", needle, out)
		}
	}
}

func TestRenderWeightTableClipsLongWords(t *testing.T) {
	var buf bytes.Buffer
	long := strings.Repeat("x", 40)
	if err := RenderWeightTable(&buf, []model.WordWeight{{Word: long, Weight: 100}}); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	want := strings.Repeat("x", maxWordWidth-1) + "~"
	if !strings.HasPrefix(lines[1], want+" ") {
		t.Fatalf("expected word clipped to %d cells, got %q", maxWordWidth, lines[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if err := RenderWeightTable(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No games found.") || !strings.Contains(buf.String(), "No practice weights") {
		t.Fatalf("unexpected empty output: %q", buf.String())
	}
}

func TestRenderWeightTableBars(t *testing.T) {
	var buf bytes.Buffer
	weights := []model.WordWeight{{Word: "subtract", Weight: 200}, {Word: "add", Weight: 50}}
	if err := RenderWeightTable(&buf, weights); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], strings.Repeat("#", 20)) || !strings.HasSuffix(lines[2], strings.Repeat("#", 5)) {
		t.Fatalf("unexpected bars:\n%s", buf.String())
	}
}
