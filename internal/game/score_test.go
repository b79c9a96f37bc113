package game

import (
	"math"
	"testing"
	"time"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestWordsPerMinute(t *testing.T) {
	if got := WordsPerMinute(0, 12); got != 0 {
		t.Fatalf("expected 0 for no chars, got %v", got)
	}
	if got := WordsPerMinute(0, 0); got != 0 {
		t.Fatalf("expected 0 for no chars and no time, got %v", got)
	}
	if got := WordsPerMinute(10, 12); !almostEqual(got, 10) {
		t.Fatalf("expected 10 WPM, got %v", got)
	}
}

func TestLevelFromScore(t *testing.T) {
	cases := []struct {
		score float64
		level int
	}{
		{0, 0},
		{999, 0},
		{1000, 1},
		{2500, 2},
	}
	for _, c := range cases {
		tr := NewTracker()
		tr.score = c.score
		if got := tr.Level(); got != c.level {
			t.Fatalf("score %v: expected level %d, got %d", c.score, c.level, got)
		}
	}
}

func TestSpeedMultiplierWithoutHistory(t *testing.T) {
	if got := NewTracker().SpeedMultiplier(1, 5); got != 1 {
		t.Fatalf("expected 1 without history, got %v", got)
	}
}

func TestSpeedMultiplierClamped(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(1, 10, 12, 12*time.Second)

	inputs := []struct {
		seconds float64
		chars   int
	}{
		{0.01, 10},
		{0.1, 100},
		{1000, 1},
		{12, 10},
		{6, 10},
		{24, 10},
	}
	for _, in := range inputs {
		got := tr.SpeedMultiplier(in.seconds, in.chars)
		if got < 0.5 || got > 1.5 {
			t.Fatalf("multiplier %v out of range for %+v", got, in)
		}
	}
	if got := tr.SpeedMultiplier(0.01, 10); got != 1.5 {
		t.Fatalf("expected upper clamp, got %v", got)
	}
	if got := tr.SpeedMultiplier(1000, 1); got != 0.5 {
		t.Fatalf("expected lower clamp, got %v", got)
	}
	if got := tr.SpeedMultiplier(12, 10); !almostEqual(got, 1) {
		t.Fatalf("expected 1 at cumulative pace, got %v", got)
	}
}

func TestRecordCompletionScoresAndRecalibrates(t *testing.T) {
	tr := NewTracker()

	tr.RecordCompletion(1, 10, 12, 12*time.Second)
	if tr.Fast() != initialFast {
		t.Fatalf("fast threshold must not move without prior WPM, got %v", tr.Fast())
	}
	if !almostEqual(tr.Score(), 10*10*(1000.0/10)) {
		t.Fatalf("unexpected first score: %v", tr.Score())
	}

	// 20 chars over 18s is 13.3 WPM, a 33% move from 10.
	tr.RecordCompletion(1, 10, 6, 18*time.Second)
	wantFast := WordsPerMinute(20, 18) * 1.5
	if !almostEqual(tr.Fast(), wantFast) {
		t.Fatalf("expected fast %v, got %v", wantFast, tr.Fast())
	}
	want := 10000.0 + 10*10*(wantFast/WordsPerMinute(10, 6))
	if !almostEqual(tr.Score(), want) {
		t.Fatalf("expected score %v, got %v", want, tr.Score())
	}
}

func TestRecordCompletionSmallDriftKeepsFast(t *testing.T) {
	tr := NewTracker()
	tr.RecordCompletion(1, 10, 12, time.Second)
	tr.RecordCompletion(1, 10, 12.5, 2*time.Second)
	if tr.Fast() != initialFast {
		t.Fatalf("expected fast threshold to stay, got %v", tr.Fast())
	}
}

func TestWordAtFastPaceScoresTenPerChar(t *testing.T) {
	tr := NewTracker()
	tr.fast = WordsPerMinute(5, 3)
	tr.RecordCompletion(1, 5, 3, time.Second)
	if !almostEqual(tr.Score(), 50) {
		t.Fatalf("expected chars*10 at the fast pace, got %v", tr.Score())
	}
}

func TestSummaryAccuracy(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 3; i++ {
		tr.RecordKey()
	}
	tr.RecordCompletion(1, 3, 1, time.Second)
	tr.RecordMistype()
	tr.RecordMiss()
	sum := tr.Summary()
	if sum.Misses != 1 || sum.Words != 1 {
		t.Fatalf("unexpected counters: %+v", sum)
	}
	if !almostEqual(sum.Accuracy, 0.75) {
		t.Fatalf("expected 75%% accuracy, got %v", sum.Accuracy)
	}
}

func TestCompletionDoesNotCountKeys(t *testing.T) {
	tr := NewTracker()
	tr.RecordKey()
	tr.RecordMistype()
	tr.RecordCompletion(1, 4, 1, time.Second)
	if got := tr.Summary().Accuracy; !almostEqual(got, 0.5) {
		t.Fatalf("expected accuracy from recorded keys only, got %v", got)
	}
}

func TestScaleForLevel(t *testing.T) {
	base := 500 * time.Millisecond
	if got := ScaleForLevel(base, 0); got != base {
		t.Fatalf("expected base at level 0, got %v", got)
	}
	if got := ScaleForLevel(base, 1); got != base/2 {
		t.Fatalf("expected half at level 1, got %v", got)
	}
	prev := base
	for level := 1; level < 10; level++ {
		got := ScaleForLevel(base, level)
		if got >= prev {
			t.Fatalf("expected decreasing delay at level %d: %v >= %v", level, got, prev)
		}
		prev = got
	}
}
