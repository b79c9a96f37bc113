package game

import (
	"math"
	"time"
)

const (
	avgWordLen      = 5
	initialFast     = 1000.0
	fastFactor      = 1.5
	recalibrateFrac = 0.1
	pointsPerChar   = 10
	pointsPerLevel  = 1000
	minMultiplier   = 0.5
	maxMultiplier   = 1.5
)

// WordsPerMinute converts typed characters over seconds to WPM using
// five characters per word.
func WordsPerMinute(chars int, seconds float64) float64 {
	if chars == 0 || seconds <= 0 {
		return 0
	}
	return (float64(chars) / avgWordLen) / (seconds / 60)
}

// Tracker accumulates the score of one game.
type Tracker struct {
	score    float64
	chars    int
	seconds  float64
	fast     float64
	lastAt   time.Duration
	words    int
	misses   int
	keys     int
	mistyped int
}

// Summary is a snapshot of a Tracker.
type Summary struct {
	Score    float64
	Level    int
	WPM      float64
	Words    int
	Misses   int
	Chars    int
	Accuracy float64
	Elapsed  time.Duration
}

// NewTracker returns a Tracker with the initial fast threshold.
func NewTracker() *Tracker {
	return &Tracker{fast: initialFast}
}

// WPM returns the cumulative words per minute.
func (t *Tracker) WPM() float64 {
	return WordsPerMinute(t.chars, t.seconds)
}

// Fast returns the current fast-typing threshold.
func (t *Tracker) Fast() float64 {
	return t.fast
}

// Score returns the cumulative score.
func (t *Tracker) Score() float64 {
	return t.score
}

// Level returns floor(score / 1000).
func (t *Tracker) Level() int {
	return int(math.Floor(t.score / pointsPerLevel))
}

// SpeedMultiplier compares the WPM of one word with the cumulative WPM,
// clamped to [0.5, 1.5]. Without history it is 1.
func (t *Tracker) SpeedMultiplier(seconds float64, chars int) float64 {
	cumulative := t.WPM()
	if cumulative == 0 {
		return 1
	}
	ratio := WordsPerMinute(chars, seconds) / cumulative
	return math.Max(minMultiplier, math.Min(maxMultiplier, ratio))
}

// RecordCompletion adds a completed word to the totals and the score.
//
// The score term multiplies by fast/wpm(word), so a word typed faster than
// the fast threshold adds less than chars*10. The formula is kept as-is;
// that relationship may not be intended.
func (t *Tracker) RecordCompletion(multiplier float64, chars int, seconds float64, now time.Duration) {
	oldWPM := t.WPM()
	t.chars += chars
	t.seconds += seconds
	t.lastAt = now
	t.words++
	if oldWPM != 0 && math.Abs(t.WPM()-oldWPM)/oldWPM > recalibrateFrac {
		t.fast = t.WPM() * fastFactor
	}
	wordWPM := WordsPerMinute(chars, seconds)
	if wordWPM == 0 {
		return
	}
	t.score += multiplier * float64(chars) * pointsPerChar * (t.fast / wordWPM)
}

// RecordMiss counts a word that reached the bottom untyped.
func (t *Tracker) RecordMiss() {
	t.misses++
}

// RecordKey counts a key accepted by the selected word.
func (t *Tracker) RecordKey() {
	t.keys++
}

// RecordMistype counts a key rejected by the selected word.
func (t *Tracker) RecordMistype() {
	t.keys++
	t.mistyped++
}

// Summary returns a snapshot of the totals.
func (t *Tracker) Summary() Summary {
	acc := 0.0
	if t.keys > 0 {
		acc = float64(t.keys-t.mistyped) / float64(t.keys)
	}
	return Summary{
		Score:    t.score,
		Level:    t.Level(),
		WPM:      t.WPM(),
		Words:    t.words,
		Misses:   t.misses,
		Chars:    t.chars,
		Accuracy: acc,
		Elapsed:  t.lastAt,
	}
}

func (t *Tracker) status() Status {
	return Status{Score: t.score, WPM: t.WPM(), Level: t.Level()}
}
