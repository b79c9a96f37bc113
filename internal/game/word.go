package game

import (
	"time"

	"github.com/mattn/go-runewidth"
)

// minTypingTime keeps the per-word WPM finite when the first and last
// accepted keys share a clock reading.
const minTypingTime = 10 * time.Millisecond

// Outcome is the result of submitting a key to a word.
type Outcome int

const (
	// Rejected means the key was not the next expected character.
	Rejected Outcome = iota
	// Pending means the key was accepted and characters remain.
	Pending
	// Resolved means the key completed the word.
	Resolved
)

func (o Outcome) String() string {
	switch o {
	case Rejected:
		return "rejected"
	case Pending:
		return "pending"
	case Resolved:
		return "resolved"
	default:
		return "unknown"
	}
}

// Word is one falling token.
type Word struct {
	id         uint64
	text       string
	typed      []rune
	untyped    []rune
	col        int
	row        int
	width      int
	baseWeight float64
	started    bool
	start      time.Duration
	drawn      bool
	tracker    *Tracker
}

// NewWord returns a word at row 0 of column col. Completions are reported
// to tracker.
func NewWord(text string, baseWeight float64, col int, tracker *Tracker) *Word {
	return &Word{
		text:       text,
		untyped:    []rune(text),
		col:        col,
		width:      runewidth.StringWidth(text),
		baseWeight: baseWeight,
		tracker:    tracker,
	}
}

// Text returns the full word.
func (w *Word) Text() string { return w.text }

// Typed returns the typed prefix.
func (w *Word) Typed() string { return string(w.typed) }

// Untyped returns the remaining suffix.
func (w *Word) Untyped() string { return string(w.untyped) }

// Row returns the current grid row.
func (w *Word) Row() int { return w.row }

// Col returns the grid column fixed at spawn.
func (w *Word) Col() int { return w.col }

// Width returns the display width of the word in cells.
func (w *Word) Width() int { return w.width }

// BaseWeight returns the weight the word was spawned with.
func (w *Word) BaseWeight() float64 { return w.baseWeight }

// Done reports whether every character has been typed.
func (w *Word) Done() bool { return len(w.untyped) == 0 }

// NextChar returns the next expected character.
func (w *Word) NextChar() (rune, bool) {
	if len(w.untyped) == 0 {
		return 0, false
	}
	return w.untyped[0], true
}

// Submit offers key to the word at game time now. A wrong key changes
// nothing. The key that completes the word resolves it and returns the
// word's new weight.
func (w *Word) Submit(key rune, now time.Duration) (Outcome, float64) {
	next, ok := w.NextChar()
	if !ok || key != next {
		return Rejected, 0
	}
	if !w.started {
		w.started = true
		w.start = now
	}
	w.typed = append(w.typed, key)
	w.untyped = w.untyped[1:]
	if len(w.untyped) > 0 {
		return Pending, 0
	}
	return Resolved, w.Resolve(now)
}

// Resolve finalizes the word and returns its new weight. An unfinished
// word gets heavier by the number of characters left; a finished word
// reports to the tracker and gets lighter the faster it was typed.
func (w *Word) Resolve(now time.Duration) float64 {
	if len(w.untyped) > 0 {
		return w.baseWeight + float64(len(w.untyped))
	}
	elapsed := now - w.start
	if elapsed < minTypingTime {
		elapsed = minTypingTime
	}
	seconds := elapsed.Seconds()
	chars := len(w.typed)
	multiplier := w.tracker.SpeedMultiplier(seconds, chars)
	w.tracker.RecordCompletion(multiplier, chars, seconds, now)
	return w.baseWeight / (2 * multiplier)
}

// Draw renders the typed prefix and the untyped suffix at the word position.
func (w *Word) Draw(s Surface) {
	typed := string(w.typed)
	if typed != "" {
		s.DrawText(w.row, w.col, typed, StyleTyped)
	}
	if len(w.untyped) > 0 {
		s.DrawText(w.row, w.col+runewidth.StringWidth(typed), string(w.untyped), StyleUntyped)
	}
	w.drawn = true
}

// Clear blanks the word footprint if it has been drawn.
func (w *Word) Clear(s Surface) {
	if !w.drawn {
		return
	}
	s.ClearRegion(w.row, w.col, w.width)
	w.drawn = false
}
