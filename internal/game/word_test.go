package game

import (
	"testing"
	"time"
)

func checkWordInvariant(t *testing.T, w *Word) {
	t.Helper()
	if w.Typed()+w.Untyped() != w.Text() {
		t.Fatalf("typed %q + untyped %q != %q", w.Typed(), w.Untyped(), w.Text())
	}
	if len([]rune(w.Typed()))+len([]rune(w.Untyped())) != len([]rune(w.Text())) {
		t.Fatalf("length invariant broken for %q", w.Text())
	}
	if next, ok := w.NextChar(); ok && next != []rune(w.Untyped())[0] {
		t.Fatalf("next char %q does not match untyped %q", next, w.Untyped())
	}
}

func TestSubmitRejectsWrongKey(t *testing.T) {
	w := NewWord("add", 100, 0, NewTracker())
	outcome, _ := w.Submit('x', 0)
	if outcome != Rejected {
		t.Fatalf("expected rejected, got %v", outcome)
	}
	if w.Typed() != "" || w.Untyped() != "add" {
		t.Fatalf("rejected key mutated word: typed=%q untyped=%q", w.Typed(), w.Untyped())
	}
	checkWordInvariant(t, w)
}

func TestSubmitCompletesWord(t *testing.T) {
	tr := NewTracker()
	w := NewWord("add", 100, 0, tr)

	steps := []struct {
		key   rune
		at    time.Duration
		want  Outcome
		typed string
	}{
		{'a', 0, Pending, "a"},
		{'d', 200 * time.Millisecond, Pending, "ad"},
		{'d', 400 * time.Millisecond, Resolved, "add"},
	}
	var final float64
	for _, step := range steps {
		outcome, score := w.Submit(step.key, step.at)
		if outcome != step.want {
			t.Fatalf("key %q: expected %v, got %v", step.key, step.want, outcome)
		}
		if w.Typed() != step.typed {
			t.Fatalf("key %q: expected typed %q, got %q", step.key, step.typed, w.Typed())
		}
		checkWordInvariant(t, w)
		final = score
	}
	if final >= w.BaseWeight() {
		t.Fatalf("expected completed weight below base weight, got %v", final)
	}
	if final != 50 {
		t.Fatalf("expected base/2 without typing history, got %v", final)
	}
	sum := tr.Summary()
	if sum.Words != 1 || sum.Chars != 3 {
		t.Fatalf("unexpected tracker totals: %+v", sum)
	}
	if tr.Score() <= 0 {
		t.Fatalf("expected score to increase")
	}
	if !w.Done() {
		t.Fatalf("expected word to be done")
	}
}

func TestTypingTimeStartsAtFirstCorrectKey(t *testing.T) {
	tr := NewTracker()
	w := NewWord("go", 100, 0, tr)
	if outcome, _ := w.Submit('x', time.Second); outcome != Rejected {
		t.Fatalf("expected rejected")
	}
	w.Submit('g', 5*time.Second)
	w.Submit('o', 6*time.Second)
	if got := tr.WPM(); got != WordsPerMinute(2, 1) {
		t.Fatalf("expected WPM measured from first correct key, got %v", got)
	}
}

func TestResolveExpiredWord(t *testing.T) {
	w := NewWord("add", 100, 0, NewTracker())
	w.Submit('a', 0)
	w.Submit('d', time.Second)
	if got := w.Resolve(2 * time.Second); got != 101 {
		t.Fatalf("expected base weight + 1, got %v", got)
	}
}

func TestResolveUntouchedWord(t *testing.T) {
	w := NewWord("next", 7, 0, NewTracker())
	if got := w.Resolve(time.Second); got != 11 {
		t.Fatalf("expected 7 + 4, got %v", got)
	}
}

func TestSingleCharWordHasFiniteScore(t *testing.T) {
	tr := NewTracker()
	w := NewWord("a", 100, 0, tr)
	outcome, weight := w.Submit('a', time.Second)
	if outcome != Resolved {
		t.Fatalf("expected resolved, got %v", outcome)
	}
	if weight != 50 {
		t.Fatalf("expected 50, got %v", weight)
	}
	if tr.WPM() != WordsPerMinute(1, minTypingTime.Seconds()) {
		t.Fatalf("expected WPM from floored typing time, got %v", tr.WPM())
	}
}

func TestWordDrawSplitsStyles(t *testing.T) {
	f := &fakeSurface{rows: 10, cols: 20}
	w := NewWord("add", 100, 4, NewTracker())
	w.row = 3
	w.Submit('a', 0)
	w.Draw(f)
	if len(f.draws) != 2 {
		t.Fatalf("expected 2 draw calls, got %d", len(f.draws))
	}
	if f.draws[0] != (drawCall{row: 3, col: 4, text: "a", style: StyleTyped}) {
		t.Fatalf("unexpected typed draw: %+v", f.draws[0])
	}
	if f.draws[1] != (drawCall{row: 3, col: 5, text: "dd", style: StyleUntyped}) {
		t.Fatalf("unexpected untyped draw: %+v", f.draws[1])
	}
	w.Clear(f)
	w.Clear(f)
	if f.clears != 1 {
		t.Fatalf("expected a single clear of the drawn footprint, got %d", f.clears)
	}
}
