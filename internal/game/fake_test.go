package game

import (
	"time"

	"github.com/verte-zerg/wordrain/internal/clock"
)

type drawCall struct {
	row, col int
	text     string
	style    Style
}

type scriptedKey struct {
	at  time.Duration
	key rune
}

// fakeSurface replays keys at fixed source times and advances the source
// by the poll timeout when no key is due.
type fakeSurface struct {
	rows, cols int
	src        *clock.ManualSource
	origin     time.Time
	keys       []scriptedKey
	draws      []drawCall
	clears     int
	refreshes  int
	status     Status
	statuses   int
}

func newFakeSurface(src *clock.ManualSource, rows, cols int, keys ...scriptedKey) *fakeSurface {
	return &fakeSurface{rows: rows, cols: cols, src: src, origin: src.Now(), keys: keys}
}

func (f *fakeSurface) Size() (int, int) { return f.rows, f.cols }

func (f *fakeSurface) DrawText(row, col int, text string, style Style) {
	f.draws = append(f.draws, drawCall{row: row, col: col, text: text, style: style})
}

func (f *fakeSurface) ClearRegion(int, int, int) { f.clears++ }

func (f *fakeSurface) Refresh() { f.refreshes++ }

func (f *fakeSurface) ShowStatus(status Status) {
	f.status = status
	f.statuses++
}

func (f *fakeSurface) PollKey(timeout time.Duration) (rune, bool) {
	elapsed := f.src.Now().Sub(f.origin)
	if len(f.keys) > 0 && f.keys[0].at <= elapsed+timeout {
		next := f.keys[0]
		f.keys = f.keys[1:]
		if next.at > elapsed {
			f.src.Advance(next.at - elapsed)
		}
		return next.key, true
	}
	f.src.Advance(timeout)
	return 0, false
}

type scriptedPicker struct {
	words []string
	cols  []int
}

func (p *scriptedPicker) PickWord(words []string, _ func(string) float64) string {
	if len(p.words) == 0 {
		return words[0]
	}
	w := p.words[0]
	if len(p.words) > 1 {
		p.words = p.words[1:]
	}
	return w
}

func (p *scriptedPicker) PickColumn(maxCol int, _ func(int) bool) int {
	if len(p.cols) == 0 {
		return 0
	}
	c := p.cols[0]
	if len(p.cols) > 1 {
		p.cols = p.cols[1:]
	}
	if c > maxCol {
		return maxCol
	}
	return c
}

type fakeMenu struct {
	src     *clock.ManualSource
	clk     *clock.PausableClock
	spend   time.Duration
	choice  MenuChoice
	opened  int
	paused  bool
	summary Summary
}

func (m *fakeMenu) Open(summary Summary) (MenuChoice, error) {
	m.opened++
	m.summary = summary
	m.paused = m.clk.Paused()
	m.src.Advance(m.spend)
	return m.choice, nil
}

func vocabOf(words ...string) []VocabEntry {
	out := make([]VocabEntry, 0, len(words))
	for _, w := range words {
		out = append(out, VocabEntry{Word: w, Weight: DefaultWeight})
	}
	return out
}
