package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrain/internal/clock"
	"github.com/verte-zerg/wordrain/internal/generator"
)

const (
	defaultInitialDelay        = 500 * time.Millisecond
	defaultInitialNewWordPause = 3 * time.Second
	defaultPollInterval        = 10 * time.Millisecond
)

var (
	// ErrNoSurface is returned when a session is created without a surface.
	ErrNoSurface = errors.New("game: no display surface")
	// ErrSurfaceTooSmall is returned when the playfield cannot hold a falling word.
	ErrSurfaceTooSmall = errors.New("game: display surface too small")
	// ErrNoVocabulary is returned when no vocabulary word fits the playfield.
	ErrNoVocabulary = errors.New("game: empty vocabulary")
)

// Picker decides which word spawns next and at which column.
type Picker interface {
	PickWord(words []string, weight func(string) float64) string
	PickColumn(maxCol int, taken func(int) bool) int
}

// Resolution describes a word leaving the live set.
type Resolution struct {
	Word      string
	Completed bool
	Weight    float64
}

// Options configures a Session. Zero values select defaults.
type Options struct {
	Clock               *clock.PausableClock
	Picker              Picker
	Weights             *WeightTable
	Menu                Menu
	InitialDelay        time.Duration
	InitialNewWordPause time.Duration
	PollInterval        time.Duration
	OnResolve           func(Resolution)
}

// WordState is a read-only view of a live word.
type WordState struct {
	Text  string
	Typed string
	Row   int
	Col   int
}

// Session runs one game: it spawns words, moves them down one row per
// tick, routes keys to the selected word and scores the results.
type Session struct {
	surface   Surface
	clock     *clock.PausableClock
	picker    Picker
	weights   *WeightTable
	tracker   *Tracker
	menu      Menu
	onResolve func(Resolution)

	words               []string
	initialDelay        time.Duration
	initialNewWordPause time.Duration
	pollInterval        time.Duration

	live      liveSet
	selected  *Word
	lastSpawn time.Duration
	lastNow   time.Duration
	running   bool
}

// NewSession builds a session over vocab drawing on surface. Words that do
// not fit the playfield width are dropped from the vocabulary.
func NewSession(vocab []VocabEntry, surface Surface, opts Options) (*Session, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	rows, cols := surface.Size()
	if rows < 2 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d", ErrSurfaceTooSmall, cols, rows)
	}

	seen := make(map[string]struct{}, len(vocab))
	entries := make([]VocabEntry, 0, len(vocab))
	words := make([]string, 0, len(vocab))
	for _, e := range vocab {
		e.Word = strings.TrimSpace(e.Word)
		if e.Word == "" || runewidth.StringWidth(e.Word) > cols {
			continue
		}
		if _, ok := seen[e.Word]; ok {
			continue
		}
		seen[e.Word] = struct{}{}
		entries = append(entries, e)
		words = append(words, e.Word)
	}
	if len(words) == 0 {
		return nil, ErrNoVocabulary
	}

	s := &Session{
		surface:             surface,
		clock:               opts.Clock,
		picker:              opts.Picker,
		weights:             opts.Weights,
		tracker:             NewTracker(),
		menu:                opts.Menu,
		onResolve:           opts.OnResolve,
		words:               words,
		initialDelay:        opts.InitialDelay,
		initialNewWordPause: opts.InitialNewWordPause,
		pollInterval:        opts.PollInterval,
		running:             true,
	}
	if s.clock == nil {
		s.clock = clock.New()
	}
	if s.picker == nil {
		s.picker = generator.New()
	}
	if s.weights == nil {
		s.weights = NewWeightTable()
	}
	if s.initialDelay <= 0 {
		s.initialDelay = defaultInitialDelay
	}
	if s.initialNewWordPause <= 0 {
		s.initialNewWordPause = defaultInitialNewWordPause
	}
	if s.pollInterval <= 0 {
		s.pollInterval = defaultPollInterval
	}
	s.weights.Seed(entries)
	surface.ShowStatus(s.tracker.status())
	surface.Refresh()
	return s, nil
}

// ScaleForLevel divides base by level+1.
func ScaleForLevel(base time.Duration, level int) time.Duration {
	if level < 0 {
		level = 0
	}
	return base / time.Duration(level+1)
}

// Delay is the length of each key polling window at the current level.
func (s *Session) Delay() time.Duration {
	return ScaleForLevel(s.initialDelay, s.tracker.Level())
}

// NewWordPause is the spawn interval at the current level.
func (s *Session) NewWordPause() time.Duration {
	return ScaleForLevel(s.initialNewWordPause, s.tracker.Level())
}

// CurrentScore returns the cumulative score.
func (s *Session) CurrentScore() float64 { return s.tracker.Score() }

// CurrentLevel returns the difficulty level.
func (s *Session) CurrentLevel() int { return s.tracker.Level() }

// Weights returns the table the session updates.
func (s *Session) Weights() *WeightTable { return s.weights }

// Running reports whether the session has not been stopped.
func (s *Session) Running() bool { return s.running }

// Stop ends the session after the current polling step.
func (s *Session) Stop() { s.running = false }

// Pause freezes the session clock.
func (s *Session) Pause() { s.clock.Pause() }

// Unpause resumes the session clock.
func (s *Session) Unpause() { s.clock.Unpause() }

// Summary returns the score totals with the last observed game time.
func (s *Session) Summary() Summary {
	sum := s.tracker.Summary()
	sum.Elapsed = s.lastNow
	return sum
}

// Live returns the live words in spawn order.
func (s *Session) Live() []WordState {
	out := make([]WordState, 0, s.live.len())
	for _, w := range s.live.items {
		out = append(out, w.state())
	}
	return out
}

// Selected returns the word receiving keys, if any.
func (s *Session) Selected() (WordState, bool) {
	if s.selected == nil {
		return WordState{}, false
	}
	return s.selected.state(), true
}

// Run calls RunTick until the session stops, ctx is done, or a tick fails.
func (s *Session) Run(ctx context.Context) error {
	for s.running {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := s.RunTick(); err != nil {
			return err
		}
	}
	return nil
}

// RunTick performs one cycle: spawn check, advance and render, then a
// selection window when no word is selected and a typing window when one is.
func (s *Session) RunTick() error {
	if !s.running {
		return nil
	}
	now, err := s.now()
	if err != nil {
		return err
	}
	if s.live.len() == 0 || now-s.lastSpawn > s.NewWordPause() {
		s.spawn(now)
	}
	if err := s.advance(); err != nil {
		return err
	}
	if s.selected == nil {
		if err := s.pollWindow(s.selectKey); err != nil {
			return err
		}
		if s.selected == nil || !s.running {
			return nil
		}
	}
	return s.pollWindow(s.typeKey)
}

func (s *Session) now() (time.Duration, error) {
	now, err := s.clock.Now()
	if err != nil {
		return 0, fmt.Errorf("read session clock: %w", err)
	}
	s.lastNow = now
	return now, nil
}

func (s *Session) spawn(now time.Duration) {
	text := s.picker.PickWord(s.words, s.weights.Weight)
	if text == "" {
		return
	}
	_, cols := s.surface.Size()
	maxCol := cols - runewidth.StringWidth(text) - 1
	if maxCol < 0 {
		maxCol = 0
	}
	col := s.picker.PickColumn(maxCol, s.live.columnTaken)
	s.live.add(NewWord(text, s.weights.Weight(text), col, s.tracker))
	s.lastSpawn = now
}

func (s *Session) advance() error {
	now, err := s.now()
	if err != nil {
		return err
	}
	rows, _ := s.surface.Size()
	bottom := rows - 1
	for _, w := range s.live.words() {
		w.Clear(s.surface)
		w.row++
		w.Draw(s.surface)
		if w.row >= bottom {
			s.expire(w, now)
		}
	}
	s.surface.Refresh()
	return nil
}

func (s *Session) expire(w *Word, now time.Duration) {
	w.Clear(s.surface)
	weight := w.Resolve(now)
	s.weights.Set(w.text, weight)
	s.tracker.RecordMiss()
	s.live.remove(w)
	if s.selected == w {
		s.selected = nil
	}
	s.emit(Resolution{Word: w.text, Completed: false, Weight: weight})
}

func (s *Session) complete(w *Word, weight float64) {
	w.Clear(s.surface)
	s.weights.Set(w.text, weight)
	s.live.remove(w)
	if s.selected == w {
		s.selected = nil
	}
	s.surface.ShowStatus(s.tracker.status())
	s.surface.Refresh()
	s.emit(Resolution{Word: w.text, Completed: true, Weight: weight})
}

func (s *Session) emit(r Resolution) {
	if s.onResolve != nil {
		s.onResolve(r)
	}
}

// pollWindow feeds keys to handle for up to Delay of game time. It returns
// early when handle reports the window is finished or the session stops.
func (s *Session) pollWindow(handle func(key rune, now time.Duration) bool) error {
	start, err := s.now()
	if err != nil {
		return err
	}
	for s.running {
		now, err := s.now()
		if err != nil {
			return err
		}
		remaining := s.Delay() - (now - start)
		if remaining <= 0 {
			return nil
		}
		wait := remaining
		if wait > s.pollInterval {
			wait = s.pollInterval
		}
		key, ok := s.surface.PollKey(wait)
		if !ok {
			continue
		}
		if key == KeyEscape {
			if err := s.handOff(); err != nil {
				return err
			}
			continue
		}
		now, err = s.now()
		if err != nil {
			return err
		}
		if handle(key, now) {
			return nil
		}
	}
	return nil
}

// selectKey picks the earliest spawned word expecting key and gives it the key.
func (s *Session) selectKey(key rune, now time.Duration) bool {
	w := s.live.firstExpecting(key)
	if w == nil {
		return false
	}
	s.selected = w
	outcome, weight := w.Submit(key, now)
	s.tracker.RecordKey()
	if outcome == Resolved {
		s.complete(w, weight)
		return true
	}
	w.Draw(s.surface)
	s.surface.Refresh()
	return true
}

func (s *Session) typeKey(key rune, now time.Duration) bool {
	w := s.selected
	if w == nil {
		return true
	}
	outcome, weight := w.Submit(key, now)
	switch outcome {
	case Rejected:
		s.tracker.RecordMistype()
		return false
	case Pending:
		s.tracker.RecordKey()
		w.Draw(s.surface)
		s.surface.Refresh()
		return false
	default:
		s.tracker.RecordKey()
		s.complete(w, weight)
		return true
	}
}

func (s *Session) handOff() error {
	s.clock.Pause()
	choice := MenuQuit
	var err error
	if s.menu != nil {
		choice, err = s.menu.Open(s.Summary())
	}
	s.clock.Unpause()
	if err != nil {
		return fmt.Errorf("menu: %w", err)
	}
	if choice == MenuQuit {
		s.running = false
		return nil
	}
	s.redraw()
	return nil
}

func (s *Session) redraw() {
	for _, w := range s.live.items {
		w.Draw(s.surface)
	}
	s.surface.ShowStatus(s.tracker.status())
	s.surface.Refresh()
}

func (w *Word) state() WordState {
	return WordState{Text: w.text, Typed: string(w.typed), Row: w.row, Col: w.col}
}
