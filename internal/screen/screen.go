// Package screen draws the game on a real terminal through tcell.
package screen

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/wordrain/internal/game"
)

// headerRows is the status line plus the rule below it.
const headerRows = 2

const statusHint = "   ESC for menu"

var (
	styleUntyped = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleTyped   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleStatus  = tcell.StyleDefault.Reverse(true)
	styleRule    = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

// Screen implements game.Surface on top of a tcell screen. The playfield
// starts below the status line.
type Screen struct {
	tty       tcell.Screen
	events    chan tcell.Event
	quit      chan struct{}
	interrupt chan struct{}
	once      sync.Once
	status    game.Status
}

// Open initializes the terminal and returns a ready screen.
func Open() (*Screen, error) {
	tty, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := tty.Init(); err != nil {
		return nil, fmt.Errorf("failed to init screen: %w", err)
	}
	return New(tty), nil
}

// New wraps an initialized tcell screen and starts reading its events.
func New(tty tcell.Screen) *Screen {
	tty.HideCursor()
	tty.Clear()
	s := &Screen{
		tty:       tty,
		events:    make(chan tcell.Event, 100),
		quit:      make(chan struct{}),
		interrupt: make(chan struct{}),
	}
	go s.pump()
	s.drawHeader()
	return s
}

func (s *Screen) pump() {
	for {
		ev := s.tty.PollEvent()
		if ev == nil {
			return
		}
		select {
		case s.events <- ev:
		case <-s.quit:
			return
		}
	}
}

// Interrupted is closed when the player presses Ctrl+C. The key itself is
// not delivered to the game.
func (s *Screen) Interrupted() <-chan struct{} {
	return s.interrupt
}

// Size returns the playfield size.
func (s *Screen) Size() (rows, cols int) {
	w, h := s.tty.Size()
	rows = h - headerRows
	if rows < 0 {
		rows = 0
	}
	return rows, w
}

// DrawText writes text at a playfield position, clipped to the screen.
func (s *Screen) DrawText(row, col int, text string, style game.Style) {
	st := styleUntyped
	if style == game.StyleTyped {
		st = styleTyped
	}
	s.put(row+headerRows, col, text, st)
}

// ClearRegion blanks length cells starting at a playfield position.
func (s *Screen) ClearRegion(row, col, length int) {
	if length <= 0 {
		return
	}
	s.put(row+headerRows, col, strings.Repeat(" ", length), tcell.StyleDefault)
}

// Refresh flushes pending changes to the terminal.
func (s *Screen) Refresh() {
	s.tty.Show()
}

// PollKey waits up to timeout for a printable key or escape. Other events
// are consumed while waiting.
func (s *Screen) PollKey(timeout time.Duration) (rune, bool) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	for {
		select {
		case ev := <-s.events:
			if key, ok := s.translate(ev); ok {
				return key, true
			}
		case <-timer.C:
			return 0, false
		}
	}
}

func (s *Screen) translate(ev tcell.Event) (rune, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape:
			return game.KeyEscape, true
		case tcell.KeyCtrlC:
			s.once.Do(func() { close(s.interrupt) })
		case tcell.KeyRune:
			return ev.Rune(), true
		}
	case *tcell.EventResize:
		s.tty.Sync()
		s.drawHeader()
		s.tty.Show()
	}
	return 0, false
}

// ShowStatus redraws the status line.
func (s *Screen) ShowStatus(status game.Status) {
	s.status = status
	s.drawHeader()
}

// Suspend hands the terminal to another program.
func (s *Screen) Suspend() error {
	return s.tty.Suspend()
}

// Resume takes the terminal back and repaints the header.
func (s *Screen) Resume() error {
	if err := s.tty.Resume(); err != nil {
		return err
	}
	s.tty.HideCursor()
	s.tty.Clear()
	s.drawHeader()
	s.tty.Show()
	return nil
}

// Close restores the terminal.
func (s *Screen) Close() {
	close(s.quit)
	s.tty.Fini()
}

func (s *Screen) drawHeader() {
	w, h := s.tty.Size()
	if h < 1 {
		return
	}
	right := fmt.Sprintf("WPM: %5.1f  Level: %d  Current Score: %8.0f ", s.status.WPM, s.status.Level, s.status.Score)
	gap := w - runewidth.StringWidth(statusHint) - runewidth.StringWidth(right)
	line := statusHint
	if gap > 0 {
		line += strings.Repeat(" ", gap) + right
	} else {
		line += " " + right
	}
	line = runewidth.Truncate(line, w, "")
	line += strings.Repeat(" ", w-runewidth.StringWidth(line))
	s.put(0, 0, line, styleStatus)
	if h > 1 {
		s.put(1, 0, strings.Repeat("─", w), styleRule)
	}
}

func (s *Screen) put(y, x int, text string, style tcell.Style) {
	w, h := s.tty.Size()
	if y < 0 || y >= h {
		return
	}
	for _, r := range text {
		cw := runewidth.RuneWidth(r)
		if cw == 0 {
			continue
		}
		if x >= 0 && x+cw <= w {
			s.tty.SetContent(x, y, r, nil, style)
		}
		x += cw
	}
}
