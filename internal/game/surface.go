// Package game implements the falling-word session engine.
package game

import "time"

// KeyEscape is the reserved key that hands control to the menu.
const KeyEscape rune = 27

// Style selects how a run of text is drawn.
type Style int

const (
	// StyleUntyped is used for characters still to be typed.
	StyleUntyped Style = iota
	// StyleTyped is used for the typed prefix of a word.
	StyleTyped
)

// Status is the header information shown above the playfield.
type Status struct {
	Score float64
	WPM   float64
	Level int
}

// Surface is the character grid the session draws on and reads keys from.
// Rows and columns address the playfield only.
type Surface interface {
	Size() (rows, cols int)
	DrawText(row, col int, text string, style Style)
	ClearRegion(row, col, length int)
	Refresh()
	// PollKey waits up to timeout for a key press.
	PollKey(timeout time.Duration) (rune, bool)
	ShowStatus(status Status)
}

// MenuChoice is the outcome of a menu hand-off.
type MenuChoice int

const (
	// MenuResume returns to the game.
	MenuResume MenuChoice = iota
	// MenuQuit ends the session.
	MenuQuit
)

// Menu takes over the terminal while the session is paused.
type Menu interface {
	Open(summary Summary) (MenuChoice, error)
}
