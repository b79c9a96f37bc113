// Package model defines shared data structures.
package model

import "time"

// Config defines game settings.
type Config struct {
	Lang         string
	User         string
	WordListPath string
	Delay        float64
	SpawnPause   float64
	Sound        bool
}

// ScoresConfig defines filters for high-score listings.
type ScoresConfig struct {
	User  string
	Lang  string
	Since *time.Time
	Last  int
}

// ScoreRecord captures a finished game.
type ScoreRecord struct {
	ID         int64
	User       string
	PlayedAt   time.Time
	Lang       string
	Score      float64
	WPM        float64
	Level      int
	Words      int
	Misses     int
	Accuracy   float64
	DurationMs int64
}

// WordWeight is a stored practice weight for a word.
type WordWeight struct {
	Word   string
	Weight float64
}
