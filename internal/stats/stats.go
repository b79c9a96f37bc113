// Package stats contains score calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/wordrain/internal/model"
)

const sparkChars = " .:-=+*#%@"

// Widest user and word cells in the plain tables.
const (
	maxUserWidth = 16
	maxWordWidth = 24
)

// Summary aggregates a list of games.
type Summary struct {
	Games       int
	BestScore   float64
	AvgScore    float64
	BestWPM     float64
	AvgWPM      float64
	BestLevel   int
	AvgAccuracy float64
	Words       int
	Misses      int
}

// Summarize aggregates games.
func Summarize(records []model.ScoreRecord) Summary {
	var sum Summary
	if len(records) == 0 {
		return sum
	}
	var totalScore, totalWPM, totalAcc float64
	for _, r := range records {
		totalScore += r.Score
		totalWPM += r.WPM
		totalAcc += r.Accuracy
		sum.Words += r.Words
		sum.Misses += r.Misses
		if r.Score > sum.BestScore {
			sum.BestScore = r.Score
		}
		if r.WPM > sum.BestWPM {
			sum.BestWPM = r.WPM
		}
		if r.Level > sum.BestLevel {
			sum.BestLevel = r.Level
		}
	}
	count := float64(len(records))
	sum.Games = len(records)
	sum.AvgScore = totalScore / count
	sum.AvgWPM = totalWPM / count
	sum.AvgAccuracy = totalAcc / count
	return sum
}

// ScoreSeries extracts the score of each game.
func ScoreSeries(records []model.ScoreRecord) []float64 {
	out := make([]float64, len(records))
	for i, r := range records {
		out[i] = r.Score
	}
	return out
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		minVal = math.Min(minVal, v)
		maxVal = math.Max(maxVal, v)
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderSummary prints an aggregate block for games.
func RenderSummary(w io.Writer, records []model.ScoreRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	sum := Summarize(records)
	lines := []string{
		"Summary",
		fmt.Sprintf("Games: %d", sum.Games),
		fmt.Sprintf("Best score: %.0f", sum.BestScore),
		fmt.Sprintf("Avg score: %.0f", sum.AvgScore),
		fmt.Sprintf("Best WPM: %.1f", sum.BestWPM),
		fmt.Sprintf("Avg WPM: %.1f", sum.AvgWPM),
		fmt.Sprintf("Best level: %d", sum.BestLevel),
		fmt.Sprintf("Avg accuracy: %.1f%%", sum.AvgAccuracy*100),
		fmt.Sprintf("Trend: %s", Sparkline(ScoreSeries(records))),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ScoreRows formats games as table cells.
func ScoreRows(records []model.ScoreRecord) ([]string, [][]string) {
	headers := []string{"Date", "User", "Lang", "Score", "WPM", "Level", "Words", "Missed", "Accuracy"}
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.PlayedAt.Local().Format("2006-01-02 15:04"),
			r.User,
			r.Lang,
			fmt.Sprintf("%.0f", r.Score),
			fmt.Sprintf("%.1f", r.WPM),
			fmt.Sprintf("%d", r.Level),
			fmt.Sprintf("%d", r.Words),
			fmt.Sprintf("%d", r.Misses),
			fmt.Sprintf("%.1f%%", r.Accuracy*100),
		})
	}
	return headers, rows
}

// RenderScoreTable prints one line per game.
func RenderScoreTable(w io.Writer, records []model.ScoreRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No games found.")
		return err
	}
	headers, rows := ScoreRows(records)
	cols := make([]column, len(headers))
	for i, h := range headers {
		cols[i] = column{Header: h, Right: i >= 3}
	}
	cols[1].Max = maxUserWidth
	for _, line := range table(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderWeightTable prints practice weights, heaviest first as given.
func RenderWeightTable(w io.Writer, weights []model.WordWeight) error {
	if len(weights) == 0 {
		_, err := fmt.Fprintln(w, "No practice weights saved yet.")
		return err
	}
	maxWeight := 0.0
	for _, ww := range weights {
		maxWeight = math.Max(maxWeight, ww.Weight)
	}
	rows := make([][]string, 0, len(weights))
	for _, ww := range weights {
		bar := 0
		if maxWeight > 0 {
			bar = int(math.Round(ww.Weight / maxWeight * 20))
		}
		rows = append(rows, []string{ww.Word, fmt.Sprintf("%.1f", ww.Weight), strings.Repeat("#", bar)})
	}
	cols := []column{{Header: "Word", Max: maxWordWidth}, {Header: "Weight", Right: true}, {}}
	for _, line := range table(cols, rows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
