package stats

import (
	"context"

	"github.com/verte-zerg/wordrain/internal/model"
	"github.com/verte-zerg/wordrain/internal/store"
)

const defaultTopCount = 10

// Report contains precomputed data for score rendering.
type Report struct {
	Games   []model.ScoreRecord
	Best    []model.ScoreRecord
	Summary Summary
	Trend   []float64
}

// BuildReport loads games matching cfg and the best games of the same user.
func BuildReport(ctx context.Context, st *store.Store, cfg model.ScoresConfig, window int) (Report, error) {
	games, err := st.ListScores(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	best, err := st.TopScores(ctx, cfg.User, defaultTopCount)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Games:   games,
		Best:    best,
		Summary: Summarize(games),
		Trend:   MovingAverage(ScoreSeries(games), window),
	}, nil
}
