// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/wordrain/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for high scores and practice weights.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY,
			user TEXT NOT NULL,
			played_at TEXT NOT NULL,
			lang TEXT NOT NULL,
			score REAL NOT NULL,
			wpm REAL NOT NULL,
			level INTEGER NOT NULL,
			words INTEGER NOT NULL,
			misses INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS word_weights (
			lang TEXT NOT NULL,
			word TEXT NOT NULL,
			weight REAL NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (lang, word)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_played_at ON scores(played_at);`,
		`CREATE INDEX IF NOT EXISTS idx_scores_user ON scores(user);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertScore stores a finished game.
func (s *Store) InsertScore(ctx context.Context, rec model.ScoreRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO scores (user, played_at, lang, score, wpm, level, words, misses, accuracy, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.User,
		rec.PlayedAt.Format(time.RFC3339Nano),
		rec.Lang,
		rec.Score,
		rec.WPM,
		rec.Level,
		rec.Words,
		rec.Misses,
		rec.Accuracy,
		rec.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListScores returns games matching cfg in play order.
func (s *Store) ListScores(ctx context.Context, cfg model.ScoresConfig) ([]model.ScoreRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.User != "" {
		clauses = append(clauses, "user = ?")
		args = append(args, cfg.User)
	}
	if cfg.Lang != "" {
		clauses = append(clauses, "lang = ?")
		args = append(args, cfg.Lang)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "played_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, user, played_at, lang, score, wpm, level, words, misses, accuracy, duration_ms
		FROM scores
		WHERE %s
		ORDER BY played_at ASC, id ASC`, strings.Join(clauses, " AND "))
	records, err := s.queryScores(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(records) > cfg.Last {
		records = records[len(records)-cfg.Last:]
	}
	return records, nil
}

// TopScores returns the best games, highest score first. An empty user
// matches every player.
func (s *Store) TopScores(ctx context.Context, user string, limit int) ([]model.ScoreRecord, error) {
	if limit <= 0 {
		return nil, nil
	}
	return s.queryScores(ctx, `SELECT id, user, played_at, lang, score, wpm, level, words, misses, accuracy, duration_ms
		FROM scores
		WHERE (? = '' OR user = ?)
		ORDER BY score DESC, played_at ASC
		LIMIT ?`, user, user, limit)
}

func (s *Store) queryScores(ctx context.Context, query string, args ...any) ([]model.ScoreRecord, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.ScoreRecord
	for rows.Next() {
		var rec model.ScoreRecord
		var playedAt string
		if err := rows.Scan(&rec.ID, &rec.User, &playedAt, &rec.Lang, &rec.Score, &rec.WPM, &rec.Level, &rec.Words, &rec.Misses, &rec.Accuracy, &rec.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, playedAt)
		if err != nil {
			return nil, err
		}
		rec.PlayedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// LoadWeights returns the saved spawn weights for a language.
func (s *Store) LoadWeights(ctx context.Context, lang string) (map[string]float64, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT word, weight FROM word_weights WHERE lang = ?`, lang)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	result := map[string]float64{}
	for rows.Next() {
		var word string
		var weight float64
		if err := rows.Scan(&word, &weight); err != nil {
			return nil, err
		}
		result[word] = weight
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// SaveWeights upserts spawn weights for a language in one transaction.
func (s *Store) SaveWeights(ctx context.Context, lang string, weights map[string]float64) (err error) {
	if len(weights) == 0 {
		return nil
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO word_weights (lang, word, weight, updated_at) VALUES (?, ?, ?, ?)
		 ON CONFLICT(lang, word) DO UPDATE SET weight = excluded.weight, updated_at = excluded.updated_at`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	updatedAt := time.Now().UTC().Format(time.RFC3339Nano)
	for word, weight := range weights {
		if _, err = stmt.ExecContext(ctx, lang, word, weight, updatedAt); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// HeaviestWords returns the words with the highest weights for a language.
func (s *Store) HeaviestWords(ctx context.Context, lang string, limit int) ([]model.WordWeight, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, weight FROM word_weights WHERE lang = ? ORDER BY weight DESC, word ASC LIMIT ?`, lang, limit)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.WordWeight
	for rows.Next() {
		var ww model.WordWeight
		if err := rows.Scan(&ww.Word, &ww.Weight); err != nil {
			return nil, err
		}
		result = append(result, ww)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
