package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordrain/internal/config"
	"github.com/verte-zerg/wordrain/internal/game"
	"github.com/verte-zerg/wordrain/internal/menu"
	"github.com/verte-zerg/wordrain/internal/model"
	"github.com/verte-zerg/wordrain/internal/screen"
	"github.com/verte-zerg/wordrain/internal/sound"
	"github.com/verte-zerg/wordrain/internal/store"
	"github.com/verte-zerg/wordrain/internal/wordlist"
)

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyStringConfig(cmd, "lang", &playLang, fileCfg.Game.Lang)
	applyStringConfig(cmd, "user", &playUser, fileCfg.Game.User)
	applyStringConfig(cmd, "wordlist", &playWordList, fileCfg.Game.WordList)
	applyFloatConfig(cmd, "delay", &playDelay, fileCfg.Game.Delay)
	applyFloatConfig(cmd, "spawn-pause", &playSpawnPause, fileCfg.Game.SpawnPause)
	applyBoolConfig(cmd, "sound", &playSound, fileCfg.Game.Sound)

	cfg := model.Config{
		Lang:         strings.ToLower(strings.TrimSpace(playLang)),
		User:         strings.TrimSpace(playUser),
		WordListPath: playWordList,
		Delay:        playDelay,
		SpawnPause:   playSpawnPause,
		Sound:        playSound,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	words, src, err := wordlist.Resolve(cfg.Lang, cfg.WordListPath, config.DefaultWordListDir())
	if err != nil {
		return wordListLoadError(cfg, err)
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The screen owns the terminal until the game ends; diagnostics wait.
	var notes []string
	weights := game.NewWeightTable()
	if stored, err := st.LoadWeights(ctx, cfg.Lang); err != nil {
		notes = append(notes, fmt.Sprintf("failed to load practice weights: %v", err))
	} else {
		weights.Load(stored)
	}

	player, err := sound.New(cfg.Sound)
	if err != nil {
		notes = append(notes, fmt.Sprintf("sound disabled: %v", err))
	}
	defer player.Close()

	scr, err := screen.Open()
	if err != nil {
		return err
	}
	go func() {
		select {
		case <-scr.Interrupted():
			stop()
		case <-ctx.Done():
		}
	}()

	session, err := game.NewSession(vocabulary(words), scr, game.Options{
		Weights:             weights,
		Menu:                menu.NewRunner(scr, st, cfg.User),
		InitialDelay:        seconds(cfg.Delay),
		InitialNewWordPause: seconds(cfg.SpawnPause),
		OnResolve: func(r game.Resolution) {
			if r.Completed {
				player.Hit()
			} else {
				player.Miss()
			}
		},
	})
	if err != nil {
		scr.Close()
		return fmt.Errorf("failed to start game: %w", err)
	}

	startedAt := time.Now()
	runErr := session.Run(ctx)
	scr.Close()
	if errors.Is(runErr, context.Canceled) {
		runErr = nil
	}

	for _, note := range notes {
		logErrln(note)
	}

	summary := session.Summary()
	saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := st.SaveWeights(saveCtx, cfg.Lang, session.Weights().Snapshot()); err != nil {
		logErrf("failed to save practice weights: %v\n", err)
	}
	if summary.Words+summary.Misses > 0 {
		rec := model.ScoreRecord{
			User:       cfg.User,
			PlayedAt:   startedAt,
			Lang:       cfg.Lang,
			Score:      summary.Score,
			WPM:        summary.WPM,
			Level:      summary.Level,
			Words:      summary.Words,
			Misses:     summary.Misses,
			Accuracy:   summary.Accuracy,
			DurationMs: summary.Elapsed.Milliseconds(),
		}
		if _, err := st.InsertScore(saveCtx, rec); err != nil {
			logErrf("failed to save score: %v\n", err)
		}
	}
	if err := printSummary(cmd.OutOrStdout(), cfg, src, summary); err != nil {
		logErrf("failed to write summary: %v\n", err)
	}
	if runErr != nil {
		return fmt.Errorf("game stopped: %w", runErr)
	}
	return nil
}

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.User == "" {
		return fmt.Errorf("--user must not be empty")
	}
	if cfg.Delay <= 0 {
		return fmt.Errorf("--delay must be > 0")
	}
	if cfg.SpawnPause <= 0 {
		return fmt.Errorf("--spawn-pause must be > 0")
	}
	return nil
}

func vocabulary(words []string) []game.VocabEntry {
	vocab := make([]game.VocabEntry, len(words))
	for i, w := range words {
		vocab[i] = game.VocabEntry{Word: w, Weight: game.DefaultWeight}
	}
	return vocab
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}

func printSummary(w io.Writer, cfg model.Config, src wordlist.Source, s game.Summary) error {
	lines := []string{
		fmt.Sprintf("%s (%s, words: %s)", cfg.User, cfg.Lang, src),
		fmt.Sprintf("Score: %.0f  Level: %d  WPM: %.1f", s.Score, s.Level, s.WPM),
		fmt.Sprintf("Words: %d  Missed: %d  Accuracy: %.1f%%  Time: %s", s.Words, s.Misses, s.Accuracy*100, s.Elapsed.Round(time.Second)),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func wordListLoadError(cfg model.Config, err error) error {
	lines := []string{fmt.Sprintf("failed to load word list: %v", err)}
	if cfg.WordListPath == "" {
		lines = append(lines,
			fmt.Sprintf("expected word list at: %s", config.DefaultWordListPath(cfg.Lang)),
			fmt.Sprintf("language %q not found", cfg.Lang),
			"Run: wordrain langs",
		)
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
