// Package main provides the CLI entrypoint for wordrain.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordrain/internal/config"
	"github.com/verte-zerg/wordrain/internal/model"
	"github.com/verte-zerg/wordrain/internal/scoresui"
	"github.com/verte-zerg/wordrain/internal/stats"
	"github.com/verte-zerg/wordrain/internal/store"
	"github.com/verte-zerg/wordrain/internal/wordlist"
)

const (
	defaultLang        = "en"
	defaultDelay       = 0.5
	defaultSpawnPause  = 3.0
	defaultTrendWindow = 5
	defaultWeightsTop  = 20
)

var (
	playLang       string
	playUser       string
	playWordList   string
	playDelay      float64
	playSpawnPause float64
	playSound      bool

	scoresUser   string
	scoresLang   string
	scoresSince  string
	scoresLast   int
	scoresWindow int
	scoresPlain  bool

	weightsLang string
	weightsTop  int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordrain",
		Short:         "Falling-word typing game",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playLang, "lang", defaultLang, "language code")
	rootCmd.Flags().StringVar(&playUser, "user", defaultUser(), "player name for high scores")
	rootCmd.Flags().StringVar(&playWordList, "wordlist", "", "path to a word list (one word per line)")
	rootCmd.Flags().Float64Var(&playDelay, "delay", defaultDelay, "seconds between word steps at level 0")
	rootCmd.Flags().Float64Var(&playSpawnPause, "spawn-pause", defaultSpawnPause, "seconds between new words at level 0")
	rootCmd.Flags().BoolVar(&playSound, "sound", false, "play a tone for finished and missed words")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newWeightsCmd())

	return rootCmd
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available word list languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	langs, err := wordlist.Languages(config.DefaultWordListDir())
	if err != nil {
		return err
	}
	for _, lang := range langs {
		line := lang
		if lang == wordlist.BuiltinLang {
			if _, err := os.Stat(config.DefaultWordListPath(lang)); os.IsNotExist(err) {
				line += " (builtin)"
			}
		}
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show high scores",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().StringVar(&scoresUser, "user", "", "player filter")
	cmd.Flags().StringVar(&scoresLang, "lang", "", "language filter")
	cmd.Flags().StringVar(&scoresSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&scoresLast, "last", 0, "limit to last N games")
	cmd.Flags().IntVar(&scoresWindow, "window", defaultTrendWindow, "moving average window for the score trend")
	cmd.Flags().BoolVar(&scoresPlain, "plain", false, "print a plain table instead of the interactive view")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := scoresConfig()
	if err != nil {
		return err
	}
	if scoresWindow < 1 {
		return fmt.Errorf("--window must be >= 1")
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

	if scoresPlain || !term.IsTerminal(int(os.Stdout.Fd())) {
		report, err := stats.BuildReport(context.Background(), st, cfg, scoresWindow)
		if err != nil {
			return fmt.Errorf("failed to load scores: %w", err)
		}
		out := cmd.OutOrStdout()
		if err := stats.RenderSummary(out, report.Games); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		if len(report.Games) == 0 {
			return nil
		}
		if err := stats.RenderScoreTable(out, report.Games); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	ui := scoresui.NewModel(scoresui.StoreLoader(st), cfg, scoresWindow)
	program := tea.NewProgram(ui, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run scores TUI: %w", err)
	}
	return nil
}

func scoresConfig() (model.ScoresConfig, error) {
	var since *time.Time
	if scoresSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", scoresSince, time.Local)
		if err != nil {
			return model.ScoresConfig{}, fmt.Errorf("invalid --since value: %w", err)
		}
		since = &parsed
	}
	if scoresLast < 0 {
		return model.ScoresConfig{}, fmt.Errorf("--last must be >= 0")
	}
	return model.ScoresConfig{
		User:  scoresUser,
		Lang:  scoresLang,
		Since: since,
		Last:  scoresLast,
	}, nil
}

func newWeightsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weights",
		Short: "Show the words that need the most practice",
		Args:  cobra.NoArgs,
		RunE:  runWeightsCmd,
	}
	cmd.Flags().StringVar(&weightsLang, "lang", defaultLang, "language code")
	cmd.Flags().IntVar(&weightsTop, "top", defaultWeightsTop, "number of words to show")
	return cmd
}

func runWeightsCmd(cmd *cobra.Command, _ []string) error {
	if weightsTop <= 0 {
		return fmt.Errorf("--top must be > 0")
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

	weights, err := st.HeaviestWords(context.Background(), weightsLang, weightsTop)
	if err != nil {
		return fmt.Errorf("failed to load weights: %w", err)
	}
	if err := stats.RenderWeightTable(cmd.OutOrStdout(), weights); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordrain configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# lang = %q               # Language code (default %q)
# user = %q               # Player name for high scores
# wordlist = ""           # Word list path; empty uses %s
# delay = %.1f            # Seconds between word steps at level 0
# spawn-pause = %.1f      # Seconds between new words at level 0
# sound = false           # Play a tone for finished and missed words
`,
		defaultLang,
		defaultLang,
		defaultUser(),
		filepath.Join(config.DefaultWordListDir(), "<lang>.txt"),
		defaultDelay,
		defaultSpawnPause,
	)
}

func defaultUser() string {
	if u := strings.TrimSpace(os.Getenv("USER")); u != "" {
		return u
	}
	return "player"
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
