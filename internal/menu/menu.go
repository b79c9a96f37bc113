// Package menu provides the Bubble Tea pause menu shown on escape.
package menu

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/wordrain/internal/game"
	"github.com/verte-zerg/wordrain/internal/model"
)

const bestCount = 10

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	optionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	boxStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the pause menu.
type Model struct {
	summary game.Summary
	user    string
	best    table.Model
	hasBest bool
	errMsg  string
	choice  game.MenuChoice

	width  int
	height int
}

// NewModel builds a menu for the current game and the player's best games.
func NewModel(summary game.Summary, user string, best []model.ScoreRecord, errMsg string) *Model {
	return &Model{
		summary: summary,
		user:    user,
		best:    buildBestTable(best),
		hasBest: len(best) > 0,
		errMsg:  errMsg,
		choice:  game.MenuResume,
	}
}

// Choice is what the player picked. It is MenuResume until q is pressed.
func (m *Model) Choice() game.MenuChoice {
	return m.choice
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "r", "esc":
			m.choice = game.MenuResume
			return m, tea.Quit
		case "q", "ctrl+c":
			m.choice = game.MenuQuit
			return m, tea.Quit
		}
		var cmd tea.Cmd
		m.best, cmd = m.best.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	lines := []string{
		titleStyle.Render("Paused"),
		"",
		keyStyle.Render("r") + " " + optionStyle.Render("Return to Game"),
		keyStyle.Render("q") + " " + optionStyle.Render("Quit"),
		"",
		renderSummary(m.summary),
		"",
	}
	who := m.user
	if who == "" {
		who = "everyone"
	}
	lines = append(lines, titleStyle.Render("High scores for "+who))
	switch {
	case m.errMsg != "":
		lines = append(lines, errorStyle.Render(m.errMsg))
	case !m.hasBest:
		lines = append(lines, optionStyle.Render("No games saved yet."))
	default:
		lines = append(lines, m.best.View())
	}
	lines = append(lines, "", footerStyle.Render("r/esc: resume  q: quit  up/down: scroll"))
	box := boxStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

func renderSummary(s game.Summary) string {
	return fmt.Sprintf("Score %.0f  Level %d  %.1f WPM  %d words  %d missed  %.1f%% accuracy",
		s.Score, s.Level, s.WPM, s.Words, s.Misses, s.Accuracy*100)
}

func buildBestTable(best []model.ScoreRecord) table.Model {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "WPM", Width: 6},
		{Title: "Level", Width: 5},
	}
	rows := make([]table.Row, 0, len(best))
	for _, r := range best {
		rows = append(rows, table.Row{
			r.PlayedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.0f", r.Score),
			fmt.Sprintf("%.1f", r.WPM),
			fmt.Sprintf("%d", r.Level),
		})
	}
	height := len(rows)
	if height < 1 {
		height = 1
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(height),
		table.WithFocused(true),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	t.SetStyles(styles)
	return t
}

// Terminal is the screen the menu borrows while it runs.
type Terminal interface {
	Suspend() error
	Resume() error
}

// ScoreSource provides the best games shown in the menu.
type ScoreSource interface {
	TopScores(ctx context.Context, user string, limit int) ([]model.ScoreRecord, error)
}

// Runner implements game.Menu by suspending the game screen and running
// the Bubble Tea menu in its place.
type Runner struct {
	term    Terminal
	scores  ScoreSource
	user    string
	timeout time.Duration
	opts    []tea.ProgramOption
}

// NewRunner returns a menu runner. scores may be nil.
func NewRunner(term Terminal, scores ScoreSource, user string, opts ...tea.ProgramOption) *Runner {
	return &Runner{
		term:    term,
		scores:  scores,
		user:    user,
		timeout: 2 * time.Second,
		opts:    opts,
	}
}

// Open shows the menu and blocks until the player resumes or quits.
func (r *Runner) Open(summary game.Summary) (game.MenuChoice, error) {
	best, errMsg := r.loadBest()
	if err := r.term.Suspend(); err != nil {
		return game.MenuResume, fmt.Errorf("failed to suspend screen: %w", err)
	}
	m := NewModel(summary, r.user, best, errMsg)
	opts := append([]tea.ProgramOption{tea.WithAltScreen()}, r.opts...)
	final, runErr := tea.NewProgram(m, opts...).Run()
	if err := r.term.Resume(); err != nil {
		return game.MenuQuit, fmt.Errorf("failed to resume screen: %w", err)
	}
	if runErr != nil {
		return game.MenuQuit, fmt.Errorf("failed to run menu: %w", runErr)
	}
	if fm, ok := final.(*Model); ok {
		return fm.Choice(), nil
	}
	return m.Choice(), nil
}

func (r *Runner) loadBest() ([]model.ScoreRecord, string) {
	if r.scores == nil {
		return nil, ""
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	best, err := r.scores.TopScores(ctx, r.user, bestCount)
	if err != nil {
		return nil, fmt.Sprintf("failed to load high scores: %v", err)
	}
	return best, ""
}
