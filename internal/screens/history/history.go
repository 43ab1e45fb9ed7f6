package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kquiz/internal/router"
	"github.com/abhisek/kquiz/internal/screen"
	"github.com/abhisek/kquiz/internal/store"
	"github.com/abhisek/kquiz/internal/ui/layout"
	"github.com/abhisek/kquiz/internal/ui/theme"
)

type historyLoadedMsg struct {
	Answers []store.AnswerEventRecord
	Err     error
}

// HistoryScreen displays the answers given so far in this run.
type HistoryScreen struct {
	eventRepo store.EventRepo
	runID     string
	answers   []store.AnswerEventRecord
	selected  int
	expanded  map[int]bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(eventRepo store.EventRepo, runID string) *HistoryScreen {
	return &HistoryScreen{
		eventRepo: eventRepo,
		runID:     runID,
		expanded:  make(map[int]bool),
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return func() tea.Msg {
		if s.eventRepo == nil {
			return historyLoadedMsg{}
		}
		answers, err := s.eventRepo.QueryAnswers(context.Background(), store.QueryOpts{RunID: s.runID})
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		return historyLoadedMsg{Answers: answers}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.answers = msg.Answers
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
			return s, nil
		case "down", "j":
			if s.selected < len(s.answers)-1 {
				s.selected++
			}
			return s, nil
		case "enter":
			s.expanded[s.selected] = !s.expanded[s.selected]
			return s, nil
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.answers) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  Nothing answered yet. Pick a quiz!")
	}

	var b strings.Builder
	b.WriteString("\n")

	for i, ans := range s.answers {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		verdict := lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		if !ans.Correct {
			verdict = lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}

		question := ans.QuestionText
		maxLen := width - 24
		if maxLen > 0 && len(question) > maxLen {
			question = question[:maxLen-1] + "…"
		}

		line := fmt.Sprintf("%s%s %-9s %s", prefix, verdict, ans.Mode, question)
		if i == s.selected {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")

		if s.expanded[i] {
			detail := fmt.Sprintf("     answered %q", ans.PlayerAnswer)
			if !ans.Correct {
				detail += fmt.Sprintf(", correct was %q", ans.CorrectAnswer)
			}
			if ans.ScoreDelta > 0 {
				detail += fmt.Sprintf("  (+%d pts)", ans.ScoreDelta)
			}
			detail += fmt.Sprintf("  %.1fs", float64(ans.TimeMs)/1000)
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail))
			b.WriteString("\n")
		}
	}

	tally := 0
	for _, ans := range s.answers {
		if ans.Correct {
			tally++
		}
	}
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("  %d/%d correct this run", tally, len(s.answers))))

	return b.String()
}
