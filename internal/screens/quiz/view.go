package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/kquiz/internal/game"
	"github.com/abhisek/kquiz/internal/ui/theme"
)

func (s *QuizScreen) View(width, height int) string {
	switch s.session.Phase {
	case game.PhaseLoading:
		return s.renderLoading(width)
	case game.PhasePresenting:
		return s.renderQuestion(width)
	case game.PhaseAnswered:
		return s.renderResult(width)
	case game.PhaseFailed:
		return s.renderFailed(width)
	}
	return ""
}

func (s *QuizScreen) renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("\n\n%s Cueing up the next question...", s.spin.View()))
}

// renderInfoLine renders the category name and running tally above the question.
func (s *QuizScreen) renderInfoLine(width int) string {
	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render("  " + s.mode.Title())

	infoRight := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Q %d  %s %d",
			s.session.TotalQuestions+1,
			lipgloss.NewStyle().Foreground(theme.Success).Render("✔"),
			s.session.TotalCorrect,
		))

	infoLine := infoLeft
	rightPad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4
	if rightPad > 0 {
		infoLine += strings.Repeat(" ", rightPad) + infoRight
	}

	return infoLine + "\n" +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0)))
}

func (s *QuizScreen) renderQuestion(width int) string {
	q := s.session.Current
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	if q.Details != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Italic(true).
			Render(q.Details))
		b.WriteString("\n\n")
	}

	block := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))

	return b.String()
}

func (s *QuizScreen) renderResult(width int) string {
	q := s.session.Current
	if q == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(s.renderInfoLine(width))
	b.WriteString("\n\n")

	block := lipgloss.NewStyle().
		Width(min(width-8, 70)).
		Render(s.choice.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, block))
	b.WriteString("\n")

	if s.session.Correct {
		verdict := fmt.Sprintf("Correct!  +%d pts", s.session.LastAward)
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(verdict))
		if s.session.Streak > 1 {
			b.WriteString("\n")
			b.WriteString(lipgloss.NewStyle().
				Width(width).
				Align(lipgloss.Center).
				Render(theme.StreakBadge.Render(fmt.Sprintf("🔥 x%d streak", s.session.Streak))))
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Correct answer: %s", q.Answer)))
	}

	b.WriteString("\n\n")

	if q.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(q.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter for the next question"))

	return b.String()
}

func (s *QuizScreen) renderFailed(width int) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Bold(true).
		Render("Couldn't fetch a question"))
	b.WriteString("\n")

	if err := s.session.LastErr; err != nil {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(err.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press R to retry or Esc for the menu"))

	return b.String()
}
