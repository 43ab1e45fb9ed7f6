package quiz

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/kquiz/internal/game"
	"github.com/abhisek/kquiz/internal/quizgen"
	"github.com/abhisek/kquiz/internal/screen"
	"github.com/abhisek/kquiz/internal/store"
	"github.com/abhisek/kquiz/internal/ui/components"
	"github.com/abhisek/kquiz/internal/ui/layout"
)

// QuizScreen runs one category of questions against the shared session.
type QuizScreen struct {
	session       *game.Session
	generator     quizgen.Generator
	eventRepo     store.EventRepo
	mode          quizgen.Mode
	choice        components.MultiChoice
	spin          components.Spinner
	questionStart time.Time
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New creates a new QuizScreen for the given category.
func New(session *game.Session, generator quizgen.Generator, eventRepo store.EventRepo, mode quizgen.Mode) *QuizScreen {
	return &QuizScreen{
		session:   session,
		generator: generator,
		eventRepo: eventRepo,
		mode:      mode,
		spin:      components.NewSpinner(),
	}
}

func (s *QuizScreen) Init() tea.Cmd {
	return tea.Batch(
		s.startLoad(),
		s.spin.Tick(),
	)
}

func (s *QuizScreen) Title() string {
	return s.mode.Title()
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	switch s.session.Phase {
	case game.PhasePresenting:
		return []layout.KeyHint{
			{Key: "A-D", Description: "Answer"},
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Menu"},
		}
	case game.PhaseAnswered:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next question"},
			{Key: "Esc", Description: "Menu"},
		}
	case game.PhaseFailed:
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "Esc", Description: "Menu"},
		}
	default:
		return []layout.KeyHint{
			{Key: "Esc", Description: "Menu"},
		}
	}
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionReadyMsg:
		return s.handleQuestionReady(msg)

	case spinner.TickMsg:
		if s.session.Phase != game.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// startLoad invalidates any fetch still in flight and kicks off a new
// one. The session token from BeginLoad rides along with the result.
func (s *QuizScreen) startLoad() tea.Cmd {
	token := s.session.BeginLoad(s.mode)
	input := quizgen.GenerateInput{
		Mode:            s.mode,
		RecentQuestions: append([]string(nil), s.session.RecentQuestions(s.mode)...),
	}
	gen := s.generator

	return func() tea.Msg {
		q, err := gen.Generate(context.Background(), input)
		return questionReadyMsg{Token: token, Question: q, Err: err}
	}
}

func (s *QuizScreen) handleQuestionReady(msg questionReadyMsg) (screen.Screen, tea.Cmd) {
	if !s.session.Deliver(msg.Token, msg.Question, msg.Err) {
		return s, nil
	}
	if s.session.Phase != game.PhasePresenting {
		return s, nil
	}

	q := s.session.Current
	correctIndex := 0
	for i, opt := range q.Options {
		if opt == q.Answer {
			correctIndex = i
			break
		}
	}
	s.choice = components.NewMultiChoice(q.Text, q.Options, correctIndex)
	s.questionStart = time.Now()

	return s, nil
}

func (s *QuizScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch s.session.Phase {
	case game.PhasePresenting:
		var cmd tea.Cmd
		s.choice, cmd = s.choice.Update(msg)
		if s.choice.Submitted {
			s.submitAnswer()
		}
		return s, cmd

	case game.PhaseAnswered:
		switch msg.String() {
		case "enter", "n":
			return s, tea.Batch(s.startLoad(), s.spin.Tick())
		}

	case game.PhaseFailed:
		if msg.String() == "r" {
			return s, tea.Batch(s.startLoad(), s.spin.Tick())
		}
	}

	return s, nil
}

// submitAnswer scores the chosen option and journals the result.
func (s *QuizScreen) submitAnswer() {
	q := s.session.Current
	chosen := s.choice.Chosen()
	timeMs := int(time.Since(s.questionStart).Milliseconds())

	if !s.session.SubmitAnswer(chosen) {
		return
	}

	if s.eventRepo != nil {
		_ = s.eventRepo.AppendAnswer(context.Background(), store.AnswerEventData{
			RunID:         s.session.RunID,
			Mode:          string(s.mode),
			QuestionText:  q.Text,
			CorrectAnswer: q.Answer,
			PlayerAnswer:  chosen,
			Correct:       s.session.Correct,
			ScoreDelta:    s.session.LastAward,
			StreakAfter:   s.session.Streak,
			TimeMs:        timeMs,
		})
	}
}
