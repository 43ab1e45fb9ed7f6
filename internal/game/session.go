package game

import (
	"github.com/google/uuid"

	"github.com/abhisek/kquiz/internal/quizgen"
)

// BaseAward is the score for a correct answer with no streak.
const BaseAward = 10

// StreakBonus is the extra score per consecutive correct answer already
// on the streak, so the first correct answer after a reset is worth
// BaseAward and the next one BaseAward + StreakBonus.
const StreakBonus = 2

// Phase is the state of the question lifecycle.
type Phase int

const (
	// PhaseMenu means no question or mode is active.
	PhaseMenu Phase = iota

	// PhaseLoading means a fetch is in flight and input is disabled.
	PhaseLoading

	// PhasePresenting means a question is shown and awaiting an answer.
	PhasePresenting

	// PhaseAnswered means the selection is locked and the result shown.
	PhaseAnswered

	// PhaseFailed means the last load failed; the player can retry.
	PhaseFailed
)

// Session owns the question lifecycle state for one program run: the
// current question, the player's selection, and the score and streak
// counters. Score and streak survive trips back to the menu; nothing
// survives process exit.
type Session struct {
	// RunID identifies this run in the event journal.
	RunID string

	// Mode is the active quiz mode; meaningful outside PhaseMenu.
	Mode quizgen.Mode

	// Phase is the current lifecycle phase.
	Phase Phase

	// Current is the active question (nil in PhaseMenu/PhaseLoading/PhaseFailed).
	Current *quizgen.Question

	// Selected is the chosen option; meaningful only in PhaseAnswered.
	Selected string

	// Correct records whether Selected matched; meaningful only in PhaseAnswered.
	Correct bool

	// LastAward is the score delta of the most recent answer.
	LastAward int

	// Score accumulates across the whole run.
	Score int

	// Streak counts consecutive correct answers.
	Streak int

	// BestStreak is the longest streak seen this run.
	BestStreak int

	// TotalQuestions and TotalCorrect count answered questions this run.
	TotalQuestions int
	TotalCorrect   int

	// LastErr holds the failure that put the session in PhaseFailed.
	LastErr error

	// asked tracks question texts per mode for prompt deduplication.
	asked map[quizgen.Mode][]string

	// loadToken tags the in-flight fetch. Deliveries carrying any other
	// token are stale and dropped.
	loadToken string
}

// NewSession creates a session for a fresh run.
func NewSession() *Session {
	return &Session{
		RunID: uuid.New().String(),
		Phase: PhaseMenu,
		asked: make(map[quizgen.Mode][]string),
	}
}

// BeginLoad starts loading a question for the given mode and returns the
// token that the eventual Deliver call must carry. Any previous question
// and answer state is discarded; only the counters survive.
func (s *Session) BeginLoad(mode quizgen.Mode) string {
	s.Mode = mode
	s.Phase = PhaseLoading
	s.Current = nil
	s.Selected = ""
	s.Correct = false
	s.LastAward = 0
	s.LastErr = nil
	s.loadToken = uuid.New().String()
	return s.loadToken
}

// Deliver completes a load started by BeginLoad. It reports whether the
// delivery was accepted: a result whose token no longer matches the
// active load (the player backed out or started another load) is dropped
// without touching session state.
func (s *Session) Deliver(token string, q *quizgen.Question, err error) bool {
	if token == "" || token != s.loadToken {
		return false
	}
	s.loadToken = ""

	if err != nil {
		s.Phase = PhaseFailed
		s.LastErr = err
		return true
	}

	s.Current = q
	s.Phase = PhasePresenting
	s.asked[q.Mode] = append(s.asked[q.Mode], q.Text)
	return true
}

// SubmitAnswer locks in the player's choice and scores it. It reports
// whether the submission was accepted: calls outside PhasePresenting
// (including a second submission for the same question) are no-ops.
func (s *Session) SubmitAnswer(option string) bool {
	if s.Phase != PhasePresenting || s.Current == nil {
		return false
	}

	s.Selected = option
	s.Correct = quizgen.CheckAnswer(option, s.Current)
	s.TotalQuestions++

	if s.Correct {
		// Bonus from the streak as it stood before this answer.
		s.LastAward = BaseAward + StreakBonus*s.Streak
		s.Score += s.LastAward
		s.Streak++
		s.TotalCorrect++
		if s.Streak > s.BestStreak {
			s.BestStreak = s.Streak
		}
	} else {
		s.LastAward = 0
		s.Streak = 0
	}

	s.Phase = PhaseAnswered
	return true
}

// GoToMenu discards the current question and mode context. Score, streak,
// and the asked-question history are kept; a pending load becomes stale.
func (s *Session) GoToMenu() {
	s.Phase = PhaseMenu
	s.Mode = ""
	s.Current = nil
	s.Selected = ""
	s.Correct = false
	s.LastErr = nil
	s.loadToken = ""
}

// RecentQuestions returns the question texts already asked this run for
// the given mode, for prompt deduplication.
func (s *Session) RecentQuestions(mode quizgen.Mode) []string {
	return s.asked[mode]
}

// Answered reports whether the current question has been answered.
func (s *Session) Answered() bool {
	return s.Phase == PhaseAnswered
}
