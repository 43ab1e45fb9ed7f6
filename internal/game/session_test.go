package game

import (
	"errors"
	"testing"

	"github.com/abhisek/kquiz/internal/quizgen"
)

func testQuestion(mode quizgen.Mode) *quizgen.Question {
	return &quizgen.Question{
		Text:        "Which group debuted with 'Into the New World'?",
		Options:     []string{"Girls' Generation", "Wonder Girls", "KARA", "2NE1"},
		Answer:      "Girls' Generation",
		Explanation: "Girls' Generation debuted with it in 2007.",
		Mode:        mode,
	}
}

func deliverQuestion(t *testing.T, s *Session, mode quizgen.Mode) *quizgen.Question {
	t.Helper()
	q := testQuestion(mode)
	token := s.BeginLoad(mode)
	if !s.Deliver(token, q, nil) {
		t.Fatal("delivery with matching token was dropped")
	}
	if s.Phase != PhasePresenting {
		t.Fatalf("Phase = %v, want PhasePresenting", s.Phase)
	}
	return q
}

func TestSubmitAnswer_CorrectScoring(t *testing.T) {
	s := NewSession()

	// streak 0 → +10, streak 1 → +12, then a miss resets everything.
	steps := []struct {
		correct    bool
		wantDelta  int
		wantScore  int
		wantStreak int
	}{
		{true, 10, 10, 1},
		{true, 12, 22, 2},
		{false, 0, 22, 0},
		{true, 10, 32, 1},
	}

	for i, step := range steps {
		q := deliverQuestion(t, s, quizgen.ModeSong)
		answer := q.Answer
		if !step.correct {
			answer = q.Options[1]
		}
		if !s.SubmitAnswer(answer) {
			t.Fatalf("step %d: SubmitAnswer rejected", i)
		}
		if s.LastAward != step.wantDelta {
			t.Errorf("step %d: LastAward = %d, want %d", i, s.LastAward, step.wantDelta)
		}
		if s.Score != step.wantScore {
			t.Errorf("step %d: Score = %d, want %d", i, s.Score, step.wantScore)
		}
		if s.Streak != step.wantStreak {
			t.Errorf("step %d: Streak = %d, want %d", i, s.Streak, step.wantStreak)
		}
	}
}

func TestSubmitAnswer_Idempotent(t *testing.T) {
	s := NewSession()
	q := deliverQuestion(t, s, quizgen.ModeIdol)

	if !s.SubmitAnswer(q.Answer) {
		t.Fatal("first SubmitAnswer rejected")
	}
	score, streak := s.Score, s.Streak

	// Second submission must be a no-op, whatever the option.
	if s.SubmitAnswer(q.Options[2]) {
		t.Error("second SubmitAnswer was accepted")
	}
	if s.Score != score || s.Streak != streak {
		t.Errorf("state changed on double submit: score %d→%d, streak %d→%d",
			score, s.Score, streak, s.Streak)
	}
	if s.Selected != q.Answer {
		t.Errorf("Selected = %q, want original %q", s.Selected, q.Answer)
	}
}

func TestSubmitAnswer_RequiresPresenting(t *testing.T) {
	s := NewSession()
	if s.SubmitAnswer("anything") {
		t.Error("SubmitAnswer accepted in PhaseMenu")
	}
	s.BeginLoad(quizgen.ModeSong)
	if s.SubmitAnswer("anything") {
		t.Error("SubmitAnswer accepted in PhaseLoading")
	}
}

func TestDeliver_StaleTokenDropped(t *testing.T) {
	s := NewSession()
	stale := s.BeginLoad(quizgen.ModeSong)

	// Player backs out before the fetch lands.
	s.GoToMenu()

	if s.Deliver(stale, testQuestion(quizgen.ModeSong), nil) {
		t.Error("stale delivery was accepted after GoToMenu")
	}
	if s.Phase != PhaseMenu || s.Current != nil {
		t.Errorf("stale delivery mutated state: phase %v, current %v", s.Phase, s.Current)
	}
}

func TestDeliver_SupersededTokenDropped(t *testing.T) {
	s := NewSession()
	old := s.BeginLoad(quizgen.ModeSong)

	// Player switches mode; a new load supersedes the old one.
	fresh := s.BeginLoad(quizgen.ModeIdol)

	if s.Deliver(old, testQuestion(quizgen.ModeSong), nil) {
		t.Error("superseded delivery was accepted")
	}
	if !s.Deliver(fresh, testQuestion(quizgen.ModeIdol), nil) {
		t.Fatal("fresh delivery was dropped")
	}
	if s.Current.Mode != quizgen.ModeIdol {
		t.Errorf("Current.Mode = %q, want idol", s.Current.Mode)
	}
}

func TestDeliver_ErrorEntersFailed(t *testing.T) {
	s := NewSession()
	token := s.BeginLoad(quizgen.ModeCard)

	loadErr := errors.New("boom")
	if !s.Deliver(token, nil, loadErr) {
		t.Fatal("error delivery was dropped")
	}
	if s.Phase != PhaseFailed {
		t.Fatalf("Phase = %v, want PhaseFailed", s.Phase)
	}
	if !errors.Is(s.LastErr, loadErr) {
		t.Errorf("LastErr = %v, want %v", s.LastErr, loadErr)
	}
	if s.Current != nil {
		t.Error("Current set after failed load")
	}

	// Failures never touch the counters.
	if s.Score != 0 || s.Streak != 0 {
		t.Errorf("counters changed on failure: score %d, streak %d", s.Score, s.Streak)
	}
}

func TestGoToMenu_KeepsScore(t *testing.T) {
	s := NewSession()
	q := deliverQuestion(t, s, quizgen.ModeSong)
	s.SubmitAnswer(q.Answer)

	s.GoToMenu()

	if s.Score != 10 {
		t.Errorf("Score = %d after GoToMenu, want 10", s.Score)
	}
	if s.Streak != 1 {
		t.Errorf("Streak = %d after GoToMenu, want 1", s.Streak)
	}
	if s.Current != nil || s.Mode != "" {
		t.Error("question/mode context not discarded")
	}
}

func TestBeginLoad_ClearsAnswerState(t *testing.T) {
	s := NewSession()
	q := deliverQuestion(t, s, quizgen.ModeSong)
	s.SubmitAnswer(q.Options[3])

	s.BeginLoad(quizgen.ModeSong)

	if s.Selected != "" || s.Correct {
		t.Error("previous answer state survived BeginLoad")
	}
	if s.Current != nil {
		t.Error("previous question survived BeginLoad")
	}
	if s.Phase != PhaseLoading {
		t.Errorf("Phase = %v, want PhaseLoading", s.Phase)
	}
}

func TestRecentQuestions_PerMode(t *testing.T) {
	s := NewSession()
	deliverQuestion(t, s, quizgen.ModeSong)
	s.SubmitAnswer("whatever")
	deliverQuestion(t, s, quizgen.ModeIdol)

	if n := len(s.RecentQuestions(quizgen.ModeSong)); n != 1 {
		t.Errorf("song history len = %d, want 1", n)
	}
	if n := len(s.RecentQuestions(quizgen.ModeIdol)); n != 1 {
		t.Errorf("idol history len = %d, want 1", n)
	}
	if n := len(s.RecentQuestions(quizgen.ModeCard)); n != 0 {
		t.Errorf("card history len = %d, want 0", n)
	}
}

func TestBestStreak(t *testing.T) {
	s := NewSession()
	for i := 0; i < 3; i++ {
		q := deliverQuestion(t, s, quizgen.ModeSong)
		s.SubmitAnswer(q.Answer)
	}
	q := deliverQuestion(t, s, quizgen.ModeSong)
	s.SubmitAnswer(q.Options[1])

	if s.BestStreak != 3 {
		t.Errorf("BestStreak = %d, want 3", s.BestStreak)
	}
	if s.Streak != 0 {
		t.Errorf("Streak = %d after miss, want 0", s.Streak)
	}
}
