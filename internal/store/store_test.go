package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(MemoryDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen",
			InputTokens: 120, OutputTokens: 80, LatencyMs: 900, Success: true,
			RequestBody: `{"system":"..."}`, ResponseBody: `{"question_text":"..."}`},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "question-gen",
			Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}

	// Newest first.
	if got[0].Success || got[0].ErrorMessage != "rate limited" {
		t.Errorf("expected the failed event first, got %+v", got[0])
	}
	if got[1].InputTokens != 120 || got[1].OutputTokens != 80 {
		t.Errorf("token counts not round-tripped: %+v", got[1])
	}
	if got[1].Timestamp.IsZero() {
		t.Error("timestamp not set")
	}
}

func TestQueryLLMEvents_Limit(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: "question-gen", Success: true,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 3})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 events, got %d", len(got))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	if err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "anthropic", Model: "claude-sonnet-4-5", Purpose: "question-gen",
		Success: true, RequestBody: "req", ResponseBody: "resp",
	}); err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("event not found")
	}
	if e.RequestBody != "req" || e.ResponseBody != "resp" {
		t.Errorf("bodies not round-tripped: %+v", e)
	}

	missing, err := repo.GetLLMEvent(ctx, 999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("expected nil for missing event, got %+v", missing)
	}
}

func TestAppendAndQueryAnswers(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	runA, runB := "run-a", "run-b"
	answers := []AnswerEventData{
		{RunID: runA, Mode: "song", QuestionText: "first", CorrectAnswer: "x",
			PlayerAnswer: "x", Correct: true, ScoreDelta: 10, StreakAfter: 1, TimeMs: 4200},
		{RunID: runA, Mode: "idol", QuestionText: "second", CorrectAnswer: "x",
			PlayerAnswer: "y", Correct: false},
		{RunID: runB, Mode: "card", QuestionText: "other run", CorrectAnswer: "x",
			PlayerAnswer: "x", Correct: true, ScoreDelta: 10, StreakAfter: 1},
	}
	for _, a := range answers {
		if err := repo.AppendAnswer(ctx, a); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := repo.QueryAnswers(ctx, QueryOpts{RunID: runA})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 answers for run-a, got %d", len(got))
	}

	// Append order preserved.
	if got[0].QuestionText != "first" || got[1].QuestionText != "second" {
		t.Errorf("order not preserved: %q then %q", got[0].QuestionText, got[1].QuestionText)
	}
	if !got[0].Correct || got[0].ScoreDelta != 10 || got[0].StreakAfter != 1 {
		t.Errorf("scoring fields not round-tripped: %+v", got[0])
	}
	if got[1].Correct {
		t.Error("incorrect answer recorded as correct")
	}

	all, err := repo.QueryAnswers(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 answers across runs, got %d", len(all))
	}
}

func TestResolveDSN(t *testing.T) {
	dsn, err := ResolveDSN("")
	if err != nil {
		t.Fatalf("resolve empty: %v", err)
	}
	if dsn != MemoryDSN {
		t.Errorf("empty path should select the in-memory journal, got %q", dsn)
	}

	path := t.TempDir() + "/nested/journal.db"
	dsn, err = ResolveDSN(path)
	if err != nil {
		t.Fatalf("resolve path: %v", err)
	}
	if dsn != path {
		t.Errorf("got %q, want %q", dsn, path)
	}

	// Parent directory should now exist, so Open succeeds.
	s, err := Open(dsn)
	if err != nil {
		t.Fatalf("open file journal: %v", err)
	}
	_ = s.Close()
}
