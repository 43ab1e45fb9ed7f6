package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int    // max results (0 = unlimited)
	RunID string // filter by run (empty = all runs)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event.
type LLMEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	RunID         string
	Mode          string
	QuestionText  string
	CorrectAnswer string
	PlayerAnswer  string
	Correct       bool
	ScoreDelta    int
	StreakAfter   int
	TimeMs        int
}

// AnswerEventRecord is a stored answer event.
type AnswerEventRecord struct {
	ID        int
	Timestamp time.Time
	AnswerEventData
}

// EventRepo provides append and query access to the run journal.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendAnswer records an answered question.
	AppendAnswer(ctx context.Context, data AnswerEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns a single event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// QueryAnswers returns answer events in the order they were appended.
	QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error)
}
