package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// eventRepo implements EventRepo over raw SQL. The journal is append-only;
// events are never updated or reordered.
type eventRepo struct {
	db *sql.DB
}

var _ EventRepo = (*eventRepo)(nil)

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO llm_request_events
			(timestamp, provider, model, purpose, input_tokens, output_tokens,
			 latency_ms, success, error_message, request_body, response_body)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs,
		boolToInt(data.Success), data.ErrorMessage,
		data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("append llm request event: %w", err)
	}
	return nil
}

func (r *eventRepo) AppendAnswer(ctx context.Context, data AnswerEventData) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO answer_events
			(timestamp, run_id, mode, question_text, correct_answer,
			 player_answer, correct, score_delta, streak_after, time_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339Nano),
		data.RunID, data.Mode, data.QuestionText, data.CorrectAnswer,
		data.PlayerAnswer, boolToInt(data.Correct),
		data.ScoreDelta, data.StreakAfter, data.TimeMs,
	)
	if err != nil {
		return fmt.Errorf("append answer event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error) {
	q := `SELECT id, timestamp, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error_message,
			request_body, response_body
		  FROM llm_request_events ORDER BY id DESC`
	var args []any
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query llm events: %w", err)
	}
	defer rows.Close()

	var out []LLMEventRecord
	for rows.Next() {
		rec, err := scanLLMEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *rec)
	}
	return out, rows.Err()
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, timestamp, provider, model, purpose, input_tokens,
			output_tokens, latency_ms, success, error_message,
			request_body, response_body
		 FROM llm_request_events WHERE id = ?`, id)
	if err != nil {
		return nil, fmt.Errorf("get llm event: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		return nil, rows.Err()
	}
	return scanLLMEvent(rows)
}

func (r *eventRepo) QueryAnswers(ctx context.Context, opts QueryOpts) ([]AnswerEventRecord, error) {
	q := `SELECT id, timestamp, run_id, mode, question_text, correct_answer,
			player_answer, correct, score_delta, streak_after, time_ms
		  FROM answer_events`
	var args []any
	if opts.RunID != "" {
		q += " WHERE run_id = ?"
		args = append(args, opts.RunID)
	}
	q += " ORDER BY id ASC"
	if opts.Limit > 0 {
		q += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query answer events: %w", err)
	}
	defer rows.Close()

	var out []AnswerEventRecord
	for rows.Next() {
		var rec AnswerEventRecord
		var ts string
		var correct int
		if err := rows.Scan(&rec.ID, &ts, &rec.RunID, &rec.Mode,
			&rec.QuestionText, &rec.CorrectAnswer, &rec.PlayerAnswer,
			&correct, &rec.ScoreDelta, &rec.StreakAfter, &rec.TimeMs); err != nil {
			return nil, fmt.Errorf("scan answer event: %w", err)
		}
		rec.Correct = correct != 0
		rec.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanLLMEvent(rows *sql.Rows) (*LLMEventRecord, error) {
	var rec LLMEventRecord
	var ts string
	var success int
	if err := rows.Scan(&rec.ID, &ts, &rec.Provider, &rec.Model, &rec.Purpose,
		&rec.InputTokens, &rec.OutputTokens, &rec.LatencyMs,
		&success, &rec.ErrorMessage, &rec.RequestBody, &rec.ResponseBody); err != nil {
		return nil, fmt.Errorf("scan llm event: %w", err)
	}
	rec.Success = success != 0
	rec.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
	return &rec, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
