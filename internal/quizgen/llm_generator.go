package quizgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/abhisek/kquiz/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// questionOutput is the raw LLM response before validation.
type questionOutput struct {
	QuestionText  string   `json:"question_text"`
	Details       string   `json:"details"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation"`
}

// Generate produces a single question for the given input context.
// A question that fails a retryable validator (for example, a correct
// answer that isn't one of the options) is regenerated up to
// Config.MaxAttempts times rather than shown to the player.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) (*Question, error) {
	if !input.Mode.Valid() {
		return nil, fmt.Errorf("invalid mode %q", input.Mode)
	}

	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		q, err := g.generateOnce(ctx, input)
		if err == nil {
			return q, nil
		}
		lastErr = err

		var valErr *ValidationError
		if !errors.As(err, &valErr) || !valErr.Retryable {
			return nil, err
		}
	}
	return nil, lastErr
}

func (g *LLMGenerator) generateOnce(ctx context.Context, input GenerateInput) (*Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(input, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw questionOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	q := &Question{
		Text:        raw.QuestionText,
		Details:     raw.Details,
		Options:     raw.Options,
		Answer:      raw.CorrectAnswer,
		Explanation: raw.Explanation,
		Mode:        input.Mode,
	}

	// Run validators in order.
	for _, v := range g.config.Validators {
		if verr := v.Validate(q, input); verr != nil {
			return nil, verr
		}
	}

	return q, nil
}
