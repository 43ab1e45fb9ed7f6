package quizgen

import "context"

// Generator produces trivia questions using an LLM provider.
type Generator interface {
	// Generate produces a single question for the given input context.
	// Returns a validated Question or an error. All configured
	// validators have passed before a Question is returned, so callers
	// can rely on Answer being a member of Options.
	Generate(ctx context.Context, input GenerateInput) (*Question, error)
}
