package quizgen

// Config controls the behavior of the LLMGenerator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// stops the pipeline.
	Validators []Validator

	// MaxAttempts is how many times Generate will regenerate after a
	// retryable validation failure before giving up. Transport-level
	// retries are handled below this layer by the llm middleware.
	MaxAttempts int

	// MaxTokens is the token budget for the LLM response.
	MaxTokens int

	// Temperature controls LLM output randomness (0.0-1.0). High by
	// default so repeated calls for the same mode rarely coincide.
	Temperature float64

	// MaxRecentQuestions is the maximum number of recently asked
	// questions to include in the prompt for deduplication.
	MaxRecentQuestions int
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&AnswerValidator{},
		},
		MaxAttempts:        2,
		MaxTokens:          512,
		Temperature:        0.9,
		MaxRecentQuestions: 8,
	}
}
