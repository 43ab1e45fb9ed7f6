package quizgen

// AnswerValidator enforces the membership invariant: the declared
// correct answer must be exactly one of the options. The upstream model
// is asked to guarantee this, but a violation would produce a question
// that can never be answered correctly, so it is checked on receipt and
// treated as a retryable generation failure.
type AnswerValidator struct{}

func (v *AnswerValidator) Name() string { return "answer-membership" }

func (v *AnswerValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	for _, opt := range q.Options {
		if opt == q.Answer {
			return nil
		}
	}
	return &ValidationError{
		Validator: v.Name(),
		Message:   "correct_answer is not one of the options",
		Retryable: true,
	}
}

// CheckAnswer reports whether the selected option is the correct answer.
// Comparison is exact string equality against the schema-declared value.
func CheckAnswer(selected string, q *Question) bool {
	return selected == q.Answer
}
