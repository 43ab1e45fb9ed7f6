package quizgen

import "strings"

// StructuralValidator checks that required fields are present, within
// length limits, and that the option list is well formed.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if strings.TrimSpace(q.Text) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text is empty",
			Retryable: true,
		}
	}
	if len(q.Text) > 500 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "question_text exceeds 500 characters",
			Retryable: true,
		}
	}
	if strings.TrimSpace(q.Explanation) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation is empty",
			Retryable: true,
		}
	}
	if len(q.Explanation) > 1000 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "explanation exceeds 1000 characters",
			Retryable: true,
		}
	}
	if len(q.Options) != OptionCount {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "options must contain exactly 4 entries",
			Retryable: true,
		}
	}

	seen := make(map[string]bool, OptionCount)
	for _, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options must not be empty",
				Retryable: true,
			}
		}
		if seen[opt] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   "options must be distinct",
				Retryable: true,
			}
		}
		seen[opt] = true
	}
	return nil
}
