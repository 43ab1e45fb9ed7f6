package quizgen

import "github.com/abhisek/kquiz/internal/llm"

// QuestionSchema defines the JSON schema for LLM question generation
// responses. Every provider is asked to emit exactly this shape.
var QuestionSchema = &llm.Schema{
	Name:        "kpop-trivia-question",
	Description: "A single K-pop trivia question with four options, the correct answer, and an explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question_text": map[string]any{
				"type":        "string",
				"description": "The trivia question shown to the player",
			},
			"details": map[string]any{
				"type":        "string",
				"description": "Optional supporting context such as a lyric line or album hint. Empty string when not needed.",
			},
			"options": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "string",
				},
				"minItems":    4,
				"maxItems":    4,
				"description": "Exactly 4 answer options in display order",
			},
			"correct_answer": map[string]any{
				"type":        "string",
				"description": "The correct answer, character-for-character identical to one of the options",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "A short explanation of the answer, shown after the player picks",
			},
		},
		"required":             []any{"question_text", "options", "correct_answer", "explanation"},
		"additionalProperties": false,
	},
}
