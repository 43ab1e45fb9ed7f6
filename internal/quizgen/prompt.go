package quizgen

import (
	"fmt"
	"strings"
)

const systemPrompt = `You are a K-pop trivia master writing multiple-choice questions for fans.

Rules:
- Generate a single trivia question for the given category.
- The question must be about real, verifiable K-pop facts: groups, idols, songs, albums, charts, eras, and photocard collecting culture.
- Provide exactly 4 options where exactly one is correct. Distractors should be plausible (same era, same company, similar group) rather than random.
- The correct_answer field must match one option character for character.
- Keep the question self-contained; put any extra context (a lyric line, an album hint) in the details field, or leave details empty.
- The explanation should be one or two sentences a fan would enjoy reading, not a dry restatement.
- Vary difficulty: mix well-known facts with deeper cuts across generations, not just current top groups.
- Do not repeat any question from the "already asked" list.`

// modePrompts maps each mode to the category brief sent as the user message.
var modePrompts = map[Mode]string{
	ModeSong: `Category: Songs
Write a question about K-pop songs: title tracks and b-sides, lyrics, which album a song belongs to, chart achievements, OSTs, or release eras.`,
	ModeIdol: `Category: Idols & Groups
Write a question about idols and groups: members and positions, debut dates and companies, subunits, fandom names, or solo careers.`,
	ModeCard: `Category: Photocard Collecting
Write a question about photocard collecting: album versions and their inclusions, POB (pre-order benefit) cards, lucky draws, season's greetings, or trading terminology.`,
}

// buildUserMessage constructs the user message from GenerateInput and Config limits.
func buildUserMessage(input GenerateInput, cfg Config) string {
	var b strings.Builder

	b.WriteString(modePrompts[input.Mode])

	b.WriteString("\n\nAlready asked in this run:\n")
	b.WriteString(buildDedup(input.RecentQuestions, cfg.MaxRecentQuestions))

	return b.String()
}

// buildDedup formats the recently asked questions for the prompt,
// keeping only the most recent max entries.
func buildDedup(questions []string, max int) string {
	if len(questions) == 0 {
		return "None"
	}

	if max > 0 && len(questions) > max {
		questions = questions[len(questions)-max:]
	}

	var b strings.Builder
	for i, q := range questions {
		fmt.Fprintf(&b, "%d. %s\n", i+1, q)
	}
	return strings.TrimRight(b.String(), "\n")
}
