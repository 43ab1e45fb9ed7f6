package quizgen

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

// Mode selects the quiz category, which governs the prompt template.
type Mode string

const (
	// ModeSong asks about songs: lyrics, title tracks, charts, eras.
	ModeSong Mode = "song"

	// ModeIdol asks about idols and groups: members, positions, debuts.
	ModeIdol Mode = "idol"

	// ModeCard asks about photocard collecting: albums, versions, inclusions.
	ModeCard Mode = "card"
)

// Modes lists all playable modes in menu order.
var Modes = []Mode{ModeSong, ModeIdol, ModeCard}

// Valid reports whether m is a playable mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeSong, ModeIdol, ModeCard:
		return true
	}
	return false
}

// Title returns the display name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeSong:
		return "Song Quiz"
	case ModeIdol:
		return "Idol Quiz"
	case ModeCard:
		return "Photocard Quiz"
	}
	return string(m)
}

// Question is a generated trivia question ready for display.
// Immutable once returned by a Generator; the game session owns it for
// the duration of one question and discards it on transition.
type Question struct {
	// Text is the question prompt shown to the player.
	Text string

	// Details is optional supporting context (a lyric line, an album
	// name, a release year hint). Empty when the question needs none.
	Details string

	// Options holds exactly OptionCount answer choices, in the order
	// they must be displayed. Never reordered after receipt.
	Options []string

	// Answer is the correct option. Always an exact member of Options;
	// the validator chain rejects any response where it isn't.
	Answer string

	// Explanation is shown after the player answers.
	Explanation string

	// Mode is the mode this question was generated for.
	Mode Mode
}

// GenerateInput holds the context for generating one question.
type GenerateInput struct {
	// Mode selects the prompt template.
	Mode Mode

	// RecentQuestions contains the Text of questions already asked in
	// this run for this mode, so the model doesn't repeat itself.
	RecentQuestions []string
}
