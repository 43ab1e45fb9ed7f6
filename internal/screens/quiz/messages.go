package quiz

import (
	"github.com/abhisek/kquiz/internal/quizgen"
)

// questionReadyMsg is sent when a question fetch finishes. Token ties
// the result back to the load that requested it; stale results carry
// a token the session no longer recognizes and are dropped.
type questionReadyMsg struct {
	Token    string
	Question *quizgen.Question
	Err      error
}
