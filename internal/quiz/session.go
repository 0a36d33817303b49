// Package quiz implements the per-lesson quiz session state machine:
// one question at a time, submit-then-explain, a final percentage score,
// and pass/fail against a fixed threshold.
package quiz

import (
	"errors"
	"fmt"
	"math"

	"github.com/barkoapp/barko/internal/plan"
)

// PassThreshold is the minimum passing score.
const PassThreshold = 70

// ErrNoQuestions is returned when a session is constructed over an empty
// question list. An empty quiz is rejected up front rather than producing
// an undefined score.
var ErrNoQuestions = errors.New("quiz: no questions")

// State identifies where a session is in its lifecycle.
type State int

const (
	// StateAnswering waits for a selection and submission of the current
	// question.
	StateAnswering State = iota
	// StateExplaining shows the current question's explanation after a
	// submission.
	StateExplaining
	// StateComplete means every question has been answered.
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateAnswering:
		return "answering"
	case StateExplaining:
		return "explaining"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// StateError reports a transition attempted from an illegal state. It
// signals a programming error in the caller, not a user-facing condition.
type StateError struct {
	Op    string
	State State
}

func (e *StateError) Error() string {
	return fmt.Sprintf("quiz: %s not allowed in state %s", e.Op, e.State)
}

// Session is a single pass through one lesson's quiz questions.
type Session struct {
	questions []plan.QuizQuestion
	state     State
	index     int
	selected  string
	hasChoice bool
	answers   []bool
}

// NewSession starts a session over the given questions in order.
// Returns ErrNoQuestions for an empty list.
func NewSession(questions []plan.QuizQuestion) (*Session, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}
	qs := make([]plan.QuizQuestion, len(questions))
	copy(qs, questions)
	return &Session{questions: qs, state: StateAnswering}, nil
}

// State returns the current lifecycle state.
func (s *Session) State() State { return s.state }

// QuestionIndex returns the zero-based index of the current question.
func (s *Session) QuestionIndex() int { return s.index }

// Total returns the number of questions in the session.
func (s *Session) Total() int { return len(s.questions) }

// Question returns the current question.
func (s *Session) Question() plan.QuizQuestion {
	return s.questions[s.index]
}

// CorrectCount returns how many submitted answers were correct so far.
func (s *Session) CorrectCount() int {
	n := 0
	for _, ok := range s.answers {
		if ok {
			n++
		}
	}
	return n
}

// SelectAnswer records a tentative choice for the current question.
// Re-selecting replaces the previous choice; state does not change.
func (s *Session) SelectAnswer(option string) error {
	if s.state != StateAnswering {
		return &StateError{Op: "select", State: s.state}
	}
	s.selected = option
	s.hasChoice = true
	return nil
}

// Submit grades the current selection against the correct answer by exact
// string equality and moves to the explanation. Requires a prior
// SelectAnswer.
func (s *Session) Submit() (correct bool, err error) {
	if s.state != StateAnswering {
		return false, &StateError{Op: "submit", State: s.state}
	}
	if !s.hasChoice {
		return false, &StateError{Op: "submit without selection", State: s.state}
	}

	correct = s.selected == s.questions[s.index].CorrectAnswer
	s.answers = append(s.answers, correct)
	s.state = StateExplaining
	return correct, nil
}

// Next advances past the explanation: to the following question with the
// selection cleared, or to Complete after the last one.
func (s *Session) Next() error {
	if s.state != StateExplaining {
		return &StateError{Op: "next", State: s.state}
	}

	if s.index+1 < len(s.questions) {
		s.index++
		s.selected = ""
		s.hasChoice = false
		s.state = StateAnswering
		return nil
	}

	s.state = StateComplete
	return nil
}

// Retake discards all recorded answers and restarts from the first
// question. Only legal once the session is complete.
func (s *Session) Retake() error {
	if s.state != StateComplete {
		return &StateError{Op: "retake", State: s.state}
	}
	s.index = 0
	s.selected = ""
	s.hasChoice = false
	s.answers = nil
	s.state = StateAnswering
	return nil
}

// Finish returns the final percentage score, round(100*correct/total).
// Only legal once the session is complete.
func (s *Session) Finish() (int, error) {
	if s.state != StateComplete {
		return 0, &StateError{Op: "finish", State: s.state}
	}
	return score(s.CorrectCount(), len(s.questions)), nil
}

// Passed reports whether a score meets the pass threshold.
func Passed(score int) bool {
	return score >= PassThreshold
}

// Grade runs a full session over pre-recorded selections, one per
// question in order, and returns the final score. Used for server-side
// scoring of submitted answer lists.
func Grade(questions []plan.QuizQuestion, selections []string) (int, error) {
	if len(selections) != len(questions) {
		return 0, fmt.Errorf("quiz: %d answers for %d questions", len(selections), len(questions))
	}

	s, err := NewSession(questions)
	if err != nil {
		return 0, err
	}

	for _, sel := range selections {
		if err := s.SelectAnswer(sel); err != nil {
			return 0, err
		}
		if _, err := s.Submit(); err != nil {
			return 0, err
		}
		if err := s.Next(); err != nil {
			return 0, err
		}
	}

	return s.Finish()
}

func score(correct, total int) int {
	return int(math.Round(100 * float64(correct) / float64(total)))
}
