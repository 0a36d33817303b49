package quiz

import (
	"errors"
	"testing"

	"github.com/barkoapp/barko/internal/plan"
)

func threeQuestions() []plan.QuizQuestion {
	return []plan.QuizQuestion{
		{
			ID:            "q1",
			Question:      "What does APR stand for?",
			Options:       []string{"Annual Percentage Rate", "Average Payment Ratio", "Annual Payment Record", "Applied Percentage Return"},
			CorrectAnswer: "Annual Percentage Rate",
		},
		{
			ID:            "q2",
			Question:      "Which account is most liquid?",
			Options:       []string{"Certificate of deposit", "Checking account", "401(k)", "Real estate"},
			CorrectAnswer: "Checking account",
		},
		{
			ID:            "q3",
			Question:      "What does diversification reduce?",
			Options:       []string{"Returns", "Risk", "Taxes", "Fees"},
			CorrectAnswer: "Risk",
		},
	}
}

// answerAll walks the session, answering each question with the given
// options in order.
func answerAll(t *testing.T, s *Session, selections []string) {
	t.Helper()
	for i, sel := range selections {
		if err := s.SelectAnswer(sel); err != nil {
			t.Fatalf("select %d: %v", i, err)
		}
		if _, err := s.Submit(); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
		if err := s.Next(); err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
	}
}

func TestNewSessionRejectsEmptyQuiz(t *testing.T) {
	_, err := NewSession(nil)
	if !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("expected ErrNoQuestions, got %v", err)
	}
}

func TestSessionInitialState(t *testing.T) {
	s, err := NewSession(threeQuestions())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}
	if s.State() != StateAnswering {
		t.Errorf("state = %v, want answering", s.State())
	}
	if s.QuestionIndex() != 0 {
		t.Errorf("index = %d, want 0", s.QuestionIndex())
	}
	if s.Total() != 3 {
		t.Errorf("total = %d, want 3", s.Total())
	}
}

func TestTwoOfThreeScores67(t *testing.T) {
	s, err := NewSession(threeQuestions())
	if err != nil {
		t.Fatalf("new session: %v", err)
	}

	answerAll(t, s, []string{
		"Annual Percentage Rate", // correct
		"401(k)",                 // wrong
		"Risk",                   // correct
	})

	if s.State() != StateComplete {
		t.Fatalf("state = %v, want complete", s.State())
	}
	sc, err := s.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if sc != 67 {
		t.Errorf("score = %d, want 67", sc)
	}
}

func TestPassThresholdBoundary(t *testing.T) {
	if !Passed(70) {
		t.Error("70 should pass")
	}
	if Passed(69) {
		t.Error("69 should fail")
	}
	if !Passed(100) {
		t.Error("100 should pass")
	}
}

func TestSubmitWithoutSelection(t *testing.T) {
	s, _ := NewSession(threeQuestions())

	_, err := s.Submit()
	var stateErr *StateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected StateError, got %v", err)
	}
}

func TestSubmitGradesByExactEquality(t *testing.T) {
	s, _ := NewSession(threeQuestions())

	if err := s.SelectAnswer("annual percentage rate"); err != nil {
		t.Fatalf("select: %v", err)
	}
	correct, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if correct {
		t.Error("case-mismatched answer should be wrong: equality is exact")
	}
}

func TestSelectionClearedBetweenQuestions(t *testing.T) {
	s, _ := NewSession(threeQuestions())

	if err := s.SelectAnswer("Annual Percentage Rate"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.Next(); err != nil {
		t.Fatalf("next: %v", err)
	}

	// Submitting the second question without a fresh selection is illegal.
	if _, err := s.Submit(); err == nil {
		t.Fatal("expected error: selection should be cleared by next()")
	}
}

func TestReselectionReplacesChoice(t *testing.T) {
	s, _ := NewSession(threeQuestions())

	if err := s.SelectAnswer("401(k)"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if err := s.SelectAnswer("Annual Percentage Rate"); err != nil {
		t.Fatalf("reselect: %v", err)
	}
	correct, err := s.Submit()
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if !correct {
		t.Error("the last selection should be graded")
	}
}

func TestIllegalTransitions(t *testing.T) {
	s, _ := NewSession(threeQuestions())

	// Answering: next, retake, finish all illegal.
	if err := s.Next(); err == nil {
		t.Error("next legal in answering")
	}
	if err := s.Retake(); err == nil {
		t.Error("retake legal in answering")
	}
	if _, err := s.Finish(); err == nil {
		t.Error("finish legal in answering")
	}

	// Explaining: select and submit illegal.
	if err := s.SelectAnswer("Risk"); err != nil {
		t.Fatalf("select: %v", err)
	}
	if _, err := s.Submit(); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := s.SelectAnswer("Risk"); err == nil {
		t.Error("select legal in explaining")
	}
	if _, err := s.Submit(); err == nil {
		t.Error("submit legal in explaining")
	}
}

func TestRetakeResetsSession(t *testing.T) {
	s, _ := NewSession(threeQuestions())
	answerAll(t, s, []string{"401(k)", "401(k)", "Fees"}) // 0/3

	sc, err := s.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if sc != 0 {
		t.Errorf("score = %d, want 0", sc)
	}

	if err := s.Retake(); err != nil {
		t.Fatalf("retake: %v", err)
	}
	if s.State() != StateAnswering || s.QuestionIndex() != 0 {
		t.Fatalf("retake should return to answering question 0, got %v/%d", s.State(), s.QuestionIndex())
	}

	answerAll(t, s, []string{"Annual Percentage Rate", "Checking account", "Risk"}) // 3/3
	sc, err = s.Finish()
	if err != nil {
		t.Fatalf("finish after retake: %v", err)
	}
	if sc != 100 {
		t.Errorf("score after retake = %d, want 100", sc)
	}
}

func TestGrade(t *testing.T) {
	qs := threeQuestions()

	sc, err := Grade(qs, []string{"Annual Percentage Rate", "Checking account", "Fees"})
	if err != nil {
		t.Fatalf("grade: %v", err)
	}
	if sc != 67 {
		t.Errorf("score = %d, want 67", sc)
	}

	if _, err := Grade(qs, []string{"only one"}); err == nil {
		t.Error("expected error for answer count mismatch")
	}
	if _, err := Grade(nil, nil); !errors.Is(err, ErrNoQuestions) {
		t.Errorf("expected ErrNoQuestions for empty quiz, got %v", err)
	}
}
