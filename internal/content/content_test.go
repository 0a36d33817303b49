package content

import (
	"strconv"
	"testing"
)

func TestLessonBodyCoversAllTemplateLessons(t *testing.T) {
	for i := 1; i <= 10; i++ {
		id := strconv.Itoa(i)
		if LessonBody(id, "") == "" {
			t.Errorf("lesson %s has no body", id)
		}
	}
}

func TestLessonBodyFallback(t *testing.T) {
	got := LessonBody("99", "short description")
	if got != "short description" {
		t.Errorf("fallback = %q, want the provided description", got)
	}
}

func TestQuizBankCoversAllTemplateLessons(t *testing.T) {
	for i := 1; i <= 10; i++ {
		id := strconv.Itoa(i)
		qs := QuizQuestions(id)
		if len(qs) != 3 {
			t.Errorf("lesson %s: %d questions, want 3", id, len(qs))
			continue
		}
		for _, q := range qs {
			if len(q.Options) != 4 {
				t.Errorf("question %s: %d options, want 4", q.ID, len(q.Options))
			}
			found := false
			for _, opt := range q.Options {
				if opt == q.CorrectAnswer {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("question %s: correct answer %q not among options", q.ID, q.CorrectAnswer)
			}
			if q.Explanation == "" {
				t.Errorf("question %s: missing explanation", q.ID)
			}
		}
	}
}

func TestQuizQuestionsUnknownLesson(t *testing.T) {
	if qs := QuizQuestions("99"); qs != nil {
		t.Errorf("expected nil for unknown lesson, got %d questions", len(qs))
	}
}
