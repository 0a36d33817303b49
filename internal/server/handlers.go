package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/barkoapp/barko/internal/content"
	"github.com/barkoapp/barko/internal/plan"
	"github.com/barkoapp/barko/internal/progress"
	"github.com/barkoapp/barko/internal/quiz"
	"github.com/barkoapp/barko/internal/store"
	"github.com/barkoapp/barko/internal/unlock"
)

type profileResponse struct {
	UserID              string             `json:"userId"`
	Email               string             `json:"email"`
	FullName            string             `json:"fullName"`
	Country             string             `json:"country"`
	Language            string             `json:"language"`
	AgeGroup            string             `json:"ageGroup"`
	IncomeRange         string             `json:"incomeRange"`
	CulturalValue       string             `json:"culturalValue"`
	FinancialGoals      string             `json:"financialGoals"`
	LearningPlan        *plan.LearningPlan `json:"learningPlan,omitempty"`
	OnboardingCompleted bool               `json:"onboardingCompleted"`
	SimpleMode          bool               `json:"simpleMode"`
	Points              int                `json:"points"`
	StreakDays          int                `json:"streakDays"`
	LastActive          *time.Time         `json:"lastActive,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
}

func profileView(p *store.Profile) profileResponse {
	return profileResponse{
		UserID:              p.UserID,
		Email:               p.Email,
		FullName:            p.FullName,
		Country:             p.Country,
		Language:            p.Language,
		AgeGroup:            p.AgeGroup,
		IncomeRange:         p.IncomeRange,
		CulturalValue:       p.CulturalValue,
		FinancialGoals:      p.FinancialGoals,
		LearningPlan:        p.LearningPlan,
		OnboardingCompleted: p.OnboardingCompleted,
		SimpleMode:          p.SimpleMode,
		Points:              p.Points,
		StreakDays:          p.StreakDays,
		LastActive:          p.LastActive,
		CreatedAt:           p.CreatedAt,
	}
}

// --- GET /api/profile ---

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := s.profiles.Get(r.Context(), GetUserID(r.Context()), GetEmail(r.Context()))
	if err != nil {
		s.log.Error("get profile", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, profileView(p))
}

// --- PATCH /api/profile ---

type profilePatchRequest struct {
	FullName       *string `json:"fullName"`
	Country        *string `json:"country"`
	Language       *string `json:"language"`
	AgeGroup       *string `json:"ageGroup"`
	IncomeRange    *string `json:"incomeRange"`
	CulturalValue  *string `json:"culturalValue"`
	FinancialGoals *string `json:"financialGoals"`
	SimpleMode     *bool   `json:"simpleMode"`
}

func (s *Server) handlePatchProfile(w http.ResponseWriter, r *http.Request) {
	var req profilePatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := GetUserID(r.Context())
	if _, err := s.profiles.Get(r.Context(), userID, GetEmail(r.Context())); err != nil {
		s.log.Error("ensure profile", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	p, err := s.profiles.Update(r.Context(), userID, store.ProfilePatch{
		FullName:       req.FullName,
		Country:        req.Country,
		Language:       req.Language,
		AgeGroup:       req.AgeGroup,
		IncomeRange:    req.IncomeRange,
		CulturalValue:  req.CulturalValue,
		FinancialGoals: req.FinancialGoals,
		SimpleMode:     req.SimpleMode,
	})
	if err != nil {
		s.log.Error("patch profile", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, profileView(p))
}

// --- POST /api/onboarding ---

func (s *Server) handleOnboarding(w http.ResponseWriter, r *http.Request) {
	var answers plan.AnswerSet
	if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	userID := GetUserID(r.Context())
	lp, err := s.profiles.Onboard(r.Context(), userID, GetEmail(r.Context()), answers)
	if err != nil {
		if errors.Is(err, plan.ErrGenerationInProgress) {
			writeError(w, http.StatusConflict, "plan generation already in progress")
			return
		}
		s.log.Error("onboarding", "user_id", userID, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, lp)
}

// --- GET /api/dashboard ---

type dashboardLesson struct {
	plan.Lesson
	Completed bool `json:"completed"`
	Locked    bool `json:"locked"`
}

type dashboardResponse struct {
	OnboardingCompleted      bool              `json:"onboardingCompleted"`
	Lessons                  []dashboardLesson `json:"lessons"`
	RecommendedPath          []string          `json:"recommendedPath,omitempty"`
	EstimatedCompletionWeeks int               `json:"estimatedCompletionWeeks,omitempty"`
	PersonalizedMessage      string            `json:"personalizedMessage,omitempty"`
	Points                   int               `json:"points"`
	StreakDays               int               `json:"streakDays"`
	CompletedCount           int               `json:"completedCount"`
	TotalCount               int               `json:"totalCount"`
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(ctx)

	p, err := s.profiles.Get(ctx, userID, GetEmail(ctx))
	if err != nil {
		s.log.Error("dashboard profile", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := dashboardResponse{
		OnboardingCompleted: p.OnboardingCompleted,
		Lessons:             []dashboardLesson{},
		Points:              p.Points,
		StreakDays:          p.StreakDays,
	}
	if p.LearningPlan == nil {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	completed, err := s.rows.CompletedIDs(ctx, userID)
	if err != nil {
		s.log.Error("dashboard progress", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	lp := p.LearningPlan
	for i, lesson := range lp.Lessons {
		if lesson.Content == "" {
			lesson.Content = content.LessonBody(lesson.ID, lesson.Description)
		}
		if len(lesson.Quiz) == 0 {
			lesson.Quiz = content.QuizQuestions(lesson.ID)
		}
		done := completed[lesson.ID]
		resp.Lessons = append(resp.Lessons, dashboardLesson{
			Lesson:    lesson,
			Completed: done,
			Locked:    unlock.IsLocked(lp.Lessons, completed, i),
		})
		if done {
			resp.CompletedCount++
		}
	}
	resp.RecommendedPath = lp.RecommendedPath
	resp.EstimatedCompletionWeeks = lp.EstimatedCompletionWeeks
	resp.PersonalizedMessage = lp.PersonalizedMessage
	resp.TotalCount = len(lp.Lessons)

	writeJSON(w, http.StatusOK, resp)
}

// --- POST /api/lessons/{id}/complete ---

func (s *Server) handleLessonComplete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(ctx)
	lessonID := chi.URLParam(r, "id")

	if _, err := s.profiles.Get(ctx, userID, GetEmail(ctx)); err != nil {
		s.log.Error("ensure profile", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	if err := s.tracker.MarkComplete(ctx, userID, lessonID); err != nil {
		s.log.Error("mark complete", "lesson_id", lessonID, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"completed":     true,
		"pointsAwarded": progress.CompletionPoints,
	})
}

// --- POST /api/lessons/{id}/quiz ---

type quizSubmitRequest struct {
	Score   *int     `json:"score"`
	Answers []string `json:"answers"`
}

func (s *Server) handleLessonQuiz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	userID := GetUserID(ctx)
	lessonID := chi.URLParam(r, "id")

	var req quizSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := s.profiles.Get(ctx, userID, GetEmail(ctx))
	if err != nil {
		s.log.Error("ensure profile", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	var score int
	switch {
	case req.Answers != nil:
		questions := lessonQuestions(p.LearningPlan, lessonID)
		if len(questions) == 0 {
			writeError(w, http.StatusBadRequest, "lesson has no quiz")
			return
		}
		score, err = quiz.Grade(questions, req.Answers)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	case req.Score != nil:
		score = *req.Score
	default:
		writeError(w, http.StatusBadRequest, "score or answers required")
		return
	}

	if err := s.tracker.RecordQuizScore(ctx, userID, lessonID, score); err != nil {
		if errors.Is(err, progress.ErrInvalidScore) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.log.Error("record quiz", "lesson_id", lessonID, "error", err.Error())
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	passed := quiz.Passed(score)
	resp := map[string]any{
		"score":     score,
		"passed":    passed,
		"completed": passed,
	}
	if passed {
		resp["pointsAwarded"] = progress.QuizPassPoints
	}
	writeJSON(w, http.StatusOK, resp)
}

// lessonQuestions resolves the quiz for a lesson: the plan's own
// questions when present, the static bank for template lessons.
func lessonQuestions(lp *plan.LearningPlan, lessonID string) []plan.QuizQuestion {
	if lp != nil {
		for _, lesson := range lp.Lessons {
			if lesson.ID == lessonID {
				if len(lesson.Quiz) > 0 {
					return lesson.Quiz
				}
				break
			}
		}
	}
	return content.QuizQuestions(lessonID)
}
