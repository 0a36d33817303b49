package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/barkoapp/barko/internal/plan"
	"github.com/barkoapp/barko/internal/profile"
	"github.com/barkoapp/barko/internal/progress"
	"github.com/barkoapp/barko/internal/store"
)

const testSecret = "test-secret"

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	gen := plan.NewGenerator(nil, plan.DefaultConfig())
	profiles := profile.NewService(s.ProfileRepo(), plan.NewService(gen), nil)
	tracker := progress.NewTracker(s.ProfileRepo(), s.ProgressRepo())
	return New(nil, profiles, tracker, s.ProgressRepo(), testSecret).Router()
}

func authedRequest(t *testing.T, method, path string, body any, userID string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	token, err := SignToken(testSecret, userID, userID+"@example.com", time.Hour)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func do(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response: %v\nbody: %s", err, rec.Body.String())
	}
	return v
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, httptest.NewRequest("GET", "/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGeneratePlanLangPriority(t *testing.T) {
	h := newTestHandler(t)

	body := map[string]string{"incomeRange": "30k_60k", "financialGoals": "save", "lang": "es"}
	buf, _ := json.Marshal(body)

	// Query param beats body.
	rec := do(h, httptest.NewRequest("POST", "/functions/generate-learning-plan?lang=fr", bytes.NewReader(buf)))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body %s", rec.Code, rec.Body.String())
	}
	lp := decode[plan.LearningPlan](t, rec)
	if lp.Language != "fr" {
		t.Errorf("language = %q, want fr", lp.Language)
	}
	if len(lp.Lessons) != 10 {
		t.Errorf("lessons = %d, want 10", len(lp.Lessons))
	}

	// Body lang when no query param.
	rec = do(h, httptest.NewRequest("POST", "/functions/generate-learning-plan", bytes.NewReader(buf)))
	if lp := decode[plan.LearningPlan](t, rec); lp.Language != "es" {
		t.Errorf("language = %q, want es", lp.Language)
	}

	// Unsupported falls back to en.
	rec = do(h, httptest.NewRequest("POST", "/functions/generate-learning-plan?lang=tlh", bytes.NewReader(buf)))
	if lp := decode[plan.LearningPlan](t, rec); lp.Language != "en" {
		t.Errorf("language = %q, want en", lp.Language)
	}

	// Empty body is fine.
	rec = do(h, httptest.NewRequest("POST", "/functions/generate-learning-plan", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("empty body status = %d, want 200", rec.Code)
	}
}

func TestGeneratePlanBadBody(t *testing.T) {
	// An undecodable body is treated as empty answers, not as a failure:
	// the endpoint still serves the default plan.
	h := newTestHandler(t)
	rec := do(h, httptest.NewRequest("POST", "/functions/generate-learning-plan", bytes.NewReader([]byte("{not json"))))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	lp := decode[plan.LearningPlan](t, rec)
	if lp.Language != "en" {
		t.Errorf("language = %q, want \"en\"", lp.Language)
	}
	if len(lp.Lessons) != 10 {
		t.Errorf("lessons = %d, want 10", len(lp.Lessons))
	}
}

func TestGeneratePlanBadBodyKeepsQueryLang(t *testing.T) {
	h := newTestHandler(t)
	rec := do(h, httptest.NewRequest("POST", "/functions/generate-learning-plan?lang=fr", bytes.NewReader([]byte("{not json"))))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	lp := decode[plan.LearningPlan](t, rec)
	if lp.Language != "fr" {
		t.Errorf("language = %q, want \"fr\"", lp.Language)
	}
}

func TestGeneratePlanOptions(t *testing.T) {
	h := newTestHandler(t)
	req := httptest.NewRequest("OPTIONS", "/functions/generate-learning-plan", nil)
	rec := do(h, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("body = %q, want empty", rec.Body.String())
	}
}

func TestAuthRequired(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h, httptest.NewRequest("GET", "/api/profile", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("no token: status = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest("GET", "/api/profile", nil)
	token, _ := SignToken("wrong-secret", "user-1", "u@example.com", time.Hour)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = do(h, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("bad signature: status = %d, want 401", rec.Code)
	}
}

func TestProfileAutoCreateAndPatch(t *testing.T) {
	h := newTestHandler(t)

	rec := do(h, authedRequest(t, "GET", "/api/profile", nil, "user-p"))
	if rec.Code != http.StatusOK {
		t.Fatalf("get: status = %d; body %s", rec.Code, rec.Body.String())
	}
	p := decode[profileResponse](t, rec)
	if p.UserID != "user-p" || p.Email != "user-p@example.com" {
		t.Errorf("profile = %q/%q", p.UserID, p.Email)
	}
	if p.OnboardingCompleted {
		t.Error("fresh profile marked onboarded")
	}

	rec = do(h, authedRequest(t, "PATCH", "/api/profile", map[string]any{"simpleMode": true}, "user-p"))
	if rec.Code != http.StatusOK {
		t.Fatalf("patch: status = %d; body %s", rec.Code, rec.Body.String())
	}
	if p := decode[profileResponse](t, rec); !p.SimpleMode {
		t.Error("simpleMode not applied")
	}
}

func onboard(t *testing.T, h http.Handler, userID string) plan.LearningPlan {
	t.Helper()
	body := map[string]string{
		"country": "US", "language": "en", "ageGroup": "25-34",
		"incomeRange": "30k_60k", "culturalValue": "independence",
		"financialGoals": "pay off debt",
	}
	rec := do(h, authedRequest(t, "POST", "/api/onboarding", body, userID))
	if rec.Code != http.StatusOK {
		t.Fatalf("onboarding: status = %d; body %s", rec.Code, rec.Body.String())
	}
	return decode[plan.LearningPlan](t, rec)
}

func TestOnboardingReturnsPlan(t *testing.T) {
	h := newTestHandler(t)
	lp := onboard(t, h, "user-o")
	if len(lp.Lessons) != 10 {
		t.Fatalf("lessons = %d, want 10", len(lp.Lessons))
	}
	if lp.Lessons[4].Why == "" {
		t.Error("lesson 5 why is empty")
	}

	rec := do(h, authedRequest(t, "GET", "/api/profile", nil, "user-o"))
	p := decode[profileResponse](t, rec)
	if !p.OnboardingCompleted || p.LearningPlan == nil {
		t.Error("plan not persisted on profile")
	}
}

func TestDashboardUnlockProgression(t *testing.T) {
	h := newTestHandler(t)
	onboard(t, h, "user-d")

	rec := do(h, authedRequest(t, "GET", "/api/dashboard", nil, "user-d"))
	if rec.Code != http.StatusOK {
		t.Fatalf("dashboard: status = %d; body %s", rec.Code, rec.Body.String())
	}
	d := decode[dashboardResponse](t, rec)
	if d.TotalCount != 10 || len(d.Lessons) != 10 {
		t.Fatalf("lessons = %d/%d, want 10", len(d.Lessons), d.TotalCount)
	}
	if d.Lessons[0].Locked {
		t.Error("first lesson locked")
	}
	if !d.Lessons[1].Locked {
		t.Error("second lesson unlocked before first completed")
	}
	if d.Lessons[0].Content == "" {
		t.Error("template lesson content not filled from bank")
	}
	if len(d.Lessons[0].Quiz) != 3 {
		t.Errorf("template lesson quiz = %d questions, want 3", len(d.Lessons[0].Quiz))
	}

	// Completing lesson 1 unlocks lesson 2 only.
	rec = do(h, authedRequest(t, "POST", "/api/lessons/1/complete", nil, "user-d"))
	if rec.Code != http.StatusOK {
		t.Fatalf("complete: status = %d; body %s", rec.Code, rec.Body.String())
	}

	rec = do(h, authedRequest(t, "GET", "/api/dashboard", nil, "user-d"))
	d = decode[dashboardResponse](t, rec)
	if !d.Lessons[0].Completed {
		t.Error("lesson 1 not completed")
	}
	if d.Lessons[1].Locked {
		t.Error("lesson 2 still locked")
	}
	if !d.Lessons[2].Locked {
		t.Error("lesson 3 unlocked transitively")
	}
	if d.CompletedCount != 1 {
		t.Errorf("completedCount = %d, want 1", d.CompletedCount)
	}
	if d.Points != progress.CompletionPoints {
		t.Errorf("points = %d, want %d", d.Points, progress.CompletionPoints)
	}
}

func TestQuizSubmitScore(t *testing.T) {
	h := newTestHandler(t)
	onboard(t, h, "user-q")

	rec := do(h, authedRequest(t, "POST", "/api/lessons/2/quiz", map[string]int{"score": 85}, "user-q"))
	if rec.Code != http.StatusOK {
		t.Fatalf("quiz: status = %d; body %s", rec.Code, rec.Body.String())
	}
	resp := decode[map[string]any](t, rec)
	if resp["passed"] != true || resp["completed"] != true {
		t.Errorf("resp = %v, want passed and completed", resp)
	}

	// Failing retake revokes completion.
	rec = do(h, authedRequest(t, "POST", "/api/lessons/2/quiz", map[string]int{"score": 40}, "user-q"))
	resp = decode[map[string]any](t, rec)
	if resp["passed"] != false || resp["completed"] != false {
		t.Errorf("resp = %v, want failed", resp)
	}

	rec = do(h, authedRequest(t, "POST", "/api/lessons/2/quiz", map[string]int{"score": 200}, "user-q"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("out of range: status = %d, want 400", rec.Code)
	}
}

func TestQuizSubmitAnswers(t *testing.T) {
	h := newTestHandler(t)
	onboard(t, h, "user-a")

	// Lesson 1's bank quiz: answer the first two correctly, miss the third.
	rec := do(h, authedRequest(t, "GET", "/api/dashboard", nil, "user-a"))
	d := decode[dashboardResponse](t, rec)
	q := d.Lessons[0].Quiz
	if len(q) != 3 {
		t.Fatalf("quiz questions = %d, want 3", len(q))
	}
	answers := []string{q[0].CorrectAnswer, q[1].CorrectAnswer, "definitely wrong"}

	rec = do(h, authedRequest(t, "POST", "/api/lessons/1/quiz", map[string]any{"answers": answers}, "user-a"))
	if rec.Code != http.StatusOK {
		t.Fatalf("quiz: status = %d; body %s", rec.Code, rec.Body.String())
	}
	resp := decode[map[string]any](t, rec)
	if int(resp["score"].(float64)) != 67 {
		t.Errorf("score = %v, want 67", resp["score"])
	}
	if resp["passed"] != false {
		t.Error("67 should not pass")
	}

	// Wrong answer count is a client error.
	rec = do(h, authedRequest(t, "POST", "/api/lessons/1/quiz", map[string]any{"answers": answers[:2]}, "user-a"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("short answers: status = %d, want 400", rec.Code)
	}

	// Neither score nor answers.
	rec = do(h, authedRequest(t, "POST", "/api/lessons/1/quiz", map[string]any{}, "user-a"))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("empty submit: status = %d, want 400", rec.Code)
	}
}
