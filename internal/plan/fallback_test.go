package plan

import (
	"strings"
	"testing"
)

func TestFallbackAllLocales(t *testing.T) {
	for _, locale := range SupportedLocales {
		p := Fallback(locale, "30k_60k", "save more")
		if p.Language != locale {
			t.Errorf("%s: language = %q", locale, p.Language)
		}
		if len(p.Lessons) != 10 {
			t.Fatalf("%s: lessons = %d, want 10", locale, len(p.Lessons))
		}
		seen := map[string]bool{}
		for i, lesson := range p.Lessons {
			want := templateIDs[i]
			if lesson.ID != want {
				t.Errorf("%s: lesson %d id = %q, want %q", locale, i, lesson.ID, want)
			}
			if seen[lesson.ID] {
				t.Errorf("%s: duplicate lesson id %q", locale, lesson.ID)
			}
			seen[lesson.ID] = true
			if lesson.Title == "" || lesson.Description == "" || lesson.Why == "" {
				t.Errorf("%s: lesson %s has empty text", locale, lesson.ID)
			}
			if lesson.Difficulty != templateDifficulty[lesson.ID] {
				t.Errorf("%s: lesson %s difficulty = %d", locale, lesson.ID, lesson.Difficulty)
			}
			if lesson.EstimatedMinutes != templateMinutes[lesson.ID] {
				t.Errorf("%s: lesson %s minutes = %d", locale, lesson.ID, lesson.EstimatedMinutes)
			}
		}
		if len(p.RecommendedPath) != 10 || p.RecommendedPath[0] != "1" || p.RecommendedPath[9] != "10" {
			t.Errorf("%s: recommendedPath = %v", locale, p.RecommendedPath)
		}
		if p.EstimatedCompletionWeeks != 5 {
			t.Errorf("%s: weeks = %d, want 5", locale, p.EstimatedCompletionWeeks)
		}
		if p.PersonalizedMessage == "" {
			t.Errorf("%s: empty personalized message", locale)
		}
	}
}

func TestFallbackUnsupportedLocale(t *testing.T) {
	p := Fallback("tlh", "30k_60k", "save")
	if p.Language != "en" {
		t.Errorf("language = %q, want en", p.Language)
	}
}

func TestFallbackGoalOverrides(t *testing.T) {
	tests := []struct {
		goals    string
		lessonID string
		key      string
	}{
		{"I want to pay off my Debt fast", "5", "debt"},
		{"start INVESTING early", "6", "invest"},
		{"retire at 50", "7", "retire"},
		{"comfortable retirement", "7", "retire"},
		{"buy a house", "9", "house"},
		{"own property abroad", "9", "house"},
		{"start a business", "10", "business"},
	}
	for _, tt := range tests {
		p := Fallback("en", "30k_60k", tt.goals)
		want := locales["en"].WhyOverrides[tt.key]
		var got string
		for _, lesson := range p.Lessons {
			if lesson.ID == tt.lessonID {
				got = lesson.Why
			}
		}
		if got != want {
			t.Errorf("goals %q lesson %s: why = %q, want %q", tt.goals, tt.lessonID, got, want)
		}
	}
}

func TestFallbackNoOverrideWithoutTrigger(t *testing.T) {
	p := Fallback("en", "30k_60k", "just learn the basics")
	for _, lesson := range p.Lessons {
		if lesson.ID == "5" && lesson.Why != locales["en"].Lessons["5"].WhyDefault {
			t.Errorf("lesson 5 why = %q, want default", lesson.Why)
		}
	}
}

func TestFallbackEnglishEndToEnd(t *testing.T) {
	p := Fallback("en", "30k_60k", "pay off debt and invest")

	if !strings.Contains(p.PersonalizedMessage, "$30,000-$60,000 per year") {
		t.Errorf("message missing income label: %q", p.PersonalizedMessage)
	}
	if !strings.Contains(p.PersonalizedMessage, "pay off debt and invest") {
		t.Errorf("message missing goals: %q", p.PersonalizedMessage)
	}

	if why := p.Lessons[4].Why; why != "This directly addresses your goal of managing debt." {
		t.Errorf("lesson 5 why = %q", why)
	}
	if why := p.Lessons[5].Why; why != "This will help you achieve your investment goals." {
		t.Errorf("lesson 6 why = %q", why)
	}

	// Lesson 1 always carries the income clause.
	if why := p.Lessons[0].Why; !strings.HasPrefix(why, "With an income $30,000-$60,000 per year, ") {
		t.Errorf("lesson 1 why = %q", why)
	}
}

func TestFallbackUnknownIncomeRange(t *testing.T) {
	p := Fallback("en", "mystery", "save")
	if !strings.Contains(p.PersonalizedMessage, "not specified") {
		t.Errorf("message = %q, want unspecified income label", p.PersonalizedMessage)
	}
}

func TestFallbackDeterministic(t *testing.T) {
	a := Fallback("fr", "over_150k", "retire early")
	b := Fallback("fr", "over_150k", "retire early")
	if a.PersonalizedMessage != b.PersonalizedMessage || len(a.Lessons) != len(b.Lessons) {
		t.Fatal("fallback not deterministic")
	}
	for i := range a.Lessons {
		if a.Lessons[i].Why != b.Lessons[i].Why {
			t.Fatalf("lesson %d differs between runs", i)
		}
	}
}

func TestResolveLocale(t *testing.T) {
	tests := map[string]string{
		"en": "en", "FR": "fr", " es ": "es", "de": "de",
		"pt": "en", "": "en", "EN-us": "en",
	}
	for in, want := range tests {
		if got := ResolveLocale(in); got != want {
			t.Errorf("ResolveLocale(%q) = %q, want %q", in, got, want)
		}
	}
}
