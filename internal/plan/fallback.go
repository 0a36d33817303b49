package plan

import (
	"fmt"
	"strings"
)

// whyOverrideRules maps a lesson id to the goal-keyword substrings that
// swap its default rationale for the goal-specific one. Matching is
// case-insensitive against the raw financialGoals text.
var whyOverrideRules = []struct {
	LessonID string
	Key      string
	Triggers []string
}{
	{"5", "debt", []string{"debt"}},
	{"6", "invest", []string{"invest"}},
	{"7", "retire", []string{"retire", "retirement"}},
	{"9", "house", []string{"house", "property"}},
	{"10", "business", []string{"business"}},
}

// Fallback is the deterministic template generator. It never fails: for any
// input it produces exactly ten lessons in the resolved locale.
//
// The output is pure in (locale, incomeRange, financialGoals); the other
// onboarding answers do not influence it.
func Fallback(locale, incomeRange, financialGoals string) *LearningPlan {
	useLocale := ResolveLocale(locale)
	t := locales[useLocale]

	label := t.incomeLabel(incomeRange)
	goals := strings.ToLower(financialGoals)

	lessons := make([]Lesson, 0, len(templateIDs))
	path := make([]string, 0, len(templateIDs))
	for _, id := range templateIDs {
		tpl := t.Lessons[id]

		why := tpl.WhyDefault
		for _, rule := range whyOverrideRules {
			if rule.LessonID != id {
				continue
			}
			for _, trigger := range rule.Triggers {
				if strings.Contains(goals, trigger) {
					why = t.WhyOverrides[rule.Key]
					break
				}
			}
		}
		// Lesson 1 always carries the income clause.
		if id == "1" {
			why = fmt.Sprintf(t.IncomeWhyFormat, label, tpl.WhyDefault)
		}

		lessons = append(lessons, Lesson{
			ID:               id,
			Title:            tpl.Title,
			Description:      tpl.Description,
			Category:         tpl.Category,
			Difficulty:       templateDifficulty[id],
			EstimatedMinutes: templateMinutes[id],
			Why:              why,
		})
		path = append(path, id)
	}

	return &LearningPlan{
		Lessons:                  lessons,
		RecommendedPath:          path,
		EstimatedCompletionWeeks: (len(lessons) + 1) / 2,
		PersonalizedMessage:      fmt.Sprintf(t.MessageFormat, label, financialGoals),
		Language:                 useLocale,
	}
}
