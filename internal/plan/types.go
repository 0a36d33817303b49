package plan

// Category is the fixed lesson taxonomy. Generated plans must only use
// these values; anything else fails structural validation.
type Category string

const (
	CategoryIncome     Category = "Income Management"
	CategorySavings    Category = "Savings"
	CategoryBudgeting  Category = "Budgeting"
	CategoryCredit     Category = "Credit"
	CategoryDebt       Category = "Debt"
	CategoryInvesting  Category = "Investing"
	CategoryRetirement Category = "Retirement"
	CategoryTaxes      Category = "Taxes"
	CategoryRealEstate Category = "Real Estate"
)

// Categories returns the taxonomy in display order.
func Categories() []Category {
	return []Category{
		CategoryIncome, CategorySavings, CategoryBudgeting, CategoryCredit,
		CategoryDebt, CategoryInvesting, CategoryRetirement, CategoryTaxes,
		CategoryRealEstate,
	}
}

// QuizQuestion is a single multiple-choice question embedded in a lesson.
// CorrectAnswer must equal one of the four Options exactly.
type QuizQuestion struct {
	ID            string   `json:"id"`
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
}

// Lesson is one learning unit of a plan. Quiz may be empty for template
// lessons; the static content bank supplies questions in that case.
type Lesson struct {
	ID               string         `json:"id"`
	Title            string         `json:"title"`
	Description      string         `json:"description"`
	Category         string         `json:"category"`
	Difficulty       int            `json:"difficulty"`
	EstimatedMinutes int            `json:"estimatedMinutes"`
	Content          string         `json:"content,omitempty"`
	Why              string         `json:"why"`
	Quiz             []QuizQuestion `json:"quiz,omitempty"`
}

// LearningPlan is the ordered curriculum assigned to one user. Lesson order
// is the prerequisite chain. RecommendedPath and Language are filled by the
// deterministic generator only.
type LearningPlan struct {
	Lessons                  []Lesson `json:"lessons"`
	RecommendedPath          []string `json:"recommendedPath,omitempty"`
	EstimatedCompletionWeeks int      `json:"estimatedCompletionWeeks"`
	PersonalizedMessage      string   `json:"personalizedMessage"`
	Language                 string   `json:"language,omitempty"`
}

// AnswerSet holds a user's onboarding answers. Only FinancialGoals is
// required to be non-empty before generation.
type AnswerSet struct {
	Country        string `json:"country"`
	Language       string `json:"language"`
	AgeGroup       string `json:"ageGroup"`
	IncomeRange    string `json:"incomeRange"`
	CulturalValue  string `json:"culturalValue"`
	FinancialGoals string `json:"financialGoals"`
}
