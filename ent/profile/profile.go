// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the profile type in the database.
	Label = "profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldEmail holds the string denoting the email field in the database.
	FieldEmail = "email"
	// FieldFullName holds the string denoting the full_name field in the database.
	FieldFullName = "full_name"
	// FieldCountry holds the string denoting the country field in the database.
	FieldCountry = "country"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldAgeGroup holds the string denoting the age_group field in the database.
	FieldAgeGroup = "age_group"
	// FieldIncomeRange holds the string denoting the income_range field in the database.
	FieldIncomeRange = "income_range"
	// FieldCulturalValue holds the string denoting the cultural_value field in the database.
	FieldCulturalValue = "cultural_value"
	// FieldFinancialGoals holds the string denoting the financial_goals field in the database.
	FieldFinancialGoals = "financial_goals"
	// FieldLearningPlan holds the string denoting the learning_plan field in the database.
	FieldLearningPlan = "learning_plan"
	// FieldOnboardingCompleted holds the string denoting the onboarding_completed field in the database.
	FieldOnboardingCompleted = "onboarding_completed"
	// FieldSimpleMode holds the string denoting the simple_mode field in the database.
	FieldSimpleMode = "simple_mode"
	// FieldPoints holds the string denoting the points field in the database.
	FieldPoints = "points"
	// FieldStreakDays holds the string denoting the streak_days field in the database.
	FieldStreakDays = "streak_days"
	// FieldLastActive holds the string denoting the last_active field in the database.
	FieldLastActive = "last_active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the profile in the database.
	Table = "profiles"
)

// Columns holds all SQL columns for profile fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldEmail,
	FieldFullName,
	FieldCountry,
	FieldLanguage,
	FieldAgeGroup,
	FieldIncomeRange,
	FieldCulturalValue,
	FieldFinancialGoals,
	FieldLearningPlan,
	FieldOnboardingCompleted,
	FieldSimpleMode,
	FieldPoints,
	FieldStreakDays,
	FieldLastActive,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEmail holds the default value on creation for the "email" field.
	DefaultEmail string
	// DefaultFullName holds the default value on creation for the "full_name" field.
	DefaultFullName string
	// DefaultCountry holds the default value on creation for the "country" field.
	DefaultCountry string
	// DefaultLanguage holds the default value on creation for the "language" field.
	DefaultLanguage string
	// DefaultAgeGroup holds the default value on creation for the "age_group" field.
	DefaultAgeGroup string
	// DefaultIncomeRange holds the default value on creation for the "income_range" field.
	DefaultIncomeRange string
	// DefaultCulturalValue holds the default value on creation for the "cultural_value" field.
	DefaultCulturalValue string
	// DefaultFinancialGoals holds the default value on creation for the "financial_goals" field.
	DefaultFinancialGoals string
	// DefaultOnboardingCompleted holds the default value on creation for the "onboarding_completed" field.
	DefaultOnboardingCompleted bool
	// DefaultSimpleMode holds the default value on creation for the "simple_mode" field.
	DefaultSimpleMode bool
	// DefaultPoints holds the default value on creation for the "points" field.
	DefaultPoints int
	// PointsValidator is a validator for the "points" field. It is called by the builders before save.
	PointsValidator func(int) error
	// DefaultStreakDays holds the default value on creation for the "streak_days" field.
	DefaultStreakDays int
	// StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	StreakDaysValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the Profile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByEmail orders the results by the email field.
func ByEmail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmail, opts...).ToFunc()
}

// ByFullName orders the results by the full_name field.
func ByFullName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullName, opts...).ToFunc()
}

// ByCountry orders the results by the country field.
func ByCountry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCountry, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByAgeGroup orders the results by the age_group field.
func ByAgeGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeGroup, opts...).ToFunc()
}

// ByIncomeRange orders the results by the income_range field.
func ByIncomeRange(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncomeRange, opts...).ToFunc()
}

// ByCulturalValue orders the results by the cultural_value field.
func ByCulturalValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCulturalValue, opts...).ToFunc()
}

// ByFinancialGoals orders the results by the financial_goals field.
func ByFinancialGoals(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinancialGoals, opts...).ToFunc()
}

// ByOnboardingCompleted orders the results by the onboarding_completed field.
func ByOnboardingCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOnboardingCompleted, opts...).ToFunc()
}

// BySimpleMode orders the results by the simple_mode field.
func BySimpleMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSimpleMode, opts...).ToFunc()
}

// ByPoints orders the results by the points field.
func ByPoints(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoints, opts...).ToFunc()
}

// ByStreakDays orders the results by the streak_days field.
func ByStreakDays(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStreakDays, opts...).ToFunc()
}

// ByLastActive orders the results by the last_active field.
func ByLastActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
