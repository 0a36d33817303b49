// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/barkoapp/barko/ent/lessonprogress"
	"github.com/barkoapp/barko/ent/llmrequestevent"
	"github.com/barkoapp/barko/ent/profile"
	"github.com/barkoapp/barko/ent/schema"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescCostUsd is the schema descriptor for cost_usd field.
	llmrequesteventDescCostUsd := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultCostUsd holds the default value on creation for the cost_usd field.
	llmrequestevent.DefaultCostUsd = llmrequesteventDescCostUsd.Default.(float64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	lessonprogressFields := schema.LessonProgress{}.Fields()
	_ = lessonprogressFields
	// lessonprogressDescCompleted is the schema descriptor for completed field.
	lessonprogressDescCompleted := lessonprogressFields[2].Descriptor()
	// lessonprogress.DefaultCompleted holds the default value on creation for the completed field.
	lessonprogress.DefaultCompleted = lessonprogressDescCompleted.Default.(bool)
	// lessonprogressDescAttempts is the schema descriptor for attempts field.
	lessonprogressDescAttempts := lessonprogressFields[4].Descriptor()
	// lessonprogress.DefaultAttempts holds the default value on creation for the attempts field.
	lessonprogress.DefaultAttempts = lessonprogressDescAttempts.Default.(int)
	// lessonprogress.AttemptsValidator is a validator for the "attempts" field. It is called by the builders before save.
	lessonprogress.AttemptsValidator = lessonprogressDescAttempts.Validators[0].(func(int) error)
	// lessonprogressDescCreatedAt is the schema descriptor for created_at field.
	lessonprogressDescCreatedAt := lessonprogressFields[6].Descriptor()
	// lessonprogress.DefaultCreatedAt holds the default value on creation for the created_at field.
	lessonprogress.DefaultCreatedAt = lessonprogressDescCreatedAt.Default.(func() time.Time)
	// lessonprogressDescUpdatedAt is the schema descriptor for updated_at field.
	lessonprogressDescUpdatedAt := lessonprogressFields[7].Descriptor()
	// lessonprogress.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	lessonprogress.DefaultUpdatedAt = lessonprogressDescUpdatedAt.Default.(func() time.Time)
	// lessonprogress.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	lessonprogress.UpdateDefaultUpdatedAt = lessonprogressDescUpdatedAt.UpdateDefault.(func() time.Time)
	profileFields := schema.Profile{}.Fields()
	_ = profileFields
	// profileDescEmail is the schema descriptor for email field.
	profileDescEmail := profileFields[1].Descriptor()
	// profile.DefaultEmail holds the default value on creation for the email field.
	profile.DefaultEmail = profileDescEmail.Default.(string)
	// profileDescFullName is the schema descriptor for full_name field.
	profileDescFullName := profileFields[2].Descriptor()
	// profile.DefaultFullName holds the default value on creation for the full_name field.
	profile.DefaultFullName = profileDescFullName.Default.(string)
	// profileDescCountry is the schema descriptor for country field.
	profileDescCountry := profileFields[3].Descriptor()
	// profile.DefaultCountry holds the default value on creation for the country field.
	profile.DefaultCountry = profileDescCountry.Default.(string)
	// profileDescLanguage is the schema descriptor for language field.
	profileDescLanguage := profileFields[4].Descriptor()
	// profile.DefaultLanguage holds the default value on creation for the language field.
	profile.DefaultLanguage = profileDescLanguage.Default.(string)
	// profileDescAgeGroup is the schema descriptor for age_group field.
	profileDescAgeGroup := profileFields[5].Descriptor()
	// profile.DefaultAgeGroup holds the default value on creation for the age_group field.
	profile.DefaultAgeGroup = profileDescAgeGroup.Default.(string)
	// profileDescIncomeRange is the schema descriptor for income_range field.
	profileDescIncomeRange := profileFields[6].Descriptor()
	// profile.DefaultIncomeRange holds the default value on creation for the income_range field.
	profile.DefaultIncomeRange = profileDescIncomeRange.Default.(string)
	// profileDescCulturalValue is the schema descriptor for cultural_value field.
	profileDescCulturalValue := profileFields[7].Descriptor()
	// profile.DefaultCulturalValue holds the default value on creation for the cultural_value field.
	profile.DefaultCulturalValue = profileDescCulturalValue.Default.(string)
	// profileDescFinancialGoals is the schema descriptor for financial_goals field.
	profileDescFinancialGoals := profileFields[8].Descriptor()
	// profile.DefaultFinancialGoals holds the default value on creation for the financial_goals field.
	profile.DefaultFinancialGoals = profileDescFinancialGoals.Default.(string)
	// profileDescOnboardingCompleted is the schema descriptor for onboarding_completed field.
	profileDescOnboardingCompleted := profileFields[10].Descriptor()
	// profile.DefaultOnboardingCompleted holds the default value on creation for the onboarding_completed field.
	profile.DefaultOnboardingCompleted = profileDescOnboardingCompleted.Default.(bool)
	// profileDescSimpleMode is the schema descriptor for simple_mode field.
	profileDescSimpleMode := profileFields[11].Descriptor()
	// profile.DefaultSimpleMode holds the default value on creation for the simple_mode field.
	profile.DefaultSimpleMode = profileDescSimpleMode.Default.(bool)
	// profileDescPoints is the schema descriptor for points field.
	profileDescPoints := profileFields[12].Descriptor()
	// profile.DefaultPoints holds the default value on creation for the points field.
	profile.DefaultPoints = profileDescPoints.Default.(int)
	// profile.PointsValidator is a validator for the "points" field. It is called by the builders before save.
	profile.PointsValidator = profileDescPoints.Validators[0].(func(int) error)
	// profileDescStreakDays is the schema descriptor for streak_days field.
	profileDescStreakDays := profileFields[13].Descriptor()
	// profile.DefaultStreakDays holds the default value on creation for the streak_days field.
	profile.DefaultStreakDays = profileDescStreakDays.Default.(int)
	// profile.StreakDaysValidator is a validator for the "streak_days" field. It is called by the builders before save.
	profile.StreakDaysValidator = profileDescStreakDays.Validators[0].(func(int) error)
	// profileDescCreatedAt is the schema descriptor for created_at field.
	profileDescCreatedAt := profileFields[15].Descriptor()
	// profile.DefaultCreatedAt holds the default value on creation for the created_at field.
	profile.DefaultCreatedAt = profileDescCreatedAt.Default.(func() time.Time)
	// profileDescUpdatedAt is the schema descriptor for updated_at field.
	profileDescUpdatedAt := profileFields[16].Descriptor()
	// profile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	profile.DefaultUpdatedAt = profileDescUpdatedAt.Default.(func() time.Time)
	// profile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	profile.UpdateDefaultUpdatedAt = profileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
