// Code generated by ent, DO NOT EDIT.

package profile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/barkoapp/barko/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// Email applies equality check predicate on the "email" field. It's identical to EmailEQ.
func Email(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldEmail, v))
}

// FullName applies equality check predicate on the "full_name" field. It's identical to FullNameEQ.
func FullName(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldFullName, v))
}

// Country applies equality check predicate on the "country" field. It's identical to CountryEQ.
func Country(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCountry, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLanguage, v))
}

// AgeGroup applies equality check predicate on the "age_group" field. It's identical to AgeGroupEQ.
func AgeGroup(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAgeGroup, v))
}

// IncomeRange applies equality check predicate on the "income_range" field. It's identical to IncomeRangeEQ.
func IncomeRange(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldIncomeRange, v))
}

// CulturalValue applies equality check predicate on the "cultural_value" field. It's identical to CulturalValueEQ.
func CulturalValue(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCulturalValue, v))
}

// FinancialGoals applies equality check predicate on the "financial_goals" field. It's identical to FinancialGoalsEQ.
func FinancialGoals(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldFinancialGoals, v))
}

// OnboardingCompleted applies equality check predicate on the "onboarding_completed" field. It's identical to OnboardingCompletedEQ.
func OnboardingCompleted(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldOnboardingCompleted, v))
}

// SimpleMode applies equality check predicate on the "simple_mode" field. It's identical to SimpleModeEQ.
func SimpleMode(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSimpleMode, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPoints, v))
}

// StreakDays applies equality check predicate on the "streak_days" field. It's identical to StreakDaysEQ.
func StreakDays(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakDays, v))
}

// LastActive applies equality check predicate on the "last_active" field. It's identical to LastActiveEQ.
func LastActive(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldUserID, v))
}

// EmailEQ applies the EQ predicate on the "email" field.
func EmailEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldEmail, v))
}

// EmailNEQ applies the NEQ predicate on the "email" field.
func EmailNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldEmail, v))
}

// EmailIn applies the In predicate on the "email" field.
func EmailIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldEmail, vs...))
}

// EmailNotIn applies the NotIn predicate on the "email" field.
func EmailNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldEmail, vs...))
}

// EmailGT applies the GT predicate on the "email" field.
func EmailGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldEmail, v))
}

// EmailGTE applies the GTE predicate on the "email" field.
func EmailGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldEmail, v))
}

// EmailLT applies the LT predicate on the "email" field.
func EmailLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldEmail, v))
}

// EmailLTE applies the LTE predicate on the "email" field.
func EmailLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldEmail, v))
}

// EmailContains applies the Contains predicate on the "email" field.
func EmailContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldEmail, v))
}

// EmailHasPrefix applies the HasPrefix predicate on the "email" field.
func EmailHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldEmail, v))
}

// EmailHasSuffix applies the HasSuffix predicate on the "email" field.
func EmailHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldEmail, v))
}

// EmailEqualFold applies the EqualFold predicate on the "email" field.
func EmailEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldEmail, v))
}

// EmailContainsFold applies the ContainsFold predicate on the "email" field.
func EmailContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldEmail, v))
}

// FullNameEQ applies the EQ predicate on the "full_name" field.
func FullNameEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldFullName, v))
}

// FullNameNEQ applies the NEQ predicate on the "full_name" field.
func FullNameNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldFullName, v))
}

// FullNameIn applies the In predicate on the "full_name" field.
func FullNameIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldFullName, vs...))
}

// FullNameNotIn applies the NotIn predicate on the "full_name" field.
func FullNameNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldFullName, vs...))
}

// FullNameGT applies the GT predicate on the "full_name" field.
func FullNameGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldFullName, v))
}

// FullNameGTE applies the GTE predicate on the "full_name" field.
func FullNameGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldFullName, v))
}

// FullNameLT applies the LT predicate on the "full_name" field.
func FullNameLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldFullName, v))
}

// FullNameLTE applies the LTE predicate on the "full_name" field.
func FullNameLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldFullName, v))
}

// FullNameContains applies the Contains predicate on the "full_name" field.
func FullNameContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldFullName, v))
}

// FullNameHasPrefix applies the HasPrefix predicate on the "full_name" field.
func FullNameHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldFullName, v))
}

// FullNameHasSuffix applies the HasSuffix predicate on the "full_name" field.
func FullNameHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldFullName, v))
}

// FullNameEqualFold applies the EqualFold predicate on the "full_name" field.
func FullNameEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldFullName, v))
}

// FullNameContainsFold applies the ContainsFold predicate on the "full_name" field.
func FullNameContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldFullName, v))
}

// CountryEQ applies the EQ predicate on the "country" field.
func CountryEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCountry, v))
}

// CountryNEQ applies the NEQ predicate on the "country" field.
func CountryNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCountry, v))
}

// CountryIn applies the In predicate on the "country" field.
func CountryIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCountry, vs...))
}

// CountryNotIn applies the NotIn predicate on the "country" field.
func CountryNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCountry, vs...))
}

// CountryGT applies the GT predicate on the "country" field.
func CountryGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCountry, v))
}

// CountryGTE applies the GTE predicate on the "country" field.
func CountryGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCountry, v))
}

// CountryLT applies the LT predicate on the "country" field.
func CountryLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCountry, v))
}

// CountryLTE applies the LTE predicate on the "country" field.
func CountryLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCountry, v))
}

// CountryContains applies the Contains predicate on the "country" field.
func CountryContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldCountry, v))
}

// CountryHasPrefix applies the HasPrefix predicate on the "country" field.
func CountryHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldCountry, v))
}

// CountryHasSuffix applies the HasSuffix predicate on the "country" field.
func CountryHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldCountry, v))
}

// CountryEqualFold applies the EqualFold predicate on the "country" field.
func CountryEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldCountry, v))
}

// CountryContainsFold applies the ContainsFold predicate on the "country" field.
func CountryContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldCountry, v))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldLanguage, v))
}

// AgeGroupEQ applies the EQ predicate on the "age_group" field.
func AgeGroupEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldAgeGroup, v))
}

// AgeGroupNEQ applies the NEQ predicate on the "age_group" field.
func AgeGroupNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldAgeGroup, v))
}

// AgeGroupIn applies the In predicate on the "age_group" field.
func AgeGroupIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldAgeGroup, vs...))
}

// AgeGroupNotIn applies the NotIn predicate on the "age_group" field.
func AgeGroupNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldAgeGroup, vs...))
}

// AgeGroupGT applies the GT predicate on the "age_group" field.
func AgeGroupGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldAgeGroup, v))
}

// AgeGroupGTE applies the GTE predicate on the "age_group" field.
func AgeGroupGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldAgeGroup, v))
}

// AgeGroupLT applies the LT predicate on the "age_group" field.
func AgeGroupLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldAgeGroup, v))
}

// AgeGroupLTE applies the LTE predicate on the "age_group" field.
func AgeGroupLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldAgeGroup, v))
}

// AgeGroupContains applies the Contains predicate on the "age_group" field.
func AgeGroupContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldAgeGroup, v))
}

// AgeGroupHasPrefix applies the HasPrefix predicate on the "age_group" field.
func AgeGroupHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldAgeGroup, v))
}

// AgeGroupHasSuffix applies the HasSuffix predicate on the "age_group" field.
func AgeGroupHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldAgeGroup, v))
}

// AgeGroupEqualFold applies the EqualFold predicate on the "age_group" field.
func AgeGroupEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldAgeGroup, v))
}

// AgeGroupContainsFold applies the ContainsFold predicate on the "age_group" field.
func AgeGroupContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldAgeGroup, v))
}

// IncomeRangeEQ applies the EQ predicate on the "income_range" field.
func IncomeRangeEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldIncomeRange, v))
}

// IncomeRangeNEQ applies the NEQ predicate on the "income_range" field.
func IncomeRangeNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldIncomeRange, v))
}

// IncomeRangeIn applies the In predicate on the "income_range" field.
func IncomeRangeIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldIncomeRange, vs...))
}

// IncomeRangeNotIn applies the NotIn predicate on the "income_range" field.
func IncomeRangeNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldIncomeRange, vs...))
}

// IncomeRangeGT applies the GT predicate on the "income_range" field.
func IncomeRangeGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldIncomeRange, v))
}

// IncomeRangeGTE applies the GTE predicate on the "income_range" field.
func IncomeRangeGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldIncomeRange, v))
}

// IncomeRangeLT applies the LT predicate on the "income_range" field.
func IncomeRangeLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldIncomeRange, v))
}

// IncomeRangeLTE applies the LTE predicate on the "income_range" field.
func IncomeRangeLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldIncomeRange, v))
}

// IncomeRangeContains applies the Contains predicate on the "income_range" field.
func IncomeRangeContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldIncomeRange, v))
}

// IncomeRangeHasPrefix applies the HasPrefix predicate on the "income_range" field.
func IncomeRangeHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldIncomeRange, v))
}

// IncomeRangeHasSuffix applies the HasSuffix predicate on the "income_range" field.
func IncomeRangeHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldIncomeRange, v))
}

// IncomeRangeEqualFold applies the EqualFold predicate on the "income_range" field.
func IncomeRangeEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldIncomeRange, v))
}

// IncomeRangeContainsFold applies the ContainsFold predicate on the "income_range" field.
func IncomeRangeContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldIncomeRange, v))
}

// CulturalValueEQ applies the EQ predicate on the "cultural_value" field.
func CulturalValueEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCulturalValue, v))
}

// CulturalValueNEQ applies the NEQ predicate on the "cultural_value" field.
func CulturalValueNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCulturalValue, v))
}

// CulturalValueIn applies the In predicate on the "cultural_value" field.
func CulturalValueIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCulturalValue, vs...))
}

// CulturalValueNotIn applies the NotIn predicate on the "cultural_value" field.
func CulturalValueNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCulturalValue, vs...))
}

// CulturalValueGT applies the GT predicate on the "cultural_value" field.
func CulturalValueGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCulturalValue, v))
}

// CulturalValueGTE applies the GTE predicate on the "cultural_value" field.
func CulturalValueGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCulturalValue, v))
}

// CulturalValueLT applies the LT predicate on the "cultural_value" field.
func CulturalValueLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCulturalValue, v))
}

// CulturalValueLTE applies the LTE predicate on the "cultural_value" field.
func CulturalValueLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCulturalValue, v))
}

// CulturalValueContains applies the Contains predicate on the "cultural_value" field.
func CulturalValueContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldCulturalValue, v))
}

// CulturalValueHasPrefix applies the HasPrefix predicate on the "cultural_value" field.
func CulturalValueHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldCulturalValue, v))
}

// CulturalValueHasSuffix applies the HasSuffix predicate on the "cultural_value" field.
func CulturalValueHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldCulturalValue, v))
}

// CulturalValueEqualFold applies the EqualFold predicate on the "cultural_value" field.
func CulturalValueEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldCulturalValue, v))
}

// CulturalValueContainsFold applies the ContainsFold predicate on the "cultural_value" field.
func CulturalValueContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldCulturalValue, v))
}

// FinancialGoalsEQ applies the EQ predicate on the "financial_goals" field.
func FinancialGoalsEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldFinancialGoals, v))
}

// FinancialGoalsNEQ applies the NEQ predicate on the "financial_goals" field.
func FinancialGoalsNEQ(v string) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldFinancialGoals, v))
}

// FinancialGoalsIn applies the In predicate on the "financial_goals" field.
func FinancialGoalsIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldFinancialGoals, vs...))
}

// FinancialGoalsNotIn applies the NotIn predicate on the "financial_goals" field.
func FinancialGoalsNotIn(vs ...string) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldFinancialGoals, vs...))
}

// FinancialGoalsGT applies the GT predicate on the "financial_goals" field.
func FinancialGoalsGT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldFinancialGoals, v))
}

// FinancialGoalsGTE applies the GTE predicate on the "financial_goals" field.
func FinancialGoalsGTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldFinancialGoals, v))
}

// FinancialGoalsLT applies the LT predicate on the "financial_goals" field.
func FinancialGoalsLT(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldFinancialGoals, v))
}

// FinancialGoalsLTE applies the LTE predicate on the "financial_goals" field.
func FinancialGoalsLTE(v string) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldFinancialGoals, v))
}

// FinancialGoalsContains applies the Contains predicate on the "financial_goals" field.
func FinancialGoalsContains(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContains(FieldFinancialGoals, v))
}

// FinancialGoalsHasPrefix applies the HasPrefix predicate on the "financial_goals" field.
func FinancialGoalsHasPrefix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasPrefix(FieldFinancialGoals, v))
}

// FinancialGoalsHasSuffix applies the HasSuffix predicate on the "financial_goals" field.
func FinancialGoalsHasSuffix(v string) predicate.Profile {
	return predicate.Profile(sql.FieldHasSuffix(FieldFinancialGoals, v))
}

// FinancialGoalsEqualFold applies the EqualFold predicate on the "financial_goals" field.
func FinancialGoalsEqualFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldEqualFold(FieldFinancialGoals, v))
}

// FinancialGoalsContainsFold applies the ContainsFold predicate on the "financial_goals" field.
func FinancialGoalsContainsFold(v string) predicate.Profile {
	return predicate.Profile(sql.FieldContainsFold(FieldFinancialGoals, v))
}

// LearningPlanIsNil applies the IsNil predicate on the "learning_plan" field.
func LearningPlanIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLearningPlan))
}

// LearningPlanNotNil applies the NotNil predicate on the "learning_plan" field.
func LearningPlanNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLearningPlan))
}

// OnboardingCompletedEQ applies the EQ predicate on the "onboarding_completed" field.
func OnboardingCompletedEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldOnboardingCompleted, v))
}

// OnboardingCompletedNEQ applies the NEQ predicate on the "onboarding_completed" field.
func OnboardingCompletedNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldOnboardingCompleted, v))
}

// SimpleModeEQ applies the EQ predicate on the "simple_mode" field.
func SimpleModeEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldSimpleMode, v))
}

// SimpleModeNEQ applies the NEQ predicate on the "simple_mode" field.
func SimpleModeNEQ(v bool) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldSimpleMode, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldPoints, v))
}

// StreakDaysEQ applies the EQ predicate on the "streak_days" field.
func StreakDaysEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldStreakDays, v))
}

// StreakDaysNEQ applies the NEQ predicate on the "streak_days" field.
func StreakDaysNEQ(v int) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldStreakDays, v))
}

// StreakDaysIn applies the In predicate on the "streak_days" field.
func StreakDaysIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldStreakDays, vs...))
}

// StreakDaysNotIn applies the NotIn predicate on the "streak_days" field.
func StreakDaysNotIn(vs ...int) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldStreakDays, vs...))
}

// StreakDaysGT applies the GT predicate on the "streak_days" field.
func StreakDaysGT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldStreakDays, v))
}

// StreakDaysGTE applies the GTE predicate on the "streak_days" field.
func StreakDaysGTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldStreakDays, v))
}

// StreakDaysLT applies the LT predicate on the "streak_days" field.
func StreakDaysLT(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldStreakDays, v))
}

// StreakDaysLTE applies the LTE predicate on the "streak_days" field.
func StreakDaysLTE(v int) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldStreakDays, v))
}

// LastActiveEQ applies the EQ predicate on the "last_active" field.
func LastActiveEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldLastActive, v))
}

// LastActiveNEQ applies the NEQ predicate on the "last_active" field.
func LastActiveNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldLastActive, v))
}

// LastActiveIn applies the In predicate on the "last_active" field.
func LastActiveIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldLastActive, vs...))
}

// LastActiveNotIn applies the NotIn predicate on the "last_active" field.
func LastActiveNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldLastActive, vs...))
}

// LastActiveGT applies the GT predicate on the "last_active" field.
func LastActiveGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldLastActive, v))
}

// LastActiveGTE applies the GTE predicate on the "last_active" field.
func LastActiveGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldLastActive, v))
}

// LastActiveLT applies the LT predicate on the "last_active" field.
func LastActiveLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldLastActive, v))
}

// LastActiveLTE applies the LTE predicate on the "last_active" field.
func LastActiveLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldLastActive, v))
}

// LastActiveIsNil applies the IsNil predicate on the "last_active" field.
func LastActiveIsNil() predicate.Profile {
	return predicate.Profile(sql.FieldIsNull(FieldLastActive))
}

// LastActiveNotNil applies the NotNil predicate on the "last_active" field.
func LastActiveNotNil() predicate.Profile {
	return predicate.Profile(sql.FieldNotNull(FieldLastActive))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Profile {
	return predicate.Profile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Profile) predicate.Profile {
	return predicate.Profile(sql.NotPredicates(p))
}
