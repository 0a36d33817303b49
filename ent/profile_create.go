// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/barkoapp/barko/ent/profile"
	"github.com/barkoapp/barko/internal/plan"
)

// ProfileCreate is the builder for creating a Profile entity.
type ProfileCreate struct {
	config
	mutation *ProfileMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUserID sets the "user_id" field.
func (_c *ProfileCreate) SetUserID(v string) *ProfileCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetEmail sets the "email" field.
func (_c *ProfileCreate) SetEmail(v string) *ProfileCreate {
	_c.mutation.SetEmail(v)
	return _c
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableEmail(v *string) *ProfileCreate {
	if v != nil {
		_c.SetEmail(*v)
	}
	return _c
}

// SetFullName sets the "full_name" field.
func (_c *ProfileCreate) SetFullName(v string) *ProfileCreate {
	_c.mutation.SetFullName(v)
	return _c
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableFullName(v *string) *ProfileCreate {
	if v != nil {
		_c.SetFullName(*v)
	}
	return _c
}

// SetCountry sets the "country" field.
func (_c *ProfileCreate) SetCountry(v string) *ProfileCreate {
	_c.mutation.SetCountry(v)
	return _c
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCountry(v *string) *ProfileCreate {
	if v != nil {
		_c.SetCountry(*v)
	}
	return _c
}

// SetLanguage sets the "language" field.
func (_c *ProfileCreate) SetLanguage(v string) *ProfileCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLanguage(v *string) *ProfileCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetAgeGroup sets the "age_group" field.
func (_c *ProfileCreate) SetAgeGroup(v string) *ProfileCreate {
	_c.mutation.SetAgeGroup(v)
	return _c
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableAgeGroup(v *string) *ProfileCreate {
	if v != nil {
		_c.SetAgeGroup(*v)
	}
	return _c
}

// SetIncomeRange sets the "income_range" field.
func (_c *ProfileCreate) SetIncomeRange(v string) *ProfileCreate {
	_c.mutation.SetIncomeRange(v)
	return _c
}

// SetNillableIncomeRange sets the "income_range" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableIncomeRange(v *string) *ProfileCreate {
	if v != nil {
		_c.SetIncomeRange(*v)
	}
	return _c
}

// SetCulturalValue sets the "cultural_value" field.
func (_c *ProfileCreate) SetCulturalValue(v string) *ProfileCreate {
	_c.mutation.SetCulturalValue(v)
	return _c
}

// SetNillableCulturalValue sets the "cultural_value" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCulturalValue(v *string) *ProfileCreate {
	if v != nil {
		_c.SetCulturalValue(*v)
	}
	return _c
}

// SetFinancialGoals sets the "financial_goals" field.
func (_c *ProfileCreate) SetFinancialGoals(v string) *ProfileCreate {
	_c.mutation.SetFinancialGoals(v)
	return _c
}

// SetNillableFinancialGoals sets the "financial_goals" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableFinancialGoals(v *string) *ProfileCreate {
	if v != nil {
		_c.SetFinancialGoals(*v)
	}
	return _c
}

// SetLearningPlan sets the "learning_plan" field.
func (_c *ProfileCreate) SetLearningPlan(v *plan.LearningPlan) *ProfileCreate {
	_c.mutation.SetLearningPlan(v)
	return _c
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (_c *ProfileCreate) SetOnboardingCompleted(v bool) *ProfileCreate {
	_c.mutation.SetOnboardingCompleted(v)
	return _c
}

// SetNillableOnboardingCompleted sets the "onboarding_completed" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableOnboardingCompleted(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetOnboardingCompleted(*v)
	}
	return _c
}

// SetSimpleMode sets the "simple_mode" field.
func (_c *ProfileCreate) SetSimpleMode(v bool) *ProfileCreate {
	_c.mutation.SetSimpleMode(v)
	return _c
}

// SetNillableSimpleMode sets the "simple_mode" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableSimpleMode(v *bool) *ProfileCreate {
	if v != nil {
		_c.SetSimpleMode(*v)
	}
	return _c
}

// SetPoints sets the "points" field.
func (_c *ProfileCreate) SetPoints(v int) *ProfileCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *ProfileCreate) SetNillablePoints(v *int) *ProfileCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetStreakDays sets the "streak_days" field.
func (_c *ProfileCreate) SetStreakDays(v int) *ProfileCreate {
	_c.mutation.SetStreakDays(v)
	return _c
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableStreakDays(v *int) *ProfileCreate {
	if v != nil {
		_c.SetStreakDays(*v)
	}
	return _c
}

// SetLastActive sets the "last_active" field.
func (_c *ProfileCreate) SetLastActive(v time.Time) *ProfileCreate {
	_c.mutation.SetLastActive(v)
	return _c
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableLastActive(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetLastActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProfileCreate) SetCreatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableCreatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ProfileCreate) SetUpdatedAt(v time.Time) *ProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ProfileCreate) SetNillableUpdatedAt(v *time.Time) *ProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the ProfileMutation object of the builder.
func (_c *ProfileCreate) Mutation() *ProfileMutation {
	return _c.mutation
}

// Save creates the Profile in the database.
func (_c *ProfileCreate) Save(ctx context.Context) (*Profile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProfileCreate) SaveX(ctx context.Context) *Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProfileCreate) defaults() {
	if _, ok := _c.mutation.Email(); !ok {
		v := profile.DefaultEmail
		_c.mutation.SetEmail(v)
	}
	if _, ok := _c.mutation.FullName(); !ok {
		v := profile.DefaultFullName
		_c.mutation.SetFullName(v)
	}
	if _, ok := _c.mutation.Country(); !ok {
		v := profile.DefaultCountry
		_c.mutation.SetCountry(v)
	}
	if _, ok := _c.mutation.Language(); !ok {
		v := profile.DefaultLanguage
		_c.mutation.SetLanguage(v)
	}
	if _, ok := _c.mutation.AgeGroup(); !ok {
		v := profile.DefaultAgeGroup
		_c.mutation.SetAgeGroup(v)
	}
	if _, ok := _c.mutation.IncomeRange(); !ok {
		v := profile.DefaultIncomeRange
		_c.mutation.SetIncomeRange(v)
	}
	if _, ok := _c.mutation.CulturalValue(); !ok {
		v := profile.DefaultCulturalValue
		_c.mutation.SetCulturalValue(v)
	}
	if _, ok := _c.mutation.FinancialGoals(); !ok {
		v := profile.DefaultFinancialGoals
		_c.mutation.SetFinancialGoals(v)
	}
	if _, ok := _c.mutation.OnboardingCompleted(); !ok {
		v := profile.DefaultOnboardingCompleted
		_c.mutation.SetOnboardingCompleted(v)
	}
	if _, ok := _c.mutation.SimpleMode(); !ok {
		v := profile.DefaultSimpleMode
		_c.mutation.SetSimpleMode(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := profile.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		v := profile.DefaultStreakDays
		_c.mutation.SetStreakDays(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := profile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := profile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProfileCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Profile.user_id"`)}
	}
	if _, ok := _c.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Profile.email"`)}
	}
	if _, ok := _c.mutation.FullName(); !ok {
		return &ValidationError{Name: "full_name", err: errors.New(`ent: missing required field "Profile.full_name"`)}
	}
	if _, ok := _c.mutation.Country(); !ok {
		return &ValidationError{Name: "country", err: errors.New(`ent: missing required field "Profile.country"`)}
	}
	if _, ok := _c.mutation.Language(); !ok {
		return &ValidationError{Name: "language", err: errors.New(`ent: missing required field "Profile.language"`)}
	}
	if _, ok := _c.mutation.AgeGroup(); !ok {
		return &ValidationError{Name: "age_group", err: errors.New(`ent: missing required field "Profile.age_group"`)}
	}
	if _, ok := _c.mutation.IncomeRange(); !ok {
		return &ValidationError{Name: "income_range", err: errors.New(`ent: missing required field "Profile.income_range"`)}
	}
	if _, ok := _c.mutation.CulturalValue(); !ok {
		return &ValidationError{Name: "cultural_value", err: errors.New(`ent: missing required field "Profile.cultural_value"`)}
	}
	if _, ok := _c.mutation.FinancialGoals(); !ok {
		return &ValidationError{Name: "financial_goals", err: errors.New(`ent: missing required field "Profile.financial_goals"`)}
	}
	if _, ok := _c.mutation.OnboardingCompleted(); !ok {
		return &ValidationError{Name: "onboarding_completed", err: errors.New(`ent: missing required field "Profile.onboarding_completed"`)}
	}
	if _, ok := _c.mutation.SimpleMode(); !ok {
		return &ValidationError{Name: "simple_mode", err: errors.New(`ent: missing required field "Profile.simple_mode"`)}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "Profile.points"`)}
	}
	if v, ok := _c.mutation.Points(); ok {
		if err := profile.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Profile.points": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StreakDays(); !ok {
		return &ValidationError{Name: "streak_days", err: errors.New(`ent: missing required field "Profile.streak_days"`)}
	}
	if v, ok := _c.mutation.StreakDays(); ok {
		if err := profile.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "Profile.streak_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Profile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Profile.updated_at"`)}
	}
	return nil
}

func (_c *ProfileCreate) sqlSave(ctx context.Context) (*Profile, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProfileCreate) createSpec() (*Profile, *sqlgraph.CreateSpec) {
	var (
		_node = &Profile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(profile.Table, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(profile.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := _c.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
		_node.FullName = value
	}
	if value, ok := _c.mutation.Country(); ok {
		_spec.SetField(profile.FieldCountry, field.TypeString, value)
		_node.Country = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(profile.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.AgeGroup(); ok {
		_spec.SetField(profile.FieldAgeGroup, field.TypeString, value)
		_node.AgeGroup = value
	}
	if value, ok := _c.mutation.IncomeRange(); ok {
		_spec.SetField(profile.FieldIncomeRange, field.TypeString, value)
		_node.IncomeRange = value
	}
	if value, ok := _c.mutation.CulturalValue(); ok {
		_spec.SetField(profile.FieldCulturalValue, field.TypeString, value)
		_node.CulturalValue = value
	}
	if value, ok := _c.mutation.FinancialGoals(); ok {
		_spec.SetField(profile.FieldFinancialGoals, field.TypeString, value)
		_node.FinancialGoals = value
	}
	if value, ok := _c.mutation.LearningPlan(); ok {
		_spec.SetField(profile.FieldLearningPlan, field.TypeJSON, value)
		_node.LearningPlan = value
	}
	if value, ok := _c.mutation.OnboardingCompleted(); ok {
		_spec.SetField(profile.FieldOnboardingCompleted, field.TypeBool, value)
		_node.OnboardingCompleted = value
	}
	if value, ok := _c.mutation.SimpleMode(); ok {
		_spec.SetField(profile.FieldSimpleMode, field.TypeBool, value)
		_node.SimpleMode = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(profile.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.StreakDays(); ok {
		_spec.SetField(profile.FieldStreakDays, field.TypeInt, value)
		_node.StreakDays = value
	}
	if value, ok := _c.mutation.LastActive(); ok {
		_spec.SetField(profile.FieldLastActive, field.TypeTime, value)
		_node.LastActive = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(profile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.Create().
//		SetUserID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertOne {
	_c.conflict = opts
	return &ProfileUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreate) OnConflictColumns(columns ...string) *ProfileUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertOne{
		create: _c,
	}
}

type (
	// ProfileUpsertOne is the builder for "upsert"-ing
	//  one Profile node.
	ProfileUpsertOne struct {
		create *ProfileCreate
	}

	// ProfileUpsert is the "OnConflict" setter.
	ProfileUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmail sets the "email" field.
func (u *ProfileUpsert) SetEmail(v string) *ProfileUpsert {
	u.Set(profile.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateEmail() *ProfileUpsert {
	u.SetExcluded(profile.FieldEmail)
	return u
}

// SetFullName sets the "full_name" field.
func (u *ProfileUpsert) SetFullName(v string) *ProfileUpsert {
	u.Set(profile.FieldFullName, v)
	return u
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateFullName() *ProfileUpsert {
	u.SetExcluded(profile.FieldFullName)
	return u
}

// SetCountry sets the "country" field.
func (u *ProfileUpsert) SetCountry(v string) *ProfileUpsert {
	u.Set(profile.FieldCountry, v)
	return u
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateCountry() *ProfileUpsert {
	u.SetExcluded(profile.FieldCountry)
	return u
}

// SetLanguage sets the "language" field.
func (u *ProfileUpsert) SetLanguage(v string) *ProfileUpsert {
	u.Set(profile.FieldLanguage, v)
	return u
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLanguage() *ProfileUpsert {
	u.SetExcluded(profile.FieldLanguage)
	return u
}

// SetAgeGroup sets the "age_group" field.
func (u *ProfileUpsert) SetAgeGroup(v string) *ProfileUpsert {
	u.Set(profile.FieldAgeGroup, v)
	return u
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateAgeGroup() *ProfileUpsert {
	u.SetExcluded(profile.FieldAgeGroup)
	return u
}

// SetIncomeRange sets the "income_range" field.
func (u *ProfileUpsert) SetIncomeRange(v string) *ProfileUpsert {
	u.Set(profile.FieldIncomeRange, v)
	return u
}

// UpdateIncomeRange sets the "income_range" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateIncomeRange() *ProfileUpsert {
	u.SetExcluded(profile.FieldIncomeRange)
	return u
}

// SetCulturalValue sets the "cultural_value" field.
func (u *ProfileUpsert) SetCulturalValue(v string) *ProfileUpsert {
	u.Set(profile.FieldCulturalValue, v)
	return u
}

// UpdateCulturalValue sets the "cultural_value" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateCulturalValue() *ProfileUpsert {
	u.SetExcluded(profile.FieldCulturalValue)
	return u
}

// SetFinancialGoals sets the "financial_goals" field.
func (u *ProfileUpsert) SetFinancialGoals(v string) *ProfileUpsert {
	u.Set(profile.FieldFinancialGoals, v)
	return u
}

// UpdateFinancialGoals sets the "financial_goals" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateFinancialGoals() *ProfileUpsert {
	u.SetExcluded(profile.FieldFinancialGoals)
	return u
}

// SetLearningPlan sets the "learning_plan" field.
func (u *ProfileUpsert) SetLearningPlan(v *plan.LearningPlan) *ProfileUpsert {
	u.Set(profile.FieldLearningPlan, v)
	return u
}

// UpdateLearningPlan sets the "learning_plan" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLearningPlan() *ProfileUpsert {
	u.SetExcluded(profile.FieldLearningPlan)
	return u
}

// ClearLearningPlan clears the value of the "learning_plan" field.
func (u *ProfileUpsert) ClearLearningPlan() *ProfileUpsert {
	u.SetNull(profile.FieldLearningPlan)
	return u
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (u *ProfileUpsert) SetOnboardingCompleted(v bool) *ProfileUpsert {
	u.Set(profile.FieldOnboardingCompleted, v)
	return u
}

// UpdateOnboardingCompleted sets the "onboarding_completed" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateOnboardingCompleted() *ProfileUpsert {
	u.SetExcluded(profile.FieldOnboardingCompleted)
	return u
}

// SetSimpleMode sets the "simple_mode" field.
func (u *ProfileUpsert) SetSimpleMode(v bool) *ProfileUpsert {
	u.Set(profile.FieldSimpleMode, v)
	return u
}

// UpdateSimpleMode sets the "simple_mode" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateSimpleMode() *ProfileUpsert {
	u.SetExcluded(profile.FieldSimpleMode)
	return u
}

// SetPoints sets the "points" field.
func (u *ProfileUpsert) SetPoints(v int) *ProfileUpsert {
	u.Set(profile.FieldPoints, v)
	return u
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *ProfileUpsert) UpdatePoints() *ProfileUpsert {
	u.SetExcluded(profile.FieldPoints)
	return u
}

// AddPoints adds v to the "points" field.
func (u *ProfileUpsert) AddPoints(v int) *ProfileUpsert {
	u.Add(profile.FieldPoints, v)
	return u
}

// SetStreakDays sets the "streak_days" field.
func (u *ProfileUpsert) SetStreakDays(v int) *ProfileUpsert {
	u.Set(profile.FieldStreakDays, v)
	return u
}

// UpdateStreakDays sets the "streak_days" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateStreakDays() *ProfileUpsert {
	u.SetExcluded(profile.FieldStreakDays)
	return u
}

// AddStreakDays adds v to the "streak_days" field.
func (u *ProfileUpsert) AddStreakDays(v int) *ProfileUpsert {
	u.Add(profile.FieldStreakDays, v)
	return u
}

// SetLastActive sets the "last_active" field.
func (u *ProfileUpsert) SetLastActive(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldLastActive, v)
	return u
}

// UpdateLastActive sets the "last_active" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateLastActive() *ProfileUpsert {
	u.SetExcluded(profile.FieldLastActive)
	return u
}

// ClearLastActive clears the value of the "last_active" field.
func (u *ProfileUpsert) ClearLastActive() *ProfileUpsert {
	u.SetNull(profile.FieldLastActive)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsert) SetUpdatedAt(v time.Time) *ProfileUpsert {
	u.Set(profile.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsert) UpdateUpdatedAt() *ProfileUpsert {
	u.SetExcluded(profile.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProfileUpsertOne) UpdateNewValues() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.UserID(); exists {
			s.SetIgnore(profile.FieldUserID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(profile.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ProfileUpsertOne) Ignore() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertOne) DoNothing() *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreate.OnConflict
// documentation for more info.
func (u *ProfileUpsertOne) Update(set func(*ProfileUpsert)) *ProfileUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *ProfileUpsertOne) SetEmail(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateEmail() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateEmail()
	})
}

// SetFullName sets the "full_name" field.
func (u *ProfileUpsertOne) SetFullName(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateFullName() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFullName()
	})
}

// SetCountry sets the "country" field.
func (u *ProfileUpsertOne) SetCountry(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateCountry() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCountry()
	})
}

// SetLanguage sets the "language" field.
func (u *ProfileUpsertOne) SetLanguage(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLanguage() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLanguage()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *ProfileUpsertOne) SetAgeGroup(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateAgeGroup() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAgeGroup()
	})
}

// SetIncomeRange sets the "income_range" field.
func (u *ProfileUpsertOne) SetIncomeRange(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetIncomeRange(v)
	})
}

// UpdateIncomeRange sets the "income_range" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateIncomeRange() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateIncomeRange()
	})
}

// SetCulturalValue sets the "cultural_value" field.
func (u *ProfileUpsertOne) SetCulturalValue(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCulturalValue(v)
	})
}

// UpdateCulturalValue sets the "cultural_value" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateCulturalValue() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCulturalValue()
	})
}

// SetFinancialGoals sets the "financial_goals" field.
func (u *ProfileUpsertOne) SetFinancialGoals(v string) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFinancialGoals(v)
	})
}

// UpdateFinancialGoals sets the "financial_goals" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateFinancialGoals() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFinancialGoals()
	})
}

// SetLearningPlan sets the "learning_plan" field.
func (u *ProfileUpsertOne) SetLearningPlan(v *plan.LearningPlan) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLearningPlan(v)
	})
}

// UpdateLearningPlan sets the "learning_plan" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLearningPlan() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLearningPlan()
	})
}

// ClearLearningPlan clears the value of the "learning_plan" field.
func (u *ProfileUpsertOne) ClearLearningPlan() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLearningPlan()
	})
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (u *ProfileUpsertOne) SetOnboardingCompleted(v bool) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetOnboardingCompleted(v)
	})
}

// UpdateOnboardingCompleted sets the "onboarding_completed" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateOnboardingCompleted() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateOnboardingCompleted()
	})
}

// SetSimpleMode sets the "simple_mode" field.
func (u *ProfileUpsertOne) SetSimpleMode(v bool) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetSimpleMode(v)
	})
}

// UpdateSimpleMode sets the "simple_mode" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateSimpleMode() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateSimpleMode()
	})
}

// SetPoints sets the "points" field.
func (u *ProfileUpsertOne) SetPoints(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *ProfileUpsertOne) AddPoints(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdatePoints() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePoints()
	})
}

// SetStreakDays sets the "streak_days" field.
func (u *ProfileUpsertOne) SetStreakDays(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetStreakDays(v)
	})
}

// AddStreakDays adds v to the "streak_days" field.
func (u *ProfileUpsertOne) AddStreakDays(v int) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.AddStreakDays(v)
	})
}

// UpdateStreakDays sets the "streak_days" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateStreakDays() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateStreakDays()
	})
}

// SetLastActive sets the "last_active" field.
func (u *ProfileUpsertOne) SetLastActive(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLastActive(v)
	})
}

// UpdateLastActive sets the "last_active" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateLastActive() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLastActive()
	})
}

// ClearLastActive clears the value of the "last_active" field.
func (u *ProfileUpsertOne) ClearLastActive() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLastActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertOne) SetUpdatedAt(v time.Time) *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertOne) UpdateUpdatedAt() *ProfileUpsertOne {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ProfileUpsertOne) ID(ctx context.Context) (id int, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ProfileUpsertOne) IDX(ctx context.Context) int {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ProfileCreateBulk is the builder for creating many Profile entities in bulk.
type ProfileCreateBulk struct {
	config
	err      error
	builders []*ProfileCreate
	conflict []sql.ConflictOption
}

// Save creates the Profile entities in the database.
func (_c *ProfileCreateBulk) Save(ctx context.Context) ([]*Profile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Profile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProfileMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ProfileCreateBulk) SaveX(ctx context.Context) []*Profile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Profile.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ProfileUpsert) {
//			SetUserID(v+v).
//		}).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflict(opts ...sql.ConflictOption) *ProfileUpsertBulk {
	_c.conflict = opts
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ProfileCreateBulk) OnConflictColumns(columns ...string) *ProfileUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ProfileUpsertBulk{
		create: _c,
	}
}

// ProfileUpsertBulk is the builder for "upsert"-ing
// a bulk of Profile nodes.
type ProfileUpsertBulk struct {
	create *ProfileCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ProfileUpsertBulk) UpdateNewValues() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.UserID(); exists {
				s.SetIgnore(profile.FieldUserID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(profile.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Profile.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ProfileUpsertBulk) Ignore() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ProfileUpsertBulk) DoNothing() *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ProfileCreateBulk.OnConflict
// documentation for more info.
func (u *ProfileUpsertBulk) Update(set func(*ProfileUpsert)) *ProfileUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ProfileUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmail sets the "email" field.
func (u *ProfileUpsertBulk) SetEmail(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateEmail() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateEmail()
	})
}

// SetFullName sets the "full_name" field.
func (u *ProfileUpsertBulk) SetFullName(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFullName(v)
	})
}

// UpdateFullName sets the "full_name" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateFullName() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFullName()
	})
}

// SetCountry sets the "country" field.
func (u *ProfileUpsertBulk) SetCountry(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCountry(v)
	})
}

// UpdateCountry sets the "country" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateCountry() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCountry()
	})
}

// SetLanguage sets the "language" field.
func (u *ProfileUpsertBulk) SetLanguage(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLanguage(v)
	})
}

// UpdateLanguage sets the "language" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLanguage() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLanguage()
	})
}

// SetAgeGroup sets the "age_group" field.
func (u *ProfileUpsertBulk) SetAgeGroup(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetAgeGroup(v)
	})
}

// UpdateAgeGroup sets the "age_group" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateAgeGroup() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateAgeGroup()
	})
}

// SetIncomeRange sets the "income_range" field.
func (u *ProfileUpsertBulk) SetIncomeRange(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetIncomeRange(v)
	})
}

// UpdateIncomeRange sets the "income_range" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateIncomeRange() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateIncomeRange()
	})
}

// SetCulturalValue sets the "cultural_value" field.
func (u *ProfileUpsertBulk) SetCulturalValue(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetCulturalValue(v)
	})
}

// UpdateCulturalValue sets the "cultural_value" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateCulturalValue() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateCulturalValue()
	})
}

// SetFinancialGoals sets the "financial_goals" field.
func (u *ProfileUpsertBulk) SetFinancialGoals(v string) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetFinancialGoals(v)
	})
}

// UpdateFinancialGoals sets the "financial_goals" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateFinancialGoals() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateFinancialGoals()
	})
}

// SetLearningPlan sets the "learning_plan" field.
func (u *ProfileUpsertBulk) SetLearningPlan(v *plan.LearningPlan) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLearningPlan(v)
	})
}

// UpdateLearningPlan sets the "learning_plan" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLearningPlan() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLearningPlan()
	})
}

// ClearLearningPlan clears the value of the "learning_plan" field.
func (u *ProfileUpsertBulk) ClearLearningPlan() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLearningPlan()
	})
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (u *ProfileUpsertBulk) SetOnboardingCompleted(v bool) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetOnboardingCompleted(v)
	})
}

// UpdateOnboardingCompleted sets the "onboarding_completed" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateOnboardingCompleted() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateOnboardingCompleted()
	})
}

// SetSimpleMode sets the "simple_mode" field.
func (u *ProfileUpsertBulk) SetSimpleMode(v bool) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetSimpleMode(v)
	})
}

// UpdateSimpleMode sets the "simple_mode" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateSimpleMode() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateSimpleMode()
	})
}

// SetPoints sets the "points" field.
func (u *ProfileUpsertBulk) SetPoints(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetPoints(v)
	})
}

// AddPoints adds v to the "points" field.
func (u *ProfileUpsertBulk) AddPoints(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.AddPoints(v)
	})
}

// UpdatePoints sets the "points" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdatePoints() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdatePoints()
	})
}

// SetStreakDays sets the "streak_days" field.
func (u *ProfileUpsertBulk) SetStreakDays(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetStreakDays(v)
	})
}

// AddStreakDays adds v to the "streak_days" field.
func (u *ProfileUpsertBulk) AddStreakDays(v int) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.AddStreakDays(v)
	})
}

// UpdateStreakDays sets the "streak_days" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateStreakDays() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateStreakDays()
	})
}

// SetLastActive sets the "last_active" field.
func (u *ProfileUpsertBulk) SetLastActive(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetLastActive(v)
	})
}

// UpdateLastActive sets the "last_active" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateLastActive() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateLastActive()
	})
}

// ClearLastActive clears the value of the "last_active" field.
func (u *ProfileUpsertBulk) ClearLastActive() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.ClearLastActive()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *ProfileUpsertBulk) SetUpdatedAt(v time.Time) *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *ProfileUpsertBulk) UpdateUpdatedAt() *ProfileUpsertBulk {
	return u.Update(func(s *ProfileUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *ProfileUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ProfileCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ProfileCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ProfileUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
