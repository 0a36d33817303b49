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
	"github.com/barkoapp/barko/ent/predicate"
	"github.com/barkoapp/barko/ent/profile"
	"github.com/barkoapp/barko/internal/plan"
)

// ProfileUpdate is the builder for updating Profile entities.
type ProfileUpdate struct {
	config
	hooks    []Hook
	mutation *ProfileMutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdate) Where(ps ...predicate.Profile) *ProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdate) SetEmail(v string) *ProfileUpdate {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableEmail(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfileUpdate) SetFullName(v string) *ProfileUpdate {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableFullName(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *ProfileUpdate) SetCountry(v string) *ProfileUpdate {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCountry(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ProfileUpdate) SetLanguage(v string) *ProfileUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLanguage(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *ProfileUpdate) SetAgeGroup(v string) *ProfileUpdate {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableAgeGroup(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// SetIncomeRange sets the "income_range" field.
func (_u *ProfileUpdate) SetIncomeRange(v string) *ProfileUpdate {
	_u.mutation.SetIncomeRange(v)
	return _u
}

// SetNillableIncomeRange sets the "income_range" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableIncomeRange(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetIncomeRange(*v)
	}
	return _u
}

// SetCulturalValue sets the "cultural_value" field.
func (_u *ProfileUpdate) SetCulturalValue(v string) *ProfileUpdate {
	_u.mutation.SetCulturalValue(v)
	return _u
}

// SetNillableCulturalValue sets the "cultural_value" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableCulturalValue(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetCulturalValue(*v)
	}
	return _u
}

// SetFinancialGoals sets the "financial_goals" field.
func (_u *ProfileUpdate) SetFinancialGoals(v string) *ProfileUpdate {
	_u.mutation.SetFinancialGoals(v)
	return _u
}

// SetNillableFinancialGoals sets the "financial_goals" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableFinancialGoals(v *string) *ProfileUpdate {
	if v != nil {
		_u.SetFinancialGoals(*v)
	}
	return _u
}

// SetLearningPlan sets the "learning_plan" field.
func (_u *ProfileUpdate) SetLearningPlan(v *plan.LearningPlan) *ProfileUpdate {
	_u.mutation.SetLearningPlan(v)
	return _u
}

// ClearLearningPlan clears the value of the "learning_plan" field.
func (_u *ProfileUpdate) ClearLearningPlan() *ProfileUpdate {
	_u.mutation.ClearLearningPlan()
	return _u
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (_u *ProfileUpdate) SetOnboardingCompleted(v bool) *ProfileUpdate {
	_u.mutation.SetOnboardingCompleted(v)
	return _u
}

// SetNillableOnboardingCompleted sets the "onboarding_completed" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableOnboardingCompleted(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetOnboardingCompleted(*v)
	}
	return _u
}

// SetSimpleMode sets the "simple_mode" field.
func (_u *ProfileUpdate) SetSimpleMode(v bool) *ProfileUpdate {
	_u.mutation.SetSimpleMode(v)
	return _u
}

// SetNillableSimpleMode sets the "simple_mode" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableSimpleMode(v *bool) *ProfileUpdate {
	if v != nil {
		_u.SetSimpleMode(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ProfileUpdate) SetPoints(v int) *ProfileUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillablePoints(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ProfileUpdate) AddPoints(v int) *ProfileUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProfileUpdate) SetStreakDays(v int) *ProfileUpdate {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableStreakDays(v *int) *ProfileUpdate {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProfileUpdate) AddStreakDays(v int) *ProfileUpdate {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProfileUpdate) SetLastActive(v time.Time) *ProfileUpdate {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProfileUpdate) SetNillableLastActive(v *time.Time) *ProfileUpdate {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *ProfileUpdate) ClearLastActive() *ProfileUpdate {
	_u.mutation.ClearLastActive()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdate) SetUpdatedAt(v time.Time) *ProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdate) Mutation() *ProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdate) check() error {
	if v, ok := _u.mutation.Points(); ok {
		if err := profile.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Profile.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakDays(); ok {
		if err := profile.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "Profile.streak_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(profile.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(profile.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(profile.FieldAgeGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncomeRange(); ok {
		_spec.SetField(profile.FieldIncomeRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalValue(); ok {
		_spec.SetField(profile.FieldCulturalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinancialGoals(); ok {
		_spec.SetField(profile.FieldFinancialGoals, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningPlan(); ok {
		_spec.SetField(profile.FieldLearningPlan, field.TypeJSON, value)
	}
	if _u.mutation.LearningPlanCleared() {
		_spec.ClearField(profile.FieldLearningPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingCompleted(); ok {
		_spec.SetField(profile.FieldOnboardingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SimpleMode(); ok {
		_spec.SetField(profile.FieldSimpleMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(profile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(profile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(profile.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(profile.FieldLastActive, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProfileUpdateOne is the builder for updating a single Profile entity.
type ProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProfileMutation
}

// SetEmail sets the "email" field.
func (_u *ProfileUpdateOne) SetEmail(v string) *ProfileUpdateOne {
	_u.mutation.SetEmail(v)
	return _u
}

// SetNillableEmail sets the "email" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableEmail(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetEmail(*v)
	}
	return _u
}

// SetFullName sets the "full_name" field.
func (_u *ProfileUpdateOne) SetFullName(v string) *ProfileUpdateOne {
	_u.mutation.SetFullName(v)
	return _u
}

// SetNillableFullName sets the "full_name" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableFullName(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetFullName(*v)
	}
	return _u
}

// SetCountry sets the "country" field.
func (_u *ProfileUpdateOne) SetCountry(v string) *ProfileUpdateOne {
	_u.mutation.SetCountry(v)
	return _u
}

// SetNillableCountry sets the "country" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCountry(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCountry(*v)
	}
	return _u
}

// SetLanguage sets the "language" field.
func (_u *ProfileUpdateOne) SetLanguage(v string) *ProfileUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLanguage(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// SetAgeGroup sets the "age_group" field.
func (_u *ProfileUpdateOne) SetAgeGroup(v string) *ProfileUpdateOne {
	_u.mutation.SetAgeGroup(v)
	return _u
}

// SetNillableAgeGroup sets the "age_group" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableAgeGroup(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetAgeGroup(*v)
	}
	return _u
}

// SetIncomeRange sets the "income_range" field.
func (_u *ProfileUpdateOne) SetIncomeRange(v string) *ProfileUpdateOne {
	_u.mutation.SetIncomeRange(v)
	return _u
}

// SetNillableIncomeRange sets the "income_range" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableIncomeRange(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetIncomeRange(*v)
	}
	return _u
}

// SetCulturalValue sets the "cultural_value" field.
func (_u *ProfileUpdateOne) SetCulturalValue(v string) *ProfileUpdateOne {
	_u.mutation.SetCulturalValue(v)
	return _u
}

// SetNillableCulturalValue sets the "cultural_value" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableCulturalValue(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetCulturalValue(*v)
	}
	return _u
}

// SetFinancialGoals sets the "financial_goals" field.
func (_u *ProfileUpdateOne) SetFinancialGoals(v string) *ProfileUpdateOne {
	_u.mutation.SetFinancialGoals(v)
	return _u
}

// SetNillableFinancialGoals sets the "financial_goals" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableFinancialGoals(v *string) *ProfileUpdateOne {
	if v != nil {
		_u.SetFinancialGoals(*v)
	}
	return _u
}

// SetLearningPlan sets the "learning_plan" field.
func (_u *ProfileUpdateOne) SetLearningPlan(v *plan.LearningPlan) *ProfileUpdateOne {
	_u.mutation.SetLearningPlan(v)
	return _u
}

// ClearLearningPlan clears the value of the "learning_plan" field.
func (_u *ProfileUpdateOne) ClearLearningPlan() *ProfileUpdateOne {
	_u.mutation.ClearLearningPlan()
	return _u
}

// SetOnboardingCompleted sets the "onboarding_completed" field.
func (_u *ProfileUpdateOne) SetOnboardingCompleted(v bool) *ProfileUpdateOne {
	_u.mutation.SetOnboardingCompleted(v)
	return _u
}

// SetNillableOnboardingCompleted sets the "onboarding_completed" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableOnboardingCompleted(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetOnboardingCompleted(*v)
	}
	return _u
}

// SetSimpleMode sets the "simple_mode" field.
func (_u *ProfileUpdateOne) SetSimpleMode(v bool) *ProfileUpdateOne {
	_u.mutation.SetSimpleMode(v)
	return _u
}

// SetNillableSimpleMode sets the "simple_mode" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableSimpleMode(v *bool) *ProfileUpdateOne {
	if v != nil {
		_u.SetSimpleMode(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *ProfileUpdateOne) SetPoints(v int) *ProfileUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillablePoints(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *ProfileUpdateOne) AddPoints(v int) *ProfileUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetStreakDays sets the "streak_days" field.
func (_u *ProfileUpdateOne) SetStreakDays(v int) *ProfileUpdateOne {
	_u.mutation.ResetStreakDays()
	_u.mutation.SetStreakDays(v)
	return _u
}

// SetNillableStreakDays sets the "streak_days" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableStreakDays(v *int) *ProfileUpdateOne {
	if v != nil {
		_u.SetStreakDays(*v)
	}
	return _u
}

// AddStreakDays adds value to the "streak_days" field.
func (_u *ProfileUpdateOne) AddStreakDays(v int) *ProfileUpdateOne {
	_u.mutation.AddStreakDays(v)
	return _u
}

// SetLastActive sets the "last_active" field.
func (_u *ProfileUpdateOne) SetLastActive(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetLastActive(v)
	return _u
}

// SetNillableLastActive sets the "last_active" field if the given value is not nil.
func (_u *ProfileUpdateOne) SetNillableLastActive(v *time.Time) *ProfileUpdateOne {
	if v != nil {
		_u.SetLastActive(*v)
	}
	return _u
}

// ClearLastActive clears the value of the "last_active" field.
func (_u *ProfileUpdateOne) ClearLastActive() *ProfileUpdateOne {
	_u.mutation.ClearLastActive()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ProfileUpdateOne) SetUpdatedAt(v time.Time) *ProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ProfileMutation object of the builder.
func (_u *ProfileUpdateOne) Mutation() *ProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProfileUpdate builder.
func (_u *ProfileUpdateOne) Where(ps ...predicate.Profile) *ProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProfileUpdateOne) Select(field string, fields ...string) *ProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Profile entity.
func (_u *ProfileUpdateOne) Save(ctx context.Context) (*Profile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProfileUpdateOne) SaveX(ctx context.Context) *Profile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := profile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProfileUpdateOne) check() error {
	if v, ok := _u.mutation.Points(); ok {
		if err := profile.PointsValidator(v); err != nil {
			return &ValidationError{Name: "points", err: fmt.Errorf(`ent: validator failed for field "Profile.points": %w`, err)}
		}
	}
	if v, ok := _u.mutation.StreakDays(); ok {
		if err := profile.StreakDaysValidator(v); err != nil {
			return &ValidationError{Name: "streak_days", err: fmt.Errorf(`ent: validator failed for field "Profile.streak_days": %w`, err)}
		}
	}
	return nil
}

func (_u *ProfileUpdateOne) sqlSave(ctx context.Context) (_node *Profile, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(profile.Table, profile.Columns, sqlgraph.NewFieldSpec(profile.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Profile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, profile.FieldID)
		for _, f := range fields {
			if !profile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != profile.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Email(); ok {
		_spec.SetField(profile.FieldEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.FullName(); ok {
		_spec.SetField(profile.FieldFullName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Country(); ok {
		_spec.SetField(profile.FieldCountry, field.TypeString, value)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(profile.FieldLanguage, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeGroup(); ok {
		_spec.SetField(profile.FieldAgeGroup, field.TypeString, value)
	}
	if value, ok := _u.mutation.IncomeRange(); ok {
		_spec.SetField(profile.FieldIncomeRange, field.TypeString, value)
	}
	if value, ok := _u.mutation.CulturalValue(); ok {
		_spec.SetField(profile.FieldCulturalValue, field.TypeString, value)
	}
	if value, ok := _u.mutation.FinancialGoals(); ok {
		_spec.SetField(profile.FieldFinancialGoals, field.TypeString, value)
	}
	if value, ok := _u.mutation.LearningPlan(); ok {
		_spec.SetField(profile.FieldLearningPlan, field.TypeJSON, value)
	}
	if _u.mutation.LearningPlanCleared() {
		_spec.ClearField(profile.FieldLearningPlan, field.TypeJSON)
	}
	if value, ok := _u.mutation.OnboardingCompleted(); ok {
		_spec.SetField(profile.FieldOnboardingCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.SimpleMode(); ok {
		_spec.SetField(profile.FieldSimpleMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(profile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(profile.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StreakDays(); ok {
		_spec.SetField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStreakDays(); ok {
		_spec.AddField(profile.FieldStreakDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastActive(); ok {
		_spec.SetField(profile.FieldLastActive, field.TypeTime, value)
	}
	if _u.mutation.LastActiveCleared() {
		_spec.ClearField(profile.FieldLastActive, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(profile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Profile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{profile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
