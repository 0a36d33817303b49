// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/barkoapp/barko/ent/profile"
	"github.com/barkoapp/barko/internal/plan"
)

// Profile is the model entity for the Profile schema.
type Profile struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// External identity from the auth token subject
	UserID string `json:"user_id,omitempty"`
	// Email holds the value of the "email" field.
	Email string `json:"email,omitempty"`
	// FullName holds the value of the "full_name" field.
	FullName string `json:"full_name,omitempty"`
	// Country holds the value of the "country" field.
	Country string `json:"country,omitempty"`
	// Locale for plan generation: en, fr, es, de
	Language string `json:"language,omitempty"`
	// AgeGroup holds the value of the "age_group" field.
	AgeGroup string `json:"age_group,omitempty"`
	// IncomeRange holds the value of the "income_range" field.
	IncomeRange string `json:"income_range,omitempty"`
	// CulturalValue holds the value of the "cultural_value" field.
	CulturalValue string `json:"cultural_value,omitempty"`
	// FinancialGoals holds the value of the "financial_goals" field.
	FinancialGoals string `json:"financial_goals,omitempty"`
	// Current plan, AI-generated or deterministic fallback
	LearningPlan *plan.LearningPlan `json:"learning_plan,omitempty"`
	// OnboardingCompleted holds the value of the "onboarding_completed" field.
	OnboardingCompleted bool `json:"onboarding_completed,omitempty"`
	// Simplified lesson content for low-literacy readers
	SimpleMode bool `json:"simple_mode,omitempty"`
	// Points holds the value of the "points" field.
	Points int `json:"points,omitempty"`
	// StreakDays holds the value of the "streak_days" field.
	StreakDays int `json:"streak_days,omitempty"`
	// Date of the learner's last progress action
	LastActive *time.Time `json:"last_active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Profile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case profile.FieldLearningPlan:
			values[i] = new([]byte)
		case profile.FieldOnboardingCompleted, profile.FieldSimpleMode:
			values[i] = new(sql.NullBool)
		case profile.FieldID, profile.FieldPoints, profile.FieldStreakDays:
			values[i] = new(sql.NullInt64)
		case profile.FieldUserID, profile.FieldEmail, profile.FieldFullName, profile.FieldCountry, profile.FieldLanguage, profile.FieldAgeGroup, profile.FieldIncomeRange, profile.FieldCulturalValue, profile.FieldFinancialGoals:
			values[i] = new(sql.NullString)
		case profile.FieldLastActive, profile.FieldCreatedAt, profile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Profile fields.
func (_m *Profile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case profile.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case profile.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case profile.FieldEmail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field email", values[i])
			} else if value.Valid {
				_m.Email = value.String
			}
		case profile.FieldFullName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field full_name", values[i])
			} else if value.Valid {
				_m.FullName = value.String
			}
		case profile.FieldCountry:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field country", values[i])
			} else if value.Valid {
				_m.Country = value.String
			}
		case profile.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case profile.FieldAgeGroup:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field age_group", values[i])
			} else if value.Valid {
				_m.AgeGroup = value.String
			}
		case profile.FieldIncomeRange:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field income_range", values[i])
			} else if value.Valid {
				_m.IncomeRange = value.String
			}
		case profile.FieldCulturalValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cultural_value", values[i])
			} else if value.Valid {
				_m.CulturalValue = value.String
			}
		case profile.FieldFinancialGoals:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field financial_goals", values[i])
			} else if value.Valid {
				_m.FinancialGoals = value.String
			}
		case profile.FieldLearningPlan:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field learning_plan", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LearningPlan); err != nil {
					return fmt.Errorf("unmarshal field learning_plan: %w", err)
				}
			}
		case profile.FieldOnboardingCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field onboarding_completed", values[i])
			} else if value.Valid {
				_m.OnboardingCompleted = value.Bool
			}
		case profile.FieldSimpleMode:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field simple_mode", values[i])
			} else if value.Valid {
				_m.SimpleMode = value.Bool
			}
		case profile.FieldPoints:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field points", values[i])
			} else if value.Valid {
				_m.Points = int(value.Int64)
			}
		case profile.FieldStreakDays:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field streak_days", values[i])
			} else if value.Valid {
				_m.StreakDays = int(value.Int64)
			}
		case profile.FieldLastActive:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_active", values[i])
			} else if value.Valid {
				_m.LastActive = new(time.Time)
				*_m.LastActive = value.Time
			}
		case profile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case profile.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Profile.
// This includes values selected through modifiers, order, etc.
func (_m *Profile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Profile.
// Note that you need to call Profile.Unwrap() before calling this method if this Profile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Profile) Update() *ProfileUpdateOne {
	return NewProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Profile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Profile) Unwrap() *Profile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Profile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Profile) String() string {
	var builder strings.Builder
	builder.WriteString("Profile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("email=")
	builder.WriteString(_m.Email)
	builder.WriteString(", ")
	builder.WriteString("full_name=")
	builder.WriteString(_m.FullName)
	builder.WriteString(", ")
	builder.WriteString("country=")
	builder.WriteString(_m.Country)
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("age_group=")
	builder.WriteString(_m.AgeGroup)
	builder.WriteString(", ")
	builder.WriteString("income_range=")
	builder.WriteString(_m.IncomeRange)
	builder.WriteString(", ")
	builder.WriteString("cultural_value=")
	builder.WriteString(_m.CulturalValue)
	builder.WriteString(", ")
	builder.WriteString("financial_goals=")
	builder.WriteString(_m.FinancialGoals)
	builder.WriteString(", ")
	builder.WriteString("learning_plan=")
	builder.WriteString(fmt.Sprintf("%v", _m.LearningPlan))
	builder.WriteString(", ")
	builder.WriteString("onboarding_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.OnboardingCompleted))
	builder.WriteString(", ")
	builder.WriteString("simple_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.SimpleMode))
	builder.WriteString(", ")
	builder.WriteString("points=")
	builder.WriteString(fmt.Sprintf("%v", _m.Points))
	builder.WriteString(", ")
	builder.WriteString("streak_days=")
	builder.WriteString(fmt.Sprintf("%v", _m.StreakDays))
	builder.WriteString(", ")
	if v := _m.LastActive; v != nil {
		builder.WriteString("last_active=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Profiles is a parsable slice of Profile.
type Profiles []*Profile
