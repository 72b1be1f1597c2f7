// Package plan provides installment plan value types and pure functions.
package plan

import (
	"fmt"
	"strings"
	"time"

	"github.com/artpar/storeadmin/domain/fault"
)

// Field names as they appear in persisted records and validation errors.
const (
	FieldName    = "planName"
	FieldWeekly  = "weeklyPercentage"
	FieldMonthly = "monthlyPercentage"
	FieldTotal   = "totalPricePercentage"
)

// Stamp layouts for the split creation timestamp.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "03:04 PM"
)

// Plan is an installment plan (immutable value type).
type Plan struct {
	ID                   string  `json:"id"`
	PlanName             string  `json:"planName"`
	WeeklyPercentage     float64 `json:"weeklyPercentage"`
	MonthlyPercentage    float64 `json:"monthlyPercentage"`
	TotalPricePercentage float64 `json:"totalPricePercentage"`
	DateCreated          string  `json:"dateCreated"`
	Time                 string  `json:"time"`
}

// Candidate holds the attributes collected by an add/edit form.
// A nil percentage means the value was missing or not a number.
type Candidate struct {
	PlanName             string   `json:"planName" validate:"required"`
	WeeklyPercentage     *float64 `json:"weeklyPercentage" validate:"required,gt=0,lte=100"`
	MonthlyPercentage    *float64 `json:"monthlyPercentage" validate:"required,gt=0,lte=100"`
	TotalPricePercentage *float64 `json:"totalPricePercentage" validate:"required,gt=0,lte=100"`
}

// NameMode selects how plan names are constrained.
type NameMode string

const (
	NameModeClosed NameMode = "closed" // name must be one of Allowed
	NameModeFree   NameMode = "free"   // any non-empty name
)

// NamePolicy constrains plan names on create and update.
type NamePolicy struct {
	Mode    NameMode
	Allowed []string
}

// DefaultNames is the closed set offered by the add-plan flow.
var DefaultNames = []string{"Monthly", "3-Month", "6-Month", "9-Month"}

// DefaultPolicy returns the closed policy over DefaultNames.
func DefaultPolicy() NamePolicy {
	return NamePolicy{Mode: NameModeClosed, Allowed: append([]string(nil), DefaultNames...)}
}

// Permits reports whether name satisfies the policy.
// This is a PURE function.
func (np NamePolicy) Permits(name string) bool {
	if np.Mode != NameModeClosed {
		return true
	}
	for _, a := range np.Allowed {
		if a == name {
			return true
		}
	}
	return false
}

// Validate checks a candidate against the stored plans. excludeID is the plan
// being updated ("" on create) and is ignored by the uniqueness check.
// Every violated field is reported, not just the first.
// This is a PURE function.
func Validate(c Candidate, existing []Plan, excludeID string, policy NamePolicy) error {
	ve := &fault.ValidationError{}

	if c.PlanName != "" && !policy.Permits(c.PlanName) {
		ve.Add(FieldName, fmt.Sprintf("Plan name must be one of: %s", strings.Join(policy.Allowed, ", ")))
	}
	if err := ve.CheckStruct(c, candidateMessage); err != nil {
		return err
	}

	if c.PlanName != "" && NameTaken(existing, c.PlanName, excludeID) {
		ve.Add(FieldName, "A plan with this name already exists")
	}

	return ve.Err()
}

var percentLabels = map[string]string{
	FieldWeekly:  "Weekly percentage",
	FieldMonthly: "Monthly percentage",
	FieldTotal:   "Total price percentage",
}

// candidateMessage words a struct-tag failure. NaN fails gt, so a
// non-numeric percentage reads as "must be a number".
func candidateMessage(field, tag string) string {
	if field == FieldName {
		return "Plan name is required"
	}
	if tag == "lte" {
		return percentLabels[field] + " cannot exceed 100"
	}
	return percentLabels[field] + " must be a number greater than 0"
}

// NameTaken reports whether another plan already uses name (exact match).
// This is a PURE function.
func NameTaken(plans []Plan, name, excludeID string) bool {
	for _, p := range plans {
		if p.PlanName == name && p.ID != excludeID {
			return true
		}
	}
	return false
}

// New builds a plan from a validated candidate.
func New(id string, c Candidate, at time.Time) Plan {
	p := Plan{ID: id}.Apply(c)
	p.DateCreated, p.Time = Stamp(at)
	return p
}

// Apply returns p with the candidate's name and percentages. ID and the
// creation stamp are kept.
func (p Plan) Apply(c Candidate) Plan {
	p.PlanName = c.PlanName
	p.WeeklyPercentage = deref(c.WeeklyPercentage)
	p.MonthlyPercentage = deref(c.MonthlyPercentage)
	p.TotalPricePercentage = deref(c.TotalPricePercentage)
	return p
}

// Stamp splits t into the stored date and time-of-day strings.
func Stamp(t time.Time) (date, clock string) {
	return t.Format(DateLayout), t.Format(TimeLayout)
}

// FindPlan finds a plan by ID in a list.
// This is a PURE function.
func FindPlan(plans []Plan, id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// Remove returns plans without id, and whether it was present.
// This is a PURE function.
func Remove(plans []Plan, id string) ([]Plan, bool) {
	out := make([]Plan, 0, len(plans))
	found := false
	for _, p := range plans {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}

// Replace returns plans with the record matching updated.ID swapped in place.
// This is a PURE function.
func Replace(plans []Plan, updated Plan) ([]Plan, bool) {
	out := make([]Plan, len(plans))
	copy(out, plans)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			return out, true
		}
	}
	return out, false
}

// Seed returns the built-in plans used to initialise an empty catalog.
func Seed() []Plan {
	return []Plan{
		{ID: "1", PlanName: "Monthly", WeeklyPercentage: 25, MonthlyPercentage: 100, TotalPricePercentage: 100, DateCreated: "2024-01-15", Time: "09:00 AM"},
		{ID: "2", PlanName: "3-Month", WeeklyPercentage: 8.33, MonthlyPercentage: 33.33, TotalPricePercentage: 100, DateCreated: "2024-01-15", Time: "09:05 AM"},
		{ID: "3", PlanName: "6-Month", WeeklyPercentage: 4.17, MonthlyPercentage: 16.67, TotalPricePercentage: 100, DateCreated: "2024-01-15", Time: "09:10 AM"},
		{ID: "4", PlanName: "9-Month", WeeklyPercentage: 2.78, MonthlyPercentage: 11.11, TotalPricePercentage: 100, DateCreated: "2024-01-15", Time: "09:15 AM"},
	}
}

// Percent returns a pointer to v, for building candidates.
func Percent(v float64) *float64 {
	return &v
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
