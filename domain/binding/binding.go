// Package binding resolves the association between products and installment
// plans, including the fallback to the legacy single-plan field.
package binding

import (
	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/domain/product"
)

// Source records which product field an assignment was read from.
type Source string

const (
	SourceList   Source = "list"   // installmentPlanIds
	SourceLegacy Source = "legacy" // installmentPlanId
	SourceNone   Source = "none"
)

// Assignment is the resolved plan association of one product.
type Assignment struct {
	PlanIDs []string `json:"planIds"`
	Source  Source   `json:"source"`
}

// Resolve reads a product's effective plan IDs. A non-empty list wins over
// the legacy single ID; the legacy ID is used only when the list is empty.
// This is a PURE function.
func Resolve(p product.Product) Assignment {
	if len(p.InstallmentPlanIDs) > 0 {
		return Assignment{PlanIDs: append([]string(nil), p.InstallmentPlanIDs...), Source: SourceList}
	}
	if p.InstallmentPlanID != "" {
		return Assignment{PlanIDs: []string{p.InstallmentPlanID}, Source: SourceLegacy}
	}
	return Assignment{PlanIDs: []string{}, Source: SourceNone}
}

// AssignedPlanIDs returns the product's effective plan IDs.
func AssignedPlanIDs(p product.Product) []string {
	return Resolve(p).PlanIDs
}

// ResolvePlanNames maps IDs to plan names in input order. IDs with no
// matching plan are dropped; duplicates are kept.
// This is a PURE function.
func ResolvePlanNames(ids []string, plans []plan.Plan) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if p, ok := plan.FindPlan(plans, id); ok {
			names = append(names, p.PlanName)
		}
	}
	return names
}

// ResolvePlans maps IDs to plans the same way ResolvePlanNames does.
func ResolvePlans(ids []string, plans []plan.Plan) []plan.Plan {
	out := make([]plan.Plan, 0, len(ids))
	for _, id := range ids {
		if p, ok := plan.FindPlan(plans, id); ok {
			out = append(out, p)
		}
	}
	return out
}

// StaleIDs returns the IDs that match no plan, in input order.
// This is a PURE function.
func StaleIDs(ids []string, plans []plan.Plan) []string {
	var stale []string
	for _, id := range ids {
		if _, ok := plan.FindPlan(plans, id); !ok {
			stale = append(stale, id)
		}
	}
	return stale
}

// Toggle removes id from selected if present, otherwise appends it.
// The input slice is not modified.
// This is a PURE function.
func Toggle(selected []string, id string) []string {
	out := make([]string, 0, len(selected)+1)
	found := false
	for _, s := range selected {
		if s == id {
			found = true
			continue
		}
		out = append(out, s)
	}
	if !found {
		out = append(out, id)
	}
	return out
}

// Attach returns p with selected as its plan list. An empty selection clears
// the list. The legacy ID is overwritten only when exactly one plan is
// selected; otherwise it keeps its previous value.
// This is a PURE function.
func Attach(p product.Product, selected []string) product.Product {
	if len(selected) == 0 {
		p.InstallmentPlanIDs = nil
	} else {
		p.InstallmentPlanIDs = append([]string(nil), selected...)
	}
	if len(selected) == 1 {
		p.InstallmentPlanID = selected[0]
	}
	return p
}
