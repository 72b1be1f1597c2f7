package binding_test

import (
	"reflect"
	"testing"

	"github.com/artpar/storeadmin/domain/binding"
	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/domain/product"
)

func TestAssignedPlanIDs(t *testing.T) {
	tests := []struct {
		name       string
		product    product.Product
		want       []string
		wantSource binding.Source
	}{
		{"list", product.Product{InstallmentPlanIDs: []string{"2", "3"}}, []string{"2", "3"}, binding.SourceList},
		{"legacy only", product.Product{InstallmentPlanID: "5"}, []string{"5"}, binding.SourceLegacy},
		{"neither", product.Product{}, []string{}, binding.SourceNone},
		{"list wins over legacy", product.Product{InstallmentPlanIDs: []string{"1"}, InstallmentPlanID: "5"}, []string{"1"}, binding.SourceList},
		{"empty list falls back", product.Product{InstallmentPlanIDs: []string{}, InstallmentPlanID: "5"}, []string{"5"}, binding.SourceLegacy},
		{"label is not an id", product.Product{InstallmentPlan: "12 months"}, []string{}, binding.SourceNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := binding.Resolve(tt.product)
			if !reflect.DeepEqual(got.PlanIDs, tt.want) {
				t.Errorf("PlanIDs = %v, want %v", got.PlanIDs, tt.want)
			}
			if got.Source != tt.wantSource {
				t.Errorf("Source = %q, want %q", got.Source, tt.wantSource)
			}
			if ids := binding.AssignedPlanIDs(tt.product); !reflect.DeepEqual(ids, tt.want) {
				t.Errorf("AssignedPlanIDs = %v, want %v", ids, tt.want)
			}
		})
	}
}

func TestResolve_DoesNotAliasProduct(t *testing.T) {
	p := product.Product{InstallmentPlanIDs: []string{"1", "2"}}
	a := binding.Resolve(p)
	a.PlanIDs[0] = "changed"
	if p.InstallmentPlanIDs[0] != "1" {
		t.Error("Resolve returned a slice sharing the product's backing array")
	}
}

func TestToggle(t *testing.T) {
	tests := []struct {
		name     string
		selected []string
		id       string
		want     []string
	}{
		{"remove present", []string{"1", "2"}, "2", []string{"1"}},
		{"append absent", []string{"1"}, "3", []string{"1", "3"}},
		{"from empty", nil, "4", []string{"4"}},
		{"remove only", []string{"4"}, "4", []string{}},
		{"remove middle keeps order", []string{"1", "2", "3"}, "2", []string{"1", "3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]string(nil), tt.selected...)
			got := binding.Toggle(in, tt.id)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			if !reflect.DeepEqual(in, append([]string(nil), tt.selected...)) {
				t.Errorf("input mutated: %v", in)
			}
		})
	}
}

func TestToggle_Twice(t *testing.T) {
	sel := []string{"1", "2"}
	if got := binding.Toggle(binding.Toggle(sel, "3"), "3"); !reflect.DeepEqual(got, sel) {
		t.Errorf("double toggle = %v, want %v", got, sel)
	}
}

func TestResolvePlanNames(t *testing.T) {
	catalog := []plan.Plan{
		{ID: "1", PlanName: "Monthly"},
		{ID: "2", PlanName: "3-Month"},
	}

	tests := []struct {
		name string
		ids  []string
		want []string
	}{
		{"stale dropped", []string{"9", "2"}, []string{"3-Month"}},
		{"order preserved", []string{"2", "1"}, []string{"3-Month", "Monthly"}},
		{"duplicates kept", []string{"1", "1"}, []string{"Monthly", "Monthly"}},
		{"empty", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := binding.ResolvePlanNames(tt.ids, catalog)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	if stale := binding.StaleIDs([]string{"9", "2", "7"}, catalog); !reflect.DeepEqual(stale, []string{"9", "7"}) {
		t.Errorf("StaleIDs = %v", stale)
	}
	if plans := binding.ResolvePlans([]string{"9", "2"}, catalog); len(plans) != 1 || plans[0].ID != "2" {
		t.Errorf("ResolvePlans = %v", plans)
	}
}

func TestAttach_RoundTrip(t *testing.T) {
	p := binding.Attach(product.Product{ID: "p"}, []string{"4"})
	if got := binding.AssignedPlanIDs(p); !reflect.DeepEqual(got, []string{"4"}) {
		t.Errorf("got %v, want [4]", got)
	}
	if p.InstallmentPlanID != "4" {
		t.Errorf("legacy id = %q, want 4", p.InstallmentPlanID)
	}

	empty := binding.Attach(product.Product{ID: "q"}, []string{})
	if empty.InstallmentPlanIDs != nil {
		t.Errorf("expected absent list, got %v", empty.InstallmentPlanIDs)
	}
	if got := binding.AssignedPlanIDs(empty); len(got) != 0 {
		t.Errorf("got %v, want []", got)
	}
}

func TestAttach_LegacyRule(t *testing.T) {
	base := product.Product{InstallmentPlanID: "old"}

	multi := binding.Attach(base, []string{"1", "2"})
	if multi.InstallmentPlanID != "old" {
		t.Errorf("multi-select changed legacy id to %q", multi.InstallmentPlanID)
	}

	cleared := binding.Attach(base, nil)
	if cleared.InstallmentPlanID != "old" {
		t.Errorf("clearing changed legacy id to %q", cleared.InstallmentPlanID)
	}
	// With the list absent the legacy id becomes effective again.
	if got := binding.AssignedPlanIDs(cleared); !reflect.DeepEqual(got, []string{"old"}) {
		t.Errorf("got %v", got)
	}

	single := binding.Attach(base, []string{"3"})
	if single.InstallmentPlanID != "3" {
		t.Errorf("single select legacy id = %q", single.InstallmentPlanID)
	}
}
