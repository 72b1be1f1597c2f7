package pricing_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/domain/pricing"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name    string
		price   float64
		percent float64
		want    string
	}{
		{"weekly 3-month", 1199, 8.33, "99.88"},
		{"monthly 3-month", 1199, 33.33, "399.63"},
		{"full", 1199, 100, "1199"},
		{"half rounds up", 0.5, 1, "0.01"},
		{"quarter", 399, 25, "99.75"},
		{"fractional price", 19.99, 16.67, "3.33"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pricing.Apply(tt.price, tt.percent)
			if got.String() != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	p := plan.Plan{ID: "2", PlanName: "3-Month", WeeklyPercentage: 8.33, MonthlyPercentage: 33.33, TotalPricePercentage: 100}
	s := pricing.Quote(1199, p)

	if s.PlanID != "2" || s.PlanName != "3-Month" {
		t.Errorf("plan not carried: %+v", s)
	}
	if s.Weekly.StringFixed(2) != "99.88" {
		t.Errorf("weekly = %s", s.Weekly)
	}
	if s.Monthly.StringFixed(2) != "399.63" {
		t.Errorf("monthly = %s", s.Monthly)
	}
	if s.Total.StringFixed(2) != "1199.00" {
		t.Errorf("total = %s", s.Total)
	}
	if !s.Weekly.Equal(pricing.Weekly(1199, p)) || !s.Monthly.Equal(pricing.Monthly(1199, p)) || !s.Total.Equal(pricing.Total(1199, p)) {
		t.Error("Quote disagrees with the single-amount functions")
	}
}

func TestQuoteAll(t *testing.T) {
	schedules := pricing.QuoteAll(499, plan.Seed())
	if len(schedules) != 4 {
		t.Fatalf("got %d schedules", len(schedules))
	}
	if schedules[0].PlanName != "Monthly" || schedules[0].Weekly.StringFixed(2) != "124.75" {
		t.Errorf("unexpected first schedule: %+v", schedules[0])
	}
	if got := pricing.QuoteAll(10, nil); len(got) != 0 {
		t.Errorf("expected empty, got %v", got)
	}
}

func TestSchedule_JSON(t *testing.T) {
	s := pricing.Quote(100, plan.Plan{ID: "1", PlanName: "Monthly", WeeklyPercentage: 25, MonthlyPercentage: 100, TotalPricePercentage: 100})
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"weekly":"25"`) {
		t.Errorf("unexpected JSON: %s", data)
	}
}
