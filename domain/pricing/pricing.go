// Package pricing applies installment plan percentages to product prices.
//
// Amounts are computed in decimal arithmetic and rounded half away from zero
// to two places. Prices are positive, so this equals round-half-up.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/artpar/storeadmin/domain/plan"
)

// Places is the number of decimal places amounts are rounded to.
const Places = 2

var hundred = decimal.NewFromInt(100)

// Schedule is the installment breakdown of one price under one plan.
type Schedule struct {
	PlanID   string          `json:"planId"`
	PlanName string          `json:"planName"`
	Price    decimal.Decimal `json:"price"`
	Weekly   decimal.Decimal `json:"weekly"`
	Monthly  decimal.Decimal `json:"monthly"`
	Total    decimal.Decimal `json:"total"`
}

// Apply returns price * percentage / 100, rounded.
// This is a PURE function.
func Apply(price, percentage float64) decimal.Decimal {
	return decimal.NewFromFloat(price).
		Mul(decimal.NewFromFloat(percentage)).
		Div(hundred).
		Round(Places)
}

// Weekly is the weekly installment amount.
func Weekly(price float64, p plan.Plan) decimal.Decimal {
	return Apply(price, p.WeeklyPercentage)
}

// Monthly is the monthly installment amount.
func Monthly(price float64, p plan.Plan) decimal.Decimal {
	return Apply(price, p.MonthlyPercentage)
}

// Total is the total payable amount.
func Total(price float64, p plan.Plan) decimal.Decimal {
	return Apply(price, p.TotalPricePercentage)
}

// Quote computes the full schedule. p must be a resolved plan.
func Quote(price float64, p plan.Plan) Schedule {
	return Schedule{
		PlanID:   p.ID,
		PlanName: p.PlanName,
		Price:    decimal.NewFromFloat(price).Round(Places),
		Weekly:   Weekly(price, p),
		Monthly:  Monthly(price, p),
		Total:    Total(price, p),
	}
}

// QuoteAll quotes price under each plan, in order.
func QuoteAll(price float64, plans []plan.Plan) []Schedule {
	out := make([]Schedule, 0, len(plans))
	for _, p := range plans {
		out = append(out, Quote(price, p))
	}
	return out
}
