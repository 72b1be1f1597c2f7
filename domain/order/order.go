// Package order provides customer order value types, the status state
// machine and dashboard statistics.
package order

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Status is the processing state of an order.
type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
)

// ErrInvalidTransition is returned for any status change outside the
// pending -> processing -> completed sequence.
var ErrInvalidTransition = errors.New("invalid status transition")

// Order is a customer order as shown in the admin order list.
type Order struct {
	ID              string  `json:"id"`
	Username        string  `json:"username"`
	ProductName     string  `json:"productName"`
	Brand           string  `json:"brand"`
	Category        string  `json:"category"`
	InstallmentPlan string  `json:"installmentPlan"`
	Price           float64 `json:"price"`
	Status          Status  `json:"status"`
	DateCreated     string  `json:"dateCreated"`
	Time            string  `json:"time"`
	ProductImage    string  `json:"productImage,omitempty"`
}

var transitions = map[Status]Status{
	StatusPending:    StatusProcessing,
	StatusProcessing: StatusCompleted,
}

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted:
		return true
	}
	return false
}

// Next returns the status that follows s, if any.
func (s Status) Next() (Status, bool) {
	n, ok := transitions[s]
	return n, ok
}

// CanTransition reports whether from -> to is allowed.
// This is a PURE function.
func CanTransition(from, to Status) bool {
	n, ok := transitions[from]
	return ok && n == to
}

// Advance returns o moved to status to, or ErrInvalidTransition.
func Advance(o Order, to Status) (Order, error) {
	if !CanTransition(o.Status, to) {
		return o, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, to)
	}
	o.Status = to
	return o, nil
}

// Stats are the dashboard counters.
type Stats struct {
	TotalOrders   int             `json:"totalOrders"`
	TotalProducts int             `json:"totalProducts"`
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	ActiveOrders  int             `json:"activeOrders"`
}

// ComputeStats summarises orders. Revenue is the sum of order prices; an
// order is active until completed.
// This is a PURE function.
func ComputeStats(orders []Order, productCount int) Stats {
	s := Stats{TotalOrders: len(orders), TotalProducts: productCount, TotalRevenue: decimal.Zero}
	for _, o := range orders {
		s.TotalRevenue = s.TotalRevenue.Add(decimal.NewFromFloat(o.Price))
		if o.Status != StatusCompleted {
			s.ActiveOrders++
		}
	}
	return s
}

// CountByStatus tallies orders per status.
func CountByStatus(orders []Order) map[Status]int {
	m := make(map[Status]int, 3)
	for _, o := range orders {
		m[o.Status]++
	}
	return m
}

// Find finds an order by ID.
func Find(orders []Order, id string) (Order, int, bool) {
	for i, o := range orders {
		if o.ID == id {
			return o, i, true
		}
	}
	return Order{}, -1, false
}

// Demo returns the sample orders loaded into an empty store when demo
// seeding is enabled.
func Demo() []Order {
	return []Order{
		{ID: "1", Username: "john_doe", ProductName: "iPhone 15 Pro Max", Brand: "Apple", Category: "Smartphones",
			InstallmentPlan: "12 months", Price: 1199, Status: StatusPending, DateCreated: "2024-01-20", Time: "10:30 AM"},
		{ID: "2", Username: "sarah_smith", ProductName: "MacBook Pro 16\"", Brand: "Apple", Category: "Laptops",
			InstallmentPlan: "24 months", Price: 2499, Status: StatusProcessing, DateCreated: "2024-01-19", Time: "02:15 PM"},
		{ID: "3", Username: "mike_johnson", ProductName: "Samsung Galaxy S24 Ultra", Brand: "Samsung", Category: "Smartphones",
			InstallmentPlan: "18 months", Price: 1099, Status: StatusCompleted, DateCreated: "2024-01-18", Time: "11:45 AM"},
		{ID: "4", Username: "emily_brown", ProductName: "Sony WH-1000XM5", Brand: "Sony", Category: "Headphones",
			InstallmentPlan: "6 months", Price: 399, Status: StatusPending, DateCreated: "2024-01-21", Time: "09:20 AM"},
		{ID: "5", Username: "david_wilson", ProductName: "PlayStation 5", Brand: "Sony", Category: "Gaming",
			InstallmentPlan: "12 months", Price: 499, Status: StatusProcessing, DateCreated: "2024-01-20", Time: "04:50 PM"},
		{ID: "6", Username: "lisa_anderson", ProductName: "Dell XPS 15", Brand: "Dell", Category: "Laptops",
			InstallmentPlan: "12 months", Price: 1799, Status: StatusCompleted, DateCreated: "2024-01-17", Time: "01:30 PM"},
	}
}
