// Package product provides catalog product value types, validation and filtering.
package product

import (
	"strings"
	"time"

	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/plan"
)

// Product is a catalog item. InstallmentPlanIDs is the current association
// field; InstallmentPlanID and InstallmentPlan are kept for old records.
type Product struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Price              float64  `json:"price"`
	Stock              *int     `json:"stock,omitempty"`
	Description        string   `json:"description,omitempty"`
	Image              string   `json:"image,omitempty"`
	InstallmentPlanIDs []string `json:"installmentPlanIds,omitempty"`
	InstallmentPlanID  string   `json:"installmentPlanId,omitempty"`
	InstallmentPlan    string   `json:"installmentPlan,omitempty"`
	DateCreated        string   `json:"dateCreated"`
	Time               string   `json:"time"`
}

// Candidate is the attribute set of an add/edit product form.
type Candidate struct {
	Name        string   `json:"name" validate:"required"`
	Brand       string   `json:"brand" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       *float64 `json:"price" validate:"required,gt=0"`
	Stock       *int     `json:"stock" validate:"omitempty,gte=0"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	PlanIDs     []string `json:"installmentPlanIds"`
}

// DefaultCategories is the category set offered by the product form.
var DefaultCategories = []string{
	"Smartphones", "Laptops", "Tablets", "Headphones",
	"Gaming", "Electronics", "Accessories", "Other",
}

var messages = map[string]string{
	"name":     "Product name is required",
	"brand":    "Brand is required",
	"category": "Category is required",
	"price":    "Price must be a number greater than 0",
	"stock":    "Stock must be a non-negative number",
}

// Validate checks c and reports every violated field. Text fields are
// trimmed in place first. An empty categories slice skips the membership check.
func Validate(c *Candidate, categories []string) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Brand = strings.TrimSpace(c.Brand)
	c.Category = strings.TrimSpace(c.Category)
	c.Description = strings.TrimSpace(c.Description)

	ve := &fault.ValidationError{}
	if err := ve.CheckStruct(c, func(field, _ string) string { return messages[field] }); err != nil {
		return err
	}

	if c.Category != "" && len(categories) > 0 && !contains(categories, c.Category) {
		ve.Add("category", "Category must be one of: "+strings.Join(categories, ", "))
	}
	return ve.Err()
}

// New builds a product from a validated candidate. Plan IDs are not applied;
// callers attach them through the binding rules.
func New(id string, c Candidate, at time.Time) Product {
	p := Product{ID: id}.Apply(c)
	p.DateCreated, p.Time = plan.Stamp(at)
	return p
}

// Apply returns p with the candidate's scalar attributes. ID, creation stamp
// and plan associations are kept.
func (p Product) Apply(c Candidate) Product {
	p.Name = c.Name
	p.Brand = c.Brand
	p.Category = c.Category
	if c.Price != nil {
		p.Price = *c.Price
	}
	p.Stock = c.Stock
	p.Description = c.Description
	if c.Image != "" {
		p.Image = c.Image
	}
	return p
}

// Filter narrows a product list. Empty or "all" values match everything.
type Filter struct {
	Search   string
	Category string
	Brand    string
}

// Matches reports whether p passes f. Search is a case-insensitive substring
// match over name and brand.
// This is a PURE function.
func (f Filter) Matches(p Product) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		if !strings.Contains(strings.ToLower(p.Name), q) && !strings.Contains(strings.ToLower(p.Brand), q) {
			return false
		}
	}
	if active(f.Category) && p.Category != f.Category {
		return false
	}
	if active(f.Brand) && p.Brand != f.Brand {
		return false
	}
	return true
}

// Apply returns the products matching f, in order.
func (f Filter) Apply(products []Product) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Brands returns the distinct brands in first-seen order.
func Brands(products []Product) []string {
	seen := make(map[string]bool)
	var out []string
	for _, p := range products {
		if p.Brand != "" && !seen[p.Brand] {
			seen[p.Brand] = true
			out = append(out, p.Brand)
		}
	}
	return out
}

// Find finds a product by ID.
func Find(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Remove returns products without id, and whether it was present.
func Remove(products []Product, id string) ([]Product, bool) {
	out := make([]Product, 0, len(products))
	found := false
	for _, p := range products {
		if p.ID == id {
			found = true
			continue
		}
		out = append(out, p)
	}
	return out, found
}

// Replace swaps in updated at the position of the record with the same ID.
func Replace(products []Product, updated Product) ([]Product, bool) {
	out := make([]Product, len(products))
	copy(out, products)
	for i := range out {
		if out[i].ID == updated.ID {
			out[i] = updated
			return out, true
		}
	}
	return out, false
}

func active(v string) bool {
	return v != "" && !strings.EqualFold(v, "all")
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
