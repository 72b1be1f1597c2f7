package product_test

import (
	"testing"
	"time"

	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/product"
)

func price(v float64) *float64 { return &v }
func stock(v int) *int         { return &v }

func TestValidate_Valid(t *testing.T) {
	c := &product.Candidate{
		Name:     "  Pixel 8 ",
		Brand:    "Google",
		Category: "Smartphones",
		Price:    price(699),
		Stock:    stock(0),
	}
	if err := product.Validate(c, product.DefaultCategories); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Pixel 8" {
		t.Errorf("name not trimmed: %q", c.Name)
	}
}

func TestValidate_ReportsAllViolations(t *testing.T) {
	c := &product.Candidate{Name: "   ", Price: price(0), Stock: stock(-3)}

	err := product.Validate(c, product.DefaultCategories)
	ve, ok := fault.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}

	want := map[string]string{
		"name":     "Product name is required",
		"brand":    "Brand is required",
		"category": "Category is required",
		"price":    "Price must be a number greater than 0",
		"stock":    "Stock must be a non-negative number",
	}
	for field, msg := range want {
		if got := ve.Message(field); got != msg {
			t.Errorf("%s: got %q, want %q", field, got, msg)
		}
	}
}

func TestValidate_MissingPrice(t *testing.T) {
	c := &product.Candidate{Name: "X", Brand: "Y", Category: "Other"}
	ve, ok := fault.AsValidation(product.Validate(c, nil))
	if !ok || !ve.Has("price") {
		t.Fatalf("expected price violation, got %v", ve)
	}
}

func TestValidate_UnknownCategory(t *testing.T) {
	c := &product.Candidate{Name: "X", Brand: "Y", Category: "Toys", Price: price(10)}

	ve, ok := fault.AsValidation(product.Validate(c, product.DefaultCategories))
	if !ok || !ve.Has("category") {
		t.Fatalf("expected category violation, got %v", ve)
	}

	if err := product.Validate(c, nil); err != nil {
		t.Errorf("no category set should accept any value: %v", err)
	}
}

func TestNewAndApply(t *testing.T) {
	at := time.Date(2024, 6, 1, 8, 5, 0, 0, time.UTC)
	c := product.Candidate{Name: "A", Brand: "B", Category: "Other", Price: price(12.5), Image: "data:image/png;base64,AA=="}
	p := product.New("100", c, at)

	if p.DateCreated != "2024-06-01" || p.Time != "08:05 AM" {
		t.Errorf("bad stamp: %s %s", p.DateCreated, p.Time)
	}
	if p.Price != 12.5 || p.Image == "" {
		t.Errorf("attributes not applied: %+v", p)
	}

	p.InstallmentPlanIDs = []string{"1"}
	upd := p.Apply(product.Candidate{Name: "A2", Brand: "B", Category: "Other", Price: price(13)})
	if upd.ID != "100" || upd.DateCreated != "2024-06-01" {
		t.Errorf("identity changed: %+v", upd)
	}
	if upd.Image != p.Image {
		t.Error("empty candidate image should keep the existing image")
	}
	if len(upd.InstallmentPlanIDs) != 1 {
		t.Error("Apply should not touch plan associations")
	}
}

func TestFilter(t *testing.T) {
	demo := product.Demo()

	tests := []struct {
		name   string
		filter product.Filter
		want   int
	}{
		{"no filter", product.Filter{}, 8},
		{"all keyword", product.Filter{Category: "all", Brand: "All"}, 8},
		{"search name case-insensitive", product.Filter{Search: "IPHONE"}, 1},
		{"search brand", product.Filter{Search: "sony"}, 2},
		{"category", product.Filter{Category: "Laptops"}, 2},
		{"brand", product.Filter{Brand: "Apple"}, 3},
		{"combined", product.Filter{Brand: "Apple", Category: "Laptops"}, 1},
		{"nothing", product.Filter{Search: "nokia"}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.filter.Apply(demo)); got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBrands(t *testing.T) {
	got := product.Brands(product.Demo())
	want := []string{"Apple", "Samsung", "Dell", "Sony", "LG"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("brands[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestDemoIsValid(t *testing.T) {
	for _, p := range product.Demo() {
		c := &product.Candidate{Name: p.Name, Brand: p.Brand, Category: p.Category, Price: price(p.Price)}
		if err := product.Validate(c, product.DefaultCategories); err != nil {
			t.Errorf("demo product %s invalid: %v", p.ID, err)
		}
		if len(p.InstallmentPlanIDs) != 0 || p.InstallmentPlan == "" {
			t.Errorf("demo product %s should carry only the legacy label", p.ID)
		}
	}
}
