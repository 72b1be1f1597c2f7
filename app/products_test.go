package app_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/adapters/clock"
	"github.com/artpar/storeadmin/adapters/collection"
	"github.com/artpar/storeadmin/adapters/idgen"
	"github.com/artpar/storeadmin/adapters/memory"
	"github.com/artpar/storeadmin/adapters/metrics"
	"github.com/artpar/storeadmin/app"
	"github.com/artpar/storeadmin/domain/binding"
	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/product"
	"github.com/artpar/storeadmin/ports"
)

type productFixture struct {
	store    *memory.KVStore
	plans    *app.PlanCatalog
	products *app.ProductCatalog
	metrics  *metrics.Collector
}

func newProductFixture(t *testing.T, seedDemo bool) productFixture {
	t.Helper()
	store := memory.NewKVStore()
	m := metrics.NewWithRegistry(prometheus.NewRegistry())
	plans := newPlanCatalog(t, store)
	products := app.NewProductCatalog(app.ProductCatalogConfig{
		Repo:       collection.Products(store),
		Plans:      plans,
		Clock:      clock.NewFake(testNow),
		IDGen:      idgen.NewSequential("prod"),
		Metrics:    m,
		Logger:     zerolog.Nop(),
		Categories: product.DefaultCategories,
		SeedDemo:   seedDemo,
	})
	return productFixture{store: store, plans: plans, products: products, metrics: m}
}

func newCandidate(name string, price float64, planIDs ...string) product.Candidate {
	return product.Candidate{Name: name, Brand: "Acme", Category: "Gaming", Price: &price, PlanIDs: planIDs}
}

func TestProductCatalog_EmptyWithoutDemo(t *testing.T) {
	f := newProductFixture(t, false)

	items, err := f.products.List(context.Background(), product.Filter{})
	if err != nil || len(items) != 0 {
		t.Errorf("List = %v %v", items, err)
	}
	if _, ok, _ := f.store.Get(context.Background(), ports.KeyProducts); ok {
		t.Error("reading without demo seeding should not write the collection")
	}
}

func TestProductCatalog_DemoSeed(t *testing.T) {
	f := newProductFixture(t, true)
	ctx := context.Background()

	n, err := f.products.Count(ctx)
	if err != nil || n != 8 {
		t.Fatalf("Count = %d %v", n, err)
	}
	brands, _ := f.products.Brands(ctx)
	if len(brands) != 5 {
		t.Errorf("Brands = %v", brands)
	}
}

func TestProductCatalog_CreateWithPlans(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	p, err := f.products.Create(ctx, newCandidate("Console", 499, "2", "3"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !reflect.DeepEqual(p.InstallmentPlanIDs, []string{"2", "3"}) || p.InstallmentPlanID != "" {
		t.Errorf("binding not applied: %+v", p)
	}

	single, _ := f.products.Create(ctx, newCandidate("Pad", 99, "4"))
	if single.InstallmentPlanID != "4" {
		t.Errorf("single plan should set legacy id, got %q", single.InstallmentPlanID)
	}

	none, _ := f.products.Create(ctx, newCandidate("Cable", 9))
	if none.InstallmentPlanIDs != nil {
		t.Errorf("empty selection should leave the list absent, got %v", none.InstallmentPlanIDs)
	}
}

func TestProductCatalog_CreateInvalid(t *testing.T) {
	f := newProductFixture(t, false)

	_, err := f.products.Create(context.Background(), product.Candidate{Category: "Toys"})
	ve, ok := fault.AsValidation(err)
	if !ok {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	for _, field := range []string{"name", "brand", "price", "category"} {
		if !ve.Has(field) {
			t.Errorf("missing violation for %s", field)
		}
	}
	if got := testutil.ToFloat64(f.metrics.ValidationFailures.WithLabelValues(ports.KeyProducts, "price")); got != 1 {
		t.Errorf("price validation failures = %v", got)
	}
}

func TestProductCatalog_UpdatePreservesIdentity(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	p, _ := f.products.Create(ctx, newCandidate("Console", 499, "2"))
	upd, err := f.products.Update(ctx, p.ID, newCandidate("Console Pro", 599, "3", "4"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if upd.ID != p.ID || upd.DateCreated != p.DateCreated || upd.Time != p.Time {
		t.Errorf("identity changed: %+v", upd)
	}
	if upd.Name != "Console Pro" || upd.Price != 599 {
		t.Errorf("attributes not applied: %+v", upd)
	}
	// Multi-select keeps the earlier legacy id.
	if upd.InstallmentPlanID != "2" {
		t.Errorf("legacy id = %q, want 2", upd.InstallmentPlanID)
	}

	if _, err := f.products.Update(ctx, "missing", newCandidate("X", 1)); !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestProductCatalog_AssignAndToggle(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	p, _ := f.products.Create(ctx, newCandidate("Console", 499))

	p, err := f.products.AssignPlans(ctx, p.ID, []string{"1", "2"})
	if err != nil || !reflect.DeepEqual(binding.AssignedPlanIDs(p), []string{"1", "2"}) {
		t.Fatalf("AssignPlans = %v %v", p.InstallmentPlanIDs, err)
	}

	p, _ = f.products.TogglePlan(ctx, p.ID, "2")
	if !reflect.DeepEqual(p.InstallmentPlanIDs, []string{"1"}) {
		t.Errorf("toggle off = %v", p.InstallmentPlanIDs)
	}
	p, _ = f.products.TogglePlan(ctx, p.ID, "3")
	if !reflect.DeepEqual(p.InstallmentPlanIDs, []string{"1", "3"}) {
		t.Errorf("toggle on = %v", p.InstallmentPlanIDs)
	}
}

func TestProductCatalog_ClearPlans(t *testing.T) {
	tests := []struct {
		name  string
		clear func(ctx context.Context, c *app.ProductCatalog, id string) (product.Product, error)
	}{
		{"assign empty", func(ctx context.Context, c *app.ProductCatalog, id string) (product.Product, error) {
			return c.AssignPlans(ctx, id, []string{})
		}},
		{"toggle last plan off", func(ctx context.Context, c *app.ProductCatalog, id string) (product.Product, error) {
			return c.TogglePlan(ctx, id, "4")
		}},
		{"update without plans", func(ctx context.Context, c *app.ProductCatalog, id string) (product.Product, error) {
			return c.Update(ctx, id, newCandidate("Pad", 99))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newProductFixture(t, false)
			ctx := context.Background()

			p, _ := f.products.Create(ctx, newCandidate("Pad", 99, "4"))
			if p.InstallmentPlanID != "4" {
				t.Fatalf("legacy id = %q, want 4", p.InstallmentPlanID)
			}

			p, err := tt.clear(ctx, f.products, p.ID)
			if err != nil {
				t.Fatalf("clear failed: %v", err)
			}
			if p.InstallmentPlanID != "" || p.InstallmentPlanIDs != nil {
				t.Errorf("plans not cleared: ids=%v legacy=%q", p.InstallmentPlanIDs, p.InstallmentPlanID)
			}

			v, _ := f.products.ViewOne(ctx, p.ID)
			if len(v.AssignedPlanIDs) != 0 || v.AssignmentSource != binding.SourceNone {
				t.Errorf("view still assigned: %v (%s)", v.AssignedPlanIDs, v.AssignmentSource)
			}
			quotes, _ := f.products.Quotes(ctx, p.ID)
			if len(quotes) != 0 {
				t.Errorf("cleared product still quoted: %v", quotes)
			}
		})
	}
}

func TestProductCatalog_ClearKeepsUntouchedLegacy(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	f.store.Set(ctx, ports.KeyProducts, []byte(`[{"id":"old","name":"Legacy","brand":"B","category":"Other","price":100,"installmentPlanId":"1"}]`))

	p, err := f.products.SetImage(ctx, "old", "https://example.com/x.png")
	if err != nil || p.InstallmentPlanID != "1" {
		t.Errorf("non-plan edit dropped legacy id: %q %v", p.InstallmentPlanID, err)
	}
}

func TestProductCatalog_ViewDropsStalePlans(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	p, _ := f.products.Create(ctx, newCandidate("Console", 499, "9", "2"))

	views, err := f.products.View(ctx, product.Filter{})
	if err != nil || len(views) != 1 {
		t.Fatalf("View = %v %v", views, err)
	}
	v := views[0]
	if v.ID != p.ID || v.AssignmentSource != binding.SourceList {
		t.Errorf("unexpected view: %+v", v)
	}
	if !reflect.DeepEqual(v.PlanNames, []string{"3-Month"}) {
		t.Errorf("PlanNames = %v", v.PlanNames)
	}
	if !reflect.DeepEqual(v.StalePlanIDs, []string{"9"}) {
		t.Errorf("StalePlanIDs = %v", v.StalePlanIDs)
	}
	if got := testutil.ToFloat64(f.metrics.StalePlanRefs); got != 1 {
		t.Errorf("stale counter = %v", got)
	}
}

func TestProductCatalog_ViewAfterPlanDelete(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	p, _ := f.products.Create(ctx, newCandidate("Console", 499, "1", "2"))
	if err := f.plans.Delete(ctx, "1"); err != nil {
		t.Fatal(err)
	}

	v, err := f.products.ViewOne(ctx, p.ID)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(v.AssignedPlanIDs, []string{"1", "2"}) {
		t.Errorf("delete should not cascade to products: %v", v.AssignedPlanIDs)
	}
	if !reflect.DeepEqual(v.PlanNames, []string{"3-Month"}) {
		t.Errorf("PlanNames = %v", v.PlanNames)
	}
}

func TestProductCatalog_Quotes(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	p, _ := f.products.Create(ctx, newCandidate("Phone", 1199, "2", "404"))
	quotes, err := f.products.Quotes(ctx, p.ID)
	if err != nil {
		t.Fatalf("Quotes failed: %v", err)
	}
	if len(quotes) != 1 {
		t.Fatalf("expected 1 quote, got %d", len(quotes))
	}
	q := quotes[0]
	if q.PlanName != "3-Month" || q.Weekly.StringFixed(2) != "99.88" || q.Monthly.StringFixed(2) != "399.63" {
		t.Errorf("unexpected quote: %+v", q)
	}
}

func TestProductCatalog_LegacyProductQuotes(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	f.store.Set(ctx, ports.KeyProducts, []byte(`[{"id":"old","name":"Legacy","brand":"B","category":"Other","price":100,"installmentPlanId":"1"}]`))

	quotes, err := f.products.Quotes(ctx, "old")
	if err != nil || len(quotes) != 1 || quotes[0].PlanID != "1" {
		t.Fatalf("Quotes = %v %v", quotes, err)
	}
	v, _ := f.products.ViewOne(ctx, "old")
	if v.AssignmentSource != binding.SourceLegacy {
		t.Errorf("source = %q", v.AssignmentSource)
	}
}

func TestProductCatalog_DeleteAndImage(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	p, _ := f.products.Create(ctx, newCandidate("Console", 499))

	withImg, err := f.products.SetImage(ctx, p.ID, "data:image/png;base64,AA==")
	if err != nil || withImg.Image == "" {
		t.Fatalf("SetImage = %+v %v", withImg, err)
	}

	if err := f.products.Delete(ctx, "missing"); err != nil {
		t.Errorf("delete unknown returned %v", err)
	}
	if err := f.products.Delete(ctx, p.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := f.products.Get(ctx, p.ID); !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if got := testutil.ToFloat64(f.metrics.Mutations.WithLabelValues(ports.KeyProducts, "delete")); got != 1 {
		t.Errorf("delete mutations = %v", got)
	}
}

func TestProductCatalog_CategoriesReload(t *testing.T) {
	f := newProductFixture(t, false)
	ctx := context.Background()

	f.products.SetCategories([]string{"Toys"})
	c := newCandidate("Robot", 20)
	c.Category = "Toys"
	if _, err := f.products.Create(ctx, c); err != nil {
		t.Errorf("reloaded category rejected: %v", err)
	}
	if _, err := f.products.Create(ctx, newCandidate("Console", 499)); err == nil {
		t.Error("removed category still accepted")
	}
}
