package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/domain/binding"
	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/domain/pricing"
	"github.com/artpar/storeadmin/domain/product"
	"github.com/artpar/storeadmin/ports"
)

// PlanLister supplies the current plan catalog.
type PlanLister interface {
	List(ctx context.Context) ([]plan.Plan, error)
}

// ProductCatalogConfig holds ProductCatalog dependencies.
type ProductCatalogConfig struct {
	Repo       ports.ProductRepository
	Plans      PlanLister
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Metrics    ports.CatalogMetrics
	Logger     zerolog.Logger
	Categories []string
	SeedDemo   bool
}

// ProductCatalog manages products and their plan associations.
type ProductCatalog struct {
	repo     ports.ProductRepository
	plans    PlanLister
	clock    ports.Clock
	ids      ports.IDGenerator
	metrics  ports.CatalogMetrics
	logger   zerolog.Logger
	seedDemo bool

	mu sync.Mutex

	catMu      sync.RWMutex
	categories []string
}

// ProductView is a product joined with its resolved plans.
type ProductView struct {
	product.Product
	AssignedPlanIDs  []string       `json:"assignedPlanIds"`
	AssignmentSource binding.Source `json:"assignmentSource"`
	PlanNames        []string       `json:"planNames"`
	StalePlanIDs     []string       `json:"stalePlanIds,omitempty"`
}

// NewProductCatalog creates a product catalog.
func NewProductCatalog(cfg ProductCatalogConfig) *ProductCatalog {
	return &ProductCatalog{
		repo:       cfg.Repo,
		plans:      cfg.Plans,
		clock:      cfg.Clock,
		ids:        cfg.IDGen,
		metrics:    metricsOrNop(cfg.Metrics),
		logger:     cfg.Logger,
		seedDemo:   cfg.SeedDemo,
		categories: append([]string(nil), cfg.Categories...),
	}
}

// SetCategories replaces the accepted category set.
func (c *ProductCatalog) SetCategories(categories []string) {
	c.catMu.Lock()
	c.categories = append([]string(nil), categories...)
	c.catMu.Unlock()
	c.logger.Info().Strs("categories", categories).Msg("product categories updated")
}

// Categories returns the accepted category set.
func (c *ProductCatalog) Categories() []string {
	c.catMu.RLock()
	defer c.catMu.RUnlock()
	return append([]string(nil), c.categories...)
}

// List returns the products matching f.
func (c *ProductCatalog) List(ctx context.Context, f product.Filter) ([]product.Product, error) {
	c.mu.Lock()
	products, err := c.loadLocked(ctx)
	c.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return f.Apply(products), nil
}

// Count returns the number of stored products.
func (c *ProductCatalog) Count(ctx context.Context) (int, error) {
	products, err := c.List(ctx, product.Filter{})
	return len(products), err
}

// Brands returns the distinct brands in the catalog.
func (c *ProductCatalog) Brands(ctx context.Context) ([]string, error) {
	products, err := c.List(ctx, product.Filter{})
	if err != nil {
		return nil, err
	}
	return product.Brands(products), nil
}

// Get returns one product.
func (c *ProductCatalog) Get(ctx context.Context, id string) (product.Product, error) {
	products, err := c.List(ctx, product.Filter{})
	if err != nil {
		return product.Product{}, err
	}
	p, ok := product.Find(products, id)
	if !ok {
		return product.Product{}, fault.NotFound("product", id)
	}
	return p, nil
}

// Create validates cand and appends a new product with its plan selection.
func (c *ProductCatalog) Create(ctx context.Context, cand product.Candidate) (product.Product, error) {
	if err := product.Validate(&cand, c.Categories()); err != nil {
		countValidation(c.metrics, ports.KeyProducts, err)
		return product.Product{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.loadLocked(ctx)
	if err != nil {
		return product.Product{}, err
	}

	p := product.New(c.ids.New(), cand, c.clock.Now())
	p = attachPlans(p, cand.PlanIDs)
	if err := c.repo.Save(ctx, append(products, p)); err != nil {
		return product.Product{}, err
	}

	c.metrics.Mutation(ports.KeyProducts, "create")
	c.logger.Info().Str("product_id", p.ID).Str("name", p.Name).Strs("plan_ids", p.InstallmentPlanIDs).Msg("product created")
	return p, nil
}

// Update replaces the attributes and plan selection of product id.
func (c *ProductCatalog) Update(ctx context.Context, id string, cand product.Candidate) (product.Product, error) {
	if err := product.Validate(&cand, c.Categories()); err != nil {
		countValidation(c.metrics, ports.KeyProducts, err)
		return product.Product{}, err
	}

	return c.mutate(ctx, id, "update", func(p product.Product) product.Product {
		return attachPlans(p.Apply(cand), cand.PlanIDs)
	})
}

// AssignPlans sets the plan selection of product id.
func (c *ProductCatalog) AssignPlans(ctx context.Context, id string, planIDs []string) (product.Product, error) {
	return c.mutate(ctx, id, "assign", func(p product.Product) product.Product {
		return attachPlans(p, planIDs)
	})
}

// TogglePlan adds planID to the product's selection, or removes it if present.
func (c *ProductCatalog) TogglePlan(ctx context.Context, id, planID string) (product.Product, error) {
	return c.mutate(ctx, id, "assign", func(p product.Product) product.Product {
		return attachPlans(p, binding.Toggle(binding.AssignedPlanIDs(p), planID))
	})
}

// attachPlans applies an admin's plan selection. An empty selection also
// drops the legacy single-plan ID, otherwise the binding fallback would keep
// offering that plan and the product could never become cash-only.
func attachPlans(p product.Product, selected []string) product.Product {
	p = binding.Attach(p, selected)
	if len(selected) == 0 {
		p.InstallmentPlanID = ""
	}
	return p
}

// SetImage replaces the product image with an opaque URL or data URI.
func (c *ProductCatalog) SetImage(ctx context.Context, id, image string) (product.Product, error) {
	return c.mutate(ctx, id, "image", func(p product.Product) product.Product {
		p.Image = image
		return p
	})
}

// Delete removes product id. Unknown IDs are a no-op.
func (c *ProductCatalog) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}
	rest, found := product.Remove(products, id)
	if !found {
		c.logger.Debug().Str("product_id", id).Msg("delete of unknown product ignored")
		return nil
	}
	if err := c.repo.Save(ctx, rest); err != nil {
		return err
	}

	c.metrics.Mutation(ports.KeyProducts, "delete")
	c.logger.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// View returns the products matching f joined with their plan names.
// Stale plan IDs are dropped from the names, logged and counted.
func (c *ProductCatalog) View(ctx context.Context, f product.Filter) ([]ProductView, error) {
	products, err := c.List(ctx, f)
	if err != nil {
		return nil, err
	}
	plans, err := c.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		views = append(views, c.view(p, plans))
	}
	return views, nil
}

// ViewOne returns a single product view.
func (c *ProductCatalog) ViewOne(ctx context.Context, id string) (ProductView, error) {
	p, err := c.Get(ctx, id)
	if err != nil {
		return ProductView{}, err
	}
	plans, err := c.plans.List(ctx)
	if err != nil {
		return ProductView{}, err
	}
	return c.view(p, plans), nil
}

// Quotes prices product id under each of its resolvable plans.
func (c *ProductCatalog) Quotes(ctx context.Context, id string) ([]pricing.Schedule, error) {
	p, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	plans, err := c.plans.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := binding.AssignedPlanIDs(p)
	c.reportStale(p.ID, binding.StaleIDs(ids, plans))
	return pricing.QuoteAll(p.Price, binding.ResolvePlans(ids, plans)), nil
}

func (c *ProductCatalog) view(p product.Product, plans []plan.Plan) ProductView {
	a := binding.Resolve(p)
	stale := binding.StaleIDs(a.PlanIDs, plans)
	c.reportStale(p.ID, stale)
	return ProductView{
		Product:          p,
		AssignedPlanIDs:  a.PlanIDs,
		AssignmentSource: a.Source,
		PlanNames:        binding.ResolvePlanNames(a.PlanIDs, plans),
		StalePlanIDs:     stale,
	}
}

func (c *ProductCatalog) reportStale(productID string, stale []string) {
	for _, id := range stale {
		ref := fault.StaleReference{ProductID: productID, PlanID: id}
		c.metrics.StalePlanReference()
		c.logger.Debug().Str("product_id", ref.ProductID).Str("plan_id", ref.PlanID).Msg("stale plan reference")
	}
}

func (c *ProductCatalog) mutate(ctx context.Context, id, op string, fn func(product.Product) product.Product) (product.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	products, err := c.loadLocked(ctx)
	if err != nil {
		return product.Product{}, err
	}
	existing, ok := product.Find(products, id)
	if !ok {
		return product.Product{}, fault.NotFound("product", id)
	}

	updated := fn(existing)
	products, _ = product.Replace(products, updated)
	if err := c.repo.Save(ctx, products); err != nil {
		return product.Product{}, err
	}

	c.metrics.Mutation(ports.KeyProducts, op)
	c.logger.Info().Str("product_id", id).Str("op", op).Msg("product updated")
	return updated, nil
}

func (c *ProductCatalog) loadLocked(ctx context.Context) ([]product.Product, error) {
	products, present, err := c.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if present || !c.seedDemo {
		if products == nil {
			products = []product.Product{}
		}
		return products, nil
	}

	demo := product.Demo()
	if err := c.repo.Save(ctx, demo); err != nil {
		return nil, err
	}
	c.logger.Info().Int("count", len(demo)).Msg("product catalog seeded with demo data")
	return demo, nil
}
