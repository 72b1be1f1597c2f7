package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/ports"
)

// PlanCatalogConfig holds PlanCatalog dependencies.
type PlanCatalogConfig struct {
	Repo    ports.PlanRepository
	Clock   ports.Clock
	IDGen   ports.IDGenerator
	Metrics ports.CatalogMetrics
	Logger  zerolog.Logger
	Policy  plan.NamePolicy
}

// PlanCatalog manages installment plans.
type PlanCatalog struct {
	repo    ports.PlanRepository
	clock   ports.Clock
	ids     ports.IDGenerator
	metrics ports.CatalogMetrics
	logger  zerolog.Logger

	mu sync.Mutex // guards load-modify-save

	policyMu sync.RWMutex
	policy   plan.NamePolicy
}

// NewPlanCatalog creates a plan catalog.
func NewPlanCatalog(cfg PlanCatalogConfig) *PlanCatalog {
	return &PlanCatalog{
		repo:    cfg.Repo,
		clock:   cfg.Clock,
		ids:     cfg.IDGen,
		metrics: metricsOrNop(cfg.Metrics),
		logger:  cfg.Logger,
		policy:  cfg.Policy,
	}
}

// SetNamePolicy replaces the name policy. Safe to call while serving.
func (c *PlanCatalog) SetNamePolicy(p plan.NamePolicy) {
	c.policyMu.Lock()
	c.policy = p
	c.policyMu.Unlock()
	c.logger.Info().Str("mode", string(p.Mode)).Strs("allowed", p.Allowed).Msg("plan name policy updated")
}

// NamePolicy returns the current name policy.
func (c *PlanCatalog) NamePolicy() plan.NamePolicy {
	c.policyMu.RLock()
	defer c.policyMu.RUnlock()
	return plan.NamePolicy{Mode: c.policy.Mode, Allowed: append([]string(nil), c.policy.Allowed...)}
}

// NameOptions returns the names offered by the add-plan form. Empty when
// the policy is free-text.
func (c *PlanCatalog) NameOptions() []string {
	p := c.NamePolicy()
	if p.Mode != plan.NameModeClosed {
		return []string{}
	}
	return p.Allowed
}

// List returns all plans in storage order. A never-written collection is
// seeded with the built-in plans, once.
func (c *PlanCatalog) List(ctx context.Context) ([]plan.Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadLocked(ctx)
}

// Get returns one plan.
func (c *PlanCatalog) Get(ctx context.Context, id string) (plan.Plan, error) {
	plans, err := c.List(ctx)
	if err != nil {
		return plan.Plan{}, err
	}
	p, ok := plan.FindPlan(plans, id)
	if !ok {
		return plan.Plan{}, fault.NotFound("plan", id)
	}
	return p, nil
}

// Create validates cand and appends a new plan.
func (c *PlanCatalog) Create(ctx context.Context, cand plan.Candidate) (plan.Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	plans, err := c.loadLocked(ctx)
	if err != nil {
		return plan.Plan{}, err
	}

	if err := plan.Validate(cand, plans, "", c.NamePolicy()); err != nil {
		countValidation(c.metrics, ports.KeyPlans, err)
		return plan.Plan{}, err
	}

	p := plan.New(c.ids.New(), cand, c.clock.Now())
	if err := c.repo.Save(ctx, append(plans, p)); err != nil {
		return plan.Plan{}, err
	}

	c.metrics.Mutation(ports.KeyPlans, "create")
	c.logger.Info().Str("plan_id", p.ID).Str("name", p.PlanName).Msg("plan created")
	return p, nil
}

// Update replaces the name and percentages of plan id. The ID and creation
// stamp are kept.
func (c *PlanCatalog) Update(ctx context.Context, id string, cand plan.Candidate) (plan.Plan, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	plans, err := c.loadLocked(ctx)
	if err != nil {
		return plan.Plan{}, err
	}

	existing, ok := plan.FindPlan(plans, id)
	if !ok {
		return plan.Plan{}, fault.NotFound("plan", id)
	}

	if err := plan.Validate(cand, plans, id, c.NamePolicy()); err != nil {
		countValidation(c.metrics, ports.KeyPlans, err)
		return plan.Plan{}, err
	}

	updated := existing.Apply(cand)
	plans, _ = plan.Replace(plans, updated)
	if err := c.repo.Save(ctx, plans); err != nil {
		return plan.Plan{}, err
	}

	c.metrics.Mutation(ports.KeyPlans, "update")
	c.logger.Info().Str("plan_id", id).Str("name", updated.PlanName).Msg("plan updated")
	return updated, nil
}

// Delete removes plan id. Unknown IDs are a no-op. Products that reference
// the plan keep the dangling ID.
func (c *PlanCatalog) Delete(ctx context.Context, id string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	plans, err := c.loadLocked(ctx)
	if err != nil {
		return err
	}

	rest, found := plan.Remove(plans, id)
	if !found {
		c.logger.Debug().Str("plan_id", id).Msg("delete of unknown plan ignored")
		return nil
	}
	if err := c.repo.Save(ctx, rest); err != nil {
		return err
	}

	c.metrics.Mutation(ports.KeyPlans, "delete")
	c.logger.Info().Str("plan_id", id).Msg("plan deleted")
	return nil
}

func (c *PlanCatalog) loadLocked(ctx context.Context) ([]plan.Plan, error) {
	plans, present, err := c.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if present {
		return plans, nil
	}

	seed := plan.Seed()
	if err := c.repo.Save(ctx, seed); err != nil {
		return nil, err
	}
	c.metrics.Mutation(ports.KeyPlans, "seed")
	c.logger.Info().Int("count", len(seed)).Msg("plan catalog seeded")
	return seed, nil
}
