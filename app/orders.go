package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/order"
	"github.com/artpar/storeadmin/ports"
)

// ProductCounter supplies the catalog size for dashboard stats.
type ProductCounter interface {
	Count(ctx context.Context) (int, error)
}

// OrderBookConfig holds OrderBook dependencies.
type OrderBookConfig struct {
	Repo     ports.OrderRepository
	Products ProductCounter
	Metrics  ports.CatalogMetrics
	Logger   zerolog.Logger
	SeedDemo bool
}

// OrderBook tracks customer orders and their processing status.
type OrderBook struct {
	repo     ports.OrderRepository
	products ProductCounter
	metrics  ports.CatalogMetrics
	logger   zerolog.Logger
	seedDemo bool

	mu sync.Mutex
}

// NewOrderBook creates an order book.
func NewOrderBook(cfg OrderBookConfig) *OrderBook {
	return &OrderBook{
		repo:     cfg.Repo,
		products: cfg.Products,
		metrics:  metricsOrNop(cfg.Metrics),
		logger:   cfg.Logger,
		seedDemo: cfg.SeedDemo,
	}
}

// List returns orders, optionally only those in status. An empty status
// matches all.
func (b *OrderBook) List(ctx context.Context, status order.Status) ([]order.Order, error) {
	b.mu.Lock()
	orders, err := b.loadLocked(ctx)
	b.mu.Unlock()
	if err != nil {
		return nil, err
	}
	if status == "" {
		return orders, nil
	}

	out := make([]order.Order, 0, len(orders))
	for _, o := range orders {
		if o.Status == status {
			out = append(out, o)
		}
	}
	return out, nil
}

// Advance moves order id to status to, enforcing the transition table.
func (b *OrderBook) Advance(ctx context.Context, id string, to order.Status) (order.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	orders, err := b.loadLocked(ctx)
	if err != nil {
		return order.Order{}, err
	}
	o, i, ok := order.Find(orders, id)
	if !ok {
		return order.Order{}, fault.NotFound("order", id)
	}

	next, err := order.Advance(o, to)
	if err != nil {
		return order.Order{}, err
	}
	orders[i] = next
	if err := b.repo.Save(ctx, orders); err != nil {
		return order.Order{}, err
	}

	b.metrics.Mutation(ports.KeyOrders, "advance")
	b.logger.Info().Str("order_id", id).Str("from", string(o.Status)).Str("to", string(to)).Msg("order status changed")
	return next, nil
}

// Proceed advances order id to the next status in sequence.
func (b *OrderBook) Proceed(ctx context.Context, id string) (order.Order, error) {
	orders, err := b.List(ctx, "")
	if err != nil {
		return order.Order{}, err
	}
	o, _, ok := order.Find(orders, id)
	if !ok {
		return order.Order{}, fault.NotFound("order", id)
	}
	next, ok := o.Status.Next()
	if !ok {
		return order.Order{}, order.ErrInvalidTransition
	}
	return b.Advance(ctx, id, next)
}

// Stats returns the dashboard counters.
func (b *OrderBook) Stats(ctx context.Context) (order.Stats, error) {
	orders, err := b.List(ctx, "")
	if err != nil {
		return order.Stats{}, err
	}
	count := 0
	if b.products != nil {
		if count, err = b.products.Count(ctx); err != nil {
			return order.Stats{}, err
		}
	}
	return order.ComputeStats(orders, count), nil
}

func (b *OrderBook) loadLocked(ctx context.Context) ([]order.Order, error) {
	orders, present, err := b.repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	if present || !b.seedDemo {
		if orders == nil {
			orders = []order.Order{}
		}
		return orders, nil
	}

	demo := order.Demo()
	if err := b.repo.Save(ctx, demo); err != nil {
		return nil, err
	}
	b.logger.Info().Int("count", len(demo)).Msg("order book seeded with demo data")
	return demo, nil
}
