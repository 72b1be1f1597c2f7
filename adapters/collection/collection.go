// Package collection stores whole record collections as JSON arrays in a
// ports.KVStore.
package collection

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/domain/order"
	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/domain/product"
	"github.com/artpar/storeadmin/ports"
)

// WriteObserver is told about every Save, for metrics.
type WriteObserver interface {
	StoreWrite(collection string, err error)
}

// JSON is a repository for one collection key.
type JSON[T any] struct {
	store    ports.KVStore
	key      string
	observer WriteObserver
}

// New creates a repository over key.
func New[T any](store ports.KVStore, key string) *JSON[T] {
	return &JSON[T]{store: store, key: key}
}

// Observe sets the write observer and returns r.
func (r *JSON[T]) Observe(o WriteObserver) *JSON[T] {
	r.observer = o
	return r
}

// Key returns the collection key.
func (r *JSON[T]) Key() string {
	return r.key
}

// Load decodes the stored array. A stored empty value or JSON null is a
// present, empty collection.
func (r *JSON[T]) Load(ctx context.Context) ([]T, bool, error) {
	data, ok, err := r.store.Get(ctx, r.key)
	if err != nil {
		return nil, false, fmt.Errorf("load %s: %w", r.key, err)
	}
	if !ok {
		return nil, false, nil
	}

	items := []T{}
	if len(data) == 0 {
		return items, true, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, true, fmt.Errorf("decode %s: %w", r.key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

// Save encodes items and overwrites the stored collection. A nil slice is
// written as [] so the collection counts as present afterwards.
func (r *JSON[T]) Save(ctx context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.key, err)
	}
	err = r.store.Set(ctx, r.key, data)
	if r.observer != nil {
		r.observer.StoreWrite(r.key, err)
	}
	if err != nil {
		return fmt.Errorf("save %s: %w", r.key, err)
	}
	return nil
}

// Plans returns the installment plan repository.
func Plans(store ports.KVStore) *JSON[plan.Plan] {
	return New[plan.Plan](store, ports.KeyPlans)
}

// Products returns the product repository.
func Products(store ports.KVStore) *JSON[product.Product] {
	return New[product.Product](store, ports.KeyProducts)
}

// Orders returns the order repository.
func Orders(store ports.KVStore) *JSON[order.Order] {
	return New[order.Order](store, ports.KeyOrders)
}

// Accounts returns the admin account repository.
func Accounts(store ports.KVStore) *JSON[admin.Account] {
	return New[admin.Account](store, ports.KeyAccounts)
}

var (
	_ ports.PlanRepository    = (*JSON[plan.Plan])(nil)
	_ ports.ProductRepository = (*JSON[product.Product])(nil)
	_ ports.OrderRepository   = (*JSON[order.Order])(nil)
	_ ports.AccountRepository = (*JSON[admin.Account])(nil)
)
