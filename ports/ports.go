// Package ports defines the interfaces between the catalog services and
// their infrastructure. Implementations live in adapters/.
package ports

import (
	"context"
	"time"

	"github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/domain/order"
	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/domain/product"
)

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// Random abstracts randomness for testability.
type Random interface {
	// Bytes generates n random bytes.
	Bytes(n int) ([]byte, error)
	// String generates a random hex string of n characters.
	String(n int) (string, error)
}

// IDGenerator generates unique record identifiers.
type IDGenerator interface {
	New() string
}

// Hasher provides password hashing.
type Hasher interface {
	// Hash generates a hash from a plaintext value.
	Hash(plaintext string) ([]byte, error)

	// Compare checks if plaintext matches hash.
	Compare(hash []byte, plaintext string) bool

	// NeedsRehash reports whether hash should be replaced by a fresh Hash
	// of the same plaintext, e.g. after the work factor changed.
	NeedsRehash(hash []byte) bool
}

// -----------------------------------------------------------------------------
// Persistence Ports
// -----------------------------------------------------------------------------

// Collection keys in the KVStore.
const (
	KeyPlans    = "installmentPlans"
	KeyProducts = "products"
	KeyOrders   = "orders"
	KeyAccounts = "adminAccounts"
)

// KVStore is a flat string-keyed store of opaque values. Collections are
// written whole; there is no versioning, so the last writer wins.
type KVStore interface {
	// Get returns the value under key. ok is false if the key was never set.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Set replaces the value under key.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Collection loads and saves one whole record collection.
type Collection[T any] interface {
	// Load returns the stored records in storage order. present is false
	// when the collection has never been written, which triggers seeding.
	Load(ctx context.Context) (items []T, present bool, err error)

	// Save overwrites the full collection.
	Save(ctx context.Context, items []T) error
}

// PlanRepository persists installment plans.
type PlanRepository = Collection[plan.Plan]

// ProductRepository persists catalog products.
type ProductRepository = Collection[product.Product]

// OrderRepository persists customer orders.
type OrderRepository = Collection[order.Order]

// AccountRepository persists admin accounts.
type AccountRepository = Collection[admin.Account]

// SessionStore holds admin login sessions.
type SessionStore interface {
	// Create stores a new session.
	Create(ctx context.Context, s admin.Session) error

	// Get retrieves a session by ID.
	Get(ctx context.Context, id string) (admin.Session, error)

	// Delete removes a session (logout).
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes all sessions expired at now.
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}

// -----------------------------------------------------------------------------
// Observability Ports
// -----------------------------------------------------------------------------

// CatalogMetrics receives catalog events. The Prometheus collector
// implements it; services accept nil.
type CatalogMetrics interface {
	// Mutation counts a successful write to collection.
	Mutation(collection, op string)

	// ValidationFailure counts a rejected field.
	ValidationFailure(collection, field string)

	// StalePlanReference counts a product plan ID that did not resolve.
	StalePlanReference()

	// Login counts a login attempt by result.
	Login(result string)
}
