// Package idgen provides ID generation implementations.
package idgen

import (
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/artpar/storeadmin/ports"
)

// Timestamp issues decimal millisecond-epoch IDs, the format existing
// collections already use. IDs are strictly increasing within a process:
// two calls in the same millisecond get consecutive values.
type Timestamp struct {
	clock ports.Clock
	mu    sync.Mutex
	last  int64
}

// NewTimestamp creates a timestamp generator reading clock.
func NewTimestamp(clock ports.Clock) *Timestamp {
	return &Timestamp{clock: clock}
}

// New returns the next ID.
func (g *Timestamp) New() string {
	ms := g.clock.Now().UnixMilli()

	g.mu.Lock()
	if ms <= g.last {
		ms = g.last + 1
	}
	g.last = ms
	g.mu.Unlock()

	return strconv.FormatInt(ms, 10)
}

var _ ports.IDGenerator = (*Timestamp)(nil)

// UUID generates time-ordered UUID v7 strings.
type UUID struct{}

// New generates a new UUID v7, falling back to v4 if the clock sequence
// cannot be read.
func (UUID) New() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}

var _ ports.IDGenerator = UUID{}

// Sequential generates sequential IDs (for testing).
type Sequential struct {
	prefix  string
	counter uint64
}

// NewSequential creates a sequential ID generator.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// New generates the next sequential ID.
func (s *Sequential) New() string {
	n := atomic.AddUint64(&s.counter, 1)
	return s.prefix + strconv.FormatUint(n, 10)
}

// Reset resets the counter (for testing).
func (s *Sequential) Reset() {
	atomic.StoreUint64(&s.counter, 0)
}

var _ ports.IDGenerator = (*Sequential)(nil)

// ByName returns the generator for a configured strategy.
func ByName(name string, clock ports.Clock) ports.IDGenerator {
	switch name {
	case "uuid":
		return UUID{}
	default:
		return NewTimestamp(clock)
	}
}
