// Package redis provides Redis implementations of the persistence ports.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/ports"
)

// Options configures the connection.
type Options struct {
	Addr     string
	Password string
	DB       int
	Prefix   string // prepended to every key, e.g. "storeadmin:"
}

// Connect opens a client and verifies it with PING.
func Connect(ctx context.Context, opts Options) (*goredis.Client, error) {
	client := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
	}
	return client, nil
}

// KVStore implements ports.KVStore with one Redis string per collection.
type KVStore struct {
	client *goredis.Client
	prefix string
}

// NewKVStore wraps client. Keys are namespaced with prefix.
func NewKVStore(client *goredis.Client, prefix string) *KVStore {
	return &KVStore{client: client, prefix: prefix}
}

// Get returns the value under key.
func (s *KVStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get %s: %w", key, err)
	}
	return v, true, nil
}

// Set stores value under key with no expiry.
func (s *KVStore) Set(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

// Delete removes key.
func (s *KVStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Ping sends PING.
func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the client.
func (s *KVStore) Close() error {
	return s.client.Close()
}

var _ ports.KVStore = (*KVStore)(nil)

// SessionStore keeps admin sessions as JSON values that Redis expires on
// its own at ExpiresAt.
type SessionStore struct {
	client *goredis.Client
	prefix string
	now    func() time.Time
}

// NewSessionStore wraps client. Keys are "<prefix>session:<id>".
func NewSessionStore(client *goredis.Client, prefix string, clock ports.Clock) *SessionStore {
	return &SessionStore{client: client, prefix: prefix + "session:", now: clock.Now}
}

// Create stores sess with a TTL matching its expiry.
func (s *SessionStore) Create(ctx context.Context, sess admin.Session) error {
	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return nil
	}
	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.prefix+sess.ID, data, ttl).Err()
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(ctx context.Context, id string) (admin.Session, error) {
	data, err := s.client.Get(ctx, s.prefix+id).Bytes()
	if errors.Is(err, goredis.Nil) {
		return admin.Session{}, fault.ErrNotFound
	}
	if err != nil {
		return admin.Session{}, err
	}
	var sess admin.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return admin.Session{}, fmt.Errorf("decode session %s: %w", id, err)
	}
	return sess, nil
}

// Delete removes a session.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.prefix+id).Err()
}

// DeleteExpired is a no-op; Redis evicts sessions by TTL.
func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	return 0, nil
}

var _ ports.SessionStore = (*SessionStore)(nil)
