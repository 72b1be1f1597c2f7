package redis_test

import (
	"context"
	"errors"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/artpar/storeadmin/adapters/clock"
	"github.com/artpar/storeadmin/adapters/redis"
	"github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/domain/fault"
)

// testOptions returns connection options for an isolated test database, or
// skips when no Redis is configured.
func testOptions(t *testing.T) redis.Options {
	t.Helper()

	addr := os.Getenv("STOREADMIN_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("STOREADMIN_TEST_REDIS_ADDR not set")
	}
	return redis.Options{
		Addr:     addr,
		Password: os.Getenv("STOREADMIN_TEST_REDIS_PASSWORD"),
		DB:       14,
		Prefix:   "storeadmin-test-" + strconv.FormatInt(time.Now().UnixNano(), 36) + ":",
	}
}

func TestKVStore_RoundTrip(t *testing.T) {
	opts := testOptions(t)
	ctx := context.Background()

	client, err := redis.Connect(ctx, opts)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	store := redis.NewKVStore(client, opts.Prefix)
	defer store.Close()

	if _, ok, err := store.Get(ctx, "installmentPlans"); err != nil || ok {
		t.Fatalf("Get missing = %v %v", ok, err)
	}

	if err := store.Set(ctx, "installmentPlans", []byte(`[]`)); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	v, ok, err := store.Get(ctx, "installmentPlans")
	if err != nil || !ok || string(v) != "[]" {
		t.Errorf("Get = %q %v %v", v, ok, err)
	}

	if err := store.Delete(ctx, "installmentPlans"); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, ok, _ := store.Get(ctx, "installmentPlans"); ok {
		t.Error("key present after Delete")
	}
}

func TestSessionStore(t *testing.T) {
	opts := testOptions(t)
	ctx := context.Background()

	client, err := redis.Connect(ctx, opts)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	now := time.Now()
	store := redis.NewSessionStore(client, opts.Prefix, clock.NewFake(now))

	sess := admin.Session{ID: "s1", Email: "admin1@example.com", Role: admin.RoleAdmin, CreatedAt: now, ExpiresAt: now.Add(time.Minute)}
	if err := store.Create(ctx, sess); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	got, err := store.Get(ctx, "s1")
	if err != nil || got.Email != sess.Email {
		t.Fatalf("Get = %+v %v", got, err)
	}

	store.Delete(ctx, "s1")
	if _, err := store.Get(ctx, "s1"); !errors.Is(err, fault.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
