package bootstrap_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/bootstrap"
	"github.com/artpar/storeadmin/config"
	"github.com/artpar/storeadmin/domain/plan"
)

func testConfig(t *testing.T, backend string) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.Storage.Backend = backend
	cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "test.db")
	cfg.Auth.BcryptCost = 4
	cfg.Catalog.SeedDemoData = true
	return cfg
}

func newApp(t *testing.T, cfg *config.Config) *bootstrap.App {
	t.Helper()
	a, err := bootstrap.New(bootstrap.Options{Config: cfg, LogOutput: io.Discard, Version: "test"})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	return a
}

func TestBootstrap_Memory(t *testing.T) {
	a := newApp(t, testConfig(t, "memory"))
	defer a.Shutdown()

	if a.HTTPServer == nil || a.Store == nil || a.Metrics == nil {
		t.Fatal("app not fully initialized")
	}
	if a.HTTPServer.Addr != "0.0.0.0:8080" {
		t.Errorf("Addr = %s", a.HTTPServer.Addr)
	}

	plans, err := a.Plans.List(context.Background())
	if err != nil || len(plans) != len(plan.Seed()) {
		t.Errorf("plans = %d %v", len(plans), err)
	}
}

func TestBootstrap_SQLitePersists(t *testing.T) {
	cfg := testConfig(t, "sqlite")
	ctx := context.Background()

	a := newApp(t, cfg)
	w, m, total := 10.0, 20.0, 100.0
	if _, err := a.Plans.Create(ctx, plan.Candidate{
		PlanName: "6-Month", WeeklyPercentage: &w, MonthlyPercentage: &m, TotalPricePercentage: &total,
	}); err == nil {
		t.Fatal("expected duplicate name to be rejected")
	}
	if err := a.Plans.Delete(ctx, "1"); err != nil {
		t.Fatal(err)
	}
	if err := a.Shutdown(); err != nil {
		t.Fatalf("shutdown: %v", err)
	}

	b := newApp(t, cfg)
	defer b.Shutdown()
	plans, err := b.Plans.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(plans) != len(plan.Seed())-1 {
		t.Errorf("plans after reopen = %d, want %d", len(plans), len(plan.Seed())-1)
	}
}

func TestBootstrap_UnknownBackend(t *testing.T) {
	cfg := testConfig(t, "memory")
	cfg.Storage.Backend = "etcd"

	if _, err := bootstrap.New(bootstrap.Options{Config: cfg, LogOutput: io.Discard}); err == nil {
		t.Error("expected error for unknown backend")
	}
}

func TestBootstrap_EndToEnd(t *testing.T) {
	a := newApp(t, testConfig(t, "memory"))
	defer a.Shutdown()

	srv := httptest.NewServer(a.HTTPServer.Handler)
	defer srv.Close()

	body, _ := json.Marshal(map[string]string{"email": "admin1@example.com", "password": "admin123"})
	resp, err := http.Post(srv.URL+"/admin/login", "application/json", bytes.NewReader(body))
	if err != nil {
		t.Fatal(err)
	}
	var login struct {
		SessionID string `json:"session_id"`
	}
	json.NewDecoder(resp.Body).Decode(&login)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK || login.SessionID == "" {
		t.Fatalf("login: status=%d", resp.StatusCode)
	}

	req, _ := http.NewRequest("GET", srv.URL+"/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+login.SessionID)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("products: status=%d", resp.StatusCode)
	}

	resp, err = http.Get(srv.URL + "/metrics")
	if err != nil {
		t.Fatal(err)
	}
	metricsBody, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	for _, want := range []string{"storeadmin_http_requests_total", "storeadmin_admin_logins_total", "go_goroutines"} {
		if !strings.Contains(string(metricsBody), want) {
			t.Errorf("metrics output missing %s", want)
		}
	}
}

func TestBootstrap_ConfigReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "storeadmin.yaml")
	write := func(categories string) {
		data := "storage:\n  backend: memory\nauth:\n  bcrypt_cost: 4\ncatalog:\n  categories: [" + categories + "]\n"
		if err := os.WriteFile(path, []byte(data), 0644); err != nil {
			t.Fatal(err)
		}
	}
	write("Phones, Laptops")

	a, err := bootstrap.New(bootstrap.Options{ConfigPath: path, LogOutput: io.Discard})
	if err != nil {
		t.Fatalf("create app: %v", err)
	}
	defer a.Shutdown()

	if got := a.Products.Categories(); len(got) != 2 {
		t.Fatalf("categories = %v", got)
	}

	write("Phones, Laptops, Drones")
	if err := a.Config.Reload(); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := a.Products.Categories(); len(got) != 3 || got[2] != "Drones" {
		t.Errorf("categories after reload = %v", got)
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

type countingPurger struct{ calls atomic.Int32 }

func (p *countingPurger) PurgeExpired(ctx context.Context) (int, error) {
	p.calls.Add(1)
	return 1, nil
}

func TestSessionJanitor(t *testing.T) {
	p := &countingPurger{}
	j := bootstrap.NewSessionJanitor(p, 10*time.Millisecond, zerolog.Nop())
	j.Start()

	deadline := time.Now().Add(2 * time.Second)
	for p.calls.Load() < 2 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	j.Stop()
	j.Stop()

	if p.calls.Load() < 2 {
		t.Errorf("calls = %d, want at least 2", p.calls.Load())
	}
	n := p.calls.Load()
	time.Sleep(30 * time.Millisecond)
	if p.calls.Load() != n {
		t.Error("janitor kept running after Stop")
	}
}

func TestNewLogger(t *testing.T) {
	defer zerolog.SetGlobalLevel(zerolog.InfoLevel)

	var buf bytes.Buffer
	logger := bootstrap.NewLogger(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}
