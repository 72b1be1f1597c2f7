// Package bootstrap wires all dependencies and starts the application.
// Configuration comes from a YAML file when one exists and from
// STOREADMIN_* environment variables otherwise.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/adapters/clock"
	"github.com/artpar/storeadmin/adapters/collection"
	"github.com/artpar/storeadmin/adapters/hasher"
	apihttp "github.com/artpar/storeadmin/adapters/http"
	"github.com/artpar/storeadmin/adapters/http/admin"
	"github.com/artpar/storeadmin/adapters/idgen"
	"github.com/artpar/storeadmin/adapters/media"
	"github.com/artpar/storeadmin/adapters/memory"
	"github.com/artpar/storeadmin/adapters/metrics"
	"github.com/artpar/storeadmin/adapters/random"
	"github.com/artpar/storeadmin/adapters/redis"
	"github.com/artpar/storeadmin/adapters/sqlite"
	"github.com/artpar/storeadmin/app"
	"github.com/artpar/storeadmin/config"
	"github.com/artpar/storeadmin/ports"
)

// DefaultConfigPath is read when no path is given.
const DefaultConfigPath = "storeadmin.yaml"

// App represents the running application.
type App struct {
	Logger     zerolog.Logger
	Config     *config.Holder
	Store      ports.KVStore
	Sessions   ports.SessionStore
	HTTPServer *http.Server
	Metrics    *metrics.Collector
	Registry   *prometheus.Registry

	// Services
	Plans    *app.PlanCatalog
	Products *app.ProductCatalog
	Orders   *app.OrderBook
	Admins   *app.AdminService

	janitor *SessionJanitor
	version string
}

// Options provides optional configuration for application initialization.
type Options struct {
	// ConfigPath is the YAML file to load and watch. When the file does not
	// exist the environment is used and nothing is watched.
	ConfigPath string

	// Config, when set, is used as-is instead of loading ConfigPath.
	Config *config.Config

	// LogOutput defaults to stdout.
	LogOutput io.Writer

	// Version is reported by /version and the doctor endpoint.
	Version string

	// Watch enables config file watching and SIGHUP reloads.
	Watch bool
}

// New creates and initializes the application.
func New(opts Options) (*App, error) {
	cfg, path, err := loadConfig(opts)
	if err != nil {
		return nil, err
	}

	out := opts.LogOutput
	if out == nil {
		out = os.Stdout
	}
	logger := NewLogger(cfg.Logging, out)
	logger.Info().Str("storage", cfg.Storage.Backend).Msg("initializing storeadmin")

	var holder *config.Holder
	if path != "" {
		if holder, err = config.NewHolder(path, logger); err != nil {
			return nil, err
		}
	} else {
		holder = config.NewStaticHolder(cfg, logger)
	}

	a := &App{
		Logger:   logger,
		Config:   holder,
		Registry: prometheus.NewRegistry(),
		version:  opts.Version,
	}
	a.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	a.Metrics = metrics.NewWithRegistry(a.Registry)

	clk, err := clock.InZone(cfg.Catalog.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.initStorage(ctx, cfg.Storage, clk); err != nil {
		return nil, fmt.Errorf("init storage: %w", err)
	}

	a.initServices(cfg, clk)

	if err := a.initHTTPServer(cfg); err != nil {
		a.Store.Close()
		return nil, fmt.Errorf("init http server: %w", err)
	}

	holder.Observe(a.Metrics)
	holder.OnChange(a.applyConfig)
	if opts.Watch && holder.Path() != "" {
		if err := holder.WatchFile(); err != nil {
			logger.Warn().Err(err).Msg("config file watch disabled")
		}
		holder.WatchSignals()
	}

	a.janitor = NewSessionJanitor(a.Admins, sessionSweepInterval(cfg.Auth.SessionTTL), logger)

	return a, nil
}

func loadConfig(opts Options) (*config.Config, string, error) {
	if opts.Config != nil {
		return opts.Config, "", nil
	}
	path := opts.ConfigPath
	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); err != nil {
		if opts.ConfigPath != "" && !errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("stat config: %w", err)
		}
		cfg, err := config.LoadFromEnv()
		if err != nil {
			return nil, "", err
		}
		return cfg, "", nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// OpenStorage opens the configured key-value and session stores.
func OpenStorage(ctx context.Context, cfg config.StorageConfig, clk ports.Clock) (ports.KVStore, ports.SessionStore, error) {
	switch cfg.Backend {
	case "sqlite":
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(); err != nil {
			db.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		return sqlite.NewKVStore(db), sqlite.NewSessionStore(db), nil
	case "redis":
		client, err := redis.Connect(ctx, redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			Prefix:   cfg.Redis.Prefix,
		})
		if err != nil {
			return nil, nil, err
		}
		return redis.NewKVStore(client, cfg.Redis.Prefix), redis.NewSessionStore(client, cfg.Redis.Prefix, clk), nil
	case "memory":
		return memory.NewKVStore(), memory.NewSessionStore(), nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

func (a *App) initStorage(ctx context.Context, cfg config.StorageConfig, clk ports.Clock) error {
	store, sessions, err := OpenStorage(ctx, cfg, clk)
	if err != nil {
		return err
	}
	a.Store = store
	a.Sessions = sessions
	a.Logger.Info().Str("backend", cfg.Backend).Msg("storage ready")
	return nil
}

func (a *App) initServices(cfg *config.Config, clk ports.Clock) {
	ids := idgen.ByName(cfg.Catalog.IDStrategy, clk)
	component := func(name string) zerolog.Logger {
		return a.Logger.With().Str("component", name).Logger()
	}

	a.Plans = app.NewPlanCatalog(app.PlanCatalogConfig{
		Repo:    collection.Plans(a.Store).Observe(a.Metrics),
		Clock:   clk,
		IDGen:   ids,
		Metrics: a.Metrics,
		Logger:  component("plans"),
		Policy:  cfg.Catalog.NamePolicy(),
	})
	a.Products = app.NewProductCatalog(app.ProductCatalogConfig{
		Repo:       collection.Products(a.Store).Observe(a.Metrics),
		Plans:      a.Plans,
		Clock:      clk,
		IDGen:      ids,
		Metrics:    a.Metrics,
		Logger:     component("products"),
		Categories: cfg.Catalog.Categories,
		SeedDemo:   cfg.Catalog.SeedDemoData,
	})
	a.Orders = app.NewOrderBook(app.OrderBookConfig{
		Repo:     collection.Orders(a.Store).Observe(a.Metrics),
		Products: a.Products,
		Metrics:  a.Metrics,
		Logger:   component("orders"),
		SeedDemo: cfg.Catalog.SeedDemoData,
	})
	a.Admins = app.NewAdminService(app.AdminServiceConfig{
		Accounts:   collection.Accounts(a.Store).Observe(a.Metrics),
		Sessions:   a.Sessions,
		Hasher:     hasher.NewBcrypt(cfg.Auth.BcryptCost),
		Random:     random.Real{},
		Clock:      clk,
		Metrics:    a.Metrics,
		Logger:     component("admin"),
		SessionTTL: cfg.Auth.SessionTTL,
		Seeds:      cfg.Auth.Accounts,
	})
}

func (a *App) initHTTPServer(cfg *config.Config) error {
	adminHandler := admin.NewHandler(admin.Deps{
		Plans:      a.Plans,
		Products:   a.Products,
		Orders:     a.Orders,
		Admins:     a.Admins,
		Images:     media.NewProcessor(cfg.Images.MaxBytes, cfg.Images.MaxDimension),
		Logger:     a.Logger.With().Str("component", "admin_api").Logger(),
		CookieName: cfg.Auth.CookieName,
		Version:    a.version,
		StorePing:  a.Store.Ping,
	})

	routerCfg := apihttp.RouterConfig{
		EnableOpenAPI:  cfg.OpenAPI.Enabled,
		AdminHandler:   adminHandler.Router(),
		RequestTimeout: cfg.Server.RequestTimeout,
		Version:        a.version,
	}
	if cfg.Metrics.Enabled {
		routerCfg.Metrics = a.Metrics
		routerCfg.MetricsPath = cfg.Metrics.Path
		routerCfg.MetricsHandler = promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{Registry: a.Registry})
		a.Logger.Info().Str("path", cfg.Metrics.Path).Msg("prometheus metrics enabled")
	}

	router := apihttp.NewRouter(apihttp.NewHealthHandler(a.Store), a.Logger, routerCfg)

	a.HTTPServer = &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}
	return nil
}

// applyConfig pushes the reloadable settings into the running services.
func (a *App) applyConfig(cfg *config.Config) {
	a.Plans.SetNamePolicy(cfg.Catalog.NamePolicy())
	a.Products.SetCategories(cfg.Catalog.Categories)
	if level, err := zerolog.ParseLevel(cfg.Logging.Level); err == nil {
		zerolog.SetGlobalLevel(level)
	}
}

// Run starts the HTTP server and blocks until shutdown.
func (a *App) Run() error {
	a.janitor.Start()

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info().
			Str("addr", a.HTTPServer.Addr).
			Msg("starting http server")
		if err := a.HTTPServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		a.Shutdown()
		return fmt.Errorf("server error: %w", err)
	case sig := <-quit:
		a.Logger.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	return a.Shutdown()
}

// Shutdown gracefully stops the application.
func (a *App) Shutdown() error {
	timeout := a.Config.Get().Server.ShutdownTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	a.Config.Stop()

	if a.janitor != nil {
		a.janitor.Stop()
	}

	if a.HTTPServer != nil {
		if err := a.HTTPServer.Shutdown(ctx); err != nil {
			a.Logger.Error().Err(err).Msg("http server shutdown error")
		}
	}

	var err error
	if a.Store != nil {
		if err = a.Store.Close(); err != nil {
			a.Logger.Error().Err(err).Msg("storage close error")
		}
	}

	a.Logger.Info().Msg("shutdown complete")
	return err
}

// NewLogger builds the process logger from cfg. The level is applied
// globally so it can be changed on reload.
func NewLogger(cfg config.LoggingConfig, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if cfg.Format == "console" {
		output := zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
		return zerolog.New(output).With().Timestamp().Logger()
	}

	return zerolog.New(out).With().Timestamp().Logger()
}

func sessionSweepInterval(ttl time.Duration) time.Duration {
	interval := ttl / 4
	if interval < time.Minute {
		interval = time.Minute
	}
	if interval > time.Hour {
		interval = time.Hour
	}
	return interval
}
