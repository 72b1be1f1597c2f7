// Package config provides configuration loading and validation.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"

	"github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/domain/plan"
	"github.com/artpar/storeadmin/domain/product"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "STOREADMIN_"

// Config is the root configuration structure.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	Catalog CatalogConfig `yaml:"catalog"`
	Auth    AuthConfig    `yaml:"auth"`
	Images  ImagesConfig  `yaml:"images"`
	Logging LoggingConfig `yaml:"logging"`
	Metrics MetricsConfig `yaml:"metrics"`
	OpenAPI OpenAPIConfig `yaml:"openapi"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	RequestTimeout  time.Duration `yaml:"request_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// Addr returns host:port.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	Backend string       `yaml:"backend"` // "memory", "sqlite" or "redis"
	SQLite  SQLiteConfig `yaml:"sqlite"`
	Redis   RedisConfig  `yaml:"redis"`
}

// SQLiteConfig configures the sqlite backend.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// RedisConfig configures the redis backend.
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password,omitempty"`
	DB       int    `yaml:"db"`
	Prefix   string `yaml:"prefix"`
}

// CatalogConfig configures catalog rules and seeding.
type CatalogConfig struct {
	NameMode     string   `yaml:"name_mode"` // "closed" or "free"
	PlanNames    []string `yaml:"plan_names"`
	Categories   []string `yaml:"categories"`
	SeedDemoData bool     `yaml:"seed_demo_data"`
	IDStrategy   string   `yaml:"id_strategy"` // "timestamp" or "uuid"
	Timezone     string   `yaml:"timezone"`
}

// NamePolicy returns the plan-name policy described by c.
func (c CatalogConfig) NamePolicy() plan.NamePolicy {
	return plan.NamePolicy{
		Mode:    plan.NameMode(c.NameMode),
		Allowed: append([]string(nil), c.PlanNames...),
	}
}

// AuthConfig configures admin accounts and sessions.
type AuthConfig struct {
	SessionTTL time.Duration `yaml:"session_ttl"`
	BcryptCost int           `yaml:"bcrypt_cost"`
	CookieName string        `yaml:"cookie_name"`
	Accounts   []admin.Seed  `yaml:"accounts"`
}

// ImagesConfig bounds uploaded product images.
type ImagesConfig struct {
	MaxBytes     int `yaml:"max_bytes"`
	MaxDimension int `yaml:"max_dimension"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "console"
}

// MetricsConfig configures Prometheus metrics.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// OpenAPIConfig configures the Swagger UI.
type OpenAPIConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Load reads configuration from a YAML file. A .env file beside the config
// file, or in the working directory, is loaded first; it never overrides
// variables already set in the environment.
func Load(path string) (*Config, error) {
	loadDotEnv(filepath.Dir(path))

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	return Parse(data)
}

// Parse builds a configuration from YAML bytes, applying env expansion,
// overrides, defaults and validation.
func Parse(data []byte) (*Config, error) {
	data = []byte(os.ExpandEnv(string(data)))

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyEnvOverrides(cfg)
	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadFromEnv creates configuration from defaults and environment variables.
//
// Environment variables:
//
//	STOREADMIN_SERVER_HOST         - Server host (default: 0.0.0.0)
//	STOREADMIN_SERVER_PORT         - Server port (default: 8080)
//	STOREADMIN_STORAGE_BACKEND     - memory, sqlite or redis (default: sqlite)
//	STOREADMIN_SQLITE_PATH         - SQLite file (default: storeadmin.db)
//	STOREADMIN_REDIS_ADDR          - Redis address
//	STOREADMIN_REDIS_PASSWORD      - Redis password
//	STOREADMIN_REDIS_DB            - Redis database number
//	STOREADMIN_CATALOG_NAME_MODE   - closed or free (default: closed)
//	STOREADMIN_CATALOG_PLAN_NAMES  - Comma-separated allowed plan names
//	STOREADMIN_CATALOG_CATEGORIES  - Comma-separated product categories
//	STOREADMIN_CATALOG_SEED_DEMO   - Seed demo products and orders
//	STOREADMIN_CATALOG_ID_STRATEGY - timestamp or uuid (default: timestamp)
//	STOREADMIN_CATALOG_TIMEZONE    - IANA zone for creation stamps (default: UTC)
//	STOREADMIN_AUTH_SESSION_TTL    - Admin session lifetime (default: 24h)
//	STOREADMIN_LOG_LEVEL           - debug, info, warn, error (default: info)
//	STOREADMIN_LOG_FORMAT          - json or console (default: json)
//	STOREADMIN_METRICS_ENABLED     - Enable /metrics (default: true)
//	STOREADMIN_OPENAPI_ENABLED     - Enable /swagger (default: true)
func LoadFromEnv() (*Config, error) {
	loadDotEnv(".")

	cfg := Default()
	applyEnvOverrides(cfg)
	setDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// LoadWithFallback loads path when it exists and falls back to the
// environment otherwise.
func LoadWithFallback(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return LoadFromEnv()
}

// Default returns a configuration with every default applied and the
// switches that default to on already enabled.
func Default() *Config {
	cfg := &Config{
		Metrics: MetricsConfig{Enabled: true},
		OpenAPI: OpenAPIConfig{Enabled: true},
	}
	setDefaults(cfg)
	return cfg
}

func loadDotEnv(dir string) {
	candidates := []string{filepath.Join(dir, ".env")}
	if dir != "." {
		candidates = append(candidates, ".env")
	}
	for _, f := range candidates {
		if _, err := os.Stat(f); err == nil {
			_ = godotenv.Load(f)
		}
	}
}

// applyEnvOverrides applies STOREADMIN_* environment variables to the config.
// Environment variables always override file-based configuration.
func applyEnvOverrides(cfg *Config) {
	setString(&cfg.Server.Host, "SERVER_HOST")
	setInt(&cfg.Server.Port, "SERVER_PORT")
	setDuration(&cfg.Server.ReadTimeout, "SERVER_READ_TIMEOUT")
	setDuration(&cfg.Server.WriteTimeout, "SERVER_WRITE_TIMEOUT")
	setDuration(&cfg.Server.RequestTimeout, "SERVER_REQUEST_TIMEOUT")

	setString(&cfg.Storage.Backend, "STORAGE_BACKEND")
	setString(&cfg.Storage.SQLite.Path, "SQLITE_PATH")
	setString(&cfg.Storage.Redis.Addr, "REDIS_ADDR")
	setString(&cfg.Storage.Redis.Password, "REDIS_PASSWORD")
	setInt(&cfg.Storage.Redis.DB, "REDIS_DB")
	setString(&cfg.Storage.Redis.Prefix, "REDIS_PREFIX")

	setString(&cfg.Catalog.NameMode, "CATALOG_NAME_MODE")
	setList(&cfg.Catalog.PlanNames, "CATALOG_PLAN_NAMES")
	setList(&cfg.Catalog.Categories, "CATALOG_CATEGORIES")
	setBool(&cfg.Catalog.SeedDemoData, "CATALOG_SEED_DEMO")
	setString(&cfg.Catalog.IDStrategy, "CATALOG_ID_STRATEGY")
	setString(&cfg.Catalog.Timezone, "CATALOG_TIMEZONE")

	setDuration(&cfg.Auth.SessionTTL, "AUTH_SESSION_TTL")
	setInt(&cfg.Auth.BcryptCost, "AUTH_BCRYPT_COST")

	setInt(&cfg.Images.MaxBytes, "IMAGES_MAX_BYTES")
	setInt(&cfg.Images.MaxDimension, "IMAGES_MAX_DIMENSION")

	setString(&cfg.Logging.Level, "LOG_LEVEL")
	setString(&cfg.Logging.Format, "LOG_FORMAT")

	setBool(&cfg.Metrics.Enabled, "METRICS_ENABLED")
	setString(&cfg.Metrics.Path, "METRICS_PATH")
	setBool(&cfg.OpenAPI.Enabled, "OPENAPI_ENABLED")
}

func setString(dst *string, name string) {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, name string) {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		*dst = parseBool(v)
	}
}

func setDuration(dst *time.Duration, name string) {
	if v := os.Getenv(EnvPrefix + name); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}

// setList splits a comma-separated variable.
func setList(dst *[]string, name string) {
	v := os.Getenv(EnvPrefix + name)
	if v == "" {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}

// parseBool parses a boolean from common string values.
func parseBool(v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	return v == "true" || v == "1" || v == "yes" || v == "on"
}

func setDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "0.0.0.0"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 30 * time.Second
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 60 * time.Second
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = 30 * time.Second
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 10 * time.Second
	}

	if cfg.Storage.Backend == "" {
		cfg.Storage.Backend = "sqlite"
	}
	if cfg.Storage.SQLite.Path == "" {
		cfg.Storage.SQLite.Path = "storeadmin.db"
	}
	if cfg.Storage.Redis.Prefix == "" {
		cfg.Storage.Redis.Prefix = "storeadmin:"
	}

	if cfg.Catalog.NameMode == "" {
		cfg.Catalog.NameMode = string(plan.NameModeClosed)
	}
	if len(cfg.Catalog.PlanNames) == 0 && cfg.Catalog.NameMode == string(plan.NameModeClosed) {
		cfg.Catalog.PlanNames = append([]string(nil), plan.DefaultNames...)
	}
	if len(cfg.Catalog.Categories) == 0 {
		cfg.Catalog.Categories = append([]string(nil), product.DefaultCategories...)
	}
	if cfg.Catalog.IDStrategy == "" {
		cfg.Catalog.IDStrategy = "timestamp"
	}

	if cfg.Auth.SessionTTL == 0 {
		cfg.Auth.SessionTTL = 24 * time.Hour
	}
	if cfg.Auth.BcryptCost == 0 {
		cfg.Auth.BcryptCost = bcrypt.DefaultCost
	}
	if cfg.Auth.CookieName == "" {
		cfg.Auth.CookieName = "storeadmin_session"
	}
	if len(cfg.Auth.Accounts) == 0 {
		cfg.Auth.Accounts = admin.DefaultSeeds()
	}

	if cfg.Images.MaxBytes == 0 {
		cfg.Images.MaxBytes = 2 << 20
	}
	if cfg.Images.MaxDimension == 0 {
		cfg.Images.MaxDimension = 1200
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}

	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = "/metrics"
	}
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 0 || cfg.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 0 and 65535, got %d", cfg.Server.Port)
	}

	switch cfg.Storage.Backend {
	case "memory":
	case "sqlite":
		if cfg.Storage.SQLite.Path == "" {
			return fmt.Errorf("storage.sqlite.path is required when storage.backend is 'sqlite'")
		}
	case "redis":
		if cfg.Storage.Redis.Addr == "" {
			return fmt.Errorf("storage.redis.addr is required when storage.backend is 'redis'")
		}
	default:
		return fmt.Errorf("storage.backend must be 'memory', 'sqlite' or 'redis', got %q", cfg.Storage.Backend)
	}

	switch plan.NameMode(cfg.Catalog.NameMode) {
	case plan.NameModeClosed:
		if len(cfg.Catalog.PlanNames) == 0 {
			return fmt.Errorf("catalog.plan_names is required when catalog.name_mode is 'closed'")
		}
	case plan.NameModeFree:
	default:
		return fmt.Errorf("catalog.name_mode must be 'closed' or 'free', got %q", cfg.Catalog.NameMode)
	}
	if cfg.Catalog.IDStrategy != "timestamp" && cfg.Catalog.IDStrategy != "uuid" {
		return fmt.Errorf("catalog.id_strategy must be 'timestamp' or 'uuid', got %q", cfg.Catalog.IDStrategy)
	}
	if cfg.Catalog.Timezone != "" {
		if _, err := time.LoadLocation(cfg.Catalog.Timezone); err != nil {
			return fmt.Errorf("catalog.timezone: %w", err)
		}
	}

	if cfg.Auth.SessionTTL < 0 {
		return fmt.Errorf("auth.session_ttl must be positive")
	}
	if cfg.Auth.BcryptCost < bcrypt.MinCost || cfg.Auth.BcryptCost > bcrypt.MaxCost {
		return fmt.Errorf("auth.bcrypt_cost must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost)
	}
	seen := make(map[string]bool)
	for i, a := range cfg.Auth.Accounts {
		email := admin.NormalizeEmail(a.Email)
		if email == "" {
			return fmt.Errorf("auth.accounts[%d].email is required", i)
		}
		if seen[email] {
			return fmt.Errorf("auth.accounts[%d].email %q is duplicated", i, a.Email)
		}
		seen[email] = true
		if strings.TrimSpace(a.Password) == "" {
			return fmt.Errorf("auth.accounts[%d].password is required", i)
		}
		if !a.Role.Valid() {
			return fmt.Errorf("auth.accounts[%d].role must be 'superAdmin' or 'admin', got %q", i, a.Role)
		}
	}

	if cfg.Images.MaxBytes < 0 || cfg.Images.MaxDimension < 0 {
		return fmt.Errorf("images limits must be positive")
	}

	if _, err := zerolog.ParseLevel(cfg.Logging.Level); err != nil {
		return fmt.Errorf("logging.level: %w", err)
	}
	if cfg.Logging.Format != "json" && cfg.Logging.Format != "console" {
		return fmt.Errorf("logging.format must be 'json' or 'console', got %q", cfg.Logging.Format)
	}

	return nil
}
