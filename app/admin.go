package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/ports"
)

// AdminServiceConfig holds AdminService dependencies.
type AdminServiceConfig struct {
	Accounts   ports.AccountRepository
	Sessions   ports.SessionStore
	Hasher     ports.Hasher
	Random     ports.Random
	Clock      ports.Clock
	Metrics    ports.CatalogMetrics
	Logger     zerolog.Logger
	SessionTTL time.Duration
	Seeds      []admin.Seed
}

// AdminService handles admin login, sessions, access control and password
// changes.
type AdminService struct {
	accounts ports.AccountRepository
	sessions ports.SessionStore
	hasher   ports.Hasher
	random   ports.Random
	clock    ports.Clock
	metrics  ports.CatalogMetrics
	logger   zerolog.Logger
	ttl      time.Duration
	seeds    []admin.Seed

	mu sync.Mutex
}

// Profile is the public part of an account.
type Profile struct {
	Email string     `json:"email"`
	Name  string     `json:"name"`
	Role  admin.Role `json:"role"`
}

// NewAdminService creates an admin service.
func NewAdminService(cfg AdminServiceConfig) *AdminService {
	ttl := cfg.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	seeds := cfg.Seeds
	if len(seeds) == 0 {
		seeds = admin.DefaultSeeds()
	}
	return &AdminService{
		accounts: cfg.Accounts,
		sessions: cfg.Sessions,
		hasher:   cfg.Hasher,
		random:   cfg.Random,
		clock:    cfg.Clock,
		metrics:  metricsOrNop(cfg.Metrics),
		logger:   cfg.Logger,
		ttl:      ttl,
		seeds:    seeds,
	}
}

// Login checks credentials and opens a session. Input is trimmed and the
// email compared case-insensitively.
func (s *AdminService) Login(ctx context.Context, email, password string) (admin.Session, error) {
	email, password = strings.TrimSpace(email), strings.TrimSpace(password)
	if email == "" || password == "" {
		s.metrics.Login("empty_fields")
		return admin.Session{}, admin.ErrEmptyFields
	}

	s.mu.Lock()
	accounts, err := s.loadLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return admin.Session{}, err
	}

	acct, _, ok := admin.FindAccount(accounts, email)
	if !ok || !s.hasher.Compare([]byte(acct.PasswordHash), password) {
		s.metrics.Login("invalid_credentials")
		s.logger.Warn().Str("email", admin.NormalizeEmail(email)).Msg("admin login failed")
		return admin.Session{}, admin.ErrInvalidCredentials
	}

	if s.hasher.NeedsRehash([]byte(acct.PasswordHash)) {
		s.rehash(ctx, acct.Email, password)
	}

	id, err := s.random.String(48)
	if err != nil {
		return admin.Session{}, fmt.Errorf("generate session id: %w", err)
	}
	now := s.clock.Now()
	sess := admin.Session{
		ID:        "sess_" + id,
		Email:     acct.Email,
		Role:      acct.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return admin.Session{}, fmt.Errorf("store session: %w", err)
	}

	s.metrics.Login("success")
	s.logger.Info().Str("email", acct.Email).Str("role", string(acct.Role)).Msg("admin logged in")
	return sess, nil
}

// Session returns a live session. Expired sessions are removed.
func (s *AdminService) Session(ctx context.Context, id string) (admin.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, fault.ErrNotFound) {
			return admin.Session{}, admin.ErrSessionExpired
		}
		return admin.Session{}, err
	}
	if sess.Expired(s.clock.Now()) {
		if err := s.sessions.Delete(ctx, id); err != nil {
			s.logger.Debug().Err(err).Str("session_id", id).Msg("expired session delete failed")
		}
		return admin.Session{}, admin.ErrSessionExpired
	}
	return sess, nil
}

// Authorize returns the session if its role may access area.
func (s *AdminService) Authorize(ctx context.Context, sessionID string, area admin.Area) (admin.Session, error) {
	sess, err := s.Session(ctx, sessionID)
	if err != nil {
		return admin.Session{}, err
	}
	if !admin.Allowed(sess.Role, area) {
		return sess, admin.ErrForbidden
	}
	return sess, nil
}

// Logout ends a session.
func (s *AdminService) Logout(ctx context.Context, id string) error {
	return s.sessions.Delete(ctx, id)
}

// Allowed reports whether role may access area.
func (s *AdminService) Allowed(role admin.Role, area admin.Area) bool {
	return admin.Allowed(role, area)
}

// PurgeExpired removes lapsed sessions.
func (s *AdminService) PurgeExpired(ctx context.Context) (int, error) {
	return s.sessions.DeleteExpired(ctx, s.clock.Now())
}

// Profile returns the account for email.
func (s *AdminService) Profile(ctx context.Context, email string) (Profile, error) {
	s.mu.Lock()
	accounts, err := s.loadLocked(ctx)
	s.mu.Unlock()
	if err != nil {
		return Profile{}, err
	}
	acct, _, ok := admin.FindAccount(accounts, email)
	if !ok {
		return Profile{}, fault.NotFound("account", email)
	}
	return Profile{Email: acct.Email, Name: acct.Name, Role: acct.Role}, nil
}

// ChangePassword checks every password rule and stores the new hash.
// All failed rules are reported together in an *admin.PasswordError.
func (s *AdminService) ChangePassword(ctx context.Context, email, current, newPassword, confirm string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadLocked(ctx)
	if err != nil {
		return err
	}
	acct, i, ok := admin.FindAccount(accounts, email)
	if !ok {
		return fault.NotFound("account", email)
	}

	change := admin.PasswordChange{
		Current:   current,
		New:       newPassword,
		Confirm:   confirm,
		CurrentOK: s.hasher.Compare([]byte(acct.PasswordHash), strings.TrimSpace(current)),
	}
	if err := admin.ValidatePasswordChange(change); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(strings.TrimSpace(newPassword))
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	accounts[i].PasswordHash = string(hash)
	if err := s.accounts.Save(ctx, accounts); err != nil {
		return err
	}

	s.metrics.Mutation(ports.KeyAccounts, "password")
	s.logger.Info().Str("email", acct.Email).Msg("admin password changed")
	return nil
}

// rehash re-hashes the password of email at the current work factor. A
// failure is logged and leaves the old hash in place.
func (s *AdminService) rehash(ctx context.Context, email, password string) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("password rehash failed")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	accounts, err := s.loadLocked(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("password rehash failed")
		return
	}
	_, i, ok := admin.FindAccount(accounts, email)
	if !ok {
		return
	}
	accounts[i].PasswordHash = string(hash)
	if err := s.accounts.Save(ctx, accounts); err != nil {
		s.logger.Warn().Err(err).Str("email", email).Msg("password rehash failed")
		return
	}
	s.metrics.Mutation(ports.KeyAccounts, "rehash")
	s.logger.Info().Str("email", email).Msg("admin password rehashed")
}

// loadLocked returns the stored accounts, hashing and saving the configured
// seeds on first use.
func (s *AdminService) loadLocked(ctx context.Context) ([]admin.Account, error) {
	accounts, present, err := s.accounts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if present {
		return accounts, nil
	}

	accounts = make([]admin.Account, 0, len(s.seeds))
	for _, seed := range s.seeds {
		hash, err := s.hasher.Hash(seed.Password)
		if err != nil {
			return nil, fmt.Errorf("hash seed password for %s: %w", seed.Email, err)
		}
		accounts = append(accounts, admin.Account{
			Email:        seed.Email,
			Name:         seed.Name,
			Role:         seed.Role,
			PasswordHash: string(hash),
		})
	}
	if err := s.accounts.Save(ctx, accounts); err != nil {
		return nil, err
	}
	s.logger.Info().Int("count", len(accounts)).Msg("admin accounts seeded")
	return accounts, nil
}
