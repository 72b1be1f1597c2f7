package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/ports"
)

// SessionStore implements ports.SessionStore using SQLite, so admin logins
// survive restarts.
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a new SQLite session store.
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// Create stores a new session.
func (s *SessionStore) Create(ctx context.Context, sess admin.Session) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO admin_sessions (id, email, role, created_at, expires_at)
		VALUES (?, ?, ?, ?, ?)
	`, sess.ID, sess.Email, string(sess.Role), sess.CreatedAt.UnixMilli(), sess.ExpiresAt.UnixMilli())
	return err
}

// Get retrieves a session by ID.
func (s *SessionStore) Get(ctx context.Context, id string) (admin.Session, error) {
	var (
		sess               admin.Session
		role               string
		created, expiresAt int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, email, role, created_at, expires_at
		FROM admin_sessions
		WHERE id = ?
	`, id).Scan(&sess.ID, &sess.Email, &role, &created, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return admin.Session{}, ErrNotFound
	}
	if err != nil {
		return admin.Session{}, err
	}

	sess.Role = admin.Role(role)
	sess.CreatedAt = time.UnixMilli(created).UTC()
	sess.ExpiresAt = time.UnixMilli(expiresAt).UTC()
	return sess, nil
}

// Delete removes a session. Missing sessions are ignored.
func (s *SessionStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM admin_sessions WHERE id = ?`, id)
	return err
}

// DeleteExpired removes all sessions expired at now.
func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM admin_sessions WHERE expires_at <= ?`, now.UnixMilli())
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}

var _ ports.SessionStore = (*SessionStore)(nil)
