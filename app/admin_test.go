package app_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/artpar/storeadmin/adapters/clock"
	"github.com/artpar/storeadmin/adapters/collection"
	"github.com/artpar/storeadmin/adapters/hasher"
	"github.com/artpar/storeadmin/adapters/memory"
	"github.com/artpar/storeadmin/adapters/random"
	"github.com/artpar/storeadmin/app"
	"github.com/artpar/storeadmin/domain/admin"
)

type adminFixture struct {
	svc      *app.AdminService
	clock    *clock.Fake
	sessions *memory.SessionStore
}

func newAdminFixture(t *testing.T) adminFixture {
	t.Helper()
	clk := clock.NewFake(testNow)
	sessions := memory.NewSessionStore()
	svc := app.NewAdminService(app.AdminServiceConfig{
		Accounts:   collection.Accounts(memory.NewKVStore()),
		Sessions:   sessions,
		Hasher:     hasher.Fake{},
		Random:     random.NewFake(),
		Clock:      clk,
		Logger:     zerolog.Nop(),
		SessionTTL: time.Hour,
	})
	return adminFixture{svc: svc, clock: clk, sessions: sessions}
}

func TestAdminService_Login(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
		wantRole admin.Role
	}{
		{"super admin", "superadmin@example.com", "super123", nil, admin.RoleSuperAdmin},
		{"trimmed mixed case", "  Admin1@Example.com ", " admin123 ", nil, admin.RoleAdmin},
		{"empty password", "admin1@example.com", "   ", admin.ErrEmptyFields, ""},
		{"empty email", "", "admin123", admin.ErrEmptyFields, ""},
		{"wrong password", "admin2@example.com", "nope", admin.ErrInvalidCredentials, ""},
		{"unknown account", "ghost@example.com", "admin123", admin.ErrInvalidCredentials, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sess, err := f.svc.Login(ctx, tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				return
			}
			if sess.Role != tt.wantRole || !strings.HasPrefix(sess.ID, "sess_") {
				t.Errorf("unexpected session: %+v", sess)
			}
			if !sess.ExpiresAt.Equal(testNow.Add(time.Hour)) {
				t.Errorf("ExpiresAt = %v", sess.ExpiresAt)
			}
		})
	}
}

func TestAdminService_Authorize(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	super, _ := f.svc.Login(ctx, "superadmin@example.com", "super123")
	regular, _ := f.svc.Login(ctx, "admin1@example.com", "admin123")

	if _, err := f.svc.Authorize(ctx, super.ID, admin.AreaSettings); err != nil {
		t.Errorf("super admin denied settings: %v", err)
	}
	if _, err := f.svc.Authorize(ctx, regular.ID, admin.AreaProducts); err != nil {
		t.Errorf("admin denied products: %v", err)
	}
	if _, err := f.svc.Authorize(ctx, regular.ID, admin.AreaSettings); !errors.Is(err, admin.ErrForbidden) {
		t.Errorf("admin reached settings: %v", err)
	}
	if _, err := f.svc.Authorize(ctx, "sess_unknown", admin.AreaDashboard); !errors.Is(err, admin.ErrSessionExpired) {
		t.Errorf("unknown session: %v", err)
	}
}

func TestAdminService_SessionExpiry(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	sess, _ := f.svc.Login(ctx, "admin1@example.com", "admin123")
	f.clock.Advance(time.Hour)

	if _, err := f.svc.Session(ctx, sess.ID); !errors.Is(err, admin.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	if f.sessions.Count() != 0 {
		t.Error("expired session was not removed")
	}
}

type failingDeleteSessions struct {
	*memory.SessionStore
}

func (failingDeleteSessions) Delete(context.Context, string) error {
	return errors.New("store unavailable")
}

func TestAdminService_SessionExpiryDeleteFailureLogged(t *testing.T) {
	var logs bytes.Buffer
	clk := clock.NewFake(testNow)
	svc := app.NewAdminService(app.AdminServiceConfig{
		Accounts:   collection.Accounts(memory.NewKVStore()),
		Sessions:   failingDeleteSessions{memory.NewSessionStore()},
		Hasher:     hasher.Fake{},
		Random:     random.NewFake(),
		Clock:      clk,
		Logger:     zerolog.New(&logs).Level(zerolog.DebugLevel),
		SessionTTL: time.Hour,
	})
	ctx := context.Background()

	sess, err := svc.Login(ctx, "admin1@example.com", "admin123")
	if err != nil {
		t.Fatal(err)
	}
	clk.Advance(time.Hour)

	if _, err := svc.Session(ctx, sess.ID); !errors.Is(err, admin.ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	out := logs.String()
	if !strings.Contains(out, "expired session delete failed") || !strings.Contains(out, sess.ID) {
		t.Errorf("delete failure not logged: %s", out)
	}
}

func TestAdminService_LoginRehashesOldCost(t *testing.T) {
	store := memory.NewKVStore()
	accounts := collection.Accounts(store)
	ctx := context.Background()
	newSvc := func(cost int) *app.AdminService {
		return app.NewAdminService(app.AdminServiceConfig{
			Accounts: accounts,
			Sessions: memory.NewSessionStore(),
			Hasher:   hasher.NewBcrypt(cost),
			Random:   random.NewFake(),
			Clock:    clock.NewFake(testNow),
			Logger:   zerolog.Nop(),
			Seeds: []admin.Seed{
				{Email: "superadmin@example.com", Password: "super123", Role: admin.RoleSuperAdmin},
			},
		})
	}
	storedCost := func() int {
		t.Helper()
		list, _, err := accounts.Load(ctx)
		if err != nil || len(list) != 1 {
			t.Fatalf("Load = %v %v", list, err)
		}
		cost, err := bcrypt.Cost([]byte(list[0].PasswordHash))
		if err != nil {
			t.Fatal(err)
		}
		return cost
	}

	if _, err := newSvc(bcrypt.MinCost).Login(ctx, "superadmin@example.com", "super123"); err != nil {
		t.Fatal(err)
	}
	if got := storedCost(); got != bcrypt.MinCost {
		t.Fatalf("seeded cost = %d, want %d", got, bcrypt.MinCost)
	}

	upgraded := newSvc(bcrypt.MinCost + 1)
	if _, err := upgraded.Login(ctx, "superadmin@example.com", "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
	if got := storedCost(); got != bcrypt.MinCost {
		t.Errorf("failed login rehashed: cost = %d", got)
	}

	if _, err := upgraded.Login(ctx, "superadmin@example.com", "super123"); err != nil {
		t.Fatal(err)
	}
	if got := storedCost(); got != bcrypt.MinCost+1 {
		t.Errorf("cost after login = %d, want %d", got, bcrypt.MinCost+1)
	}
	if _, err := upgraded.Login(ctx, "superadmin@example.com", "super123"); err != nil {
		t.Errorf("login after rehash failed: %v", err)
	}
}

func TestAdminService_LogoutAndPurge(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	a, _ := f.svc.Login(ctx, "admin1@example.com", "admin123")
	f.svc.Login(ctx, "admin2@example.com", "admin123")

	if err := f.svc.Logout(ctx, a.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Session(ctx, a.ID); !errors.Is(err, admin.ErrSessionExpired) {
		t.Errorf("session survived logout: %v", err)
	}

	f.clock.Advance(2 * time.Hour)
	n, err := f.svc.PurgeExpired(ctx)
	if err != nil || n != 1 {
		t.Errorf("PurgeExpired = %d %v", n, err)
	}
}

func TestAdminService_ChangePassword(t *testing.T) {
	f := newAdminFixture(t)
	ctx := context.Background()

	err := f.svc.ChangePassword(ctx, "admin1@example.com", "wrong", "short", "other")
	var pe *admin.PasswordError
	if !errors.As(err, &pe) {
		t.Fatalf("expected PasswordError, got %v", err)
	}
	if pe.Problems[0] != admin.MsgCurrentWrong {
		t.Errorf("first problem = %q", pe.Problems[0])
	}

	if err := f.svc.ChangePassword(ctx, "admin1@example.com", "admin123", "N3w!passw", "N3w!passw"); err != nil {
		t.Fatalf("valid change rejected: %v", err)
	}
	if _, err := f.svc.Login(ctx, "admin1@example.com", "admin123"); !errors.Is(err, admin.ErrInvalidCredentials) {
		t.Errorf("old password still works: %v", err)
	}
	if _, err := f.svc.Login(ctx, "admin1@example.com", "N3w!passw"); err != nil {
		t.Errorf("new password rejected: %v", err)
	}
}

func TestAdminService_Profile(t *testing.T) {
	f := newAdminFixture(t)

	p, err := f.svc.Profile(context.Background(), "SUPERADMIN@example.com")
	if err != nil || p.Role != admin.RoleSuperAdmin || p.Name != "Super Admin" {
		t.Errorf("Profile = %+v %v", p, err)
	}
}
