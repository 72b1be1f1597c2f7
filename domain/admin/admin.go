// Package admin provides admin account value types, role-based access rules
// and password policy checks. It performs no I/O.
package admin

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// Login errors. The codes match what the login form displays.
var (
	ErrEmptyFields        = errors.New("EMPTY_FIELDS")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrForbidden          = errors.New("FORBIDDEN")
	ErrSessionExpired     = errors.New("SESSION_EXPIRED")
)

// Role is an admin role.
type Role string

const (
	RoleSuperAdmin Role = "superAdmin"
	RoleAdmin      Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleSuperAdmin || r == RoleAdmin
}

// Area is a section of the admin panel guarded by the ACL.
type Area string

const (
	AreaDashboard Area = "dashboard"
	AreaProducts  Area = "products"
	AreaOrders    Area = "orders"
	AreaSettings  Area = "settings"
)

var acl = map[Role]map[Area]bool{
	RoleSuperAdmin: {AreaDashboard: true, AreaProducts: true, AreaOrders: true, AreaSettings: true},
	RoleAdmin:      {AreaDashboard: true, AreaProducts: true, AreaOrders: true, AreaSettings: false},
}

// Allowed reports whether role may access area. Unknown roles get nothing.
// This is a PURE function.
func Allowed(role Role, area Area) bool {
	return acl[role][area]
}

// Account is a stored admin login.
type Account struct {
	Email        string `json:"email"`
	Name         string `json:"name"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"passwordHash"`
}

// Seed is a configured account with a plaintext password, hashed on first load.
type Seed struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     Role   `yaml:"role"`
	Name     string `yaml:"name"`
}

// DefaultSeeds are the accounts created when none are configured.
func DefaultSeeds() []Seed {
	return []Seed{
		{Email: "superadmin@example.com", Password: "super123", Role: RoleSuperAdmin, Name: "Super Admin"},
		{Email: "admin1@example.com", Password: "admin123", Role: RoleAdmin, Name: "Admin One"},
		{Email: "admin2@example.com", Password: "admin123", Role: RoleAdmin, Name: "Admin Two"},
	}
}

// NormalizeEmail trims and lower-cases an email for comparison.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// FindAccount looks an account up by email, case-insensitively.
// This is a PURE function.
func FindAccount(accounts []Account, email string) (Account, int, bool) {
	want := NormalizeEmail(email)
	for i, a := range accounts {
		if NormalizeEmail(a.Email) == want {
			return a, i, true
		}
	}
	return Account{}, -1, false
}

// Session is an authenticated admin session.
type Session struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expired reports whether the session has lapsed at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// Password policy messages.
const (
	MsgTooShort      = "Password must be at least 8 characters long"
	MsgNoDigit       = "Password must contain at least one number"
	MsgNoSpecial     = "Password must contain at least one special character"
	MsgCurrentWrong  = "Current password is incorrect"
	MsgMismatch      = "New password and confirm password do not match"
	MsgSameAsCurrent = "New password must be different from current password"
)

// MinPasswordLength is the shortest accepted password, after trimming.
const MinPasswordLength = 8

var (
	digitRe   = regexp.MustCompile(`\d`)
	specialRe = regexp.MustCompile(`[!@#$%^&*()_+\-=\[\]{};':"\\|,.<>/?]`)
)

// PasswordError lists every failed password rule, in check order.
type PasswordError struct {
	Problems []string `json:"problems"`
}

func (e *PasswordError) Error() string {
	return "password rejected: " + strings.Join(e.Problems, "; ")
}

// ValidatePasswordStrength returns the strength rules password fails.
// This is a PURE function.
func ValidatePasswordStrength(password string) []string {
	var problems []string
	if len(strings.TrimSpace(password)) < MinPasswordLength {
		problems = append(problems, MsgTooShort)
	}
	if !digitRe.MatchString(password) {
		problems = append(problems, MsgNoDigit)
	}
	if !specialRe.MatchString(password) {
		problems = append(problems, MsgNoSpecial)
	}
	return problems
}

// PasswordChange is a change-password form submission. CurrentOK is the
// result of checking Current against the stored hash.
type PasswordChange struct {
	Current   string
	New       string
	Confirm   string
	CurrentOK bool
}

// ValidatePasswordChange checks every rule and returns a *PasswordError
// listing the failures, or nil.
// This is a PURE function.
func ValidatePasswordChange(c PasswordChange) error {
	var problems []string
	if !c.CurrentOK || strings.TrimSpace(c.Current) == "" {
		problems = append(problems, MsgCurrentWrong)
	}
	problems = append(problems, ValidatePasswordStrength(c.New)...)

	newPw, confirm := strings.TrimSpace(c.New), strings.TrimSpace(c.Confirm)
	if newPw == "" || confirm == "" || newPw != confirm {
		problems = append(problems, MsgMismatch)
	}
	if strings.TrimSpace(c.Current) == newPw {
		problems = append(problems, MsgSameAsCurrent)
	}

	if len(problems) == 0 {
		return nil
	}
	return &PasswordError{Problems: problems}
}
