// Package admin provides HTTP handlers for the Admin API.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/artpar/storeadmin/adapters/media"
	"github.com/artpar/storeadmin/app"
	domainadmin "github.com/artpar/storeadmin/domain/admin"
	"github.com/artpar/storeadmin/domain/fault"
	"github.com/artpar/storeadmin/domain/order"
)

// DefaultCookieName is used when Deps.CookieName is empty.
const DefaultCookieName = "storeadmin_session"

// Handler provides admin API endpoints.
type Handler struct {
	plans      *app.PlanCatalog
	products   *app.ProductCatalog
	orders     *app.OrderBook
	admins     *app.AdminService
	images     *media.Processor
	logger     zerolog.Logger
	cookieName string
	secure     bool
	version    string
	ping       func(context.Context) error
}

// Deps contains dependencies for the admin handler.
type Deps struct {
	Plans        *app.PlanCatalog
	Products     *app.ProductCatalog
	Orders       *app.OrderBook
	Admins       *app.AdminService
	Images       *media.Processor
	Logger       zerolog.Logger
	CookieName   string
	SecureCookie bool

	// Version is reported by the doctor endpoint.
	Version string

	// StorePing probes the storage backend. Nil skips the check.
	StorePing func(context.Context) error
}

// NewHandler creates a new admin API handler.
func NewHandler(deps Deps) *Handler {
	h := &Handler{
		plans:      deps.Plans,
		products:   deps.Products,
		orders:     deps.Orders,
		admins:     deps.Admins,
		images:     deps.Images,
		logger:     deps.Logger,
		cookieName: deps.CookieName,
		secure:     deps.SecureCookie,
		version:    deps.Version,
		ping:       deps.StorePing,
	}
	if h.cookieName == "" {
		h.cookieName = DefaultCookieName
	}
	if h.version == "" {
		h.version = "dev"
	}
	if h.images == nil {
		h.images = media.NewProcessor(0, 0)
	}
	return h
}

// Router returns the admin API router.
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()

	// Public endpoints (no auth required)
	r.Post("/login", h.Login)

	// Protected endpoints (require auth)
	r.Group(func(r chi.Router) {
		r.Use(h.AuthMiddleware)

		r.Post("/logout", h.Logout)
		r.Get("/session", h.CurrentSession)

		r.With(h.RequireArea(domainadmin.AreaDashboard)).Get("/dashboard", h.Dashboard)

		r.Group(func(r chi.Router) {
			r.Use(h.RequireArea(domainadmin.AreaProducts))

			// Installment plans
			r.Get("/plans", h.ListPlans)
			r.Post("/plans", h.CreatePlan)
			r.Get("/plans/options", h.PlanOptions)
			r.Get("/plans/{id}", h.GetPlan)
			r.Put("/plans/{id}", h.UpdatePlan)
			r.Delete("/plans/{id}", h.DeletePlan)

			// Products
			r.Get("/categories", h.ListCategories)
			r.Get("/products", h.ListProducts)
			r.Post("/products", h.CreateProduct)
			r.Get("/products/{id}", h.GetProduct)
			r.Put("/products/{id}", h.UpdateProduct)
			r.Delete("/products/{id}", h.DeleteProduct)
			r.Put("/products/{id}/plans", h.AssignPlans)
			r.Post("/products/{id}/plans/{planID}/toggle", h.TogglePlan)
			r.Get("/products/{id}/quotes", h.ProductQuotes)
			r.Post("/products/{id}/image", h.UploadImage)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.RequireArea(domainadmin.AreaOrders))

			r.Get("/orders", h.ListOrders)
			r.Put("/orders/{id}/status", h.AdvanceOrder)
		})

		r.Group(func(r chi.Router) {
			r.Use(h.RequireArea(domainadmin.AreaSettings))

			r.Get("/settings/profile", h.GetProfile)
			r.Put("/settings/password", h.ChangePassword)
			r.Get("/doctor", h.Doctor)
		})
	})

	return r
}

// -----------------------------------------------------------------------------
// Authentication
// -----------------------------------------------------------------------------

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email" example:"superadmin@example.com"`
	Password string `json:"password" example:"super123"`
}

// SessionUser describes the logged-in admin.
type SessionUser struct {
	Email string             `json:"email"`
	Role  domainadmin.Role   `json:"role"`
	Areas []domainadmin.Area `json:"areas"`
}

// LoginResponse represents a login response.
type LoginResponse struct {
	SessionID string      `json:"session_id"`
	ExpiresAt string      `json:"expires_at"`
	User      SessionUser `json:"user"`
}

// Login authenticates an admin.
//
//	@Summary		Admin login
//	@Description	Authenticate with email and password. Input is trimmed and the email is case-insensitive.
//	@Tags			Admin - Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Login credentials"
//	@Success		200		{object}	LoginResponse	"Login successful"
//	@Failure		400		{object}	ErrorResponse	"Empty fields"
//	@Failure		401		{object}	ErrorResponse	"Invalid credentials"
//	@Router			/admin/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	sess, err := h.admins.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    sess.ID,
		Path:     "/",
		Expires:  sess.ExpiresAt,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, LoginResponse{
		SessionID: sess.ID,
		ExpiresAt: sess.ExpiresAt.UTC().Format(time.RFC3339),
		User:      sessionUser(sess),
	})
}

// Logout ends an admin session.
//
//	@Summary		Admin logout
//	@Description	End the current session
//	@Tags			Admin - Auth
//	@Produce		json
//	@Success		200	{object}	map[string]string	"Logged out"
//	@Security		AdminAuth
//	@Router			/admin/logout [post]
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	if err := h.admins.Logout(r.Context(), sess.ID); err != nil {
		h.logger.Error().Err(err).Msg("failed to delete session")
	}
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged_out"})
}

// CurrentSession returns the logged-in admin and the areas they may open.
//
//	@Summary		Current session
//	@Tags			Admin - Auth
//	@Produce		json
//	@Success		200	{object}	SessionUser
//	@Failure		401	{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/session [get]
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	writeJSON(w, http.StatusOK, sessionUser(sess))
}

func sessionUser(s domainadmin.Session) SessionUser {
	var areas []domainadmin.Area
	for _, a := range []domainadmin.Area{
		domainadmin.AreaDashboard, domainadmin.AreaProducts, domainadmin.AreaOrders, domainadmin.AreaSettings,
	} {
		if domainadmin.Allowed(s.Role, a) {
			areas = append(areas, a)
		}
	}
	return SessionUser{Email: s.Email, Role: s.Role, Areas: areas}
}

// AuthMiddleware validates the session cookie or Bearer token.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := sessionToken(r, h.cookieName)
		if token == "" {
			writeError(w, http.StatusUnauthorized, "unauthorized", "Valid session required")
			return
		}

		sess, err := h.admins.Session(r.Context(), token)
		if err != nil {
			h.writeServiceError(w, err)
			return
		}

		ctx := context.WithValue(r.Context(), ctxSessionKey, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireArea rejects sessions whose role may not open area.
func (h *Handler) RequireArea(area domainadmin.Area) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, ok := SessionFromContext(r.Context())
			if !ok || !h.admins.Allowed(sess.Role, area) {
				h.logger.Debug().Str("email", sess.Email).Str("area", string(area)).Msg("admin access denied")
				writeError(w, http.StatusForbidden, "forbidden", "Your role cannot access "+string(area))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func sessionToken(r *http.Request, cookieName string) string {
	if cookie, err := r.Cookie(cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(auth, "Bearer "))
	}
	return ""
}

// Context keys
type ctxKey string

const ctxSessionKey ctxKey = "admin_session"

// SessionFromContext returns the session stored by AuthMiddleware.
func SessionFromContext(ctx context.Context) (domainadmin.Session, bool) {
	s, ok := ctx.Value(ctxSessionKey).(domainadmin.Session)
	return s, ok
}

// -----------------------------------------------------------------------------
// Helpers
// -----------------------------------------------------------------------------

// ErrorResponse represents an API error.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody carries the error code, message and per-field violations.
type ErrorBody struct {
	Code    string            `json:"code" example:"validation_failed"`
	Message string            `json:"message" example:"validation failed"`
	Fields  map[string]string `json:"fields,omitempty"`
	Details []string          `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: message}})
}

// writeServiceError maps service errors onto HTTP statuses.
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	var pwErr *domainadmin.PasswordError
	if ve, ok := fault.AsValidation(err); ok {
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorBody{
			Code:    "validation_failed",
			Message: ve.Error(),
			Fields:  ve.Map(),
		}})
		return
	}

	switch {
	case errors.As(err, &pwErr):
		writeJSON(w, http.StatusUnprocessableEntity, ErrorResponse{Error: ErrorBody{
			Code:    "password_rejected",
			Message: pwErr.Error(),
			Details: pwErr.Problems,
		}})
	case errors.Is(err, fault.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, domainadmin.ErrEmptyFields):
		writeError(w, http.StatusBadRequest, "empty_fields", "Email and password are required")
	case errors.Is(err, domainadmin.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid_credentials", "Invalid email or password")
	case errors.Is(err, domainadmin.ErrSessionExpired):
		writeError(w, http.StatusUnauthorized, "session_expired", "Session expired, please log in again")
	case errors.Is(err, domainadmin.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "Access denied")
	case errors.Is(err, order.ErrInvalidTransition):
		writeError(w, http.StatusConflict, "invalid_transition", err.Error())
	case errors.Is(err, media.ErrUnsupportedType):
		writeError(w, http.StatusUnsupportedMediaType, "unsupported_image", err.Error())
	case errors.Is(err, media.ErrTooLarge):
		writeError(w, http.StatusRequestEntityTooLarge, "image_too_large", err.Error())
	default:
		h.logger.Error().Err(err).Msg("admin request failed")
		writeError(w, http.StatusInternalServerError, "internal_error", "Internal server error")
	}
}

// Number decodes a JSON number or numeric string. Form inputs send
// strings; an empty string or null counts as absent and text that does not
// parse becomes NaN, which validation reports as not a number.
type Number struct {
	set   bool
	value float64
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Number) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*n = Number{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}
		str = strings.TrimSpace(str)
		if str == "" {
			*n = Number{}
			return nil
		}
		v, err := strconv.ParseFloat(str, 64)
		if err != nil {
			*n = Number{set: true, value: math.NaN()}
			return nil
		}
		*n = Number{set: true, value: v}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*n = Number{set: true, value: v}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.set {
		return []byte("null"), nil
	}
	return json.Marshal(n.value)
}

// Float returns the decoded value or nil when absent.
func (n Number) Float() *float64 {
	if !n.set {
		return nil
	}
	v := n.value
	return &v
}

// Int returns the value as a whole number, or nil when absent. Fractions
// and non-numbers map to -1 so the non-negative check rejects them.
func (n Number) Int() *int {
	if !n.set {
		return nil
	}
	v := -1
	if !math.IsNaN(n.value) && n.value == math.Trunc(n.value) {
		v = int(n.value)
	}
	return &v
}

// NumberOf wraps v.
func NumberOf(v float64) Number {
	return Number{set: true, value: v}
}
