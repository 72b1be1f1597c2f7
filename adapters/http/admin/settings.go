package admin

import (
	"encoding/json"
	"net/http"
)

// ChangePasswordRequest is the change-password form.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
	ConfirmPassword string `json:"confirmPassword"`
}

// GetProfile returns the logged-in admin's account.
//
//	@Summary		Admin profile
//	@Tags			Admin - Settings
//	@Produce		json
//	@Success		200	{object}	app.Profile
//	@Failure		403	{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/settings/profile [get]
func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	sess, _ := SessionFromContext(r.Context())
	p, err := h.admins.Profile(r.Context(), sess.Email)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// ChangePassword replaces the logged-in admin's password. Every failed
// rule is reported together.
//
//	@Summary		Change password
//	@Tags			Admin - Settings
//	@Accept			json
//	@Produce		json
//	@Param			request	body		ChangePasswordRequest	true	"Passwords"
//	@Success		200		{object}	map[string]string
//	@Failure		422		{object}	ErrorResponse	"Password rejected"
//	@Security		AdminAuth
//	@Router			/admin/settings/password [put]
func (h *Handler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req ChangePasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	sess, _ := SessionFromContext(r.Context())
	err := h.admins.ChangePassword(r.Context(), sess.Email, req.CurrentPassword, req.NewPassword, req.ConfirmPassword)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "password_updated"})
}
