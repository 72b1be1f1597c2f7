package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artpar/storeadmin/domain/plan"
)

// PlanRequest is the add/edit plan form. Percentages accept numbers or
// numeric strings.
type PlanRequest struct {
	PlanName             string `json:"planName" example:"6-Month"`
	WeeklyPercentage     Number `json:"weeklyPercentage" swaggertype:"number" example:"4.17"`
	MonthlyPercentage    Number `json:"monthlyPercentage" swaggertype:"number" example:"16.67"`
	TotalPricePercentage Number `json:"totalPricePercentage" swaggertype:"number" example:"100"`
}

func (req PlanRequest) candidate() plan.Candidate {
	return plan.Candidate{
		PlanName:             req.PlanName,
		WeeklyPercentage:     req.WeeklyPercentage.Float(),
		MonthlyPercentage:    req.MonthlyPercentage.Float(),
		TotalPricePercentage: req.TotalPricePercentage.Float(),
	}
}

// PlanListResponse lists installment plans.
type PlanListResponse struct {
	Plans []plan.Plan `json:"plans"`
	Total int         `json:"total"`
}

// PlanOptionsResponse describes the plan-name policy.
type PlanOptionsResponse struct {
	Mode    plan.NameMode `json:"mode"`
	Options []string      `json:"options"`
}

// ListPlans returns all installment plans, seeding defaults on first use.
//
//	@Summary		List installment plans
//	@Tags			Admin - Plans
//	@Produce		json
//	@Success		200	{object}	PlanListResponse
//	@Security		AdminAuth
//	@Router			/admin/plans [get]
func (h *Handler) ListPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.plans.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, PlanListResponse{Plans: plans, Total: len(plans)})
}

// PlanOptions returns the names the add-plan form may offer.
//
//	@Summary		Plan name options
//	@Description	Returns the allowed plan names when the name policy is closed, or an empty list when names are free
//	@Tags			Admin - Plans
//	@Produce		json
//	@Success		200	{object}	PlanOptionsResponse
//	@Security		AdminAuth
//	@Router			/admin/plans/options [get]
func (h *Handler) PlanOptions(w http.ResponseWriter, r *http.Request) {
	options := h.plans.NameOptions()
	if options == nil {
		options = []string{}
	}
	writeJSON(w, http.StatusOK, PlanOptionsResponse{Mode: h.plans.NamePolicy().Mode, Options: options})
}

// GetPlan returns one plan.
//
//	@Summary		Get installment plan
//	@Tags			Admin - Plans
//	@Produce		json
//	@Param			id	path		string	true	"Plan ID"
//	@Success		200	{object}	plan.Plan
//	@Failure		404	{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/plans/{id} [get]
func (h *Handler) GetPlan(w http.ResponseWriter, r *http.Request) {
	p, err := h.plans.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// CreatePlan validates and stores a new plan.
//
//	@Summary		Create installment plan
//	@Tags			Admin - Plans
//	@Accept			json
//	@Produce		json
//	@Param			request	body		PlanRequest		true	"Plan data"
//	@Success		201		{object}	plan.Plan
//	@Failure		422		{object}	ErrorResponse	"Validation failed"
//	@Security		AdminAuth
//	@Router			/admin/plans [post]
func (h *Handler) CreatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	p, err := h.plans.Create(r.Context(), req.candidate())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// UpdatePlan replaces the attributes of an existing plan.
//
//	@Summary		Update installment plan
//	@Tags			Admin - Plans
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string			true	"Plan ID"
//	@Param			request	body		PlanRequest		true	"Plan data"
//	@Success		200		{object}	plan.Plan
//	@Failure		404		{object}	ErrorResponse
//	@Failure		422		{object}	ErrorResponse	"Validation failed"
//	@Security		AdminAuth
//	@Router			/admin/plans/{id} [put]
func (h *Handler) UpdatePlan(w http.ResponseWriter, r *http.Request) {
	var req PlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
		return
	}

	p, err := h.plans.Update(r.Context(), chi.URLParam(r, "id"), req.candidate())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// DeletePlan removes a plan. Products keep their references.
//
//	@Summary		Delete installment plan
//	@Tags			Admin - Plans
//	@Param			id	path	string	true	"Plan ID"
//	@Success		204
//	@Security		AdminAuth
//	@Router			/admin/plans/{id} [delete]
func (h *Handler) DeletePlan(w http.ResponseWriter, r *http.Request) {
	if err := h.plans.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
