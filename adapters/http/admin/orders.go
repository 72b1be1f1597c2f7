package admin

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/artpar/storeadmin/domain/order"
)

// OrderListResponse lists orders.
type OrderListResponse struct {
	Orders []order.Order  `json:"orders"`
	Total  int            `json:"total"`
	Counts map[string]int `json:"counts"`
}

// AdvanceOrderRequest moves an order to a new status. An empty status
// advances to the next one in sequence.
type AdvanceOrderRequest struct {
	Status order.Status `json:"status" example:"processing"`
}

// ListOrders returns orders, optionally filtered by status.
//
//	@Summary		List orders
//	@Tags			Admin - Orders
//	@Produce		json
//	@Param			status	query		string	false	"pending, processing or completed"
//	@Success		200		{object}	OrderListResponse
//	@Failure		400		{object}	ErrorResponse
//	@Security		AdminAuth
//	@Router			/admin/orders [get]
func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	status := order.Status(r.URL.Query().Get("status"))
	if status == "all" {
		status = ""
	}
	if status != "" && !status.Valid() {
		writeError(w, http.StatusBadRequest, "invalid_status", "Unknown order status "+string(status))
		return
	}

	all, err := h.orders.List(r.Context(), "")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	counts := make(map[string]int)
	for s, n := range order.CountByStatus(all) {
		counts[string(s)] = n
	}

	orders := all
	if status != "" {
		if orders, err = h.orders.List(r.Context(), status); err != nil {
			h.writeServiceError(w, err)
			return
		}
	}
	writeJSON(w, http.StatusOK, OrderListResponse{Orders: orders, Total: len(orders), Counts: counts})
}

// AdvanceOrder moves an order along pending, processing, completed.
//
//	@Summary		Change order status
//	@Tags			Admin - Orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order ID"
//	@Param			request	body		AdvanceOrderRequest	false	"Target status"
//	@Success		200		{object}	order.Order
//	@Failure		404		{object}	ErrorResponse
//	@Failure		409		{object}	ErrorResponse	"Transition not allowed"
//	@Security		AdminAuth
//	@Router			/admin/orders/{id}/status [put]
func (h *Handler) AdvanceOrder(w http.ResponseWriter, r *http.Request) {
	var req AdvanceOrderRequest
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "Invalid JSON body")
			return
		}
	}

	id := chi.URLParam(r, "id")
	var (
		o   order.Order
		err error
	)
	if req.Status == "" {
		o, err = h.orders.Proceed(r.Context(), id)
	} else {
		o, err = h.orders.Advance(r.Context(), id, req.Status)
	}
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}
