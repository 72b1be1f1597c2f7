package admin

import (
	"net/http"

	"github.com/artpar/storeadmin/domain/order"
)

// DashboardResponse carries the dashboard counters and latest orders.
type DashboardResponse struct {
	Stats        order.Stats   `json:"stats"`
	RecentOrders []order.Order `json:"recentOrders"`
}

// recentOrderCount is how many orders the dashboard lists.
const recentOrderCount = 5

// Dashboard returns order and catalog totals.
//
//	@Summary		Dashboard statistics
//	@Description	Total orders, total products, revenue over all orders and orders not yet completed
//	@Tags			Admin - Dashboard
//	@Produce		json
//	@Success		200	{object}	DashboardResponse
//	@Security		AdminAuth
//	@Router			/admin/dashboard [get]
func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.orders.Stats(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	orders, err := h.orders.List(r.Context(), "")
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	recent := make([]order.Order, 0, recentOrderCount)
	for i := len(orders) - 1; i >= 0 && len(recent) < recentOrderCount; i-- {
		recent = append(recent, orders[i])
	}
	writeJSON(w, http.StatusOK, DashboardResponse{Stats: stats, RecentOrders: recent})
}
