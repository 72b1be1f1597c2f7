package admin

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/artpar/storeadmin/domain/product"
)

// DoctorResponse represents the system health check response.
type DoctorResponse struct {
	Status     string         `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  string         `json:"timestamp"`
	Version    string         `json:"version"`
	Checks     []HealthCheck  `json:"checks"`
	System     SystemInfo     `json:"system"`
	Statistics StatisticsInfo `json:"statistics"`
}

// HealthCheck represents a single health check result.
type HealthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "pass", "warn", "fail"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// SystemInfo represents system information.
type SystemInfo struct {
	GoVersion    string `json:"go_version"`
	NumCPU       int    `json:"num_cpu"`
	NumGoroutine int    `json:"num_goroutine"`
	MemAlloc     string `json:"mem_alloc"`
	MemSys       string `json:"mem_sys"`
	Uptime       string `json:"uptime,omitempty"`
}

// StatisticsInfo counts catalog records.
type StatisticsInfo struct {
	Plans               int `json:"plans"`
	Products            int `json:"products"`
	Orders              int `json:"orders"`
	StalePlanReferences int `json:"stale_plan_references"`
}

var startTime = time.Now()

// Doctor checks storage, catalog consistency and memory.
//
//	@Summary		System health check
//	@Description	Storage reachability, stale plan references, categories and memory use
//	@Tags			Admin - System
//	@Produce		json
//	@Success		200	{object}	DoctorResponse	"Health check results"
//	@Failure		503	{object}	DoctorResponse	"A check failed"
//	@Security		AdminAuth
//	@Router			/admin/doctor [get]
func (h *Handler) Doctor(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response := DoctorResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   h.version,
		Checks:    []HealthCheck{},
	}

	response.Checks = append(response.Checks, h.checkStorage(ctx))
	catalogCheck, stats := h.checkCatalog(ctx)
	response.Checks = append(response.Checks, catalogCheck)
	response.Checks = append(response.Checks, h.checkCategories())
	response.Checks = append(response.Checks, checkMemory())
	response.Statistics = stats

	hasWarn := false
	hasFail := false
	for _, check := range response.Checks {
		switch check.Status {
		case "warn":
			hasWarn = true
		case "fail":
			hasFail = true
		}
	}

	if hasFail {
		response.Status = "unhealthy"
	} else if hasWarn {
		response.Status = "degraded"
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	response.System = SystemInfo{
		GoVersion:    runtime.Version(),
		NumCPU:       runtime.NumCPU(),
		NumGoroutine: runtime.NumGoroutine(),
		MemAlloc:     formatBytes(memStats.Alloc),
		MemSys:       formatBytes(memStats.Sys),
		Uptime:       time.Since(startTime).Round(time.Second).String(),
	}

	statusCode := http.StatusOK
	if response.Status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	writeJSON(w, statusCode, response)
}

func (h *Handler) checkStorage(ctx context.Context) HealthCheck {
	check := HealthCheck{
		Name:   "storage",
		Status: "pass",
	}
	if h.ping == nil {
		check.Message = "No storage probe configured"
		return check
	}

	start := time.Now()
	err := h.ping(ctx)
	check.Latency = time.Since(start).String()

	if err != nil {
		check.Status = "fail"
		check.Message = fmt.Sprintf("Storage unreachable: %v", err)
	} else {
		check.Message = "Storage reachable"
	}
	return check
}

// checkCatalog loads every collection and counts product plan IDs that no
// longer resolve.
func (h *Handler) checkCatalog(ctx context.Context) (HealthCheck, StatisticsInfo) {
	check := HealthCheck{
		Name:   "catalog",
		Status: "pass",
	}
	var stats StatisticsInfo

	start := time.Now()
	plans, err := h.plans.List(ctx)
	if err == nil {
		stats.Plans = len(plans)
		views, verr := h.products.View(ctx, product.Filter{})
		err = verr
		stats.Products = len(views)
		for _, v := range views {
			stats.StalePlanReferences += len(v.StalePlanIDs)
		}
	}
	if err == nil {
		orders, oerr := h.orders.List(ctx, "")
		err = oerr
		stats.Orders = len(orders)
	}
	check.Latency = time.Since(start).String()

	switch {
	case err != nil:
		check.Status = "fail"
		check.Message = fmt.Sprintf("Catalog load failed: %v", err)
	case stats.StalePlanReferences > 0:
		check.Status = "warn"
		check.Message = fmt.Sprintf("%d product plan references point at deleted plans", stats.StalePlanReferences)
	default:
		check.Message = "Catalog consistent"
	}
	return check, stats
}

func (h *Handler) checkCategories() HealthCheck {
	check := HealthCheck{
		Name:   "categories",
		Status: "pass",
	}
	if n := len(h.products.Categories()); n == 0 {
		check.Status = "warn"
		check.Message = "No product categories configured; products cannot be saved"
	} else {
		check.Message = fmt.Sprintf("%d categories configured", n)
	}
	return check
}

func checkMemory() HealthCheck {
	check := HealthCheck{
		Name:   "memory",
		Status: "pass",
	}

	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)

	// Warn if using more than 500MB
	if memStats.Alloc > 500*1024*1024 {
		check.Status = "warn"
		check.Message = fmt.Sprintf("High memory usage: %s", formatBytes(memStats.Alloc))
	} else {
		check.Message = fmt.Sprintf("Memory usage: %s", formatBytes(memStats.Alloc))
	}

	return check
}

func formatBytes(bytes uint64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := uint64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
