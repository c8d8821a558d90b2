// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/mem"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// HealthStatus is the body of GET /api/v1/health.
type HealthStatus struct {
	// Status is "healthy" when the engine is available, else "degraded"
	Status    string           `json:"status"`
	Version   string           `json:"version"`
	Uptime    float64          `json:"uptime"`
	GoVersion string           `json:"go_version"`
	Engine    recommend.Status `json:"engine"`
	Cache     *cache.Stats     `json:"cache,omitempty"`
	Memory    MemoryStatus     `json:"memory"`
}

// MemoryStatus reports Go heap usage next to host memory. The similarity
// matrix grows with the square of the catalog size.
type MemoryStatus struct {
	HeapAllocBytes uint64 `json:"heap_alloc_bytes"`
	SysBytes       uint64 `json:"sys_bytes"`
	NumGC          uint32 `json:"num_gc"`

	// Host figures are omitted when the platform does not expose them
	HostTotalBytes     uint64  `json:"host_total_bytes,omitempty"`
	HostAvailableBytes uint64  `json:"host_available_bytes,omitempty"`
	HostUsedPercent    float64 `json:"host_used_percent,omitempty"`
}

// Health handles health check requests.
//
// @Summary Get service health
// @Description Returns engine availability with build statistics, rank cache counters, and memory usage
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status retrieved successfully"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	if !h.service.Available() {
		status = "degraded"
	}

	health := HealthStatus{
		Status:    status,
		Version:   h.version,
		Uptime:    time.Since(h.startTime).Seconds(),
		GoVersion: runtime.Version(),
		Engine:    h.service.Status(),
		Memory:    h.memoryStatus(r),
	}
	if stats, ok := h.service.CacheStats(); ok {
		health.Cache = &stats
	}

	NewResponseWriter(w, r).Success(health)
}

func (h *Handler) memoryStatus(r *http.Request) MemoryStatus {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	status := MemoryStatus{
		HeapAllocBytes: ms.HeapAlloc,
		SysBytes:       ms.Sys,
		NumGC:          ms.NumGC,
	}

	vm, err := mem.VirtualMemoryWithContext(r.Context())
	if err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Host memory unavailable")
		return status
	}
	status.HostTotalBytes = vm.Total
	status.HostAvailableBytes = vm.Available
	status.HostUsedPercent = vm.UsedPercent
	return status
}

// HealthLive handles liveness probe requests.
// Returns 200 OK if the process is alive, regardless of engine state.
//
// @Summary Liveness probe
// @Description Returns 200 OK if the process is alive, regardless of engine state.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests.
// Returns 200 OK only when the engine is built and queries can be answered.
//
// @Summary Readiness probe
// @Description Returns 200 OK only if the similarity engine is built. Returns 503 if the dataset failed to load.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse "Service is ready"
// @Failure 503 {object} APIResponse "Service is not ready"
// @Router /health/ready [get]
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	st := h.service.Status()
	if !st.Available {
		rw.ErrorWithDetails(http.StatusServiceUnavailable, ErrCodeServiceUnavailable,
			"Recommendation engine is not ready", map[string]interface{}{"reason": st.Reason})
		return
	}

	rw.Success(map[string]interface{}{
		"ready":  true,
		"movies": st.Build.Movies,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}
