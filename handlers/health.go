package handlers

import (
	"net/http"
	"runtime"
	"time"

	"github.com/cleanjesus/medmate-api/data"
)

// HealthResponse defines the structure for consistent JSON ordering
type HealthResponse struct {
	Status         string         `json:"status"`
	UptimeSeconds  float64        `json:"uptime_seconds"`
	AnalysesServed int64          `json:"analyses_served"`
	ConditionsSeen int64          `json:"conditions_seen"`
	FallbacksUsed  int64          `json:"fallbacks_used"`
	LastAnalysis   string         `json:"last_analysis,omitempty"`
	System         map[string]any `json:"system"`
}

// HealthCheck returns server health information. The service holds no data
// set, so health is about liveness and usage rather than data freshness.
func HealthCheck(stats *data.Stats) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m runtime.MemStats
		runtime.ReadMemStats(&m)

		uptime := time.Since(stats.ServerStartTime())

		response := HealthResponse{
			Status:         "healthy",
			UptimeSeconds:  uptime.Seconds(),
			AnalysesServed: stats.AnalysesServed(),
			ConditionsSeen: stats.ConditionsSeen(),
			FallbacksUsed:  stats.FallbacksUsed(),
			System: map[string]any{
				"goroutines": runtime.NumGoroutine(),
				"memory": map[string]any{
					"alloc_mb":       int(m.Alloc / 1024 / 1024),
					"total_alloc_mb": int(m.TotalAlloc / 1024 / 1024),
					"sys_mb":         int(m.Sys / 1024 / 1024),
					"num_gc":         m.NumGC,
				},
			},
		}

		if last := stats.LastAnalysis(); !last.IsZero() {
			response.LastAnalysis = last.Format(time.RFC3339)
		}

		RespondWithJSON(w, http.StatusOK, response)
	}
}
