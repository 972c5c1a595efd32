package http

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"tasktamer/internal/session"
	"tasktamer/internal/usecase/transform"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`            // "healthy", "degraded" or "unhealthy"
	Message string                 `json:"message,omitempty"` // Optional status message
	Details map[string]interface{} `json:"details,omitempty"` // Optional additional details
}

// HealthHandler handles health check endpoint requests.
// It reports the transformation pipeline capability and session store
// utilization. A missing pipeline is degraded, not unhealthy: every tool
// has a heuristic fallback, so the service stays fully operational.
type HealthHandler struct {
	Pipeline    transform.Pipeline
	Sessions    *session.Store
	MaxSessions int
	Version     string
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy or degraded, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	checks := make(map[string]CheckStatus)
	allHealthy := true

	checks["pipeline"] = h.checkPipeline()

	if h.Sessions != nil {
		checks["sessions"] = h.checkSessions()
	} else {
		checks["sessions"] = CheckStatus{
			Status:  "unhealthy",
			Message: "not configured",
		}
		allHealthy = false
	}

	// "degraded" is a warning state, not a failure - system is still operational
	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

// checkPipeline reports which NLP backend is active, if any.
func (h *HealthHandler) checkPipeline() CheckStatus {
	if h.Pipeline == nil || !h.Pipeline.Available() {
		name := "none"
		if h.Pipeline != nil {
			name = h.Pipeline.Name()
		}
		return CheckStatus{
			Status:  "degraded",
			Message: "no pipeline backend configured, heuristic fallbacks active",
			Details: map[string]interface{}{"backend": name},
		}
	}

	return CheckStatus{
		Status:  "healthy",
		Details: map[string]interface{}{"backend": h.Pipeline.Name()},
	}
}

// checkSessions reports session store utilization.
func (h *HealthHandler) checkSessions() CheckStatus {
	count := h.Sessions.Count()
	details := map[string]interface{}{
		"active":       count,
		"max_sessions": h.MaxSessions,
	}

	// Near-capacity stores still work (LRU eviction kicks in), but the
	// operator should know before users start losing sessions.
	if h.MaxSessions > 0 {
		utilization := float64(count) / float64(h.MaxSessions) * 100
		details["utilization_percent"] = utilization
		if utilization >= 80.0 {
			return CheckStatus{
				Status:  "degraded",
				Message: "session store utilization above 80%",
				Details: details,
			}
		}
	}

	return CheckStatus{
		Status:  "healthy",
		Details: details,
	}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// The server is ready as soon as the session store exists; no external
// dependency gates readiness.
type ReadyHandler struct {
	Sessions *session.Store
}

// ServeHTTP returns 200 OK when ready, 503 Service Unavailable otherwise.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.Sessions == nil {
		http.Error(w, "session store not configured", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
