package monitoring

import (
	"fmt"
	"log"
	"net/http"
)

// HealthServer exposes the digest monitor over HTTP so deployments can
// probe /health for liveness and /status for the last-run summary.
type HealthServer struct {
	monitor *Monitor
	port    string
	mux     *http.ServeMux
}

func NewHealthServer(monitor *Monitor, port string) *HealthServer {
	if port == "" {
		port = "8080"
	}

	h := &HealthServer{
		monitor: monitor,
		port:    port,
		mux:     http.NewServeMux(),
	}
	h.mux.HandleFunc("/health", h.healthHandler)
	h.mux.HandleFunc("/status", h.statusHandler)
	return h
}

func (h *HealthServer) Start() {
	log.Printf("Digest health endpoints listening on port %s (/health, /status)", h.port)
	go func() {
		if err := http.ListenAndServe(":"+h.port, h.mux); err != nil {
			log.Printf("Health server error: %v", err)
		}
	}()
}

// healthHandler reports 200 while digest runs keep succeeding and 503 once
// the last run failed critically.
func (h *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if h.monitor.IsHealthy() {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK - %s", h.monitor.GetStatusSummary())
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
		fmt.Fprintf(w, "Digest unhealthy - %s", h.monitor.GetStatusSummary())
	}
}

func (h *HealthServer) statusHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "%s", h.monitor.GetStatusSummary())
}
