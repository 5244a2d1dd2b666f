package monitoring

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestHealthEndpoints(t *testing.T) {
	t.Run("HealthyBeforeFirstRun", func(t *testing.T) {
		server := NewHealthServer(NewMonitor(), "8080")

		rec := httptest.NewRecorder()
		server.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 before any runs, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "No digest runs yet") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("HealthyAfterSuccess", func(t *testing.T) {
		monitor := NewMonitor()
		monitor.RecordSuccess("found 5 videos", time.Second)
		server := NewHealthServer(monitor, "8080")

		rec := httptest.NewRecorder()
		server.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 after success, got %d", rec.Code)
		}
	})

	t.Run("UnhealthyAfterCriticalFailure", func(t *testing.T) {
		monitor := NewMonitor()
		monitor.RecordCriticalFailure(errors.New("smtp unreachable"), time.Second)
		server := NewHealthServer(monitor, "8080")

		rec := httptest.NewRecorder()
		server.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503 after critical failure, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Digest unhealthy") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})

	t.Run("PartialFailureStaysHealthy", func(t *testing.T) {
		monitor := NewMonitor()
		monitor.RecordSuccess("found 5 videos", time.Second)
		monitor.RecordPartialFailure(errors.New("analytics unavailable"), time.Second)
		server := NewHealthServer(monitor, "8080")

		rec := httptest.NewRecorder()
		server.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 after partial failure, got %d", rec.Code)
		}
	})

	t.Run("StatusReportsLastRun", func(t *testing.T) {
		monitor := NewMonitor()
		monitor.RecordSuccess("found 5 videos", time.Second)
		server := NewHealthServer(monitor, "8080")

		rec := httptest.NewRecorder()
		server.mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/status", nil))

		if rec.Code != http.StatusOK {
			t.Errorf("expected 200 from /status, got %d", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "Last digest") {
			t.Errorf("unexpected body: %s", rec.Body.String())
		}
	})
}

func TestNewHealthServerDefaultPort(t *testing.T) {
	server := NewHealthServer(NewMonitor(), "")
	if server.port != "8080" {
		t.Errorf("expected default port 8080, got %s", server.port)
	}
}
