package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"geoindex/internal/geo"
)

func setupTestServer() (*gin.Engine, *geo.Index) {
	gin.SetMode(gin.TestMode)
	index := geo.NewIndex(geo.DefaultPrecision)
	server := NewServer(index)
	return server.engine, index
}

func TestHealthEndpoint(t *testing.T) {
	engine, _ := setupTestServer()

	req, _ := http.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body["service"] != serviceName {
		t.Errorf("service = %v, want %q", body["service"], serviceName)
	}
}

func TestStatsReflectsIndex(t *testing.T) {
	engine, index := setupTestServer()
	if err := index.Update("d1", 1, 1, geo.StatusAvailable); err != nil {
		t.Fatalf("Update: %v", err)
	}

	req, _ := http.NewRequest("GET", "/stats", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if total, ok := body["total_drivers"].(float64); !ok || total != 1 {
		t.Errorf("total_drivers = %v, want 1", body["total_drivers"])
	}
}

func TestMetricsExposesGauges(t *testing.T) {
	engine, index := setupTestServer()
	if err := index.Update("d1", 1, 1, geo.StatusAvailable); err != nil {
		t.Fatalf("Update: %v", err)
	}

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "geo_index_total_drivers") {
		t.Error("metrics output missing geo_index_total_drivers")
	}
}

func TestCleanupKeepsFreshDrivers(t *testing.T) {
	engine, index := setupTestServer()
	if err := index.Update("d1", 1, 1, geo.StatusAvailable); err != nil {
		t.Fatalf("Update: %v", err)
	}

	req, _ := http.NewRequest("POST", "/cleanup", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if maxAge, ok := body["max_age_seconds"].(float64); !ok || maxAge != cleanupMaxAgeSeconds {
		t.Errorf("max_age_seconds = %v, want %d", body["max_age_seconds"], cleanupMaxAgeSeconds)
	}
	if removed, ok := body["removed_count"].(float64); !ok || removed != 0 {
		t.Errorf("removed_count = %v, want 0 (driver not yet stale)", body["removed_count"])
	}
}
