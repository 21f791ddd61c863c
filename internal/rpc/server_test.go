package rpc

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal request: %v", err)
	}
	req, _ := http.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestUpdateLocationThenFindNearest(t *testing.T) {
	engine, _ := setupTestServer()

	w := doJSON(t, engine, "POST", "/v1/UpdateLocation", UpdateLocationRequest{
		DriverID: "d1", Lat: 40.7589, Lng: -73.9851, Status: 1,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("UpdateLocation status = %d, body = %s", w.Code, w.Body.String())
	}
	var updateResp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &updateResp); err != nil {
		t.Fatalf("decode UpdateLocation response: %v", err)
	}
	if !updateResp.Success {
		t.Fatalf("UpdateLocation success = false, message = %q", updateResp.Message)
	}

	w = doJSON(t, engine, "POST", "/v1/FindNearest", FindNearestRequest{
		Lat: 40.7589, Lng: -73.9851, MaxDrivers: 10, MaxRadiusKm: 10.0,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("FindNearest status = %d, body = %s", w.Code, w.Body.String())
	}
	var findResp FindNearestResponse
	if err := json.Unmarshal(w.Body.Bytes(), &findResp); err != nil {
		t.Fatalf("decode FindNearest response: %v", err)
	}
	if len(findResp.Drivers) != 1 || findResp.Drivers[0].DriverID != "d1" {
		t.Errorf("FindNearest drivers = %+v, want one entry for d1", findResp.Drivers)
	}
}

func TestGetLocationNotFound(t *testing.T) {
	engine, _ := setupTestServer()

	w := doJSON(t, engine, "POST", "/v1/GetLocation", GetLocationRequest{DriverID: "missing"})
	if w.Code != http.StatusOK {
		t.Fatalf("GetLocation status = %d", w.Code)
	}
	var resp GetLocationResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Found || resp.Driver != nil {
		t.Errorf("GetLocation for missing id = %+v, want not-found", resp)
	}
}

func TestUpdateLocationInvalidCoordinatesIsTransportError(t *testing.T) {
	engine, _ := setupTestServer()

	w := doJSON(t, engine, "POST", "/v1/UpdateLocation", UpdateLocationRequest{
		DriverID: "d1", Lat: 999, Lng: 0, Status: 1,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for invalid coordinates", w.Code)
	}
}

func TestRemoveDriverNotFoundIsSuccessFalse(t *testing.T) {
	engine, _ := setupTestServer()

	w := doJSON(t, engine, "POST", "/v1/RemoveDriver", RemoveDriverRequest{DriverID: "missing"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	var resp StatusResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Error("RemoveDriver for missing id reported success=true")
	}
}

func TestFindNearestRejectsNonPositiveRadius(t *testing.T) {
	engine, _ := setupTestServer()

	w := doJSON(t, engine, "POST", "/v1/FindNearest", FindNearestRequest{
		Lat: 1, Lng: 1, MaxDrivers: 10, MaxRadiusKm: 0,
	})
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400 for non-positive max_radius_km", w.Code)
	}
}
