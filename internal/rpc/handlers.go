package rpc

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"geoindex/internal/geo"
)

func toDriverLocation(c geo.Candidate) DriverLocation {
	return DriverLocation{
		DriverID:            c.Record.ID,
		Lat:                 c.Record.Lat,
		Lng:                 c.Record.Lng,
		DistanceKm:          c.DistanceKm,
		Status:              int32(c.Record.Status),
		LastUpdateTimestamp: c.Record.LastUpdate,
	}
}

// handleFindNearest implements POST /v1/FindNearest (spec.md §6). The
// adapter — not the core — rejects out-of-range coordinates and a
// non-positive max_drivers/max_radius_km, per the core's documented contract
// that it is merely permitted to return an empty list for such inputs.
func (s *Server) handleFindNearest(c *gin.Context) {
	var req FindNearestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidArgument(c, err)
		return
	}
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		invalidArgument(c, errors.New("lat must be in [-90, 90] and lng in [-180, 180]"))
		return
	}
	if req.MaxDrivers < 1 || req.MaxRadiusKm <= 0 {
		invalidArgument(c, errors.New("max_drivers and max_radius_km must be positive"))
		return
	}

	candidates := s.index.Search(req.Lat, req.Lng, int(req.MaxDrivers), req.MaxRadiusKm)
	drivers := make([]DriverLocation, 0, len(candidates))
	for _, cand := range candidates {
		drivers = append(drivers, toDriverLocation(cand))
	}

	c.JSON(http.StatusOK, FindNearestResponse{Drivers: drivers})
}

// handleUpdateLocation implements POST /v1/UpdateLocation. Invalid
// coordinates or an empty id produce a transport-level invalid-argument
// error; any other failure would be returned as success=false, but the
// core's only failure mode is exactly that invalid-argument case
// (spec.md §6, §7).
func (s *Server) handleUpdateLocation(c *gin.Context) {
	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidArgument(c, err)
		return
	}

	status := geo.DecodeStatus(req.Status)
	if err := s.index.Update(req.DriverID, req.Lat, req.Lng, status); err != nil {
		if errors.Is(err, geo.ErrInvalidArgument) {
			invalidArgument(c, err)
			return
		}
		c.JSON(http.StatusOK, StatusResponse{Success: false, Message: err.Error()})
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "updated"})
}

// handleRemoveDriver implements POST /v1/RemoveDriver.
func (s *Server) handleRemoveDriver(c *gin.Context) {
	var req RemoveDriverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidArgument(c, err)
		return
	}

	if s.index.Remove(req.DriverID) {
		c.JSON(http.StatusOK, StatusResponse{Success: true, Message: "removed"})
		return
	}
	c.JSON(http.StatusOK, StatusResponse{Success: false, Message: "driver not found"})
}

// handleGetLocation implements POST /v1/GetLocation. distance_km is always
// 0 here: there is no query point to measure from (spec.md §6).
func (s *Server) handleGetLocation(c *gin.Context) {
	var req GetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidArgument(c, err)
		return
	}

	rec, ok := s.index.Get(req.DriverID)
	if !ok {
		c.JSON(http.StatusOK, GetLocationResponse{Driver: nil, Found: false})
		return
	}

	driver := DriverLocation{
		DriverID:            rec.ID,
		Lat:                 rec.Lat,
		Lng:                 rec.Lng,
		DistanceKm:          0,
		Status:              int32(rec.Status),
		LastUpdateTimestamp: rec.LastUpdate,
	}
	c.JSON(http.StatusOK, GetLocationResponse{Driver: &driver, Found: true})
}
