// Package rpc implements the dispatch-facing request/response surface
// (FindNearest, UpdateLocation, RemoveDriver, GetLocation) as JSON over
// HTTP on its own port, kept separate from the operator-facing HTTP surface
// in internal/httpapi.
package rpc

// FindNearestRequest is the body of POST /v1/FindNearest. Lat/Lng have no
// "required" binding tag — 0 is a legitimate coordinate (the equator, the
// prime meridian) and gin's required check rejects any zero value.
type FindNearestRequest struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	MaxDrivers  int32   `json:"max_drivers"`
	MaxRadiusKm float64 `json:"max_radius_km"`
}

// FindNearestResponse is the body of a successful FindNearest response.
type FindNearestResponse struct {
	Drivers []DriverLocation `json:"drivers"`
}

// DriverLocation is one entry in a FindNearest/GetLocation response
// (spec.md §6, wire contract). DistanceKm is 0 for GetLocation, which has no
// query point to measure from.
type DriverLocation struct {
	DriverID            string  `json:"driver_id"`
	Lat                 float64 `json:"lat"`
	Lng                 float64 `json:"lng"`
	DistanceKm          float64 `json:"distance_km"`
	Status              int32   `json:"status"`
	LastUpdateTimestamp int64   `json:"last_update_timestamp"`
}

// UpdateLocationRequest is the body of POST /v1/UpdateLocation.
type UpdateLocationRequest struct {
	DriverID string  `json:"driver_id" binding:"required"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Status   int32   `json:"status"`
}

// RemoveDriverRequest is the body of POST /v1/RemoveDriver.
type RemoveDriverRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
}

// GetLocationRequest is the body of POST /v1/GetLocation.
type GetLocationRequest struct {
	DriverID string `json:"driver_id" binding:"required"`
}

// GetLocationResponse is the body of a successful GetLocation response.
type GetLocationResponse struct {
	Driver *DriverLocation `json:"driver"`
	Found  bool            `json:"found"`
}

// StatusResponse is the shared response shape for UpdateLocation and
// RemoveDriver: core-level failures surface as success=false with a
// human-readable message rather than a transport error (spec.md §6, §7).
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
