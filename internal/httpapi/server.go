// Package httpapi implements the operator-facing HTTP surface: health,
// Prometheus metrics, stats, and the stale-reaper trigger (spec.md §6.2).
package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"geoindex/internal/geo"
	"geoindex/internal/logging"
	"geoindex/internal/middleware"
)

const serviceName = "geoindex"

// cleanupMaxAgeSeconds is the fixed staleness threshold POST /cleanup
// applies (spec.md §6.2).
const cleanupMaxAgeSeconds = 600

// Server exposes /health, /metrics, /stats, and /cleanup over its own gin
// engine, independent of the RPC surface.
type Server struct {
	index  *geo.Index
	engine *gin.Engine
}

// NewServer wires the HTTP routes to the given index.
func NewServer(index *geo.Index) *Server {
	s := &Server{
		index:  index,
		engine: gin.New(),
	}
	s.engine.Use(gin.Recovery(), middleware.RequestID())
	s.routes()
	return s
}

// Run starts the HTTP listener; it blocks until the server stops or errors.
func (s *Server) Run(addr string) error {
	logging.Info().Str("addr", addr).Msg("http surface listening")
	return s.engine.Run(addr)
}

func (s *Server) routes() {
	s.engine.GET("/health", s.handleHealth)
	s.engine.GET("/metrics", s.handleMetrics)
	s.engine.GET("/stats", s.handleStats)
	s.engine.POST("/cleanup", s.handleCleanup)
}

// handleMetrics refreshes the gauges from the index's current Stats, then
// delegates to the standard Prometheus exposition handler.
func (s *Server) handleMetrics(c *gin.Context) {
	observeStats(s.index.Stats())
	promhttp.Handler().ServeHTTP(c.Writer, c.Request)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"service":   serviceName,
		"timestamp": nowUnix(),
	})
}
