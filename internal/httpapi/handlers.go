package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func nowUnix() int64 {
	return time.Now().Unix()
}

// handleStats implements GET /stats (spec.md §6.2): the same counts the
// Prometheus gauges expose, as plain JSON for ad-hoc inspection.
func (s *Server) handleStats(c *gin.Context) {
	stats := s.index.Stats()
	observeStats(stats)

	c.JSON(http.StatusOK, gin.H{
		"total_drivers":     stats.Total,
		"active_drivers":    stats.Active,
		"available_drivers": stats.Available,
		"total_buckets":     stats.Buckets,
		"precision":         stats.Precision,
		"timestamp":         nowUnix(),
	})
}

// handleCleanup implements POST /cleanup (spec.md §6.2): invokes
// ReapStale with the fixed 600-second threshold.
func (s *Server) handleCleanup(c *gin.Context) {
	removed := s.index.ReapStale(cleanupMaxAgeSeconds)

	c.JSON(http.StatusOK, gin.H{
		"removed_count":   removed,
		"max_age_seconds": cleanupMaxAgeSeconds,
		"timestamp":       nowUnix(),
	})
}
