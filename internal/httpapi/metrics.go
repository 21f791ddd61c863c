package httpapi

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"geoindex/internal/geo"
)

// gauges mirror geo.Stats onto Prometheus gauges (spec.md §6.2). They are
// set just before every /metrics scrape rather than updated on every
// mutation — the stats view is already documented as cheap to recompute and
// not required to be read-consistent across fields (spec.md §4.5).
var (
	totalDriversGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geo_index_total_drivers",
		Help: "Total number of agents currently in the index, any status.",
	})
	activeDriversGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geo_index_active_drivers",
		Help: "Number of agents with a non-Offline status.",
	})
	availableDriversGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geo_index_available_drivers",
		Help: "Number of agents with status Available, eligible for search results.",
	})
	totalBucketsGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geo_index_total_buckets",
		Help: "Number of occupied grid cells.",
	})
	precisionGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "geo_index_precision",
		Help: "Geohash cell precision the index was constructed with.",
	})
)

func observeStats(stats geo.Stats) {
	totalDriversGauge.Set(float64(stats.Total))
	activeDriversGauge.Set(float64(stats.Active))
	availableDriversGauge.Set(float64(stats.Available))
	totalBucketsGauge.Set(float64(stats.Buckets))
	precisionGauge.Set(float64(stats.Precision))
}
