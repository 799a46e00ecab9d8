package recoverymetrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

func (r *Registry) initResultMetrics() {
	r.SwitchOperationsPlanned = promauto.With(r.registry).NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recovery_switch_operations_planned",
			Help:    "Number of switch operations in a solve's switching order",
			Buckets: prometheus.LinearBuckets(0, 2, 10),
		},
	)

	r.ZoneSafetyRegionPercent = promauto.With(r.registry).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "recovery_zone_safety_region_percent",
			Help: "Most recent solved safety-region percentage per zone",
		},
		[]string{"zone"},
	)

	r.LoadShedTotalKW = promauto.With(r.registry).NewGauge(
		prometheus.GaugeOpts{
			Name: "recovery_load_shed_total_kw",
			Help: "Total interruptible load shed in the most recent solve",
		},
	)
}
