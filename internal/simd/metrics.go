package simd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simdshare",
		Name:      "share_calculations_total",
		Help:      "Share calculations served, by band, domain and cache outcome.",
	}, []string{"band", "domain", "cache"})

	calculationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "simdshare",
		Name:      "share_calculation_duration_seconds",
		Help:      "Time spent computing uncached share results.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 12),
	})

	zonesLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "simdshare",
		Name:      "data_zones_loaded",
		Help:      "Data zones in the current table.",
	})

	unmappedCouncils = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "simdshare",
		Name:      "unmapped_councils",
		Help:      "Councils with data but no boundary.",
	})

	datasetReloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "simdshare",
		Name:      "dataset_reloads_total",
		Help:      "Periodic reloads of a remote zones source, by result.",
	}, []string{"result"})
)
