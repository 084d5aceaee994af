package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeFailed   = "failed"
)

type CatalogMetrics struct {
	LookupsTotal *prometheus.CounterVec
	Records      prometheus.Gauge
	IntegrityOK  prometheus.Gauge
}

var Catalog = CatalogMetrics{
	LookupsTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_lookups_total",
			Help: "Total number of single customer lookups by outcome.",
		},
		[]string{"outcome"},
	),
	Records: promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_records",
			Help: "Number of records held by the customer catalog.",
		},
	),
	IntegrityOK: promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_integrity_ok",
			Help: "1 when the last integrity check matched the startup fingerprint, 0 otherwise.",
		},
	),
}

func RecordLookup(outcome string) {
	Catalog.LookupsTotal.WithLabelValues(outcome).Inc()
}

func RecordCatalogSize(n int) {
	Catalog.Records.Set(float64(n))
}

func RecordIntegrity(ok bool) {
	if ok {
		Catalog.IntegrityOK.Set(1)
		return
	}
	Catalog.IntegrityOK.Set(0)
}
