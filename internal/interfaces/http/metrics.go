package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Métricas Prometheus del motor de análisis.
var (
	analysisRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bodega_radar_analysis_runs_total",
			Help: "Total de análisis ejecutados, por resultado",
		},
		[]string{"status"},
	)

	analysisDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bodega_radar_analysis_duration_seconds",
			Help:    "Duración de los análisis en segundos",
			Buckets: prometheus.DefBuckets,
		},
	)

	anomaliesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bodega_radar_anomalies_detected_total",
			Help: "Total de anomalías detectadas, por tipo",
		},
		[]string{"type"},
	)

	recordsAnalyzedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bodega_radar_records_analyzed_total",
			Help: "Total de registros de inventario analizados",
		},
	)

	ruleFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bodega_radar_rule_failures_total",
			Help: "Total de reglas que fallaron durante un análisis, por tipo de regla",
		},
		[]string{"rule_type"},
	)
)

func init() {
	prometheus.MustRegister(analysisRunsTotal)
	prometheus.MustRegister(analysisDuration)
	prometheus.MustRegister(anomaliesTotal)
	prometheus.MustRegister(recordsAnalyzedTotal)
	prometheus.MustRegister(ruleFailuresTotal)
}

// MetricsHandler expone el registry de Prometheus como handler de Fiber.
func MetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
