package repository

import (
	"context"
	"time"
)

// RunMetricsResult agregado crudo de corridas de análisis en un período.
// Lo produce la DB; el use case lo convierte en DTO.
type RunMetricsResult struct {
	Runs      int // corridas persistidas en el período
	Records   int // registros de inventario analizados (suma de total_records)
	Anomalies int // anomalías detectadas (suma de anomaly_count)
}

// AnomalyTypeCount conteo de anomalías por tipo.
type AnomalyTypeCount struct {
	AnomalyType string
	Count       int
}

// LocationCount conteo de anomalías por ubicación canónica.
type LocationCount struct {
	CanonicalLocation string
	Count             int
}

// AnalyticsRepository define las consultas de lectura para el tablero de anomalías.
// Las implementaciones son read-only (no modifican datos).
type AnalyticsRepository interface {
	// GetRunMetrics agrega corridas, registros analizados y anomalías de la
	// empresa en el rango de fechas dado (por started_at del reporte).
	// Usa COALESCE para devolver ceros si no hay corridas en el período.
	GetRunMetrics(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
	) (RunMetricsResult, error)

	// GetAnomalyTypeBreakdown devuelve los tipos de anomalía con más hallazgos
	// en el período, ordenados de mayor a menor conteo.
	GetAnomalyTypeBreakdown(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
		limit int,
	) ([]AnomalyTypeCount, error)

	// GetTopLocations devuelve las ubicaciones canónicas con más anomalías en el
	// período. Las anomalías sin ubicación (problemas de integridad) se excluyen.
	GetTopLocations(
		ctx context.Context,
		companyID string,
		startDate, endDate time.Time,
		limit int,
	) ([]LocationCount, error)
}
