package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

var _ repository.AnalyticsRepository = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el tablero de anomalías.
type AnalyticsRepo struct {
	pool *pgxpool.Pool
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepo {
	return &AnalyticsRepo{pool: pool}
}

// GetRunMetrics agrega corridas, registros analizados y anomalías del período.
// Filtra por started_at del reporte; COALESCE devuelve ceros en períodos vacíos.
func (r *AnalyticsRepo) GetRunMetrics(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
) (repository.RunMetricsResult, error) {
	const query = `
	SELECT
	    COUNT(*)                        AS runs,
	    COALESCE(SUM(total_records), 0) AS records,
	    COALESCE(SUM(anomaly_count), 0) AS anomalies
	FROM analysis_reports
	WHERE company_id = $1
	  AND started_at BETWEEN $2 AND $3`

	var m repository.RunMetricsResult
	err := r.pool.QueryRow(ctx, query, companyID, startDate, endDate).
		Scan(&m.Runs, &m.Records, &m.Anomalies)
	if err != nil {
		return repository.RunMetricsResult{}, fmt.Errorf("analytics.GetRunMetrics: %w", err)
	}
	return m, nil
}

// GetAnomalyTypeBreakdown agrupa las anomalías del período por tipo,
// ordenadas de mayor a menor conteo (desempate alfabético para salida estable).
func (r *AnalyticsRepo) GetAnomalyTypeBreakdown(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
	limit int,
) ([]repository.AnomalyTypeCount, error) {
	const query = `
	SELECT a.anomaly_type, COUNT(*) AS total
	FROM analysis_anomalies a
	JOIN analysis_reports r ON r.id = a.report_id
	WHERE r.company_id = $1
	  AND r.started_at BETWEEN $2 AND $3
	GROUP BY a.anomaly_type
	ORDER BY total DESC, a.anomaly_type
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, companyID, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetAnomalyTypeBreakdown: %w", err)
	}
	defer rows.Close()

	var results []repository.AnomalyTypeCount
	for rows.Next() {
		var row repository.AnomalyTypeCount
		if err := rows.Scan(&row.AnomalyType, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetAnomalyTypeBreakdown scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// GetTopLocations agrupa las anomalías del período por ubicación canónica.
// Excluye las anomalías sin ubicación (hallazgos de integridad de datos).
func (r *AnalyticsRepo) GetTopLocations(
	ctx context.Context,
	companyID string,
	startDate, endDate time.Time,
	limit int,
) ([]repository.LocationCount, error) {
	const query = `
	SELECT a.canonical_location, COUNT(*) AS total
	FROM analysis_anomalies a
	JOIN analysis_reports r ON r.id = a.report_id
	WHERE r.company_id = $1
	  AND r.started_at BETWEEN $2 AND $3
	  AND a.canonical_location <> ''
	GROUP BY a.canonical_location
	ORDER BY total DESC, a.canonical_location
	LIMIT $4`

	rows, err := r.pool.Query(ctx, query, companyID, startDate, endDate, limit)
	if err != nil {
		return nil, fmt.Errorf("analytics.GetTopLocations: %w", err)
	}
	defer rows.Close()

	var results []repository.LocationCount
	for rows.Next() {
		var row repository.LocationCount
		if err := rows.Scan(&row.CanonicalLocation, &row.Count); err != nil {
			return nil, fmt.Errorf("analytics.GetTopLocations scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
