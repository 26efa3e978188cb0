// Package analytics contiene los casos de uso del tablero de detección:
// agregados de corridas y anomalías para el resumen operativo.
package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

const dashboardTopN = 5 // número de tipos y ubicaciones en los widgets del tablero

// DashboardUseCase genera el resumen de detección del día y del mes en curso.
//
// Fuente de datos: AnalyticsRepository (consultas read-only).
// No accede directamente a las tablas de reportes; delega todo en el repositorio.
type DashboardUseCase struct {
	analyticsRepo repository.AnalyticsRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(analyticsRepo repository.AnalyticsRepository) *DashboardUseCase {
	return &DashboardUseCase{analyticsRepo: analyticsRepo}
}

// GetSummary construye el DashboardSummaryDTO para la empresa indicada.
//
// Tres llamadas en paralelo:
//  1. GetRunMetrics(hoy)          → TodayRuns + TodayAnomalies
//  2. GetRunMetrics(mes)          → MonthRuns + MonthRecords + MonthAnomalies
//  3. Breakdown del mes (top 5)   → TopTypes + TopLocations
func (uc *DashboardUseCase) GetSummary(
	ctx context.Context,
	companyID string,
) (*dto.DashboardSummaryDTO, error) {
	now := time.Now()

	// ── Rangos de fecha ────────────────────────────────────────────────────────
	// Hoy: 00:00:00.000 – 23:59:59.999
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayEnd := todayStart.Add(24*time.Hour - time.Nanosecond)

	// Mes en curso: día 1 a las 00:00 – hoy a las 23:59:59
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := todayEnd

	// ── Goroutines para paralelizar las 3 consultas DB ────────────────────────
	type metricsResult struct {
		metrics repository.RunMetricsResult
		err     error
	}
	type breakdownResult struct {
		types     []repository.AnomalyTypeCount
		locations []repository.LocationCount
		err       error
	}

	todayCh := make(chan metricsResult, 1)
	monthCh := make(chan metricsResult, 1)
	breakdownCh := make(chan breakdownResult, 1)

	go func() {
		m, err := uc.analyticsRepo.GetRunMetrics(ctx, companyID, todayStart, todayEnd)
		todayCh <- metricsResult{m, err}
	}()
	go func() {
		m, err := uc.analyticsRepo.GetRunMetrics(ctx, companyID, monthStart, monthEnd)
		monthCh <- metricsResult{m, err}
	}()
	go func() {
		types, err := uc.analyticsRepo.GetAnomalyTypeBreakdown(ctx, companyID, monthStart, monthEnd, dashboardTopN)
		if err != nil {
			breakdownCh <- breakdownResult{err: err}
			return
		}
		locations, err := uc.analyticsRepo.GetTopLocations(ctx, companyID, monthStart, monthEnd, dashboardTopN)
		breakdownCh <- breakdownResult{types, locations, err}
	}()

	today := <-todayCh
	month := <-monthCh
	breakdown := <-breakdownCh

	if today.err != nil {
		return nil, fmt.Errorf("dashboard: métricas de hoy: %w", today.err)
	}
	if month.err != nil {
		return nil, fmt.Errorf("dashboard: métricas del mes: %w", month.err)
	}
	if breakdown.err != nil {
		return nil, fmt.Errorf("dashboard: desglose del mes: %w", breakdown.err)
	}

	// ── Tasa de anomalías del mes (por cada 100 registros) ────────────────────
	var rate float64
	if month.metrics.Records > 0 {
		rate = float64(month.metrics.Anomalies) / float64(month.metrics.Records) * 100
	}

	// ── Construir DTO ──────────────────────────────────────────────────────────
	types := make([]dto.AnomalyTypeCountDTO, len(breakdown.types))
	for i, t := range breakdown.types {
		types[i] = dto.AnomalyTypeCountDTO{AnomalyType: t.AnomalyType, Count: t.Count}
	}
	locations := make([]dto.LocationCountDTO, len(breakdown.locations))
	for i, l := range breakdown.locations {
		locations[i] = dto.LocationCountDTO{CanonicalLocation: l.CanonicalLocation, Count: l.Count}
	}

	return &dto.DashboardSummaryDTO{
		TodayRuns:        today.metrics.Runs,
		TodayAnomalies:   today.metrics.Anomalies,
		MonthRuns:        month.metrics.Runs,
		MonthRecords:     month.metrics.Records,
		MonthAnomalies:   month.metrics.Anomalies,
		MonthAnomalyRate: rate,
		TopTypes:         types,
		TopLocations:     locations,
		DateLabel:        monthLabel(now),
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
