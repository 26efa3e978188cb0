package dto

// DashboardSummaryDTO respuesta de GET /api/analysis/stats.
// Contiene los KPIs de detección del día y del mes en curso, más los tipos de
// anomalía y las ubicaciones más golpeadas del mes.
type DashboardSummaryDTO struct {
	// Métricas del día actual (00:00 – 23:59)
	TodayRuns      int `json:"today_runs"`      // corridas de análisis de hoy
	TodayAnomalies int `json:"today_anomalies"` // anomalías detectadas hoy

	// Métricas del mes en curso (día 1 – hoy)
	MonthRuns      int `json:"month_runs"`
	MonthRecords   int `json:"month_records"` // registros de inventario analizados
	MonthAnomalies int `json:"month_anomalies"`

	// Anomalías del mes por cada 100 registros analizados (0 si no hubo corridas)
	MonthAnomalyRate float64 `json:"month_anomaly_rate"`

	// Top 5 tipos de anomalía del mes (ordenados de mayor a menor conteo)
	TopTypes []AnomalyTypeCountDTO `json:"top_types"`

	// Top 5 ubicaciones canónicas con más anomalías en el mes
	TopLocations []LocationCountDTO `json:"top_locations"`

	// Metadatos del período
	DateLabel string `json:"date_label"` // ej: "Febrero 2026"
}

// AnomalyTypeCountDTO conteo de anomalías de un tipo para el widget del tablero.
type AnomalyTypeCountDTO struct {
	AnomalyType string `json:"anomaly_type"`
	Count       int    `json:"count"`
}

// LocationCountDTO conteo de anomalías de una ubicación para el widget del tablero.
type LocationCountDTO struct {
	CanonicalLocation string `json:"canonical_location"`
	Count             int    `json:"count"`
}
