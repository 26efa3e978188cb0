package entity

import "time"

// Niveles de confianza del resolutor de contexto de bodega.
const (
	ConfidenceExplicit = "EXPLICIT" // el caller fijó la bodega; la autodetección se omite
	ConfidenceVeryHigh = "VERY_HIGH"
	ConfidenceHigh     = "HIGH"
	ConfidenceMedium   = "MEDIUM"
	ConfidenceLow      = "LOW"
	ConfidenceNone     = "NONE" // ningún candidato superó el piso mínimo
)

// WarehouseContextResult resultado de identificar a qué bodega pertenece un snapshot.
// Con ConfidenceNone el caller decide si aborta o continúa con cobertura degradada.
type WarehouseContextResult struct {
	WarehouseID    string
	ConfidenceTier string
	MatchScore     float64 // ubicaciones distintas que existen / total distintas
}

// AnalysisReport resultado completo de una corrida de análisis sobre un snapshot.
// El motor lo produce en memoria; la capa de aplicación decide persistirlo.
type AnalysisReport struct {
	ID             string
	CompanyID      string
	WarehouseID    string
	ConfidenceTier string
	MatchScore     float64
	TotalRecords   int
	AnomalyCount   int
	Anomalies      []AnomalyRecord
	RuleExecutions []RuleExecution
	StartedAt      time.Time
	FinishedAt     time.Time
}
