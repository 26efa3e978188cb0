package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryRecordDTO una fila del snapshot de inventario a analizar.
type InventoryRecordDTO struct {
	UnitID       string          `json:"unit_id" validate:"required"`
	Location     string          `json:"location"`
	LotID        string          `json:"lot_id"`
	CreatedAt    time.Time       `json:"created_at"`
	Description  string          `json:"description"`
	Quantity     decimal.Decimal `json:"quantity"`
	Weight       decimal.Decimal `json:"weight"`
	LocationType string          `json:"location_type"` // columna opcional del origen
}

// RunAnalysisRequest entrada para correr un análisis sobre un snapshot.
// WarehouseID vacío activa la detección automática de contexto. RuleIDs
// restringe la corrida a esas reglas; vacío corre todas las activas.
type RunAnalysisRequest struct {
	WarehouseID string               `json:"warehouse_id"`
	RuleIDs     []string             `json:"rule_ids"`
	Records     []InventoryRecordDTO `json:"records" validate:"required,min=1,dive"`
}

// WarehouseContextDTO resultado de la resolución de contexto.
type WarehouseContextDTO struct {
	WarehouseID    string  `json:"warehouse_id,omitempty"`
	ConfidenceTier string  `json:"confidence_tier"`
	MatchScore     float64 `json:"match_score"`
}

// AnomalyDTO un hallazgo del motor.
type AnomalyDTO struct {
	UnitID            string            `json:"unit_id"`
	CanonicalLocation string            `json:"canonical_location,omitempty"`
	AnomalyType       string            `json:"anomaly_type"`
	Priority          string            `json:"priority"`
	RuleID            string            `json:"rule_id"`
	PrecedenceLevel   int               `json:"precedence_level"`
	Description       string            `json:"description"`
	Evidence          map[string]string `json:"evidence,omitempty"`
}

// RuleExecutionDTO metadatos de ejecución de una regla.
type RuleExecutionDTO struct {
	RuleID       string `json:"rule_id"`
	RuleType     string `json:"rule_type"`
	Success      bool   `json:"success"`
	AnomalyCount int    `json:"anomaly_count"`
	DurationMs   int64  `json:"duration_ms"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// AnalysisReportResponse salida completa de una corrida de análisis.
type AnalysisReportResponse struct {
	ID             string              `json:"id"`
	CompanyID      string              `json:"company_id"`
	Context        WarehouseContextDTO `json:"context"`
	TotalRecords   int                 `json:"total_records"`
	AnomalyCount   int                 `json:"anomaly_count"`
	Anomalies      []AnomalyDTO        `json:"anomalies"`
	RuleExecutions []RuleExecutionDTO  `json:"rule_executions"`
	StartedAt      time.Time           `json:"started_at"`
	FinishedAt     time.Time           `json:"finished_at"`
}

// ReportSummaryResponse resumen de un reporte persistido (para listados).
type ReportSummaryResponse struct {
	ID             string    `json:"id"`
	WarehouseID    string    `json:"warehouse_id,omitempty"`
	ConfidenceTier string    `json:"confidence_tier"`
	TotalRecords   int       `json:"total_records"`
	AnomalyCount   int       `json:"anomaly_count"`
	StartedAt      time.Time `json:"started_at"`
	FinishedAt     time.Time `json:"finished_at"`
}

// ReportListResponse lista paginada de reportes.
type ReportListResponse struct {
	Items []ReportSummaryResponse `json:"items"`
	Page  PageResponse            `json:"page"`
}
