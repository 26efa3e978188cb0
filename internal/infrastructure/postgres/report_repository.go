package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

var _ repository.AnalysisReportRepository = (*AnalysisReportRepo)(nil)

// AnalysisReportRepo implementación del puerto AnalysisReportRepository sobre
// PostgreSQL. Las anomalías van en su propia tabla (consultables por unidad o
// tipo); los metadatos de ejecución acompañan al reporte como JSONB.
type AnalysisReportRepo struct {
	pool *pgxpool.Pool
}

// NewAnalysisReportRepository construye el adaptador de persistencia para reportes.
func NewAnalysisReportRepository(pool *pgxpool.Pool) *AnalysisReportRepo {
	return &AnalysisReportRepo{pool: pool}
}

// Save persiste el reporte completo con sus anomalías en una transacción.
func (r *AnalysisReportRepo) Save(report *entity.AnalysisReport) error {
	ctx := context.Background()
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin save report: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var executions []byte
	if len(report.RuleExecutions) > 0 {
		executions, err = json.Marshal(report.RuleExecutions)
		if err != nil {
			return fmt.Errorf("marshal rule executions: %w", err)
		}
	}
	query := `
		INSERT INTO analysis_reports
			(id, company_id, warehouse_id, confidence_tier, match_score, total_records,
			 anomaly_count, rule_executions, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = tx.Exec(ctx, query,
		report.ID, report.CompanyID, report.WarehouseID, report.ConfidenceTier,
		report.MatchScore, report.TotalRecords, report.AnomalyCount, executions,
		report.StartedAt, report.FinishedAt,
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	for i, a := range report.Anomalies {
		var evidence []byte
		if len(a.Evidence) > 0 {
			evidence, err = json.Marshal(a.Evidence)
			if err != nil {
				return fmt.Errorf("marshal evidence: %w", err)
			}
		}
		_, err = tx.Exec(ctx, `
			INSERT INTO analysis_anomalies
				(report_id, seq, unit_id, canonical_location, anomaly_type, priority,
				 rule_id, precedence_level, description, evidence)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			report.ID, i, a.UnitID, a.CanonicalLocation, a.AnomalyType, a.Priority,
			a.RuleID, a.PrecedenceLevel, a.Description, evidence,
		)
		if err != nil {
			return fmt.Errorf("insert anomaly %d: %w", i, err)
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit save report: %w", err)
	}
	return nil
}

// GetByID obtiene un reporte completo (con anomalías en orden de merge).
func (r *AnalysisReportRepo) GetByID(id string) (*entity.AnalysisReport, error) {
	ctx := context.Background()
	query := `
		SELECT id, company_id, warehouse_id, confidence_tier, match_score, total_records,
		       anomaly_count, rule_executions, started_at, finished_at
		FROM analysis_reports WHERE id = $1`
	report, err := scanReport(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get report: %w", err)
	}
	rows, err := r.pool.Query(ctx, `
		SELECT unit_id, canonical_location, anomaly_type, priority, rule_id,
		       precedence_level, description, evidence
		FROM analysis_anomalies WHERE report_id = $1 ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("load anomalies: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var a entity.AnomalyRecord
		var evidence []byte
		err := rows.Scan(&a.UnitID, &a.CanonicalLocation, &a.AnomalyType, &a.Priority,
			&a.RuleID, &a.PrecedenceLevel, &a.Description, &evidence)
		if err != nil {
			return nil, fmt.Errorf("scan anomaly: %w", err)
		}
		if len(evidence) > 0 {
			if err := json.Unmarshal(evidence, &a.Evidence); err != nil {
				return nil, fmt.Errorf("unmarshal evidence: %w", err)
			}
		}
		report.Anomalies = append(report.Anomalies, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

// ListByCompany lista reportes de la empresa, más recientes primero, sin anomalías
// (los listados usan solo el resumen).
func (r *AnalysisReportRepo) ListByCompany(companyID string, limit, offset int) ([]*entity.AnalysisReport, error) {
	query := `
		SELECT id, company_id, warehouse_id, confidence_tier, match_score, total_records,
		       anomaly_count, rule_executions, started_at, finished_at
		FROM analysis_reports WHERE company_id = $1
		ORDER BY started_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(context.Background(), query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	defer rows.Close()
	var list []*entity.AnalysisReport
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("scan report: %w", err)
		}
		list = append(list, report)
	}
	return list, rows.Err()
}

// Delete elimina un reporte; sus anomalías caen por cascada.
func (r *AnalysisReportRepo) Delete(id string) error {
	_, err := r.pool.Exec(context.Background(), `DELETE FROM analysis_reports WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete report: %w", err)
	}
	return nil
}

func scanReport(row pgx.Row) (*entity.AnalysisReport, error) {
	var report entity.AnalysisReport
	var executions []byte
	err := row.Scan(
		&report.ID, &report.CompanyID, &report.WarehouseID, &report.ConfidenceTier,
		&report.MatchScore, &report.TotalRecords, &report.AnomalyCount, &executions,
		&report.StartedAt, &report.FinishedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(executions) > 0 {
		if err := json.Unmarshal(executions, &report.RuleExecutions); err != nil {
			return nil, fmt.Errorf("unmarshal rule executions: %w", err)
		}
	}
	return &report, nil
}
