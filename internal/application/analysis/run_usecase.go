package analysis

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/domain"
	enganalysis "github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

// RunAnalysisUseCase corre un análisis completo: snapshot → normalización →
// contexto de bodega → reglas activas → reporte persistido.
type RunAnalysisUseCase struct {
	catalog    *TemplateCatalog
	ruleRepo   repository.RuleDefinitionRepository
	reportRepo repository.AnalysisReportRepository
	engine     *enganalysis.Engine
	resolver   *enganalysis.ContextResolver
}

// NewRunAnalysisUseCase construye el caso de uso con el motor y sus puertos.
func NewRunAnalysisUseCase(
	catalog *TemplateCatalog,
	ruleRepo repository.RuleDefinitionRepository,
	reportRepo repository.AnalysisReportRepository,
	engine *enganalysis.Engine,
	resolver *enganalysis.ContextResolver,
) *RunAnalysisUseCase {
	return &RunAnalysisUseCase{
		catalog:    catalog,
		ruleRepo:   ruleRepo,
		reportRepo: reportRepo,
		engine:     engine,
		resolver:   resolver,
	}
}

// Run ejecuta el análisis para una empresa. Si la petición trae warehouse_id la
// detección automática se omite (confianza EXPLICIT); si no, se puntúan todas
// las plantillas de la empresa. El reporte siempre incluye las anomalías que sí
// se calcularon, anotadas con qué reglas fallaron y por qué.
func (uc *RunAnalysisUseCase) Run(ctx context.Context, companyID string, in dto.RunAnalysisRequest) (*dto.AnalysisReportResponse, error) {
	if len(in.Records) == 0 {
		return nil, domain.ErrEmptySnapshot
	}
	started := time.Now()

	records := make([]entity.InventoryRecord, len(in.Records))
	for i, r := range in.Records {
		records[i] = entity.InventoryRecord{
			UnitID:               r.UnitID,
			RawLocation:          r.Location,
			LotID:                r.LotID,
			CreatedAt:            r.CreatedAt,
			Description:          r.Description,
			Quantity:             r.Quantity,
			Weight:               r.Weight,
			DeclaredLocationType: r.LocationType,
		}
	}

	candidates, err := uc.catalog.Candidates(companyID)
	if err != nil {
		return nil, err
	}

	// La elección explícita del caller debe pertenecer a la empresa.
	if in.WarehouseID != "" && findTemplate(candidates, in.WarehouseID) == nil {
		return nil, domain.ErrNotFound
	}

	values := make([]entity.WarehouseTemplate, len(candidates))
	for i, t := range candidates {
		values[i] = *t
	}
	warehouseCtx := uc.resolver.Resolve(records, values, in.WarehouseID)
	template := findTemplate(candidates, warehouseCtx.WarehouseID)

	rules, err := uc.ruleRepo.ListActiveByCompany(companyID)
	if err != nil {
		return nil, err
	}
	if len(in.RuleIDs) > 0 {
		rules = filterRules(rules, in.RuleIDs)
	}
	ruleValues := make([]entity.RuleDefinition, len(rules))
	for i, r := range rules {
		ruleValues[i] = *r
	}

	result, err := uc.engine.Run(ctx, records, ruleValues, template)
	if err != nil {
		return nil, err
	}

	report := &entity.AnalysisReport{
		ID:             uuid.New().String(),
		CompanyID:      companyID,
		WarehouseID:    warehouseCtx.WarehouseID,
		ConfidenceTier: warehouseCtx.ConfidenceTier,
		MatchScore:     warehouseCtx.MatchScore,
		TotalRecords:   len(records),
		AnomalyCount:   len(result.Anomalies),
		Anomalies:      result.Anomalies,
		RuleExecutions: result.Executions,
		StartedAt:      started,
		FinishedAt:     time.Now(),
	}
	if err := uc.reportRepo.Save(report); err != nil {
		return nil, err
	}

	return ToAnalysisReportResponse(report), nil
}

func filterRules(rules []*entity.RuleDefinition, ids []string) []*entity.RuleDefinition {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	out := rules[:0]
	for _, r := range rules {
		if wanted[r.ID] {
			out = append(out, r)
		}
	}
	return out
}

func findTemplate(candidates []*entity.WarehouseTemplate, id string) *entity.WarehouseTemplate {
	if id == "" {
		return nil
	}
	for _, t := range candidates {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// ToAnalysisReportResponse mapea un reporte de dominio a su DTO completo.
func ToAnalysisReportResponse(r *entity.AnalysisReport) *dto.AnalysisReportResponse {
	anomalies := make([]dto.AnomalyDTO, len(r.Anomalies))
	for i, a := range r.Anomalies {
		anomalies[i] = dto.AnomalyDTO{
			UnitID:            a.UnitID,
			CanonicalLocation: a.CanonicalLocation,
			AnomalyType:       a.AnomalyType,
			Priority:          a.Priority,
			RuleID:            a.RuleID,
			PrecedenceLevel:   a.PrecedenceLevel,
			Description:       a.Description,
			Evidence:          a.Evidence,
		}
	}
	executions := make([]dto.RuleExecutionDTO, len(r.RuleExecutions))
	for i, e := range r.RuleExecutions {
		executions[i] = dto.RuleExecutionDTO{
			RuleID:       e.RuleID,
			RuleType:     e.RuleType,
			Success:      e.Success,
			AnomalyCount: e.AnomalyCount,
			DurationMs:   e.Duration.Milliseconds(),
			ErrorMessage: e.ErrorMessage,
		}
	}
	return &dto.AnalysisReportResponse{
		ID:        r.ID,
		CompanyID: r.CompanyID,
		Context: dto.WarehouseContextDTO{
			WarehouseID:    r.WarehouseID,
			ConfidenceTier: r.ConfidenceTier,
			MatchScore:     r.MatchScore,
		},
		TotalRecords:   r.TotalRecords,
		AnomalyCount:   r.AnomalyCount,
		Anomalies:      anomalies,
		RuleExecutions: executions,
		StartedAt:      r.StartedAt,
		FinishedAt:     r.FinishedAt,
	}
}
