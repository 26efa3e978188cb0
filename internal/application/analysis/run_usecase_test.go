package analysis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalysis "github.com/jhoicas/bodega-radar/internal/application/analysis"
	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/domain"
	domanalysis "github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// ── fakes de repositorio ────────────────────────────────────────────────────────

type fakeTemplateRepo struct {
	templates []*entity.WarehouseTemplate
	listadas  int
}

func (f *fakeTemplateRepo) Create(*entity.WarehouseTemplate) error            { return nil }
func (f *fakeTemplateRepo) GetByID(string) (*entity.WarehouseTemplate, error) { return nil, nil }
func (f *fakeTemplateRepo) Update(*entity.WarehouseTemplate) error            { return nil }
func (f *fakeTemplateRepo) Delete(string) error                               { return nil }
func (f *fakeTemplateRepo) ListByCompany(string) ([]*entity.WarehouseTemplate, error) {
	f.listadas++
	return f.templates, nil
}

type fakeRuleRepo struct {
	rules []*entity.RuleDefinition
}

func (f *fakeRuleRepo) Create(*entity.RuleDefinition) error            { return nil }
func (f *fakeRuleRepo) GetByID(string) (*entity.RuleDefinition, error) { return nil, nil }
func (f *fakeRuleRepo) Update(*entity.RuleDefinition) error            { return nil }
func (f *fakeRuleRepo) Delete(string) error                            { return nil }
func (f *fakeRuleRepo) ListByCompany(string) ([]*entity.RuleDefinition, error) {
	return f.rules, nil
}
func (f *fakeRuleRepo) ListActiveByCompany(string) ([]*entity.RuleDefinition, error) {
	var activas []*entity.RuleDefinition
	for _, r := range f.rules {
		if r.IsActive {
			activas = append(activas, r)
		}
	}
	return activas, nil
}

type fakeReportRepo struct {
	guardados []*entity.AnalysisReport
}

func (f *fakeReportRepo) Save(r *entity.AnalysisReport) error {
	f.guardados = append(f.guardados, r)
	return nil
}
func (f *fakeReportRepo) GetByID(string) (*entity.AnalysisReport, error) { return nil, nil }
func (f *fakeReportRepo) ListByCompany(string, int, int) ([]*entity.AnalysisReport, error) {
	return nil, nil
}
func (f *fakeReportRepo) Delete(string) error { return nil }

// ── armado ──────────────────────────────────────────────────────────────────────

func casoDeUso(tplRepo *fakeTemplateRepo, ruleRepo *fakeRuleRepo, repRepo *fakeReportRepo) (*appanalysis.RunAnalysisUseCase, *appanalysis.TemplateCatalog) {
	catalogo := appanalysis.NewTemplateCatalog(tplRepo)
	uc := appanalysis.NewRunAnalysisUseCase(
		catalogo,
		ruleRepo,
		repRepo,
		domanalysis.NewEngine(domanalysis.WithWorkers(2)),
		domanalysis.NewContextResolver(0.2),
	)
	return uc, catalogo
}

func plantillaNorte() *entity.WarehouseTemplate {
	return &entity.WarehouseTemplate{
		ID: "wh-norte", CompanyID: "co-1", Name: "Bodega Norte",
		NumAisles: 3, RacksPerAisle: 3, PositionsPerRack: 50,
		LevelNames: "ABC", DefaultCapacity: 1,
		SpecialAreas: []entity.SpecialArea{
			{Code: "RECV-01", Type: entity.LocationTypeReceiving, Capacity: 20},
		},
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func filas(ubicaciones ...string) []dto.InventoryRecordDTO {
	out := make([]dto.InventoryRecordDTO, len(ubicaciones))
	for i, u := range ubicaciones {
		out[i] = dto.InventoryRecordDTO{
			UnitID:    "U-" + u,
			Location:  u,
			CreatedAt: time.Now().Add(-48 * time.Hour),
		}
	}
	return out
}

// ── pruebas ─────────────────────────────────────────────────────────────────────

func TestRunAnalysis_DetectaContextoYPersisteReporte(t *testing.T) {
	tplRepo := &fakeTemplateRepo{templates: []*entity.WarehouseTemplate{plantillaNorte()}}
	ruleRepo := &fakeRuleRepo{rules: []*entity.RuleDefinition{
		{ID: "r-1", RuleType: entity.RuleTypeStagnantPallets, IsActive: true},
		{ID: "r-2", RuleType: entity.RuleTypeOvercapacity, IsActive: false}, // inactiva: no corre
	}}
	repRepo := &fakeReportRepo{}
	uc, _ := casoDeUso(tplRepo, ruleRepo, repRepo)

	res, err := uc.Run(context.Background(), "co-1", dto.RunAnalysisRequest{
		Records: filas("01-01-001A", "02-02-010B", "RECV-01"),
	})
	require.NoError(t, err)

	assert.Equal(t, "wh-norte", res.Context.WarehouseID)
	assert.Equal(t, entity.ConfidenceVeryHigh, res.Context.ConfidenceTier)
	assert.Equal(t, 3, res.TotalRecords)
	require.Len(t, res.RuleExecutions, 1, "solo la regla activa corre")
	assert.Equal(t, "r-1", res.RuleExecutions[0].RuleID)

	// La unidad en recepción lleva 48 h: estancada con el umbral por defecto.
	require.Equal(t, 1, res.AnomalyCount)
	assert.Equal(t, "U-RECV-01", res.Anomalies[0].UnitID)

	require.Len(t, repRepo.guardados, 1, "el reporte se persiste")
	assert.Equal(t, res.ID, repRepo.guardados[0].ID)
}

func TestRunAnalysis_FiltraPorRuleIDs(t *testing.T) {
	tplRepo := &fakeTemplateRepo{templates: []*entity.WarehouseTemplate{plantillaNorte()}}
	ruleRepo := &fakeRuleRepo{rules: []*entity.RuleDefinition{
		{ID: "r-1", RuleType: entity.RuleTypeStagnantPallets, IsActive: true},
		{ID: "r-2", RuleType: entity.RuleTypeInvalidLocation, IsActive: true},
	}}
	uc, _ := casoDeUso(tplRepo, ruleRepo, &fakeReportRepo{})

	res, err := uc.Run(context.Background(), "co-1", dto.RunAnalysisRequest{
		RuleIDs: []string{"r-2"},
		Records: filas("01-01-001A"),
	})
	require.NoError(t, err)
	require.Len(t, res.RuleExecutions, 1)
	assert.Equal(t, "r-2", res.RuleExecutions[0].RuleID)
}

func TestRunAnalysis_BodegaExplicitaDebeExistir(t *testing.T) {
	tplRepo := &fakeTemplateRepo{templates: []*entity.WarehouseTemplate{plantillaNorte()}}
	uc, _ := casoDeUso(tplRepo, &fakeRuleRepo{}, &fakeReportRepo{})

	_, err := uc.Run(context.Background(), "co-1", dto.RunAnalysisRequest{
		WarehouseID: "wh-fantasma",
		Records:     filas("01-01-001A"),
	})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestRunAnalysis_BodegaExplicitaOmiteDeteccion(t *testing.T) {
	tplRepo := &fakeTemplateRepo{templates: []*entity.WarehouseTemplate{plantillaNorte()}}
	repRepo := &fakeReportRepo{}
	uc, _ := casoDeUso(tplRepo, &fakeRuleRepo{}, repRepo)

	res, err := uc.Run(context.Background(), "co-1", dto.RunAnalysisRequest{
		WarehouseID: "wh-norte",
		Records:     filas("ZZZ-99", "YYY-88"), // nada coincide y aun así se respeta la elección
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ConfidenceExplicit, res.Context.ConfidenceTier)
	assert.Equal(t, "wh-norte", res.Context.WarehouseID)
}

func TestRunAnalysis_SnapshotVacio(t *testing.T) {
	uc, _ := casoDeUso(&fakeTemplateRepo{}, &fakeRuleRepo{}, &fakeReportRepo{})

	_, err := uc.Run(context.Background(), "co-1", dto.RunAnalysisRequest{})
	require.ErrorIs(t, err, domain.ErrEmptySnapshot)
}

func TestCatalogo_CacheaEInvalida(t *testing.T) {
	tplRepo := &fakeTemplateRepo{templates: []*entity.WarehouseTemplate{plantillaNorte()}}
	catalogo := appanalysis.NewTemplateCatalog(tplRepo)

	_, err := catalogo.Candidates("co-1")
	require.NoError(t, err)
	_, err = catalogo.Candidates("co-1")
	require.NoError(t, err)
	assert.Equal(t, 1, tplRepo.listadas, "la segunda lectura sale de caché")

	catalogo.Invalidate("co-1")
	_, err = catalogo.Candidates("co-1")
	require.NoError(t, err)
	assert.Equal(t, 2, tplRepo.listadas, "tras invalidar se vuelve al repositorio")
}
