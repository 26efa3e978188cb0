package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/bodega-radar/internal/application/analysis"
	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/domain"
)

// AnalysisHandler maneja la ejecución de análisis de snapshots (protegido).
type AnalysisHandler struct {
	uc *analysis.RunAnalysisUseCase
}

// NewAnalysisHandler construye el handler.
func NewAnalysisHandler(uc *analysis.RunAnalysisUseCase) *AnalysisHandler {
	return &AnalysisHandler{uc: uc}
}

// Run godoc
// @Summary      Ejecutar análisis de inventario
// @Description  Corre las reglas activas de la empresa sobre el snapshot enviado y persiste el reporte. Si warehouse_id viene vacío el contexto de bodega se detecta automáticamente.
// @Tags         analysis
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RunAnalysisRequest  true  "Snapshot de inventario y bodega opcional"
// @Success      201   {object}  dto.AnalysisReportResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/analysis/run [post]
func (h *AnalysisHandler) Run(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "company_id requerido"})
	}
	var in dto.RunAnalysisRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Run(c.Context(), companyID, in)
	if err != nil {
		analysisRunsTotal.WithLabelValues("error").Inc()
		if errors.Is(err, domain.ErrEmptySnapshot) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "EMPTY_SNAPSHOT", Message: "el snapshot no trae registros"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "la bodega indicada no pertenece a la empresa"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	analysisRunsTotal.WithLabelValues("success").Inc()
	analysisDuration.Observe(out.FinishedAt.Sub(out.StartedAt).Seconds())
	recordsAnalyzedTotal.Add(float64(out.TotalRecords))
	for _, a := range out.Anomalies {
		anomaliesTotal.WithLabelValues(a.AnomalyType).Inc()
	}
	for _, ex := range out.RuleExecutions {
		if !ex.Success {
			ruleFailuresTotal.WithLabelValues(ex.RuleType).Inc()
		}
	}

	return c.Status(fiber.StatusCreated).JSON(out)
}
