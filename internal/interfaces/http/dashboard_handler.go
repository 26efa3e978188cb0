package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/jhoicas/bodega-radar/internal/application/analytics"
	"github.com/jhoicas/bodega-radar/internal/application/dto"
)

// DashboardHandler maneja el resumen operativo del tablero de detección.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// GetSummary godoc
// @Summary      Resumen del tablero de detección
// @Description  KPIs del día y del mes en curso más los tipos de anomalía y ubicaciones con más hallazgos. Las fechas se calculan en el servidor.
// @Tags         analysis
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Router       /api/analysis/stats [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	companyID := GetCompanyID(c)
	if companyID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Code: "UNAUTHORIZED", Message: "company_id no encontrado en el token",
		})
	}

	summary, err := h.uc.GetSummary(c.Context(), companyID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: err.Error(),
		})
	}

	return c.JSON(summary)
}
