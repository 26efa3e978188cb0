package usecase

import (
	"github.com/jhoicas/bodega-radar/internal/application/analysis"
	"github.com/jhoicas/bodega-radar/internal/application/dto"
	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

// ReportPDFGenerator genera el PDF de un reporte de análisis.
type ReportPDFGenerator interface {
	Generate(report *entity.AnalysisReport) ([]byte, error)
}

// ReportXMLExporter serializa un reporte como XML con forma canónica (C14N) y
// devuelve además el digest SHA-256 de esa forma, para archivado verificable.
type ReportXMLExporter interface {
	Export(report *entity.AnalysisReport) (xml []byte, digest string, err error)
}

// ReportUseCase consulta y exportación de reportes persistidos.
type ReportUseCase struct {
	repo repository.AnalysisReportRepository
	pdf  ReportPDFGenerator
	xml  ReportXMLExporter
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(repo repository.AnalysisReportRepository, pdf ReportPDFGenerator, xml ReportXMLExporter) *ReportUseCase {
	return &ReportUseCase{repo: repo, pdf: pdf, xml: xml}
}

// GetByID obtiene un reporte completo por ID.
func (uc *ReportUseCase) GetByID(id string) (*dto.AnalysisReportResponse, error) {
	report, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, nil
	}
	return analysis.ToAnalysisReportResponse(report), nil
}

// List lista resúmenes de reportes de la empresa, paginados.
func (uc *ReportUseCase) List(companyID string, page dto.PageRequest) (*dto.ReportListResponse, error) {
	page.DefaultPage()
	list, err := uc.repo.ListByCompany(companyID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ReportSummaryResponse, 0, len(list))
	for _, r := range list {
		items = append(items, dto.ReportSummaryResponse{
			ID:             r.ID,
			WarehouseID:    r.WarehouseID,
			ConfidenceTier: r.ConfidenceTier,
			TotalRecords:   r.TotalRecords,
			AnomalyCount:   r.AnomalyCount,
			StartedAt:      r.StartedAt,
			FinishedAt:     r.FinishedAt,
		})
	}
	return &dto.ReportListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// Delete elimina un reporte.
func (uc *ReportUseCase) Delete(id string) error {
	report, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if report == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(id)
}

// ExportPDF genera el PDF de un reporte persistido.
func (uc *ReportUseCase) ExportPDF(id string) ([]byte, error) {
	report, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, domain.ErrNotFound
	}
	return uc.pdf.Generate(report)
}

// ExportXML serializa un reporte persistido como XML canónico y su digest.
func (uc *ReportUseCase) ExportXML(id string) ([]byte, string, error) {
	report, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, "", err
	}
	if report == nil {
		return nil, "", domain.ErrNotFound
	}
	return uc.xml.Export(report)
}
