package repository

import "github.com/jhoicas/bodega-radar/internal/domain/entity"

// AnalysisReportRepository define el puerto de persistencia para los reportes
// de análisis (DIP). El motor produce el reporte en memoria; persistirlo es
// decisión de la capa de aplicación.
type AnalysisReportRepository interface {
	Save(report *entity.AnalysisReport) error
	GetByID(id string) (*entity.AnalysisReport, error)
	ListByCompany(companyID string, limit, offset int) ([]*entity.AnalysisReport, error)
	Delete(id string) error
}
