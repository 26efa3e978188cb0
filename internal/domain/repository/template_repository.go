package repository

import "github.com/jhoicas/bodega-radar/internal/domain/entity"

// WarehouseTemplateRepository define el puerto de persistencia para las
// plantillas de bodega (DIP). La implementación vive en infrastructure.
type WarehouseTemplateRepository interface {
	Create(template *entity.WarehouseTemplate) error
	GetByID(id string) (*entity.WarehouseTemplate, error)
	Update(template *entity.WarehouseTemplate) error
	// ListByCompany devuelve TODAS las plantillas de la empresa: son las
	// candidatas de la detección de contexto y nunca son muchas por empresa.
	ListByCompany(companyID string) ([]*entity.WarehouseTemplate, error)
	Delete(id string) error
}
