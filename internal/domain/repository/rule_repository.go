package repository

import "github.com/jhoicas/bodega-radar/internal/domain/entity"

// RuleDefinitionRepository define el puerto de persistencia para las reglas de
// detección (DIP).
type RuleDefinitionRepository interface {
	Create(rule *entity.RuleDefinition) error
	GetByID(id string) (*entity.RuleDefinition, error)
	Update(rule *entity.RuleDefinition) error
	ListByCompany(companyID string) ([]*entity.RuleDefinition, error)
	// ListActiveByCompany solo las reglas que el motor debe correr.
	ListActiveByCompany(companyID string) ([]*entity.RuleDefinition, error)
	Delete(id string) error
}
