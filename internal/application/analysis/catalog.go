// Package analysis orquesta las corridas del motor de detección: resuelve el
// catálogo de plantillas, carga las reglas activas, ejecuta el motor y persiste
// el reporte resultante.
package analysis

import (
	"sync"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/repository"
)

// TemplateCatalog catálogo de plantillas por empresa con caché en memoria e
// invalidación explícita: la caché es un objeto con dueño y la edición de una
// plantilla DEBE invalidar su empresa (lo hace el caso de uso de plantillas),
// nunca esperar a que el estado viejo expire solo.
type TemplateCatalog struct {
	repo repository.WarehouseTemplateRepository

	mu        sync.RWMutex
	byCompany map[string][]*entity.WarehouseTemplate
}

// NewTemplateCatalog crea el catálogo sobre el repositorio de plantillas.
func NewTemplateCatalog(repo repository.WarehouseTemplateRepository) *TemplateCatalog {
	return &TemplateCatalog{
		repo:      repo,
		byCompany: make(map[string][]*entity.WarehouseTemplate),
	}
}

// Candidates devuelve las plantillas de la empresa, de caché si ya se cargaron.
func (c *TemplateCatalog) Candidates(companyID string) ([]*entity.WarehouseTemplate, error) {
	c.mu.RLock()
	cached, ok := c.byCompany[companyID]
	c.mu.RUnlock()
	if ok {
		return cached, nil
	}

	list, err := c.repo.ListByCompany(companyID)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	c.byCompany[companyID] = list
	c.mu.Unlock()
	return list, nil
}

// Invalidate descarta la caché de una empresa. Se llama al crear, editar o
// borrar cualquiera de sus plantillas.
func (c *TemplateCatalog) Invalidate(companyID string) {
	c.mu.Lock()
	delete(c.byCompany, companyID)
	c.mu.Unlock()
}
