package analysis

import (
	"sync"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/location"
)

// RunCache caché de propiedades de ubicación y conjuntos de patrones con el
// alcance de UNA corrida de análisis. Se crea al iniciar la corrida y se
// descarta al terminar; nunca se comparte entre corridas (las plantillas de
// bodegas distintas difieren) y la invalidación entre corridas es trivial
// porque no hay estado que sobreviva. Segura para lectura concurrente por los
// workers de la misma corrida.
type RunCache struct {
	template *entity.WarehouseTemplate

	mu       sync.RWMutex
	props    map[string]location.Properties
	patterns map[string]*PatternSet
}

// NewRunCache crea la caché de una corrida sobre la plantilla resuelta.
// La plantilla puede ser nil (confianza NONE); los lookups devuelven entonces
// propiedades inexistentes y los evaluadores que la exigen fallan por regla.
func NewRunCache(t *entity.WarehouseTemplate) *RunCache {
	return &RunCache{
		template: t,
		props:    make(map[string]location.Properties),
		patterns: make(map[string]*PatternSet),
	}
}

// Template plantilla de la corrida; nil si no se resolvió ninguna.
func (c *RunCache) Template() *entity.WarehouseTemplate {
	return c.template
}

// Properties resuelve y memoriza las propiedades de un resultado canónico.
// Las entradas no interpretables no se cachean: su resultado es constante.
func (c *RunCache) Properties(res location.CanonicalResult) location.Properties {
	if res.Kind == entity.LocationKindUnparseable || c.template == nil {
		return location.Resolve(c.template, res)
	}

	c.mu.RLock()
	props, ok := c.props[res.Value]
	c.mu.RUnlock()
	if ok {
		return props
	}

	props = location.Resolve(c.template, res)
	c.mu.Lock()
	c.props[res.Value] = props
	c.mu.Unlock()
	return props
}

// Patterns deriva y memoriza el PatternSet para un tipo de regla.
func (c *RunCache) Patterns(resolver *PatternResolver, ruleType string) *PatternSet {
	c.mu.RLock()
	set, ok := c.patterns[ruleType]
	c.mu.RUnlock()
	if ok {
		return set
	}

	set = resolver.Derive(c.template)
	c.mu.Lock()
	c.patterns[ruleType] = set
	c.mu.Unlock()
	return set
}
