package analysis

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// Vocabulario de palabras clave → clase de temperatura. El orden importa:
// congelado gana sobre refrigerado cuando la descripción menciona ambos.
var temperatureKeywords = []struct {
	class string
	words []string
}{
	{entity.ClimateFrozen, []string{"CONGELADO", "CONGELADA", "FROZEN", "HELADO", "-18"}},
	{entity.ClimateRefrigerated, []string{"REFRIGERADO", "REFRIGERADA", "CHILLED", "FRIO", "FRÍO", "LACTEO", "LÁCTEO"}},
}

// TemperatureMismatchEvaluator infiere la clase de temperatura de cada unidad a
// partir de su descripción y la compara con la clase declarada de la zona donde
// está. Solo señala desajustes con ambas puntas conocidas: sin palabra clave o
// sin clima declarado para la zona, la unidad se omite.
type TemperatureMismatchEvaluator struct{}

// NewTemperatureMismatchEvaluator crea el evaluador de zonas de temperatura.
func NewTemperatureMismatchEvaluator() *TemperatureMismatchEvaluator {
	return &TemperatureMismatchEvaluator{}
}

func (e *TemperatureMismatchEvaluator) RuleType() string { return entity.RuleTypeTemperatureMismatch }

func (e *TemperatureMismatchEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	template := run.Cache.Template()
	if template == nil {
		return nil, domain.ErrNoWarehouseContext
	}

	var out []entity.AnomalyRecord
	for i := range records {
		r := &records[i]
		if r.LocationZone == "" {
			continue
		}
		declared := zoneClimate(template, r.LocationZone)
		if declared == "" {
			continue
		}
		inferred := InferTemperatureClass(r.Description)
		if inferred == "" || inferred == declared {
			continue
		}
		out = append(out, entity.AnomalyRecord{
			UnitID:            r.UnitID,
			CanonicalLocation: r.CanonicalLocation,
			AnomalyType:       entity.AnomalyTemperatureMismatch,
			Priority:          rulePriority(rule, entity.PriorityCritical),
			RuleID:            rule.ID,
			PrecedenceLevel:   rule.PrecedenceLevel,
			Description: fmt.Sprintf("Producto %s en zona %s (%s) de %s",
				inferred, r.LocationZone, declared, displayLocation(r)),
			Evidence: map[string]string{
				"inferred_class": inferred,
				"declared_class": declared,
				"zone":           r.LocationZone,
			},
		})
	}
	return out, nil
}

// InferTemperatureClass clase de temperatura inferida de una descripción libre;
// cadena vacía cuando ninguna palabra clave coincide.
func InferTemperatureClass(description string) string {
	if description == "" {
		return ""
	}
	upper := strings.ToUpper(description)
	for _, entry := range temperatureKeywords {
		for _, word := range entry.words {
			if strings.Contains(upper, word) {
				return entry.class
			}
		}
	}
	return ""
}

// zoneClimate clima declarado de una zona, sin distinguir mayúsculas en la clave.
func zoneClimate(t *entity.WarehouseTemplate, zone string) string {
	if c, ok := t.ZoneClimates[zone]; ok {
		return c
	}
	for k, c := range t.ZoneClimates {
		if strings.EqualFold(k, zone) {
			return c
		}
	}
	return ""
}
