package analysis

import (
	"fmt"

	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/location"
)

// InvalidLocationEvaluator señala toda unidad cuya ubicación no existe bajo la
// plantilla resuelta (fuera de límites, área no declarada o no interpretable),
// llevando la razón específica en la evidencia.
type InvalidLocationEvaluator struct{}

// NewInvalidLocationEvaluator crea el evaluador de ubicaciones inválidas.
func NewInvalidLocationEvaluator() *InvalidLocationEvaluator {
	return &InvalidLocationEvaluator{}
}

func (e *InvalidLocationEvaluator) RuleType() string { return entity.RuleTypeInvalidLocation }

func (e *InvalidLocationEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	if run.Cache.Template() == nil {
		return nil, domain.ErrNoWarehouseContext
	}

	var out []entity.AnomalyRecord
	for i := range records {
		r := &records[i]
		props := run.Cache.Properties(location.CanonicalResult{Kind: r.LocationKind, Value: r.CanonicalLocation})
		if props.Exists {
			continue
		}
		out = append(out, entity.AnomalyRecord{
			UnitID:            r.UnitID,
			CanonicalLocation: r.CanonicalLocation,
			AnomalyType:       entity.AnomalyInvalidLocation,
			Priority:          rulePriority(rule, entity.PriorityHigh),
			RuleID:            rule.ID,
			PrecedenceLevel:   rule.PrecedenceLevel,
			Description:       fmt.Sprintf("Ubicación %q inválida: %s", r.RawLocation, props.Reason),
			Evidence: map[string]string{
				"raw_location": r.RawLocation,
				"reason":       props.Reason,
			},
		})
	}
	return out, nil
}
