package analysis

import (
	"fmt"
	"time"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// Las áreas transitorias deberían vaciarse mucho antes que recepción.
const defaultTransitThresholdHours = 6

// LocationSpecificStagnantEvaluator variante de pallets estancados acotada por
// los patrones transitorios derivados del resolutor de patrones, en vez de un
// enum fijo de tipos. Funciona incluso sin plantilla resuelta gracias al
// conjunto de patrones de fallback (y la evidencia delata ese origen).
type LocationSpecificStagnantEvaluator struct{}

// NewLocationSpecificStagnantEvaluator crea el evaluador de estancamiento en tránsito.
func NewLocationSpecificStagnantEvaluator() *LocationSpecificStagnantEvaluator {
	return &LocationSpecificStagnantEvaluator{}
}

func (e *LocationSpecificStagnantEvaluator) RuleType() string {
	return entity.RuleTypeLocationSpecificStagnant
}

func (e *LocationSpecificStagnantEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	thresholdHours := rule.Conditions.Float("threshold_hours", defaultTransitThresholdHours)
	threshold := time.Duration(thresholdHours * float64(time.Hour))
	patterns := run.Cache.Patterns(run.Patterns, rule.RuleType)

	var out []entity.AnomalyRecord
	for i := range records {
		r := &records[i]
		if r.CreatedAt.IsZero() || r.CanonicalLocation == "" {
			continue
		}
		if !patterns.IsTransitional(r.CanonicalLocation) {
			continue
		}
		age := r.AgeAt(run.Now)
		if age <= threshold {
			continue
		}
		out = append(out, entity.AnomalyRecord{
			UnitID:            r.UnitID,
			CanonicalLocation: r.CanonicalLocation,
			AnomalyType:       entity.AnomalyTransitStagnant,
			Priority:          rulePriority(rule, entity.PriorityHigh),
			RuleID:            rule.ID,
			PrecedenceLevel:   rule.PrecedenceLevel,
			Description: fmt.Sprintf("Unidad %s lleva %.1f h en el área transitoria %s (umbral %.0f h)",
				r.UnitID, age.Hours(), r.CanonicalLocation, thresholdHours),
			Evidence: map[string]string{
				"hours_in_location": fmt.Sprintf("%.1f", age.Hours()),
				"threshold_hours":   fmt.Sprintf("%.0f", thresholdHours),
				"pattern_source":    patterns.Source,
			},
		})
	}
	return out, nil
}
