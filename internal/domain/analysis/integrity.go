package analysis

import (
	"fmt"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

const defaultMaxLocationLength = 64

// DataIntegrityEvaluator defectos básicos del feed: unit_id duplicado dentro del
// lote, ubicación no interpretable y ubicación de longitud implausible. Cada
// defecto sale como una anomalía DATA_INTEGRITY con su razón en la evidencia,
// así que una misma unidad puede aparecer varias veces con razones distintas.
// No requiere plantilla: opera sobre el feed crudo normalizado.
type DataIntegrityEvaluator struct{}

// NewDataIntegrityEvaluator crea el evaluador de integridad de datos.
func NewDataIntegrityEvaluator() *DataIntegrityEvaluator {
	return &DataIntegrityEvaluator{}
}

func (e *DataIntegrityEvaluator) RuleType() string { return entity.RuleTypeDataIntegrity }

func (e *DataIntegrityEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	maxLen := rule.Conditions.Int("max_location_length", defaultMaxLocationLength)
	priority := rulePriority(rule, entity.PriorityCritical)

	occurrences := make(map[string]int, len(records))
	for i := range records {
		occurrences[records[i].UnitID]++
	}

	var out []entity.AnomalyRecord
	flag := func(r *entity.InventoryRecord, reason, description string, extra map[string]string) {
		evidence := map[string]string{"reason": reason}
		for k, v := range extra {
			evidence[k] = v
		}
		out = append(out, entity.AnomalyRecord{
			UnitID:            r.UnitID,
			CanonicalLocation: r.CanonicalLocation,
			AnomalyType:       entity.AnomalyDataIntegrity,
			Priority:          priority,
			RuleID:            rule.ID,
			PrecedenceLevel:   rule.PrecedenceLevel,
			Description:       description,
			Evidence:          evidence,
		})
	}

	for i := range records {
		r := &records[i]
		if n := occurrences[r.UnitID]; n > 1 {
			flag(r, entity.IntegrityReasonDuplicate,
				fmt.Sprintf("La unidad %s aparece %d veces en el snapshot", r.UnitID, n),
				map[string]string{"occurrences": fmt.Sprintf("%d", n)})
		}
		if r.LocationKind == entity.LocationKindUnparseable {
			flag(r, entity.IntegrityReasonUnparseable,
				fmt.Sprintf("Ubicación %q no interpretable para la unidad %s", r.RawLocation, r.UnitID),
				map[string]string{"raw_location": r.RawLocation})
		}
		if len(r.RawLocation) > maxLen {
			flag(r, entity.IntegrityReasonTooLong,
				fmt.Sprintf("Ubicación de %d caracteres para la unidad %s (máximo plausible %d)", len(r.RawLocation), r.UnitID, maxLen),
				map[string]string{"length": fmt.Sprintf("%d", len(r.RawLocation)), "max_length": fmt.Sprintf("%d", maxLen)})
		}
	}
	return out, nil
}
