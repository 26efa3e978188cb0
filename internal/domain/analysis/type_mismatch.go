package analysis

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// LocationTypeMismatchEvaluator cruza la columna location_type declarada por el
// sistema origen (cuando existe) contra el tipo resuelto por el modelo virtual.
// Casi ningún feed real trae esa columna y la resolución automática es la
// autoridad, así que la regla viene deshabilitada por defecto; el evaluador se
// mantiene en el registro para los feeds que sí la traen.
type LocationTypeMismatchEvaluator struct{}

// NewLocationTypeMismatchEvaluator crea el evaluador de tipos declarados.
func NewLocationTypeMismatchEvaluator() *LocationTypeMismatchEvaluator {
	return &LocationTypeMismatchEvaluator{}
}

func (e *LocationTypeMismatchEvaluator) RuleType() string { return entity.RuleTypeLocationTypeMismatch }

func (e *LocationTypeMismatchEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	var out []entity.AnomalyRecord
	for i := range records {
		r := &records[i]
		if r.DeclaredLocationType == "" || r.LocationType == "" {
			continue
		}
		if strings.EqualFold(r.DeclaredLocationType, r.LocationType) {
			continue
		}
		out = append(out, entity.AnomalyRecord{
			UnitID:            r.UnitID,
			CanonicalLocation: r.CanonicalLocation,
			AnomalyType:       entity.AnomalyTypeMismatch,
			Priority:          rulePriority(rule, entity.PriorityLow),
			RuleID:            rule.ID,
			PrecedenceLevel:   rule.PrecedenceLevel,
			Description: fmt.Sprintf("El origen declara %s pero %s resuelve como %s",
				r.DeclaredLocationType, displayLocation(r), r.LocationType),
			Evidence: map[string]string{
				"declared_type": r.DeclaredLocationType,
				"resolved_type": r.LocationType,
			},
		})
	}
	return out, nil
}
