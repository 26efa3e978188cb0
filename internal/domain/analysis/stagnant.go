package analysis

import (
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// Parámetros de STAGNANT_PALLETS y sus valores por defecto.
const (
	defaultStagnantThresholdHours = 24
)

// StagnantPalletsEvaluator señala unidades cuya antigüedad supera un umbral
// mientras siguen en un tipo de ubicación configurado (recepción por defecto).
// Umbral y tipos son parámetros de la regla, nunca valores cableados.
type StagnantPalletsEvaluator struct{}

// NewStagnantPalletsEvaluator crea el evaluador de pallets estancados.
func NewStagnantPalletsEvaluator() *StagnantPalletsEvaluator {
	return &StagnantPalletsEvaluator{}
}

func (e *StagnantPalletsEvaluator) RuleType() string { return entity.RuleTypeStagnantPallets }

func (e *StagnantPalletsEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	thresholdHours := rule.Conditions.Float("threshold_hours", defaultStagnantThresholdHours)
	threshold := time.Duration(thresholdHours * float64(time.Hour))
	types := rule.Conditions.StringSlice("location_types", []string{entity.LocationTypeReceiving})

	typeSet := make(map[string]bool, len(types))
	for _, t := range types {
		typeSet[strings.ToUpper(t)] = true
	}

	var out []entity.AnomalyRecord
	for i := range records {
		r := &records[i]
		// Una fila sin timestamp se omite; nunca aborta el lote.
		if r.CreatedAt.IsZero() || !typeSet[r.LocationType] {
			continue
		}
		age := r.AgeAt(run.Now)
		if age <= threshold {
			continue
		}
		out = append(out, entity.AnomalyRecord{
			UnitID:            r.UnitID,
			CanonicalLocation: r.CanonicalLocation,
			AnomalyType:       entity.AnomalyStagnantPallet,
			Priority:          rulePriority(rule, entity.PriorityHigh),
			RuleID:            rule.ID,
			PrecedenceLevel:   rule.PrecedenceLevel,
			Description: fmt.Sprintf("Unidad %s lleva %.1f h en %s (umbral %.0f h)",
				r.UnitID, age.Hours(), displayLocation(r), thresholdHours),
			Evidence: map[string]string{
				"hours_in_location": fmt.Sprintf("%.1f", age.Hours()),
				"threshold_hours":   fmt.Sprintf("%.0f", thresholdHours),
				"location_type":     r.LocationType,
			},
		})
	}
	return out, nil
}
