package analysis

import (
	"fmt"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

const (
	defaultLotCompletionRatio = 0.8
	defaultMinLotSize         = 2
)

// UncoordinatedLotsEvaluator detecta rezagados: unidades que quedaron en áreas
// transitorias cuando la mayoría de su lote ya llegó a almacenamiento final.
// Un lote de tamaño 1 nunca califica (no existe el concepto de rezagado).
type UncoordinatedLotsEvaluator struct{}

// NewUncoordinatedLotsEvaluator crea el evaluador de lotes descoordinados.
func NewUncoordinatedLotsEvaluator() *UncoordinatedLotsEvaluator {
	return &UncoordinatedLotsEvaluator{}
}

func (e *UncoordinatedLotsEvaluator) RuleType() string { return entity.RuleTypeUncoordinatedLots }

type lotStats struct {
	total     int
	inStorage int
}

func (e *UncoordinatedLotsEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	completion := rule.Conditions.Float("completion_ratio", defaultLotCompletionRatio)
	minSize := rule.Conditions.Int("min_lot_size", defaultMinLotSize)
	if minSize < 2 {
		minSize = 2
	}

	// 1. Estadísticas por lote en una pasada.
	stats := make(map[string]*lotStats)
	for i := range records {
		r := &records[i]
		if r.LotID == "" {
			continue
		}
		s := stats[r.LotID]
		if s == nil {
			s = &lotStats{}
			stats[r.LotID] = s
		}
		s.total++
		if r.LocationType == entity.LocationTypeStorage {
			s.inStorage++
		}
	}

	// 2. Señalar los miembros transitorios de los lotes que superan el umbral,
	// recorriendo los registros en orden para un resultado estable.
	var out []entity.AnomalyRecord
	for i := range records {
		r := &records[i]
		if r.LotID == "" || !isTransientType(r.LocationType) {
			continue
		}
		s := stats[r.LotID]
		if s.total < minSize {
			continue
		}
		ratio := float64(s.inStorage) / float64(s.total)
		if ratio < completion {
			continue
		}
		out = append(out, entity.AnomalyRecord{
			UnitID:            r.UnitID,
			CanonicalLocation: r.CanonicalLocation,
			AnomalyType:       entity.AnomalyLotStraggler,
			Priority:          rulePriority(rule, entity.PriorityMedium),
			RuleID:            rule.ID,
			PrecedenceLevel:   rule.PrecedenceLevel,
			Description: fmt.Sprintf("Rezagado del lote %s: %d/%d unidades ya en almacenamiento (%.0f%%) y esta sigue en %s",
				r.LotID, s.inStorage, s.total, ratio*100, displayLocation(r)),
			Evidence: map[string]string{
				"lot_id":         r.LotID,
				"lot_size":       fmt.Sprintf("%d", s.total),
				"in_storage":     fmt.Sprintf("%d", s.inStorage),
				"completion_pct": fmt.Sprintf("%.0f", ratio*100),
				"location_type":  r.LocationType,
			},
		})
	}
	return out, nil
}

// isTransientType tipos de ubicación que cuentan como transitorios para el
// concepto de rezagado.
func isTransientType(locationType string) bool {
	switch locationType {
	case entity.LocationTypeReceiving, entity.LocationTypeStaging,
		entity.LocationTypeDock, entity.LocationTypeTransitional:
		return true
	}
	return false
}
