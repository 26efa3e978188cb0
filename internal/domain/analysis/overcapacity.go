package analysis

import (
	"fmt"
	"sort"

	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/location"
)

// Modos de la regla OVERCAPACITY.
const (
	OvercapacityModeLegacy         = "legacy"         // conteo plano > capacidad señala toda la ubicación
	OvercapacityModeDifferentiated = "differentiated" // prioridad distinta para storage vs áreas especiales
)

const defaultSignificanceRatio = 0.5

// OvercapacityEvaluator agrupa por ubicación canónica y señala toda unidad en
// ubicaciones que exceden su capacidad resuelta. El modo estadístico opcional
// solo señala cuando el exceso supera un umbral relativo a la ocupación típica
// de la bodega, para no inundar el reporte cuando casi todo está al límite.
type OvercapacityEvaluator struct{}

// NewOvercapacityEvaluator crea el evaluador de sobrecupo.
func NewOvercapacityEvaluator() *OvercapacityEvaluator {
	return &OvercapacityEvaluator{}
}

func (e *OvercapacityEvaluator) RuleType() string { return entity.RuleTypeOvercapacity }

func (e *OvercapacityEvaluator) Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	if run.Cache.Template() == nil {
		return nil, domain.ErrNoWarehouseContext
	}
	mode := rule.Conditions.String("mode", OvercapacityModeLegacy)
	useStatistical := rule.Conditions.Bool("use_statistical", false)
	significance := rule.Conditions.Float("significance_ratio", defaultSignificanceRatio)

	// 1. Agrupar índices por ubicación canónica, en orden de primera aparición.
	groups := make(map[string][]int)
	var order []string
	for i := range records {
		r := &records[i]
		if r.CanonicalLocation == "" {
			continue // lo no interpretable es territorio de INVALID_LOCATION
		}
		if _, ok := groups[r.CanonicalLocation]; !ok {
			order = append(order, r.CanonicalLocation)
		}
		groups[r.CanonicalLocation] = append(groups[r.CanonicalLocation], i)
	}

	// 2. Ocupación típica de la corrida (solo para el modo estadístico).
	var median float64
	if useStatistical {
		counts := make([]int, 0, len(groups))
		for _, idxs := range groups {
			counts = append(counts, len(idxs))
		}
		median = medianOccupancy(counts)
	}

	var out []entity.AnomalyRecord
	for _, loc := range order {
		idxs := groups[loc]
		first := &records[idxs[0]]
		props := run.Cache.Properties(location.CanonicalResult{Kind: first.LocationKind, Value: loc})

		// Para una ubicación desconocida se asume la capacidad por defecto: el
		// conteo sigue siendo real aunque el código no exista en la plantilla.
		// La exclusión contra INVALID_LOCATION evita el doble reporte.
		capacity := props.Capacity
		if !props.Exists {
			capacity = run.Cache.Template().DefaultCapacity
		}
		if capacity <= 0 {
			continue
		}
		count := len(idxs)
		overage := count - capacity
		if overage <= 0 {
			continue
		}
		if useStatistical && float64(overage) <= significance*median {
			continue
		}

		priority := rulePriority(rule, entity.PriorityHigh)
		if mode == OvercapacityModeDifferentiated && props.Exists && props.Type != entity.LocationTypeStorage {
			// Las áreas especiales toleran picos operativos; se degradan a media.
			priority = entity.PriorityMedium
		}

		evidence := map[string]string{
			"units":    fmt.Sprintf("%d", count),
			"capacity": fmt.Sprintf("%d", capacity),
			"overage":  fmt.Sprintf("%d", overage),
		}
		if useStatistical {
			evidence["median_occupancy"] = fmt.Sprintf("%.1f", median)
			evidence["significance_ratio"] = fmt.Sprintf("%.2f", significance)
		}

		for _, i := range idxs {
			r := &records[i]
			out = append(out, entity.AnomalyRecord{
				UnitID:            r.UnitID,
				CanonicalLocation: r.CanonicalLocation,
				AnomalyType:       entity.AnomalyOvercapacity,
				Priority:          priority,
				RuleID:            rule.ID,
				PrecedenceLevel:   rule.PrecedenceLevel,
				Description: fmt.Sprintf("Ubicación %s con %d unidades sobre una capacidad de %d",
					loc, count, capacity),
				Evidence: evidence,
			})
		}
	}
	return out, nil
}

// medianOccupancy mediana de las ocupaciones por ubicación.
func medianOccupancy(counts []int) float64 {
	if len(counts) == 0 {
		return 0
	}
	sort.Ints(counts)
	mid := len(counts) / 2
	if len(counts)%2 == 1 {
		return float64(counts[mid])
	}
	return float64(counts[mid-1]+counts[mid]) / 2
}
