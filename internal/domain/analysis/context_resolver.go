// Package analysis implementa el motor de evaluación de reglas sobre un
// snapshot de inventario: resolución de contexto de bodega, patrones de
// clasificación de ubicaciones, caché por corrida y el catálogo cerrado de
// evaluadores de anomalías.
//
// Todo el paquete es cómputo puro: no toca red, disco, logging ni métricas.
// Los colaboradores (casos de uso, HTTP, persistencia) entregan las entradas
// en memoria y deciden cómo exponer los resultados.
package analysis

import (
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/location"
)

// DefaultMinMatchScore piso por defecto bajo el cual la resolución de contexto
// reporta confianza NONE.
const DefaultMinMatchScore = 0.2

// ContextResolver identifica a qué bodega pertenece un snapshot sin etiquetar,
// puntuando cada plantilla candidata por la fracción de ubicaciones distintas
// del inventario que existen bajo ella.
type ContextResolver struct {
	minScore float64
}

// NewContextResolver crea un resolver con el piso mínimo de puntaje indicado.
// Un piso fuera de (0,1] cae al valor por defecto.
func NewContextResolver(minScore float64) *ContextResolver {
	if minScore <= 0 || minScore > 1 {
		minScore = DefaultMinMatchScore
	}
	return &ContextResolver{minScore: minScore}
}

// Resolve puntúa las plantillas candidatas contra las ubicaciones del snapshot.
//
// Si explicitID no es vacío la detección automática se omite por completo y la
// decisión del llamador se respeta incondicionalmente (confianza EXPLICIT) —
// re-detectar después de una elección explícita queda prohibido por contrato.
//
// Empates de puntaje se resuelven por plantilla editada más recientemente.
// Si ninguna candidata alcanza el piso, la confianza es NONE y el llamador
// decide si aborta o continúa con cobertura degradada.
func (r *ContextResolver) Resolve(records []entity.InventoryRecord, candidates []entity.WarehouseTemplate, explicitID string) entity.WarehouseContextResult {
	if explicitID != "" {
		return entity.WarehouseContextResult{
			WarehouseID:    explicitID,
			ConfidenceTier: entity.ConfidenceExplicit,
			MatchScore:     1,
		}
	}

	distinct := distinctCanonical(records)
	if len(distinct) == 0 || len(candidates) == 0 {
		return entity.WarehouseContextResult{ConfidenceTier: entity.ConfidenceNone}
	}

	bestIdx := -1
	var bestScore float64
	var bestUpdated int64
	for i := range candidates {
		matched := 0
		for _, res := range distinct {
			if location.Resolve(&candidates[i], res).Exists {
				matched++
			}
		}
		score := float64(matched) / float64(len(distinct))
		updated := candidates[i].UpdatedAt.UnixNano()
		if bestIdx == -1 || score > bestScore || (score == bestScore && updated > bestUpdated) {
			bestIdx, bestScore, bestUpdated = i, score, updated
		}
	}

	tier := r.tierFor(bestScore)
	if tier == entity.ConfidenceNone {
		// Por debajo del piso no se afirma ninguna bodega.
		return entity.WarehouseContextResult{ConfidenceTier: entity.ConfidenceNone, MatchScore: bestScore}
	}
	return entity.WarehouseContextResult{
		WarehouseID:    candidates[bestIdx].ID,
		ConfidenceTier: tier,
		MatchScore:     bestScore,
	}
}

func (r *ContextResolver) tierFor(score float64) string {
	switch {
	case score >= 0.9:
		return entity.ConfidenceVeryHigh
	case score >= 0.7:
		return entity.ConfidenceHigh
	case score >= 0.4:
		return entity.ConfidenceMedium
	case score >= r.minScore:
		return entity.ConfidenceLow
	default:
		return entity.ConfidenceNone
	}
}

// distinctCanonical canonicaliza una sola vez cada valor crudo distinto.
func distinctCanonical(records []entity.InventoryRecord) []location.CanonicalResult {
	seen := make(map[string]bool, len(records))
	out := make([]location.CanonicalResult, 0, len(records))
	for i := range records {
		raw := records[i].RawLocation
		if raw == "" || seen[raw] {
			continue
		}
		seen[raw] = true
		out = append(out, location.Canonicalize(raw))
	}
	return out
}
