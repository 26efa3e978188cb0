package analysis

import (
	"time"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// RunContext estado de solo lectura compartido por los evaluadores de una corrida.
type RunContext struct {
	Now      time.Time
	Cache    *RunCache
	Patterns *PatternResolver
}

// Evaluator contrato común de los detectores de anomalías. Un evaluador nunca
// aborta por una fila mala (la omite y continúa), pero sí puede fallar la regla
// completa con un error cuando le falta una entrada obligatoria (p. ej. contexto
// de bodega). El motor captura ese error como RuleExecution fallida y las demás
// reglas siguen corriendo.
type Evaluator interface {
	RuleType() string
	Evaluate(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error)
}

// defaultRegistry registro cerrado de evaluadores: un evaluador por tipo de
// regla conocido. Agregar un tipo nuevo es un cambio verificado en compilación
// (constante en entity, evaluador aquí), no un lookup dinámico extensible.
func defaultRegistry() map[string]Evaluator {
	evaluators := []Evaluator{
		NewStagnantPalletsEvaluator(),
		NewUncoordinatedLotsEvaluator(),
		NewOvercapacityEvaluator(),
		NewInvalidLocationEvaluator(),
		NewLocationSpecificStagnantEvaluator(),
		NewTemperatureMismatchEvaluator(),
		NewDataIntegrityEvaluator(),
		NewLocationTypeMismatchEvaluator(),
	}
	registry := make(map[string]Evaluator, len(evaluators))
	for _, ev := range evaluators {
		registry[ev.RuleType()] = ev
	}
	return registry
}

// rulePriority prioridad de los hallazgos: la declarada en la regla o el valor
// por defecto del evaluador.
func rulePriority(rule *entity.RuleDefinition, def string) string {
	if rule.Priority != "" {
		return rule.Priority
	}
	return def
}

// displayLocation ubicación presentable de un registro: la canónica o, si no la
// hay (no interpretable), el valor crudo tal como llegó.
func displayLocation(r *entity.InventoryRecord) string {
	if r.CanonicalLocation != "" {
		return r.CanonicalLocation
	}
	return r.RawLocation
}
