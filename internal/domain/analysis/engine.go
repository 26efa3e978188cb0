package analysis

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/location"
)

// Engine orquesta el registro de evaluadores sobre un snapshot normalizado y
// fusiona sus salidas bajo las reglas de precedencia y exclusión. Un Engine es
// inmutable tras construirse y seguro para usar desde varias corridas a la vez:
// todo el estado mutable de una corrida vive en su RunCache.
type Engine struct {
	registry map[string]Evaluator
	patterns *PatternResolver
	workers  int
	now      func() time.Time
}

// Option configura un Engine.
type Option func(*Engine)

// WithWorkers acota el paralelismo de canonicalización y evaluación de reglas.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// WithClock fija el reloj de la corrida (para pruebas deterministas).
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine crea el motor con el registro completo de evaluadores y paralelismo
// acotado por el número de CPUs.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		registry: defaultRegistry(),
		patterns: NewPatternResolver(),
		workers:  runtime.NumCPU(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.workers < 1 {
		e.workers = 1
	}
	return e
}

// Result salida completa de una corrida del motor.
type Result struct {
	Anomalies  []entity.AnomalyRecord
	Executions []entity.RuleExecution
}

// Run normaliza el snapshot, evalúa todas las reglas activas contra la plantilla
// resuelta (puede ser nil con confianza NONE) y devuelve la lista fusionada.
//
// La corrida es cancelable cooperativamente ENTRE evaluadores: si ctx se cancela,
// las reglas pendientes se registran como fallidas, se devuelven los resultados
// parciales y el error del contexto. Una regla que falla nunca detiene a las
// demás; su error queda capturado en su RuleExecution.
//
// El orden de salida es estable: anomalías por (precedencia, unit_id, tipo) y
// ejecuciones en el orden de entrada de las reglas, de modo que dos corridas con
// las mismas entradas producen resultados idénticos byte a byte.
func (e *Engine) Run(ctx context.Context, records []entity.InventoryRecord, rules []entity.RuleDefinition, template *entity.WarehouseTemplate) (*Result, error) {
	if len(records) == 0 {
		return nil, domain.ErrEmptySnapshot
	}

	cache := NewRunCache(template)
	e.normalize(records, cache)
	run := &RunContext{Now: e.now(), Cache: cache, Patterns: e.patterns}

	active := make([]entity.RuleDefinition, 0, len(rules))
	for _, r := range rules {
		if !r.IsActive {
			continue
		}
		if r.PrecedenceLevel == 0 {
			r.PrecedenceLevel = DefaultPrecedence(r.RuleType)
		}
		active = append(active, r)
	}

	type outcome struct {
		anomalies []entity.AnomalyRecord
		exec      entity.RuleExecution
	}
	outcomes := make([]outcome, len(active))

	// Cada regla es independiente hasta el merge; se reparten entre workers y
	// la cancelación se chequea antes de arrancar cada una.
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rule := &active[idx]
				exec := entity.RuleExecution{RuleID: rule.ID, RuleType: rule.RuleType}

				if err := ctx.Err(); err != nil {
					exec.ErrorMessage = fmt.Sprintf("corrida cancelada: %v", err)
					outcomes[idx] = outcome{exec: exec}
					continue
				}

				start := time.Now()
				anomalies, err := e.evaluateRule(rule, records, run)
				exec.Duration = time.Since(start)
				if err != nil {
					exec.ErrorMessage = err.Error()
				} else {
					exec.Success = true
					exec.AnomalyCount = len(anomalies)
				}
				outcomes[idx] = outcome{anomalies: anomalies, exec: exec}
			}
		}()
	}
	for idx := range active {
		jobs <- idx
	}
	close(jobs)
	wg.Wait()

	result := &Result{Executions: make([]entity.RuleExecution, len(active))}
	var merged []entity.AnomalyRecord
	for idx, oc := range outcomes {
		result.Executions[idx] = oc.exec
		merged = append(merged, oc.anomalies...)
	}

	merged = applyExclusions(merged, active)
	sortAnomalies(merged)
	result.Anomalies = merged

	return result, ctx.Err()
}

// evaluateRule resuelve el evaluador del registro cerrado y lo ejecuta.
func (e *Engine) evaluateRule(rule *entity.RuleDefinition, records []entity.InventoryRecord, run *RunContext) ([]entity.AnomalyRecord, error) {
	ev, ok := e.registry[rule.RuleType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRuleType, rule.RuleType)
	}
	return ev.Evaluate(rule, records, run)
}

// normalize enriquece los registros en una única pasada: canonicaliza cada valor
// crudo distinto una sola vez (en paralelo, la función es pura) y deriva tipo y
// zona contra la plantilla. Después de esto los registros son de solo lectura.
func (e *Engine) normalize(records []entity.InventoryRecord, cache *RunCache) {
	seen := make(map[string]bool, len(records))
	distinct := make([]string, 0, len(records))
	for i := range records {
		raw := records[i].RawLocation
		if !seen[raw] {
			seen[raw] = true
			distinct = append(distinct, raw)
		}
	}

	results := make([]location.CanonicalResult, len(distinct))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i] = location.Canonicalize(distinct[i])
			}
		}()
	}
	for i := range distinct {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	byRaw := make(map[string]location.CanonicalResult, len(distinct))
	for i, raw := range distinct {
		byRaw[raw] = results[i]
	}

	for i := range records {
		res := byRaw[records[i].RawLocation]
		records[i].CanonicalLocation = res.Value
		records[i].LocationKind = res.Kind
		if props := cache.Properties(res); props.Exists {
			records[i].LocationType = props.Type
			records[i].LocationZone = props.Zone
		}
	}
}

// DefaultPrecedence precedencia por defecto de cada tipo de regla cuando la
// definición no declara una.
func DefaultPrecedence(ruleType string) int {
	switch ruleType {
	case entity.RuleTypeDataIntegrity:
		return entity.PrecedenceIntegrity
	case entity.RuleTypeInvalidLocation, entity.RuleTypeLocationTypeMismatch:
		return entity.PrecedenceLocation
	case entity.RuleTypeOvercapacity, entity.RuleTypeTemperatureMismatch:
		return entity.PrecedenceCapacity
	default:
		return entity.PrecedenceFlow
	}
}

// applyExclusions filtra los hallazgos de reglas con exclusiones declaradas:
// una anomalía se suprime si la MISMA unidad en la MISMA ubicación ya fue
// señalada con el tipo excluido por una regla de precedencia suficiente. Las
// exclusiones se deciden contra el conjunto completo previo al filtrado, de
// modo que el resultado no depende del orden en que terminaron los evaluadores.
func applyExclusions(anomalies []entity.AnomalyRecord, rules []entity.RuleDefinition) []entity.AnomalyRecord {
	exclusionsByRule := make(map[string][]entity.ExclusionRule, len(rules))
	hasExclusions := false
	for i := range rules {
		if len(rules[i].Exclusions) > 0 {
			exclusionsByRule[rules[i].ID] = rules[i].Exclusions
			hasExclusions = true
		}
	}
	if !hasExclusions {
		return anomalies
	}

	type unitKey struct {
		unit string
		loc  string
	}
	byKey := make(map[unitKey][]int, len(anomalies))
	for i := range anomalies {
		k := unitKey{anomalies[i].UnitID, anomalies[i].CanonicalLocation}
		byKey[k] = append(byKey[k], i)
	}

	// Nunca filtrar in situ: los chequeos de pares leen el conjunto completo.
	out := make([]entity.AnomalyRecord, 0, len(anomalies))
	for i := range anomalies {
		a := &anomalies[i]
		if !excluded(a, i, exclusionsByRule[a.RuleID], byKey[unitKey{a.UnitID, a.CanonicalLocation}], anomalies) {
			out = append(out, *a)
		}
	}
	return out
}

func excluded(a *entity.AnomalyRecord, self int, exclusions []entity.ExclusionRule, peers []int, all []entity.AnomalyRecord) bool {
	for _, excl := range exclusions {
		for _, j := range peers {
			if j == self {
				continue
			}
			other := &all[j]
			if other.AnomalyType == excl.IfAnomalyType && other.PrecedenceLevel <= excl.MaxPrecedence {
				return true
			}
		}
	}
	return false
}

// sortAnomalies orden estable de salida: precedencia, unidad, tipo de anomalía.
func sortAnomalies(anomalies []entity.AnomalyRecord) {
	sort.SliceStable(anomalies, func(i, j int) bool {
		if anomalies[i].PrecedenceLevel != anomalies[j].PrecedenceLevel {
			return anomalies[i].PrecedenceLevel < anomalies[j].PrecedenceLevel
		}
		if anomalies[i].UnitID != anomalies[j].UnitID {
			return anomalies[i].UnitID < anomalies[j].UnitID
		}
		return anomalies[i].AnomalyType < anomalies[j].AnomalyType
	})
}
