package entity

import "time"

// Tipos de anomalía que producen los evaluadores.
const (
	AnomalyStagnantPallet      = "STAGNANT_PALLET"
	AnomalyLotStraggler        = "LOT_STRAGGLER"
	AnomalyOvercapacity        = "OVERCAPACITY"
	AnomalyInvalidLocation     = "INVALID_LOCATION"
	AnomalyTransitStagnant     = "TRANSIT_STAGNANT"
	AnomalyTemperatureMismatch = "TEMPERATURE_MISMATCH"
	AnomalyDataIntegrity       = "DATA_INTEGRITY"
	AnomalyTypeMismatch        = "LOCATION_TYPE_MISMATCH"
)

// Razones de evidencia de la regla DATA_INTEGRITY (clave "reason").
const (
	IntegrityReasonDuplicate   = "duplicate_unit_id"
	IntegrityReasonUnparseable = "unparseable_location"
	IntegrityReasonTooLong     = "location_too_long"
)

// AnomalyRecord hallazgo de una regla para una unidad. Solo salida: el motor no le
// asigna identidad entre corridas (el caller diffea contra su histórico si lo necesita).
type AnomalyRecord struct {
	UnitID            string
	CanonicalLocation string
	AnomalyType       string // ver constantes Anomaly*
	Priority          string // CRITICAL | HIGH | MEDIUM | LOW
	RuleID            string
	PrecedenceLevel   int // copiado de la regla; lo usan exclusiones y orden de merge
	Description       string
	Evidence          map[string]string // pares clave/valor de soporte (serializa con claves ordenadas)
}

// RuleExecution metadatos de ejecución de una regla: datos estructurados para que
// el caller decida cómo exponerlos (el motor no depende de logging ni métricas).
type RuleExecution struct {
	RuleID       string
	RuleType     string
	Success      bool
	AnomalyCount int
	Duration     time.Duration
	ErrorMessage string // vacío si Success
}
