package entity

import "time"

// Tipos de regla soportados por el motor (registro cerrado: agregar uno implica
// agregar su evaluador en internal/domain/analysis y el switch correspondiente).
const (
	RuleTypeStagnantPallets          = "STAGNANT_PALLETS"
	RuleTypeUncoordinatedLots        = "UNCOORDINATED_LOTS"
	RuleTypeOvercapacity             = "OVERCAPACITY"
	RuleTypeInvalidLocation          = "INVALID_LOCATION"
	RuleTypeLocationSpecificStagnant = "LOCATION_SPECIFIC_STAGNANT"
	RuleTypeTemperatureMismatch      = "TEMPERATURE_ZONE_MISMATCH"
	RuleTypeDataIntegrity            = "DATA_INTEGRITY"
	// RuleTypeLocationTypeMismatch requiere una columna location_type en el feed
	// que casi ningún origen trae; deshabilitada por defecto.
	RuleTypeLocationTypeMismatch = "LOCATION_TYPE_MISMATCH"
)

// KnownRuleTypes lista los tipos válidos en orden estable (para validación y docs).
var KnownRuleTypes = []string{
	RuleTypeStagnantPallets,
	RuleTypeUncoordinatedLots,
	RuleTypeOvercapacity,
	RuleTypeInvalidLocation,
	RuleTypeLocationSpecificStagnant,
	RuleTypeTemperatureMismatch,
	RuleTypeDataIntegrity,
	RuleTypeLocationTypeMismatch,
}

// IsKnownRuleType indica si ruleType pertenece al registro cerrado.
func IsKnownRuleType(ruleType string) bool {
	for _, t := range KnownRuleTypes {
		if t == ruleType {
			return true
		}
	}
	return false
}

// Prioridades de anomalía.
const (
	PriorityCritical = "CRITICAL"
	PriorityHigh     = "HIGH"
	PriorityMedium   = "MEDIUM"
	PriorityLow      = "LOW"
)

// Niveles de precedencia (1 = más alta). Se usan para suprimir reportes
// redundantes cuando varias reglas señalarían la misma causa raíz.
const (
	PrecedenceIntegrity = 1
	PrecedenceLocation  = 2
	PrecedenceCapacity  = 3
	PrecedenceFlow      = 4
)

// ExclusionRule suprime los hallazgos de la regla portadora para una unidad que ya
// fue señalada con IfAnomalyType por una regla de precedencia ≤ MaxPrecedence.
// Ej.: Overcapacity con {INVALID_LOCATION, 2} no vuelve a reportar una unidad cuya
// ubicación ya se marcó como inexistente.
type ExclusionRule struct {
	IfAnomalyType string `json:"if_anomaly_type"`
	MaxPrecedence int    `json:"max_precedence"`
}

// RuleDefinition define una regla activa del motor. Propiedad del colaborador de
// configuración; el motor la trata como entrada inmutable por evaluación.
type RuleDefinition struct {
	ID              string
	CompanyID       string
	Name            string
	RuleType        string // ver constantes RuleType*
	Conditions      RuleConditions
	Priority        string // CRITICAL | HIGH | MEDIUM | LOW
	PrecedenceLevel int    // 1 = más alta … 4 = más baja
	Exclusions      []ExclusionRule
	IsActive        bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
