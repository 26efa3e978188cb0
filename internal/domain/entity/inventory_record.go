package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de ubicación que resuelve el modelo virtual de ubicaciones.
const (
	LocationTypeStorage      = "STORAGE"      // posición de almacenamiento final
	LocationTypeReceiving    = "RECEIVING"    // área de recepción
	LocationTypeStaging      = "STAGING"      // lane de preparación
	LocationTypeDock         = "DOCK"         // muelle
	LocationTypeTransitional = "TRANSITIONAL" // buffer / tránsito interno
)

// Resultados posibles del canonicalizador para una ubicación cruda.
const (
	LocationKindStandard    = "STANDARD"    // forma posicional AA-RR-PPPL
	LocationKindSpecial     = "SPECIAL"     // área nombrada (RECV-01, DOCK…)
	LocationKindUnparseable = "UNPARSEABLE" // ningún parser la reconoció
)

// InventoryRecord representa una unidad física (estiba/pallet) de un snapshot de inventario.
// Se construye una vez por lote, se enriquece en una única pasada de normalización
// (CanonicalLocation, LocationKind, LocationType, LocationZone) y no se muta después
// de que inicia la evaluación de reglas. No conserva identidad entre corridas.
type InventoryRecord struct {
	UnitID      string // NO garantiza unicidad: los duplicados son señal de anomalía
	RawLocation string // código de ubicación tal como llegó (puede ser vacío)
	LotID       string // agrupador de lote/recepción; las unidades de un lote se mueven juntas
	CreatedAt   time.Time
	Description string          // texto libre; se usa para inferir clase de temperatura
	Quantity    decimal.Decimal // opcional (cero si el feed no la trae)
	Weight      decimal.Decimal // opcional

	// DeclaredLocationType columna opcional del feed con el tipo de ubicación según
	// el sistema origen. Solo la consume la regla LOCATION_TYPE_MISMATCH (deshabilitada
	// por defecto); la resolución automática es la autoridad.
	DeclaredLocationType string

	// Campos derivados en la pasada de normalización.
	CanonicalLocation string
	LocationKind      string // ver constantes LocationKind*
	LocationType      string // ver constantes LocationType* (vacío si no existe)
	LocationZone      string
}

// AgeAt devuelve la antigüedad de la unidad respecto a un instante de referencia.
func (r *InventoryRecord) AgeAt(now time.Time) time.Duration {
	return now.Sub(r.CreatedAt)
}
