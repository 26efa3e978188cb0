package location

import (
	"fmt"
	"strings"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// Properties propiedades derivadas de una ubicación contra una plantilla de bodega.
// Si Exists es false, Reason nombra el campo que viola los límites declarados.
type Properties struct {
	Exists   bool
	Type     string // LocationType* (vacío si no existe)
	Zone     string
	Capacity int
	Reason   string
}

// Resolve deriva las propiedades de un resultado canónico contra la plantilla.
// Ninguna ubicación se materializa: la existencia de un código posicional es un
// chequeo aritmético contra los límites dimensionales, y la de un código especial
// un lookup contra las áreas y zonas declaradas. Determinista y sin efectos.
func Resolve(t *entity.WarehouseTemplate, res CanonicalResult) Properties {
	if t == nil {
		return Properties{Reason: "sin plantilla de bodega resuelta"}
	}
	switch res.Kind {
	case entity.LocationKindSpecial:
		return resolveSpecial(t, res.Value)
	case entity.LocationKindStandard:
		return resolveStandard(t, res.Value)
	default:
		return Properties{Reason: "ubicación no interpretable"}
	}
}

// ResolveCode canonicaliza y resuelve en un paso.
func ResolveCode(t *entity.WarehouseTemplate, raw string) Properties {
	return Resolve(t, Canonicalize(raw))
}

func resolveSpecial(t *entity.WarehouseTemplate, code string) Properties {
	// 1. Área declarada con código exacto ("RECV-01").
	if area := t.FindSpecialArea(code); area != nil {
		return specialProps(t, area)
	}

	// 2. Área declarada por prefijo: declarar "RECV" cubre RECV-01…RECV-NN.
	prefix := SpecialPrefix(code)
	if prefix != code {
		if area := t.FindSpecialArea(prefix); area != nil {
			return specialProps(t, area)
		}
	}

	// 3. Prefijos de zona del formato declarado (modo zoned).
	if f := t.LocationFormat; f != nil && f.Mode == entity.FormatModeZoned {
		if containsFold(f.StorageZones, prefix) {
			return Properties{Exists: true, Type: entity.LocationTypeStorage, Zone: prefix, Capacity: t.DefaultCapacity}
		}
		if containsFold(f.TransitionalZones, prefix) {
			return Properties{Exists: true, Type: entity.LocationTypeTransitional, Zone: prefix, Capacity: t.DefaultCapacity}
		}
	}

	return Properties{Reason: fmt.Sprintf("área %q no declarada en la plantilla", code)}
}

func resolveStandard(t *entity.WarehouseTemplate, canonical string) Properties {
	aisle, rack, position, level, ok := ParseCanonical(canonical)
	if !ok {
		return Properties{Reason: "código estándar malformado"}
	}

	if aisle < 1 || aisle > t.NumAisles {
		return Properties{Reason: fmt.Sprintf("pasillo %d excede el máximo %d de la plantilla", aisle, t.NumAisles)}
	}
	if rack < 1 || rack > t.RacksPerAisle {
		return Properties{Reason: fmt.Sprintf("rack %d excede el máximo %d de la plantilla", rack, t.RacksPerAisle)}
	}
	if position < 1 || position > t.PositionsPerRack {
		return Properties{Reason: fmt.Sprintf("posición %d excede el máximo %d de la plantilla", position, t.PositionsPerRack)}
	}
	if levels := t.ValidLevels(); levels != "" && !strings.Contains(levels, level) {
		return Properties{Reason: fmt.Sprintf("nivel %s no está entre los niveles válidos (%s)", level, levels)}
	}

	return Properties{Exists: true, Type: entity.LocationTypeStorage, Capacity: t.DefaultCapacity}
}

func specialProps(t *entity.WarehouseTemplate, area *entity.SpecialArea) Properties {
	capacity := area.Capacity
	if capacity <= 0 {
		capacity = t.DefaultCapacity
	}
	return Properties{Exists: true, Type: area.Type, Zone: area.Zone, Capacity: capacity}
}

func containsFold(values []string, s string) bool {
	for _, v := range values {
		if strings.EqualFold(v, s) {
			return true
		}
	}
	return false
}
