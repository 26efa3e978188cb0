package entity

import (
	"strings"
	"time"
)

// Clases de temperatura declarables por zona.
const (
	ClimateFrozen       = "FROZEN"
	ClimateRefrigerated = "REFRIGERATED"
	ClimateAmbient      = "AMBIENT"
)

// Modos de clasificación de ubicaciones de una plantilla.
const (
	FormatModePositional = "positional" // toda forma estándar es storage; solo las áreas declaradas son transitorias
	FormatModeZoned      = "zoned"      // prefijos de zona declarados deciden storage vs transitorio
)

// SpecialArea área nombrada no posicional (recepción, muelle, lane de staging, buffer).
// Su capacidad y tipo se declaran, no se derivan de la aritmética pasillo/rack/posición.
type SpecialArea struct {
	Code     string // código canónico del área, ej. "RECV-01"
	Type     string // RECEIVING | STAGING | DOCK | TRANSITIONAL
	Capacity int
	Zone     string
}

// LocationFormat describe una gramática de códigos distinta de la posicional por
// defecto (p. ej. códigos con prefijo de zona de negocio) y su confianza.
type LocationFormat struct {
	Mode              string   `json:"mode"`               // ver constantes FormatMode*
	StorageZones      []string `json:"storage_zones"`      // prefijos que clasifican como STORAGE (PICK, BULK…)
	TransitionalZones []string `json:"transitional_zones"` // prefijos transitorios (TRAN, FLOW…)
	Confidence        float64  `json:"confidence"`
}

// WarehouseTemplate describe el espacio direccionable de una bodega de forma compacta.
//
// Invariante: los límites dimensionales son la única fuente de verdad sobre qué
// códigos posicionales existen — ningún slot se materializa como fila. La validez
// de una ubicación es un chequeo aritmético O(1), no un lookup.
//
// De solo lectura para el motor; el catálogo la cachea por bodega durante una
// corrida y la invalida explícitamente al editarse.
type WarehouseTemplate struct {
	ID                string
	CompanyID         string
	Name              string
	NumAisles         int
	RacksPerAisle     int
	PositionsPerRack  int
	LevelsPerPosition int
	LevelNames        string            // letras de nivel válidas en orden, ej. "ABCD"
	DefaultCapacity   int               // capacidad por posición estándar
	SpecialAreas      []SpecialArea     // el orden declarado se conserva
	LocationFormat    *LocationFormat   // nil = posicional puro
	ZoneClimates      map[string]string // zona → FROZEN | REFRIGERATED | AMBIENT
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

const levelAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ValidLevels devuelve las letras de nivel válidas en orden: las declaradas en
// LevelNames o, en su defecto, las primeras LevelsPerPosition letras del alfabeto.
// Cadena vacía significa que la plantilla no restringe niveles.
func (t *WarehouseTemplate) ValidLevels() string {
	if t.LevelNames != "" {
		return strings.ToUpper(t.LevelNames)
	}
	if t.LevelsPerPosition > 0 && t.LevelsPerPosition <= len(levelAlphabet) {
		return levelAlphabet[:t.LevelsPerPosition]
	}
	return ""
}

// TotalPositions número de slots posicionales direccionables de la plantilla.
// Se CALCULA, nunca se enumera: es la propiedad que permite validar bodegas de
// cualquier tamaño en O(1) por consulta.
func (t *WarehouseTemplate) TotalPositions() int {
	levels := len(t.ValidLevels())
	if levels == 0 {
		levels = 1
	}
	return t.NumAisles * t.RacksPerAisle * t.PositionsPerRack * levels
}

// FindSpecialArea busca un área declarada por código (sin distinguir mayúsculas).
func (t *WarehouseTemplate) FindSpecialArea(code string) *SpecialArea {
	for i := range t.SpecialAreas {
		if strings.EqualFold(t.SpecialAreas[i].Code, code) {
			return &t.SpecialAreas[i]
		}
	}
	return nil
}
