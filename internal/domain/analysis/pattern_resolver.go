package analysis

import (
	"regexp"
	"strings"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// Orígenes posibles de un PatternSet. El origen viaja en el resultado para que
// evaluadores y operadores distingan una resolución confiada de una adivinada;
// el fallback nunca es silencioso.
const (
	PatternSourceTemplate = "template_config"
	PatternSourceFallback = "default_fallback"
)

// Patrón de la forma canónica posicional AA-RR-PPPL.
var standardFormPattern = regexp.MustCompile(`^\d{2}-\d{2}-\d{3}[A-Z]$`)

// PatternSet patrones compilados que clasifican un código canónico como
// almacenamiento o transitorio para una bodega concreta.
type PatternSet struct {
	Storage      []*regexp.Regexp
	Transitional []*regexp.Regexp
	Source       string
	Confidence   float64
}

// IsStorage indica si el código coincide con algún patrón de almacenamiento.
func (p *PatternSet) IsStorage(code string) bool {
	return matchAny(p.Storage, code)
}

// IsTransitional indica si el código coincide con algún patrón transitorio.
func (p *PatternSet) IsTransitional(code string) bool {
	return matchAny(p.Transitional, code)
}

func matchAny(patterns []*regexp.Regexp, code string) bool {
	for _, re := range patterns {
		if re.MatchString(code) {
			return true
		}
	}
	return false
}

// PatternResolver deriva los patrones de clasificación de una plantilla.
// No cachea por sí mismo; la RunCache memoriza por (bodega, tipo de regla)
// durante una corrida.
type PatternResolver struct{}

// NewPatternResolver crea un resolver de patrones.
func NewPatternResolver() *PatternResolver {
	return &PatternResolver{}
}

// Derive construye el PatternSet de la plantilla según su modo declarado.
//
// Modo zoned: los prefijos de zona declarados deciden storage vs transitorio,
// además de la forma posicional estándar. Modo positional (o formato declarado
// sin modo zoned): toda forma estándar es storage y solo las áreas declaradas
// de tipo transitorio clasifican como transitorias. Sin formato declarado se
// cae a un conjunto conservador (todas las áreas especiales transitorias, el
// resto storage) etiquetado PatternSourceFallback.
func (r *PatternResolver) Derive(t *entity.WarehouseTemplate) *PatternSet {
	if t == nil {
		return &PatternSet{
			Storage:    []*regexp.Regexp{standardFormPattern},
			Source:     PatternSourceFallback,
			Confidence: 0,
		}
	}

	if f := t.LocationFormat; f != nil {
		set := &PatternSet{
			Storage:    []*regexp.Regexp{standardFormPattern},
			Source:     PatternSourceTemplate,
			Confidence: f.Confidence,
		}
		if f.Mode == entity.FormatModeZoned {
			for _, zone := range f.StorageZones {
				set.Storage = append(set.Storage, zonePattern(zone))
			}
			for _, zone := range f.TransitionalZones {
				set.Transitional = append(set.Transitional, zonePattern(zone))
			}
		}
		set.Transitional = append(set.Transitional, transitionalAreaPatterns(t)...)
		return set
	}

	// Fallback conservador: sin configuración de formato, toda área especial
	// declarada se trata como transitoria.
	set := &PatternSet{
		Storage:    []*regexp.Regexp{standardFormPattern},
		Source:     PatternSourceFallback,
		Confidence: 0.5,
	}
	for i := range t.SpecialAreas {
		set.Transitional = append(set.Transitional, areaPattern(t.SpecialAreas[i].Code))
	}
	return set
}

// transitionalAreaPatterns patrones de las áreas declaradas cuyo tipo no es de
// almacenamiento final.
func transitionalAreaPatterns(t *entity.WarehouseTemplate) []*regexp.Regexp {
	var out []*regexp.Regexp
	for i := range t.SpecialAreas {
		switch t.SpecialAreas[i].Type {
		case entity.LocationTypeReceiving, entity.LocationTypeStaging,
			entity.LocationTypeDock, entity.LocationTypeTransitional:
			out = append(out, areaPattern(t.SpecialAreas[i].Code))
		}
	}
	return out
}

var numberedSuffix = regexp.MustCompile(`-\d+$`)

// areaPattern patrón exacto de un área; un código sin sufijo numérico cubre
// también sus variantes numeradas (declarar STAGE cubre STAGE-1…STAGE-NN).
// Los códigos canónicos siempre van en mayúsculas.
func areaPattern(code string) *regexp.Regexp {
	quoted := regexp.QuoteMeta(strings.ToUpper(code))
	if !numberedSuffix.MatchString(code) {
		return regexp.MustCompile(`^` + quoted + `(-\d{1,3})?$`)
	}
	return regexp.MustCompile(`^` + quoted + `$`)
}

func zonePattern(zone string) *regexp.Regexp {
	return regexp.MustCompile(`^` + regexp.QuoteMeta(strings.ToUpper(zone)) + `-\d{1,3}$`)
}
