// Package location implementa el núcleo de inteligencia de ubicaciones:
// el canonicalizador de códigos y el modelo virtual de ubicaciones.
//
// Grafías soportadas por el canonicalizador (cadena ordenada, gana el primer
// parser que consume la cadena COMPLETA):
//
//	1. Área especial      RECV-01, DOCK, STAGE-2     → SPECIAL "RECV-01"
//	2. Estándar           2-1-15B, 02-01-015-B       → STANDARD "02-01-015B"
//	3. Compacta           2A15B  (pasillo 2, rack A=1, posición 15, nivel B)
//	4. Variantes de uso   2/1/15B, 2.1.15.B, 2 1 15 B, A2R1P15B, 015B-01-02
//	5. Nada coincide      → UNPARSEABLE (nunca error)
//
// La forma canónica posicional es AA-RR-PPPL: pasillo y rack a dos dígitos,
// posición a tres y letra de nivel en mayúscula. Canonicalizar una forma ya
// canónica la devuelve sin cambios (idempotencia).
package location

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// CanonicalResult salida del canonicalizador para una ubicación cruda.
type CanonicalResult struct {
	Kind  string // entity.LocationKindStandard | LocationKindSpecial | LocationKindUnparseable
	Value string // forma canónica (vacía si UNPARSEABLE)
}

// Prefijos de área conocidos que se aceptan como código especial sin numerar
// (un "DOCK" a secas es un área válida; un "XYZ" a secas no es nada).
var knownAreaNames = map[string]bool{
	"RECV": true, "RECEIVING": true, "RECEPCION": true,
	"STAGE": true, "STAGING": true,
	"DOCK": true, "MUELLE": true,
	"AISLE": true, "TRAN": true, "TRANSIT": true, "FLOW": true,
	"PICK": true, "BULK": true,
	"BUFFER": true, "QC": true, "RETURNS": true, "DEVOLUCIONES": true,
}

var (
	// Forma especial numerada: 2–8 letras, guion, 1–3 dígitos (RECV-01, AISLE-02, PICK-3).
	reSpecial = regexp.MustCompile(`^([A-Z]{2,8})-(\d{1,3})$`)
	// Forma estándar con guion opcional antes del nivel: 02-01-015B, 2-1-15-B.
	reStandard = regexp.MustCompile(`^(\d{1,2})-(\d{1,2})-(\d{1,3})-?([A-Z])$`)
	// Forma compacta: dígitos de pasillo, letra de rack (A=1…Z=26), dígitos de posición, letra de nivel.
	reCompact = regexp.MustCompile(`^(\d{1,2})([A-Z])(\d{1,3})([A-Z])$`)
	// Variante de separadores: / . o espacio entre los mismos grupos de la forma estándar.
	reSeparated = regexp.MustCompile(`^(\d{1,2})[/. ](\d{1,2})[/. ](\d{1,3})[/. ]?([A-Z])$`)
	// Variante etiquetada: A2R1P15B (Aisle/Rack/Position con letras de campo).
	reTagged = regexp.MustCompile(`^A(\d{1,2})R(\d{1,2})P(\d{1,3})([A-Z])$`)
	// Variante posición-primero: 015B-01-02 (posición+nivel, rack, pasillo).
	rePositionFirst = regexp.MustCompile(`^(\d{3})([A-Z])-(\d{1,2})-(\d{1,2})$`)
	// Forma canónica estricta (sin guion antes del nivel); se usa para re-validar.
	reCanonical = regexp.MustCompile(`^(\d{2})-(\d{2})-(\d{3})([A-Z])$`)
)

// Canonicalize convierte cualquier grafía soportada de un código de ubicación en su
// forma canónica. Es una función pura, total, determinista e idempotente: toda
// entrada produce un resultado (SPECIAL, STANDARD o UNPARSEABLE), nunca un pánico.
// Las cadenas sub-especificadas (ej. "5") se rechazan en vez de adivinarse.
func Canonicalize(raw string) CanonicalResult {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return CanonicalResult{Kind: entity.LocationKindUnparseable}
	}

	// 1. Área especial: siempre gana sobre el parseo posicional.
	if m := reSpecial.FindStringSubmatch(s); m != nil {
		return CanonicalResult{Kind: entity.LocationKindSpecial, Value: s}
	}
	if knownAreaNames[s] {
		return CanonicalResult{Kind: entity.LocationKindSpecial, Value: s}
	}

	// 2. Forma estándar (incluye la canónica: idempotencia).
	if m := reStandard.FindStringSubmatch(s); m != nil {
		return standardResult(m[1], m[2], m[3], m[4])
	}

	// 3. Forma compacta: la letra intermedia es el rack (A=1…Z=26).
	if m := reCompact.FindStringSubmatch(s); m != nil {
		rack := int(m[2][0]-'A') + 1
		return standardResult(m[1], strconv.Itoa(rack), m[3], m[4])
	}

	// 4. Variantes de uso común: solo si consumen la cadena completa.
	if m := reSeparated.FindStringSubmatch(s); m != nil {
		return standardResult(m[1], m[2], m[3], m[4])
	}
	if m := reTagged.FindStringSubmatch(s); m != nil {
		return standardResult(m[1], m[2], m[3], m[4])
	}
	if m := rePositionFirst.FindStringSubmatch(s); m != nil {
		// grupos: posición, nivel, rack, pasillo
		return standardResult(m[4], m[3], m[1], m[2])
	}

	return CanonicalResult{Kind: entity.LocationKindUnparseable}
}

// standardResult arma la forma canónica AA-RR-PPPL con cero-padding.
func standardResult(aisle, rack, position, level string) CanonicalResult {
	a, _ := strconv.Atoi(aisle)
	r, _ := strconv.Atoi(rack)
	p, _ := strconv.Atoi(position)
	return CanonicalResult{
		Kind:  entity.LocationKindStandard,
		Value: fmt.Sprintf("%02d-%02d-%03d%s", a, r, p, level),
	}
}

// ParseCanonical descompone una forma canónica estricta AA-RR-PPPL en sus campos.
// ok=false si la cadena no tiene exactamente esa forma.
func ParseCanonical(canonical string) (aisle, rack, position int, level string, ok bool) {
	m := reCanonical.FindStringSubmatch(canonical)
	if m == nil {
		return 0, 0, 0, "", false
	}
	aisle, _ = strconv.Atoi(m[1])
	rack, _ = strconv.Atoi(m[2])
	position, _ = strconv.Atoi(m[3])
	return aisle, rack, position, m[4], true
}

// SpecialPrefix devuelve el prefijo de un código especial numerado ("PICK-03" → "PICK").
// Para códigos sin número devuelve el código completo.
func SpecialPrefix(code string) string {
	if i := strings.IndexByte(code, '-'); i > 0 {
		return code[:i]
	}
	return code
}
