// seed_templates genera un script SQL de demo a partir de un export de layout
// de un WMS legacy (Layout.xml, ISO-8859-1): plantillas de bodega con sus áreas
// especiales, más el set de reglas de detección por defecto de la empresa.
//
// Uso: go run ./cmd/seed_templates [ruta/Layout.xml] [NIT de la empresa]
// Por defecto busca Layout.xml en el directorio actual y usa el NIT de demo.
// Escribe: internal/infrastructure/postgres/migrations/005_seed_demo.sql
package main

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

type layout struct {
	Bodegas []bodega `xml:"bodega"`
}

type bodega struct {
	Nombre     string   `xml:"nombre,attr"`
	Pasillos   int      `xml:"pasillos,attr"`
	Estantes   int      `xml:"estantes,attr"`
	Posiciones int      `xml:"posiciones,attr"`
	Niveles    string   `xml:"niveles,attr"`
	Capacidad  int      `xml:"capacidad,attr"`
	Areas      []area   `xml:"area"`
	Climas     []clima  `xml:"clima"`
	Formato    *formato `xml:"formato"`
}

type area struct {
	Codigo    string `xml:"codigo,attr"`
	Tipo      string `xml:"tipo,attr"`
	Capacidad int    `xml:"capacidad,attr"`
	Zona      string `xml:"zona,attr"`
}

type clima struct {
	Zona string `xml:"zona,attr"`
	Tipo string `xml:"tipo,attr"`
}

type formato struct {
	Modo           string  `xml:"modo,attr"`
	Almacenamiento string  `xml:"almacenamiento,attr"` // prefijos separados por coma
	Transito       string  `xml:"transito,attr"`
	Confianza      float64 `xml:"confianza,attr"`
}

// Reglas por defecto que se siembran para la empresa. LOCATION_TYPE_MISMATCH
// arranca apagada: depende de una columna opcional del origen y genera ruido
// si el WMS no la exporta.
var defaultRules = []struct {
	name       string
	ruleType   string
	conditions map[string]any
	active     bool
}{
	{"Integridad de datos", entity.RuleTypeDataIntegrity, map[string]any{}, true},
	{"Ubicaciones inválidas", entity.RuleTypeInvalidLocation, map[string]any{}, true},
	{"Sobrecupo", entity.RuleTypeOvercapacity, map[string]any{"mode": analysis.OvercapacityModeDifferentiated, "use_statistical": true, "significance_ratio": 0.5}, true},
	{"Pallets estancados", entity.RuleTypeStagnantPallets, map[string]any{"threshold_hours": 72}, true},
	{"Tránsito estancado", entity.RuleTypeLocationSpecificStagnant, map[string]any{"threshold_hours": 24}, true},
	{"Lotes descoordinados", entity.RuleTypeUncoordinatedLots, map[string]any{"completion_ratio": 0.8, "min_lot_size": 4}, true},
	{"Zona de temperatura equivocada", entity.RuleTypeTemperatureMismatch, map[string]any{}, true},
	{"Tipo de ubicación inconsistente", entity.RuleTypeLocationTypeMismatch, map[string]any{}, false},
}

func main() {
	xmlPath := "Layout.xml"
	nit := "900123456-8"
	if len(os.Args) > 1 {
		xmlPath = os.Args[1]
	}
	if len(os.Args) > 2 {
		nit = os.Args[2]
	}

	f, err := os.Open(xmlPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Abrir XML: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	var lay layout
	dec := xml.NewDecoder(f)
	dec.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		if strings.EqualFold(charset, "ISO-8859-1") || strings.EqualFold(charset, "ISO8859-1") {
			return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
		}
		return input, nil
	}
	if err := dec.Decode(&lay); err != nil {
		fmt.Fprintf(os.Stderr, "Decodificar XML: %v\n", err)
		os.Exit(1)
	}

	moduleRoot := findModuleRoot()
	outPath := filepath.Join(moduleRoot, "internal", "infrastructure", "postgres", "migrations", "005_seed_demo.sql")
	out, err := os.Create(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Crear archivo: %v\n", err)
		os.Exit(1)
	}
	defer out.Close()

	out.WriteString("-- Plantillas de bodega y reglas de detección por defecto (demo)\n")
	fmt.Fprintf(out, "-- Generado desde %s para la empresa NIT %s\n\n", filepath.Base(xmlPath), nit)

	nareas := 0
	out.WriteString("-- 1. Plantillas de bodega\n")
	for _, b := range lay.Bodegas {
		id := uuid.New().String()
		name := escapeSQL(strings.TrimSpace(b.Nombre))

		// Re-ejecutar el script reemplaza la plantilla homónima (las áreas caen por cascade).
		fmt.Fprintf(out, "DELETE FROM warehouse_templates WHERE name = '%s' AND company_id = (SELECT id FROM companies WHERE nit = '%s');\n", name, nit)

		levels := strings.ToUpper(strings.TrimSpace(b.Niveles))
		levelsPer := len(levels)
		if levelsPer == 0 {
			levelsPer = 1
		}
		capacity := b.Capacidad
		if capacity < 1 {
			capacity = 1
		}

		out.WriteString("INSERT INTO warehouse_templates (id, company_id, name, num_aisles, racks_per_aisle, positions_per_rack, levels_per_position, level_names, default_capacity, location_format, zone_climates, created_at, updated_at)\n")
		fmt.Fprintf(out, "SELECT '%s', id, '%s', %d, %d, %d, %d, '%s', %d, %s, %s, NOW(), NOW() FROM companies WHERE nit = '%s';\n",
			id, name, b.Pasillos, b.Estantes, b.Posiciones, levelsPer, levels, capacity,
			jsonbOrNull(formatJSON(b.Formato)), jsonbOrNull(climatesJSON(b.Climas)), nit)

		for i, a := range b.Areas {
			fmt.Fprintf(out, "INSERT INTO warehouse_special_areas (template_id, ordinal, code, type, capacity, zone) VALUES ('%s', %d, '%s', '%s', %d, '%s');\n",
				id, i,
				escapeSQL(strings.ToUpper(strings.TrimSpace(a.Codigo))),
				escapeSQL(strings.ToUpper(strings.TrimSpace(a.Tipo))),
				a.Capacidad,
				escapeSQL(strings.TrimSpace(a.Zona)))
			nareas++
		}
		out.WriteString("\n")
	}

	out.WriteString("-- 2. Reglas de detección por defecto\n")
	for _, r := range defaultRules {
		name := escapeSQL(r.name)
		fmt.Fprintf(out, "DELETE FROM rule_definitions WHERE name = '%s' AND company_id = (SELECT id FROM companies WHERE nit = '%s');\n", name, nit)
		conds, _ := json.Marshal(r.conditions)
		out.WriteString("INSERT INTO rule_definitions (id, company_id, name, rule_type, is_active, precedence_level, conditions, exclusions, created_at, updated_at)\n")
		fmt.Fprintf(out, "SELECT '%s', id, '%s', '%s', %t, %d, '%s'::jsonb, NULL, NOW(), NOW() FROM companies WHERE nit = '%s';\n",
			uuid.New().String(), name, r.ruleType, r.active, analysis.DefaultPrecedence(r.ruleType), escapeSQL(string(conds)), nit)
	}

	fmt.Printf("Generado %s: %d plantillas, %d áreas, %d reglas\n", outPath, len(lay.Bodegas), nareas, len(defaultRules))
}

// formatJSON serializa el formato de ubicaciones del layout al JSON de la
// columna location_format, o devuelve "" si la bodega es posicional pura.
func formatJSON(f *formato) string {
	if f == nil {
		return ""
	}
	mode := strings.ToLower(strings.TrimSpace(f.Modo))
	if mode == "" {
		mode = entity.FormatModeZoned
	}
	lf := entity.LocationFormat{
		Mode:              mode,
		StorageZones:      splitZones(f.Almacenamiento),
		TransitionalZones: splitZones(f.Transito),
		Confidence:        f.Confianza,
	}
	data, _ := json.Marshal(lf)
	return string(data)
}

func climatesJSON(climas []clima) string {
	if len(climas) == 0 {
		return ""
	}
	m := make(map[string]string, len(climas))
	for _, c := range climas {
		zona := strings.ToUpper(strings.TrimSpace(c.Zona))
		if zona == "" {
			continue
		}
		m[zona] = strings.ToUpper(strings.TrimSpace(c.Tipo))
	}
	data, _ := json.Marshal(m)
	return string(data)
}

func splitZones(s string) []string {
	var zones []string
	for _, z := range strings.Split(s, ",") {
		z = strings.ToUpper(strings.TrimSpace(z))
		if z != "" {
			zones = append(zones, z)
		}
	}
	return zones
}

// jsonbOrNull envuelve un JSON ya serializado como literal ::jsonb, o NULL si viene vacío.
func jsonbOrNull(j string) string {
	if j == "" {
		return "NULL"
	}
	return "'" + escapeSQL(j) + "'::jsonb"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func findModuleRoot() string {
	dir, _ := os.Getwd()
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
