package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/location"
)

func TestCanonicalize_FormaEstandar(t *testing.T) {
	casos := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"sin padding", "2-1-15B", "02-01-015B"},
		{"ya canonica", "02-01-015B", "02-01-015B"},
		{"guion antes del nivel", "02-01-015-B", "02-01-015B"},
		{"minusculas y espacios", "  2-1-15b  ", "02-01-015B"},
		{"padding parcial", "02-1-15C", "02-01-015C"},
		{"valores grandes", "12-34-567H", "12-34-567H"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			res := location.Canonicalize(c.entrada)
			require.Equal(t, entity.LocationKindStandard, res.Kind)
			assert.Equal(t, c.esperado, res.Value)
		})
	}
}

func TestCanonicalize_FormaCompacta(t *testing.T) {
	casos := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"rack A es 1", "2A15B", "02-01-015B"},
		{"rack C es 3", "1C2A", "01-03-002A"},
		{"pasillo dos digitos", "10B100D", "10-02-100D"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			res := location.Canonicalize(c.entrada)
			require.Equal(t, entity.LocationKindStandard, res.Kind)
			assert.Equal(t, c.esperado, res.Value)
		})
	}
}

func TestCanonicalize_AreasEspeciales(t *testing.T) {
	casos := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"numerada", "RECV-01", "RECV-01"},
		{"numerada en minusculas", "recv-01", "RECV-01"},
		{"nombre conocido sin numero", "DOCK", "DOCK"},
		{"staging numerada", "STAGE-2", "STAGE-2"},
		{"prefijo generico", "MEZZ-07", "MEZZ-07"},
		{"zona de picking", "PICK-03", "PICK-03"},
		{"transito sin numero", "TRANSIT", "TRANSIT"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			res := location.Canonicalize(c.entrada)
			require.Equal(t, entity.LocationKindSpecial, res.Kind)
			assert.Equal(t, c.esperado, res.Value)
		})
	}
}

// El área especial gana siempre sobre el parseo posicional.
func TestCanonicalize_AreaEspecialGanaALoPosicional(t *testing.T) {
	res := location.Canonicalize("AISLE-01")
	require.Equal(t, entity.LocationKindSpecial, res.Kind)
	assert.Equal(t, "AISLE-01", res.Value)
}

func TestCanonicalize_VariantesDeUso(t *testing.T) {
	casos := []struct {
		nombre   string
		entrada  string
		esperado string
	}{
		{"barras", "2/1/15B", "02-01-015B"},
		{"puntos", "2.1.15.B", "02-01-015B"},
		{"espacios", "2 1 15 B", "02-01-015B"},
		{"etiquetada", "A2R1P15B", "02-01-015B"},
		{"etiquetada en minusculas", "a2r1p15b", "02-01-015B"},
		{"posicion primero", "015B-01-02", "02-01-015B"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			res := location.Canonicalize(c.entrada)
			require.Equal(t, entity.LocationKindStandard, res.Kind)
			assert.Equal(t, c.esperado, res.Value)
		})
	}
}

func TestCanonicalize_EntradasNoInterpretables(t *testing.T) {
	// Toda entrada produce un resultado; lo sub-especificado se rechaza sin adivinar.
	entradas := []string{
		"",
		"   ",
		"5",
		"X",
		"XYZ",
		"2-1",
		"2-1-15",
		"--",
		"ABC-",
		"-01",
		"2A15",
		"ALMACENAMIENTO-01", // prefijo de más de 8 letras
		"1234-1-15B",
		"lote 99 pendiente",
	}

	for _, entrada := range entradas {
		res := location.Canonicalize(entrada)
		assert.Equal(t, entity.LocationKindUnparseable, res.Kind, "entrada %q", entrada)
		assert.Empty(t, res.Value, "entrada %q", entrada)
	}
}

// Canonicalizar una salida canónica la devuelve idéntica.
func TestCanonicalize_Idempotencia(t *testing.T) {
	entradas := []string{
		"2-1-15B", "02-01-015-B", "2A15B", "2/1/15B", "A2R1P15B",
		"015B-01-02", "RECV-01", "dock", "PICK-03", "MEZZ-07",
	}

	for _, entrada := range entradas {
		primera := location.Canonicalize(entrada)
		require.NotEqual(t, entity.LocationKindUnparseable, primera.Kind, "entrada %q", entrada)

		segunda := location.Canonicalize(primera.Value)
		assert.Equal(t, primera.Kind, segunda.Kind, "entrada %q", entrada)
		assert.Equal(t, primera.Value, segunda.Value, "entrada %q", entrada)
	}
}

func TestParseCanonical(t *testing.T) {
	aisle, rack, position, level, ok := location.ParseCanonical("02-01-015B")
	require.True(t, ok)
	assert.Equal(t, 2, aisle)
	assert.Equal(t, 1, rack)
	assert.Equal(t, 15, position)
	assert.Equal(t, "B", level)

	// Solo acepta la forma canónica estricta.
	for _, entrada := range []string{"2-1-15B", "02-01-015-B", "RECV-01", ""} {
		_, _, _, _, ok := location.ParseCanonical(entrada)
		assert.False(t, ok, "entrada %q", entrada)
	}
}

func TestSpecialPrefix(t *testing.T) {
	assert.Equal(t, "PICK", location.SpecialPrefix("PICK-03"))
	assert.Equal(t, "DOCK", location.SpecialPrefix("DOCK"))
	assert.Equal(t, "RECV", location.SpecialPrefix("RECV-01"))
}
