package analysis_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

func candidatas() []entity.WarehouseTemplate {
	grande := entity.WarehouseTemplate{
		ID: "wh-grande", NumAisles: 10, RacksPerAisle: 10, PositionsPerRack: 100,
		LevelNames: "ABCDE", DefaultCapacity: 2,
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	chica := entity.WarehouseTemplate{
		ID: "wh-chica", NumAisles: 1, RacksPerAisle: 1, PositionsPerRack: 5,
		LevelNames: "A", DefaultCapacity: 1,
		UpdatedAt: time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
	}
	return []entity.WarehouseTemplate{grande, chica}
}

func registrosEnUbicaciones(ubicaciones ...string) []entity.InventoryRecord {
	out := make([]entity.InventoryRecord, len(ubicaciones))
	for i, u := range ubicaciones {
		out[i] = entity.InventoryRecord{UnitID: fmt.Sprintf("U-%d", i), RawLocation: u}
	}
	return out
}

func TestResolveContexto_BodegaExplicitaOmiteLaDeteccion(t *testing.T) {
	resolver := analysis.NewContextResolver(0)

	// La elección explícita se respeta incondicionalmente, incluso si la
	// detección automática habría preferido otra plantilla.
	res := resolver.Resolve(registrosEnUbicaciones("09-09-099E"), candidatas(), "wh-chica")
	require.Equal(t, entity.ConfidenceExplicit, res.ConfidenceTier)
	assert.Equal(t, "wh-chica", res.WarehouseID)
	assert.Equal(t, 1.0, res.MatchScore)
}

func TestResolveContexto_EligeLaMejorCandidata(t *testing.T) {
	resolver := analysis.NewContextResolver(0)

	res := resolver.Resolve(registrosEnUbicaciones("05-05-050C", "09-09-099E", "01-01-001A"), candidatas(), "")
	require.Equal(t, "wh-grande", res.WarehouseID)
	assert.Equal(t, entity.ConfidenceVeryHigh, res.ConfidenceTier)
	assert.Equal(t, 1.0, res.MatchScore)
}

func TestResolveContexto_NivelesDeConfianza(t *testing.T) {
	resolver := analysis.NewContextResolver(0.2)

	casos := []struct {
		nombre      string
		ubicaciones []string
		esperado    string
	}{
		{"muy alta", []string{"01-01-001A", "02-02-002B", "03-03-003C", "04-04-004D", "05-05-005E",
			"06-06-006A", "07-07-007B", "08-08-008C", "09-09-009D", "10-10-010E"}, entity.ConfidenceVeryHigh},
		{"alta", []string{"01-01-001A", "02-02-002B", "03-03-003C", "ZONA-X", "04-04-004D"}, entity.ConfidenceHigh},
		{"media", []string{"01-01-001A", "02-02-002B", "AREA-1", "AREA-2", "AREA-3"}, entity.ConfidenceMedium},
		{"baja", []string{"01-01-001A", "AREA-1", "AREA-2", "AREA-3"}, entity.ConfidenceLow},
		{"ninguna", []string{"AREA-1", "AREA-2", "AREA-3", "AREA-4", "AREA-5"}, entity.ConfidenceNone},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			res := resolver.Resolve(registrosEnUbicaciones(c.ubicaciones...), candidatas(), "")
			assert.Equal(t, c.esperado, res.ConfidenceTier)
		})
	}
}

// Agregar más ubicaciones que SÍ existen nunca baja el puntaje de la correcta.
func TestResolveContexto_Monotonia(t *testing.T) {
	resolver := analysis.NewContextResolver(0)
	base := []string{"01-01-001A", "SIN-SENTIDO-XX"}

	previo := resolver.Resolve(registrosEnUbicaciones(base...), candidatas(), "").MatchScore
	for i := 2; i <= 8; i++ {
		base = append(base, fmt.Sprintf("0%d-01-001A", i))
		actual := resolver.Resolve(registrosEnUbicaciones(base...), candidatas(), "").MatchScore
		assert.GreaterOrEqual(t, actual, previo)
		previo = actual
	}
}

func TestResolveContexto_EmpateGanaLaMasReciente(t *testing.T) {
	resolver := analysis.NewContextResolver(0)

	a := entity.WarehouseTemplate{
		ID: "wh-a", NumAisles: 2, RacksPerAisle: 2, PositionsPerRack: 10, LevelNames: "AB",
		UpdatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	b := a
	b.ID = "wh-b"
	b.UpdatedAt = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	res := resolver.Resolve(registrosEnUbicaciones("01-01-001A"), []entity.WarehouseTemplate{a, b}, "")
	assert.Equal(t, "wh-b", res.WarehouseID)
}

func TestResolveContexto_SinDatosNiCandidatas(t *testing.T) {
	resolver := analysis.NewContextResolver(0)

	res := resolver.Resolve(nil, candidatas(), "")
	assert.Equal(t, entity.ConfidenceNone, res.ConfidenceTier)
	assert.Empty(t, res.WarehouseID)

	res = resolver.Resolve(registrosEnUbicaciones("01-01-001A"), nil, "")
	assert.Equal(t, entity.ConfidenceNone, res.ConfidenceTier)
}
