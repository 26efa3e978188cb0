package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/domain/location"
)

func plantillaBase() *entity.WarehouseTemplate {
	return &entity.WarehouseTemplate{
		ID:                "wh-test",
		Name:              "Bodega Central",
		NumAisles:         2,
		RacksPerAisle:     3,
		PositionsPerRack:  30,
		LevelsPerPosition: 3,
		LevelNames:        "ABC",
		DefaultCapacity:   2,
		SpecialAreas: []entity.SpecialArea{
			{Code: "RECV-01", Type: entity.LocationTypeReceiving, Capacity: 10},
			{Code: "STAGE", Type: entity.LocationTypeStaging, Capacity: 5, Zone: "AMBIENTE"},
			{Code: "DOCK-01", Type: entity.LocationTypeDock},
		},
	}
}

func TestResolve_PosicionalDentroDeLimites(t *testing.T) {
	plantilla := plantillaBase()

	props := location.ResolveCode(plantilla, "01-01-025C")
	require.True(t, props.Exists)
	assert.Equal(t, entity.LocationTypeStorage, props.Type)
	assert.Equal(t, 2, props.Capacity)
	assert.Empty(t, props.Reason)
}

func TestResolve_PosicionalFueraDeLimites(t *testing.T) {
	plantilla := plantillaBase()

	casos := []struct {
		nombre  string
		codigo  string
		enRazon string
	}{
		{"pasillo excedido", "05-01-001A", "pasillo 5"},
		{"rack excedido", "01-04-001A", "rack 4"},
		{"posicion excedida", "01-01-031A", "posición 31"},
		{"nivel invalido", "01-01-025D", "nivel D"},
		{"pasillo cero", "00-01-001A", "pasillo 0"},
	}

	for _, c := range casos {
		t.Run(c.nombre, func(t *testing.T) {
			props := location.ResolveCode(plantilla, c.codigo)
			require.False(t, props.Exists)
			assert.Contains(t, props.Reason, c.enRazon)
		})
	}
}

func TestResolve_NivelesPorDefectoDelAlfabeto(t *testing.T) {
	plantilla := plantillaBase()
	plantilla.LevelNames = "" // caen a las primeras LevelsPerPosition letras

	assert.True(t, location.ResolveCode(plantilla, "01-01-001C").Exists)
	assert.False(t, location.ResolveCode(plantilla, "01-01-001D").Exists)
}

func TestResolve_AreasDeclaradas(t *testing.T) {
	plantilla := plantillaBase()

	props := location.ResolveCode(plantilla, "RECV-01")
	require.True(t, props.Exists)
	assert.Equal(t, entity.LocationTypeReceiving, props.Type)
	assert.Equal(t, 10, props.Capacity)

	// Sin capacidad declarada cae a la capacidad por defecto de la plantilla.
	props = location.ResolveCode(plantilla, "DOCK-01")
	require.True(t, props.Exists)
	assert.Equal(t, entity.LocationTypeDock, props.Type)
	assert.Equal(t, 2, props.Capacity)
}

// Declarar el prefijo "STAGE" cubre STAGE-1…STAGE-NN.
func TestResolve_AreaDeclaradaPorPrefijo(t *testing.T) {
	plantilla := plantillaBase()

	props := location.ResolveCode(plantilla, "STAGE-2")
	require.True(t, props.Exists)
	assert.Equal(t, entity.LocationTypeStaging, props.Type)
	assert.Equal(t, "AMBIENTE", props.Zone)
	assert.Equal(t, 5, props.Capacity)
}

func TestResolve_AreaNoDeclarada(t *testing.T) {
	plantilla := plantillaBase()

	props := location.ResolveCode(plantilla, "MEZZ-07")
	require.False(t, props.Exists)
	assert.Contains(t, props.Reason, "MEZZ-07")
	assert.Contains(t, props.Reason, "no declarada")
}

func TestResolve_FormatoZonificado(t *testing.T) {
	plantilla := plantillaBase()
	plantilla.LocationFormat = &entity.LocationFormat{
		Mode:              entity.FormatModeZoned,
		StorageZones:      []string{"PICK", "BULK"},
		TransitionalZones: []string{"TRAN", "FLOW"},
		Confidence:        0.95,
	}

	props := location.ResolveCode(plantilla, "PICK-03")
	require.True(t, props.Exists)
	assert.Equal(t, entity.LocationTypeStorage, props.Type)
	assert.Equal(t, "PICK", props.Zone)

	props = location.ResolveCode(plantilla, "TRAN-01")
	require.True(t, props.Exists)
	assert.Equal(t, entity.LocationTypeTransitional, props.Type)
	assert.Equal(t, "TRAN", props.Zone)

	// Las áreas declaradas explícitamente ganan sobre los prefijos de zona.
	props = location.ResolveCode(plantilla, "RECV-01")
	require.True(t, props.Exists)
	assert.Equal(t, entity.LocationTypeReceiving, props.Type)

	// Prefijo fuera de los vocabularios declarados.
	props = location.ResolveCode(plantilla, "MEZZ-07")
	assert.False(t, props.Exists)
}

// En modo posicional puro los prefijos de zona NO clasifican nada.
func TestResolve_ModoPosicionalIgnoraZonas(t *testing.T) {
	plantilla := plantillaBase()
	plantilla.LocationFormat = &entity.LocationFormat{
		Mode:         entity.FormatModePositional,
		StorageZones: []string{"PICK"},
	}

	props := location.ResolveCode(plantilla, "PICK-03")
	assert.False(t, props.Exists)
}

func TestResolve_NoInterpretable(t *testing.T) {
	plantilla := plantillaBase()

	props := location.ResolveCode(plantilla, "5")
	require.False(t, props.Exists)
	assert.Contains(t, props.Reason, "no interpretable")
}
