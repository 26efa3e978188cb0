package analysis_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

func TestSobrecupo_ModoDiferenciado(t *testing.T) {
	motor := motorPrueba()
	// Dos unidades en una posición de capacidad 1 y tres en recepción RECV-01
	// con capacidad declarada 2.
	plantilla := plantillaPrueba()
	plantilla.SpecialAreas[0].Capacity = 2

	registros := []entity.InventoryRecord{
		registroEn("S-1", "01-01-001A", time.Hour),
		registroEn("S-2", "01-01-001A", time.Hour),
		registroEn("R-1", "RECV-01", time.Hour),
		registroEn("R-2", "RECV-01", time.Hour),
		registroEn("R-3", "RECV-01", time.Hour),
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-cap", entity.RuleTypeOvercapacity, entity.RuleConditions{"mode": "differentiated"}),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantilla)
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 5)

	for _, a := range res.Anomalies {
		switch a.CanonicalLocation {
		case "01-01-001A":
			assert.Equal(t, entity.PriorityHigh, a.Priority, "sobrecupo en storage es alta")
		case "RECV-01":
			assert.Equal(t, entity.PriorityMedium, a.Priority, "las áreas especiales toleran picos")
		default:
			t.Fatalf("ubicación inesperada %s", a.CanonicalLocation)
		}
	}
}

func TestSobrecupo_ModoEstadistico(t *testing.T) {
	motor := motorPrueba()
	plantilla := plantillaPrueba()
	plantilla.DefaultCapacity = 3

	// Ocupaciones por ubicación: 3, 3, 3, 4 y 8 → mediana 3, umbral 0.5×3 = 1.5.
	// El exceso de 1 unidad se suprime; el de 5 sí se reporta.
	var registros []entity.InventoryRecord
	agregar := func(loc string, n int) {
		for i := 0; i < n; i++ {
			registros = append(registros, registroEn(loc, loc, time.Hour))
		}
	}
	agregar("01-01-001A", 3)
	agregar("01-01-002A", 3)
	agregar("01-01-003A", 3)
	agregar("01-01-004A", 4)
	agregar("01-01-005A", 8)

	reglas := []entity.RuleDefinition{
		reglaActiva("r-cap", entity.RuleTypeOvercapacity, entity.RuleConditions{
			"use_statistical":    true,
			"significance_ratio": 0.5,
		}),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantilla)
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 8, "solo la ubicación con exceso significativo")

	for _, a := range res.Anomalies {
		assert.Equal(t, "01-01-005A", a.CanonicalLocation)
		assert.Equal(t, "3.0", a.Evidence["median_occupancy"])
	}
}

func TestEstancamientoEnTransito_PatronesDeFallback(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{
		registroEn("T-1", "STAGE-1", 8*time.Hour),     // transitoria y vieja
		registroEn("T-2", "STAGE-1", 2*time.Hour),     // transitoria pero fresca
		registroEn("T-3", "01-01-001A", 8*time.Hour),  // storage: no aplica
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-tran", entity.RuleTypeLocationSpecificStagnant, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 1)

	a := res.Anomalies[0]
	assert.Equal(t, "T-1", a.UnitID)
	assert.Equal(t, entity.AnomalyTransitStagnant, a.AnomalyType)
	assert.Equal(t, analysis.PatternSourceFallback, a.Evidence["pattern_source"])
}

func TestTemperatura_DesajusteEntreClaseYZona(t *testing.T) {
	motor := motorPrueba()
	plantilla := plantillaPrueba()
	plantilla.LocationFormat = &entity.LocationFormat{
		Mode:         entity.FormatModeZoned,
		StorageZones: []string{"FRZ", "SECO"},
		Confidence:   0.9,
	}
	plantilla.ZoneClimates = map[string]string{"FRZ": entity.ClimateFrozen}

	conDescripcion := func(unitID, loc, desc string) entity.InventoryRecord {
		r := registroEn(unitID, loc, time.Hour)
		r.Description = desc
		return r
	}
	registros := []entity.InventoryRecord{
		conDescripcion("U-1", "FRZ-01", "Helado de vainilla 1L"),      // congelado en zona congelada: ok
		conDescripcion("U-2", "FRZ-02", "Yogur refrigerado x12"),      // refrigerado en zona congelada: desajuste
		conDescripcion("U-3", "FRZ-03", "Galletas surtidas"),          // sin clase inferible: se omite
		conDescripcion("U-4", "SECO-01", "Pollo congelado"),           // zona sin clima declarado: se omite
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-temp", entity.RuleTypeTemperatureMismatch, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantilla)
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 1)

	a := res.Anomalies[0]
	assert.Equal(t, "U-2", a.UnitID)
	assert.Equal(t, entity.ClimateRefrigerated, a.Evidence["inferred_class"])
	assert.Equal(t, entity.ClimateFrozen, a.Evidence["declared_class"])
}

func TestTemperatura_CongeladoGanaSobreRefrigerado(t *testing.T) {
	assert.Equal(t, entity.ClimateFrozen, analysis.InferTemperatureClass("pescado congelado refrigerado"))
	assert.Equal(t, entity.ClimateRefrigerated, analysis.InferTemperatureClass("queso frío"))
	assert.Empty(t, analysis.InferTemperatureClass("arroz blanco"))
	assert.Empty(t, analysis.InferTemperatureClass(""))
}

func TestIntegridad_RazonesDistintas(t *testing.T) {
	motor := motorPrueba()
	larga := strings.Repeat("X", 70)

	registros := []entity.InventoryRecord{
		registroEn("U-1", "01-01-001A", time.Hour),
		registroEn("U-1", "01-01-002A", time.Hour), // duplicada
		registroEn("U-1", "01-01-003A", time.Hour), // triplicada
		registroEn("U-2", "???", time.Hour),        // no interpretable
		registroEn("U-3", larga, time.Hour),        // no interpretable Y demasiado larga
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-int", entity.RuleTypeDataIntegrity, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)

	porRazon := make(map[string]int)
	for _, a := range res.Anomalies {
		porRazon[a.Evidence["reason"]]++
	}
	assert.Equal(t, 3, porRazon[entity.IntegrityReasonDuplicate], "las tres ocurrencias se señalan")
	assert.Equal(t, 2, porRazon[entity.IntegrityReasonUnparseable])
	assert.Equal(t, 1, porRazon[entity.IntegrityReasonTooLong])
	assert.Len(t, res.Anomalies, 6)
}

func TestTipoDeclarado_SoloConAmbasPuntas(t *testing.T) {
	motor := motorPrueba()

	conTipo := func(unitID, loc, declarado string) entity.InventoryRecord {
		r := registroEn(unitID, loc, time.Hour)
		r.DeclaredLocationType = declarado
		return r
	}
	registros := []entity.InventoryRecord{
		conTipo("U-1", "RECV-01", "STORAGE"),   // declara storage pero resuelve recepción
		conTipo("U-2", "RECV-01", "RECEIVING"), // coincide
		conTipo("U-3", "01-01-001A", ""),       // sin columna declarada
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-tipo", entity.RuleTypeLocationTypeMismatch, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 1)
	assert.Equal(t, "U-1", res.Anomalies[0].UnitID)
	assert.Equal(t, entity.PriorityLow, res.Anomalies[0].Priority)
}
