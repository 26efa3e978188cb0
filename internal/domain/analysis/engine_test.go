package analysis_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bodega-radar/internal/domain"
	"github.com/jhoicas/bodega-radar/internal/domain/analysis"
	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

var ahora = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func motorPrueba() *analysis.Engine {
	return analysis.NewEngine(
		analysis.WithClock(func() time.Time { return ahora }),
		analysis.WithWorkers(2),
	)
}

func plantillaPrueba() *entity.WarehouseTemplate {
	return &entity.WarehouseTemplate{
		ID:               "wh-1",
		Name:             "Bodega Norte",
		NumAisles:        2,
		RacksPerAisle:    3,
		PositionsPerRack: 30,
		LevelNames:       "ABC",
		DefaultCapacity:  1,
		SpecialAreas: []entity.SpecialArea{
			{Code: "RECV-01", Type: entity.LocationTypeReceiving, Capacity: 10},
			{Code: "STAGE-1", Type: entity.LocationTypeStaging, Capacity: 5},
		},
	}
}

func registroEn(unitID, raw string, edad time.Duration) entity.InventoryRecord {
	return entity.InventoryRecord{
		UnitID:      unitID,
		RawLocation: raw,
		CreatedAt:   ahora.Add(-edad),
	}
}

func reglaActiva(id, tipo string, conds entity.RuleConditions) entity.RuleDefinition {
	return entity.RuleDefinition{
		ID:         id,
		Name:       id,
		RuleType:   tipo,
		Conditions: conds,
		IsActive:   true,
	}
}

func TestRun_SnapshotVacio(t *testing.T) {
	motor := motorPrueba()

	_, err := motor.Run(context.Background(), nil, nil, plantillaPrueba())
	require.ErrorIs(t, err, domain.ErrEmptySnapshot)
}

func TestRun_EstancadosPorUmbral(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{
		registroEn("P-1", "RECV-01", 11*time.Hour),
		registroEn("P-2", "RECV-01", 9*time.Hour),
		registroEn("P-3", "01-01-001A", 50*time.Hour), // storage: nunca estancado por esta regla
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-stag", entity.RuleTypeStagnantPallets, entity.RuleConditions{"threshold_hours": 10.0}),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 1)

	a := res.Anomalies[0]
	assert.Equal(t, "P-1", a.UnitID)
	assert.Equal(t, entity.AnomalyStagnantPallet, a.AnomalyType)
	assert.Equal(t, "RECV-01", a.CanonicalLocation)
	assert.Equal(t, "11.0", a.Evidence["hours_in_location"])
}

func TestRun_SobrecupoLegacyUnaAnomaliaPorUnidad(t *testing.T) {
	motor := motorPrueba()
	// Capacidad 1 en almacenamiento estándar; tres unidades en la misma posición.
	registros := []entity.InventoryRecord{
		registroEn("P-1", "01-01-001A", time.Hour),
		registroEn("P-2", "1-1-1A", time.Hour),
		registroEn("P-3", "01-01-001-A", time.Hour),
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-cap", entity.RuleTypeOvercapacity, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 3, "una anomalía por unidad en la ubicación excedida")

	for _, a := range res.Anomalies {
		assert.Equal(t, entity.AnomalyOvercapacity, a.AnomalyType)
		assert.Equal(t, "01-01-001A", a.CanonicalLocation, "las tres grafías canonicalizan igual")
		assert.Equal(t, "3", a.Evidence["units"])
		assert.Equal(t, "1", a.Evidence["capacity"])
	}
}

func TestRun_LotesDescoordinados(t *testing.T) {
	motor := motorPrueba()

	lote := func(lotID string, enStorage, enRecepcion int) []entity.InventoryRecord {
		var out []entity.InventoryRecord
		for i := 0; i < enStorage; i++ {
			r := registroEn(lotID+"-s", "01-01-00"+string(rune('1'+i))+"A", time.Hour)
			r.LotID = lotID
			out = append(out, r)
		}
		for i := 0; i < enRecepcion; i++ {
			r := registroEn(lotID+"-r", "RECV-01", time.Hour)
			r.LotID = lotID
			out = append(out, r)
		}
		return out
	}

	// Lote A: 8 en FINAL y 2 en recepción con umbral 0.8 ⇒ exactamente 2 rezagados.
	// Lote B: 5/5 ⇒ bajo el umbral, cero anomalías.
	registros := append(lote("A", 8, 2), lote("B", 5, 5)...)
	reglas := []entity.RuleDefinition{
		reglaActiva("r-lot", entity.RuleTypeUncoordinatedLots, entity.RuleConditions{"completion_ratio": 0.8}),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 2)
	for _, a := range res.Anomalies {
		assert.Equal(t, entity.AnomalyLotStraggler, a.AnomalyType)
		assert.Equal(t, "A", a.Evidence["lot_id"])
		assert.Equal(t, "RECV-01", a.CanonicalLocation)
	}
}

func TestRun_UbicacionInvalidaConRazon(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{
		registroEn("P-1", "05-01-001A", time.Hour), // pasillo fuera de rango
		registroEn("P-2", "MEZZ-07", time.Hour),    // área no declarada
		registroEn("P-3", "5", time.Hour),          // no interpretable
		registroEn("P-4", "01-01-001A", time.Hour), // válida
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-inv", entity.RuleTypeInvalidLocation, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 3)

	porUnidad := make(map[string]entity.AnomalyRecord)
	for _, a := range res.Anomalies {
		porUnidad[a.UnitID] = a
	}
	assert.Contains(t, porUnidad["P-1"].Evidence["reason"], "pasillo 5")
	assert.Contains(t, porUnidad["P-2"].Evidence["reason"], "no declarada")
	assert.Contains(t, porUnidad["P-3"].Evidence["reason"], "no interpretable")
}

func TestRun_ExclusionSuprimeSobrecupoEnUbicacionInvalida(t *testing.T) {
	motor := motorPrueba()
	// Tres unidades en un área NO declarada: inválida y, de no existir la
	// exclusión, también sobre capacidad. La exclusión debe dejar solo INVALID_LOCATION.
	registros := []entity.InventoryRecord{
		registroEn("P-1", "05-01-001A", time.Hour),
		registroEn("P-2", "05-01-001A", time.Hour),
		registroEn("P-3", "05-01-001A", time.Hour),
	}

	invalida := reglaActiva("r-inv", entity.RuleTypeInvalidLocation, nil)
	invalida.PrecedenceLevel = entity.PrecedenceLocation

	sobrecupo := reglaActiva("r-cap", entity.RuleTypeOvercapacity, nil)
	sobrecupo.PrecedenceLevel = entity.PrecedenceCapacity
	sobrecupo.Exclusions = []entity.ExclusionRule{
		{IfAnomalyType: entity.AnomalyInvalidLocation, MaxPrecedence: entity.PrecedenceLocation},
	}

	res, err := motor.Run(context.Background(), registros, []entity.RuleDefinition{sobrecupo, invalida}, plantillaPrueba())
	require.NoError(t, err)

	require.Len(t, res.Anomalies, 3)
	for _, a := range res.Anomalies {
		assert.Equal(t, entity.AnomalyInvalidLocation, a.AnomalyType,
			"la unidad no debe reportarse también como sobrecupo")
	}
}

func TestRun_OrdenDeSalidaEstable(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{
		registroEn("P-9", "RECV-01", 30*time.Hour),
		registroEn("P-1", "RECV-01", 30*time.Hour),
		registroEn("P-5", "XXX~", time.Hour),
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-stag", entity.RuleTypeStagnantPallets, nil), // precedencia 4 por defecto
		reglaActiva("r-int", entity.RuleTypeDataIntegrity, nil),    // precedencia 1 por defecto
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)
	require.Len(t, res.Anomalies, 3)

	// Precedencia primero (integridad antes que flujo), luego unit_id.
	assert.Equal(t, entity.AnomalyDataIntegrity, res.Anomalies[0].AnomalyType)
	assert.Equal(t, "P-5", res.Anomalies[0].UnitID)
	assert.Equal(t, "P-1", res.Anomalies[1].UnitID)
	assert.Equal(t, "P-9", res.Anomalies[2].UnitID)
}

// Dos corridas con las mismas entradas producen listas idénticas.
func TestRun_Determinismo(t *testing.T) {
	registros := func() []entity.InventoryRecord {
		return []entity.InventoryRecord{
			registroEn("P-3", "RECV-01", 30*time.Hour),
			registroEn("P-1", "05-01-001A", time.Hour),
			registroEn("P-2", "01-01-001A", time.Hour),
			registroEn("P-2", "01-01-001A", time.Hour), // duplicado intencional
			registroEn("P-4", "no-parsea!!", 10*time.Hour),
		}
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-int", entity.RuleTypeDataIntegrity, nil),
		reglaActiva("r-inv", entity.RuleTypeInvalidLocation, nil),
		reglaActiva("r-cap", entity.RuleTypeOvercapacity, nil),
		reglaActiva("r-stag", entity.RuleTypeStagnantPallets, nil),
	}

	primera, err := motorPrueba().Run(context.Background(), registros(), reglas, plantillaPrueba())
	require.NoError(t, err)
	segunda, err := motorPrueba().Run(context.Background(), registros(), reglas, plantillaPrueba())
	require.NoError(t, err)

	assert.Equal(t, primera.Anomalies, segunda.Anomalies)
}

func TestRun_ReglaDesconocidaFallaSinDetenerElResto(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{registroEn("P-1", "RECV-01", 30*time.Hour)}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-x", "RULE_X", nil),
		reglaActiva("r-stag", entity.RuleTypeStagnantPallets, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)

	require.Len(t, res.Executions, 2)
	assert.False(t, res.Executions[0].Success)
	assert.Contains(t, res.Executions[0].ErrorMessage, "no soportado")
	assert.True(t, res.Executions[1].Success)
	assert.Len(t, res.Anomalies, 1, "la regla válida corre de todos modos")
}

func TestRun_SinPlantillaFallanSoloLasReglasQueLaExigen(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{
		registroEn("P-1", "01-01-001A", time.Hour),
		registroEn("P-1", "01-01-001A", time.Hour), // duplicado
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-cap", entity.RuleTypeOvercapacity, nil),
		reglaActiva("r-int", entity.RuleTypeDataIntegrity, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, nil)
	require.NoError(t, err)

	assert.False(t, res.Executions[0].Success)
	assert.Contains(t, res.Executions[0].ErrorMessage, "contexto de bodega")
	assert.True(t, res.Executions[1].Success)
	assert.Equal(t, 2, res.Executions[1].AnomalyCount)
}

func TestRun_CancelacionEntreEvaluadores(t *testing.T) {
	motor := motorPrueba()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	registros := []entity.InventoryRecord{registroEn("P-1", "RECV-01", time.Hour)}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-stag", entity.RuleTypeStagnantPallets, nil),
		reglaActiva("r-int", entity.RuleTypeDataIntegrity, nil),
	}

	res, err := motor.Run(ctx, registros, reglas, plantillaPrueba())
	require.ErrorIs(t, err, context.Canceled)
	require.Len(t, res.Executions, 2)
	for _, exec := range res.Executions {
		assert.False(t, exec.Success)
		assert.Contains(t, exec.ErrorMessage, "cancelada")
	}
}

func TestRun_ReglasInactivasNoCorren(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{registroEn("P-1", "RECV-01", 48*time.Hour)}

	inactiva := reglaActiva("r-stag", entity.RuleTypeStagnantPallets, nil)
	inactiva.IsActive = false

	res, err := motor.Run(context.Background(), registros, []entity.RuleDefinition{inactiva}, plantillaPrueba())
	require.NoError(t, err)
	assert.Empty(t, res.Executions)
	assert.Empty(t, res.Anomalies)
}

func TestRun_MetadatosDeEjecucion(t *testing.T) {
	motor := motorPrueba()
	registros := []entity.InventoryRecord{
		registroEn("P-1", "RECV-01", 48*time.Hour),
		registroEn("P-2", "RECV-01", 48*time.Hour),
	}
	reglas := []entity.RuleDefinition{
		reglaActiva("r-stag", entity.RuleTypeStagnantPallets, nil),
	}

	res, err := motor.Run(context.Background(), registros, reglas, plantillaPrueba())
	require.NoError(t, err)

	require.Len(t, res.Executions, 1)
	exec := res.Executions[0]
	assert.Equal(t, "r-stag", exec.RuleID)
	assert.Equal(t, entity.RuleTypeStagnantPallets, exec.RuleType)
	assert.True(t, exec.Success)
	assert.Equal(t, 2, exec.AnomalyCount)
	assert.Empty(t, exec.ErrorMessage)
}
