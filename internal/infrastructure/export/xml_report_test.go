package export_test

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
	"github.com/jhoicas/bodega-radar/internal/infrastructure/export"
)

func reporteEjemplo() *entity.AnalysisReport {
	inicio := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	return &entity.AnalysisReport{
		ID:             "rep-1",
		CompanyID:      "co-1",
		WarehouseID:    "wh-1",
		ConfidenceTier: entity.ConfidenceVeryHigh,
		MatchScore:     0.97,
		TotalRecords:   120,
		AnomalyCount:   2,
		Anomalies: []entity.AnomalyRecord{
			{
				UnitID:            "P-9",
				CanonicalLocation: "02-01-015B",
				AnomalyType:       entity.AnomalyOvercapacity,
				Priority:          entity.PriorityHigh,
				RuleID:            "r-1",
				PrecedenceLevel:   3,
				Description:       "3 unidades en capacidad 1",
				Evidence:          map[string]string{"units": "3", "capacity": "1"},
			},
			{
				UnitID:      "P-2",
				AnomalyType: entity.AnomalyDataIntegrity,
				Priority:    entity.PriorityCritical,
				RuleID:      "r-2", PrecedenceLevel: 1,
				Description: "ubicación no interpretable",
			},
		},
		RuleExecutions: []entity.RuleExecution{
			{RuleID: "r-1", RuleType: entity.RuleTypeOvercapacity, Success: true, AnomalyCount: 1, Duration: 12 * time.Millisecond},
			{RuleID: "r-2", RuleType: entity.RuleTypeDataIntegrity, Success: true, AnomalyCount: 1, Duration: 3 * time.Millisecond},
		},
		StartedAt:  inicio,
		FinishedAt: inicio.Add(40 * time.Millisecond),
	}
}

func TestExport_EstructuraDelDocumento(t *testing.T) {
	salida, digest, err := export.NewXMLReportExporter().Export(reporteEjemplo())
	require.NoError(t, err)
	require.NotEmpty(t, digest)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(salida))

	root := doc.Root()
	require.Equal(t, "AnalysisReport", root.Tag)
	assert.Equal(t, "rep-1", root.SelectAttrValue("id", ""))
	assert.Equal(t, "wh-1", root.FindElement("Context/WarehouseID").Text())
	assert.Equal(t, "VERY_HIGH", root.FindElement("Context/ConfidenceTier").Text())
	assert.Equal(t, "120", root.FindElement("Summary/TotalRecords").Text())
	assert.Len(t, root.FindElements("Anomalies/Anomaly"), 2)
	assert.Len(t, root.FindElements("RuleExecutions/Execution"), 2)
	assert.Equal(t, digest, root.FindElement("DigestValue").Text())
}

func TestExport_EvidenciaConClavesOrdenadas(t *testing.T) {
	salida, _, err := export.NewXMLReportExporter().Export(reporteEjemplo())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(salida))

	items := doc.FindElements("//Anomaly[1]/Evidence/Item")
	require.Len(t, items, 2)
	assert.Equal(t, "capacity", items[0].SelectAttrValue("key", ""))
	assert.Equal(t, "units", items[1].SelectAttrValue("key", ""))
}

// Un verificador externo quita DigestValue, canonicaliza y recomputa el hash.
func TestExport_DigestRecomputable(t *testing.T) {
	salida, digest, err := export.NewXMLReportExporter().Export(reporteEjemplo())
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(salida))
	root := doc.Root()
	root.RemoveChild(root.FindElement("DigestValue"))

	cuerpo, err := doc.WriteToBytes()
	require.NoError(t, err)

	dec := xml.NewDecoder(bytes.NewReader(cuerpo))
	dec.Entity = map[string]string{}
	canonico, err := c14n.Canonicalize(dec)
	require.NoError(t, err)

	sum := sha256.Sum256(canonico)
	assert.Equal(t, digest, base64.StdEncoding.EncodeToString(sum[:]))
}

func TestExport_Determinismo(t *testing.T) {
	exportador := export.NewXMLReportExporter()
	a, digestA, err := exportador.Export(reporteEjemplo())
	require.NoError(t, err)
	b, digestB, err := exportador.Export(reporteEjemplo())
	require.NoError(t, err)

	assert.Equal(t, digestA, digestB)
	assert.Equal(t, a, b)
}

func TestExport_ReporteNulo(t *testing.T) {
	_, _, err := export.NewXMLReportExporter().Export(nil)
	assert.Error(t, err)
}
