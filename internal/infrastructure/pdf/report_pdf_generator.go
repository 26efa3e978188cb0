// Package pdf implementa la representación imprimible de un reporte de análisis
// de inventario.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Informe de análisis  │  ID reporte + Fecha          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTEXTO: Bodega + Confianza + Score                        │
//	│  RESUMEN: Registros / Anomalías / Duración                   │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Unidad | Ubicación | Tipo | Prioridad | Descripción  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES POR TIPO + EJECUCIÓN POR REGLA                      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: ID del reporte + leyenda                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"sort"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 178, Green: 34, Blue: 34}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator implementa usecase.ReportPDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// Generate genera el PDF del reporte y devuelve sus bytes.
func (g *MarotoPDFGenerator) Generate(report *entity.AnalysisReport) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Informe de análisis de inventario", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contextRow(report))
	m.AddRows(summaryRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range anomalyRows(report.Anomalies) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	for _, r := range totalsByTypeRows(report.Anomalies) {
		m.AddRows(r)
	}
	for _, r := range executionRows(report.RuleExecutions) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(report))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título (izq) e ID de reporte + fecha (der).
func headerRow(report *entity.AnalysisReport) core.Row {
	fecha := report.StartedAt.Format("02/01/2006 15:04")
	return row.New(18).Add(
		col.New(7).Add(
			text.New("INFORME DE ANÁLISIS DE INVENTARIO", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Detección de anomalías por reglas", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("REPORTE", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(shortID(report.ID), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// contextRow: bodega resuelta y confianza de la detección.
func contextRow(report *entity.AnalysisReport) core.Row {
	bodega := report.WarehouseID
	if bodega == "" {
		bodega = "sin bodega resuelta"
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CONTEXTO DE BODEGA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Bodega: %s   |   Confianza: %s   |   Score: %.2f",
				bodega, report.ConfidenceTier, report.MatchScore,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

// summaryRow: totales de la corrida.
func summaryRow(report *entity.AnalysisReport) core.Row {
	duracion := report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond)
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf("Registros analizados: %d   |   Anomalías: %d   |   Duración: %s",
				report.TotalRecords, report.AnomalyCount, duracion,
			), props.Text{Style: fontstyle.Bold, Size: 9, Top: 2}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de anomalías.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Unidad", 2, align.Left),
		h("Ubicación", 2, align.Left),
		h("Tipo", 3, align.Left),
		h("Prioridad", 1, align.Center),
		h("Descripción", 4, align.Left),
	)
}

// anomalyRows: una fila por anomalía, en el orden de merge del motor.
func anomalyRows(anomalies []entity.AnomalyRecord) []core.Row {
	result := make([]core.Row, 0, len(anomalies))
	for _, a := range anomalies {
		prioColor := colorGray
		if a.Priority == entity.PriorityCritical || a.Priority == entity.PriorityHigh {
			prioColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(a.UnitID, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(2).Add(text.New(a.CanonicalLocation, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(3).Add(text.New(a.AnomalyType, props.Text{
				Size: 8, Align: align.Left, Top: 1, Left: 1,
			})),
			col.New(1).Add(text.New(a.Priority, props.Text{
				Size: 7, Align: align.Center, Top: 1, Color: prioColor,
			})),
			col.New(4).Add(text.New(a.Description, props.Text{
				Size: 7, Align: align.Left, Top: 1, Left: 1, Color: colorGray,
			})),
		))
	}
	return result
}

// totalsByTypeRows: conteo por tipo de anomalía, ordenado por tipo para salida estable.
func totalsByTypeRows(anomalies []entity.AnomalyRecord) []core.Row {
	counts := make(map[string]int)
	for _, a := range anomalies {
		counts[a.AnomalyType]++
	}
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("TOTALES POR TIPO", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, t := range types {
		rows = append(rows, row.New(5).Add(
			col.New(6).Add(text.New(t, props.Text{Size: 8, Top: 1, Left: 2})),
			col.New(2).Add(text.New(fmt.Sprintf("%d", counts[t]), props.Text{
				Size: 8, Top: 1, Align: align.Right, Style: fontstyle.Bold,
			})),
			col.New(4),
		))
	}
	return rows
}

// executionRows: metadatos de ejecución por regla (éxito, conteo, duración).
func executionRows(executions []entity.RuleExecution) []core.Row {
	if len(executions) == 0 {
		return nil
	}
	rows := []core.Row{
		row.New(6).Add(col.New(12).Add(
			text.New("EJECUCIÓN POR REGLA", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
		)),
	}
	for _, e := range executions {
		estado := "OK"
		color := colorGray
		if !e.Success {
			estado = "FALLÓ: " + e.ErrorMessage
			color = colorAlert
		}
		rows = append(rows, row.New(5).Add(
			col.New(4).Add(text.New(e.RuleType, props.Text{Size: 7.5, Top: 1, Left: 2})),
			col.New(2).Add(text.New(fmt.Sprintf("%d hallazgos", e.AnomalyCount), props.Text{
				Size: 7.5, Top: 1, Align: align.Right,
			})),
			col.New(2).Add(text.New(e.Duration.String(), props.Text{
				Size: 7.5, Top: 1, Align: align.Right, Color: colorGray,
			})),
			col.New(4).Add(text.New(estado, props.Text{
				Size: 7.5, Top: 1, Left: 2, Color: color,
			})),
		))
	}
	return rows
}

// footerRow: identificación completa del reporte.
func footerRow(report *entity.AnalysisReport) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(
			fmt.Sprintf("Reporte %s — generado por el motor de análisis de inventario. "+
				"Las anomalías listadas conservan el orden determinista de la corrida.", report.ID),
			props.Text{Size: 6.5, Color: colorGray, Top: 2},
		),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

// shortID devuelve el primer bloque de un UUID para encabezados.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
