// Package export serializa reportes de análisis como XML archivable. El digest
// SHA-256 se calcula sobre la forma canónica (C14N) del documento sin el propio
// DigestValue, para que un verificador pueda recomputarlo.
package export

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"

	"github.com/beevik/etree"
	"github.com/ucarion/c14n"

	"github.com/jhoicas/bodega-radar/internal/domain/entity"
)

// NsAnalysisReport namespace del documento de reporte.
const NsAnalysisReport = "urn:bodega-radar:analysis-report:v1"

// XMLReportExporter implementa usecase.ReportXMLExporter con etree.
type XMLReportExporter struct{}

// NewXMLReportExporter construye el exportador.
func NewXMLReportExporter() *XMLReportExporter {
	return &XMLReportExporter{}
}

// Export serializa el reporte y devuelve el XML final (con DigestValue inyectado)
// y el digest SHA-256 en base64 de la forma canónica del cuerpo.
func (e *XMLReportExporter) Export(report *entity.AnalysisReport) ([]byte, string, error) {
	if report == nil {
		return nil, "", fmt.Errorf("export: reporte nulo")
	}
	doc := buildReportDocument(report)

	body, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("export: serializar cuerpo: %w", err)
	}
	canonical, err := canonicalize(body)
	if err != nil {
		return nil, "", fmt.Errorf("export: canonicalizar: %w", err)
	}
	sum := sha256.Sum256(canonical)
	digest := base64.StdEncoding.EncodeToString(sum[:])

	// Sin indentar: así quitar DigestValue restaura byte a byte el cuerpo
	// digestado y el verificador puede recomputar el hash.
	doc.Root().CreateElement("DigestValue").SetText(digest)
	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, "", fmt.Errorf("export: serializar documento: %w", err)
	}
	return out, digest, nil
}

func buildReportDocument(report *entity.AnalysisReport) *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("AnalysisReport")
	root.CreateAttr("xmlns", NsAnalysisReport)
	root.CreateAttr("id", report.ID)

	ctx := root.CreateElement("Context")
	ctx.CreateElement("CompanyID").SetText(report.CompanyID)
	ctx.CreateElement("WarehouseID").SetText(report.WarehouseID)
	ctx.CreateElement("ConfidenceTier").SetText(report.ConfidenceTier)
	ctx.CreateElement("MatchScore").SetText(strconv.FormatFloat(report.MatchScore, 'f', 4, 64))

	summary := root.CreateElement("Summary")
	summary.CreateElement("TotalRecords").SetText(strconv.Itoa(report.TotalRecords))
	summary.CreateElement("AnomalyCount").SetText(strconv.Itoa(report.AnomalyCount))
	summary.CreateElement("StartedAt").SetText(report.StartedAt.UTC().Format("2006-01-02T15:04:05.000Z"))
	summary.CreateElement("FinishedAt").SetText(report.FinishedAt.UTC().Format("2006-01-02T15:04:05.000Z"))

	anomalies := root.CreateElement("Anomalies")
	for i, a := range report.Anomalies {
		node := anomalies.CreateElement("Anomaly")
		node.CreateAttr("seq", strconv.Itoa(i))
		node.CreateElement("UnitID").SetText(a.UnitID)
		node.CreateElement("CanonicalLocation").SetText(a.CanonicalLocation)
		node.CreateElement("Type").SetText(a.AnomalyType)
		node.CreateElement("Priority").SetText(a.Priority)
		node.CreateElement("RuleID").SetText(a.RuleID)
		node.CreateElement("PrecedenceLevel").SetText(strconv.Itoa(a.PrecedenceLevel))
		node.CreateElement("Description").SetText(a.Description)
		if len(a.Evidence) > 0 {
			evidence := node.CreateElement("Evidence")
			for _, k := range sortedKeys(a.Evidence) {
				item := evidence.CreateElement("Item")
				item.CreateAttr("key", k)
				item.SetText(a.Evidence[k])
			}
		}
	}

	executions := root.CreateElement("RuleExecutions")
	for _, ex := range report.RuleExecutions {
		node := executions.CreateElement("Execution")
		node.CreateAttr("ruleId", ex.RuleID)
		node.CreateAttr("ruleType", ex.RuleType)
		node.CreateAttr("success", strconv.FormatBool(ex.Success))
		node.CreateAttr("anomalyCount", strconv.Itoa(ex.AnomalyCount))
		node.CreateAttr("durationMs", strconv.FormatInt(ex.Duration.Milliseconds(), 10))
		if ex.ErrorMessage != "" {
			node.CreateElement("Error").SetText(ex.ErrorMessage)
		}
	}
	return doc
}

func canonicalize(data []byte) ([]byte, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Entity = map[string]string{}
	return c14n.Canonicalize(dec)
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
