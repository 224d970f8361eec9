package infra

// pdf.go — sales-report PDF export using go-pdf/fpdf.
// Layout: business name header, filter line, KPI block (total potencial,
// recibido, pendiente), then one row per sale with date, operator, client,
// state and snapshot total.

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"kiosko/internal/dto"

	"github.com/Rhymond/go-money"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

// FormatearCOP renders a decimal amount as Colombian pesos.
func FormatearCOP(v decimal.Decimal) string {
	return money.New(v.Shift(2).IntPart(), money.COP).Display()
}

// GenerarReportePDF writes the sales report to storagePath and returns the
// absolute path of the generated file.
func GenerarReportePDF(reporte *dto.ReporteVentasResponse, negocio, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("reporte_ventas_%s.pdf", time.Now().Format("20060102_150405"))
	filePath := filepath.Join(storagePath, fileName)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, negocio, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, "Reporte de Ventas", "", 1, "C", false, 0, "")
	pdf.CellFormat(contentW, 5, time.Now().Format("02/01/2006 15:04"), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// ── KPI block ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 10)
	kpis := []struct{ etiqueta, valor string }{
		{"Total Potencial", FormatearCOP(reporte.TotalPotencial)},
		{"Dinero Recibido", FormatearCOP(reporte.DineroRecibido)},
		{"Dinero Pendiente", FormatearCOP(reporte.DineroPendiente)},
		{"Ventas", fmt.Sprintf("%d (%d pagadas, %d pendientes)",
			reporte.VentasTotales, reporte.VentasPagadas, reporte.VentasPendientes)},
	}
	for _, k := range kpis {
		pdf.CellFormat(contentW/2, 6, k.etiqueta, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(contentW/2, 6, k.valor, "", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
	}
	pdf.Ln(4)

	// ── Table header ─────────────────────────────────────────────────────────
	cols := []struct {
		titulo string
		ancho  float64
	}{
		{"Fecha", 25}, {"Usuario", 50}, {"Cliente", 45}, {"Estado", 25}, {"Total", 35},
	}
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(240, 240, 240)
	for _, c := range cols {
		pdf.CellFormat(c.ancho, 7, c.titulo, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	// ── Rows ─────────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "", 9)
	for _, v := range reporte.Ventas {
		estado := "Pendiente"
		if v.Pagada {
			estado = "Pagado"
		}
		pdf.CellFormat(cols[0].ancho, 6, v.Fecha, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1].ancho, 6, v.Usuario, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[2].ancho, 6, v.Cliente, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[3].ancho, 6, estado, "1", 0, "L", false, 0, "")
		pdf.CellFormat(cols[4].ancho, 6, FormatearCOP(v.Total), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	if len(reporte.Ventas) == 0 {
		pdf.CellFormat(contentW, 6, "Sin ventas para los filtros seleccionados", "1", 1, "C", false, 0, "")
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write %s: %w", filePath, err)
	}
	return filePath, nil
}
