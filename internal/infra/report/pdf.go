package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"salon-reservas/internal/pkg/errs"
	"salon-reservas/internal/usecase/commands"
	"salon-reservas/internal/usecase/queries"
)

var spanishMonths = [...]string{
	"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// MonthName returns the Spanish name of a month, capitalized the way
// the reports print it.
func MonthName(m time.Month) string {
	return spanishMonths[int(m)-1]
}

// PDFRenderer produces the accounting report and the rental contract.
// Both documents use core latin-1 fonts, so text goes through the
// fpdf UTF-8 translator.
type PDFRenderer struct{}

func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

func (r *PDFRenderer) RenderContract(data commands.ContractData) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Contrato de Alquiler de Salón de Eventos"), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Versión "+data.ContractVersion), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "", 11)
	body := fmt.Sprintf(
		"Entre el salón de eventos y %s, DNI %s, se acuerda el alquiler del predio "+
			"para el día %s, bajo los términos y condiciones publicados al momento de la reserva.",
		data.ClientName, data.ClientDNI, data.EventDate,
	)
	pdf.MultiCell(0, 6, tr(body), "", "L", false)
	pdf.Ln(4)

	pdf.MultiCell(0, 6, tr(
		"La seña abonada corresponde al 50% del valor total y no es reembolsable en caso de "+
			"cancelación por parte del cliente. El horario estándar de alquiler es de 11:00 a 20:00 hs.",
	), "", "L", false)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(0, 7, tr("Constancia de aceptación"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, tr("Aceptado el "+data.AcceptedAt), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Dirección IP: "+data.AcceptanceIP), "", 1, "L", false, 0, "")

	return output(pdf)
}

func (r *PDFRenderer) RenderMonthlyReport(report *queries.MonthlyReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	title := fmt.Sprintf("Reporte Contable - %s %d", MonthName(report.Month), report.Year)
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr(title), "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(0, 6, tr("Generado el "+report.GeneratedAt.Format("02/01/2006 15:04:05")), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Resumen"), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(0, 7, tr("Total ingresos: "+formatCurrency(report.TotalIncome)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Total gastos: "+formatCurrency(report.TotalSpent)), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 7, tr("Beneficio neto: "+formatCurrency(report.NetProfit)), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Ingresos del mes"), "", 1, "L", false, 0, "")
	renderTableHeader(pdf, tr, "Fecha de pago", "Monto")
	pdf.SetFont("Helvetica", "", 10)
	for _, p := range report.Payments {
		pdf.CellFormat(95, 7, tr(p.FechaPago.Format("02/01/2006")), "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, tr(formatCurrency(p.Monto)), "1", 1, "R", false, 0, "")
	}
	if len(report.Payments) == 0 {
		pdf.CellFormat(190, 7, tr("Sin pagos registrados"), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 8, tr("Gastos del mes"), "", 1, "L", false, 0, "")
	renderTableHeader(pdf, tr, "Descripción", "Monto")
	pdf.SetFont("Helvetica", "", 10)
	for _, e := range report.Expenses {
		label := fmt.Sprintf("%s - %s (%s)", e.Fecha.Format("02/01/2006"), e.Descripcion, e.Categoria)
		pdf.CellFormat(95, 7, tr(label), "1", 0, "L", false, 0, "")
		pdf.CellFormat(95, 7, tr(formatCurrency(e.Monto)), "1", 1, "R", false, 0, "")
	}
	if len(report.Expenses) == 0 {
		pdf.CellFormat(190, 7, tr("Sin gastos registrados"), "1", 1, "C", false, 0, "")
	}

	return output(pdf)
}

func renderTableHeader(pdf *gofpdf.Fpdf, tr func(string) string, left, right string) {
	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(95, 7, tr(left), "1", 0, "L", false, 0, "")
	pdf.CellFormat(95, 7, tr(right), "1", 1, "R", false, 0, "")
}

// formatCurrency renders Argentine pesos with dot thousand separators
// and a comma decimal mark.
func formatCurrency(v float64) string {
	negative := v < 0
	if negative {
		v = -v
	}

	whole := int64(v)
	cents := int64((v-float64(whole))*100 + 0.5)
	if cents == 100 {
		whole++
		cents = 0
	}

	digits := fmt.Sprintf("%d", whole)
	var b []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b = append(b, '.')
		}
		b = append(b, d)
	}

	out := fmt.Sprintf("$ %s,%02d", string(b), cents)
	if negative {
		return "-" + out
	}
	return out
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errs.Wrap(err, "failed to render pdf")
	}
	return buf.Bytes(), nil
}
