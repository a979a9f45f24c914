// Package pdf implementa la representación PDF de una factura usando Maroto v2.
//
// Layout de la página A4:
//
//	┌───────────────────────────────────────────────┐
//	│  HEADER: Invoice #id  │  Fecha                │
//	│  ───────────────────────────────────────────  │
//	│  BILLED TO: nombre / email / dirección        │
//	│  ───────────────────────────────────────────  │
//	│  Status │ Amount                              │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"fmt"
	"strings"

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

	"github.com/jhoicas/invoicely-web/internal/application/billing"
	"github.com/jhoicas/invoicely-web/pkg/formatter"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ billing.PDFGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa billing.PDFGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateInvoice genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateInvoice(doc billing.InvoiceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Invoice "+doc.InvoiceID, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(doc))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(billedToRows(doc)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(doc))

	out, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// headerRow: título con el id de la factura (izq) y fecha (der).
func headerRow(doc billing.InvoiceDocument) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Invoice #"+doc.InvoiceID, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(doc.Date, props.Text{
				Size: 10, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

// billedToRows: bloque del cliente.
func billedToRows(doc billing.InvoiceDocument) []core.Row {
	return []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New("BILLED TO", props.Text{Style: fontstyle.Bold, Size: 9, Color: colorGray, Top: 2}),
		)),
		row.New(6).Add(col.New(12).Add(
			text.New(doc.CustomerName, props.Text{Style: fontstyle.Bold, Size: 11}),
		)),
		row.New(5).Add(col.New(12).Add(
			text.New(doc.CustomerEmail, props.Text{Size: 9, Color: colorGray}),
		)),
		row.New(7).Add(col.New(12).Add(
			text.New(doc.CustomerAddress, props.Text{Size: 9, Color: colorGray}),
		)),
	}
}

// totalRow: estado y monto en dólares.
func totalRow(doc billing.InvoiceDocument) core.Row {
	return row.New(12).Add(
		col.New(6).Add(
			text.New(strings.ToUpper(doc.Status), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 3, Color: colorGray,
			}),
		),
		col.New(6).Add(
			text.New(formatter.USDollar(doc.Amount), props.Text{
				Style: fontstyle.Bold, Size: 14, Top: 2, Align: align.Right, Color: colorPrimary,
			}),
		),
	)
}
