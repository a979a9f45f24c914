package billing

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

// TxRunner ejecuta un callback con repos atados a una misma transacción.
// Lo usa el borrado en cascada de Customer: facturas primero, cliente después,
// todo o nada (el store soporta transacciones multi-documento, así que no hay
// estado de éxito parcial que reportar).
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invoiceRepo repository.InvoiceRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// InvoiceDocument datos ya resueltos para la representación PDF de una factura.
type InvoiceDocument struct {
	InvoiceID       string
	CustomerName    string
	CustomerEmail   string
	CustomerAddress string
	Date            string
	Status          string
	Amount          decimal.Decimal
}

// PDFGenerator puerto para generar la representación PDF de una factura.
type PDFGenerator interface {
	GenerateInvoice(doc InvoiceDocument) ([]byte, error)
}
