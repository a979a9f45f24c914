package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una factura.
const (
	StatusPaid    = "paid"
	StatusPending = "pending"
)

// DateLayout es el formato US de la fecha de factura (M/D/YYYY, sin ceros a la
// izquierda). La fecha se persiste como texto y debe round-trip por este mismo
// layout: parsear con otro formato desplaza facturas de mes en el dashboard.
const DateLayout = "1/2/2006"

// Invoice representa una factura. Customer debe pertenecer al mismo owner
// (asumido, no verificado por el sistema).
type Invoice struct {
	ID         string
	OwnerID    string
	CustomerID string
	Amount     decimal.Decimal
	Date       string // M/D/YYYY
	Status     string // paid, pending
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ParseDate interpreta la fecha de la factura según DateLayout.
func (i Invoice) ParseDate() (time.Time, error) {
	return ParseInvoiceDate(i.Date)
}

// ParseInvoiceDate interpreta una fecha M/D/YYYY.
func ParseInvoiceDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// ValidStatus indica si s es un estado de factura reconocido.
func ValidStatus(s string) bool {
	return s == StatusPaid || s == StatusPending
}
