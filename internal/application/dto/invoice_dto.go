package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

// InvoiceForm entrada del formulario de factura. Amount y Date llegan como
// texto del formulario y se validan aquí; el owner viene de la sesión.
type InvoiceForm struct {
	Customer string `form:"customer" json:"customer"`
	Amount   string `form:"amount" json:"amount"`
	Date     string `form:"date" json:"date"`
	Status   string `form:"status" json:"status"`
}

// Validate devuelve los errores de campo: los cuatro campos son obligatorios,
// Amount debe ser numérico, Date debe parsear como M/D/YYYY y Status debe ser
// paid o pending.
func (f InvoiceForm) Validate() []FieldError {
	var errs []FieldError
	if f.Customer == "" {
		errs = append(errs, FieldError{Field: "customer", Message: "Select the Customer"})
	}
	if f.Amount == "" {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount must not be empty"})
	} else if _, err := decimal.NewFromString(f.Amount); err != nil {
		errs = append(errs, FieldError{Field: "amount", Message: "Amount must be a number"})
	}
	if f.Date == "" {
		errs = append(errs, FieldError{Field: "date", Message: "Due Date must not be empty"})
	} else if _, err := entity.ParseInvoiceDate(f.Date); err != nil {
		errs = append(errs, FieldError{Field: "date", Message: "Due Date must be M/D/YYYY"})
	}
	if f.Status == "" {
		errs = append(errs, FieldError{Field: "status", Message: "Select the Status"})
	} else if !entity.ValidStatus(f.Status) {
		errs = append(errs, FieldError{Field: "status", Message: "Select the Status"})
	}
	return errs
}

// InvoiceResponse salida pública de una factura con el cliente resuelto.
type InvoiceResponse struct {
	ID           string          `json:"id"`
	CustomerID   string          `json:"customer"`
	CustomerName string          `json:"customerName"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
	Status       string          `json:"status"`
}

// NewInvoiceResponse mapea el read model a su representación pública.
func NewInvoiceResponse(i *repository.InvoiceWithCustomer) InvoiceResponse {
	return InvoiceResponse{
		ID:           i.ID,
		CustomerID:   i.CustomerID,
		CustomerName: i.CustomerName,
		Amount:       i.Amount,
		Date:         i.Date,
		Status:       i.Status,
	}
}

// InvoiceListResponse respuesta de un listado de facturas (render y JSON
// comparten contenido y metadatos de página).
type InvoiceListResponse struct {
	Invoices   []InvoiceResponse `json:"invoices"`
	TotalItems int               `json:"totalItems"`
	listing.Page
	Search string `json:"search"`
}
