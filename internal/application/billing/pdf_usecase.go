package billing

import (
	"context"
	"fmt"

	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

// PDFUseCase genera la representación PDF de una factura con los datos del
// cliente ya resueltos.
type PDFUseCase struct {
	invoiceRepo  repository.InvoiceRepository
	customerRepo repository.CustomerRepository
	generator    PDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository, generator PDFGenerator) *PDFUseCase {
	return &PDFUseCase{invoiceRepo: invoiceRepo, customerRepo: customerRepo, generator: generator}
}

// InvoicePDF arma el documento y lo renderiza. Una factura cuya referencia de
// cliente no resuelve se trata como inexistente, igual que en los listados.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, ownerID, invoiceID string) ([]byte, string, error) {
	invoice, err := uc.invoiceRepo.GetByID(ctx, ownerID, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", domain.ErrNotFound
	}
	customer, err := uc.customerRepo.GetByID(ctx, ownerID, invoice.CustomerID)
	if err != nil {
		return nil, "", err
	}
	if customer == nil {
		return nil, "", domain.ErrNotFound
	}
	doc := InvoiceDocument{
		InvoiceID:       invoice.ID,
		CustomerName:    customer.Name,
		CustomerEmail:   customer.Email,
		CustomerAddress: customer.Address,
		Date:            invoice.Date,
		Status:          invoice.Status,
		Amount:          invoice.Amount,
	}
	pdf, err := uc.generator.GenerateInvoice(doc)
	if err != nil {
		return nil, "", fmt.Errorf("generar PDF de factura: %w", err)
	}
	return pdf, fmt.Sprintf("invoice-%s.pdf", invoice.ID), nil
}
