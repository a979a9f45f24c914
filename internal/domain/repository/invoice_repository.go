package repository

import (
	"context"

	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
)

// InvoiceWithCustomer es el read model de factura con el nombre del cliente ya
// resuelto, usado por listados y dashboard.
type InvoiceWithCustomer struct {
	entity.Invoice
	CustomerName string
}

// InvoiceRepository define el puerto de persistencia para Invoice.
//
// Contrato de los listados: las facturas se unen con su cliente (INNER JOIN),
// por lo que una factura cuya referencia de cliente no resuelve nunca aparece
// en ningún listado; si el filtro lleva búsqueda, esta se evalúa únicamente
// contra el name del cliente asociado.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, ownerID, id string) error

	// DeleteByCustomer borra todas las facturas del cliente (primer paso del
	// borrado en cascada de un Customer).
	DeleteByCustomer(ctx context.Context, customerID string) error

	List(ctx context.Context, f listing.Filter, limit, skip int) ([]*InvoiceWithCustomer, error)
	Count(ctx context.Context, f listing.Filter) (int, error)

	// ListAllByOwner devuelve todas las facturas del owner con cliente resuelto
	// (insumo del motor de agregación del dashboard).
	ListAllByOwner(ctx context.Context, ownerID string) ([]*InvoiceWithCustomer, error)

	// ListLatest devuelve las n facturas más recientes por fecha descendente.
	ListLatest(ctx context.Context, ownerID string, n int) ([]*InvoiceWithCustomer, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}
