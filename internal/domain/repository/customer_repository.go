package repository

import (
	"context"

	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
)

// CustomerRepository define el puerto de persistencia para Customer.
// Toda operación por id lleva ownerID: un id de otro owner se comporta igual
// que un id inexistente.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	GetByID(ctx context.Context, ownerID, id string) (*entity.Customer, error)
	Update(ctx context.Context, customer *entity.Customer) error
	Delete(ctx context.Context, ownerID, id string) error

	// List y Count compilan el mismo listing.Filter: scope por owner más
	// substring case-insensitive opcional sobre name, email, phone y address.
	List(ctx context.Context, f listing.Filter, limit, skip int) ([]*entity.Customer, error)
	Count(ctx context.Context, f listing.Filter) (int, error)

	// ListAll devuelve todos los clientes del owner (select del formulario de factura).
	ListAll(ctx context.Context, ownerID string) ([]*entity.Customer, error)
	CountByOwner(ctx context.Context, ownerID string) (int, error)
}
