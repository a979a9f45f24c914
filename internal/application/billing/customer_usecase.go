// Package billing contiene los casos de uso de clientes y facturas.
package billing

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

// CustomerUseCase casos de uso de clientes. El borrado pasa por TxRunner para
// ejecutar la cascada (facturas + cliente) en una sola transacción.
type CustomerUseCase struct {
	repo repository.CustomerRepository
	tx   TxRunner
}

// NewCustomerUseCase construye el caso de uso.
func NewCustomerUseCase(repo repository.CustomerRepository, tx TxRunner) *CustomerUseCase {
	return &CustomerUseCase{repo: repo, tx: tx}
}

// List devuelve el listado paginado/filtrado del owner. Count y fetch se lanzan
// en paralelo; una página pedida más allá de los datos se ajusta y se devuelven
// los ítems de la página real.
func (uc *CustomerUseCase) List(ctx context.Context, ownerID, search string, page listing.PageRequest) (*dto.CustomerListResponse, error) {
	f := listing.Scope(ownerID).WithSearch(search)
	items, meta, total, err := listing.Execute(ctx, page,
		func(ctx context.Context) (int, error) {
			return uc.repo.Count(ctx, f)
		},
		func(ctx context.Context, limit, skip int) ([]*entity.Customer, error) {
			return uc.repo.List(ctx, f, limit, skip)
		},
	)
	if err != nil {
		return nil, err
	}
	customers := make([]dto.CustomerResponse, 0, len(items))
	for _, c := range items {
		customers = append(customers, dto.NewCustomerResponse(c))
	}
	return &dto.CustomerListResponse{
		Customers:  customers,
		TotalItems: total,
		Page:       meta,
		Search:     f.Search,
	}, nil
}

// ListAll devuelve todos los clientes del owner (select del formulario de factura).
func (uc *CustomerUseCase) ListAll(ctx context.Context, ownerID string) ([]dto.CustomerResponse, error) {
	items, err := uc.repo.ListAll(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CustomerResponse, 0, len(items))
	for _, c := range items {
		out = append(out, dto.NewCustomerResponse(c))
	}
	return out, nil
}

// Get busca un cliente del owner; inexistente o de otro owner -> domain.ErrNotFound.
func (uc *CustomerUseCase) Get(ctx context.Context, ownerID, id string) (*dto.CustomerResponse, error) {
	c, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, domain.ErrNotFound
	}
	resp := dto.NewCustomerResponse(c)
	return &resp, nil
}

// Create valida el formulario y persiste el cliente con el owner de la sesión.
func (uc *CustomerUseCase) Create(ctx context.Context, ownerID string, in dto.CustomerForm) ([]dto.FieldError, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return errs, nil
	}
	now := time.Now()
	customer := &entity.Customer{
		ID:        uuid.New().String(),
		OwnerID:   ownerID,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Address:   in.Address,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return nil, nil
}

// Update valida y actualiza un cliente existente del owner. El owner del
// documento no cambia nunca.
func (uc *CustomerUseCase) Update(ctx context.Context, ownerID, id string, in dto.CustomerForm) ([]dto.FieldError, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return errs, nil
	}
	customer, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, domain.ErrNotFound
	}
	customer.Name = in.Name
	customer.Email = in.Email
	customer.Phone = in.Phone
	customer.Address = in.Address
	customer.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return nil, nil
}

// Delete borra el cliente y sus facturas en una sola transacción: primero las
// facturas hijas, después el cliente. Si cualquier paso falla no queda estado
// parcial.
func (uc *CustomerUseCase) Delete(ctx context.Context, ownerID, id string) error {
	return uc.tx.Run(ctx, func(invoiceRepo repository.InvoiceRepository, customerRepo repository.CustomerRepository) error {
		customer, err := customerRepo.GetByID(ctx, ownerID, id)
		if err != nil {
			return err
		}
		if customer == nil {
			return domain.ErrNotFound
		}
		if err := invoiceRepo.DeleteByCustomer(ctx, id); err != nil {
			return err
		}
		return customerRepo.Delete(ctx, ownerID, id)
	})
}
