package billing

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

// InvoiceUseCase casos de uso de facturas.
type InvoiceUseCase struct {
	repo repository.InvoiceRepository
}

// NewInvoiceUseCase construye el caso de uso.
func NewInvoiceUseCase(repo repository.InvoiceRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo}
}

// List devuelve el listado paginado de facturas con cliente resuelto. La
// búsqueda se evalúa contra el name del cliente asociado; facturas con
// referencia de cliente rota nunca aparecen (join interno en el repo).
func (uc *InvoiceUseCase) List(ctx context.Context, ownerID, search string, page listing.PageRequest) (*dto.InvoiceListResponse, error) {
	f := listing.Scope(ownerID).WithSearch(search)
	items, meta, total, err := listing.Execute(ctx, page,
		func(ctx context.Context) (int, error) {
			return uc.repo.Count(ctx, f)
		},
		func(ctx context.Context, limit, skip int) ([]*repository.InvoiceWithCustomer, error) {
			return uc.repo.List(ctx, f, limit, skip)
		},
	)
	if err != nil {
		return nil, err
	}
	invoices := make([]dto.InvoiceResponse, 0, len(items))
	for _, i := range items {
		invoices = append(invoices, dto.NewInvoiceResponse(i))
	}
	return &dto.InvoiceListResponse{
		Invoices:   invoices,
		TotalItems: total,
		Page:       meta,
		Search:     f.Search,
	}, nil
}

// Get busca una factura del owner (para el formulario de edición);
// inexistente o de otro owner -> domain.ErrNotFound.
func (uc *InvoiceUseCase) Get(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	invoice, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	return invoice, nil
}

// Create valida el formulario y persiste la factura. El owner viene de la
// sesión; que el customer pertenezca al mismo owner se asume, no se verifica.
func (uc *InvoiceUseCase) Create(ctx context.Context, ownerID string, in dto.InvoiceForm) ([]dto.FieldError, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return errs, nil
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	invoice := &entity.Invoice{
		ID:         uuid.New().String(),
		OwnerID:    ownerID,
		CustomerID: in.Customer,
		Amount:     amount,
		Date:       in.Date,
		Status:     in.Status,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := uc.repo.Create(ctx, invoice); err != nil {
		return nil, err
	}
	return nil, nil
}

// Update valida y actualiza una factura existente del owner.
func (uc *InvoiceUseCase) Update(ctx context.Context, ownerID, id string, in dto.InvoiceForm) ([]dto.FieldError, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return errs, nil
	}
	invoice, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, domain.ErrNotFound
	}
	amount, err := decimal.NewFromString(in.Amount)
	if err != nil {
		return nil, domain.ErrInvalidInput
	}
	invoice.CustomerID = in.Customer
	invoice.Amount = amount
	invoice.Date = in.Date
	invoice.Status = in.Status
	invoice.UpdatedAt = time.Now()
	if err := uc.repo.Update(ctx, invoice); err != nil {
		return nil, err
	}
	return nil, nil
}

// Delete borra una factura del owner; inexistente -> domain.ErrNotFound.
func (uc *InvoiceUseCase) Delete(ctx context.Context, ownerID, id string) error {
	invoice, err := uc.repo.GetByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if invoice == nil {
		return domain.ErrNotFound
	}
	return uc.repo.Delete(ctx, ownerID, id)
}
