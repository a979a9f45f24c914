package billing_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicely-web/internal/application/billing"
	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

// memInvoiceRepo repositorio en memoria con join de cliente simulado.
type memInvoiceRepo struct {
	repository.InvoiceRepository
	invoices []*repository.InvoiceWithCustomer
	created  []*entity.Invoice
	updated  []*entity.Invoice
}

func (m *memInvoiceRepo) scoped(filter listing.Filter) []*repository.InvoiceWithCustomer {
	var out []*repository.InvoiceWithCustomer
	for _, i := range m.invoices {
		if i.OwnerID != filter.OwnerID {
			continue
		}
		// Join interno: sin cliente resuelto la factura no se lista.
		if i.CustomerName == "" {
			continue
		}
		// La búsqueda se evalúa solo contra el name del cliente asociado.
		if filter.HasSearch() && !containsFold(filter.Search, i.CustomerName) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (m *memInvoiceRepo) List(ctx context.Context, filter listing.Filter, limit, skip int) ([]*repository.InvoiceWithCustomer, error) {
	all := m.scoped(filter)
	if skip >= len(all) {
		return nil, nil
	}
	end := skip + limit
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (m *memInvoiceRepo) Count(ctx context.Context, filter listing.Filter) (int, error) {
	return len(m.scoped(filter)), nil
}

func (m *memInvoiceRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	for _, i := range m.invoices {
		if i.ID == id && i.OwnerID == ownerID {
			inv := i.Invoice
			return &inv, nil
		}
	}
	return nil, nil
}

func (m *memInvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	m.created = append(m.created, invoice)
	return nil
}

func (m *memInvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	m.updated = append(m.updated, invoice)
	return nil
}

func seedInvoices(ownerID string, n int) []*repository.InvoiceWithCustomer {
	out := make([]*repository.InvoiceWithCustomer, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &repository.InvoiceWithCustomer{
			Invoice: entity.Invoice{
				ID:         fmt.Sprintf("i-%02d", i),
				OwnerID:    ownerID,
				CustomerID: fmt.Sprintf("c-%02d", i),
				Amount:     decimal.NewFromInt(int64(10 + i)),
				Date:       "6/15/2024",
				Status:     entity.StatusPending,
			},
			CustomerName: fmt.Sprintf("Customer %02d", i),
		})
	}
	return out
}

func validInvoiceForm() dto.InvoiceForm {
	return dto.InvoiceForm{
		Customer: "c-00",
		Amount:   "149.99",
		Date:     "6/15/2024",
		Status:   entity.StatusPending,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// List
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceList_PageMetadata(t *testing.T) {
	repo := &memInvoiceRepo{invoices: seedInvoices("owner-1", 12)}
	uc := billing.NewInvoiceUseCase(repo)

	out, err := uc.List(context.Background(), "owner-1", "", listing.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)

	assert.Len(t, out.Invoices, 2)
	assert.Equal(t, 12, out.TotalItems)
	assert.Equal(t, 2, out.CurrentPage)
	assert.Equal(t, 2, out.TotalPages)
	assert.False(t, out.HasNextPage)
	assert.True(t, out.HasPrevPage)
	assert.Equal(t, "Customer 10", out.Invoices[0].CustomerName)
}

// Facturas con referencia de cliente rota no cuentan ni aparecen.
func TestInvoiceList_DanglingCustomerExcluded(t *testing.T) {
	invoices := seedInvoices("owner-1", 3)
	invoices = append(invoices, &repository.InvoiceWithCustomer{
		Invoice: entity.Invoice{
			ID:      "i-dangling",
			OwnerID: "owner-1",
			Amount:  decimal.NewFromInt(999),
			Date:    "6/1/2024",
			Status:  entity.StatusPaid,
		},
		CustomerName: "",
	})
	repo := &memInvoiceRepo{invoices: invoices}
	uc := billing.NewInvoiceUseCase(repo)

	out, err := uc.List(context.Background(), "owner-1", "", listing.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 3, out.TotalItems)
	for _, i := range out.Invoices {
		assert.NotEqual(t, "i-dangling", i.ID)
	}
}

// La búsqueda matchea el name del cliente asociado, case-insensitive; el
// monto, la fecha o el estado nunca participan.
func TestInvoiceList_SearchByCustomerName(t *testing.T) {
	invoices := []*repository.InvoiceWithCustomer{
		{
			Invoice:      entity.Invoice{ID: "i-1", OwnerID: "owner-1", Amount: decimal.NewFromInt(100), Date: "6/15/2024", Status: entity.StatusPaid},
			CustomerName: "Acme Corp",
		},
		{
			Invoice:      entity.Invoice{ID: "i-2", OwnerID: "owner-1", Amount: decimal.NewFromInt(50), Date: "6/20/2024", Status: entity.StatusPending},
			CustomerName: "Globex",
		},
		{
			Invoice:      entity.Invoice{ID: "i-3", OwnerID: "owner-1", Amount: decimal.NewFromInt(75), Date: "6/25/2024", Status: entity.StatusPaid},
			CustomerName: "Acme Subsidiary",
		},
	}
	repo := &memInvoiceRepo{invoices: invoices}
	uc := billing.NewInvoiceUseCase(repo)

	out, err := uc.List(context.Background(), "owner-1", "acme", listing.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)

	assert.Equal(t, 2, out.TotalItems)
	require.Len(t, out.Invoices, 2)
	for _, i := range out.Invoices {
		assert.True(t, containsFold("acme", i.CustomerName), "factura %s no matchea por cliente", i.ID)
	}
}

func TestInvoiceList_InvalidPagination(t *testing.T) {
	repo := &memInvoiceRepo{invoices: seedInvoices("owner-1", 3)}
	uc := billing.NewInvoiceUseCase(repo)

	_, err := uc.List(context.Background(), "owner-1", "", listing.PageRequest{Page: 1, Limit: 101})
	assert.ErrorIs(t, err, domain.ErrInvalidPagination)
}

// ──────────────────────────────────────────────────────────────────────────────
// Create
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceCreate_PersistsWithSessionOwner(t *testing.T) {
	repo := &memInvoiceRepo{}
	uc := billing.NewInvoiceUseCase(repo)

	fieldErrs, err := uc.Create(context.Background(), "owner-1", validInvoiceForm())
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	require.Len(t, repo.created, 1)
	created := repo.created[0]
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, "c-00", created.CustomerID)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("149.99")))
	assert.Equal(t, "6/15/2024", created.Date)
	assert.NotEmpty(t, created.ID)
}

func TestInvoiceCreate_FieldValidation(t *testing.T) {
	repo := &memInvoiceRepo{}
	uc := billing.NewInvoiceUseCase(repo)

	cases := []struct {
		name    string
		mutate  func(*dto.InvoiceForm)
		message string
	}{
		{"sin cliente", func(f *dto.InvoiceForm) { f.Customer = "" }, "Select the Customer"},
		{"monto vacío", func(f *dto.InvoiceForm) { f.Amount = "" }, "Amount must not be empty"},
		{"monto no numérico", func(f *dto.InvoiceForm) { f.Amount = "abc" }, "Amount must be a number"},
		{"fecha vacía", func(f *dto.InvoiceForm) { f.Date = "" }, "Due Date must not be empty"},
		{"fecha en otro formato", func(f *dto.InvoiceForm) { f.Date = "2024-06-15" }, "Due Date must be M/D/YYYY"},
		{"estado desconocido", func(f *dto.InvoiceForm) { f.Status = "overdue" }, "Select the Status"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			form := validInvoiceForm()
			tc.mutate(&form)

			fieldErrs, err := uc.Create(context.Background(), "owner-1", form)
			require.NoError(t, err)
			require.Len(t, fieldErrs, 1)
			assert.Equal(t, tc.message, fieldErrs[0].Message)
		})
	}
	assert.Empty(t, repo.created, "nada debe persistirse con errores de campo")
}

// ──────────────────────────────────────────────────────────────────────────────
// Update / Delete
// ──────────────────────────────────────────────────────────────────────────────

func TestInvoiceUpdate_ReplacesFields(t *testing.T) {
	repo := &memInvoiceRepo{invoices: seedInvoices("owner-1", 1)}
	uc := billing.NewInvoiceUseCase(repo)

	form := validInvoiceForm()
	form.Status = entity.StatusPaid
	form.Amount = "200"

	fieldErrs, err := uc.Update(context.Background(), "owner-1", "i-00", form)
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)

	require.Len(t, repo.updated, 1)
	updated := repo.updated[0]
	assert.Equal(t, entity.StatusPaid, updated.Status)
	assert.True(t, updated.Amount.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "owner-1", updated.OwnerID, "el owner del documento no cambia")
}

func TestInvoiceUpdate_OtherOwnerIsNotFound(t *testing.T) {
	repo := &memInvoiceRepo{invoices: seedInvoices("owner-1", 1)}
	uc := billing.NewInvoiceUseCase(repo)

	_, err := uc.Update(context.Background(), "owner-2", "i-00", validInvoiceForm())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceGet_NotFound(t *testing.T) {
	repo := &memInvoiceRepo{}
	uc := billing.NewInvoiceUseCase(repo)

	_, err := uc.Get(context.Background(), "owner-1", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestInvoiceDelete_NotFound(t *testing.T) {
	repo := &memInvoiceRepo{}
	uc := billing.NewInvoiceUseCase(repo)

	err := uc.Delete(context.Background(), "owner-1", "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
