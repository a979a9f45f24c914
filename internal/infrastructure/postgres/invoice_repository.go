package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// Columnas de factura con el name del cliente resuelto vía join.
const invoiceJoinColumns = `
	i.id, i.owner_id, i.customer_id, i.amount, i.date, i.status, i.created_at, i.updated_at, c.name`

// Orden por fecha de factura real: date es texto M/D/YYYY, se parsea en SQL
// con el mismo formato (FM quita los ceros a la izquierda).
const orderByInvoiceDate = `ORDER BY to_date(i.date, 'FMMM/FMDD/YYYY') DESC, i.created_at DESC`

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
//
// Todos los listados usan INNER JOIN con customers: una factura cuya
// referencia de cliente no resuelve queda fuera de cualquier listado.
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste una nueva factura.
func (r *InvoiceRepo) Create(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		INSERT INTO invoices (id, owner_id, customer_id, amount, date, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.OwnerID, invoice.CustomerID, invoice.Amount, invoice.Date, invoice.Status,
		invoice.CreatedAt, invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// GetByID obtiene una factura del owner (sin join); sin fila devuelve (nil, nil).
func (r *InvoiceRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Invoice, error) {
	query := `
		SELECT id, owner_id, customer_id, amount, date, status, created_at, updated_at
		FROM invoices WHERE id = $1 AND owner_id = $2`
	var i entity.Invoice
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&i.ID, &i.OwnerID, &i.CustomerID, &i.Amount, &i.Date, &i.Status, &i.CreatedAt, &i.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return &i, nil
}

// Update actualiza una factura (el owner no cambia).
func (r *InvoiceRepo) Update(ctx context.Context, invoice *entity.Invoice) error {
	query := `
		UPDATE invoices SET customer_id = $3, amount = $4, date = $5, status = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $2`
	_, err := r.q.Exec(ctx, query,
		invoice.ID, invoice.OwnerID, invoice.CustomerID, invoice.Amount, invoice.Date, invoice.Status,
		invoice.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// Delete elimina una factura del owner.
func (r *InvoiceRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}

// DeleteByCustomer elimina todas las facturas del cliente (cascada).
func (r *InvoiceRepo) DeleteByCustomer(ctx context.Context, customerID string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM invoices WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete invoices by customer: %w", err)
	}
	return nil
}

// invoiceWhere compila el listing.Filter: scope por owner, join interno con
// customers y, con búsqueda, ILIKE solo sobre el name del cliente.
func invoiceWhere(f listing.Filter) (string, []any) {
	where := `INNER JOIN customers c ON c.id = i.customer_id WHERE i.owner_id = $1`
	args := []any{f.OwnerID}
	if f.HasSearch() {
		where += ` AND c.name ILIKE $2`
		args = append(args, likePattern(f.Search))
	}
	return where, args
}

// List devuelve una página de facturas con cliente resuelto.
func (r *InvoiceRepo) List(ctx context.Context, f listing.Filter, limit, skip int) ([]*repository.InvoiceWithCustomer, error) {
	where, args := invoiceWhere(f)
	query := fmt.Sprintf(`SELECT %s FROM invoices i %s %s LIMIT $%d OFFSET $%d`,
		invoiceJoinColumns, where, orderByInvoiceDate, len(args)+1, len(args)+2)
	args = append(args, limit, skip)
	return r.queryJoined(ctx, query, args...)
}

// Count cuenta las facturas que cumplen el mismo filtro que List.
func (r *InvoiceRepo) Count(ctx context.Context, f listing.Filter) (int, error) {
	where, args := invoiceWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices i `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices: %w", err)
	}
	return n, nil
}

// ListAllByOwner devuelve todas las facturas del owner con cliente resuelto
// (insumo del dashboard).
func (r *InvoiceRepo) ListAllByOwner(ctx context.Context, ownerID string) ([]*repository.InvoiceWithCustomer, error) {
	query := `SELECT ` + invoiceJoinColumns + `
		FROM invoices i INNER JOIN customers c ON c.id = i.customer_id
		WHERE i.owner_id = $1`
	return r.queryJoined(ctx, query, ownerID)
}

// ListLatest devuelve las n facturas más recientes por fecha descendente.
func (r *InvoiceRepo) ListLatest(ctx context.Context, ownerID string, n int) ([]*repository.InvoiceWithCustomer, error) {
	query := `SELECT ` + invoiceJoinColumns + `
		FROM invoices i INNER JOIN customers c ON c.id = i.customer_id
		WHERE i.owner_id = $1 ` + orderByInvoiceDate + ` LIMIT $2`
	return r.queryJoined(ctx, query, ownerID, n)
}

// CountByOwner cuenta las facturas del owner (dashboard). Cuenta también las
// que tienen referencia rota: es el total real de documentos, no de listables.
func (r *InvoiceRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM invoices WHERE owner_id = $1`, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count invoices by owner: %w", err)
	}
	return n, nil
}

func (r *InvoiceRepo) queryJoined(ctx context.Context, query string, args ...any) ([]*repository.InvoiceWithCustomer, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*repository.InvoiceWithCustomer
	for rows.Next() {
		var i repository.InvoiceWithCustomer
		if err := rows.Scan(
			&i.ID, &i.OwnerID, &i.CustomerID, &i.Amount, &i.Date, &i.Status,
			&i.CreatedAt, &i.UpdatedAt, &i.CustomerName,
		); err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, &i)
	}
	return list, rows.Err()
}
