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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

const customerColumns = `id, owner_id, name, email, phone, address, created_at, updated_at`

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

// Create persiste un nuevo cliente.
func (r *CustomerRepo) Create(ctx context.Context, customer *entity.Customer) error {
	query := `
		INSERT INTO customers (id, owner_id, name, email, phone, address, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.OwnerID, customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.CreatedAt, customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// GetByID obtiene un cliente del owner; sin fila devuelve (nil, nil).
func (r *CustomerRepo) GetByID(ctx context.Context, ownerID, id string) (*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 AND owner_id = $2`
	var c entity.Customer
	err := r.q.QueryRow(ctx, query, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get customer: %w", err)
	}
	return &c, nil
}

// Update actualiza un cliente (el owner no cambia).
func (r *CustomerRepo) Update(ctx context.Context, customer *entity.Customer) error {
	query := `
		UPDATE customers SET name = $3, email = $4, phone = $5, address = $6, updated_at = $7
		WHERE id = $1 AND owner_id = $2`
	_, err := r.q.Exec(ctx, query,
		customer.ID, customer.OwnerID, customer.Name, customer.Email, customer.Phone, customer.Address,
		customer.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	return nil
}

// Delete elimina un cliente del owner.
func (r *CustomerRepo) Delete(ctx context.Context, ownerID, id string) error {
	_, err := r.q.Exec(ctx, `DELETE FROM customers WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	return nil
}

// customerWhere compila el listing.Filter: scope por owner y, con búsqueda,
// substring case-insensitive (ILIKE) sobre name, email, phone o address.
func customerWhere(f listing.Filter) (string, []any) {
	where := `WHERE owner_id = $1`
	args := []any{f.OwnerID}
	if f.HasSearch() {
		where += ` AND (name ILIKE $2 OR email ILIKE $2 OR phone ILIKE $2 OR address ILIKE $2)`
		args = append(args, likePattern(f.Search))
	}
	return where, args
}

// List devuelve una página de clientes según el filtro.
func (r *CustomerRepo) List(ctx context.Context, f listing.Filter, limit, skip int) ([]*entity.Customer, error) {
	where, args := customerWhere(f)
	query := fmt.Sprintf(`SELECT %s FROM customers %s ORDER BY created_at LIMIT $%d OFFSET $%d`,
		customerColumns, where, len(args)+1, len(args)+2)
	args = append(args, limit, skip)

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Count cuenta los clientes que cumplen el mismo filtro que List.
func (r *CustomerRepo) Count(ctx context.Context, f listing.Filter) (int, error) {
	where, args := customerWhere(f)
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers: %w", err)
	}
	return n, nil
}

// ListAll devuelve todos los clientes del owner ordenados por nombre.
func (r *CustomerRepo) ListAll(ctx context.Context, ownerID string) ([]*entity.Customer, error) {
	query := `SELECT ` + customerColumns + ` FROM customers WHERE owner_id = $1 ORDER BY name`
	rows, err := r.q.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list all customers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Customer
	for rows.Next() {
		var c entity.Customer
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan customer: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// CountByOwner cuenta los clientes del owner (dashboard).
func (r *CustomerRepo) CountByOwner(ctx context.Context, ownerID string) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM customers WHERE owner_id = $1`, ownerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("count customers by owner: %w", err)
	}
	return n, nil
}
