// Package listing contiene la capa de consulta compartida por los listados de
// clientes, facturas y el dashboard: el filtro tipado (scope por owner + búsqueda
// opcional) y el motor de paginación con clamping de páginas fuera de rango.
package listing

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jhoicas/invoicely-web/internal/domain"
)

// Valores por defecto y límites de paginación.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// Filter es la especificación de un listado: siempre limita al owner y,
// si Search no está vacío, exige substring case-insensitive sobre un conjunto
// fijo de campos de texto que decide cada repositorio (Customer: name, email,
// phone, address; Invoice: solo el name del cliente asociado).
type Filter struct {
	OwnerID string
	Search  string
}

// Scope crea un filtro limitado al owner indicado.
func Scope(ownerID string) Filter {
	return Filter{OwnerID: ownerID}
}

// WithSearch agrega el término de búsqueda (se recorta espacio en blanco).
func (f Filter) WithSearch(search string) Filter {
	f.Search = strings.TrimSpace(search)
	return f
}

// HasSearch indica si el filtro lleva término de búsqueda.
func (f Filter) HasSearch() bool {
	return f.Search != ""
}

// PageRequest es la paginación solicitada por el cliente HTTP.
type PageRequest struct {
	Page  int
	Limit int
}

// ParsePageRequest interpreta los query params crudos. Vacío o no numérico usa
// el valor por defecto; un valor numérico explícito fuera de rango
// (page < 1, limit < 1 o limit > 100) retorna domain.ErrInvalidPagination.
func ParsePageRequest(pageRaw, limitRaw string) (PageRequest, error) {
	req := PageRequest{Page: DefaultPage, Limit: DefaultLimit}
	if pageRaw != "" {
		if n, err := strconv.Atoi(pageRaw); err == nil {
			req.Page = n
		}
	}
	if limitRaw != "" {
		if n, err := strconv.Atoi(limitRaw); err == nil {
			req.Limit = n
		}
	}
	if err := req.Validate(); err != nil {
		return PageRequest{}, err
	}
	return req, nil
}

// Validate verifica page >= 1 y 1 <= limit <= 100.
func (p PageRequest) Validate() error {
	if p.Page < 1 || p.Limit < 1 || p.Limit > MaxLimit {
		return domain.ErrInvalidPagination
	}
	return nil
}

// Skip devuelve el offset solicitado: (page-1)*limit.
func (p PageRequest) Skip() int {
	return (p.Page - 1) * p.Limit
}

// Page son los metadatos de página devueltos en ambas formas de respuesta
// (render y JSON) para la misma consulta.
type Page struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	HasNextPage bool `json:"hasNextPage"`
	HasPrevPage bool `json:"hasPrevPage"`
	Limit       int  `json:"limit"`
}

// Resolve calcula los metadatos finales dado el total de documentos y devuelve
// el skip efectivo. totalPages = ceil(total/limit) con mínimo 1; si la página
// pedida excede totalPages se ajusta hacia abajo y se recalcula el skip, de modo
// que el resultado siempre refleja una página que existe. Con total 0 queda la
// primera página vacía sin next ni prev.
func (p PageRequest) Resolve(total int) (Page, int) {
	totalPages := (total + p.Limit - 1) / p.Limit
	if totalPages < 1 {
		totalPages = 1
	}
	page := p.Page
	if page > totalPages {
		page = totalPages
	}
	skip := (page - 1) * p.Limit
	return Page{
		CurrentPage: page,
		TotalPages:  totalPages,
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       p.Limit,
	}, skip
}

// Execute corre un listado paginado completo: valida la paginación, lanza count
// y fetch en paralelo (consultas independientes, se unen antes de responder),
// ajusta la página fuera de rango y, si el ajuste movió el skip, repite el fetch
// con el offset corregido para devolver los ítems de la página real.
//
// Con paginación inválida no se ejecuta ninguna consulta.
func Execute[T any](
	ctx context.Context,
	req PageRequest,
	count func(ctx context.Context) (int, error),
	fetch func(ctx context.Context, limit, skip int) ([]T, error),
) ([]T, Page, int, error) {
	if err := req.Validate(); err != nil {
		return nil, Page{}, 0, err
	}

	type countResult struct {
		total int
		err   error
	}
	type fetchResult struct {
		items []T
		err   error
	}

	countCh := make(chan countResult, 1)
	fetchCh := make(chan fetchResult, 1)

	go func() {
		total, err := count(ctx)
		countCh <- countResult{total, err}
	}()
	go func() {
		items, err := fetch(ctx, req.Limit, req.Skip())
		fetchCh <- fetchResult{items, err}
	}()

	counted := <-countCh
	fetched := <-fetchCh

	if counted.err != nil {
		return nil, Page{}, 0, fmt.Errorf("listing: count: %w", counted.err)
	}
	if fetched.err != nil {
		return nil, Page{}, 0, fmt.Errorf("listing: fetch: %w", fetched.err)
	}

	meta, skip := req.Resolve(counted.total)
	items := fetched.items
	if skip != req.Skip() {
		// La página pedida no existe: repetir el fetch con el skip de la página
		// ajustada en vez de devolver una página vacía más allá de los datos.
		refetched, err := fetch(ctx, req.Limit, skip)
		if err != nil {
			return nil, Page{}, 0, fmt.Errorf("listing: refetch página ajustada: %w", err)
		}
		items = refetched
	}
	if items == nil {
		items = []T{}
	}
	return items, meta, counted.total, nil
}
