package dto

import (
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
)

// CustomerForm entrada del formulario de cliente (create y edit comparten
// campos; el owner nunca viene del formulario).
type CustomerForm struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Phone   string `form:"phone" json:"phone"`
	Address string `form:"address" json:"address"`
}

// Validate devuelve los errores de campo; los cuatro campos son obligatorios.
func (f CustomerForm) Validate() []FieldError {
	var errs []FieldError
	if f.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name must not be empty"})
	}
	if f.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email must not be empty"})
	}
	if f.Phone == "" {
		errs = append(errs, FieldError{Field: "phone", Message: "Phone must not be empty"})
	}
	if f.Address == "" {
		errs = append(errs, FieldError{Field: "address", Message: "Address must not be empty"})
	}
	return errs
}

// CustomerResponse salida pública de un cliente.
type CustomerResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// NewCustomerResponse mapea la entidad a su representación pública.
func NewCustomerResponse(c *entity.Customer) CustomerResponse {
	return CustomerResponse{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

// CustomerListResponse respuesta de un listado de clientes. El render y el
// espejo JSON serializan exactamente estos campos para la misma consulta.
type CustomerListResponse struct {
	Customers  []CustomerResponse `json:"customers"`
	TotalItems int                `json:"totalItems"`
	listing.Page
	Search string `json:"search"`
}
