package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicely-web/internal/application/billing"
	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
	"github.com/jhoicas/invoicely-web/pkg/logger"
	"github.com/jhoicas/invoicely-web/pkg/notice"
)

// CustomerHandler sirve el listado paginado de clientes (página y espejo
// JSON) y las operaciones de crear, editar y borrar.
type CustomerHandler struct {
	uc      *billing.CustomerUseCase
	flasher *Flasher
	log     *logger.Logger
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(uc *billing.CustomerUseCase, flasher *Flasher, log *logger.Logger) *CustomerHandler {
	return &CustomerHandler{uc: uc, flasher: flasher, log: log}
}

// ListPage GET /customers/ acepta ?search=&page=&limit=. Paginación inválida
// deja un aviso y redirige a la lista sin parámetros.
func (h *CustomerHandler) ListPage(c *fiber.Ctx) error {
	page, err := listing.ParsePageRequest(c.Query("page"), c.Query("limit"))
	if err != nil {
		h.flasher.Flash(c, notice.Notice{Message: "Invalid pagination parameters", Type: notice.TypeError})
		return c.Redirect("/customers/", fiber.StatusSeeOther)
	}
	list, err := h.uc.List(c.Context(), GetOwnerID(c), c.Query("search"), page)
	if err != nil {
		return internalErrorPage(c, h.log, err)
	}
	return c.Render("customers", fiber.Map{
		"Title": "Customers",
		"List":  list,
		"Info":  h.flasher.Pop(c),
	}, "layouts/main")
}

// Filter godoc
// @Summary      Listado de clientes (JSON)
// @Description  Mismos parámetros que la página: search, page, limit.
// @Tags         customers
// @Produce      json
// @Param        search  query  string  false  "texto a buscar en name/email/phone/address"
// @Param        page    query  int     false  "página (1..)"
// @Param        limit   query  int     false  "tamaño de página (1..100)"
// @Success      200  {object}  dto.CustomerListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /customers/filter [get]
func (h *CustomerHandler) Filter(c *fiber.Ctx) error {
	page, err := listing.ParsePageRequest(c.Query("page"), c.Query("limit"))
	if err != nil {
		return jsonDomainError(c, h.log, err)
	}
	list, err := h.uc.List(c.Context(), GetOwnerID(c), c.Query("search"), page)
	if err != nil {
		return jsonDomainError(c, h.log, err)
	}
	return c.JSON(list)
}

// GetCreate GET /customers/create
func (h *CustomerHandler) GetCreate(c *fiber.Ctx) error {
	return c.Render("customer_form", fiber.Map{
		"Title":    "Add Customer",
		"Action":   "/customers/create",
		"Customer": dto.CustomerForm{},
		"Errors":   []dto.FieldError{},
		"Info":     h.flasher.Pop(c),
	}, "layouts/main")
}

// PostCreate POST /customers/create
func (h *CustomerHandler) PostCreate(c *fiber.Ctx) error {
	var in dto.CustomerForm
	if err := c.BodyParser(&in); err != nil {
		return renderErrorPage(c, fiber.StatusBadRequest, "Add Customer", "Invalid form submission.")
	}
	fieldErrs, err := h.uc.Create(c.Context(), GetOwnerID(c), in)
	if err != nil {
		return internalErrorPage(c, h.log, err)
	}
	if len(fieldErrs) > 0 {
		return c.Render("customer_form", fiber.Map{
			"Title":    "Add Customer",
			"Action":   "/customers/create",
			"Customer": in,
			"Errors":   fieldErrs,
			"Info":     (*notice.Notice)(nil),
		}, "layouts/main")
	}
	h.flasher.Flash(c, notice.Notice{Message: "Customer created successfully", Type: notice.TypeSuccess})
	return c.Redirect("/customers/", fiber.StatusSeeOther)
}

// GetEdit GET /customers/:id/edit
func (h *CustomerHandler) GetEdit(c *fiber.Ctx) error {
	customer, err := h.uc.Get(c.Context(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundPage(c)
		}
		return internalErrorPage(c, h.log, err)
	}
	return c.Render("customer_form", fiber.Map{
		"Title":  "Edit Customer",
		"Action": "/customers/" + customer.ID + "/edit",
		"Customer": dto.CustomerForm{
			Name:    customer.Name,
			Email:   customer.Email,
			Phone:   customer.Phone,
			Address: customer.Address,
		},
		"Errors": []dto.FieldError{},
		"Info":   h.flasher.Pop(c),
	}, "layouts/main")
}

// PostEdit POST /customers/:id/edit
func (h *CustomerHandler) PostEdit(c *fiber.Ctx) error {
	var in dto.CustomerForm
	if err := c.BodyParser(&in); err != nil {
		return renderErrorPage(c, fiber.StatusBadRequest, "Edit Customer", "Invalid form submission.")
	}
	id := c.Params("id")
	fieldErrs, err := h.uc.Update(c.Context(), GetOwnerID(c), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundPage(c)
		}
		return internalErrorPage(c, h.log, err)
	}
	if len(fieldErrs) > 0 {
		return c.Render("customer_form", fiber.Map{
			"Title":    "Edit Customer",
			"Action":   "/customers/" + id + "/edit",
			"Customer": in,
			"Errors":   fieldErrs,
			"Info":     (*notice.Notice)(nil),
		}, "layouts/main")
	}
	h.flasher.Flash(c, notice.Notice{Message: "Customer Updated", Type: notice.TypeSuccess})
	return c.Redirect("/customers/", fiber.StatusSeeOther)
}

// Delete POST /customers/:id/delete borra el cliente y sus facturas en una
// sola transacción; el resultado se comunica con un aviso en la lista.
func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOwnerID(c), c.Params("id")); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.Error().Err(err).Msg("customer delete failed")
		}
		h.flasher.Flash(c, notice.Notice{Message: "Customer Deletion Failed", Type: notice.TypeError})
		return c.Redirect("/customers/", fiber.StatusSeeOther)
	}
	h.flasher.Flash(c, notice.Notice{Message: "Customer and related invoices Deleted", Type: notice.TypeSuccess})
	return c.Redirect("/customers/", fiber.StatusSeeOther)
}
