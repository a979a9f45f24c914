package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicely-web/internal/application/billing"
	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/listing"
	"github.com/jhoicas/invoicely-web/pkg/logger"
	"github.com/jhoicas/invoicely-web/pkg/notice"
)

// InvoiceHandler sirve el listado paginado de facturas (página y espejo
// JSON), el CRUD de formularios y la descarga en PDF.
type InvoiceHandler struct {
	uc      *billing.InvoiceUseCase
	pdf     *billing.PDFUseCase
	cust    *billing.CustomerUseCase
	flasher *Flasher
	log     *logger.Logger
}

// NewInvoiceHandler construye el handler. El caso de uso de clientes se usa
// sólo para poblar el selector de cliente en los formularios.
func NewInvoiceHandler(uc *billing.InvoiceUseCase, pdf *billing.PDFUseCase, cust *billing.CustomerUseCase, flasher *Flasher, log *logger.Logger) *InvoiceHandler {
	return &InvoiceHandler{uc: uc, pdf: pdf, cust: cust, flasher: flasher, log: log}
}

// ListPage GET /invoices/ acepta ?search=&page=&limit=. La búsqueda aplica sobre
// el nombre del cliente.
func (h *InvoiceHandler) ListPage(c *fiber.Ctx) error {
	page, err := listing.ParsePageRequest(c.Query("page"), c.Query("limit"))
	if err != nil {
		h.flasher.Flash(c, notice.Notice{Message: "Invalid pagination parameters", Type: notice.TypeError})
		return c.Redirect("/invoices/", fiber.StatusSeeOther)
	}
	list, err := h.uc.List(c.Context(), GetOwnerID(c), c.Query("search"), page)
	if err != nil {
		return internalErrorPage(c, h.log, err)
	}
	return c.Render("invoices", fiber.Map{
		"Title": "Invoices",
		"List":  list,
		"Info":  h.flasher.Pop(c),
	}, "layouts/main")
}

// Query godoc
// @Summary      Listado de facturas (JSON)
// @Description  Mismos parámetros que la página: search, page, limit.
// @Tags         invoices
// @Produce      json
// @Param        search  query  string  false  "texto a buscar en el nombre del cliente"
// @Param        page    query  int     false  "página (1..)"
// @Param        limit   query  int     false  "tamaño de página (1..100)"
// @Success      200  {object}  dto.InvoiceListResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /invoices/query [get]
func (h *InvoiceHandler) Query(c *fiber.Ctx) error {
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

// GetCreate GET /invoices/create
func (h *InvoiceHandler) GetCreate(c *fiber.Ctx) error {
	customers, err := h.cust.ListAll(c.Context(), GetOwnerID(c))
	if err != nil {
		return internalErrorPage(c, h.log, err)
	}
	return c.Render("invoice_form", fiber.Map{
		"Title":     "Add Invoice",
		"Action":    "/invoices/create",
		"Invoice":   dto.InvoiceForm{},
		"Customers": customers,
		"Statuses":  []string{entity.StatusPaid, entity.StatusPending},
		"Errors":    []dto.FieldError{},
		"Info":      h.flasher.Pop(c),
	}, "layouts/main")
}

// PostCreate POST /invoices/create
func (h *InvoiceHandler) PostCreate(c *fiber.Ctx) error {
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return renderErrorPage(c, fiber.StatusBadRequest, "Add Invoice", "Invalid form submission.")
	}
	ownerID := GetOwnerID(c)
	fieldErrs, err := h.uc.Create(c.Context(), ownerID, in)
	if err != nil {
		h.log.Error().Err(err).Msg("invoice create failed")
		h.flasher.Flash(c, notice.Notice{Message: "Invoice creation failed", Type: notice.TypeError})
		return c.Redirect("/invoices/", fiber.StatusSeeOther)
	}
	if len(fieldErrs) > 0 {
		customers, cerr := h.cust.ListAll(c.Context(), ownerID)
		if cerr != nil {
			return internalErrorPage(c, h.log, cerr)
		}
		return c.Render("invoice_form", fiber.Map{
			"Title":     "Add Invoice",
			"Action":    "/invoices/create",
			"Invoice":   in,
			"Customers": customers,
			"Statuses":  []string{entity.StatusPaid, entity.StatusPending},
			"Errors":    fieldErrs,
			"Info":      (*notice.Notice)(nil),
		}, "layouts/main")
	}
	h.flasher.Flash(c, notice.Notice{Message: "Invoice created successfully", Type: notice.TypeSuccess})
	return c.Redirect("/invoices/", fiber.StatusSeeOther)
}

// GetEdit GET /invoices/:id/edit
func (h *InvoiceHandler) GetEdit(c *fiber.Ctx) error {
	ownerID := GetOwnerID(c)
	invoice, err := h.uc.Get(c.Context(), ownerID, c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundPage(c)
		}
		return internalErrorPage(c, h.log, err)
	}
	customers, err := h.cust.ListAll(c.Context(), ownerID)
	if err != nil {
		return internalErrorPage(c, h.log, err)
	}
	return c.Render("invoice_form", fiber.Map{
		"Title":  "Edit Invoice",
		"Action": "/invoices/" + invoice.ID + "/edit",
		"Invoice": dto.InvoiceForm{
			Customer: invoice.CustomerID,
			Amount:   invoice.Amount.String(),
			Date:     invoice.Date,
			Status:   invoice.Status,
		},
		"Customers": customers,
		"Statuses":  []string{entity.StatusPaid, entity.StatusPending},
		"Errors":    []dto.FieldError{},
		"Info":      h.flasher.Pop(c),
	}, "layouts/main")
}

// PostEdit POST /invoices/:id/edit
func (h *InvoiceHandler) PostEdit(c *fiber.Ctx) error {
	var in dto.InvoiceForm
	if err := c.BodyParser(&in); err != nil {
		return renderErrorPage(c, fiber.StatusBadRequest, "Edit Invoice", "Invalid form submission.")
	}
	ownerID := GetOwnerID(c)
	id := c.Params("id")
	fieldErrs, err := h.uc.Update(c.Context(), ownerID, id, in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundPage(c)
		}
		h.log.Error().Err(err).Msg("invoice update failed")
		h.flasher.Flash(c, notice.Notice{Message: "Invoice update failed", Type: notice.TypeError})
		return c.Redirect("/invoices/", fiber.StatusSeeOther)
	}
	if len(fieldErrs) > 0 {
		customers, cerr := h.cust.ListAll(c.Context(), ownerID)
		if cerr != nil {
			return internalErrorPage(c, h.log, cerr)
		}
		return c.Render("invoice_form", fiber.Map{
			"Title":     "Edit Invoice",
			"Action":    "/invoices/" + id + "/edit",
			"Invoice":   in,
			"Customers": customers,
			"Statuses":  []string{entity.StatusPaid, entity.StatusPending},
			"Errors":    fieldErrs,
			"Info":      (*notice.Notice)(nil),
		}, "layouts/main")
	}
	h.flasher.Flash(c, notice.Notice{Message: "Invoice updated successfully", Type: notice.TypeSuccess})
	return c.Redirect("/invoices/", fiber.StatusSeeOther)
}

// Delete POST /invoices/:id/delete
func (h *InvoiceHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), GetOwnerID(c), c.Params("id")); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			h.log.Error().Err(err).Msg("invoice delete failed")
		}
		h.flasher.Flash(c, notice.Notice{Message: "Invoice deletion failed", Type: notice.TypeError})
		return c.Redirect("/invoices/", fiber.StatusSeeOther)
	}
	h.flasher.Flash(c, notice.Notice{Message: "Invoice deleted successfully", Type: notice.TypeSuccess})
	return c.Redirect("/invoices/", fiber.StatusSeeOther)
}

// DownloadPDF GET /invoices/:id/pdf genera el documento al vuelo.
func (h *InvoiceHandler) DownloadPDF(c *fiber.Ctx) error {
	payload, filename, err := h.pdf.InvoicePDF(c.Context(), GetOwnerID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return notFoundPage(c)
		}
		return internalErrorPage(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(payload)
}
