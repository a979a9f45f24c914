package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicely-web/internal/application/analytics"
	"github.com/jhoicas/invoicely-web/pkg/logger"
)

// DashboardHandler sirve el resumen del dashboard.
type DashboardHandler struct {
	uc  *analytics.DashboardUseCase
	log *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, log: log}
}

// Page GET /dashboard
func (h *DashboardHandler) Page(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetOwnerID(c))
	if err != nil {
		return internalErrorPage(c, h.log, err)
	}
	return c.Render("dashboard", fiber.Map{
		"Title":   "Dashboard",
		"Summary": summary,
	}, "layouts/main")
}

// Summary godoc
// @Summary      Resumen del dashboard (JSON)
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummary
// @Router       /dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	summary, err := h.uc.GetSummary(c.Context(), GetOwnerID(c))
	if err != nil {
		return jsonDomainError(c, h.log, err)
	}
	return c.JSON(summary)
}
