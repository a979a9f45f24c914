package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/invoicely-web/internal/application/analytics"
	"github.com/jhoicas/invoicely-web/internal/application/auth"
	"github.com/jhoicas/invoicely-web/internal/application/billing"
	"github.com/jhoicas/invoicely-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	CustomerUC  *billing.CustomerUseCase
	InvoiceUC   *billing.InvoiceUseCase
	PDFUC       *billing.PDFUseCase
	DashboardUC *analytics.DashboardUseCase
	Store       *session.Store
	Flasher     *Flasher
	Log         *logger.Logger
}

// Router registra las rutas de la aplicación.
func Router(app *fiber.App, deps RouterDeps) {
	userHandler := NewUserHandler(deps.AuthUC, deps.Store, deps.Flasher, deps.Log)
	customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Flasher, deps.Log)
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC, deps.PDFUC, deps.CustomerUC, deps.Flasher, deps.Log)
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.Log)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	app.Get("/", RedirectAuthenticated(deps.Store), userHandler.Index)

	// Auth (público; con sesión activa se redirige al dashboard)
	user := app.Group("/user")
	user.Get("/", RedirectAuthenticated(deps.Store), userHandler.Index)
	user.Get("/signup", RedirectAuthenticated(deps.Store), userHandler.GetSignup)
	user.Post("/signup", RedirectAuthenticated(deps.Store), userHandler.PostSignup)
	user.Get("/login", RedirectAuthenticated(deps.Store), userHandler.GetLogin)
	user.Post("/login", RedirectAuthenticated(deps.Store), userHandler.PostLogin)
	user.Get("/logout", userHandler.Logout)

	// CRUD JSON de usuarios
	user.Post("/", userHandler.Create)
	user.Get("/list", userHandler.List)
	user.Get("/:username", userHandler.GetByUsername)
	user.Put("/:id", userHandler.Update)
	user.Delete("/:id", userHandler.Delete)

	// Rutas protegidas (requieren sesión)
	customers := app.Group("/customers", RequireUser(deps.Store))
	customers.Get("/", customerHandler.ListPage)
	customers.Get("/filter", customerHandler.Filter)
	customers.Get("/create", customerHandler.GetCreate)
	customers.Post("/create", customerHandler.PostCreate)
	customers.Get("/:id/edit", customerHandler.GetEdit)
	customers.Post("/:id/edit", customerHandler.PostEdit)
	customers.Post("/:id/delete", customerHandler.Delete)

	invoices := app.Group("/invoices", RequireUser(deps.Store))
	invoices.Get("/", invoiceHandler.ListPage)
	invoices.Get("/query", invoiceHandler.Query)
	invoices.Get("/create", invoiceHandler.GetCreate)
	invoices.Post("/create", invoiceHandler.PostCreate)
	invoices.Get("/:id/edit", invoiceHandler.GetEdit)
	invoices.Post("/:id/edit", invoiceHandler.PostEdit)
	invoices.Post("/:id/delete", invoiceHandler.Delete)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	dashboard := app.Group("/dashboard", RequireUser(deps.Store))
	dashboard.Get("/", dashboardHandler.Page)
	dashboard.Get("/summary", dashboardHandler.Summary)

	// Cualquier otra ruta: página 404
	app.Use(func(c *fiber.Ctx) error {
		return notFoundPage(c)
	})
}
