package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/jhoicas/invoicely-web/internal/application/analytics"
	"github.com/jhoicas/invoicely-web/internal/application/auth"
	"github.com/jhoicas/invoicely-web/internal/application/billing"
	infrapdf "github.com/jhoicas/invoicely-web/internal/infrastructure/pdf"
	"github.com/jhoicas/invoicely-web/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/invoicely-web/internal/interfaces/http"
	"github.com/jhoicas/invoicely-web/pkg/config"
	"github.com/jhoicas/invoicely-web/pkg/formatter"
	"github.com/jhoicas/invoicely-web/pkg/logger"
	"github.com/jhoicas/invoicely-web/pkg/notice"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	invoiceRepo := postgres.NewInvoiceRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo)
	customerUC := billing.NewCustomerUseCase(customerRepo, txRunner)
	invoiceUC := billing.NewInvoiceUseCase(invoiceRepo)
	dashboardUC := analytics.NewDashboardUseCase(customerRepo, invoiceRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	pdfUC := billing.NewPDFUseCase(invoiceRepo, customerRepo, pdfGenerator)

	// Sesiones respaldadas en PostgreSQL; el aviso one-shot viaja aparte en
	// una cookie firmada.
	sessionStorage := postgres.NewSessionStorage(pool)
	defer sessionStorage.Close()
	store := httpRouter.NewSessionStore(
		sessionStorage,
		time.Duration(cfg.Session.TTLDays)*24*time.Hour,
		cfg.Session.CookieSecure,
	)
	flasher := httpRouter.NewFlasher(notice.NewSigner(cfg.Session.Secret), cfg.Session.CookieSecure)

	engine := html.New("./views", ".html")
	engine.AddFunc("add", func(a, b int) int { return a + b })
	engine.AddFunc("sub", func(a, b int) int { return a - b })
	engine.AddFunc("usd", formatter.USDollar)
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Invoicely",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		CustomerUC:  customerUC,
		InvoiceUC:   invoiceUC,
		PDFUC:       pdfUC,
		DashboardUC: dashboardUC,
		Store:       store,
		Flasher:     flasher,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
