package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apphttp "github.com/jhoicas/invoicely-web/internal/interfaces/http"
	"github.com/jhoicas/invoicely-web/pkg/notice"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const testUserID = "00000000-0000-0000-0000-000000000001"

// buildSessionApp construye una app mínima con:
//   - POST /fake-login que abre sesión para testUserID
//   - GET /protected detrás de RequireUser
//   - GET /guest-only detrás de RedirectAuthenticated
func buildSessionApp() *fiber.App {
	// Storage nil → memoria, suficiente para el ciclo de una request de test.
	store := apphttp.NewSessionStore(nil, time.Hour, false)

	app := fiber.New()
	app.Post("/fake-login", func(c *fiber.Ctx) error {
		return apphttp.SignInForTest(c, store, testUserID)
	})
	app.Get("/protected", apphttp.RequireUser(store), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"owner": apphttp.GetOwnerID(c)})
	})
	app.Get("/guest-only", apphttp.RedirectAuthenticated(store), func(c *fiber.Ctx) error {
		return c.SendString("guest")
	})
	return app
}

// sessionCookie abre sesión y devuelve la cookie sid resultante.
func sessionCookie(t *testing.T, app *fiber.App) *http.Cookie {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodPost, "/fake-login", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	for _, c := range resp.Cookies() {
		if c.Name == "sid" {
			return c
		}
	}
	t.Fatal("no se emitió cookie sid")
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// RequireUser / RedirectAuthenticated
// ──────────────────────────────────────────────────────────────────────────────

// Sin sesión, una ruta protegida redirige al login.
func TestRequireUser_SinSesionRedirigeALogin(t *testing.T) {
	app := buildSessionApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/user/login", resp.Header.Get("Location"))
}

// Con sesión, el handler recibe el owner en locals.
func TestRequireUser_ConSesionDejaElOwner(t *testing.T) {
	app := buildSessionApp()
	cookie := sessionCookie(t, app)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// Con sesión activa, las páginas de invitado redirigen al dashboard.
func TestRedirectAuthenticated_ConSesionVaAlDashboard(t *testing.T) {
	app := buildSessionApp()
	cookie := sessionCookie(t, app)

	req := httptest.NewRequest(http.MethodGet, "/guest-only", nil)
	req.AddCookie(cookie)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/dashboard", resp.Header.Get("Location"))
}

func TestRedirectAuthenticated_SinSesionPasa(t *testing.T) {
	app := buildSessionApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guest-only", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Flasher
// ──────────────────────────────────────────────────────────────────────────────

func buildFlashApp() *fiber.App {
	flasher := apphttp.NewFlasher(notice.NewSigner("flash-test-secret"), false)

	app := fiber.New()
	app.Get("/set", func(c *fiber.Ctx) error {
		flasher.Flash(c, notice.Notice{Message: "Invoice created successfully", Type: notice.TypeSuccess})
		return c.Redirect("/show", fiber.StatusSeeOther)
	})
	app.Get("/show", func(c *fiber.Ctx) error {
		n := flasher.Pop(c)
		if n == nil {
			return c.JSON(fiber.Map{"notice": nil})
		}
		return c.JSON(fiber.Map{"notice": n})
	})
	return app
}

// El aviso sobrevive exactamente un redirect: el destino lo lee y expira la cookie.
func TestFlasher_AvisoSeLeeUnaVez(t *testing.T) {
	app := buildFlashApp()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/set", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var flashCookie *http.Cookie
	for _, c := range resp.Cookies() {
		if c.Name == "notice" {
			flashCookie = c
		}
	}
	require.NotNil(t, flashCookie, "el redirect debe llevar la cookie notice")

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(flashCookie)
	resp2, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp2.Body.Close()

	assert.Equal(t, http.StatusOK, resp2.StatusCode)
	// La respuesta de lectura expira la cookie.
	for _, c := range resp2.Cookies() {
		if c.Name == "notice" {
			assert.True(t, c.Expires.Before(time.Now()), "la cookie debe expirar al leerse")
		}
	}
}

// Una cookie manipulada se lee como ausencia de aviso.
func TestFlasher_CookieManipuladaSeIgnora(t *testing.T) {
	app := buildFlashApp()

	req := httptest.NewRequest(http.MethodGet, "/show", nil)
	req.AddCookie(&http.Cookie{Name: "notice", Value: "forged-token"})
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
