package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
)

// Locals key para el owner autenticado.
const LocalUserID = "user_id"

// clave dentro de la sesión
const sessionUserKey = "user_id"

// NewSessionStore construye el store de sesiones sobre el storage persistente
// (un registro por navegador, cookie sid opaca).
func NewSessionStore(storage fiber.Storage, ttl time.Duration, cookieSecure bool) *session.Store {
	return session.New(session.Config{
		Storage:        storage,
		Expiration:     ttl,
		KeyLookup:      "cookie:sid",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		CookieSameSite: "Lax",
	})
}

// RequireUser exige sesión autenticada; sin ella redirige a /user/login.
// Deja el user id en c.Locals para los handlers.
func RequireUser(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := sessionUserID(c, store)
		if userID == "" {
			return c.Redirect("/user/login", fiber.StatusSeeOther)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// RedirectAuthenticated manda a /dashboard a quien ya tiene sesión
// (páginas de signup y login).
func RedirectAuthenticated(store *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if sessionUserID(c, store) != "" {
			return c.Redirect("/dashboard", fiber.StatusSeeOther)
		}
		return c.Next()
	}
}

// GetOwnerID devuelve el owner autenticado (después de RequireUser).
func GetOwnerID(c *fiber.Ctx) string {
	v := c.Locals(LocalUserID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// signIn regenera la sesión (evita fixation) y guarda el user id.
func signIn(c *fiber.Ctx, store *session.Store, userID string) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	if err := sess.Regenerate(); err != nil {
		return err
	}
	sess.Set(sessionUserKey, userID)
	return sess.Save()
}

// signOut destruye la sesión actual.
func signOut(c *fiber.Ctx, store *session.Store) error {
	sess, err := store.Get(c)
	if err != nil {
		return err
	}
	return sess.Destroy()
}

func sessionUserID(c *fiber.Ctx, store *session.Store) string {
	sess, err := store.Get(c)
	if err != nil {
		return ""
	}
	userID, _ := sess.Get(sessionUserKey).(string)
	return userID
}
