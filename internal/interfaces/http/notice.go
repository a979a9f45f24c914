package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicely-web/pkg/notice"
)

const noticeCookie = "notice"

// Flasher pega el aviso one-shot a la cookie firmada y lo recupera del otro
// lado del redirect. Contrato: Pop lee una sola vez y borra la cookie; tokens
// inválidos o vencidos se leen como ausencia de aviso.
type Flasher struct {
	signer *notice.Signer
	secure bool
}

// NewFlasher construye el Flasher.
func NewFlasher(signer *notice.Signer, cookieSecure bool) *Flasher {
	return &Flasher{signer: signer, secure: cookieSecure}
}

// Flash deja el aviso en la cookie para el destino del redirect. Si la firma
// falla se pierde el aviso, nunca la respuesta.
func (f *Flasher) Flash(c *fiber.Ctx, n notice.Notice) {
	token, err := f.signer.Sign(n)
	if err != nil {
		return
	}
	c.Cookie(&fiber.Cookie{
		Name:     noticeCookie,
		Value:    token,
		HTTPOnly: true,
		Secure:   f.secure,
		SameSite: "Lax",
	})
}

// Pop devuelve el aviso pendiente (o nil) y borra la cookie.
func (f *Flasher) Pop(c *fiber.Ctx) *notice.Notice {
	raw := c.Cookies(noticeCookie)
	if raw == "" {
		return nil
	}
	c.Cookie(&fiber.Cookie{
		Name:     noticeCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		Secure:   f.secure,
		SameSite: "Lax",
	})
	n, err := f.signer.Parse(raw)
	if err != nil {
		return nil
	}
	return n
}
