package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/pkg/logger"
)

// renderErrorPage muestra la página de error genérica (rutas que renderizan).
// El detalle del error nunca llega al usuario; queda en el log.
func renderErrorPage(c *fiber.Ctx, status int, title, message string) error {
	return c.Status(status).Render("error", fiber.Map{
		"Title":        title,
		"ErrorTitle":   title,
		"ErrorMessage": message,
	}, "layouts/main")
}

// notFoundPage página 404 estándar.
func notFoundPage(c *fiber.Ctx) error {
	return renderErrorPage(c, fiber.StatusNotFound, "Not Found",
		"The page you are looking for does not exist.")
}

// internalErrorPage página 500 estándar; registra el error para el operador.
func internalErrorPage(c *fiber.Ctx, log *logger.Logger, err error) error {
	log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
	return renderErrorPage(c, fiber.StatusInternalServerError, "Server Error",
		"Something went wrong. Please try again later.")
}

// jsonError responde el cuerpo de error uniforme de las rutas JSON.
func jsonError(c *fiber.Ctx, status int, code, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: message})
}

// jsonDomainError mapea errores de dominio a HTTP en rutas JSON. Política
// uniforme: el mensaje de un error inesperado no se expone, solo se registra.
func jsonDomainError(c *fiber.Ctx, log *logger.Logger, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return jsonError(c, fiber.StatusNotFound, "NOT_FOUND", "recurso no encontrado")
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return jsonError(c, fiber.StatusConflict, "EMAIL_EXISTS", "el email ya está registrado")
	case errors.Is(err, domain.ErrInvalidInput):
		return jsonError(c, fiber.StatusBadRequest, "VALIDATION", "entrada inválida")
	case errors.Is(err, domain.ErrInvalidPagination):
		return jsonError(c, fiber.StatusBadRequest, "INVALID_PAGINATION", "Invalid pagination parameters")
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("error interno")
		return jsonError(c, fiber.StatusInternalServerError, "INTERNAL", "error interno")
	}
}
