package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/jhoicas/invoicely-web/internal/application/auth"
	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/pkg/logger"
	"github.com/jhoicas/invoicely-web/pkg/notice"
)

// UserHandler maneja signup/login/logout (páginas) y el CRUD JSON de usuarios.
type UserHandler struct {
	uc      *auth.AuthUseCase
	store   *session.Store
	flasher *Flasher
	log     *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *auth.AuthUseCase, store *session.Store, flasher *Flasher, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, store: store, flasher: flasher, log: log}
}

// Index GET /user/ renderiza la landing con el aviso pendiente (post-logout).
func (h *UserHandler) Index(c *fiber.Ctx) error {
	return c.Render("index", fiber.Map{
		"Title": "Index",
		"Info":  h.flasher.Pop(c),
	}, "layouts/main")
}

// GetSignup GET /user/signup
func (h *UserHandler) GetSignup(c *fiber.Ctx) error {
	return c.Render("signup", fiber.Map{
		"Title":  "Sign up",
		"User":   dto.SignupForm{},
		"Errors": []dto.FieldError{},
		"Info":   h.flasher.Pop(c),
	}, "layouts/main")
}

// PostSignup POST /user/signup: con errores de campo se re-muestra el
// formulario con el envío original; con éxito se regenera la sesión y se
// redirige al dashboard.
func (h *UserHandler) PostSignup(c *fiber.Ctx) error {
	var in dto.SignupForm
	if err := c.BodyParser(&in); err != nil {
		return renderErrorPage(c, fiber.StatusBadRequest, "Sign up", "Invalid form submission.")
	}
	user, fieldErrs, err := h.uc.Signup(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrEmailAlreadyExists) {
			return c.Render("signup", fiber.Map{
				"Title":  "Sign up",
				"User":   in,
				"Errors": []dto.FieldError{},
				"Info": &notice.Notice{
					Message: "Email is already registered. Try to login instead",
					Type:    notice.TypeError,
				},
			}, "layouts/main")
		}
		return internalErrorPage(c, h.log, err)
	}
	if len(fieldErrs) > 0 {
		return c.Render("signup", fiber.Map{
			"Title":  "Sign up",
			"User":   in,
			"Errors": fieldErrs,
			"Info":   (*notice.Notice)(nil),
		}, "layouts/main")
	}
	if err := signIn(c, h.store, user.ID); err != nil {
		return internalErrorPage(c, h.log, err)
	}
	h.flasher.Flash(c, notice.Notice{Message: "Account created successfully", Type: notice.TypeSuccess})
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// GetLogin GET /user/login
func (h *UserHandler) GetLogin(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{
		"Title":  "Login",
		"User":   dto.LoginForm{},
		"Errors": []dto.FieldError{},
		"Info":   h.flasher.Pop(c),
	}, "layouts/main")
}

// PostLogin POST /user/login
func (h *UserHandler) PostLogin(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := c.BodyParser(&in); err != nil {
		return renderErrorPage(c, fiber.StatusBadRequest, "Login", "Invalid form submission.")
	}
	user, fieldErrs, err := h.uc.Login(c.Context(), in)
	if err != nil {
		var msg string
		switch {
		case errors.Is(err, domain.ErrNotFound):
			msg = "Email is not registered"
		case errors.Is(err, domain.ErrWrongPassword):
			msg = "Wrong Password"
		default:
			return internalErrorPage(c, h.log, err)
		}
		return c.Render("login", fiber.Map{
			"Title":  "Login",
			"User":   in,
			"Errors": []dto.FieldError{},
			"Info":   &notice.Notice{Message: msg, Type: notice.TypeError},
		}, "layouts/main")
	}
	if len(fieldErrs) > 0 {
		return c.Render("login", fiber.Map{
			"Title":  "Login",
			"User":   in,
			"Errors": fieldErrs,
			"Info":   (*notice.Notice)(nil),
		}, "layouts/main")
	}
	if err := signIn(c, h.store, user.ID); err != nil {
		return internalErrorPage(c, h.log, err)
	}
	return c.Redirect("/dashboard", fiber.StatusSeeOther)
}

// Logout GET /user/logout
func (h *UserHandler) Logout(c *fiber.Ctx) error {
	if err := signOut(c, h.store); err != nil {
		return internalErrorPage(c, h.log, err)
	}
	h.flasher.Flash(c, notice.Notice{Message: "Logout successful", Type: notice.TypeSuccess})
	return c.Redirect("/user/", fiber.StatusSeeOther)
}

// ── CRUD JSON de usuarios ─────────────────────────────────────────────────────

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "email, password"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /user/ [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	user, err := h.uc.CreateUser(c.Context(), in)
	if err != nil {
		return jsonDomainError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// List GET /user/list
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.uc.ListUsers(c.Context())
	if err != nil {
		return jsonDomainError(c, h.log, err)
	}
	return c.JSON(users)
}

// GetByUsername godoc
// @Summary      Buscar usuario por username
// @Tags         users
// @Produce      json
// @Param        username  path  string  true  "username"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /user/{username} [get]
func (h *UserHandler) GetByUsername(c *fiber.Ctx) error {
	user, err := h.uc.GetUserByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return jsonDomainError(c, h.log, err)
	}
	return c.JSON(user)
}

// Update PUT /user/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "INVALID_BODY", "cuerpo inválido")
	}
	user, err := h.uc.UpdateUser(c.Context(), c.Params("id"), in)
	if err != nil {
		return jsonDomainError(c, h.log, err)
	}
	return c.JSON(user)
}

// Delete DELETE /user/:id
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteUser(c.Context(), c.Params("id")); err != nil {
		return jsonDomainError(c, h.log, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
