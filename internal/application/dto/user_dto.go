package dto

import (
	"time"

	"github.com/jhoicas/invoicely-web/internal/domain/entity"
)

// SignupForm entrada del formulario de registro (password en texto, se hashea
// en el caso de uso).
type SignupForm struct {
	Email          string `form:"email" json:"email"`
	Password       string `form:"password" json:"password"`
	RepeatPassword string `form:"repeatPassword" json:"repeatPassword"`
}

// Validate devuelve los errores de campo del registro. Con errores no se crea
// ningún usuario (el mismatch de contraseñas se rechaza antes de tocar el repo).
func (f SignupForm) Validate() []FieldError {
	var errs []FieldError
	if f.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email must not be empty"})
	}
	if f.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password must not be empty"})
	} else if len(f.Password) < 6 {
		errs = append(errs, FieldError{Field: "password", Message: "Password must be 6+ characters long"})
	}
	if f.RepeatPassword == "" {
		errs = append(errs, FieldError{Field: "repeatPassword", Message: "Repeat Password must not be empty"})
	} else if f.RepeatPassword != f.Password {
		errs = append(errs, FieldError{Field: "repeatPassword", Message: "Passwords do not match"})
	}
	return errs
}

// LoginForm entrada del formulario de login.
type LoginForm struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate devuelve los errores de campo del login.
func (f LoginForm) Validate() []FieldError {
	var errs []FieldError
	if f.Email == "" {
		errs = append(errs, FieldError{Field: "email", Message: "Email must not be empty"})
	}
	if f.Password == "" {
		errs = append(errs, FieldError{Field: "password", Message: "Password must not be empty"})
	}
	return errs
}

// CreateUserRequest entrada JSON para crear un usuario vía API.
type CreateUserRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
	Gender   string `json:"gender"`
}

// UpdateUserRequest entrada JSON para actualizar el perfil (sin password).
type UpdateUserRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Gender   string `json:"gender"`
}

// UserResponse salida de un usuario (nunca incluye el hash de password).
type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username,omitempty"`
	Gender    string    `json:"gender,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse mapea la entidad a su representación pública.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Username:  u.Username,
		Gender:    u.Gender,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
