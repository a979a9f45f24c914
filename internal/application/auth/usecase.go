// Package auth contiene el caso de uso de cuentas: registro, login y el CRUD
// JSON de usuarios.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
	"github.com/jhoicas/invoicely-web/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación sobre el repositorio de usuarios.
// La sesión (cookie sid) la maneja la capa HTTP; aquí solo credenciales.
type AuthUseCase struct {
	userRepo repository.UserRepository
}

// NewAuthUseCase construye el caso de uso.
func NewAuthUseCase(userRepo repository.UserRepository) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo}
}

// Signup valida el formulario y crea la cuenta. Con errores de campo (incluido
// el mismatch de contraseñas) no se toca el repositorio. Devuelve
// domain.ErrEmailAlreadyExists si el email ya tiene cuenta.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupForm) (*entity.User, []dto.FieldError, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, nil, err
	}
	return user, nil, nil
}

// Login verifica credenciales. Email sin cuenta -> domain.ErrNotFound;
// contraseña incorrecta -> domain.ErrWrongPassword.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginForm) (*entity.User, []dto.FieldError, error) {
	if errs := in.Validate(); len(errs) > 0 {
		return nil, errs, nil
	}
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, nil, err
	}
	if user == nil {
		return nil, nil, domain.ErrNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, nil, domain.ErrWrongPassword
	}
	return user, nil, nil
}

// CreateUser crea un usuario desde la API JSON.
func (uc *AuthUseCase) CreateUser(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	if in.Email == "" || in.Password == "" || len(in.Password) < 6 {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Username:     in.Username,
		Gender:       in.Gender,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// ListUsers devuelve todos los usuarios (sin hashes).
func (uc *AuthUseCase) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, dto.NewUserResponse(u))
	}
	return out, nil
}

// GetUserByUsername busca por username; sin fila -> domain.ErrNotFound
// (condición not-found uniforme en todos los lookups de entidad).
func (uc *AuthUseCase) GetUserByUsername(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewUserResponse(user), nil
}

// UpdateUser actualiza el perfil de un usuario existente.
func (uc *AuthUseCase) UpdateUser(ctx context.Context, id string, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	if in.Email != "" {
		user.Email = in.Email
	}
	if in.Username != "" {
		user.Username = in.Username
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	user.UpdatedAt = time.Now()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// DeleteUser elimina un usuario por id; inexistente -> domain.ErrNotFound.
func (uc *AuthUseCase) DeleteUser(ctx context.Context, id string) error {
	user, err := uc.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	return uc.userRepo.Delete(ctx, id)
}
