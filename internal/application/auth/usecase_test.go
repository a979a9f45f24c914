package auth_test

import (
	"context"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/invoicely-web/internal/application/auth"
	"github.com/jhoicas/invoicely-web/internal/application/dto"
	"github.com/jhoicas/invoicely-web/internal/domain"
	"github.com/jhoicas/invoicely-web/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de UserRepository en memoria
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	creates int
	lookups int
}

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	f := &fakeUserRepo{byEmail: map[string]*entity.User{}}
	for _, u := range users {
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUserRepo) Create(ctx context.Context, u *entity.User) error {
	f.creates++
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.lookups++
	return f.byEmail[email], nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range f.byEmail {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]*entity.User, error) {
	out := make([]*entity.User, 0, len(f.byEmail))
	for _, u := range f.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u *entity.User) error {
	f.byEmail[u.Email] = u
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error {
	for email, u := range f.byEmail {
		if u.ID == id {
			delete(f.byEmail, email)
		}
	}
	return nil
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// ──────────────────────────────────────────────────────────────────────────────
// Signup
// ──────────────────────────────────────────────────────────────────────────────

func TestSignup_CreatesAccount(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)

	user, fieldErrs, err := uc.Signup(context.Background(), dto.SignupForm{
		Email:          "alice@example.com",
		Password:       "secret-password",
		RepeatPassword: "secret-password",
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	// El hash nunca es la contraseña en claro.
	assert.NotEqual(t, "secret-password", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret-password")))
	assert.Equal(t, 1, repo.creates)
}

// Contraseñas que no coinciden: error de campo, el repositorio no se toca.
func TestSignup_MismatchedPasswordsRejectedBeforeRepo(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo)

	user, fieldErrs, err := uc.Signup(context.Background(), dto.SignupForm{
		Email:          "alice@example.com",
		Password:       "secret-password",
		RepeatPassword: "different",
	})
	require.NoError(t, err)
	assert.Nil(t, user)
	require.NotEmpty(t, fieldErrs)
	assert.Equal(t, "Passwords do not match", fieldErrs[len(fieldErrs)-1].Message)
	assert.Zero(t, repo.creates, "no debe crearse la cuenta")
	assert.Zero(t, repo.lookups, "ni siquiera debe consultarse el email")
}

func TestSignup_ShortPasswordRejected(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, fieldErrs, err := uc.Signup(context.Background(), dto.SignupForm{
		Email:          "alice@example.com",
		Password:       "12345",
		RepeatPassword: "12345",
	})
	require.NoError(t, err)
	require.NotEmpty(t, fieldErrs)
	assert.Equal(t, "Password must be 6+ characters long", fieldErrs[0].Message)
}

func TestSignup_EmptyFormCollectsAllFieldErrors(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, fieldErrs, err := uc.Signup(context.Background(), dto.SignupForm{})
	require.NoError(t, err)
	fields := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, fe.Field)
	}
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "repeatPassword")
}

func TestSignup_DuplicateEmail(t *testing.T) {
	existing := &entity.User{ID: "u1", Email: "alice@example.com", PasswordHash: hashed(t, "whatever")}
	uc := auth.NewAuthUseCase(newFakeUserRepo(existing))

	_, fieldErrs, err := uc.Signup(context.Background(), dto.SignupForm{
		Email:          "alice@example.com",
		Password:       "secret-password",
		RepeatPassword: "secret-password",
	})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, fieldErrs)
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	existing := &entity.User{ID: "u1", Email: "alice@example.com", PasswordHash: hashed(t, "secret-password")}
	uc := auth.NewAuthUseCase(newFakeUserRepo(existing))

	user, fieldErrs, err := uc.Login(context.Background(), dto.LoginForm{
		Email:    "alice@example.com",
		Password: "secret-password",
	})
	require.NoError(t, err)
	assert.Empty(t, fieldErrs)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)
}

func TestLogin_UnknownEmail(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, _, err := uc.Login(context.Background(), dto.LoginForm{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogin_WrongPassword(t *testing.T) {
	existing := &entity.User{ID: "u1", Email: "alice@example.com", PasswordHash: hashed(t, "secret-password")}
	uc := auth.NewAuthUseCase(newFakeUserRepo(existing))

	_, _, err := uc.Login(context.Background(), dto.LoginForm{
		Email:    "alice@example.com",
		Password: "not-the-password",
	})
	assert.ErrorIs(t, err, domain.ErrWrongPassword)
}

// ──────────────────────────────────────────────────────────────────────────────
// CRUD JSON
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateUser_InvalidInput(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.CreateUser(context.Background(), dto.CreateUserRequest{Email: "", Password: "secret"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.CreateUser(context.Background(), dto.CreateUserRequest{Email: "a@b.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())

	_, err := uc.GetUserByUsername(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateUser_PartialFields(t *testing.T) {
	existing := &entity.User{ID: "u1", Email: "alice@example.com", Username: "alice", PasswordHash: hashed(t, "pw")}
	repo := newFakeUserRepo(existing)
	uc := auth.NewAuthUseCase(repo)

	out, err := uc.UpdateUser(context.Background(), "u1", dto.UpdateUserRequest{Username: "alice2"})
	require.NoError(t, err)
	assert.Equal(t, "alice2", out.Username)
	assert.Equal(t, "alice@example.com", out.Email, "el email no enviado se conserva")
}

func TestDeleteUser_NotFound(t *testing.T) {
	uc := auth.NewAuthUseCase(newFakeUserRepo())
	err := uc.DeleteUser(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
