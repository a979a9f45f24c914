package repository

import (
	"context"

	"github.com/jhoicas/invoicely-web/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// Las búsquedas devuelven (nil, nil) cuando no hay fila; el caso de uso lo
// traduce a domain.ErrNotFound de forma uniforme.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
}
