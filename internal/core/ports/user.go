package ports

import (
	"context"

	"focusos/internal/core/domain"
)

type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Insert(ctx context.Context, user domain.User) (domain.User, error)
}

type AuthService interface {
	Register(ctx context.Context, email, password string) (domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
