package ports

import (
	"context"

	"productivity/internal/core/domain"
)

type UserRepository interface {
	FindByLogin(ctx context.Context, login string) (domain.User, error)
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	Insert(ctx context.Context, user domain.User) (uint64, error)
	Update(ctx context.Context, id uint64, in domain.UpdateUserInput) error
	// Delete removes the user and all owned tasks in one transaction.
	Delete(ctx context.Context, id uint64) error
}

type UserService interface {
	Register(ctx context.Context, in domain.RegisterUserInput) error
	// Login returns a bearer token for valid credentials.
	Login(ctx context.Context, login, password string) (string, error)
	Profile(ctx context.Context, login string) (domain.User, error)
	// Update applies a partial update; when the login changes it
	// returns a freshly issued token for the new login.
	Update(ctx context.Context, login string, in domain.UpdateUserInput) (string, error)
	Delete(ctx context.Context, login string) error
}
