package ports

import (
	"context"

	"productivity/internal/core/domain"
)

type RoleRepository interface {
	ListAll(ctx context.Context) ([]domain.Role, error)
}

type RoleService interface {
	ListRoles(ctx context.Context) ([]domain.Role, error)
}
