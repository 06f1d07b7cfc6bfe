package ports

import (
	"context"

	"productivity/internal/core/domain"
)

type TaskRepository interface {
	ListByOwner(ctx context.Context, userID uint64) ([]domain.Task, error)
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	Insert(ctx context.Context, task domain.Task) (uint64, error)
	Update(ctx context.Context, id uint64, in domain.UpdateTaskInput) error
}

type TaskService interface {
	ListOwned(ctx context.Context, login string) ([]domain.Task, error)
	FindByID(ctx context.Context, id uint64) (domain.Task, error)
	Create(ctx context.Context, login string, in domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, id uint64, in domain.UpdateTaskInput) error
}
