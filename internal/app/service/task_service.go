package service

import (
	"context"

	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
)

type TaskService struct {
	taskRepository ports.TaskRepository
	userRepository ports.UserRepository
}

func NewTaskService(taskRepository ports.TaskRepository, userRepository ports.UserRepository) *TaskService {
	return &TaskService{taskRepository: taskRepository, userRepository: userRepository}
}

func (s *TaskService) ListOwned(ctx context.Context, login string) ([]domain.Task, error) {
	user, err := s.userRepository.FindByLogin(ctx, login)
	if err != nil {
		return nil, err
	}

	return s.taskRepository.ListByOwner(ctx, user.ID)
}

func (s *TaskService) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.FindByID(ctx, id)
}

// Create stores a task for the authenticated user. Status is always
// forced to open and the owner to the caller, whatever the payload
// carried.
func (s *TaskService) Create(ctx context.Context, login string, in domain.CreateTaskInput) (domain.Task, error) {
	user, err := s.userRepository.FindByLogin(ctx, login)
	if err != nil {
		return domain.Task{}, err
	}

	deadline := in.Deadline
	id, err := s.taskRepository.Insert(ctx, domain.Task{
		Name:         in.Name,
		Description:  in.Description,
		ImportanceID: in.ImportanceID,
		StatusID:     domain.StatusOpen,
		Deadline:     &deadline,
		UserID:       user.ID,
	})
	if err != nil {
		return domain.Task{}, err
	}

	return s.taskRepository.FindByID(ctx, id)
}

func (s *TaskService) Update(ctx context.Context, id uint64, in domain.UpdateTaskInput) error {
	if _, err := s.taskRepository.FindByID(ctx, id); err != nil {
		return err
	}

	return s.taskRepository.Update(ctx, id, in)
}

var _ ports.TaskService = (*TaskService)(nil)
