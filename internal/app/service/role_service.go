package service

import (
	"context"

	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
)

type RoleService struct {
	roleRepository ports.RoleRepository
}

func NewRoleService(roleRepository ports.RoleRepository) *RoleService {
	return &RoleService{roleRepository: roleRepository}
}

// ListRoles returns every role; an empty role table is reported as
// not found rather than as an empty list.
func (s *RoleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepository.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(roles) == 0 {
		return nil, domain.ErrRolesNotFound
	}

	return roles, nil
}

var _ ports.RoleService = (*RoleService)(nil)
