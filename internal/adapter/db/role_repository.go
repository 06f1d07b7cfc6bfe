package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
)

const listRolesQuery = `SELECT id, name FROM role ORDER BY id;`

type RoleRepository struct {
	db *sqlx.DB
}

type roleRow struct {
	ID   uint64 `db:"id"`
	Name string `db:"name"`
}

var _ ports.RoleRepository = (*RoleRepository)(nil)

func NewRoleRepository(db *sqlx.DB) *RoleRepository {
	return &RoleRepository{db: db}
}

func (r *RoleRepository) ListAll(ctx context.Context) ([]domain.Role, error) {
	var rows []roleRow
	if err := r.db.SelectContext(ctx, &rows, listRolesQuery); err != nil {
		return nil, err
	}

	roles := make([]domain.Role, 0, len(rows))
	for _, row := range rows {
		roles = append(roles, domain.Role{ID: row.ID, Name: row.Name})
	}

	return roles, nil
}
