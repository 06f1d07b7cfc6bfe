package db

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
)

const findUserByLoginQuery = `
SELECT
  u.id,
  u.name,
  u.login,
  u.password,
  u.image,
  u.role_id,
  r.name AS role_name
FROM user u
LEFT JOIN role r ON r.id = u.role_id
WHERE u.login = ?;
`

const existsUserByLoginQuery = `SELECT EXISTS (SELECT 1 FROM user WHERE login = ?);`

const insertUserQuery = `INSERT INTO user (name, login, password, image, role_id) VALUES (?, ?, ?, ?, ?);`

const deleteUserTasksQuery = `DELETE FROM task WHERE user_id = ?;`

const deleteUserQuery = `DELETE FROM user WHERE id = ?;`

// mysqlDuplicateEntry is the server error for a violated unique key.
const mysqlDuplicateEntry = 1062

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID       uint64         `db:"id"`
	Name     string         `db:"name"`
	Login    string         `db:"login"`
	Password string         `db:"password"`
	Image    []byte         `db:"image"`
	RoleID   sql.NullInt64  `db:"role_id"`
	RoleName sql.NullString `db:"role_name"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) FindByLogin(ctx context.Context, login string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByLoginQuery, login); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}

	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	var exists bool
	if err := r.db.GetContext(ctx, &exists, existsUserByLoginQuery, login); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *UserRepository) Insert(ctx context.Context, user domain.User) (uint64, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery, user.Name, user.Login, user.Password, user.Image, user.RoleID)
	if err != nil {
		return 0, mapDuplicateLogin(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return uint64(id), nil
}

func (r *UserRepository) Update(ctx context.Context, id uint64, in domain.UpdateUserInput) error {
	if in.IsEmpty() {
		return nil
	}

	builder := sq.Update("user")
	if in.Name != "" {
		builder = builder.Set("name", in.Name)
	}
	if in.Login != "" {
		builder = builder.Set("login", in.Login)
	}
	if in.Password != "" {
		builder = builder.Set("password", in.Password)
	}
	if in.RoleID != 0 {
		builder = builder.Set("role_id", in.RoleID)
	}
	if len(in.Image) > 0 {
		builder = builder.Set("image", in.Image)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return mapDuplicateLogin(err)
	}

	return nil
}

// Delete removes the user and every owned task inside one transaction.
// The schema does not cascade on its own.
func (r *UserRepository) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, deleteUserTasksQuery, id); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx, deleteUserQuery, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return tx.Commit()
}

func mapDuplicateLogin(err error) error {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
		return domain.ErrLoginTaken
	}
	return err
}

func mapUserRowToDomainUser(row userRow) domain.User {
	user := domain.User{
		ID:       row.ID,
		Name:     row.Name,
		Login:    row.Login,
		Password: row.Password,
		Image:    row.Image,
	}

	if row.RoleID.Valid {
		user.RoleID = uint64(row.RoleID.Int64)
	}

	if row.RoleID.Valid && row.RoleName.Valid {
		user.Role = &domain.Role{
			ID:   uint64(row.RoleID.Int64),
			Name: row.RoleName.String,
		}
	}

	return user
}
