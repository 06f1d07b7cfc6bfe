package db

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"

	"productivity/internal/core/domain"
	"productivity/internal/core/ports"
)

const listTasksByOwnerQuery = `
SELECT
  t.id,
  t.name,
  t.description,
  t.importance_id,
  t.status_id,
  t.deadline,
  t.user_id,
  i.name AS importance_name,
  s.name AS status_name
FROM task t
LEFT JOIN importance i ON i.id = t.importance_id
LEFT JOIN status s ON s.id = t.status_id
WHERE t.user_id = ?
ORDER BY t.id;
`

const findTaskByIDQuery = `
SELECT
  t.id,
  t.name,
  t.description,
  t.importance_id,
  t.status_id,
  t.deadline,
  t.user_id,
  i.name AS importance_name,
  s.name AS status_name
FROM task t
LEFT JOIN importance i ON i.id = t.importance_id
LEFT JOIN status s ON s.id = t.status_id
WHERE t.id = ?;
`

const insertTaskQuery = `INSERT INTO task (name, description, importance_id, status_id, deadline, user_id) VALUES (?, ?, ?, ?, ?, ?);`

type TaskRepository struct {
	db *sqlx.DB
}

type taskRow struct {
	ID             uint64         `db:"id"`
	Name           string         `db:"name"`
	Description    sql.NullString `db:"description"`
	ImportanceID   sql.NullInt64  `db:"importance_id"`
	StatusID       sql.NullInt64  `db:"status_id"`
	Deadline       sql.NullTime   `db:"deadline"`
	UserID         sql.NullInt64  `db:"user_id"`
	ImportanceName sql.NullString `db:"importance_name"`
	StatusName     sql.NullString `db:"status_name"`
}

var _ ports.TaskRepository = (*TaskRepository)(nil)

func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) ListByOwner(ctx context.Context, userID uint64) ([]domain.Task, error) {
	var rows []taskRow
	if err := r.db.SelectContext(ctx, &rows, listTasksByOwnerQuery, userID); err != nil {
		return nil, err
	}

	tasks := make([]domain.Task, 0, len(rows))
	for _, row := range rows {
		tasks = append(tasks, mapTaskRowToDomainTask(row))
	}

	return tasks, nil
}

func (r *TaskRepository) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	var row taskRow
	if err := r.db.GetContext(ctx, &row, findTaskByIDQuery, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Task{}, domain.ErrTaskNotFound
		}
		return domain.Task{}, err
	}

	return mapTaskRowToDomainTask(row), nil
}

func (r *TaskRepository) Insert(ctx context.Context, task domain.Task) (uint64, error) {
	var deadline interface{}
	if task.Deadline != nil {
		deadline = *task.Deadline
	}

	result, err := r.db.ExecContext(ctx, insertTaskQuery,
		task.Name, task.Description, task.ImportanceID, task.StatusID, deadline, task.UserID)
	if err != nil {
		return 0, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}

	return uint64(id), nil
}

func (r *TaskRepository) Update(ctx context.Context, id uint64, in domain.UpdateTaskInput) error {
	if in.IsEmpty() {
		return nil
	}

	builder := sq.Update("task")
	if in.Name != "" {
		builder = builder.Set("name", in.Name)
	}
	if in.Description != "" {
		builder = builder.Set("description", in.Description)
	}
	if in.ImportanceID != 0 {
		builder = builder.Set("importance_id", in.ImportanceID)
	}
	if in.StatusID != 0 {
		builder = builder.Set("status_id", in.StatusID)
	}
	if in.Deadline != nil {
		builder = builder.Set("deadline", *in.Deadline)
	}

	query, args, err := builder.Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, query, args...)
	return err
}

func mapTaskRowToDomainTask(row taskRow) domain.Task {
	task := domain.Task{
		ID:   row.ID,
		Name: row.Name,
	}

	if row.Description.Valid {
		task.Description = row.Description.String
	}

	if row.ImportanceID.Valid {
		task.ImportanceID = uint64(row.ImportanceID.Int64)
	}

	if row.StatusID.Valid {
		task.StatusID = uint64(row.StatusID.Int64)
	}

	if row.Deadline.Valid {
		value := row.Deadline.Time
		task.Deadline = &value
	}

	if row.UserID.Valid {
		task.UserID = uint64(row.UserID.Int64)
	}

	if row.ImportanceID.Valid && row.ImportanceName.Valid {
		task.Importance = &domain.Importance{
			ID:   uint64(row.ImportanceID.Int64),
			Name: row.ImportanceName.String,
		}
	}

	if row.StatusID.Valid && row.StatusName.Valid {
		task.Status = &domain.Status{
			ID:   uint64(row.StatusID.Int64),
			Name: row.StatusName.String,
		}
	}

	return task
}
