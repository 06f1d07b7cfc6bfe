package domain

import "time"

// Reference data seeded by the database provisioning scripts. Task
// creation always starts in the open status; the deleted status is
// only ever reached through an update.
const (
	StatusOpen       uint64 = 1
	StatusInProgress uint64 = 2
	StatusDone       uint64 = 3
	StatusDeleted    uint64 = 4

	DefaultRoleID uint64 = 1
)

type Importance struct {
	ID   uint64
	Name string
}

type Status struct {
	ID   uint64
	Name string
}

type Task struct {
	ID           uint64
	Name         string
	Description  string
	ImportanceID uint64
	StatusID     uint64
	Deadline     *time.Time
	UserID       uint64
	Importance   *Importance
	Status       *Status
}

type CreateTaskInput struct {
	Name         string
	Description  string
	ImportanceID uint64
	Deadline     time.Time
}

// UpdateTaskInput carries a partial task update with the same
// zero-means-absent semantics as UpdateUserInput.
type UpdateTaskInput struct {
	Name         string
	Description  string
	ImportanceID uint64
	StatusID     uint64
	Deadline     *time.Time
}

func (in UpdateTaskInput) IsEmpty() bool {
	return in.Name == "" && in.Description == "" && in.ImportanceID == 0 && in.StatusID == 0 && in.Deadline == nil
}
