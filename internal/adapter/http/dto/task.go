package dto

type TaskItem struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Importance   string  `json:"importance"`
	ImportanceID uint64  `json:"importance_id"`
	Status       string  `json:"status"`
	Deadline     *string `json:"deadline"`
}

// TaskDetail additionally carries the status id, matching the single
// task view.
type TaskDetail struct {
	ID           uint64  `json:"id"`
	Name         string  `json:"name"`
	Description  string  `json:"description"`
	Importance   string  `json:"importance"`
	ImportanceID uint64  `json:"importance_id"`
	Status       string  `json:"status"`
	StatusID     uint64  `json:"status_id"`
	Deadline     *string `json:"deadline"`
}

type CreateTaskRequest struct {
	Name         string `json:"name" binding:"required,max=255"`
	Description  string `json:"description" binding:"required,max=1000"`
	ImportanceID uint64 `json:"importance_id" binding:"required,gt=0"`
	Deadline     string `json:"deadline" binding:"required"`
}

// UpdateTaskRequest is a truthy partial update, same semantics as
// UpdateUserRequest.
type UpdateTaskRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ImportanceID uint64 `json:"importance_id"`
	StatusID     uint64 `json:"status_id"`
	Deadline     string `json:"deadline"`
}
