package mapper

import (
	"productivity/internal/adapter/http/dto"
	"productivity/internal/core/domain"
)

// deadlineLayout matches the ISO-8601 local-time format deadlines are
// exchanged in.
const deadlineLayout = "2006-01-02T15:04:05"

func ToTaskItems(tasks []domain.Task) []dto.TaskItem {
	items := make([]dto.TaskItem, 0, len(tasks))
	for _, task := range tasks {
		items = append(items, ToTaskItem(task))
	}
	return items
}

func ToTaskItem(task domain.Task) dto.TaskItem {
	item := dto.TaskItem{
		ID:           task.ID,
		Name:         task.Name,
		Description:  task.Description,
		ImportanceID: task.ImportanceID,
	}

	if task.Importance != nil {
		item.Importance = task.Importance.Name
	}

	if task.Status != nil {
		item.Status = task.Status.Name
	}

	if task.Deadline != nil {
		value := task.Deadline.Format(deadlineLayout)
		item.Deadline = &value
	}

	return item
}

func ToTaskDetail(task domain.Task) dto.TaskDetail {
	detail := dto.TaskDetail{
		ID:           task.ID,
		Name:         task.Name,
		Description:  task.Description,
		ImportanceID: task.ImportanceID,
		StatusID:     task.StatusID,
	}

	if task.Importance != nil {
		detail.Importance = task.Importance.Name
	}

	if task.Status != nil {
		detail.Status = task.Status.Name
	}

	if task.Deadline != nil {
		value := task.Deadline.Format(deadlineLayout)
		detail.Deadline = &value
	}

	return detail
}
