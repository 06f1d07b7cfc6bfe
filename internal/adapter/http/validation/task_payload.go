package validation

import (
	"errors"
	"time"

	"productivity/internal/adapter/http/dto"
	"productivity/internal/core/domain"
)

var ErrInvalidDeadline = errors.New("invalid deadline")

// Accepted deadline formats, most specific first. Matches ISO-8601
// local timestamps with an RFC 3339 and a bare-date fallback.
var deadlineLayouts = []string{
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006-01-02",
}

func ParseDeadline(value string) (time.Time, error) {
	for _, layout := range deadlineLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, ErrInvalidDeadline
}

func BuildCreateTaskInput(req dto.CreateTaskRequest) (domain.CreateTaskInput, error) {
	deadline, err := ParseDeadline(req.Deadline)
	if err != nil {
		return domain.CreateTaskInput{}, err
	}

	return domain.CreateTaskInput{
		Name:         req.Name,
		Description:  req.Description,
		ImportanceID: req.ImportanceID,
		Deadline:     deadline,
	}, nil
}

func BuildUpdateTaskInput(req dto.UpdateTaskRequest) (domain.UpdateTaskInput, error) {
	in := domain.UpdateTaskInput{
		Name:         req.Name,
		Description:  req.Description,
		ImportanceID: req.ImportanceID,
		StatusID:     req.StatusID,
	}

	if req.Deadline != "" {
		deadline, err := ParseDeadline(req.Deadline)
		if err != nil {
			return domain.UpdateTaskInput{}, err
		}
		in.Deadline = &deadline
	}

	return in, nil
}
