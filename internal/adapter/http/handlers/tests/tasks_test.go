package tests

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"productivity/internal/adapter/http/dto"
	"productivity/internal/adapter/http/handlers"
	"productivity/internal/adapter/http/middleware"
	"productivity/internal/core/domain"
	"productivity/pkg/apierrors"
	"productivity/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListOwned(ctx context.Context, login string) ([]domain.Task, error) {
	args := m.Called(ctx, login)

	var tasks []domain.Task
	if value := args.Get(0); value != nil {
		tasks = value.([]domain.Task)
	}
	return tasks, args.Error(1)
}

func (m *taskServiceMock) FindByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Create(ctx context.Context, login string, in domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, login, in)

	var task domain.Task
	if value := args.Get(0); value != nil {
		task = value.(domain.Task)
	}
	return task, args.Error(1)
}

func (m *taskServiceMock) Update(ctx context.Context, id uint64, in domain.UpdateTaskInput) error {
	args := m.Called(ctx, id, in)
	return args.Error(0)
}

func TestTaskHandler_ListMine_Success(t *testing.T) {
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("ListOwned", mock.Anything, "alice").Return(
		[]domain.Task{
			{
				ID:           3,
				Name:         "Write report",
				Description:  "quarterly numbers",
				ImportanceID: 2,
				StatusID:     1,
				Deadline:     &deadline,
				UserID:       7,
				Importance:   &domain.Importance{ID: 2, Name: "high"},
				Status:       &domain.Status{ID: 1, Name: "open"},
			},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/users/me/tasks", middleware.LanguageMiddleware(), withLogin("alice"), handler.ListMine)

	req := httptest.NewRequest(http.MethodGet, "/users/me/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, uint64(3), got[0].ID)
	require.Equal(t, "Write report", got[0].Name)
	require.Equal(t, "quarterly numbers", got[0].Description)
	require.Equal(t, "high", got[0].Importance)
	require.Equal(t, uint64(2), got[0].ImportanceID)
	require.Equal(t, "open", got[0].Status)
	require.Equal(t, "2025-01-01T00:00:00", *got[0].Deadline)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListMine_UserNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListOwned", mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/users/me/tasks", middleware.LanguageMiddleware(), withLogin("ghost"), handler.ListMine)

	req := httptest.NewRequest(http.MethodGet, "/users/me/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetByID_Success(t *testing.T) {
	deadline := time.Date(2025, 3, 15, 18, 30, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("FindByID", mock.Anything, uint64(9)).Return(
		domain.Task{
			ID:           9,
			Name:         "Fix the bug",
			Description:  "panic on empty input",
			ImportanceID: 1,
			StatusID:     2,
			Deadline:     &deadline,
			UserID:       7,
			Importance:   &domain.Importance{ID: 1, Name: "critical"},
			Status:       &domain.Status{ID: 2, Name: "in progress"},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/tasks/:id", middleware.LanguageMiddleware(), withLogin("alice"), handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/tasks/9", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(9), got.ID)
	require.Equal(t, "critical", got.Importance)
	require.Equal(t, "in progress", got.Status)
	require.Equal(t, uint64(2), got.StatusID)
	require.Equal(t, "2025-03-15T18:30:00", *got.Deadline)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_GetByID_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/tasks/:id", middleware.LanguageMiddleware(), withLogin("alice"), handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/tasks/invalid", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid id", got.ErrDetails.Message)
}

func TestTaskHandler_GetByID_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("FindByID", mock.Anything, uint64(999)).Return(nil, domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/tasks/:id", middleware.LanguageMiddleware(), withLogin("alice"), handler.GetByID)

	req := httptest.NewRequest(http.MethodGet, "/tasks/999", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task information not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_Create_ForcesOpenStatus(t *testing.T) {
	deadline := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, "alice", domain.CreateTaskInput{
		Name:         "Write report",
		Description:  "quarterly numbers",
		ImportanceID: 2,
		Deadline:     deadline,
	}).Return(
		domain.Task{
			ID:           11,
			Name:         "Write report",
			Description:  "quarterly numbers",
			ImportanceID: 2,
			StatusID:     1,
			Deadline:     &deadline,
			UserID:       7,
			Importance:   &domain.Importance{ID: 2, Name: "high"},
			Status:       &domain.Status{ID: 1, Name: "open"},
		},
		nil,
	).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/users/me/tasks/add", middleware.LanguageMiddleware(), withLogin("alice"), handler.Create)

	// A status_id in the payload is ignored: creation always starts open.
	body := `{"name":"Write report","description":"quarterly numbers","importance_id":2,"deadline":"2025-01-01T00:00:00","status_id":4}`
	req := httptest.NewRequest(http.MethodPost, "/users/me/tasks/add", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, uint64(11), got.ID)
	require.Equal(t, uint64(1), got.StatusID)
	require.Equal(t, "open", got.Status)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_Create_UnparsableDeadline(t *testing.T) {
	serviceMock := new(taskServiceMock)
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/users/me/tasks/add", middleware.LanguageMiddleware(), withLogin("alice"), handler.Create)

	body := `{"name":"Write report","description":"quarterly numbers","importance_id":2,"deadline":"tomorrow"}`
	req := httptest.NewRequest(http.MethodPost, "/users/me/tasks/add", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to create the task", got.ErrDetails.Message)
}

func TestTaskHandler_Create_UserNotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, "ghost", mock.Anything).Return(nil, domain.ErrUserNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.POST("/users/me/tasks/add", middleware.LanguageMiddleware(), withLogin("ghost"), handler.Create)

	body := `{"name":"Write report","description":"quarterly numbers","importance_id":2,"deadline":"2025-01-01T00:00:00"}`
	req := httptest.NewRequest(http.MethodPost, "/users/me/tasks/add", strings.NewReader(body))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_Update_PartialFields(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, uint64(9), domain.UpdateTaskInput{
		StatusID: 4,
	}).Return(nil).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.PUT("/tasks/:id/update", middleware.LanguageMiddleware(), withLogin("alice"), handler.Update)

	req := httptest.NewRequest(http.MethodPut, "/tasks/9/update", strings.NewReader(`{"status_id":4}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task updated successfully", got.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_Update_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Update", mock.Anything, uint64(999), mock.Anything).Return(domain.ErrTaskNotFound).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.PUT("/tasks/:id/update", middleware.LanguageMiddleware(), withLogin("alice"), handler.Update)

	req := httptest.NewRequest(http.MethodPut, "/tasks/999/update", strings.NewReader(`{"name":"new name"}`))
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListMine_StoreError(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("ListOwned", mock.Anything, "alice").Return(nil, errors.New("db is down")).Once()
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	router.GET("/users/me/tasks", middleware.LanguageMiddleware(), withLogin("alice"), handler.ListMine)

	req := httptest.NewRequest(http.MethodGet, "/users/me/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Failed to list the tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
