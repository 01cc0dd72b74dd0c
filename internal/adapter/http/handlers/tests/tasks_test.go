package tests

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"focusos/internal/adapter/http/dto"
	"focusos/internal/adapter/http/handlers"
	"focusos/internal/adapter/http/middleware"
	"focusos/internal/core/domain"
	"focusos/pkg/apierrors"
	"focusos/pkg/translator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const validTaskID = "65b0a1f2e4b0c83f5c000001"

func newTaskRouter(serviceMock *taskServiceMock) *gin.Engine {
	handler := handlers.NewTaskHandler(serviceMock)

	router := gin.New()
	group := router.Group("/", middleware.LanguageMiddleware())
	group.GET("/tasks", handler.ListTasks)
	group.POST("/tasks", handler.CreateTask)
	group.PUT("/tasks/:id", handler.ToggleTask)
	group.DELETE("/tasks/:id", handler.DeleteTask)
	group.POST("/migrate-tasks-category", handler.MigrateTasksCategory)
	return router
}

func TestTaskHandler_ListTasks_Success(t *testing.T) {
	habitID := "65b0a1f2e4b0c83f5c000009"

	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, "u@x.com", (*string)(nil)).Return(
		[]domain.Task{
			{
				ID:            validTaskID,
				OwnerEmail:    "u@x.com",
				Text:          "Habit: Read",
				Completed:     true,
				Priority:      domain.TaskPriorityHigh,
				Category:      "Work",
				Date:          "2024-01-01",
				Time:          "00:00",
				IsHabit:       true,
				LinkedHabitID: &habitID,
			},
		},
		nil,
	).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodGet, "/tasks?userEmail=u@x.com", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, validTaskID, got[0].ID)
	require.Equal(t, "Habit: Read", got[0].Text)
	require.True(t, got[0].Completed)
	require.Equal(t, "high", got[0].Priority)
	require.True(t, got[0].IsHabit)
	require.NotNil(t, got[0].LinkedHabitID)
	require.Equal(t, habitID, *got[0].LinkedHabitID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_DateFilter(t *testing.T) {
	date := "2024-01-01"
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, "u@x.com", &date).Return([]domain.Task{}, nil).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodGet, "/tasks?userEmail=u@x.com&date=2024-01-01", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_MissingUserEmail(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "User email required", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Create", mock.Anything, domain.CreateTaskInput{
		OwnerEmail: "u@x.com",
		Text:       "Buy milk",
		Priority:   domain.TaskPriorityLow,
	}).Return(domain.Task{
		ID:         validTaskID,
		OwnerEmail: "u@x.com",
		Text:       "Buy milk",
		Priority:   domain.TaskPriorityLow,
		Category:   "Work",
		Date:       "2024-01-01",
		Time:       "00:00",
	}, nil).Once()

	router := newTaskRouter(serviceMock)
	body := `{"userEmail":"u@x.com","text":"Buy milk","priority":"low"}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, validTaskID, got.ID)
	require.Equal(t, "Buy milk", got.Text)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_CreateTask_HabitFlagWithoutLink(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	body := `{"userEmail":"u@x.com","text":"Habit: Read","isHabit":true}`
	req := httptest.NewRequest(http.MethodPost, "/tasks", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Invalid task payload", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Toggle", mock.Anything, validTaskID, true).Return(domain.Task{
		ID:         validTaskID,
		OwnerEmail: "u@x.com",
		Text:       "Buy milk",
		Completed:  true,
		Priority:   domain.TaskPriorityMedium,
		Date:       "2024-01-01",
	}, nil).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodPut, "/tasks/"+validTaskID, strings.NewReader(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.TaskItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.True(t, got.Completed)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Toggle", mock.Anything, validTaskID, true).
		Return(domain.Task{}, domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodPut, "/tasks/"+validTaskID, strings.NewReader(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, "Task not found", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_InvalidID(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPut, "/tasks/not-an-id", strings.NewReader(`{"completed":true}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ToggleTask_MissingCompleted(t *testing.T) {
	serviceMock := new(taskServiceMock)
	router := newTaskRouter(serviceMock)

	req := httptest.NewRequest(http.MethodPut, "/tasks/"+validTaskID, strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_Success(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, validTaskID).Return(nil).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodDelete, "/tasks/"+validTaskID, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.DeleteTaskResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, validTaskID, got.ID)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_DeleteTask_NotFound(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("Delete", mock.Anything, validTaskID).Return(domain.ErrTaskNotFound).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodDelete, "/tasks/"+validTaskID, nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_MigrateTasksCategory(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("BackfillCategory", mock.Anything).Return(int64(3), nil).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodPost, "/migrate-tasks-category", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.MigrateTasksResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, int64(3), got.Count)
	serviceMock.AssertExpectations(t)
}

func TestTaskHandler_ListTasks_StoreError(t *testing.T) {
	serviceMock := new(taskServiceMock)
	serviceMock.On("List", mock.Anything, "u@x.com", (*string)(nil)).
		Return(nil, errors.New("db is down")).Once()

	router := newTaskRouter(serviceMock)
	req := httptest.NewRequest(http.MethodGet, "/tasks?userEmail=u@x.com", nil)
	req.Header.Set("Accept-Language", translator.LanguageEn)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var got apierrors.JsonErr
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Equal(t, http.StatusInternalServerError, got.ErrDetails.Code)
	require.Equal(t, "Failed to list tasks", got.ErrDetails.Message)
	serviceMock.AssertExpectations(t)
}
