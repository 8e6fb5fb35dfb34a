package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"HRDeskGo/models"
	"HRDeskGo/services"
)

type listOnlyTaskStore struct {
	tasks []models.Task
}

func (s *listOnlyTaskStore) List(ctx context.Context, userID string) ([]models.Task, error) {
	var out []models.Task
	for _, t := range s.tasks {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *listOnlyTaskStore) ListOpen(ctx context.Context) ([]models.Task, error) {
	return nil, nil
}

func (s *listOnlyTaskStore) FindByID(ctx context.Context, userID, taskID string) (*models.Task, error) {
	return nil, services.ErrTaskNotFound
}

func (s *listOnlyTaskStore) Insert(ctx context.Context, task *models.Task) error { return nil }

func (s *listOnlyTaskStore) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) error {
	return nil
}

func (s *listOnlyTaskStore) Delete(ctx context.Context, userID, taskID string) error { return nil }

type noSessions struct{}

func (noSessions) Current(ctx context.Context) (*services.Session, error) {
	return nil, services.ErrNoSession
}

type discardStore struct{}

func (discardStore) Insert(ctx context.Context, n *models.Notification) error { return nil }

func newTaskListRouter(store *listOnlyTaskStore, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)

	logger := zap.NewNop().Sugar()
	tasks := services.NewTaskService(store, services.NewNotificationService(discardStore{}, noSessions{}), logger)
	notifications := services.NewNotificationService(discardStore{}, noSessions{})
	feed := services.NewChangeFeed(logger)
	tc := NewTaskController(tasks, notifications, noSessions{}, feed)

	r := gin.New()
	r.GET("/tasks", func(c *gin.Context) {
		c.Set("uid", userID)
		tc.ListTasks(c)
	})
	return r
}

func TestListTasksFilter(t *testing.T) {
	store := &listOnlyTaskStore{tasks: []models.Task{
		{ID: "t1", Title: "Review contracts", Status: models.StatusPending, UserID: "u1"},
		{ID: "t2", Title: "Publish handbook", Status: models.StatusCompleted, UserID: "u1"},
		{ID: "t3", Title: "Schedule interviews", Status: models.StatusInProgress, UserID: "u1"},
	}}
	router := newTaskListRouter(store, "u1")

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{name: "no filter returns everything", query: "", wantIDs: []string{"t1", "t2", "t3"}},
		{name: "active excludes completed", query: "?filter=active", wantIDs: []string{"t1", "t3"}},
		{name: "completed only", query: "?filter=completed", wantIDs: []string{"t2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/tasks"+tt.query, nil)
			router.ServeHTTP(w, req)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
			}
			var resp models.TaskListResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if len(resp.Tasks) != len(tt.wantIDs) {
				t.Fatalf("got %d tasks, want %d", len(resp.Tasks), len(tt.wantIDs))
			}
			for i, id := range tt.wantIDs {
				if resp.Tasks[i].ID != id {
					t.Errorf("tasks[%d].ID = %s, want %s", i, resp.Tasks[i].ID, id)
				}
			}
		})
	}
}

func TestListTasksFilterRejectsUnknownValue(t *testing.T) {
	router := newTaskListRouter(&listOnlyTaskStore{}, "u1")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/tasks?filter=archived", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}
