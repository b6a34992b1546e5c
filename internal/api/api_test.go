package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safuramariyam/greenthumb/internal/event"
	"github.com/safuramariyam/greenthumb/internal/model"
	"github.com/safuramariyam/greenthumb/internal/repository"
	"github.com/safuramariyam/greenthumb/internal/service"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSamples struct{}

func (stubSamples) Fetch(ctx context.Context, lat, lon float64) ([]model.WeatherSample, error) {
	return nil, fmt.Errorf("no live source in tests")
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()

	tasks := repository.NewMemoryCollection(func() []model.CalendarTask { return []model.CalendarTask{} })
	templates := repository.NewMemoryCollection(repository.DefaultTemplates)
	notifications := repository.NewMemoryCollection(func() []model.Notification { return []model.Notification{} })
	settings := repository.NewMemoryCollection(repository.DefaultSettings)

	broadcaster := event.NewBroadcaster()
	taskSvc := service.NewTaskService(tasks, broadcaster)
	templateSvc := service.NewTemplateService(templates, taskSvc)
	weatherSvc := service.NewWeatherService(stubSamples{})
	notificationSvc := service.NewNotificationService(
		notifications, settings, taskSvc, weatherSvc, 12.97, 77.59, nil,
	)

	server := NewServer(taskSvc, templateSvc, weatherSvc, notificationSvc, broadcaster, nil, 12.97, 77.59)
	return server.Router()
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

// TestHealth verifies the liveness endpoint.
func TestHealth(t *testing.T) {
	router := newTestRouter(t)
	w := doJSON(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decode[map[string]any](t, w)
	if body["status"] != "healthy" {
		t.Errorf("status field = %v", body["status"])
	}
}

// TestTaskLifecycle walks a task through create, read, update, and delete.
func TestTaskLifecycle(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/calendar/tasks",
		`{"title":"Water tomatoes","type":"watering","date":"2025-06-11","priority":"high"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want 201: %s", w.Code, w.Body.String())
	}
	created := decode[model.CalendarTask](t, w)
	if created.ID != 1 || created.Title != "Water tomatoes" {
		t.Fatalf("created = %+v", created)
	}

	w = doJSON(t, router, http.MethodGet, "/api/calendar/tasks/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/api/calendar/tasks/1", `{"completed":true}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d: %s", w.Code, w.Body.String())
	}
	updated := decode[model.CalendarTask](t, w)
	if !updated.Completed {
		t.Error("update did not set completed")
	}
	if updated.Title != "Water tomatoes" {
		t.Errorf("update clobbered title: %q", updated.Title)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/calendar/tasks/1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/api/calendar/tasks/1", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("get after delete = %d, want 404", w.Code)
	}
}

// TestTaskErrors covers validation and bad-path status mapping.
func TestTaskErrors(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		status int
	}{
		{"missing title", http.MethodPost, "/api/calendar/tasks", `{"type":"watering","date":"2025-06-11"}`, http.StatusBadRequest},
		{"bad date", http.MethodPost, "/api/calendar/tasks", `{"title":"x","type":"watering","date":"11-06-2025"}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, "/api/calendar/tasks", `{`, http.StatusBadRequest},
		{"unknown id", http.MethodGet, "/api/calendar/tasks/99", "", http.StatusNotFound},
		{"non-numeric id", http.MethodGet, "/api/calendar/tasks/abc", "", http.StatusBadRequest},
		{"delete unknown", http.MethodDelete, "/api/calendar/tasks/99", "", http.StatusNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(t, router, tc.method, tc.path, tc.body)
			if w.Code != tc.status {
				t.Errorf("status = %d, want %d: %s", w.Code, tc.status, w.Body.String())
			}
		})
	}
}

// TestApplyTemplate verifies template expansion lands tasks in the store.
func TestApplyTemplate(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/templates/apply/rice_monsoon?start_date=2025-01-01", "")
	if w.Code != http.StatusOK {
		t.Fatalf("apply status = %d: %s", w.Code, w.Body.String())
	}
	result := decode[service.ApplyResult](t, w)
	if result.TasksCreated != 10 {
		t.Errorf("tasks created = %d, want 10", result.TasksCreated)
	}
	if result.StartDate != "2025-01-01" {
		t.Errorf("start date = %q", result.StartDate)
	}

	w = doJSON(t, router, http.MethodGet, "/api/calendar/tasks", "")
	tasks := decode[[]model.CalendarTask](t, w)
	if len(tasks) != 10 {
		t.Errorf("stored tasks = %d, want 10", len(tasks))
	}

	w = doJSON(t, router, http.MethodPost, "/api/templates/apply/no_such_template", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown template status = %d, want 404", w.Code)
	}
}

// TestTemplateListing covers the read-only template endpoints.
func TestTemplateListing(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/templates", "")
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	templates := decode[[]model.TaskTemplate](t, w)
	if len(templates) != 4 {
		t.Errorf("got %d templates, want 4", len(templates))
	}

	w = doJSON(t, router, http.MethodGet, "/api/templates/crop/Rice", "")
	byCrop := decode[[]model.TaskTemplate](t, w)
	if len(byCrop) != 1 || byCrop[0].ID != "rice_monsoon" {
		t.Errorf("by crop = %+v", byCrop)
	}

	w = doJSON(t, router, http.MethodGet, "/api/templates/season/summer", "")
	bySeason := decode[[]model.TaskTemplate](t, w)
	if len(bySeason) != 2 {
		t.Errorf("got %d summer templates, want 2", len(bySeason))
	}

	w = doJSON(t, router, http.MethodGet, "/api/templates/nope", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("unknown template status = %d, want 404", w.Code)
	}
}

// TestWeatherEndpoints verifies the forecast and impact routes respond even
// without a live provider, through the synthetic fallback.
func TestWeatherEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/weather/forecast?days=7", "")
	if w.Code != http.StatusOK {
		t.Fatalf("forecast status = %d", w.Code)
	}
	forecast := decode[model.WeatherForecast](t, w)
	if len(forecast.Forecasts) != 7 {
		t.Errorf("got %d days, want 7", len(forecast.Forecasts))
	}

	w = doJSON(t, router, http.MethodGet, "/api/weather/impact", "")
	if w.Code != http.StatusOK {
		t.Fatalf("impact status = %d", w.Code)
	}
	impact := decode[model.WeatherImpact](t, w)
	if !impact.WillRainToday {
		t.Error("synthetic forecast rains today, impact disagrees")
	}

	w = doJSON(t, router, http.MethodGet, "/api/weather/recommendations", "")
	if w.Code != http.StatusOK {
		t.Fatalf("recommendations status = %d", w.Code)
	}
}

// TestNotificationEndpoints drives a check pass over HTTP and exercises the
// feed mutations.
func TestNotificationEndpoints(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/calendar/tasks",
		fmt.Sprintf(`{"title":"Water tomatoes","type":"watering","date":%q}`,
			time.Now().AddDate(0, 0, -2).Format(time.DateOnly)))
	if w.Code != http.StatusCreated {
		t.Fatalf("create task status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/api/notifications/check", "")
	if w.Code != http.StatusOK {
		t.Fatalf("check status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/notifications", "")
	feed := decode[model.NotificationFeed](t, w)
	if len(feed.Notifications) == 0 {
		t.Fatal("check produced no notifications for an overdue task")
	}
	if feed.UnreadCount != len(feed.Notifications) {
		t.Errorf("unread = %d, want %d", feed.UnreadCount, len(feed.Notifications))
	}

	id := feed.Notifications[0].ID
	w = doJSON(t, router, http.MethodPut, "/api/notifications/"+id+"/read", "")
	if w.Code != http.StatusOK {
		t.Fatalf("mark read status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodPut, "/api/notifications/notif_missing/read", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("mark read unknown id = %d, want 404", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/api/notifications/mark-all-read", "")
	if w.Code != http.StatusOK {
		t.Fatalf("mark all read status = %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/api/notifications/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}
	w = doJSON(t, router, http.MethodDelete, "/api/notifications/"+id, "")
	if w.Code != http.StatusNotFound {
		t.Errorf("delete twice = %d, want 404", w.Code)
	}
}

// TestNotificationSettingsRoundTrip verifies settings read back what was put.
func TestNotificationSettingsRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/notifications/settings", "")
	if w.Code != http.StatusOK {
		t.Fatalf("get settings status = %d", w.Code)
	}
	settings := decode[model.NotificationSettings](t, w)
	if settings.UpcomingTaskReminder != 24 {
		t.Errorf("default reminder window = %d, want 24", settings.UpcomingTaskReminder)
	}

	w = doJSON(t, router, http.MethodPut, "/api/notifications/settings",
		`{"browser_notifications":false,"upcoming_task_reminder":48,"overdue_task_alert":false,"weather_alerts":false}`)
	if w.Code != http.StatusOK {
		t.Fatalf("put settings status = %d: %s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodGet, "/api/notifications/settings", "")
	settings = decode[model.NotificationSettings](t, w)
	if settings.BrowserNotifications || settings.UpcomingTaskReminder != 48 {
		t.Errorf("settings did not round trip: %+v", settings)
	}
}

// TestAnalysisUnconfigured verifies the analysis routes report unavailability
// when no model service is wired.
func TestAnalysisUnconfigured(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/analyze", "")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("analyze status = %d, want 503", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/soil/analyze-manual", `{"ph":6.5}`)
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("soil analyze status = %d, want 503", w.Code)
	}

	w = doJSON(t, router, http.MethodGet, "/soil/ph-guide", "")
	if w.Code != http.StatusOK {
		t.Errorf("ph guide status = %d, want 200", w.Code)
	}
}
