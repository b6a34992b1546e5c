package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/safuramariyam/greenthumb/internal/model"
	"github.com/safuramariyam/greenthumb/internal/repository"
)

// retentionWindow is how long notifications are kept before the check pass
// prunes them.
const retentionWindow = 30 * 24 * time.Hour

// TaskSource provides the tasks a check pass inspects.
type TaskSource interface {
	List(ctx context.Context) ([]model.CalendarTask, error)
}

// ImpactSource provides a fresh weather impact for a check pass.
type ImpactSource interface {
	Impact(ctx context.Context, lat, lon float64, days int, now time.Time) model.WeatherImpact
}

// Announcer pushes a newly created notification to an external channel.
// Delivery is best effort; implementations log and swallow their own errors.
type Announcer interface {
	Announce(n model.Notification)
}

// NotificationService synthesizes, deduplicates, and expires notifications
// from the task store and the weather impact analysis.
type NotificationService struct {
	notifications repository.Collection[[]model.Notification]
	settings      repository.Collection[model.NotificationSettings]
	tasks         TaskSource
	weather       ImpactSource
	lat, lon      float64
	announcer     Announcer
}

func NewNotificationService(
	notifications repository.Collection[[]model.Notification],
	settings repository.Collection[model.NotificationSettings],
	tasks TaskSource,
	weather ImpactSource,
	lat, lon float64,
	announcer Announcer,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		settings:      settings,
		tasks:         tasks,
		weather:       weather,
		lat:           lat,
		lon:           lon,
		announcer:     announcer,
	}
}

// Check runs one notification pass: prune expired records, create reminders
// for tasks inside the reminder window, overdue alerts, and weather alerts
// for high-severity recommendations, each deduplicated against the existing
// unexpired set. The whole pass runs under the notification collection lock,
// so concurrent passes cannot both create the same notification.
func (s *NotificationService) Check(ctx context.Context, now time.Time) error {
	settings, err := s.settings.Load(ctx)
	if err != nil {
		return err
	}
	if !settings.BrowserNotifications {
		return nil
	}

	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return err
	}

	var recommendations []model.WeatherRecommendation
	if settings.WeatherAlerts {
		impact := s.weather.Impact(ctx, s.lat, s.lon, 7, now)
		recommendations = impact.Recommendations
	}

	var created []model.Notification
	_, err = s.notifications.Update(ctx, func(items []model.Notification) ([]model.Notification, error) {
		items = pruneExpired(items, now)

		for _, task := range tasks {
			if task.Completed {
				continue
			}
			due, err := time.ParseInLocation(time.DateOnly, task.Date, now.Location())
			if err != nil {
				continue
			}

			hoursUntil := due.Sub(now).Hours()
			if hoursUntil > 0 && hoursUntil <= float64(settings.UpcomingTaskReminder) {
				if !hasTaskNotification(items, model.NotificationTaskReminder, task.ID) {
					n := reminderNotification(task, int(hoursUntil), now)
					items = append(items, n)
					created = append(created, n)
				}
			}

			if settings.OverdueTaskAlert {
				daysOverdue := int(dateOf(now).Sub(due).Hours() / 24)
				if daysOverdue > 0 && !hasTaskNotification(items, model.NotificationOverdueAlert, task.ID) {
					n := overdueNotification(task, daysOverdue, now)
					items = append(items, n)
					created = append(created, n)
				}
			}
		}

		for _, rec := range recommendations {
			if rec.Severity != model.PriorityHigh {
				continue
			}
			if !hasWeatherNotification(items, rec.Recommendation) {
				n := weatherNotification(rec, now)
				items = append(items, n)
				created = append(created, n)
			}
		}

		return items, nil
	})
	if err != nil {
		return err
	}

	if s.announcer != nil {
		for _, n := range created {
			s.announcer.Announce(n)
		}
	}
	return nil
}

// List returns unexpired notifications newest first plus the unread count.
// Expiry is applied on read as well as on check passes.
func (s *NotificationService) List(ctx context.Context, now time.Time) (model.NotificationFeed, error) {
	items, err := s.notifications.Load(ctx)
	if err != nil {
		return model.NotificationFeed{}, err
	}

	items = pruneExpired(items, now)
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})

	unread := 0
	for _, n := range items {
		if !n.Read {
			unread++
		}
	}
	return model.NotificationFeed{Notifications: items, UnreadCount: unread}, nil
}

// MarkRead flips one notification to read. Marking an already-read
// notification succeeds without change.
func (s *NotificationService) MarkRead(ctx context.Context, id string) error {
	_, err := s.notifications.Update(ctx, func(items []model.Notification) ([]model.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				items[i].Read = true
				return items, nil
			}
		}
		return items, fmt.Errorf("notification %q: %w", id, model.ErrNotFound)
	})
	return err
}

// MarkAllRead flips every notification to read.
func (s *NotificationService) MarkAllRead(ctx context.Context) error {
	_, err := s.notifications.Update(ctx, func(items []model.Notification) ([]model.Notification, error) {
		for i := range items {
			items[i].Read = true
		}
		return items, nil
	})
	return err
}

// Delete removes one notification regardless of read state.
func (s *NotificationService) Delete(ctx context.Context, id string) error {
	_, err := s.notifications.Update(ctx, func(items []model.Notification) ([]model.Notification, error) {
		for i := range items {
			if items[i].ID == id {
				return append(items[:i], items[i+1:]...), nil
			}
		}
		return items, fmt.Errorf("notification %q: %w", id, model.ErrNotFound)
	})
	return err
}

func (s *NotificationService) Settings(ctx context.Context) (model.NotificationSettings, error) {
	return s.settings.Load(ctx)
}

func (s *NotificationService) UpdateSettings(ctx context.Context, settings model.NotificationSettings) error {
	return s.settings.Save(ctx, settings)
}

func pruneExpired(items []model.Notification, now time.Time) []model.Notification {
	cutoff := now.Add(-retentionWindow)
	kept := make([]model.Notification, 0, len(items))
	for _, n := range items {
		if n.CreatedAt.After(cutoff) {
			kept = append(kept, n)
		}
	}
	return kept
}

func hasTaskNotification(items []model.Notification, kind string, taskID int) bool {
	for _, n := range items {
		if n.Type == kind && n.TaskID != nil && *n.TaskID == taskID {
			return true
		}
	}
	return false
}

func hasWeatherNotification(items []model.Notification, message string) bool {
	for _, n := range items {
		if n.Type == model.NotificationWeatherAlert && n.Message == message {
			return true
		}
	}
	return false
}

func newNotificationID() string {
	return "notif_" + uuid.NewString()
}

func reminderNotification(task model.CalendarTask, hoursUntil int, now time.Time) model.Notification {
	taskID := task.ID
	return model.Notification{
		ID:        newNotificationID(),
		Type:      model.NotificationTaskReminder,
		Title:     fmt.Sprintf("Task Reminder: %s", task.Title),
		Message:   fmt.Sprintf("'%s' is due in %d hours (%s)", task.Title, hoursUntil, task.Date),
		TaskID:    &taskID,
		Priority:  task.Priority,
		CreatedAt: now,
	}
}

func overdueNotification(task model.CalendarTask, daysOverdue int, now time.Time) model.Notification {
	taskID := task.ID
	return model.Notification{
		ID:        newNotificationID(),
		Type:      model.NotificationOverdueAlert,
		Title:     fmt.Sprintf("Overdue Task: %s", task.Title),
		Message:   fmt.Sprintf("'%s' is %d days overdue (was due %s)", task.Title, daysOverdue, task.Date),
		TaskID:    &taskID,
		Priority:  model.PriorityHigh,
		CreatedAt: now,
	}
}

func weatherNotification(rec model.WeatherRecommendation, now time.Time) model.Notification {
	return model.Notification{
		ID:        newNotificationID(),
		Type:      model.NotificationWeatherAlert,
		Title:     "Weather Alert",
		Message:   rec.Recommendation,
		Priority:  rec.Severity,
		CreatedAt: now,
	}
}
