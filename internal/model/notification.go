package model

import "time"

// Notification types.
const (
	NotificationTaskReminder  = "task_reminder"
	NotificationOverdueAlert  = "overdue_alert"
	NotificationWeatherAlert  = "weather_alert"
	NotificationTaskCompleted = "task_completed"
)

// Notification is a single alert shown to the user. TaskID is a weak
// back-reference: deleting the task leaves the notification in place.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	TaskID    *int      `json:"task_id,omitempty"`
	Priority  string    `json:"priority"`
	CreatedAt time.Time `json:"created_at"`
	Read      bool      `json:"read"`
}

// NotificationFeed is the listing shape: newest first plus an unread count.
type NotificationFeed struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unread_count"`
}

// NotificationSettings controls which alerts the check pass produces.
// UpcomingTaskReminder is the reminder window in hours before a task is due.
type NotificationSettings struct {
	BrowserNotifications bool `json:"browser_notifications"`
	EmailNotifications   bool `json:"email_notifications"`
	SMSNotifications     bool `json:"sms_notifications"`
	UpcomingTaskReminder int  `json:"upcoming_task_reminder"`
	OverdueTaskAlert     bool `json:"overdue_task_alert"`
	WeatherAlerts        bool `json:"weather_alerts"`
}
