package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/safuramariyam/greenthumb/internal/analysis"
	"github.com/safuramariyam/greenthumb/internal/api"
	"github.com/safuramariyam/greenthumb/internal/config"
	"github.com/safuramariyam/greenthumb/internal/event"
	"github.com/safuramariyam/greenthumb/internal/model"
	"github.com/safuramariyam/greenthumb/internal/notify"
	"github.com/safuramariyam/greenthumb/internal/repository"
	"github.com/safuramariyam/greenthumb/internal/service"
	"github.com/safuramariyam/greenthumb/internal/weather"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	var (
		taskCol     repository.Collection[[]model.CalendarTask]
		templateCol repository.Collection[[]model.TaskTemplate]
		notifCol    repository.Collection[[]model.Notification]
		settingsCol repository.Collection[model.NotificationSettings]
	)
	if cfg.DatabaseURL != "" {
		db, err := repository.NewDB(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db: %v", err)
		}
		sqlDB, err := db.DB()
		if err == nil {
			defer sqlDB.Close()
		}
		taskCol = repository.NewDBCollection(db, "calendar_tasks", repository.DefaultTasks)
		templateCol = repository.NewDBCollection(db, "task_templates", repository.DefaultTemplates)
		notifCol = repository.NewDBCollection(db, "notifications", repository.DefaultNotifications)
		settingsCol = repository.NewDBCollection(db, "notification_settings", repository.DefaultSettings)
	} else {
		taskCol = repository.NewFileCollection(filepath.Join(cfg.DataDir, "calendar_tasks.json"), repository.DefaultTasks)
		templateCol = repository.NewFileCollection(filepath.Join(cfg.DataDir, "task_templates.json"), repository.DefaultTemplates)
		notifCol = repository.NewFileCollection(filepath.Join(cfg.DataDir, "notifications.json"), repository.DefaultNotifications)
		settingsCol = repository.NewFileCollection(filepath.Join(cfg.DataDir, "notification_settings.json"), repository.DefaultSettings)
	}

	broadcaster := event.NewBroadcaster()
	taskSvc := service.NewTaskService(taskCol, broadcaster)
	templateSvc := service.NewTemplateService(templateCol, taskSvc)
	weatherSvc := service.NewWeatherService(weather.NewClient(cfg.OpenWeatherAPIKey, cfg.OpenWeatherBaseURL))

	var announcer service.Announcer
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		notifier, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Printf("telegram notifier disabled: %v", err)
		} else {
			announcer = notifier
		}
	}

	notificationSvc := service.NewNotificationService(
		notifCol, settingsCol, taskSvc, weatherSvc,
		cfg.DefaultLatitude, cfg.DefaultLongitude, announcer,
	)

	scheduler := service.NewSchedulerService(time.Local)
	if cfg.CheckInterval > 0 {
		if _, err := scheduler.ScheduleInterval(cfg.CheckInterval, func() {
			jobCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := notificationSvc.Check(jobCtx, time.Now()); err != nil {
				log.Printf("notification check: %v", err)
			}
		}); err != nil {
			log.Fatalf("schedule notification check: %v", err)
		}
		scheduler.Start()
		defer scheduler.Stop()
	}

	var analysisClient *analysis.Client
	if cfg.ModelServiceURL != "" {
		analysisClient = analysis.NewClient(cfg.ModelServiceURL)
	}

	server := api.NewServer(
		taskSvc, templateSvc, weatherSvc, notificationSvc,
		broadcaster, analysisClient,
		cfg.DefaultLatitude, cfg.DefaultLongitude,
	)

	srv := &http.Server{Addr: cfg.Addr, Handler: server.Router()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("greenthumb listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server stopped with error: %v", err)
	}
	log.Println("Shutdown complete.")
}
