package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	server "github.com/showdesk/showdesk/internal"
	"github.com/showdesk/showdesk/internal/autotask"
	"github.com/showdesk/showdesk/internal/clock"
	"github.com/showdesk/showdesk/internal/config"
	"github.com/showdesk/showdesk/internal/event"
	eventrepo "github.com/showdesk/showdesk/internal/event/repositoryimpl"
	"github.com/showdesk/showdesk/internal/eventbus"
	"github.com/showdesk/showdesk/internal/pushnotification"
	pushsubrepo "github.com/showdesk/showdesk/internal/pushsubscription/repositoryimpl"
	"github.com/showdesk/showdesk/internal/reminder"
	"github.com/showdesk/showdesk/internal/stats"
	"github.com/showdesk/showdesk/internal/task"
	taskrepo "github.com/showdesk/showdesk/internal/task/repositoryimpl"
	"github.com/showdesk/showdesk/internal/venue"
	"github.com/showdesk/showdesk/pkg/clog"
	"github.com/showdesk/showdesk/pkg/storage"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		slog.Error("failed to load env", "error", err)
		os.Exit(1)
	}

	// Setup logger
	level := env.SlogLevel()
	var handler slog.Handler
	if env.Env == "local" {
		handler = clog.NewTextHandler(os.Stderr, clog.WithLevel(level))
	} else {
		handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(clog.NewAttributesHandler(handler)))

	// Setup storage
	var store storage.Storage
	switch env.StorageEnv.Type {
	case "s3":
		store, err = storage.NewS3Storage(context.Background(), env.StorageEnv.S3Bucket, env.StorageEnv.S3Prefix, env.StorageEnv.S3Region)
		if err != nil {
			slog.Error("failed to create S3 storage", "error", err)
			os.Exit(1)
		}
	default:
		store, err = storage.NewLocalStorage(env.StorageEnv.BaseDir)
		if err != nil {
			slog.Error("failed to create local storage", "error", err)
			os.Exit(1)
		}
	}

	// Setup event bus
	bus := eventbus.New()

	// Setup repositories
	eventRepo := eventrepo.NewYAMLRepository(store)
	taskRepo := taskrepo.NewYAMLRepository(store)
	pushSubRepo := pushsubrepo.NewYAMLRepository(store)

	// Setup clock and venue resolver
	scheduleEnv := config.ScheduleEnvFromEnv(env)
	clk, err := clock.NewSystem(scheduleEnv.Timezone)
	if err != nil {
		slog.Error("failed to load timezone", "timezone", scheduleEnv.Timezone, "error", err)
		os.Exit(1)
	}

	resolver := venue.NewResolver(scheduleEnv.HomeCountry, venue.BuiltinEntries())
	if scheduleEnv.VenueTablePath != "" {
		entries, err := venue.LoadTable(scheduleEnv.VenueTablePath)
		if err != nil {
			slog.Error("failed to load venue table", "path", scheduleEnv.VenueTablePath, "error", err)
			os.Exit(1)
		}
		resolver.Replace(entries)
	}

	// Setup servers
	eventServer := event.NewServer(eventRepo, bus)
	taskServer := task.NewServer(taskRepo, bus)

	generator := autotask.NewGenerator(resolver, clk)
	injector := autotask.NewInjector(generator, eventRepo, taskRepo, bus)
	autoTaskServer := autotask.NewServer(injector)

	reminderService := reminder.NewService(taskRepo, clk, scheduleEnv.ReminderHorizonDays)
	reminderServer := reminder.NewServer(reminderService)

	aggregator := stats.NewAggregator(eventRepo, taskRepo, clk)
	statsServer := stats.NewServer(aggregator)

	// Setup push notification
	vapidEnv := config.VAPIDEnvFromEnv(env)
	pushSender := pushnotification.NewSender(vapidEnv, pushSubRepo)
	pushNotificationServer := pushnotification.NewServer(vapidEnv, pushSubRepo, pushSender)
	dispatcher := reminder.NewDispatcher(bus, reminderService, pushSender, clk)

	srv := server.NewServer(
		&env.BaseEnv,
		eventServer,
		taskServer,
		autoTaskServer,
		reminderServer,
		statsServer,
		pushNotificationServer,
	)

	// Graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer cancel()

	if scheduleEnv.VenueTablePath != "" {
		watcher := venue.NewWatcher(scheduleEnv.VenueTablePath, resolver)
		go func() {
			if err := watcher.Run(ctx); err != nil {
				slog.Error("venue table watcher error", "error", err)
			}
		}()
	}

	go dispatcher.Start(ctx)

	go func() {
		if err := srv.ListenAndServe(ctx); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
}
