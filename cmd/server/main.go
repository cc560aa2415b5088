package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leave-tracker-backend/internal/api/handlers"
	"leave-tracker-backend/internal/api/routes"
	"leave-tracker-backend/internal/auth"
	"leave-tracker-backend/internal/config"
	"leave-tracker-backend/internal/database"
	"leave-tracker-backend/internal/lock"
	"leave-tracker-backend/internal/logger"
	"leave-tracker-backend/internal/repository"
	"leave-tracker-backend/internal/scheduler"
	"leave-tracker-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	_ "leave-tracker-backend/docs" // This is needed for swag
)

//	@title			Topcoder Leave Tracker API
//	@version		6.0
//	@description	API for managing team member leave dates and Wipro holidays.

//	@BasePath	/v6/leave

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel)
	logrus.SetOutput(os.Stdout)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	locker, lockCheck, closeLocker, err := newLocker(ctx, cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize job lock: ", err)
	}
	defer closeLocker()

	// Repositories
	leaveRepo := repository.NewLeaveDateRepository(db)
	holidayRepo := repository.NewCompanyHolidayRepository(db)

	// Integrations
	m2m := service.NewM2MService(cfg)
	identityService := service.NewIdentityService(cfg, m2m)
	eventBusService := service.NewEventBusService(cfg, m2m)
	slackService := service.NewSlackService(cfg)

	// Domain services
	leaveService := service.NewLeaveService(leaveRepo, holidayRepo, identityService, validator.New())
	notificationService := service.NewLeaveNotificationService(cfg, leaveService, identityService, eventBusService, slackService)

	authService, err := auth.NewAuthService(cfg.JWTSecret)
	if err != nil {
		logrus.Fatal("Failed to initialize auth service: ", err)
	}

	runner := scheduler.NewRunner(locker, registry)
	if cfg.SchedulerEnabled {
		for _, job := range scheduler.LeaveJobs(cfg, notificationService) {
			if err := runner.Register(job); err != nil {
				logrus.Fatal("Failed to register scheduled job: ", err)
			}
			logrus.Infof("Scheduled job %s at %q (UTC)", job.Name, job.Spec)
		}
		runner.Start()
	} else {
		logrus.Info("Scheduler disabled, leave notifications will not be sent from this instance")
	}

	router := routes.SetupRoutes(db, cfg, routes.Dependencies{
		Auth:         authService,
		Leave:        leaveService,
		Slack:        slackService,
		Registry:     registry,
		HealthChecks: map[string]handlers.HealthCheck{"lock": lockCheck},
	})

	port := cfg.Port
	if port == "" {
		port = "3000"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("HTTP server shutdown failed")
	}
	if err := runner.Stop(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Scheduler did not stop cleanly")
	}
}

// newLocker builds the job lock for the configured backend, with a health
// check and a cleanup function.
func newLocker(ctx context.Context, cfg *config.Config) (lock.Locker, handlers.HealthCheck, func(), error) {
	switch cfg.LockBackend {
	case config.LockBackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		check := func(ctx context.Context) error { return client.Ping(ctx).Err() }
		return lock.NewRedisLocker(client, cfg.LockNamespace+":", cfg.LockTTL), check, func() { _ = client.Close() }, nil

	case config.LockBackendMemory:
		logrus.Warn("Using in-process job lock: scheduled jobs are not coordinated across instances")
		return lock.NewMemoryLocker(), func(context.Context) error { return nil }, func() {}, nil

	default:
		pool, err := database.NewPool(ctx, cfg.DatabaseURL, 4)
		if err != nil {
			return nil, nil, nil, err
		}
		locker := lock.NewPostgresLocker(pool)
		cleanup := func() {
			closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			locker.Close(closeCtx)
			pool.Close()
		}
		return locker, pool.Ping, cleanup, nil
	}
}
