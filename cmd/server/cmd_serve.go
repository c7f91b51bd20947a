package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"coachmarket/internal/api"
	"coachmarket/internal/config"
	"coachmarket/internal/logging"
	"coachmarket/internal/repository/mongo"
	"coachmarket/internal/service"
	"coachmarket/internal/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logging.Setup(cfg.Log)
	gin.SetMode(cfg.Server.Mode)
	log.WithField("version", version).Info("Starting coachmarket server")

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbClient, err := mongo.ConnectDB(cfg.Database.URI)
	if err != nil {
		return fmt.Errorf("connect mongo: %w", err)
	}
	defer func() {
		log.Info("Disconnecting MongoDB...")
		if err := mongo.DisconnectDB(dbClient); err != nil {
			log.WithError(err).Error("Failed to disconnect MongoDB")
		}
	}()
	appDB := dbClient.Database(cfg.Database.Name)

	indexCtx, cancelIndexes := context.WithTimeout(ctx, time.Minute)
	err = mongo.EnsureIndexes(indexCtx, appDB)
	cancelIndexes()
	if err != nil {
		return fmt.Errorf("ensure indexes: %w", err)
	}
	log.WithField("database", cfg.Database.Name).Info("Database ready")

	// --- Storage ---
	fileStorage, err := storage.NewS3Storage(ctx, cfg.S3)
	if err != nil {
		return fmt.Errorf("init s3 storage: %w", err)
	}

	limiter, closeLimiter, err := newRateLimiter(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer closeLimiter()

	// --- Repositories ---
	tx := mongo.NewTxManager(dbClient)
	userRepo := mongo.NewMongoUserRepository(appDB)
	profileRepo := mongo.NewMongoProfileRepository(appDB)
	programRepo := mongo.NewMongoProgramRepository(appDB)
	routineRepo := mongo.NewMongoRoutineRepository(appDB)
	enrollmentRepo := mongo.NewMongoEnrollmentRepository(appDB)
	workoutLogRepo := mongo.NewMongoWorkoutLogRepository(appDB)
	mealLogRepo := mongo.NewMongoMealLogRepository(appDB)
	checkInRepo := mongo.NewMongoCheckInRepository(appDB)
	betaSignupRepo := mongo.NewMongoBetaSignupRepository(appDB)

	// --- Services ---
	services := api.Services{
		Auth:        service.NewAuthService(tx, userRepo, profileRepo, cfg.JWT.Secret, cfg.JWT.Expiration),
		Programs:    service.NewProgramService(tx, programRepo, routineRepo, enrollmentRepo, workoutLogRepo, mealLogRepo, checkInRepo, fileStorage),
		Enrollments: service.NewEnrollmentService(tx, programRepo, routineRepo, enrollmentRepo),
		Logs:        service.NewLogService(tx, programRepo, routineRepo, enrollmentRepo, workoutLogRepo, mealLogRepo),
		Dashboards:  service.NewDashboardService(userRepo, programRepo, enrollmentRepo, workoutLogRepo, mealLogRepo),
		CheckIns:    service.NewCheckInService(programRepo, enrollmentRepo, checkInRepo, fileStorage, cfg.S3.URLExpiry),
		BetaSignups: service.NewBetaSignupService(betaSignupRepo),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	api.SetupRoutes(router, services, api.RouteOptions{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Cookie:         api.SessionCookie{Name: cfg.JWT.CookieName, Secure: cfg.JWT.CookieSecure},
		Limiter:        limiter,
		AuthPerWindow:  cfg.RateLimit.Auth,
		BetaPerWindow:  cfg.RateLimit.BetaSignup,
		LimitWindow:    cfg.RateLimit.Window,
	})

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.WithField("address", cfg.Server.Address).Info("Server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}
	log.Info("Server exiting.")
	return nil
}

// newRateLimiter connects to Redis when an address is configured. Without one
// the returned limiter is nil and every route is unlimited.
func newRateLimiter(ctx context.Context, cfg config.RedisConfig) (*api.RateLimiter, func(), error) {
	if cfg.Address == "" {
		log.Warn("Redis address not set, rate limiting disabled")
		return nil, func() {}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("connect redis: %w", err)
	}
	log.WithField("address", cfg.Address).Info("Rate limiter backed by Redis")
	return api.NewRateLimiter(api.NewRedisCounter(rdb)), func() {
		if err := rdb.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis client")
		}
	}, nil
}
