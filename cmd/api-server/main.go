package main

import (
	"context"
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/campuspulse/campus-api/api/swagger"
	"github.com/campuspulse/campus-api/internal/handler"
	"github.com/campuspulse/campus-api/internal/importer"
	internalmiddleware "github.com/campuspulse/campus-api/internal/middleware"
	"github.com/campuspulse/campus-api/internal/repository"
	"github.com/campuspulse/campus-api/internal/seed"
	"github.com/campuspulse/campus-api/internal/service"
	"github.com/campuspulse/campus-api/pkg/cache"
	"github.com/campuspulse/campus-api/pkg/config"
	"github.com/campuspulse/campus-api/pkg/logger"
	corsmiddleware "github.com/campuspulse/campus-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campuspulse/campus-api/pkg/middleware/requestid"
)

// @title CampusPulse API
// @version 1.0.0
// @description Campus schedule, live status and study partner recommendations
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg.Env, cfg.Log)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unreachable, sessions run in-memory", "error", err)
			redisClient = nil
		}
	}

	users := repository.NewUserRepository()
	schedules := repository.NewScheduleRepository()
	statuses := repository.NewStatusRepository()
	locations := repository.NewLocationRepository()
	sessions := repository.NewSessionRepository(redisClient, logr)

	validate := validator.New()
	metrics := service.NewMetricsService()

	availability := service.NewAvailabilityService(service.AvailabilityServiceParams{
		Schedules: schedules,
		Statuses:  statuses,
		Logger:    logr,
	})
	authService := service.NewAuthService(service.AuthServiceParams{
		Users:     users,
		Sessions:  sessions,
		Validator: validate,
		Metrics:   metrics,
		Logger:    logr,
		Config: service.AuthConfig{
			Secret: cfg.Session.Secret,
			TTL:    cfg.Session.TTL,
			Issuer: cfg.Session.Issuer,
		},
	})
	userService := service.NewUserService(service.UserServiceParams{
		Users:     users,
		Statuses:  statuses,
		Resolver:  availability,
		Validator: validate,
		Logger:    logr,
	})
	scheduleService := service.NewScheduleService(service.ScheduleServiceParams{
		Schedules: schedules,
		Parser:    importer.NewParser(logr),
		Validator: validate,
		Metrics:   metrics,
		Logger:    logr,
	})
	statusService := service.NewStatusService(service.StatusServiceParams{
		Statuses:  statuses,
		Validator: validate,
		Logger:    logr,
	})
	boardService := service.NewBoardService(service.BoardServiceParams{
		Users:    users,
		Statuses: statuses,
		Resolver: availability,
		Metrics:  metrics,
		Logger:   logr,
	})
	recommendationService := service.NewRecommendationService(service.RecommendationServiceParams{
		Users:     users,
		Schedules: schedules,
		Statuses:  statuses,
		Resolver:  availability,
		Metrics:   metrics,
		Logger:    logr,
	})
	exportService := service.NewExportService(service.ExportServiceParams{
		Users:     users,
		Schedules: schedules,
		Logger:    logr,
	})

	if cfg.Seed.DemoData {
		seeder := seed.NewSeeder(seed.SeederParams{
			Users:     users,
			Schedules: schedules,
			Statuses:  statuses,
			Locations: locations,
			Logger:    logr,
		})
		if err := seeder.Run(context.Background(), cfg.Seed.FixturePath); err != nil {
			logr.Sugar().Fatalw("demo seed failed", "error", err)
		}
	}

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	scheduleHandler := handler.NewScheduleHandler(scheduleService, exportService, cfg.Import.MaxFileSizeBytes)
	statusHandler := handler.NewStatusHandler(statusService)
	boardHandler := handler.NewBoardHandler(boardService)
	partnerHandler := handler.NewPartnerHandler(recommendationService)
	locationHandler := handler.NewLocationHandler(locations)
	metricsHandler := handler.NewMetricsHandler(metrics, redisClient)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metrics))
	r.Use(internalmiddleware.WithResponseMeta())

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/status-board", boardHandler.Board)
	api.GET("/locations", locationHandler.List)

	secured := api.Group("")
	secured.Use(internalmiddleware.JWT(authService))
	secured.POST("/auth/logout", authHandler.Logout)
	secured.GET("/me", userHandler.Me)
	secured.PUT("/me/avatar", userHandler.UpdateAvatar)
	secured.GET("/schedule", scheduleHandler.List)
	secured.POST("/schedule", scheduleHandler.Add)
	secured.DELETE("/schedule/:id", scheduleHandler.Delete)
	secured.POST("/schedule/import", scheduleHandler.Import)
	secured.GET("/schedule/export", scheduleHandler.Export)
	secured.GET("/status", statusHandler.Get)
	secured.PUT("/status", statusHandler.Update)
	secured.GET("/partners", partnerHandler.Partners)

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Ready)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
