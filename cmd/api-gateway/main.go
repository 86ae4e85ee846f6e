package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/noah-isme/progress-analytics-api/api/swagger"
	"github.com/noah-isme/progress-analytics-api/internal/handler"
	"github.com/noah-isme/progress-analytics-api/internal/middleware"
	"github.com/noah-isme/progress-analytics-api/internal/models"
	"github.com/noah-isme/progress-analytics-api/internal/repository"
	"github.com/noah-isme/progress-analytics-api/internal/service"
	"github.com/noah-isme/progress-analytics-api/pkg/cache"
	"github.com/noah-isme/progress-analytics-api/pkg/config"
	"github.com/noah-isme/progress-analytics-api/pkg/database"
	"github.com/noah-isme/progress-analytics-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/progress-analytics-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/progress-analytics-api/pkg/middleware/requestid"
)

// @title Progress Analytics API
// @version 1.0.0
// @description Per-student and per-course quiz progress metrics for the dashboard widget
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close() //nolint:errcheck

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The cache is a pure performance layer; start degraded rather
		// than refusing to serve.
		logr.Sugar().Warnw("redis unavailable, caching disabled", "error", err)
		redisClient = nil
	}

	courseRepo := repository.NewCourseRepository(db)
	activityRepo := repository.NewActivityRepository(db)
	quizRepo := repository.NewQuizRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	gradebookRepo := repository.NewGradebookRepository(db)
	enrollmentRepo := repository.NewEnrollmentRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Progress.UserCacheTTL, logr, redisClient != nil)
	authSvc := service.NewAuthService(cfg.JWT)
	classifier := service.NewCompletionClassifier(quizRepo, assignmentRepo)
	progressSvc := service.NewProgressService(courseRepo, activityRepo, quizRepo, gradebookRepo, enrollmentRepo, classifier, cacheSvc, metricsSvc, cfg.Progress, logr)
	eventSvc := service.NewEventService(progressSvc, logr)
	exportSvc := service.NewExportService(courseRepo, progressSvc, nil, nil, logr)

	progressHandler := handler.NewProgressHandler(progressSvc, cfg.Progress)
	eventHandler := handler.NewEventHandler(eventSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	if cfg.Progress.Enabled {
		api := r.Group(cfg.APIPrefix)
		api.Use(middleware.JWT(authSvc))
		api.Use(middleware.WithResponseMeta())

		api.GET("/courses/:courseid/quiz-metrics",
			middleware.RequireRoles(models.RoleStudent, models.RoleTeacher, models.RoleAdmin),
			progressHandler.CourseQuizMetrics)
		api.GET("/courses/:courseid/progress-export",
			middleware.RequireRoles(models.RoleTeacher, models.RoleAdmin),
			exportHandler.CourseBaseline)
		api.POST("/internal/progress-events",
			middleware.RequireRoles(models.RoleAdmin),
			eventHandler.Ingest)
		api.GET("/system-metrics",
			middleware.RequireRoles(models.RoleAdmin),
			metricsHandler.System)
	} else {
		logr.Sugar().Warnw("progress metrics disabled by configuration")
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
