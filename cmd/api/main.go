package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/edustack/attendance-api/api/swagger"
	"github.com/edustack/attendance-api/internal/handler"
	"github.com/edustack/attendance-api/internal/middleware"
	"github.com/edustack/attendance-api/internal/repository"
	"github.com/edustack/attendance-api/internal/service"
	"github.com/edustack/attendance-api/pkg/cache"
	"github.com/edustack/attendance-api/pkg/config"
	"github.com/edustack/attendance-api/pkg/database"
	"github.com/edustack/attendance-api/pkg/logger"
	"github.com/edustack/attendance-api/pkg/mailer"
	corsmiddleware "github.com/edustack/attendance-api/pkg/middleware/cors"
	reqidmiddleware "github.com/edustack/attendance-api/pkg/middleware/requestid"
)

// @title Attendance API
// @version 1.0.0
// @description Class attendance recording, summaries and low-attendance notifications
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
	defer db.Close()

	var cacheRepo *repository.CacheRepository
	if cfg.Cache.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, continuing without cache", "error", err)
		} else {
			defer redisClient.Close()
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
		}
	}

	courseRepo := repository.NewCourseRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)

	metricsSvc := service.NewMetricsService()
	catalogSvc := service.NewCatalogService(courseRepo, subjectRepo, studentRepo, cacheRepo, cfg.Cache.CourseTTL, logr)
	attendanceSvc := service.NewAttendanceService(attendanceRepo, summaryRepo, studentRepo, catalogSvc, cacheRepo, cfg.Cache.ReportTTL, nil, logr)
	studentSvc := service.NewStudentService(studentRepo, logr)
	notificationSvc := service.NewNotificationService(studentRepo, newMailer(cfg, logr), metricsSvc, nil, logr)
	exportSvc := service.NewExportService(attendanceSvc, logr)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	attendanceHandler := handler.NewAttendanceHandler(attendanceSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	notificationHandler := handler.NewNotificationHandler(notificationSvc)
	exportHandler := handler.NewExportHandler(exportSvc)

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
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/catalog/subjects", catalogHandler.Subjects)
		api.GET("/catalog/students", catalogHandler.Students)

		api.POST("/attendance", attendanceHandler.Submit)
		api.GET("/attendance/report", attendanceHandler.Report)
		api.GET("/attendance/students/:studentId/:subject/:semester/:academicYear", attendanceHandler.StudentDetail)
		api.GET("/attendance/summaries/:studentId", attendanceHandler.Summaries)
		if cfg.Exports.Enabled {
			api.GET("/attendance/report/export", exportHandler.Export)
		}

		api.GET("/students/:id", studentHandler.Get)

		api.POST("/notifications/low-attendance", notificationHandler.SendLowAttendance)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newMailer(cfg *config.Config, logr *zap.Logger) mailer.Mailer {
	switch cfg.Mail.Provider {
	case "sendgrid":
		return mailer.NewSendgridMailer(cfg.Mail.SendgridKey, cfg.Mail.FromName, cfg.Mail.FromEmail)
	default:
		return mailer.NewConsoleMailer(logr)
	}
}
