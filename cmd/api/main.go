package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/tableset/catering-api/api/swagger"
	"github.com/tableset/catering-api/internal/handler"
	"github.com/tableset/catering-api/internal/middleware"
	"github.com/tableset/catering-api/internal/repository"
	"github.com/tableset/catering-api/internal/service"
	"github.com/tableset/catering-api/pkg/cache"
	"github.com/tableset/catering-api/pkg/config"
	"github.com/tableset/catering-api/pkg/database"
	"github.com/tableset/catering-api/pkg/logger"
	corsmiddleware "github.com/tableset/catering-api/pkg/middleware/cors"
	reqidmiddleware "github.com/tableset/catering-api/pkg/middleware/requestid"
)

// @title Tableset Catering API
// @version 1.0.0
// @description Chef availability, calendar and booking assignment service
// @BasePath /
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
	if cfg.Calendar.CacheEnabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, calendar cache disabled", "error", err)
		} else {
			cacheRepo = repository.NewCacheRepository(redisClient, logr)
			defer cacheRepo.Close()
		}
	}

	validate := validator.New()

	stationRepo := repository.NewStationRepository(db)
	chefRepo := repository.NewChefRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	overrideRepo := repository.NewOverrideRepository(db)
	bookingRepo := repository.NewBookingRepository(db)

	metricsSvc := service.NewMetricsService()
	calendarSvc := newCalendarService(chefRepo, templateRepo, overrideRepo, bookingRepo, cacheRepo, metricsSvc, cfg, logr)
	chefSvc := service.NewChefService(chefRepo, stationRepo, validate, logr)
	availabilitySvc := service.NewAvailabilityService(chefRepo, templateRepo, overrideRepo, calendarSvc, validate, logr)
	assignmentSvc := service.NewAssignmentService(bookingRepo, chefRepo, calendarSvc, validate, logr)

	chefHandler := handler.NewChefHandler(chefSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	assignmentHandler := handler.NewAssignmentHandler(assignmentSvc)
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

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/stations", chefHandler.ListStations)

		api.GET("/chefs", chefHandler.List)
		api.POST("/chefs", chefHandler.Create)
		api.GET("/chefs/:id", chefHandler.Get)
		api.PUT("/chefs/:id", chefHandler.Update)
		api.DELETE("/chefs/:id", chefHandler.Delete)

		api.GET("/chefs/:id/availability", availabilityHandler.Get)
		api.PUT("/chefs/:id/availability/week", availabilityHandler.ReplaceWeek)
		api.POST("/chefs/:id/availability/toggle", availabilityHandler.ToggleSlot)
		api.PUT("/chefs/:id/availability/overrides", availabilityHandler.UpsertOverride)
		api.DELETE("/chefs/:id/availability/overrides/:date", availabilityHandler.DeleteOverride)

		api.GET("/chefs/:id/calendar", calendarHandler.ChefCalendar)
		api.GET("/calendar", calendarHandler.StationCalendar)

		api.POST("/bookings/:id/assign", assignmentHandler.Assign)
	}

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

func newCalendarService(chefs *repository.ChefRepository, templates *repository.TemplateRepository, overrides *repository.OverrideRepository, bookings *repository.BookingRepository, cacheRepo *repository.CacheRepository, metrics *service.MetricsService, cfg *config.Config, logr *zap.Logger) *service.CalendarService {
	if cacheRepo == nil {
		return service.NewCalendarService(chefs, templates, overrides, bookings, nil, metrics, cfg.Calendar.CacheTTL, logr)
	}
	return service.NewCalendarService(chefs, templates, overrides, bookings, cacheRepo, metrics, cfg.Calendar.CacheTTL, logr)
}
