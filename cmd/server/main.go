package main

import (
	"fmt"
	"log"
	"net/http"

	"ridepool/internal/config"
	"ridepool/internal/handlers"
	"ridepool/internal/middleware"
	"ridepool/internal/repositories/mongodb"
	redisrepo "ridepool/internal/repositories/redis"
	"ridepool/internal/services"
	"ridepool/pkg/cache"
	"ridepool/pkg/database"
	"ridepool/pkg/feed"
	"ridepool/pkg/logger"
	"ridepool/pkg/notify"
	"ridepool/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// .env is optional; real deployments pass config through the environment
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: logFormat(),
		Output: "stdout",
		Colors: config.IsDevelopment(),
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// MongoDB
	mongoDB, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close()

	if err := database.NewMigrator(mongoDB.Database).Up(); err != nil {
		appLogger.Fatalf("Failed to run migrations: %v", err)
	}

	// Redis
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisCache.Close()

	// Repositories
	rideRepo := mongodb.NewRideRepository(mongoDB.Database)
	busRouteRepo := mongodb.NewBusRouteRepository(mongoDB.Database)
	bookingRepo := redisrepo.NewBookingRepository(redisCache)

	// Live feed hub
	hub := feed.NewHub()
	go hub.Run()

	// SMS notifier
	var notifier services.Notifier = notify.Noop{}
	if cfg.SMS.Enabled {
		notifier = notify.NewTwilioNotifier(
			cfg.SMS.Twilio.AccountSID,
			cfg.SMS.Twilio.AuthToken,
			cfg.SMS.Twilio.FromNumber,
		)
	}

	// Services
	rideService := services.NewRideService(rideRepo, hub, appLogger)
	bookingService := services.NewBookingService(bookingRepo, rideRepo, hub, notifier, appLogger)
	busRouteService := services.NewBusRouteService(busRouteRepo, appLogger)

	// Handlers
	rideHandler := handlers.NewRideHandler(rideService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	busRouteHandler := handlers.NewBusRouteHandler(busRouteService)
	feedHandler := handlers.NewFeedHandler(hub)

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.MetricsMiddleware())

	auth := middleware.AuthRequired(cfg.Security.JWTSecret)

	v1 := router.Group("/api/v1")
	{
		routes.SetupRideRoutes(v1, rideHandler, auth)
		routes.SetupBookingRoutes(v1, bookingHandler, auth)
		routes.SetupBusRouteRoutes(v1, busRouteHandler, auth)
	}

	router.GET("/ws/feed", feedHandler.Feed)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/health", func(c *gin.Context) {
		status := http.StatusOK
		health := gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		}
		if err := mongoDB.Ping(); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["mongodb"] = err.Error()
		}
		if err := redisCache.Ping(c.Request.Context()); err != nil {
			status = http.StatusServiceUnavailable
			health["status"] = "degraded"
			health["redis"] = err.Error()
		}
		c.JSON(status, health)
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting %s on %s", cfg.App.Name, addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		appLogger.Fatalf("Server stopped: %v", err)
	}
}

func logFormat() string {
	if config.IsProduction() {
		return "json"
	}
	return "text"
}
