package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/db"
	"car-rental-backend/internal/handlers"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/middleware"
	"car-rental-backend/internal/repository"
	"car-rental-backend/internal/routes"
	"car-rental-backend/internal/services"
	"car-rental-backend/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	log := logger.NewLogger(cfg.Log.Level, cfg.Log.Format, "car_rental")
	defer func() { _ = log.Sync() }()
	zap.ReplaceGlobals(log)

	if cfg.Server.GinMode == gin.ReleaseMode {
		gin.SetMode(gin.ReleaseMode)
	}
	handlers.ExposeErrorDetails(cfg.IsDevelopment())
	if err := handlers.RegisterValidators(); err != nil {
		log.Fatal("register validators", zap.Error(err))
	}

	// Подключение к базе данных
	gormDB, err := db.ConnectWithRetry(cfg.Database, 5, 5*time.Second, log)
	if err != nil {
		log.Fatal("db connect", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("db migrate", zap.Error(err))
	}

	// Redis нужен только для кэша каталога
	var redisClient *redis.Client
	if rc, err := db.NewRedisClient(cfg.Redis); err != nil {
		log.Warn("redis unavailable, car cache disabled", zap.Error(err))
	} else {
		redisClient = rc
		defer redisClient.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// WebSocket менеджер для панели администратора
	wsManager := websocket.NewManager(log)
	go wsManager.Run(ctx)

	bookingRepo := repository.NewBookingRepository(gormDB, log)
	carRepo := repository.NewCarRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)
	adminRepo := repository.NewAdminRepository(gormDB)
	statsRepo := repository.NewStatsRepository(carRepo, userRepo, bookingRepo)

	carService := services.NewCarService(carRepo, services.NewCacheService(redisClient, cfg.Redis.CacheTTL), log)

	publishers := []services.EventPublisher{wsManager, carService}
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := services.NewKafkaProducer(cfg.Kafka.Brokers)
		if err != nil {
			log.Warn("kafka unavailable, booking events not streamed", zap.Error(err))
		} else {
			kafka := services.NewKafkaPublisher(producer, cfg.Kafka.Topic)
			defer kafka.Close()
			publishers = append(publishers, kafka)
		}
	}
	events := services.NewBookingEvents(log, services.NewWhatsAppService(cfg.WhatsApp, log), publishers...)

	authService := services.NewAuthService(adminRepo, services.NewMailService(cfg.SMTP, log), cfg.JWT, log)
	bookingService := services.NewBookingService(bookingRepo, carRepo, userRepo, events, services.NotificationConfig{
		CountryCode:   cfg.WhatsApp.CountryCode,
		LinkBase:      cfg.WhatsApp.LinkBase,
		Currency:      cfg.WhatsApp.Currency,
		PublicSiteURL: cfg.WhatsApp.PublicSiteURL,
		DefaultLocale: cfg.WhatsApp.DefaultLocale,
	}, log)

	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.Recovery())
	r.Use(middleware.PrometheusMiddleware())

	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		log.Warn("trusted proxies", zap.Error(err))
	}

	// Настройка CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Static("/uploads", cfg.Server.UploadDir)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	routes.SetupRoutes(r.Group("/api"), routes.Services{
		Auth:      authService,
		Users:     services.NewUserService(userRepo, cfg.JWT, log),
		Cars:      carService,
		Bookings:  bookingService,
		Stats:     services.NewStatsService(statsRepo),
		JWTSecret: cfg.JWT.Secret,
		UploadDir: cfg.Server.UploadDir,
	})

	// WebSocket вне группы /api для совместимости с панелью
	r.GET("/ws", websocket.Handler(wsManager, authService.ValidateToken))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("listen", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	// Даем 30 секунд на завершение текущих запросов
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown", zap.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}
