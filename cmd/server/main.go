package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shareit-platform/service-sharing/internal/application"
	"github.com/shareit-platform/service-sharing/internal/clock"
	"github.com/shareit-platform/service-sharing/internal/config"
	"github.com/shareit-platform/service-sharing/internal/database"
	"github.com/shareit-platform/service-sharing/internal/events"
	"github.com/shareit-platform/service-sharing/internal/handler"
	"github.com/shareit-platform/service-sharing/internal/health"
	"github.com/shareit-platform/service-sharing/internal/kafka"
	"github.com/shareit-platform/service-sharing/internal/logger"
	"github.com/shareit-platform/service-sharing/internal/metrics"
	"github.com/shareit-platform/service-sharing/internal/middleware"
	"github.com/shareit-platform/service-sharing/internal/repository"
	"go.uber.org/zap"
)

const serviceName = "service-sharing"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		log.Fatal("failed to connect database", zap.Error(err))
	}

	if cfg.AppEnv == "development" {
		err = db.AutoMigrate(
			&repository.UserModel{},
			&repository.RequestModel{},
			&repository.ItemModel{},
			&repository.BookingModel{},
			&repository.CommentModel{},
		)
		if err != nil {
			log.Fatal("failed to auto-migrate", zap.Error(err))
		}
	} else {
		if err := database.RunMigrations(cfg.Database.URL(), cfg.MigrationsDir, log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	producer := kafka.NewProducer(cfg.Kafka.Brokers, log)
	defer producer.Close()
	publisher := events.NewKafkaPublisher(producer, log)

	userRepo := repository.NewGormUserRepository(db)
	itemRepo := repository.NewGormItemRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	commentRepo := repository.NewGormCommentRepository(db)
	requestRepo := repository.NewGormRequestRepository(db)

	clk := clock.System{}
	userService := application.NewUserService(userRepo, log)
	itemService := application.NewItemService(itemRepo, userRepo, bookingRepo, commentRepo, requestRepo, clk, log)
	bookingService := application.NewBookingService(bookingRepo, userRepo, itemRepo, publisher, clk, log)
	requestService := application.NewRequestService(requestRepo, userRepo, itemRepo, clk, log)

	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		metrics.Middleware(),
	)

	health.NewHandler(db, serviceName).RegisterRoutes(router)
	router.GET("/metrics", metrics.Handler())

	api := router.Group("/")
	handler.NewUserHandler(userService).RegisterRoutes(api)
	handler.NewItemHandler(itemService).RegisterRoutes(api)
	handler.NewBookingHandler(bookingService).RegisterRoutes(api)
	handler.NewRequestHandler(requestService).RegisterRoutes(api)

	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", zap.Error(err))
	}
	log.Info("server stopped")
}
