package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"marketplace/cmd"
	"marketplace/internal/adapters/out/postgres/addressrepo"
	"marketplace/internal/adapters/out/postgres/orderrepo"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	config, err := loadConfig()
	if err != nil {
		logger.Error("configuration failed", "error", err)
		os.Exit(1)
	}

	gormDB, err := openDatabase(config)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	redisClient := openRedis(config, logger)

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)

	overdueJob := root.CreateOverdueDeliveryJob()
	if err := overdueJob.Start(); err != nil {
		logger.Error("overdue delivery job failed to start", "error", err)
		os.Exit(1)
	}
	defer overdueJob.Stop()

	if warmupJob := root.CreateStatsWarmupJob(); warmupJob != nil {
		if err := warmupJob.Start(); err != nil {
			logger.Error("stats warmup job failed to start", "error", err)
			os.Exit(1)
		}
		defer warmupJob.Stop()
	}

	runWebServer(root, config.HTTPPort, logger)
}

// loadConfig reads settings from the environment; a .env file is optional and
// only a convenience for local development.
func loadConfig() (cmd.Config, error) {
	_ = godotenv.Load(".env")

	var config cmd.Config
	if err := envconfig.Process("", &config); err != nil {
		return cmd.Config{}, err
	}
	return config, nil
}

func openDatabase(config cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgresdriver.Open(config.DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ProductDTO{},
		&orderrepo.TrackingEventDTO{},
		&orderrepo.CounterDTO{},
		&addressrepo.AddressDTO{},
	)
	if err != nil {
		return nil, err
	}

	return gormDB, nil
}

// openRedis connects the statistics cache. Redis is optional: without an
// address the service runs uncached.
func openRedis(config cmd.Config, logger *slog.Logger) *redis.Client {
	if config.RedisAddr == "" {
		logger.Info("redis not configured, statistics cache disabled")
		return nil
	}

	return redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
}

func runWebServer(root cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	root.CreateHTTPServer().RegisterRoutes(e)

	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", port)); err != nil && err != http.ErrServerClosed {
			logger.Error("http server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
