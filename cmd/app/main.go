package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-directory-service/api"
	"user-directory-service/internal/config"
	"user-directory-service/internal/database"
	"user-directory-service/internal/domain"
	"user-directory-service/internal/handler"
	"user-directory-service/internal/repository"
	"user-directory-service/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

func main() {
	// Логгер
	logger := logrus.New()
	logger.SetLevel(logrus.InfoLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Конфиг
	cfg, err := config.LoadConfig()
	if errors.Is(err, config.ErrEnvFileNotFound) {
		logger.Warnf(".env not found, using environment: %v", err)
	} else if err != nil {
		logger.Fatalf("Invalid configuration: %v", err)
	}

	if level, err := logrus.ParseLevel(cfg.LogLevel); err != nil {
		logger.Warnf("Unknown LOG_LEVEL %q, keeping info", cfg.LogLevel)
	} else {
		logger.SetLevel(level)
	}

	// Хранилище
	userRepo, db, err := newUserRepository(cfg, logger)
	if err != nil {
		logger.Fatalf("Storage initialization failed: %v", err)
	}
	if db != nil {
		defer db.Close()
	}
	logger.WithField("storage", cfg.StorageDriver).Info("Storage ready")

	// Use Cases
	userUC := usecase.NewUserUseCase(userRepo, cfg.MinAge)

	// Echo + Handlers
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewRequestValidator()
	e.HTTPErrorHandler = handler.ErrorHandler(logger)
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(handler.LoggingMiddleware(logger))

	// Handlers
	apiHandler := handler.NewAPIHandler(userUC, logger)
	api.RegisterHandlers(e, apiHandler)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Запуск сервера
	go func() {
		logger.WithFields(logrus.Fields{
			"port":    cfg.ServerPort,
			"min_age": cfg.MinAge,
		}).Info("Starting server")
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Errorf("Shutdown failed: %v", err)
	}

	logger.Info("Server exited")
}

// newUserRepository выбирает хранилище по STORAGE_DRIVER. Для SQL-хранилищ
// возвращает открытое соединение, которое нужно закрыть при завершении.
func newUserRepository(cfg config.Config, logger *logrus.Logger) (domain.UserRepository, *sql.DB, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := database.NewPostgresDB(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewUserRepository(db, database.DialectPostgres), db, nil
	case config.StorageSQLite:
		db, err := database.NewSQLiteDB(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, err
		}
		return repository.NewUserRepository(db, database.DialectSQLite), db, nil
	default:
		return repository.NewMemoryUserRepository(), nil, nil
	}
}
