package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/db"
	"github.com/ignatzorin/portfolio-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/portfolio-backend/internal/http/router"
	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	logLevel := "info"
	if cfg.Env == "development" {
		logLevel = "debug"
	}
	logger.Init(logLevel, cfg.Env)

	// Файловое хранилище медиа.
	mediaStorage, err := storage.NewMediaStorage(cfg.MediaStoragePath, cfg.MaxUploadSizeMB)
	if err != nil {
		log.Fatalf("main: не удалось подготовить файловое хранилище: %v", err)
	}

	// Хранилище портфолио: Postgres при наличии DATABASE_URL, иначе память процесса.
	var portfolioStore service.PortfolioStore
	dbConn, err := connectDatabase(ctx, cfg)
	if err != nil {
		log.Fatalf("main: %v", err)
	}
	if dbConn != nil {
		defer func() {
			if err := dbConn.Close(); err != nil {
				log.Printf("main: ошибка закрытия базы: %v", err)
			}
		}()
		portfolioStore = repository.NewPostgresPortfolioRepository(dbConn)
	} else {
		logger.Log.Warn("main: DATABASE_URL не задан, портфолио не переживут рестарт процесса")
		portfolioStore = repository.NewMemoryPortfolioRepository()
	}

	// Сервисы.
	uploadService := service.NewUploadService(mediaStorage, cfg.MediaPublicPath)
	portfolioService := service.NewPortfolioService(portfolioStore)

	// HTTP хэндлеры.
	uploadHandler := httpHandlers.NewUploadHandler(uploadService)
	portfolioHandler := httpHandlers.NewPortfolioHandler(portfolioService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn, mediaStorage)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, uploadHandler, portfolioHandler, healthHandler, mediaStorage.RootPath())

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	})

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// connectDatabase подключается к Postgres и прогоняет миграции.
// Пустой DATABASE_URL — не ошибка: долговечное хранилище просто выключено.
func connectDatabase(ctx context.Context, cfg *config.Config) (*sqlx.DB, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}

	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		_ = dbConn.Close()
		return nil, err
	}

	return dbConn, nil
}
