package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// HealthHandler предоставляет endpoint для проверки здоровья сервиса.
type HealthHandler struct {
	db      *sqlx.DB
	storage *storage.MediaStorage
}

// NewHealthHandler создаёт новый health handler.
// db может быть nil — тогда портфолио хранятся в памяти.
func NewHealthHandler(db *sqlx.DB, st *storage.MediaStorage) *HealthHandler {
	return &HealthHandler{db: db, storage: st}
}

// HealthResponse представляет ответ health check.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// Health обрабатывает GET /health.
func (h *HealthHandler) Health(c *gin.Context) {
	checks := make(map[string]string)
	status := "healthy"

	// Проверка каталога загрузок
	if h.storage.Writable() {
		checks["media_storage"] = "healthy"
	} else {
		checks["media_storage"] = "unhealthy: каталог недоступен для записи"
		status = "unhealthy"
	}

	// Проверка подключения к БД, если долговечное хранилище включено
	if h.db != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := h.db.PingContext(ctx); err != nil {
			checks["database"] = "unhealthy: " + err.Error()
			status = "unhealthy"
		} else {
			checks["database"] = "healthy"
		}
	} else {
		checks["portfolio_store"] = "memory"
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
	})
}
