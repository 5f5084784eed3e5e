package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/config"
	"github.com/ignatzorin/portfolio-backend/internal/http/handlers"
	"github.com/ignatzorin/portfolio-backend/internal/http/middleware"
)

// SetupRouter собирает все маршруты сервиса.
// Загруженные файлы раздаются как статика под публичным префиксом,
// отдельного хэндлера для отдачи медиа нет.
func SetupRouter(
	cfg *config.Config,
	uploadHandler *handlers.UploadHandler,
	portfolioHandler *handlers.PortfolioHandler,
	healthHandler *handlers.HealthHandler,
	mediaDir string,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))

	r.GET("/health", healthHandler.Health)
	r.StaticFS(cfg.MediaPublicPath, http.Dir(mediaDir))

	uploadRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	r.POST("/upload", uploadRateLimit, uploadHandler.Upload)

	r.POST("/save-portfolio", portfolioHandler.SavePortfolio)
	r.GET("/load-portfolio/:user_id", portfolioHandler.LoadPortfolio)

	return r
}
