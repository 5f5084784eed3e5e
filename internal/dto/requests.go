package dto

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// SavePortfolioRequest — тело запроса POST /save-portfolio.
// Список items заменяет прежнее портфолио целиком.
type SavePortfolioRequest struct {
	UserID string             `json:"user_id" binding:"required"`
	Items  []models.MediaItem `json:"items"`
}
