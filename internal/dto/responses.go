package dto

import (
	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// ErrorResponse — стандартный формат ошибки для клиента.
type ErrorResponse struct {
	Error string `json:"error"`
}

// StatusResponse — подтверждение успешной операции.
type StatusResponse struct {
	Status string `json:"status"`
}

// PortfolioResponse — тело ответа GET /load-portfolio/:user_id.
// Для неизвестного пользователя items — пустой список, не null.
type PortfolioResponse struct {
	Items []models.MediaItem `json:"items"`
}
