package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// PortfolioHandler обслуживает маршруты портфолио.
type PortfolioHandler struct {
	portfolio *service.PortfolioService
}

// NewPortfolioHandler создаёт новый хэндлер.
func NewPortfolioHandler(portfolio *service.PortfolioService) *PortfolioHandler {
	return &PortfolioHandler{portfolio: portfolio}
}

// SavePortfolio обрабатывает POST /save-portfolio.
// Портфолио пользователя заменяется присланным списком целиком.
func (h *PortfolioHandler) SavePortfolio(c *gin.Context) {
	var req dto.SavePortfolioRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "некорректное тело запроса"})
		return
	}

	if err := validation.ValidateUserID(req.UserID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if err := h.portfolio.SavePortfolio(c.Request.Context(), req.UserID, req.Items); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{Status: "success"})
}

// LoadPortfolio обрабатывает GET /load-portfolio/:user_id.
// Для неизвестного пользователя возвращается пустой список, не 404.
func (h *PortfolioHandler) LoadPortfolio(c *gin.Context) {
	userID := c.Param("user_id")
	if err := validation.ValidateUserID(userID); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	items, err := h.portfolio.LoadPortfolio(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.PortfolioResponse{Items: items})
}
