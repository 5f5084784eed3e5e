package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/service"
	"github.com/ignatzorin/portfolio-backend/internal/validation"
)

// UploadHandler принимает загрузку медиа-файлов.
type UploadHandler struct {
	uploads *service.UploadService
}

// NewUploadHandler создаёт новый хэндлер.
func NewUploadHandler(uploads *service.UploadService) *UploadHandler {
	return &UploadHandler{uploads: uploads}
}

// Upload обрабатывает POST /upload.
// Принимает multipart-форму: file, title (обязателен), description,
// category и date (ISO-8601, необязательна).
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "поле file обязательно"})
		return
	}

	title := c.PostForm("title")
	if err := validation.ValidateTitle(title); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	description := c.PostForm("description")
	if err := validation.ValidateDescription(description); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	category := c.PostForm("category")
	if err := validation.ValidateCategory(category); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	if fileHeader.Size == 0 {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: apperror.ErrEmptyFile.Message})
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
		return
	}
	defer src.Close()

	item, err := h.uploads.Upload(c.Request.Context(), service.UploadInput{
		File:        src,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Filename:    fileHeader.Filename,
		Title:       title,
		Description: description,
		Category:    category,
		Date:        c.PostForm("date"),
	})
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.HTTPStatus, dto.ErrorResponse{Error: appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "внутренняя ошибка сервера"})
		return
	}

	c.JSON(http.StatusCreated, item)
}
