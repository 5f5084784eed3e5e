package service

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/h2non/filetype"
	"github.com/sirupsen/logrus"

	"github.com/ignatzorin/portfolio-backend/internal/logger"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// Разрешённые типы изображений. Сравнение строгое, с учётом регистра.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// Разрешённые типы видео.
var allowedVideoTypes = map[string]bool{
	"video/mp4":       true,
	"video/quicktime": true,
	"video/webm":      true,
	"video/ogg":       true,
}

// Форматы дат, которые принимаем на входе. Всё остальное молча отбрасывается.
var acceptedDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// UploadInput описывает один запрос на загрузку файла.
type UploadInput struct {
	File        io.ReadSeeker
	ContentType string
	Filename    string
	Title       string
	Description string
	Category    string
	Date        string
}

// UploadService реализует конвейер загрузки: валидация заявленного типа,
// генерация уникального имени, запись на диск и сборка метаданных.
type UploadService struct {
	storage    *storage.MediaStorage
	publicPath string
}

// NewUploadService создаёт сервис загрузки.
func NewUploadService(st *storage.MediaStorage, publicPath string) *UploadService {
	return &UploadService{
		storage:    st,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}
}

// Upload проводит файл через весь конвейер и возвращает метаданные.
// Валидация типа выполняется до любого обращения к диску: при
// неподдерживаемом типе на диске не появляется ни одного байта.
func (s *UploadService) Upload(ctx context.Context, in UploadInput) (*models.MediaItem, error) {
	mediaType, err := classifyContentType(in.ContentType)
	if err != nil {
		return nil, err
	}

	// Реальный тип по магическим байтам сверяем с заявленным.
	// Классификация остаётся по заявленному типу, несовпадение только логируем.
	s.sniffAndWarn(in.File, in.ContentType, in.Filename)

	// Из клиентского имени берём только расширение, само имя не используется.
	ext := filepath.Ext(filepath.Base(in.Filename))
	fileID := uuid.New().String()
	fileName := fileID + ext

	if _, err := s.storage.Save(ctx, fileName, in.File); err != nil {
		return nil, err
	}

	item := &models.MediaItem{
		ID:          fileID,
		Filename:    fileName,
		MediaType:   mediaType,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Date:        parseOptionalDate(in.Date),
		URL:         s.publicPath + "/" + fileName,
	}

	return item, nil
}

// classifyContentType относит заявленный тип к image или video.
func classifyContentType(contentType string) (models.MediaType, error) {
	switch {
	case allowedImageTypes[contentType]:
		return models.MediaTypeImage, nil
	case allowedVideoTypes[contentType]:
		return models.MediaTypeVideo, nil
	default:
		return "", apperror.Wrap(apperror.ErrUnsupportedFileType, apperror.ErrCodeValidation,
			fmt.Sprintf("неподдерживаемый тип файла: %s", contentType))
	}
}

// sniffAndWarn читает первые 512 байт, определяет тип по магическим байтам
// и пишет предупреждение при расхождении с заявленным content type.
// Позиция чтения восстанавливается; любая ошибка здесь не прерывает загрузку.
func (s *UploadService) sniffAndWarn(f io.ReadSeeker, declared, name string) {
	defer func() {
		_, _ = f.Seek(0, io.SeekStart)
	}()

	buffer := make([]byte, 512)
	n, err := f.Read(buffer)
	if err != nil && err != io.EOF {
		return
	}

	kind, err := filetype.Match(buffer[:n])
	if err != nil || kind == filetype.Unknown {
		return
	}

	if kind.MIME.Value != declared {
		logger.L().WithFields(logrus.Fields{
			"declared": declared,
			"detected": kind.MIME.Value,
			"filename": name,
		}).Warn("заявленный content type не совпадает с магическими байтами")
	}
}

// parseOptionalDate парсит необязательную дату в формате ISO-8601.
// Невалидная строка не является ошибкой: поле просто остаётся пустым.
func parseOptionalDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}

	for _, layout := range acceptedDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t
		}
	}

	logger.L().WithField("date", raw).Debug("не удалось распарсить дату, поле будет отброшено")
	return nil
}
