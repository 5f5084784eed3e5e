package service

import (
	"context"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// PortfolioStore описывает взаимодействие сервиса с хранилищем портфолио.
// Ключ — внешний идентификатор пользователя, значение — упорядоченный
// список метаданных медиа.
type PortfolioStore interface {
	Save(ctx context.Context, userID string, items []models.MediaItem) error
	Load(ctx context.Context, userID string) ([]models.MediaItem, error)
}

// PortfolioService содержит логику сохранения и загрузки портфолио.
type PortfolioService struct {
	store PortfolioStore
}

// NewPortfolioService создаёт новый сервис портфолио.
func NewPortfolioService(store PortfolioStore) *PortfolioService {
	return &PortfolioService{store: store}
}

// SavePortfolio полностью заменяет портфолио пользователя новым списком.
// Слияния с предыдущим содержимым нет, побеждает последняя запись.
func (s *PortfolioService) SavePortfolio(ctx context.Context, userID string, items []models.MediaItem) error {
	return s.store.Save(ctx, userID, items)
}

// LoadPortfolio возвращает сохранённый список работ пользователя.
// Для неизвестного userID это пустой список, а не ошибка.
func (s *PortfolioService) LoadPortfolio(ctx context.Context, userID string) ([]models.MediaItem, error) {
	items, err := s.store.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.MediaItem{}
	}
	return items, nil
}
