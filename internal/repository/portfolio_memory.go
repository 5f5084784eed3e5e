package repository

import (
	"context"
	"sync"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// MemoryPortfolioRepository хранит портфолио в памяти процесса.
// Содержимое не переживает рестарт — это заявленное ограничение,
// долговечный вариант включается через PostgresPortfolioRepository.
type MemoryPortfolioRepository struct {
	mu         sync.RWMutex
	portfolios map[string][]models.MediaItem
}

// NewMemoryPortfolioRepository создаёт пустое хранилище.
func NewMemoryPortfolioRepository() *MemoryPortfolioRepository {
	return &MemoryPortfolioRepository{
		portfolios: make(map[string][]models.MediaItem),
	}
}

// Save безусловно заменяет портфолио пользователя.
// Сохраняется копия списка, чтобы вызывающая сторона не могла
// изменить содержимое хранилища через свой слайс.
func (r *MemoryPortfolioRepository) Save(ctx context.Context, userID string, items []models.MediaItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]models.MediaItem, len(items))
	copy(stored, items)

	r.mu.Lock()
	r.portfolios[userID] = stored
	r.mu.Unlock()

	return nil
}

// Load возвращает копию портфолио пользователя.
// Для неизвестного userID возвращается пустой список.
func (r *MemoryPortfolioRepository) Load(ctx context.Context, userID string) ([]models.MediaItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	stored := r.portfolios[userID]
	r.mu.RUnlock()

	items := make([]models.MediaItem, len(stored))
	copy(items, stored)
	return items, nil
}
