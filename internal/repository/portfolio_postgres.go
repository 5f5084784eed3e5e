package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/portfolio-backend/internal/models"
)

// PostgresPortfolioRepository хранит портфолио в таблице portfolios.
// Список работ лежит целиком в одной JSONB колонке: контракт хранилища —
// полная замена по ключу, построчная модель здесь не нужна.
type PostgresPortfolioRepository struct {
	db *sqlx.DB
}

// NewPostgresPortfolioRepository создаёт экземпляр репозитория.
func NewPostgresPortfolioRepository(db *sqlx.DB) *PostgresPortfolioRepository {
	return &PostgresPortfolioRepository{db: db}
}

// Save атомарно заменяет портфолио пользователя через upsert.
func (r *PostgresPortfolioRepository) Save(ctx context.Context, userID string, items []models.MediaItem) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("portfolio repository: marshal items %w", err)
	}

	query := `
		INSERT INTO portfolios (user_id, items, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET items = EXCLUDED.items, updated_at = NOW()
	`

	if _, err := r.db.ExecContext(ctx, query, userID, payload); err != nil {
		return fmt.Errorf("portfolio repository: save %w", err)
	}

	return nil
}

// Load возвращает портфолио пользователя, пустой список для неизвестного userID.
func (r *PostgresPortfolioRepository) Load(ctx context.Context, userID string) ([]models.MediaItem, error) {
	var payload []byte
	err := r.db.GetContext(ctx, &payload, `SELECT items FROM portfolios WHERE user_id = $1`, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []models.MediaItem{}, nil
		}
		return nil, fmt.Errorf("portfolio repository: load %w", err)
	}

	var items []models.MediaItem
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, fmt.Errorf("portfolio repository: unmarshal items %w", err)
	}
	if items == nil {
		items = []models.MediaItem{}
	}

	return items, nil
}
