package models

import (
	"time"
)

// MediaType определяет класс загруженного файла.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
)

// MediaItem описывает метаданные одного загруженного файла.
// ID присваивается при загрузке и больше не меняется.
type MediaItem struct {
	ID          string     `json:"id"`
	Filename    string     `json:"filename"`
	MediaType   MediaType  `json:"media_type"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Date        *time.Time `json:"date,omitempty"`
	URL         string     `json:"url"`
}

// Portfolio описывает полный набор работ одного пользователя.
// Порядок элементов задаёт клиент и сохраняется как есть,
// дубликаты по id допустимы.
type Portfolio struct {
	UserID string      `json:"user_id"`
	Items  []MediaItem `json:"items"`
}
