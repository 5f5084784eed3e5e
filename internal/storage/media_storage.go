package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
)

// MediaStorage отвечает за файловое хранилище загруженных медиа.
// Каталог плоский: каждый файл лежит прямо в rootPath под сгенерированным именем.
// Файлы только добавляются, существующие никогда не перезаписываются и не удаляются.
type MediaStorage struct {
	rootPath       string
	maxUploadBytes int64
}

// NewMediaStorage создаёт файловое хранилище.
func NewMediaStorage(rootPath string, maxUploadMB int64) (*MediaStorage, error) {
	if err := os.MkdirAll(rootPath, 0o755); err != nil {
		return nil, fmt.Errorf("storage: не удалось создать каталог %s: %w", rootPath, err)
	}

	return &MediaStorage{
		rootPath:       rootPath,
		maxUploadBytes: maxUploadMB * 1024 * 1024,
	}, nil
}

// RootPath возвращает каталог хранилища (для static-раздачи).
func (s *MediaStorage) RootPath() string {
	return s.rootPath
}

// Save записывает содержимое r в файл fileName и возвращает размер.
// Имя файла генерирует вызывающая сторона, уникальность обеспечивается там же.
// Частично записанный файл при ошибке удаляется, отката записи метаданных нет.
func (s *MediaStorage) Save(ctx context.Context, fileName string, r io.Reader) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	targetPath := filepath.Join(s.rootPath, filepath.Base(fileName))

	f, err := os.Create(targetPath)
	if err != nil {
		return 0, fmt.Errorf("storage: не удалось создать файл: %w", err)
	}
	defer f.Close()

	limitedReader := io.LimitedReader{R: r, N: s.maxUploadBytes + 1}
	written, err := io.Copy(f, &limitedReader)
	if err != nil {
		_ = os.Remove(targetPath)
		return 0, fmt.Errorf("storage: ошибка записи файла: %w", err)
	}

	if written > s.maxUploadBytes {
		_ = os.Remove(targetPath)
		return 0, apperror.ErrFileTooLarge
	}

	if err := f.Close(); err != nil {
		_ = os.Remove(targetPath)
		return 0, fmt.Errorf("storage: ошибка закрытия файла: %w", err)
	}

	return written, nil
}

// Writable проверяет, что каталог хранилища доступен для записи.
// Используется в health-check.
func (s *MediaStorage) Writable() bool {
	probe, err := os.CreateTemp(s.rootPath, ".probe-*")
	if err != nil {
		return false
	}
	name := probe.Name()
	_ = probe.Close()
	_ = os.Remove(name)
	return true
}
