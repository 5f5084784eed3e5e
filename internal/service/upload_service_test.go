package service

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/pkg/apperror"
	"github.com/ignatzorin/portfolio-backend/internal/storage"
)

// newTestUploadService создаёт сервис с временным каталогом хранилища.
func newTestUploadService(t *testing.T) (*UploadService, string) {
	t.Helper()

	dir := t.TempDir()
	st, err := storage.NewMediaStorage(dir, 10)
	require.NoError(t, err)

	return NewUploadService(st, "/uploads"), dir
}

func testInput(contentType, filename string) UploadInput {
	return UploadInput{
		File:        bytes.NewReader([]byte("test content")),
		ContentType: contentType,
		Filename:    filename,
		Title:       "Работа",
	}
}

func TestUploadService_Upload_ClassifiesAllowedTypes(t *testing.T) {
	cases := []struct {
		contentType string
		want        models.MediaType
	}{
		{"image/jpeg", models.MediaTypeImage},
		{"image/png", models.MediaTypeImage},
		{"image/gif", models.MediaTypeImage},
		{"image/webp", models.MediaTypeImage},
		{"video/mp4", models.MediaTypeVideo},
		{"video/quicktime", models.MediaTypeVideo},
		{"video/webm", models.MediaTypeVideo},
		{"video/ogg", models.MediaTypeVideo},
	}

	for _, tc := range cases {
		t.Run(tc.contentType, func(t *testing.T) {
			svc, _ := newTestUploadService(t)

			item, err := svc.Upload(context.Background(), testInput(tc.contentType, "file.bin"))
			require.NoError(t, err)
			assert.Equal(t, tc.want, item.MediaType)
		})
	}
}

func TestUploadService_Upload_RejectsUnsupportedType(t *testing.T) {
	cases := []string{
		"application/pdf",
		"text/html",
		"image/svg+xml",
		"IMAGE/PNG", // сравнение с учётом регистра
		"",
	}

	for _, contentType := range cases {
		t.Run(contentType, func(t *testing.T) {
			svc, dir := newTestUploadService(t)

			item, err := svc.Upload(context.Background(), testInput(contentType, "file.pdf"))
			require.Error(t, err)
			assert.Nil(t, item)
			assert.True(t, apperror.IsValidation(err))
			assert.True(t, errors.Is(err, apperror.ErrUnsupportedFileType))

			// Валидация идёт до записи: на диске не должно появиться ни одного файла
			entries, readErr := os.ReadDir(dir)
			require.NoError(t, readErr)
			assert.Empty(t, entries)
		})
	}
}

func TestUploadService_Upload_PreservesOriginalExtension(t *testing.T) {
	svc, dir := newTestUploadService(t)

	item, err := svc.Upload(context.Background(), testInput("image/png", "photo.PNG"))
	require.NoError(t, err)

	// Расширение сохраняется как есть, включая регистр
	assert.True(t, strings.HasSuffix(item.Filename, ".PNG"))
	assert.Equal(t, item.ID+".PNG", item.Filename)
	assert.Equal(t, "/uploads/"+item.Filename, item.URL)

	_, err = os.Stat(dir + "/" + item.Filename)
	assert.NoError(t, err)
}

func TestUploadService_Upload_NoExtension(t *testing.T) {
	svc, _ := newTestUploadService(t)

	item, err := svc.Upload(context.Background(), testInput("image/jpeg", "noext"))
	require.NoError(t, err)

	assert.Equal(t, item.ID, item.Filename)
	assert.NotContains(t, item.Filename, ".")
}

func TestUploadService_Upload_IgnoresClientPath(t *testing.T) {
	svc, _ := newTestUploadService(t)

	// Из клиентского имени берётся только расширение, путь отбрасывается
	item, err := svc.Upload(context.Background(), testInput("image/png", "../../etc/passwd.png"))
	require.NoError(t, err)

	assert.Equal(t, item.ID+".png", item.Filename)
	assert.NotContains(t, item.Filename, "/")
}

func TestUploadService_Upload_DistinctNamesForIdenticalFiles(t *testing.T) {
	svc, dir := newTestUploadService(t)

	first, err := svc.Upload(context.Background(), testInput("image/png", "same.png"))
	require.NoError(t, err)
	second, err := svc.Upload(context.Background(), testInput("image/png", "same.png"))
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, first.Filename, second.Filename)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestUploadService_Upload_ParsesValidDate(t *testing.T) {
	cases := []struct {
		raw  string
		want time.Time
	}{
		{"2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"2024-03-15T10:30:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15T10:30:00Z", time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)},
		{"2024-03-15T10:30:00+03:00", time.Date(2024, 3, 15, 10, 30, 0, 0, time.FixedZone("", 3*60*60))},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			svc, _ := newTestUploadService(t)

			in := testInput("image/png", "dated.png")
			in.Date = tc.raw

			item, err := svc.Upload(context.Background(), in)
			require.NoError(t, err)
			require.NotNil(t, item.Date)
			assert.True(t, tc.want.Equal(*item.Date))
		})
	}
}

func TestUploadService_Upload_SilentlyDropsInvalidDate(t *testing.T) {
	cases := []string{"не дата", "15.03.2024", "2024-13-45", "yesterday"}

	for _, raw := range cases {
		t.Run(raw, func(t *testing.T) {
			svc, _ := newTestUploadService(t)

			in := testInput("image/png", "dated.png")
			in.Date = raw

			// Невалидная дата не ошибка: загрузка проходит, поле остаётся пустым
			item, err := svc.Upload(context.Background(), in)
			require.NoError(t, err)
			assert.Nil(t, item.Date)
		})
	}
}

func TestUploadService_Upload_CarriesMetadataFields(t *testing.T) {
	svc, _ := newTestUploadService(t)

	in := testInput("video/mp4", "clip.mp4")
	in.Title = "Шоурил"
	in.Description = "Монтаж за 2024 год"
	in.Category = "video"

	item, err := svc.Upload(context.Background(), in)
	require.NoError(t, err)

	assert.Equal(t, "Шоурил", item.Title)
	assert.Equal(t, "Монтаж за 2024 год", item.Description)
	assert.Equal(t, "video", item.Category)
	assert.Equal(t, models.MediaTypeVideo, item.MediaType)
}
