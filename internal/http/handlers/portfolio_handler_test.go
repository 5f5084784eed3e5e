package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignatzorin/portfolio-backend/internal/dto"
	"github.com/ignatzorin/portfolio-backend/internal/models"
	"github.com/ignatzorin/portfolio-backend/internal/repository"
	"github.com/ignatzorin/portfolio-backend/internal/service"
)

// newPortfolioRouter собирает роутер с in-memory хранилищем.
func newPortfolioRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handler := NewPortfolioHandler(service.NewPortfolioService(repository.NewMemoryPortfolioRepository()))

	r := gin.New()
	r.POST("/save-portfolio", handler.SavePortfolio)
	r.GET("/load-portfolio/:user_id", handler.LoadPortfolio)
	return r
}

func savePortfolio(t *testing.T, r *gin.Engine, userID string, items []models.MediaItem) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(dto.SavePortfolioRequest{UserID: userID, Items: items})
	require.NoError(t, err)

	req, _ := http.NewRequest("POST", "/save-portfolio", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func loadPortfolio(t *testing.T, r *gin.Engine, userID string) (*httptest.ResponseRecorder, dto.PortfolioResponse) {
	t.Helper()

	req, _ := http.NewRequest("GET", "/load-portfolio/"+userID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.PortfolioResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w, resp
}

func TestPortfolioHandler_SaveThenLoad(t *testing.T) {
	r := newPortfolioRouter(t)

	items := []models.MediaItem{
		{ID: "a", Filename: "a.png", MediaType: models.MediaTypeImage, Title: "Первая", URL: "/uploads/a.png"},
		{ID: "b", Filename: "b.mp4", MediaType: models.MediaTypeVideo, Title: "Вторая", URL: "/uploads/b.mp4"},
	}

	w := savePortfolio(t, r, "user-1", items)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "success")

	lw, resp := loadPortfolio(t, r, "user-1")
	require.Equal(t, http.StatusOK, lw.Code)
	assert.Equal(t, items, resp.Items)
}

func TestPortfolioHandler_LoadUnknownUser(t *testing.T) {
	r := newPortfolioRouter(t)

	w, resp := loadPortfolio(t, r, "неизвестный")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, resp.Items)
	assert.Empty(t, resp.Items)
	// items сериализуется как [], не null
	assert.Contains(t, w.Body.String(), `"items":[]`)
}

func TestPortfolioHandler_SaveReplacesCompletely(t *testing.T) {
	r := newPortfolioRouter(t)

	first := []models.MediaItem{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	second := []models.MediaItem{{ID: "c", Title: "C"}}

	require.Equal(t, http.StatusOK, savePortfolio(t, r, "user-1", first).Code)
	require.Equal(t, http.StatusOK, savePortfolio(t, r, "user-1", second).Code)

	w, resp := loadPortfolio(t, r, "user-1")
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "c", resp.Items[0].ID)
}

func TestPortfolioHandler_SaveEmptyList(t *testing.T) {
	r := newPortfolioRouter(t)

	require.Equal(t, http.StatusOK, savePortfolio(t, r, "user-1", []models.MediaItem{{ID: "a"}}).Code)
	require.Equal(t, http.StatusOK, savePortfolio(t, r, "user-1", []models.MediaItem{}).Code)

	w, resp := loadPortfolio(t, r, "user-1")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Items)
}

func TestPortfolioHandler_SaveWithoutUserID(t *testing.T) {
	r := newPortfolioRouter(t)

	req, _ := http.NewRequest("POST", "/save-portfolio", bytes.NewReader([]byte(`{"items":[]}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPortfolioHandler_SaveInvalidBody(t *testing.T) {
	r := newPortfolioRouter(t)

	req, _ := http.NewRequest("POST", "/save-portfolio", bytes.NewReader([]byte(`не json`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "некорректное тело запроса")
}
