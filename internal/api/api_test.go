package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quangtran/monngon/backend/config"
	"github.com/quangtran/monngon/backend/internal/database"
	"github.com/quangtran/monngon/backend/internal/models"
	"github.com/quangtran/monngon/backend/internal/service"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		DBDriver:      "sqlite",
		DBPath:        filepath.Join(t.TempDir(), "api_test.db"),
		ClusterCount:  2,
		MinSupport:    0.2,
		MinConfidence: 0.1,
		CacheTTL:      time.Minute,
	}
	db, err := database.New(cfg, nil)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db.DB))

	interactions := []models.Interaction{
		{UserID: 1, RecipeID: 10, Rating: 5, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Season: "Winter", Name: "Phở Bò", Minutes: 45, Calories: 420, IngredientCount: 3},
		{UserID: 1, RecipeID: 20, Rating: 4, Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), Season: "Winter", Name: "Gỏi Cuốn", Minutes: 20, Calories: 180, IngredientCount: 3},
		{UserID: 2, RecipeID: 10, Rating: 4, Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Season: "Summer", Name: "Phở Bò", Minutes: 45, Calories: 420, IngredientCount: 3},
	}
	require.NoError(t, db.Create(&interactions).Error)
	items := []models.MenuItem{
		{ID: 10, Name: "Phở Bò", Ingredients: models.JSONStringArray{"beef", "rice noodles"}, Tags: models.JSONStringArray{"vietnamese", "soup"}, Minutes: 45, Calories: 420, IngredientCount: 3, Season: "Winter"},
		{ID: 20, Name: "Gỏi Cuốn", Ingredients: models.JSONStringArray{"tofu", "rice paper"}, Tags: models.JSONStringArray{"vietnamese", "vegetarian"}, Minutes: 20, Calories: 180, IngredientCount: 3, Season: "Summer"},
	}
	require.NoError(t, db.Create(&items).Error)

	engine := service.NewEngineService(db.DB, nil, cfg, nil)
	require.NoError(t, engine.Reload(context.Background()))
	chatService := service.NewChatService(nil)
	chatService.SetCatalog(engine.Catalog())

	router := gin.New()
	SetupAPI(router, db, nil, engine, chatService)
	return router
}

func doRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestChatEndpoint(t *testing.T) {
	router := newTestRouter(t)

	payload, _ := json.Marshal(map[string]string{"message": "tôi muốn ăn phở bò"})
	w := doRequest(router, http.MethodPost, "/api/v1/chat", payload)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		SessionID       uuid.UUID `json:"session_id"`
		Message         string    `json:"message"`
		Recommendations []struct {
			Name string `json:"name"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEqual(t, uuid.Nil, body.SessionID)
	assert.NotEmpty(t, body.Message)
	require.NotEmpty(t, body.Recommendations)
	assert.Equal(t, "Phở Bò", body.Recommendations[0].Name)
}

func TestChatEndpointValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/chat", []byte(`{}`))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload, _ := json.Marshal(map[string]string{"message": "phở", "session_id": "not-a-uuid"})
	w = doRequest(router, http.MethodPost, "/api/v1/chat", payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChatHistoryEndpoint(t *testing.T) {
	router := newTestRouter(t)

	sessionID := uuid.New()
	payload, _ := json.Marshal(map[string]string{
		"message":    "món chay",
		"session_id": sessionID.String(),
	})
	w := doRequest(router, http.MethodPost, "/api/v1/chat", payload)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/chat/"+sessionID.String()+"/history", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		History []struct {
			UserInput string `json:"user_input"`
		} `json:"history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.History, 1)
	assert.Equal(t, "món chay", body.History[0].UserInput)

	w = doRequest(router, http.MethodGet, "/api/v1/chat/not-a-uuid/history", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/recommendations/1?season=Winter&n=5", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		UserID          int64   `json:"user_id"`
		RecipeIDs       []int64 `json:"recipe_ids"`
		Recommendations []struct {
			ID int64 `json:"id"`
		} `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(1), body.UserID)
	assert.LessOrEqual(t, len(body.RecipeIDs), 5)
	assert.Len(t, body.Recommendations, len(body.RecipeIDs))

	w = doRequest(router, http.MethodGet, "/api/v1/recommendations/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/recommendations/1?n=0", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTrendsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/trends/seasonal", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Trends []struct {
			Season string `json:"season"`
		} `json:"trends"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Trends)
}

func TestRulesEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/rules?limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Total int               `json:"total"`
		Rules []json.RawMessage `json:"rules"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.LessOrEqual(t, len(body.Rules), 1)

	w = doRequest(router, http.MethodGet, "/api/v1/rules?limit=-1", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReloadEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/reload", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "reloaded", body["status"])
}
