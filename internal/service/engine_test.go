package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/quangtran/monngon/backend/config"
	"github.com/quangtran/monngon/backend/internal/models"
)

func testConfig() *config.Config {
	return &config.Config{
		ClusterCount:  2,
		MinSupport:    0.2,
		MinConfidence: 0.1,
		CacheTTL:      time.Minute,
	}
}

func seedDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Interaction{}, &models.MenuItem{}))

	interactions := []models.Interaction{
		{UserID: 1, RecipeID: 10, Rating: 5, Date: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), Season: "Winter", Name: "Phở Bò", Minutes: 45, Calories: 420, IngredientCount: 3},
		{UserID: 1, RecipeID: 20, Rating: 4, Date: time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC), Season: "Winter", Name: "Gỏi Cuốn", Minutes: 20, Calories: 180, IngredientCount: 3},
		{UserID: 2, RecipeID: 10, Rating: 4, Date: time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC), Season: "Summer", Name: "Phở Bò", Minutes: 45, Calories: 420, IngredientCount: 3},
		{UserID: 2, RecipeID: 20, Rating: 5, Date: time.Date(2024, 7, 2, 0, 0, 0, 0, time.UTC), Season: "Summer", Name: "Gỏi Cuốn", Minutes: 20, Calories: 180, IngredientCount: 3},
	}
	require.NoError(t, db.Create(&interactions).Error)

	items := []models.MenuItem{
		{ID: 10, Name: "Phở Bò", Ingredients: models.JSONStringArray{"beef", "rice noodles"}, Tags: models.JSONStringArray{"vietnamese", "soup"}, Minutes: 45, Calories: 420, IngredientCount: 3, Season: "Winter"},
		{ID: 20, Name: "Gỏi Cuốn", Ingredients: models.JSONStringArray{"tofu", "rice paper"}, Tags: models.JSONStringArray{"vietnamese", "light"}, Minutes: 20, Calories: 180, IngredientCount: 3, Season: "Summer"},
	}
	require.NoError(t, db.Create(&items).Error)
	return db
}

func TestEngineServiceReload(t *testing.T) {
	db := seedDB(t)
	svc := NewEngineService(db, nil, testConfig(), nil)

	require.NoError(t, svc.Reload(context.Background()))

	catalog := svc.Catalog()
	require.Len(t, catalog, 2)
	assert.Equal(t, "Phở Bò", catalog[0].Name)
	assert.Equal(t, "beef, rice noodles", catalog[0].Ingredients)

	trends := svc.Trends()
	assert.NotEmpty(t, trends)
}

func TestEngineServiceRecommendWithoutCache(t *testing.T) {
	db := seedDB(t)
	svc := NewEngineService(db, nil, testConfig(), nil)
	require.NoError(t, svc.Reload(context.Background()))

	ids := svc.Recommend(context.Background(), 1, "Winter", 5)
	assert.NotNil(t, ids)
	assert.LessOrEqual(t, len(ids), 5)

	// Unknown users still get the popularity fallback.
	ids = svc.Recommend(context.Background(), 999, "Winter", 5)
	assert.NotEmpty(t, ids)
}

func TestEngineServiceRecommendBeforeReload(t *testing.T) {
	db := seedDB(t)
	svc := NewEngineService(db, nil, testConfig(), nil)

	ids := svc.Recommend(context.Background(), 1, "", 5)
	assert.NotNil(t, ids)
	assert.Empty(t, ids)
}

func TestEngineServiceMenuItems(t *testing.T) {
	db := seedDB(t)
	svc := NewEngineService(db, nil, testConfig(), nil)
	require.NoError(t, svc.Reload(context.Background()))

	items := svc.MenuItems([]int64{20, 999, 10})
	require.Len(t, items, 2)
	assert.Equal(t, int64(20), items[0].ID)
	assert.Equal(t, int64(10), items[1].ID)
}

func TestChatServiceRespond(t *testing.T) {
	db := seedDB(t)
	engine := NewEngineService(db, nil, testConfig(), nil)
	require.NoError(t, engine.Reload(context.Background()))

	chatSvc := NewChatService(nil)
	chatSvc.SetCatalog(engine.Catalog())

	resp := chatSvc.Respond(context.Background(), uuid.New(), "tôi muốn ăn phở bò")
	assert.NotEmpty(t, resp.Message)
	assert.NotEmpty(t, resp.Recommendations)
}
