// Package service wires the engine, chat, and storage layers behind the
// HTTP handlers.
package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/quangtran/monngon/backend/config"
	"github.com/quangtran/monngon/backend/internal/dataset"
	"github.com/quangtran/monngon/backend/internal/models"
	"github.com/quangtran/monngon/backend/internal/nlp"
	"github.com/quangtran/monngon/backend/internal/recommend"
)

// EngineService owns the fitted recommendation model and the menu
// catalog snapshot. Reload rebuilds both from the database; reads are
// served from the previous snapshot until the swap.
type EngineService struct {
	db     *gorm.DB
	cache  *redis.Client
	logger *zap.Logger

	clusterCount  int
	minSupport    float64
	minConfidence float64
	cacheTTL      time.Duration

	mu         sync.RWMutex
	rec        *recommend.Recommender
	catalog    []nlp.Recipe
	generation int64
}

// NewEngineService creates an EngineService. The redis client is
// optional; without it recommendations are computed on every request.
func NewEngineService(db *gorm.DB, cache *redis.Client, cfg *config.Config, logger *zap.Logger) *EngineService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EngineService{
		db:            db,
		cache:         cache,
		logger:        logger,
		clusterCount:  cfg.ClusterCount,
		minSupport:    cfg.MinSupport,
		minConfidence: cfg.MinConfidence,
		cacheTTL:      cfg.CacheTTL,
		rec:           recommend.NewRecommender(logger),
	}
}

// Reload rebuilds the model and catalog from the database and swaps
// them in. Cached recommendations from earlier generations are left to
// expire; the generation counter keeps them out of lookups.
func (s *EngineService) Reload(ctx context.Context) error {
	var rows []models.Interaction
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return fmt.Errorf("loading interactions: %w", err)
	}
	var items []models.MenuItem
	if err := s.db.WithContext(ctx).Find(&items).Error; err != nil {
		return fmt.Errorf("loading menu items: %w", err)
	}

	data := make([]recommend.Interaction, len(rows))
	for i, row := range rows {
		data[i] = recommend.Interaction{
			UserID:          row.UserID,
			RecipeID:        row.RecipeID,
			Rating:          row.Rating,
			Season:          row.Season,
			Name:            row.Name,
			Minutes:         row.Minutes,
			Calories:        row.Calories,
			IngredientCount: float64(row.IngredientCount),
			Cluster:         -1,
		}
	}

	rec := recommend.NewRecommender(s.logger)
	rec.Load(data)
	rec.Fit(s.clusterCount, s.minSupport, s.minConfidence)

	catalog := make([]nlp.Recipe, len(items))
	for i, item := range items {
		catalog[i] = nlp.Recipe{
			ID:              item.ID,
			Name:            item.Name,
			Ingredients:     strings.Join(item.Ingredients, ", "),
			Tags:            strings.Join(item.Tags, ", "),
			Description:     item.Description,
			Minutes:         item.Minutes,
			Calories:        item.Calories,
			IngredientCount: item.IngredientCount,
			Season:          item.Season,
		}
	}

	s.mu.Lock()
	s.rec = rec
	s.catalog = catalog
	s.generation++
	gen := s.generation
	s.mu.Unlock()

	s.logger.Info("engine reloaded",
		zap.Int("interactions", len(data)),
		zap.Int("menu_items", len(catalog)),
		zap.Int64("generation", gen))
	return nil
}

// Recommend returns up to n recipe IDs for the user and season,
// consulting the redis cache first. Cache failures degrade to a direct
// computation.
func (s *EngineService) Recommend(ctx context.Context, userID int64, season string, n int) []int64 {
	if season == "" {
		season = dataset.SeasonOf(time.Now().Month())
	}
	if n <= 0 {
		n = recommend.DefaultRecommendations
	}

	s.mu.RLock()
	rec := s.rec
	gen := s.generation
	s.mu.RUnlock()

	key := fmt.Sprintf("rec:%d:%d:%s:%d", gen, userID, season, n)
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, key).Result(); err == nil {
			var ids []int64
			if json.Unmarshal([]byte(cached), &ids) == nil {
				return ids
			}
		} else if err != redis.Nil {
			s.logger.Warn("recommendation cache read failed", zap.Error(err))
		}
	}

	ids := rec.RecommendForUser(userID, season, n)

	if s.cache != nil {
		if payload, err := json.Marshal(ids); err == nil {
			if err := s.cache.Set(ctx, key, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn("recommendation cache write failed", zap.Error(err))
			}
		}
	}
	return ids
}

// Trends returns the per-season trend table of the current snapshot.
func (s *EngineService) Trends() []recommend.SeasonalTrend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec.Trends()
}

// Rules returns the association rules of the current snapshot.
func (s *EngineService) Rules() []recommend.Rule {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rec.Rules()
}

// Catalog returns the menu snapshot used for chat matching.
func (s *EngineService) Catalog() []nlp.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// MenuItems resolves recipe IDs against the catalog snapshot, keeping
// input order and skipping unknown IDs.
func (s *EngineService) MenuItems(ids []int64) []nlp.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()

	byID := make(map[int64]nlp.Recipe, len(s.catalog))
	for _, r := range s.catalog {
		byID[r.ID] = r
	}
	out := make([]nlp.Recipe, 0, len(ids))
	for _, id := range ids {
		if r, ok := byID[id]; ok {
			out = append(out, r)
		}
	}
	return out
}
