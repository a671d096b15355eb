// Command pipeline runs the batch side of the engine: it cleans the raw
// CSVs, stores the interaction log and menu catalog in the database,
// fits the model, and exports the rule and trend tables.
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/quangtran/monngon/backend/config"
	"github.com/quangtran/monngon/backend/internal/database"
	"github.com/quangtran/monngon/backend/internal/dataset"
	"github.com/quangtran/monngon/backend/internal/models"
	"github.com/quangtran/monngon/backend/internal/recommend"
)

const storeBatchSize = 500

func main() {
	outDir := flag.String("out", "output", "directory for exported CSV tables")
	skipStore := flag.Bool("skip-store", false, "fit and export without writing to the database")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	cleaner := dataset.NewCleaner(logger)
	recipes, err := cleaner.LoadRecipes(cfg.RecipesPath)
	if err != nil {
		logger.Fatal("failed to load recipes", zap.Error(err))
	}
	interactions, err := cleaner.LoadInteractions(cfg.InteractionsPath)
	if err != nil {
		logger.Fatal("failed to load interactions", zap.Error(err))
	}
	merged := cleaner.Merge(recipes, interactions)
	menu := cleaner.BuildMenu(merged, recipes)

	if !*skipStore {
		db, err := database.New(cfg, logger)
		if err != nil {
			logger.Fatal("failed to connect to database", zap.Error(err))
		}
		if err := database.RunMigrations(db.DB); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
		if err := db.Exec("DELETE FROM interactions").Error; err != nil {
			logger.Fatal("failed to clear interactions", zap.Error(err))
		}
		if err := db.Exec("DELETE FROM menu_items").Error; err != nil {
			logger.Fatal("failed to clear menu items", zap.Error(err))
		}
		if err := db.CreateInBatches(merged, storeBatchSize).Error; err != nil {
			logger.Fatal("failed to store interactions", zap.Error(err))
		}
		if err := db.CreateInBatches(menu, storeBatchSize).Error; err != nil {
			logger.Fatal("failed to store menu items", zap.Error(err))
		}
		logger.Info("stored cleaned data",
			zap.Int("interactions", len(merged)),
			zap.Int("menu_items", len(menu)))
	}

	data := make([]recommend.Interaction, len(merged))
	for i, row := range merged {
		data[i] = interactionView(row)
	}
	rec := recommend.NewRecommender(logger)
	rec.Load(data)
	rec.Fit(cfg.ClusterCount, cfg.MinSupport, cfg.MinConfidence)

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		logger.Fatal("failed to create output directory", zap.Error(err))
	}
	if err := exportCSV(filepath.Join(*outDir, "association_rules.csv"), rec.WriteRulesCSV); err != nil {
		logger.Fatal("failed to export rules", zap.Error(err))
	}
	if err := exportCSV(filepath.Join(*outDir, "seasonal_trends.csv"), rec.WriteTrendsCSV); err != nil {
		logger.Fatal("failed to export trends", zap.Error(err))
	}

	logger.Info("pipeline complete",
		zap.Int("rules", len(rec.Rules())),
		zap.Int("trends", len(rec.Trends())),
		zap.String("out", *outDir))
}

func interactionView(row models.Interaction) recommend.Interaction {
	return recommend.Interaction{
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

func exportCSV(path string, write func(w io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
