// Manual market-trend reseed script.
//
// The default trend rows are inserted automatically on first migration.
// This script wipes the table and re-inserts them, for use after editing
// the seed data or recovering a corrupted table.
//
// Usage: go run scripts/reseed_market_trends.go
package main

import (
	"career_backend/internal/config"
	"career_backend/internal/model"
	"career_backend/pkg/database"
	"career_backend/pkg/logger"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database, false)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.Where("1 = 1").Delete(&model.MarketTrend{}).Error; err != nil {
		log.Fatalf("failed to clear market trends: %v", err)
	}

	if err := database.SeedMarketTrends(db); err != nil {
		log.Fatalf("failed to reseed market trends: %v", err)
	}

	log.Println("Market trend seed data reinserted")
}
