package database

import (
	"career_backend/internal/config"
	"career_backend/internal/model"
	"encoding/json"
	"fmt"
	"log"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB opens the MySQL connection and, when runMigration is set, runs
// AutoMigrate and inserts the market-trend seed rows.
func InitDB(cfg *config.DatabaseConfig, runMigration bool) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if !runMigration {
		return db, nil
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.UserSignInDetail{},
		&model.UserProfile{},
		&model.Assessment{},
		&model.Recommendation{},
		&model.SavedJob{},
		&model.MarketTrend{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := SeedMarketTrends(db); err != nil {
		return nil, err
	}

	return db, nil
}

type trendSeed struct {
	category    string
	title       string
	description string
	data        interface{}
}

// SeedMarketTrends inserts the default market trend rows. It is a no-op
// when any rows already exist.
func SeedMarketTrends(db *gorm.DB) error {
	var count int64
	db.Model(&model.MarketTrend{}).Count(&count)
	if count > 0 {
		return nil
	}

	seeds := []trendSeed{
		{model.TrendCategorySkills, "Machine Learning", "Very High demand", map[string]string{"growth": "+25%", "demand": "Very High"}},
		{model.TrendCategorySkills, "Cloud Computing", "Very High demand", map[string]string{"growth": "+22%", "demand": "Very High"}},
		{model.TrendCategorySkills, "Cybersecurity", "High demand", map[string]string{"growth": "+20%", "demand": "High"}},
		{model.TrendCategorySkills, "Data Engineering", "High demand", map[string]string{"growth": "+18%", "demand": "High"}},
		{model.TrendCategorySkills, "DevOps", "High demand", map[string]string{"growth": "+15%", "demand": "High"}},
		{model.TrendCategorySalaries, "Entry Level", "", map[string]string{"range": "$60k - $85k", "growth": "+12%"}},
		{model.TrendCategorySalaries, "Mid Level", "", map[string]string{"range": "$85k - $120k", "growth": "+15%"}},
		{model.TrendCategorySalaries, "Senior Level", "", map[string]string{"range": "$120k - $180k", "growth": "+18%"}},
		{model.TrendCategorySalaries, "Lead/Principal", "", map[string]string{"range": "$180k - $250k+", "growth": "+20%"}},
		{model.TrendCategoryDemandGrowth, "demand_growth", "Indexed demand by year", map[string]interface{}{
			"data_science":         []int{100, 115, 130, 145, 165, 185},
			"software_engineering": []int{100, 108, 118, 128, 140, 152},
			"years":                []string{"2020", "2021", "2022", "2023", "2024", "2025"},
		}},
		{model.TrendCategorySkillDist, "skill_distribution", "Hiring signal weight by area", map[string]int{
			"technical":        40,
			"soft_skills":      25,
			"domain_knowledge": 20,
			"tools":            15,
		}},
	}

	for _, s := range seeds {
		raw, err := json.Marshal(s.data)
		if err != nil {
			return err
		}
		trend := &model.MarketTrend{
			Category:    s.category,
			Title:       s.title,
			Description: s.description,
			TrendData:   raw,
		}
		if err := db.Create(trend).Error; err != nil {
			return err
		}
	}

	log.Println("Market trend seed data inserted")
	return nil
}
