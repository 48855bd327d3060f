package repository

import (
	"career_backend/internal/model"

	"gorm.io/gorm"
)

type MarketTrendRepository struct {
	DB *gorm.DB
}

func NewMarketTrendRepository(db *gorm.DB) *MarketTrendRepository {
	return &MarketTrendRepository{DB: db}
}

func (r *MarketTrendRepository) FindAll() ([]model.MarketTrend, error) {
	var trends []model.MarketTrend
	err := r.DB.Order("category, id").Find(&trends).Error
	return trends, err
}
