package repository

import (
	"career_backend/internal/model"

	"gorm.io/gorm"
)

type RecommendationRepository struct {
	DB *gorm.DB
}

func NewRecommendationRepository(db *gorm.DB) *RecommendationRepository {
	return &RecommendationRepository{DB: db}
}

func (r *RecommendationRepository) FindByUserID(userID uint) ([]model.Recommendation, error) {
	var recs []model.Recommendation
	err := r.DB.Where("user_id = ?", userID).
		Order("match_percentage DESC").
		Find(&recs).Error
	return recs, err
}

func (r *RecommendationRepository) FindByUserAndTitle(userID uint, careerTitle string) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.DB.Where("user_id = ? AND career_title = ?", userID, careerTitle).
		First(&rec).Error
	return &rec, err
}

func (r *RecommendationRepository) FindByID(id uint, userID uint) (*model.Recommendation, error) {
	var rec model.Recommendation
	err := r.DB.Where("id = ? AND user_id = ?", id, userID).First(&rec).Error
	return &rec, err
}

func (r *RecommendationRepository) Create(rec *model.Recommendation) error {
	return r.DB.Create(rec).Error
}

func (r *RecommendationRepository) Update(rec *model.Recommendation) error {
	return r.DB.Save(rec).Error
}
