package repository

import (
	"career_backend/internal/model"

	"gorm.io/gorm"
)

type AssessmentRepository struct {
	DB *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) *AssessmentRepository {
	return &AssessmentRepository{DB: db}
}

func (r *AssessmentRepository) FindByUserID(userID uint) (*model.Assessment, error) {
	var assessment model.Assessment
	err := r.DB.Where("user_id = ?", userID).First(&assessment).Error
	return &assessment, err
}

func (r *AssessmentRepository) Create(assessment *model.Assessment) error {
	return r.DB.Create(assessment).Error
}

func (r *AssessmentRepository) Update(assessment *model.Assessment) error {
	return r.DB.Save(assessment).Error
}
