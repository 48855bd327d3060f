package repository

import (
	"career_backend/internal/model"

	"gorm.io/gorm"
)

type SavedJobRepository struct {
	DB *gorm.DB
}

func NewSavedJobRepository(db *gorm.DB) *SavedJobRepository {
	return &SavedJobRepository{DB: db}
}

func (r *SavedJobRepository) FindByUserID(userID uint) ([]model.SavedJob, error) {
	var jobs []model.SavedJob
	err := r.DB.Where("user_id = ?", userID).Find(&jobs).Error
	return jobs, err
}

func (r *SavedJobRepository) Create(job *model.SavedJob) error {
	return r.DB.Create(job).Error
}
