package repository

import (
	"career_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByUserID(userID uint) (*model.UserProfile, error) {
	var profile model.UserProfile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) Create(profile *model.UserProfile) error {
	return r.DB.Create(profile).Error
}

func (r *ProfileRepository) Update(profile *model.UserProfile) error {
	return r.DB.Save(profile).Error
}
