package repository

import (
	"career_backend/internal/model"
	"time"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	return &user, err
}

func (r *UserRepository) FindByEmail(email string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("email = ?", email).First(&user).Error
	return &user, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastSeen(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_seen", time.Now()).
		Error
}

// RecordSignIn stores an audit row and bumps last_login.
func (r *UserRepository) RecordSignIn(user *model.User) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		detail := &model.UserSignInDetail{
			UserID: user.ID,
			Email:  user.Email,
		}
		if err := tx.Create(detail).Error; err != nil {
			return err
		}
		return tx.Model(&model.User{}).
			Where("id = ?", user.ID).
			Update("last_login", time.Now()).
			Error
	})
}
