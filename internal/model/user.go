package model

import (
	"time"
)

// swagger:model User
type User struct {
	BaseModel
	Email     string    `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"last_login"`
	LastSeen  time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"last_seen"`
}

func (User) TableName() string {
	return "users"
}

// UserSignInDetail records one successful sign-in event per row.
type UserSignInDetail struct {
	BaseModel
	UserID uint   `gorm:"index;not null" json:"user_id"`
	Email  string `gorm:"size:100;not null" json:"email"`
}

func (UserSignInDetail) TableName() string {
	return "user_sign_in_details"
}
