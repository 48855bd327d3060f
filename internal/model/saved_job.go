package model

import "encoding/json"

// swagger:model SavedJob
type SavedJob struct {
	BaseModel
	UserID   uint            `gorm:"index;not null" json:"user_id"`
	JobTitle string          `gorm:"size:100;not null" json:"job_title"`
	Company  string          `gorm:"size:100" json:"company"`
	Location string          `gorm:"size:100" json:"location"`
	Salary   string          `gorm:"size:100" json:"salary"`
	JobData  json.RawMessage `gorm:"type:json" json:"job_data"`
}

func (SavedJob) TableName() string {
	return "saved_jobs"
}
