package model

import "encoding/json"

// Assessment stores a user's raw questionnaire answers. One row per user,
// upserted on resubmission.
// swagger:model Assessment
type Assessment struct {
	BaseModel
	UserID         uint            `gorm:"index;not null" json:"user_id"`
	AssessmentData json.RawMessage `gorm:"type:json" json:"assessment_data"`
	Completed      bool            `gorm:"default:false" json:"completed"`
}

func (Assessment) TableName() string {
	return "assessments"
}
