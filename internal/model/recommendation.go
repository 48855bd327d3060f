package model

import "encoding/json"

// Recommendation persists one scored career per user, keyed by
// (user_id, career_title) with upsert semantics: regenerating overwrites
// match_percentage and the payload instead of duplicating the row.
// swagger:model Recommendation
type Recommendation struct {
	BaseModel
	UserID             uint            `gorm:"index:idx_user_career;not null" json:"user_id"`
	CareerTitle        string          `gorm:"size:100;index:idx_user_career;not null" json:"career_title"`
	MatchPercentage    float64         `gorm:"not null" json:"match_percentage"`
	RecommendationData json.RawMessage `gorm:"type:json" json:"recommendation_data"`
	Saved              bool            `gorm:"default:false" json:"saved"`
}

func (Recommendation) TableName() string {
	return "recommendations"
}
