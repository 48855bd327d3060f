package model

import "encoding/json"

// Market trend categories. Rows are seeded at startup and assembled back
// into the legacy response payload by MarketTrendsService.
const (
	TrendCategorySkills       = "trending_skills"
	TrendCategorySalaries     = "salary_ranges"
	TrendCategoryDemandGrowth = "demand_growth"
	TrendCategorySkillDist    = "skill_distribution"
)

// swagger:model MarketTrend
type MarketTrend struct {
	BaseModel
	Category    string          `gorm:"size:50;index;not null" json:"category"`
	Title       string          `gorm:"size:100;not null" json:"title"`
	Description string          `gorm:"size:255" json:"description"`
	TrendData   json.RawMessage `gorm:"type:json" json:"trend_data"`
}

func (MarketTrend) TableName() string {
	return "market_trends"
}
