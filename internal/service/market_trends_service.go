package service

import (
	"career_backend/internal/model"
	"career_backend/internal/repository"
	"career_backend/pkg/logger"
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	marketTrendsCacheKey = "career:market_trends"
	marketTrendsCacheTTL = 10 * time.Minute
)

// MarketTrendsPayload is the legacy dashboard response shape.
// swagger:model MarketTrendsPayload
type MarketTrendsPayload struct {
	TrendingSkills    []map[string]interface{} `json:"trending_skills"`
	SalaryRanges      []map[string]interface{} `json:"salary_ranges"`
	DemandGrowth      map[string]interface{}   `json:"demand_growth"`
	SkillDistribution map[string]interface{}   `json:"skill_distribution"`
}

type MarketTrendsService struct {
	Repo  *repository.MarketTrendRepository
	Redis *redis.Client
}

func NewMarketTrendsService(repo *repository.MarketTrendRepository, rdb *redis.Client) *MarketTrendsService {
	return &MarketTrendsService{Repo: repo, Redis: rdb}
}

// GetMarketTrends assembles the dashboard payload from the seeded trend
// rows, with a short-lived redis cache in front of the database.
func (s *MarketTrendsService) GetMarketTrends(ctx context.Context) (*MarketTrendsPayload, error) {
	if s.Redis != nil {
		cached, err := s.Redis.Get(ctx, marketTrendsCacheKey).Bytes()
		if err == nil {
			var payload MarketTrendsPayload
			if err := json.Unmarshal(cached, &payload); err == nil {
				return &payload, nil
			}
		}
	}

	trends, err := s.Repo.FindAll()
	if err != nil {
		return nil, err
	}

	payload := &MarketTrendsPayload{
		TrendingSkills:    []map[string]interface{}{},
		SalaryRanges:      []map[string]interface{}{},
		DemandGrowth:      map[string]interface{}{},
		SkillDistribution: map[string]interface{}{},
	}

	for _, trend := range trends {
		var data map[string]interface{}
		if len(trend.TrendData) > 0 {
			if err := json.Unmarshal(trend.TrendData, &data); err != nil {
				return nil, err
			}
		}

		switch trend.Category {
		case model.TrendCategorySkills:
			entry := map[string]interface{}{"name": trend.Title}
			for k, v := range data {
				entry[k] = v
			}
			payload.TrendingSkills = append(payload.TrendingSkills, entry)
		case model.TrendCategorySalaries:
			entry := map[string]interface{}{"role": trend.Title}
			for k, v := range data {
				entry[k] = v
			}
			payload.SalaryRanges = append(payload.SalaryRanges, entry)
		case model.TrendCategoryDemandGrowth:
			payload.DemandGrowth = data
		case model.TrendCategorySkillDist:
			payload.SkillDistribution = data
		}
	}

	if s.Redis != nil {
		raw, err := json.Marshal(payload)
		if err == nil {
			if err := s.Redis.Set(ctx, marketTrendsCacheKey, raw, marketTrendsCacheTTL).Err(); err != nil {
				logger.Log.Warn("failed to cache market trends", zap.Error(err))
			}
		}
	}

	return payload, nil
}
