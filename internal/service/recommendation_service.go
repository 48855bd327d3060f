package service

import (
	"career_backend/internal/model"
	"career_backend/internal/repository"
	"career_backend/internal/util"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"

	"gorm.io/gorm"
)

// Flat-form skill keys. When an assessment arrives without the nested
// technical_skills / soft_skills groups, membership in these sets decides
// which group a top-level key belongs to.
var technicalSkillKeys = map[string]bool{
	"programming":     true,
	"dataAnalysis":    true,
	"machineLearning": true,
	"webDevelopment":  true,
	"database":        true,
}

var softSkillKeys = map[string]bool{
	"communication":  true,
	"leadership":     true,
	"problemSolving": true,
	"teamwork":       true,
	"creativity":     true,
}

const maxSkillLevel = 5

// coerceSkillLevel converts a raw answer value to an integer level.
// JSON numbers and numeric strings are accepted; a missing key is handled
// by the caller (defaults to 0). A non-numeric string is a validation
// error, not a silent zero.
func coerceSkillLevel(v interface{}) (int, error) {
	switch level := v.(type) {
	case int:
		return level, nil
	case int64:
		return int(level), nil
	case float64:
		return int(level), nil
	case json.Number:
		n, err := level.Int64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", util.ErrInvalidSkillLevel, level.String())
		}
		return int(n), nil
	case string:
		n, err := strconv.Atoi(level)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", util.ErrInvalidSkillLevel, level)
		}
		return n, nil
	default:
		return 0, nil
	}
}

// normalizeSkillGroup extracts one skill group from the raw assessment.
// Two accepted shapes: the group nested under groupKey, or flat top-level
// keys filtered by the known key set. The nested branch wins whenever the
// group key is present, even with an empty group.
func normalizeSkillGroup(data map[string]interface{}, groupKey string, knownKeys map[string]bool) (map[string]int, error) {
	out := map[string]int{}

	if nested, ok := data[groupKey]; ok {
		group, ok := nested.(map[string]interface{})
		if !ok {
			return out, nil
		}
		for skill, raw := range group {
			level, err := coerceSkillLevel(raw)
			if err != nil {
				return nil, err
			}
			out[skill] = level
		}
		return out, nil
	}

	for skill, raw := range data {
		if !knownKeys[skill] {
			continue
		}
		level, err := coerceSkillLevel(raw)
		if err != nil {
			return nil, err
		}
		out[skill] = level
	}
	return out, nil
}

// CalculateMatchPercentage scores one archetype against a user's answers.
// Only skills the archetype requires count: each contributes up to 5 points
// to the denominator, and min(userLevel, 5) to the numerator. Skills the
// user has but the archetype does not require are ignored entirely.
func CalculateMatchPercentage(answers map[string]interface{}, career *model.CareerArchetype) (float64, error) {
	techSkills, err := normalizeSkillGroup(answers, "technical_skills", technicalSkillKeys)
	if err != nil {
		return 0, err
	}
	softSkills, err := normalizeSkillGroup(answers, "soft_skills", softSkillKeys)
	if err != nil {
		return 0, err
	}

	totalScore := 0
	maxScore := 0

	for skill := range career.TechnicalSkills {
		maxScore += maxSkillLevel
		totalScore += min(techSkills[skill], maxSkillLevel)
	}

	for skill := range career.SoftSkills {
		maxScore += maxSkillLevel
		totalScore += min(softSkills[skill], maxSkillLevel)
	}

	if maxScore == 0 {
		return 0.0, nil
	}

	return round2(float64(totalScore) / float64(maxScore) * 100), nil
}

// GenerateRecommendations scores every catalog archetype and returns the
// matches sorted by percentage descending. The sort is stable, so equal
// percentages keep the catalog's original relative order.
func GenerateRecommendations(answers map[string]interface{}) ([]model.CareerMatch, error) {
	matches := make([]model.CareerMatch, 0, len(careerCatalog))

	for i := range careerCatalog {
		pct, err := CalculateMatchPercentage(answers, &careerCatalog[i])
		if err != nil {
			return nil, err
		}
		matches = append(matches, model.CareerMatch{
			CareerArchetype: careerCatalog[i],
			MatchPercentage: pct,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})

	return matches, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type RecommendationService struct {
	Repo           *repository.RecommendationRepository
	AssessmentRepo *repository.AssessmentRepository
}

func NewRecommendationService(repo *repository.RecommendationRepository, assessmentRepo *repository.AssessmentRepository) *RecommendationService {
	return &RecommendationService{
		Repo:           repo,
		AssessmentRepo: assessmentRepo,
	}
}

// GenerateForUser runs the scoring engine over the user's stored assessment
// and persists the result with upsert semantics per (user, career_title):
// an existing row gets its percentage and payload overwritten, the saved
// flag is left untouched.
func (s *RecommendationService) GenerateForUser(userID uint) ([]model.Recommendation, error) {
	assessment, err := s.AssessmentRepo.FindByUserID(userID)
	if err != nil || !assessment.Completed {
		return nil, util.ErrAssessmentIncomplete
	}

	var answers map[string]interface{}
	if len(assessment.AssessmentData) > 0 {
		if err := json.Unmarshal(assessment.AssessmentData, &answers); err != nil {
			return nil, err
		}
	}

	matches, err := GenerateRecommendations(answers)
	if err != nil {
		return nil, err
	}

	saved := make([]model.Recommendation, 0, len(matches))
	for _, match := range matches {
		payload, err := json.Marshal(match)
		if err != nil {
			return nil, err
		}

		existing, err := s.Repo.FindByUserAndTitle(userID, match.Title)
		switch {
		case err == nil:
			existing.MatchPercentage = match.MatchPercentage
			existing.RecommendationData = payload
			if err := s.Repo.Update(existing); err != nil {
				return nil, err
			}
			saved = append(saved, *existing)
		case err == gorm.ErrRecordNotFound:
			rec := &model.Recommendation{
				UserID:             userID,
				CareerTitle:        match.Title,
				MatchPercentage:    match.MatchPercentage,
				RecommendationData: payload,
			}
			if err := s.Repo.Create(rec); err != nil {
				return nil, err
			}
			saved = append(saved, *rec)
		default:
			return nil, err
		}
	}

	return saved, nil
}

func (s *RecommendationService) ListForUser(userID uint) ([]model.Recommendation, error) {
	return s.Repo.FindByUserID(userID)
}

// SetSaved toggles the saved flag on one recommendation. The scoring engine
// never reads or writes this flag.
func (s *RecommendationService) SetSaved(id, userID uint, savedFlag bool) (*model.Recommendation, error) {
	rec, err := s.Repo.FindByID(id, userID)
	if err != nil {
		return nil, util.ErrRecommendationMissing
	}

	rec.Saved = savedFlag
	if err := s.Repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}
