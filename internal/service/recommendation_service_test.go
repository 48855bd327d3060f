package service

import (
	"career_backend/internal/util"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allSkillsAt(level interface{}) map[string]interface{} {
	return map[string]interface{}{
		"programming":     level,
		"dataAnalysis":    level,
		"machineLearning": level,
		"webDevelopment":  level,
		"database":        level,
		"communication":   level,
		"leadership":      level,
		"problemSolving":  level,
		"teamwork":        level,
		"creativity":      level,
	}
}

func TestGenerateRecommendationsAllSkillsMaxed(t *testing.T) {
	matches, err := GenerateRecommendations(allSkillsAt(5))
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for _, match := range matches {
		assert.Equal(t, 100.0, match.MatchPercentage, "career %s", match.Title)
	}
}

func TestGenerateRecommendationsEmptyAssessment(t *testing.T) {
	matches, err := GenerateRecommendations(map[string]interface{}{})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for _, match := range matches {
		assert.Equal(t, 0.0, match.MatchPercentage)
	}

	// All percentages tie at zero, so the catalog order must survive the sort.
	assert.Equal(t, "Data Scientist", matches[0].Title)
	assert.Equal(t, "Software Engineer", matches[1].Title)
	assert.Equal(t, "Business Analyst", matches[2].Title)
}

func TestGenerateRecommendationsSortedDescending(t *testing.T) {
	answers := map[string]interface{}{
		"programming":    5,
		"webDevelopment": 5,
		"database":       5,
		"communication":  3,
		"teamwork":       4,
		"problemSolving": 4,
	}

	matches, err := GenerateRecommendations(answers)
	require.NoError(t, err)

	for i := 1; i < len(matches); i++ {
		assert.GreaterOrEqual(t, matches[i-1].MatchPercentage, matches[i].MatchPercentage)
	}
	assert.Equal(t, "Software Engineer", matches[0].Title)
}

func TestCalculateMatchPercentageNestedAndFlatEquivalent(t *testing.T) {
	flat := map[string]interface{}{
		"dataAnalysis":   float64(3),
		"database":       float64(2),
		"communication":  float64(5),
		"leadership":     float64(3),
		"problemSolving": float64(4),
		"teamwork":       float64(4),
	}
	nested := map[string]interface{}{
		"technical_skills": map[string]interface{}{
			"dataAnalysis": float64(3),
			"database":     float64(2),
		},
		"soft_skills": map[string]interface{}{
			"communication":  float64(5),
			"leadership":     float64(3),
			"problemSolving": float64(4),
			"teamwork":       float64(4),
		},
	}

	career := &careerCatalog[2] // Business Analyst

	flatPct, err := CalculateMatchPercentage(flat, career)
	require.NoError(t, err)
	nestedPct, err := CalculateMatchPercentage(nested, career)
	require.NoError(t, err)

	assert.Equal(t, nestedPct, flatPct)
	assert.Equal(t, 70.0, flatPct)
}

func TestCalculateMatchPercentageIgnoresExtraSkills(t *testing.T) {
	base := map[string]interface{}{
		"programming":  4,
		"dataAnalysis": 4,
	}
	withExtras := map[string]interface{}{
		"programming":  4,
		"dataAnalysis": 4,
		"creativity":   5, // not required by Software Engineer
		"juggling":     5, // not a known skill key at all
	}

	career := &careerCatalog[1] // Software Engineer

	basePct, err := CalculateMatchPercentage(base, career)
	require.NoError(t, err)
	extrasPct, err := CalculateMatchPercentage(withExtras, career)
	require.NoError(t, err)

	assert.Equal(t, basePct, extrasPct)
}

func TestCalculateMatchPercentageCapsLevelAtFive(t *testing.T) {
	capped, err := CalculateMatchPercentage(allSkillsAt(9), &careerCatalog[0])
	require.NoError(t, err)
	assert.Equal(t, 100.0, capped)
}

func TestCalculateMatchPercentageNumericStrings(t *testing.T) {
	answers := map[string]interface{}{
		"technical_skills": map[string]interface{}{
			"programming":     "4",
			"dataAnalysis":    "4",
			"machineLearning": "4",
			"database":        "3",
		},
		"soft_skills": map[string]interface{}{
			"communication":  "3",
			"problemSolving": "4",
			"creativity":     "3",
		},
	}

	pct, err := CalculateMatchPercentage(answers, &careerCatalog[0])
	require.NoError(t, err)

	// 25/35 scaled to percent, rounded to two decimals.
	assert.Equal(t, 71.43, pct)
}

func TestCalculateMatchPercentageNonNumericString(t *testing.T) {
	answers := map[string]interface{}{
		"programming": "advanced",
	}

	_, err := CalculateMatchPercentage(answers, &careerCatalog[0])
	require.Error(t, err)
	assert.ErrorIs(t, err, util.ErrInvalidSkillLevel)
}

func TestCalculateMatchPercentageRoundsToTwoDecimals(t *testing.T) {
	answers := map[string]interface{}{
		"technical_skills": map[string]interface{}{
			"dataAnalysis": 3,
			"database":     2,
		},
		"soft_skills": map[string]interface{}{
			"communication":  5,
			"leadership":     3,
			"problemSolving": 4,
			"teamwork":       3,
		},
	}

	// 20 of 30 points: 66.666... rounds to 66.67.
	pct, err := CalculateMatchPercentage(answers, &careerCatalog[2])
	require.NoError(t, err)
	assert.Equal(t, 66.67, pct)
}

func TestGenerateRecommendationsIdempotent(t *testing.T) {
	answers := allSkillsAt(3)

	first, err := GenerateRecommendations(answers)
	require.NoError(t, err)
	second, err := GenerateRecommendations(answers)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
