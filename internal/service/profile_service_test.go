package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func fullProfileFields() map[string]string {
	return map[string]string{
		"full_name":       "Ada Lovelace",
		"email":           "ada@example.com",
		"education_level": "Master's",
		"skills":          "Python, SQL",
		"interests":       "Data Science",
		"current_role":    "Analyst",
		"location":        "London",
		"bio":             "Numbers person.",
		"linkedin":        "linkedin.com/in/ada",
		"portfolio":       "ada.dev",
	}
}

func TestCalculateProfileCompletionAllFields(t *testing.T) {
	assert.Equal(t, 100.0, CalculateProfileCompletion(fullProfileFields()))
}

func TestCalculateProfileCompletionRequiredOnly(t *testing.T) {
	fields := map[string]string{
		"full_name":       "Ada Lovelace",
		"email":           "ada@example.com",
		"education_level": "Master's",
		"skills":          "Python, SQL",
		"interests":       "Data Science",
	}

	// 10 of 15 points.
	assert.Equal(t, 66.67, CalculateProfileCompletion(fields))
}

func TestCalculateProfileCompletionEmpty(t *testing.T) {
	assert.Equal(t, 0.0, CalculateProfileCompletion(map[string]string{}))
}

func TestCalculateProfileCompletionWhitespaceIsBlank(t *testing.T) {
	fields := fullProfileFields()
	fields["bio"] = "   "
	fields["interests"] = "\t\n"

	// Blank bio loses 1 point, blank interests loses 2.
	assert.Equal(t, 80.0, CalculateProfileCompletion(fields))
}

func TestCalculateProfileCompletionOptionalOnly(t *testing.T) {
	fields := map[string]string{
		"current_role": "Analyst",
		"location":     "Remote",
	}

	// 2 of 15 points.
	assert.Equal(t, 13.33, CalculateProfileCompletion(fields))
}

func TestCalculateProfileCompletionIdempotent(t *testing.T) {
	fields := fullProfileFields()
	assert.Equal(t, CalculateProfileCompletion(fields), CalculateProfileCompletion(fields))
}
