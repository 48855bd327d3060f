package util

import "errors"

var (
	ErrEmailRegistered       = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("incorrect email or password")
	ErrProfileNotFound       = errors.New("profile not found")
	ErrAssessmentNotFound    = errors.New("assessment not found")
	ErrAssessmentIncomplete  = errors.New("please complete the assessment first")
	ErrRecommendationMissing = errors.New("recommendation not found")
	ErrInvalidSkillLevel     = errors.New("skill level is not a number")
)
