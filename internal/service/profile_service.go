package service

import (
	"career_backend/internal/model"
	"career_backend/internal/repository"
	"career_backend/internal/util"
	"errors"
	"math"
	"strings"

	"gorm.io/gorm"
)

// Required fields weigh double in the completion score.
var requiredProfileFields = []string{"full_name", "email", "education_level", "skills", "interests"}
var optionalProfileFields = []string{"current_role", "location", "bio", "linkedin", "portfolio"}

// CalculateProfileCompletion scores profile completeness on a 0-100 scale:
// 2 points per filled required field, 1 per filled optional field, out of
// 15. A field counts as filled when it is non-empty after trimming
// whitespace.
func CalculateProfileCompletion(fields map[string]string) float64 {
	completedPoints := 0

	for _, field := range requiredProfileFields {
		if strings.TrimSpace(fields[field]) != "" {
			completedPoints += 2
		}
	}

	for _, field := range optionalProfileFields {
		if strings.TrimSpace(fields[field]) != "" {
			completedPoints += 1
		}
	}

	maxPoints := len(requiredProfileFields)*2 + len(optionalProfileFields)
	completion := float64(completedPoints) / float64(maxPoints) * 100
	return round2(math.Min(completion, 100.0))
}

// ProfileRequest carries a create or partial-update payload. Nil pointers
// mean "field not supplied" and leave the stored value unchanged.
type ProfileRequest struct {
	FullName       *string `json:"full_name"`
	Email          *string `json:"email"`
	EducationLevel *string `json:"education_level"`
	CurrentRole    *string `json:"current_role"`
	Location       *string `json:"location"`
	Skills         *string `json:"skills"`
	Interests      *string `json:"interests"`
	Bio            *string `json:"bio"`
	Linkedin       *string `json:"linkedin"`
	Portfolio      *string `json:"portfolio"`
}

func (r *ProfileRequest) applyTo(profile *model.UserProfile) {
	setIf := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setIf(&profile.FullName, r.FullName)
	setIf(&profile.Email, r.Email)
	setIf(&profile.EducationLevel, r.EducationLevel)
	setIf(&profile.CurrentRole, r.CurrentRole)
	setIf(&profile.Location, r.Location)
	setIf(&profile.Skills, r.Skills)
	setIf(&profile.Interests, r.Interests)
	setIf(&profile.Bio, r.Bio)
	setIf(&profile.Linkedin, r.Linkedin)
	setIf(&profile.Portfolio, r.Portfolio)
}

type ProfileService struct {
	Repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

func (s *ProfileService) GetByUserID(userID uint) (*model.UserProfile, error) {
	profile, err := s.Repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	return profile, err
}

// Upsert creates the user's profile or merges the update into the existing
// row. Completion is recomputed from the merged field set on every write,
// never maintained incrementally.
func (s *ProfileService) Upsert(userID uint, req *ProfileRequest) (*model.UserProfile, bool, error) {
	profile, err := s.Repo.FindByUserID(userID)
	created := false

	if err == gorm.ErrRecordNotFound {
		profile = &model.UserProfile{UserID: userID}
		created = true
	} else if err != nil {
		return nil, false, err
	}

	req.applyTo(profile)
	profile.ProfileCompletion = CalculateProfileCompletion(profile.Fields())

	if created {
		err = s.Repo.Create(profile)
	} else {
		err = s.Repo.Update(profile)
	}
	if err != nil {
		return nil, false, err
	}
	return profile, created, nil
}

// Update merges into an existing profile only; missing profile is an error.
func (s *ProfileService) Update(userID uint, req *ProfileRequest) (*model.UserProfile, error) {
	profile, err := s.Repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}

	req.applyTo(profile)
	profile.ProfileCompletion = CalculateProfileCompletion(profile.Fields())

	if err := s.Repo.Update(profile); err != nil {
		return nil, err
	}
	return profile, nil
}
