package service

import (
	"career_backend/internal/model"
	"career_backend/internal/repository"
	"career_backend/internal/util"
	"encoding/json"
	"errors"

	"gorm.io/gorm"
)

type AssessmentService struct {
	Repo *repository.AssessmentRepository
}

func NewAssessmentService(repo *repository.AssessmentRepository) *AssessmentService {
	return &AssessmentService{Repo: repo}
}

// Submit stores the raw answer payload for the user, overwriting any
// previous submission, and marks the assessment completed.
func (s *AssessmentService) Submit(userID uint, data json.RawMessage) (*model.Assessment, error) {
	assessment, err := s.Repo.FindByUserID(userID)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		assessment = &model.Assessment{
			UserID:         userID,
			AssessmentData: data,
			Completed:      true,
		}
		if err := s.Repo.Create(assessment); err != nil {
			return nil, err
		}
		return assessment, nil
	} else if err != nil {
		return nil, err
	}

	assessment.AssessmentData = data
	assessment.Completed = true
	if err := s.Repo.Update(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

func (s *AssessmentService) GetByUserID(userID uint) (*model.Assessment, error) {
	assessment, err := s.Repo.FindByUserID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrAssessmentNotFound
	}
	return assessment, err
}
