package service

import (
	"career_backend/internal/model"
	"career_backend/internal/repository"
	"encoding/json"
	"strings"
)

// JobSearchFilters is the structured part of a job search request.
// Salary is accepted for request-shape compatibility but is not applied as
// a filter; the legacy backend never implemented it.
type JobSearchFilters struct {
	Location   string `json:"location"`
	Experience string `json:"experience"`
	JobType    string `json:"job_type"`
	Salary     string `json:"salary"`
}

// SearchJobs filters the static job catalog. Surviving postings keep the
// catalog's original order. The search term matches title or company
// case-insensitively; location is a case-insensitive substring match,
// experience and job type are exact.
func SearchJobs(searchTerm string, filters JobSearchFilters) []model.JobPosting {
	results := make([]model.JobPosting, 0, len(jobCatalog))

	for _, job := range jobCatalog {
		if searchTerm != "" {
			term := strings.ToLower(searchTerm)
			if !strings.Contains(strings.ToLower(job.Title), term) &&
				!strings.Contains(strings.ToLower(job.Company), term) {
				continue
			}
		}

		if filters.Location != "" &&
			!strings.Contains(strings.ToLower(job.Location), strings.ToLower(filters.Location)) {
			continue
		}

		if filters.Experience != "" && job.Experience != filters.Experience {
			continue
		}

		if filters.JobType != "" && job.Type != filters.JobType {
			continue
		}

		// Copy so callers can never mutate the catalog through the result.
		job.Requirements = append([]string(nil), job.Requirements...)
		results = append(results, job)
	}

	return results
}

type JobService struct {
	SavedJobRepo *repository.SavedJobRepository
}

func NewJobService(savedJobRepo *repository.SavedJobRepository) *JobService {
	return &JobService{SavedJobRepo: savedJobRepo}
}

func (s *JobService) Search(searchTerm string, filters JobSearchFilters) []model.JobPosting {
	return SearchJobs(searchTerm, filters)
}

// SaveJob persists an arbitrary posting payload for the user, lifting the
// display columns out of the JSON for listing queries.
func (s *JobService) SaveJob(userID uint, jobData map[string]interface{}) error {
	payload, err := json.Marshal(jobData)
	if err != nil {
		return err
	}

	str := func(key string) string {
		v, _ := jobData[key].(string)
		return v
	}

	job := &model.SavedJob{
		UserID:   userID,
		JobTitle: str("title"),
		Company:  str("company"),
		Location: str("location"),
		Salary:   str("salary"),
		JobData:  payload,
	}
	return s.SavedJobRepo.Create(job)
}

// SavedJobs returns the stored posting payloads, matching the legacy
// response shape (raw job objects, not the wrapper rows).
func (s *JobService) SavedJobs(userID uint) ([]json.RawMessage, error) {
	rows, err := s.SavedJobRepo.FindByUserID(userID)
	if err != nil {
		return nil, err
	}

	payloads := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		payloads = append(payloads, row.JobData)
	}
	return payloads, nil
}
