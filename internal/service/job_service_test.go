package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchJobsNoCriteriaReturnsFullCatalog(t *testing.T) {
	jobs := SearchJobs("", JobSearchFilters{})

	require.Len(t, jobs, 3)
	assert.Equal(t, 1, jobs[0].ID)
	assert.Equal(t, 2, jobs[1].ID)
	assert.Equal(t, 3, jobs[2].ID)
}

func TestSearchJobsTermAndLocation(t *testing.T) {
	jobs := SearchJobs("data", JobSearchFilters{Location: "Remote"})

	require.Len(t, jobs, 1)
	assert.Equal(t, "Data Scientist", jobs[0].Title)
	assert.Equal(t, "Data Analytics Inc", jobs[0].Company)
}

func TestSearchJobsTermIsCaseInsensitive(t *testing.T) {
	assert.Len(t, SearchJobs("DATA", JobSearchFilters{}), 3)
	assert.Len(t, SearchJobs("tech corp", JobSearchFilters{}), 1)
}

func TestSearchJobsTermMatchesCompany(t *testing.T) {
	jobs := SearchJobs("startupxyz", JobSearchFilters{})

	require.Len(t, jobs, 1)
	assert.Equal(t, 3, jobs[0].ID)
}

func TestSearchJobsExperienceIsExactMatch(t *testing.T) {
	jobs := SearchJobs("", JobSearchFilters{Experience: "0-2 years"})
	require.Len(t, jobs, 1)
	assert.Equal(t, "Junior Data Scientist", jobs[0].Title)

	// Substrings do not match experience.
	assert.Empty(t, SearchJobs("", JobSearchFilters{Experience: "0-2"}))
}

func TestSearchJobsJobTypeFilter(t *testing.T) {
	assert.Len(t, SearchJobs("", JobSearchFilters{JobType: "Full-time"}), 3)
	assert.Empty(t, SearchJobs("", JobSearchFilters{JobType: "Part-time"}))
}

func TestSearchJobsSalaryFilterIsNotApplied(t *testing.T) {
	// Salary is part of the request shape but was never wired up as a
	// filter; a non-matching value must not narrow the results.
	jobs := SearchJobs("", JobSearchFilters{Salary: "$1 - $2"})
	assert.Len(t, jobs, 3)
}

func TestSearchJobsResultsAreCopies(t *testing.T) {
	first := SearchJobs("", JobSearchFilters{})
	first[0].Requirements[0] = "mutated"
	first[0].Title = "mutated"

	second := SearchJobs("", JobSearchFilters{})
	assert.Equal(t, "Senior Data Scientist", second[0].Title)
	assert.Equal(t, "Python", second[0].Requirements[0])
}
