package service

import "career_backend/internal/model"

// careerCatalog is the static archetype set the scoring engine matches
// against. Read-only after init; adding a career is a data-only change,
// the scoring algorithm is archetype-agnostic.
var careerCatalog = []model.CareerArchetype{
	{
		Title:       "Data Scientist",
		Description: "Analyze complex data to help organizations make data-driven decisions.",
		Salary:      "$95,000 - $140,000",
		Growth:      "+18%",
		TechnicalSkills: map[string]int{
			"programming":     4,
			"dataAnalysis":    4,
			"machineLearning": 4,
			"database":        3,
		},
		SoftSkills: map[string]int{
			"communication":  3,
			"problemSolving": 4,
			"creativity":     3,
		},
		Requirements: model.CareerRequirements{
			Education:      "Bachelor's in Computer Science, Data Science, or related",
			Experience:     "2-5 years",
			Certifications: []string{"Machine Learning", "Data Analytics", "Python Programming"},
		},
		Skills: []string{"Python", "Machine Learning", "Statistics", "Data Visualization"},
		LearningPath: []model.LearningPathStep{
			{Step: 1, Title: "Learn Python Fundamentals", Duration: "2-3 months"},
			{Step: 2, Title: "Master Data Analysis Tools", Duration: "1-2 months"},
			{Step: 3, Title: "Study Machine Learning", Duration: "3-4 months"},
			{Step: 4, Title: "Build Portfolio Projects", Duration: "2-3 months"},
		},
	},
	{
		Title:       "Software Engineer",
		Description: "Design, develop, and maintain software applications and systems.",
		Salary:      "$85,000 - $130,000",
		Growth:      "+15%",
		TechnicalSkills: map[string]int{
			"programming":    5,
			"webDevelopment": 4,
			"database":       3,
		},
		SoftSkills: map[string]int{
			"communication":  3,
			"teamwork":       4,
			"problemSolving": 4,
		},
		Requirements: model.CareerRequirements{
			Education:      "Bachelor's in Computer Science or Software Engineering",
			Experience:     "1-4 years",
			Certifications: []string{"Full Stack Development", "Cloud Computing"},
		},
		Skills: []string{"JavaScript", "React", "Node.js", "System Design"},
		LearningPath: []model.LearningPathStep{
			{Step: 1, Title: "Learn Programming Fundamentals", Duration: "3-4 months"},
			{Step: 2, Title: "Master Web Technologies", Duration: "2-3 months"},
			{Step: 3, Title: "Learn Software Architecture", Duration: "2-3 months"},
			{Step: 4, Title: "Build Real Projects", Duration: "3-4 months"},
		},
	},
	{
		Title:       "Business Analyst",
		Description: "Bridge the gap between business needs and technical solutions.",
		Salary:      "$70,000 - $110,000",
		Growth:      "+12%",
		TechnicalSkills: map[string]int{
			"dataAnalysis": 3,
			"database":     2,
		},
		SoftSkills: map[string]int{
			"communication":  5,
			"leadership":     3,
			"problemSolving": 4,
			"teamwork":       4,
		},
		Requirements: model.CareerRequirements{
			Education:      "Bachelor's in Business, IT, or related field",
			Experience:     "1-3 years",
			Certifications: []string{"Business Analysis", "Agile/Scrum", "SQL"},
		},
		Skills: []string{"SQL", "Business Analysis", "Project Management", "Communication"},
		LearningPath: []model.LearningPathStep{
			{Step: 1, Title: "Learn Business Fundamentals", Duration: "2-3 months"},
			{Step: 2, Title: "Master Data Analysis", Duration: "1-2 months"},
			{Step: 3, Title: "Study Project Management", Duration: "2-3 months"},
			{Step: 4, Title: "Gain Industry Experience", Duration: "3-6 months"},
		},
	},
}

// jobCatalog is the mock job board. In production this would come from a
// job database or external API.
var jobCatalog = []model.JobPosting{
	{
		ID:           1,
		Title:        "Senior Data Scientist",
		Company:      "Tech Corp",
		Location:     "San Francisco, CA",
		Salary:       "$120,000 - $160,000",
		Type:         "Full-time",
		Experience:   "3-5 years",
		Posted:       "2 days ago",
		Match:        92,
		Description:  "We are looking for an experienced Data Scientist to join our team...",
		Requirements: []string{"Python", "Machine Learning", "SQL", "Statistics"},
	},
	{
		ID:           2,
		Title:        "Data Scientist",
		Company:      "Data Analytics Inc",
		Location:     "Remote",
		Salary:       "$95,000 - $130,000",
		Type:         "Full-time",
		Experience:   "2-4 years",
		Posted:       "5 days ago",
		Match:        87,
		Description:  "Join our growing data science team to build innovative ML solutions...",
		Requirements: []string{"Python", "R", "TensorFlow", "Data Visualization"},
	},
	{
		ID:           3,
		Title:        "Junior Data Scientist",
		Company:      "StartupXYZ",
		Location:     "New York, NY",
		Salary:       "$75,000 - $95,000",
		Type:         "Full-time",
		Experience:   "0-2 years",
		Posted:       "1 week ago",
		Match:        82,
		Description:  "Great opportunity for entry-level data scientists to grow their career...",
		Requirements: []string{"Python", "SQL", "Statistics", "Machine Learning Basics"},
	},
}
