package model

// CareerArchetype is one static catalog entry the scoring engine matches
// assessments against. Catalog entries are never mutated after process start.
// swagger:model CareerArchetype
type CareerArchetype struct {
	Title           string              `json:"title"`
	Description     string              `json:"description"`
	Salary          string              `json:"salary"`
	Growth          string              `json:"growth"`
	TechnicalSkills map[string]int      `json:"technical_skills"`
	SoftSkills      map[string]int      `json:"soft_skills"`
	Requirements    CareerRequirements  `json:"requirements"`
	Skills          []string            `json:"skills"`
	LearningPath    []LearningPathStep  `json:"learningPath"`
}

type CareerRequirements struct {
	Education      string   `json:"education"`
	Experience     string   `json:"experience"`
	Certifications []string `json:"certifications"`
}

type LearningPathStep struct {
	Step     int    `json:"step"`
	Title    string `json:"title"`
	Duration string `json:"duration"`
}

// CareerMatch is a scored catalog entry. Ephemeral: recomputed on every
// generate call, never cached.
// swagger:model CareerMatch
type CareerMatch struct {
	CareerArchetype
	MatchPercentage float64 `json:"match_percentage"`
}
