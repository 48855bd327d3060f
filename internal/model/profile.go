package model

// swagger:model UserProfile
type UserProfile struct {
	BaseModel
	UserID            uint    `gorm:"index;not null" json:"user_id"`
	FullName          string  `gorm:"size:100" json:"full_name"`
	Email             string  `gorm:"size:100" json:"email"`
	EducationLevel    string  `gorm:"size:100" json:"education_level"`
	CurrentRole       string  `gorm:"size:100" json:"current_role"`
	Location          string  `gorm:"size:100" json:"location"`
	Skills            string  `gorm:"type:text" json:"skills"`
	Interests         string  `gorm:"type:text" json:"interests"`
	Bio               string  `gorm:"type:text" json:"bio"`
	Linkedin          string  `gorm:"size:255" json:"linkedin"`
	Portfolio         string  `gorm:"size:255" json:"portfolio"`
	ProfileCompletion float64 `gorm:"default:0" json:"profile_completion"`
}

func (UserProfile) TableName() string {
	return "user_profiles"
}

// Fields returns the profile as a field-name keyed map, the shape the
// completion calculator works on.
func (p *UserProfile) Fields() map[string]string {
	return map[string]string{
		"full_name":       p.FullName,
		"email":           p.Email,
		"education_level": p.EducationLevel,
		"current_role":    p.CurrentRole,
		"location":        p.Location,
		"skills":          p.Skills,
		"interests":       p.Interests,
		"bio":             p.Bio,
		"linkedin":        p.Linkedin,
		"portfolio":       p.Portfolio,
	}
}
