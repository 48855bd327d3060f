package model

// JobPosting is one entry of the static mock job board.
// swagger:model JobPosting
type JobPosting struct {
	ID           int      `json:"id"`
	Title        string   `json:"title"`
	Company      string   `json:"company"`
	Location     string   `json:"location"`
	Salary       string   `json:"salary"`
	Type         string   `json:"type"`
	Experience   string   `json:"experience"`
	Posted       string   `json:"posted"`
	Match        int      `json:"match"`
	Description  string   `json:"description"`
	Requirements []string `json:"requirements"`
}
