package catalog

import "errors"

// Work modes.
const (
	ModeRemote = "Remote"
	ModeHybrid = "Hybrid"
	ModeOnsite = "Onsite"
)

// Job sources.
const (
	SourceLinkedIn  = "LinkedIn"
	SourceNaukri    = "Naukri"
	SourceIndeed    = "Indeed"
	SourceCompany   = "Company Site"
	SourceReferral  = "Referral"
	SourceAngelList = "AngelList"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

// Job is an immutable posting in the catalog. Identity is ID; records
// are never mutated after load.
type Job struct {
	ID            string   `json:"id" yaml:"id"`
	Title         string   `json:"title" yaml:"title"`
	Company       string   `json:"company" yaml:"company"`
	Location      string   `json:"location" yaml:"location"`
	Mode          string   `json:"mode" yaml:"mode"`
	Experience    int      `json:"experience" yaml:"experience"`
	SalaryRange   string   `json:"salary_range" yaml:"salary_range"`
	Skills        []string `json:"skills" yaml:"skills"`
	Source        string   `json:"source" yaml:"source"`
	PostedDaysAgo int      `json:"posted_days_ago" yaml:"posted_days_ago"`
	ApplyURL      string   `json:"apply_url" yaml:"apply_url"`
}
