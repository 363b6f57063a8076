package dto

// ListJobsRequest carries the dashboard filter and sort criteria.
type ListJobsRequest struct {
	Keyword    string `form:"keyword"`
	Location   string `form:"location"`
	Mode       string `form:"mode"`
	Experience *int   `form:"experience"`
	Source     string `form:"source"`
	Status     string `form:"status"`
	MinScore   bool   `form:"min_score"` // apply the preference threshold
	Sort       string `form:"sort"`
}

// JobDTO is a scored job as rendered to clients. Score is null when no
// preferences are set.
type JobDTO struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Company       string   `json:"company"`
	Location      string   `json:"location"`
	Mode          string   `json:"mode"`
	Experience    int      `json:"experience"`
	SalaryRange   string   `json:"salary_range"`
	Skills        []string `json:"skills"`
	Source        string   `json:"source"`
	PostedDaysAgo int      `json:"posted_days_ago"`
	ApplyURL      string   `json:"apply_url"`
	Score         *int     `json:"score"`
	Status        string   `json:"status"`
	Saved         bool     `json:"saved"`
}

// ListJobsResponse wraps the filtered, sorted job list.
type ListJobsResponse struct {
	Jobs  []JobDTO `json:"jobs"`
	Total int      `json:"total"`
}

// PreferencesRequest is the wholesale replacement body for PUT
// /preferences.
type PreferencesRequest struct {
	RoleKeywords  []string `json:"role_keywords"`
	Locations     []string `json:"locations"`
	Skills        []string `json:"skills"`
	MinMatchScore int      `json:"min_match_score"`
}

// UpdateStatusRequest sets a job's application status.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// StatusResponse reports one job's tracked status.
type StatusResponse struct {
	JobID  string `json:"job_id"`
	Status string `json:"status"`
}

// UpdateChecklistItemRequest toggles one checklist item.
type UpdateChecklistItemRequest struct {
	Done *bool `json:"done" binding:"required"`
}

// DigestTextResponse carries the plain-text digest rendering used for
// clipboard copy plus the prefilled email compose link.
type DigestTextResponse struct {
	Date      string `json:"date"`
	Text      string `json:"text"`
	MailtoURL string `json:"mailto_url"`
}
