package domain

import "time"

// JobStatus is the lifecycle state of a job posting.
type JobStatus string

const (
	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusPaused JobStatus = "paused"
	JobStatusClosed JobStatus = "closed"
)

// Job is a posting published by an employer team.
type Job struct {
	ID             string    `json:"id" mapstructure:"id"`
	Title          string    `json:"title" mapstructure:"title"`
	CompanyName    string    `json:"companyName" mapstructure:"companyName"`
	Location       string    `json:"location" mapstructure:"location"`
	Remote         bool      `json:"remote" mapstructure:"remote"`
	EmploymentType string    `json:"employmentType" mapstructure:"employmentType"`
	Description    string    `json:"description" mapstructure:"description"`
	Skills         []string  `json:"skills" mapstructure:"skills"`
	SalaryMin      int       `json:"salaryMin,omitempty" mapstructure:"salaryMin"`
	SalaryMax      int       `json:"salaryMax,omitempty" mapstructure:"salaryMax"`
	Currency       string    `json:"currency,omitempty" mapstructure:"currency"`
	Status         JobStatus `json:"status" mapstructure:"status"`
	Applicants     int       `json:"applicantCount" mapstructure:"applicantCount"`
	CreatedAt      time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// JobQuery filters a job search.
type JobQuery struct {
	Text           string
	Location       string
	Remote         bool
	EmploymentType string
	Page           int
	PerPage        int
}

// JobPage is one page of search results.
type JobPage struct {
	Items   []Job `json:"items" mapstructure:"items"`
	Total   int   `json:"total" mapstructure:"total"`
	Page    int   `json:"page" mapstructure:"page"`
	PerPage int   `json:"perPage" mapstructure:"perPage"`
}

// JobInput is the writable subset of a Job used by create and update.
type JobInput struct {
	Title          string    `json:"title,omitempty"`
	Location       string    `json:"location,omitempty"`
	Remote         *bool     `json:"remote,omitempty"`
	EmploymentType string    `json:"employmentType,omitempty"`
	Description    string    `json:"description,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	SalaryMin      int       `json:"salaryMin,omitempty"`
	SalaryMax      int       `json:"salaryMax,omitempty"`
	Currency       string    `json:"currency,omitempty"`
	Status         JobStatus `json:"status,omitempty"`
}

// Application is a talent's application to a job.
type Application struct {
	ID          string    `json:"id" mapstructure:"id"`
	JobID       string    `json:"jobId" mapstructure:"jobId"`
	Status      string    `json:"status" mapstructure:"status"`
	CoverLetter string    `json:"coverLetter,omitempty" mapstructure:"coverLetter"`
	CreatedAt   time.Time `json:"createdAt" mapstructure:"createdAt"`
}

// Match is a job recommended to a talent with a fit score.
type Match struct {
	Job           Job      `json:"job" mapstructure:"job"`
	Score         int      `json:"matchScore" mapstructure:"matchScore"`
	MissingSkills []string `json:"missingSkills,omitempty" mapstructure:"missingSkills"`
}
