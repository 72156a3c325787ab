package domain

import "time"

// TalentProfile is the candidate-facing profile.
type TalentProfile struct {
	UserID          string       `json:"userId" mapstructure:"userId"`
	Headline        string       `json:"headline" mapstructure:"headline"`
	Summary         string       `json:"summary" mapstructure:"summary"`
	Location        string       `json:"location" mapstructure:"location"`
	Skills          []string     `json:"skills" mapstructure:"skills"`
	YearsExperience int          `json:"yearsExperience" mapstructure:"yearsExperience"`
	Experience      []Experience `json:"experience" mapstructure:"experience"`
	PictureURL      string       `json:"pictureUrl,omitempty" mapstructure:"pictureUrl"`
	UpdatedAt       time.Time    `json:"updatedAt" mapstructure:"updatedAt"`
}

// Experience is a single employment entry.
type Experience struct {
	Company string `json:"company" mapstructure:"company"`
	Title   string `json:"title" mapstructure:"title"`
	From    string `json:"from" mapstructure:"from"`
	To      string `json:"to,omitempty" mapstructure:"to"`
}

// EmployerProfile is the team-facing company profile.
type EmployerProfile struct {
	UserID      string    `json:"userId" mapstructure:"userId"`
	CompanyName string    `json:"companyName" mapstructure:"companyName"`
	Website     string    `json:"website" mapstructure:"website"`
	Industry    string    `json:"industry" mapstructure:"industry"`
	Size        string    `json:"companySize" mapstructure:"companySize"`
	About       string    `json:"about" mapstructure:"about"`
	PictureURL  string    `json:"logoUrl,omitempty" mapstructure:"logoUrl"`
	UpdatedAt   time.Time `json:"updatedAt" mapstructure:"updatedAt"`
}

// ProfileUpdate carries the fields a user may change. Empty fields are
// left untouched by the backend.
type ProfileUpdate struct {
	Headline        string   `json:"headline,omitempty"`
	Summary         string   `json:"summary,omitempty"`
	Location        string   `json:"location,omitempty"`
	Skills          []string `json:"skills,omitempty"`
	YearsExperience int      `json:"yearsExperience,omitempty"`
	CompanyName     string   `json:"companyName,omitempty"`
	Website         string   `json:"website,omitempty"`
	Industry        string   `json:"industry,omitempty"`
	About           string   `json:"about,omitempty"`
}

// ParsedCV is the structured result of the backend's AI CV parser. It
// is shown to the user for confirmation before it overwrites the profile.
type ParsedCV struct {
	UploadID        string       `json:"uploadId" mapstructure:"uploadId"`
	Headline        string       `json:"headline" mapstructure:"headline"`
	Summary         string       `json:"summary" mapstructure:"summary"`
	Skills          []string     `json:"skills" mapstructure:"skills"`
	YearsExperience int          `json:"yearsExperience" mapstructure:"yearsExperience"`
	Experience      []Experience `json:"experience" mapstructure:"experience"`
	Confidence      float64      `json:"confidence" mapstructure:"confidence"`
}

// CVUpload acknowledges a CV file upload. Parsing runs asynchronously on
// the backend; Status moves from "processing" to "parsed" or "failed".
type CVUpload struct {
	UploadID string `json:"uploadId" mapstructure:"uploadId"`
	FileName string `json:"fileName" mapstructure:"fileName"`
	Size     int64  `json:"size" mapstructure:"size"`
	Status   string `json:"status" mapstructure:"status"`
}

// CV parse states.
const (
	CVStatusProcessing = "processing"
	CVStatusParsed     = "parsed"
	CVStatusFailed     = "failed"
)
