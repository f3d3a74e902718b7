package dtos

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/careerport/job-service/internal/models"
)

type CreateJobRequest struct {
	Title      string  `json:"title" binding:"required,max=255"`
	Company    string  `json:"company" binding:"required,max=255"`
	Location   string  `json:"location" binding:"required,max=255"`
	Experience string  `json:"experience" binding:"required,max=100"`
	Salary     string  `json:"salary" binding:"required,max=100"`
	Type       string  `json:"type" binding:"required,max=50"`
	Category   string  `json:"category" binding:"required,max=100"`
	LogoURL    *string `json:"logo_url" binding:"omitempty,max=500"`

	Description      []string `json:"description" binding:"required,min=1,dive,required"`
	Responsibilities []string `json:"responsibilities" binding:"required,min=1,dive,required"`
	SoftSkills       []string `json:"soft_skills" binding:"required,min=1,dive,required"`
	Qualifications   []string `json:"qualifications" binding:"required,min=1,dive,required"`
}

// UpdateJobRequest carries a partial payload: nil fields are left
// untouched on the target job, present list fields replace the stored
// list wholesale.
type UpdateJobRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1,max=255"`
	Company    *string `json:"company" binding:"omitempty,min=1,max=255"`
	Location   *string `json:"location" binding:"omitempty,min=1,max=255"`
	Experience *string `json:"experience" binding:"omitempty,min=1,max=100"`
	Salary     *string `json:"salary" binding:"omitempty,min=1,max=100"`
	Type       *string `json:"type" binding:"omitempty,min=1,max=50"`
	Category   *string `json:"category" binding:"omitempty,min=1,max=100"`
	LogoURL    *string `json:"logo_url" binding:"omitempty,max=500"`

	Description      *[]string `json:"description" binding:"omitempty,min=1,dive,required"`
	Responsibilities *[]string `json:"responsibilities" binding:"omitempty,min=1,dive,required"`
	SoftSkills       *[]string `json:"soft_skills" binding:"omitempty,min=1,dive,required"`
	Qualifications   *[]string `json:"qualifications" binding:"omitempty,min=1,dive,required"`
}

// JobForm holds the scalar fields of the multipart create endpoint. The
// four list fields arrive as raw text and go through ParseListField.
type JobForm struct {
	Title      string `form:"title" binding:"required,max=255"`
	Company    string `form:"company" binding:"required,max=255"`
	Location   string `form:"location" binding:"required,max=255"`
	Experience string `form:"experience" binding:"required,max=100"`
	Salary     string `form:"salary" binding:"required,max=100"`
	Type       string `form:"type" binding:"required,max=50"`
	Category   string `form:"category" binding:"required,max=100"`

	Description      string `form:"description" binding:"required"`
	Responsibilities string `form:"responsibilities" binding:"required"`
	SoftSkills       string `form:"soft_skills" binding:"required"`
	Qualifications   string `form:"qualifications" binding:"required"`
}

// ParseListField turns a form field value into a list of strings. It
// accepts a JSON array of strings, a JSON string (one-element list), or
// plain non-JSON text (one-element list after trimming).
func ParseListField(name, value string) ([]string, error) {
	var parsed interface{}
	if err := json.Unmarshal([]byte(value), &parsed); err != nil {
		raw := strings.TrimSpace(value)
		if raw == "" {
			return nil, fmt.Errorf("%s cannot be empty", name)
		}
		return []string{raw}, nil
	}

	switch v := parsed.(type) {
	case []interface{}:
		out := make([]string, 0, len(v))
		for _, item := range v {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%s must be a JSON array of strings", name)
			}
			out = append(out, s)
		}
		return out, nil
	case string:
		return []string{v}, nil
	default:
		return nil, fmt.Errorf("%s must be a JSON array or string", name)
	}
}

// JobSummary is the lightweight listing view: no list fields, no
// timestamps.
type JobSummary struct {
	ID         uint    `json:"id"`
	Title      string  `json:"title"`
	Company    string  `json:"company"`
	Location   string  `json:"location"`
	Experience string  `json:"experience"`
	Salary     string  `json:"salary"`
	Type       string  `json:"type"`
	Category   string  `json:"category"`
	LogoURL    *string `json:"logoUrl"`
}

// JobDetail is the full view with decoded lists and timestamps.
type JobDetail struct {
	JobSummary
	Description      []string `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	SoftSkills       []string `json:"softSkills"`
	Qualifications   []string `json:"qualifications"`
	CreatedAt        *string  `json:"createdAt"`
	UpdatedAt        *string  `json:"updatedAt"`
}

func NewJobSummary(job *models.Job) JobSummary {
	return JobSummary{
		ID:         job.ID,
		Title:      job.Title,
		Company:    job.Company,
		Location:   job.Location,
		Experience: job.Experience,
		Salary:     job.Salary,
		Type:       job.Type,
		Category:   job.Category,
		LogoURL:    job.LogoURL,
	}
}

func NewJobSummaries(jobs []models.Job) []JobSummary {
	summaries := make([]JobSummary, 0, len(jobs))
	for i := range jobs {
		summaries = append(summaries, NewJobSummary(&jobs[i]))
	}
	return summaries
}

func NewJobDetail(job *models.Job) JobDetail {
	detail := JobDetail{
		JobSummary:       NewJobSummary(job),
		Description:      listOrEmpty(job.Description),
		Responsibilities: listOrEmpty(job.Responsibilities),
		SoftSkills:       listOrEmpty(job.SoftSkills),
		Qualifications:   listOrEmpty(job.Qualifications),
	}
	if !job.CreatedAt.IsZero() {
		created := job.CreatedAt.Format(time.RFC3339)
		detail.CreatedAt = &created
	}
	if job.UpdatedAt != nil {
		updated := job.UpdatedAt.Format(time.RFC3339)
		detail.UpdatedAt = &updated
	}
	return detail
}

func listOrEmpty(list models.StringList) []string {
	if list == nil {
		return []string{}
	}
	return list
}
