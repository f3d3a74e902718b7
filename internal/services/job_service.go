package services

import (
	"errors"
	"time"

	"github.com/careerport/job-service/internal/dtos"
	"github.com/careerport/job-service/internal/models"
	"gorm.io/gorm"
)

// ErrJobNotFound is returned when a job id does not exist.
var ErrJobNotFound = errors.New("job not found")

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// ListFilter narrows ListJobs. Zero-value fields are ignored; set
// filters are combined with AND.
type ListFilter struct {
	Type     string
	City     string
	Category string
	Skip     int
	Limit    int
}

// ListJobs returns jobs matching every set filter, ordered by id
// ascending so offset pagination stays stable across requests.
func (s *JobService) ListJobs(filter ListFilter) ([]models.Job, error) {
	query := s.DB.Model(&models.Job{})
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.City != "" {
		query = query.Where("location LIKE ?", "%"+filter.City+"%")
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	var jobs []models.Job
	err := query.Order("id ASC").Offset(filter.Skip).Limit(filter.Limit).Find(&jobs).Error
	return jobs, err
}

func (s *JobService) GetJob(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

// SimilarJobs returns up to limit other jobs sharing the anchor's
// category. The anchor itself is never included.
func (s *JobService) SimilarJobs(id uint, limit int) ([]models.Job, error) {
	anchor, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	var jobs []models.Job
	err = s.DB.Where("category = ? AND id <> ?", anchor.Category, anchor.ID).
		Order("id ASC").Limit(limit).Find(&jobs).Error
	return jobs, err
}

func (s *JobService) CreateJob(req *dtos.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Experience:       req.Experience,
		Salary:           req.Salary,
		Type:             req.Type,
		Category:         req.Category,
		LogoURL:          req.LogoURL,
		Description:      models.StringList(req.Description),
		Responsibilities: models.StringList(req.Responsibilities),
		SoftSkills:       models.StringList(req.SoftSkills),
		Qualifications:   models.StringList(req.Qualifications),
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.DB.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// UpdateJob applies only the fields present in the payload. List fields
// are replaced wholesale, never merged.
func (s *JobService) UpdateJob(id uint, req *dtos.UpdateJobRequest) (*models.Job, error) {
	job, err := s.GetJob(id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		job.Title = *req.Title
	}
	if req.Company != nil {
		job.Company = *req.Company
	}
	if req.Location != nil {
		job.Location = *req.Location
	}
	if req.Experience != nil {
		job.Experience = *req.Experience
	}
	if req.Salary != nil {
		job.Salary = *req.Salary
	}
	if req.Type != nil {
		job.Type = *req.Type
	}
	if req.Category != nil {
		job.Category = *req.Category
	}
	if req.LogoURL != nil {
		job.LogoURL = req.LogoURL
	}
	if req.Description != nil {
		job.Description = models.StringList(*req.Description)
	}
	if req.Responsibilities != nil {
		job.Responsibilities = models.StringList(*req.Responsibilities)
	}
	if req.SoftSkills != nil {
		job.SoftSkills = models.StringList(*req.SoftSkills)
	}
	if req.Qualifications != nil {
		job.Qualifications = models.StringList(*req.Qualifications)
	}

	now := time.Now().UTC()
	job.UpdatedAt = &now

	if err := s.DB.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes the job row. The stored logo file, if any, is left
// in place.
func (s *JobService) DeleteJob(id uint) error {
	job, err := s.GetJob(id)
	if err != nil {
		return err
	}
	return s.DB.Delete(job).Error
}
