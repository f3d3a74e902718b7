package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/careerport/job-service/internal/dtos"
	"github.com/careerport/job-service/internal/services"
	"github.com/careerport/job-service/internal/uploads"
)

type JobHandler struct {
	JobService *services.JobService
	Uploads    *uploads.Store
}

// NewJobHandler creates the handler with dependencies
func NewJobHandler(jobs *services.JobService, store *uploads.Store) *JobHandler {
	return &JobHandler{
		JobService: jobs,
		Uploads:    store,
	}
}

// ListJobs is the GET /jobs endpoint. Filters are combined with AND;
// skip/limit outside their bounds are clamped.
func (h *JobHandler) ListJobs(c *gin.Context) {
	skip := intQuery(c, "skip", 0)
	if skip < 0 {
		skip = 0
	}
	limit := intQuery(c, "limit", 100)
	if limit < 1 {
		limit = 1
	}
	if limit > 100 {
		limit = 100
	}

	jobs, err := h.JobService.ListJobs(services.ListFilter{
		Type:     c.Query("type"),
		City:     c.Query("city"),
		Category: c.Query("category"),
		Skip:     skip,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list jobs: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobSummaries(jobs))
}

// GetJob is the GET /jobs/:id endpoint
func (h *JobHandler) GetJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	job, err := h.JobService.GetJob(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobDetail(job))
}

// SimilarJobs is the GET /jobs/:id/similar endpoint
func (h *JobHandler) SimilarJobs(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	limit := intQuery(c, "limit", 5)
	if limit < 1 {
		limit = 1
	}
	if limit > 10 {
		limit = 10
	}

	jobs, err := h.JobService.SimilarJobs(id, limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobSummaries(jobs))
}

// CreateJob is the POST /jobs endpoint
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req dtos.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.CreateJob(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dtos.NewJobDetail(job))
}

// CreateJobWithLogo is the POST /jobs/with-logo endpoint. The list
// fields arrive as raw form text and may be JSON arrays, JSON strings,
// or plain text. The logo file is optional: a rejected extension or
// missing filename is a 400, a failed disk write just omits the logo.
func (h *JobHandler) CreateJobWithLogo(c *gin.Context) {
	var form dtos.JobForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data: " + err.Error()})
		return
	}

	var logoURL *string
	if fh, err := c.FormFile("logo"); err == nil {
		name, err := h.Uploads.Save(fh)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if name != "" {
			url := "/uploads/" + name
			logoURL = &url
		}
	}

	description, err := dtos.ParseListField("description", form.Description)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	responsibilities, err := dtos.ParseListField("responsibilities", form.Responsibilities)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	softSkills, err := dtos.ParseListField("soft_skills", form.SoftSkills)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	qualifications, err := dtos.ParseListField("qualifications", form.Qualifications)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	job, err := h.JobService.CreateJob(&dtos.CreateJobRequest{
		Title:            form.Title,
		Company:          form.Company,
		Location:         form.Location,
		Experience:       form.Experience,
		Salary:           form.Salary,
		Type:             form.Type,
		Category:         form.Category,
		LogoURL:          logoURL,
		Description:      description,
		Responsibilities: responsibilities,
		SoftSkills:       softSkills,
		Qualifications:   qualifications,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create job: " + err.Error()})
		return
	}
	c.JSON(http.StatusCreated, dtos.NewJobDetail(job))
}

// UpdateJob is the PUT /jobs/:id endpoint
func (h *JobHandler) UpdateJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	var req dtos.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.JobService.UpdateJob(id, &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dtos.NewJobDetail(job))
}

// DeleteJob is the DELETE /jobs/:id endpoint
func (h *JobHandler) DeleteJob(c *gin.Context) {
	id, ok := jobID(c)
	if !ok {
		return
	}
	if err := h.JobService.DeleteJob(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func jobID(c *gin.Context) (uint, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return 0, false
	}
	return uint(id), true
}

func intQuery(c *gin.Context, name string, fallback int) int {
	value, err := strconv.Atoi(c.DefaultQuery(name, strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return value
}

func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, services.ErrJobNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Job not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
