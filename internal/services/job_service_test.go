package services

import (
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/careerport/job-service/internal/dtos"
	"github.com/careerport/job-service/internal/models"
)

func newTestService(t *testing.T) *JobService {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "jobs.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Job{}))
	return NewJobService(db)
}

func validCreateRequest() *dtos.CreateJobRequest {
	return &dtos.CreateJobRequest{
		Title:            "Backend Engineer",
		Company:          "Acme",
		Location:         "Cairo, Egypt",
		Experience:       "3-5 years",
		Salary:           "30000 EGP",
		Type:             "Remote",
		Category:         "Software",
		Description:      []string{"Build things"},
		Responsibilities: []string{"Own services end to end"},
		SoftSkills:       []string{"Communication"},
		Qualifications:   []string{"BSc or equivalent"},
	}
}

func TestCreateJobRoundTrip(t *testing.T) {
	svc := newTestService(t)

	req := validCreateRequest()
	req.Description = []string{"First line", "Second line", "Third line"}

	created, err := svc.CreateJob(req)
	require.NoError(t, err)
	require.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Nil(t, created.UpdatedAt)
	assert.Nil(t, created.LogoURL)

	fetched, err := svc.GetJob(created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StringList{"First line", "Second line", "Third line"}, fetched.Description)
	assert.Equal(t, models.StringList{"Communication"}, fetched.SoftSkills)
	assert.Equal(t, "Backend Engineer", fetched.Title)
}

func TestGetJobNotFound(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.GetJob(42)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestListJobsFilters(t *testing.T) {
	svc := newTestService(t)

	seed := []struct {
		title, location, jobType, category string
	}{
		{"Backend Engineer", "Cairo, Egypt", "Remote", "Software"},
		{"Frontend Engineer", "Alexandria, Egypt", "Remote", "Software"},
		{"Accountant", "Cairo, Egypt", "On-site", "Accounting"},
		{"Sales Rep", "Giza, Egypt", "Remote", "Sales"},
	}
	for _, s := range seed {
		req := validCreateRequest()
		req.Title = s.title
		req.Location = s.location
		req.Type = s.jobType
		req.Category = s.category
		_, err := svc.CreateJob(req)
		require.NoError(t, err)
	}

	jobs, err := svc.ListJobs(ListFilter{Type: "Remote", Category: "Software", Limit: 100})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Equal(t, "Remote", job.Type)
		assert.Equal(t, "Software", job.Category)
	}

	jobs, err = svc.ListJobs(ListFilter{City: "Cairo", Limit: 100})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.Contains(t, job.Location, "Cairo")
	}
}

func TestListJobsPagination(t *testing.T) {
	svc := newTestService(t)

	var ids []uint
	for i := 0; i < 5; i++ {
		job, err := svc.CreateJob(validCreateRequest())
		require.NoError(t, err)
		ids = append(ids, job.ID)
	}

	jobs, err := svc.ListJobs(ListFilter{Skip: 1, Limit: 2})
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, ids[1], jobs[0].ID)
	assert.Equal(t, ids[2], jobs[1].ID)
}

func TestSimilarJobsExcludesAnchor(t *testing.T) {
	svc := newTestService(t)

	anchor, err := svc.CreateJob(validCreateRequest())
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.CreateJob(validCreateRequest())
		require.NoError(t, err)
	}
	other := validCreateRequest()
	other.Category = "Accounting"
	_, err = svc.CreateJob(other)
	require.NoError(t, err)

	jobs, err := svc.SimilarJobs(anchor.ID, 5)
	require.NoError(t, err)
	require.Len(t, jobs, 3)
	for _, job := range jobs {
		assert.NotEqual(t, anchor.ID, job.ID)
		assert.Equal(t, anchor.Category, job.Category)
	}

	jobs, err = svc.SimilarJobs(anchor.ID, 2)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)
}

func TestSimilarJobsMissingAnchor(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.SimilarJobs(99, 5)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateJobPartial(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateJob(validCreateRequest())
	require.NoError(t, err)

	salary := "40000 EGP"
	updated, err := svc.UpdateJob(created.ID, &dtos.UpdateJobRequest{Salary: &salary})
	require.NoError(t, err)

	assert.Equal(t, "40000 EGP", updated.Salary)
	assert.Equal(t, created.Title, updated.Title)
	assert.Equal(t, created.Description, updated.Description)
	require.NotNil(t, updated.UpdatedAt)
}

func TestUpdateJobReplacesLists(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateJob(validCreateRequest())
	require.NoError(t, err)

	replacement := []string{"New duty A", "New duty B"}
	updated, err := svc.UpdateJob(created.ID, &dtos.UpdateJobRequest{Responsibilities: &replacement})
	require.NoError(t, err)

	assert.Equal(t, models.StringList{"New duty A", "New duty B"}, updated.Responsibilities)
	assert.Equal(t, created.Qualifications, updated.Qualifications)
}

func TestUpdateJobNotFound(t *testing.T) {
	svc := newTestService(t)

	title := "Anything"
	_, err := svc.UpdateJob(7, &dtos.UpdateJobRequest{Title: &title})
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestDeleteJob(t *testing.T) {
	svc := newTestService(t)

	created, err := svc.CreateJob(validCreateRequest())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteJob(created.ID))

	_, err = svc.GetJob(created.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)

	assert.ErrorIs(t, svc.DeleteJob(created.ID), ErrJobNotFound)
}
