package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

func TestJobRepository(t *testing.T) {
	repo := NewJobRepository([]models.JobPosting{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}})
	ctx := context.Background()

	jobs, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs[0].Title = "changed"
	job, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "A", job.Title)

	_, err = repo.GetByID(ctx, 99)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestJobRepository_CanceledContext(t *testing.T) {
	repo := NewJobRepository(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.List(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestApplicantRepository_ListByJobID(t *testing.T) {
	repo := NewApplicantRepository([]models.Applicant{
		{ID: 1, JobID: 1}, {ID: 2, JobID: 2}, {ID: 3, JobID: 1},
	})

	got, err := repo.ListByJobID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	_, err = repo.GetByID(context.Background(), 42)
	assert.ErrorIs(t, err, ErrApplicantNotFound)
}

func TestReviewRepository_GetAverageRating(t *testing.T) {
	repo := NewReviewRepository([]models.Review{
		{ID: 1, Company: "Nordlys", Rating: 5},
		{ID: 2, Company: "nordlys", Rating: 4},
		{ID: 3, Company: "Fjord", Rating: 3},
	})
	ctx := context.Background()

	avg, count, err := repo.GetAverageRating(ctx, "NORDLYS")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.InDelta(t, 4.5, avg, 0.001)

	avg, count, err = repo.GetAverageRating(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.InDelta(t, 4.0, avg, 0.001)

	avg, count, err = repo.GetAverageRating(ctx, "Ukjent")
	require.NoError(t, err)
	assert.Zero(t, count)
	assert.Zero(t, avg)
}

func TestApplicationRepository(t *testing.T) {
	repo := NewApplicationRepository()
	ctx := context.Background()

	app := &models.Application{JobID: 3, Name: "Ola"}
	require.NoError(t, repo.Create(ctx, app))
	assert.NotEqual(t, uuid.Nil, app.ID)
	assert.False(t, app.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, app.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ola", got.Name)

	list, err := repo.ListByJobID(ctx, 3)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}
