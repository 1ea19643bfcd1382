package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

func TestReviewService_ListReviews_All(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	expected := []models.Review{{ID: 1, Rating: 5}, {ID: 2, Rating: 4}}
	repo.On("List", ctx).Return(expected, nil)
	repo.On("GetAverageRating", ctx, "").Return(4.5, 2, nil)

	res, err := svc.ListReviews(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, expected, res.Reviews)
	assert.Equal(t, 4.5, res.AverageRating)
	assert.Equal(t, 2, res.Count)
	repo.AssertExpectations(t)
}

func TestReviewService_ListReviews_ByCompany(t *testing.T) {
	repo := new(mockReviewRepo)
	svc := NewReviewService(repo)
	ctx := context.Background()

	repo.On("ListByCompany", ctx, "Fjord Tech AS").Return([]models.Review{{ID: 3, Rating: 5}}, nil)
	repo.On("GetAverageRating", ctx, "Fjord Tech AS").Return(4.666, 3, nil)

	res, err := svc.ListReviews(ctx, "  Fjord Tech AS ")
	require.NoError(t, err)
	assert.Len(t, res.Reviews, 1)
	assert.Equal(t, 4.7, res.AverageRating)
	repo.AssertNotCalled(t, "List", ctx)
}
