package service

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
)

type ReviewRepository interface {
	List(ctx context.Context) ([]models.Review, error)
	ListByCompany(ctx context.Context, company string) ([]models.Review, error)
	GetAverageRating(ctx context.Context, company string) (float64, int, error)
}

type ReviewService struct {
	repo ReviewRepository
}

func NewReviewService(repo ReviewRepository) *ReviewService {
	return &ReviewService{repo: repo}
}

// ReviewList отзывы и средний рейтинг.
type ReviewList struct {
	Reviews       []models.Review `json:"reviews"`
	AverageRating float64         `json:"average_rating"`
	Count         int             `json:"count"`
}

// ListReviews возвращает отзывы. Пустая company означает все отзывы.
func (s *ReviewService) ListReviews(ctx context.Context, company string) (*ReviewList, error) {
	company = strings.TrimSpace(company)

	var (
		reviews []models.Review
		err     error
	)
	if company == "" {
		reviews, err = s.repo.List(ctx)
	} else {
		reviews, err = s.repo.ListByCompany(ctx, company)
	}
	if err != nil {
		return nil, fmt.Errorf("review service: list reviews: %w", err)
	}

	avg, count, err := s.repo.GetAverageRating(ctx, company)
	if err != nil {
		return nil, fmt.Errorf("review service: average rating: %w", err)
	}

	return &ReviewList{
		Reviews:       reviews,
		AverageRating: math.Round(avg*10) / 10,
		Count:         count,
	}, nil
}
