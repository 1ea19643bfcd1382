package repository

import (
	"context"
	"strings"

	"github.com/Nils2312/Fleksibelt-sub000/internal/models"
	"github.com/Nils2312/Fleksibelt-sub000/internal/repository/common"
)

type ReviewRepository struct {
	reviews []models.Review
}

func NewReviewRepository(reviews []models.Review) *ReviewRepository {
	return &ReviewRepository{reviews: reviews}
}

// List возвращает все отзывы.
func (r *ReviewRepository) List(ctx context.Context) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return common.Clone(r.reviews), nil
}

// ListByCompany возвращает отзывы работодателя (без учёта регистра).
func (r *ReviewRepository) ListByCompany(ctx context.Context, company string) ([]models.Review, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return common.FilterBy(r.reviews, func(rv models.Review) bool {
		return strings.EqualFold(rv.Company, company)
	}), nil
}

// GetAverageRating возвращает средний рейтинг и количество отзывов.
// Пустая company означает все отзывы.
func (r *ReviewRepository) GetAverageRating(ctx context.Context, company string) (float64, int, error) {
	var (
		reviews []models.Review
		err     error
	)
	if company == "" {
		reviews, err = r.List(ctx)
	} else {
		reviews, err = r.ListByCompany(ctx, company)
	}
	if err != nil {
		return 0, 0, err
	}
	if len(reviews) == 0 {
		return 0, 0, nil
	}

	sum := 0
	for _, rv := range reviews {
		sum += rv.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews), nil
}

func (r *ReviewRepository) Count() int {
	return len(r.reviews)
}
