package service

import (
	"context"
	"strings"

	"github.com/ashtabanjan/restaurant-api/internal/domain"
	"github.com/ashtabanjan/restaurant-api/internal/repository"
)

// ReviewService manages customer feedback.
type ReviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
}

// ReviewInput describes a new review.
type ReviewInput struct {
	Details string
	Rating  int
}

// NewReviewService constructs the service.
func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository) *ReviewService {
	return &ReviewService{reviews: reviews, users: users}
}

// List returns every review.
func (s *ReviewService) List(ctx context.Context) ([]domain.Review, error) {
	return s.reviews.List(ctx)
}

// Create stores a review authored by uid.
func (s *ReviewService) Create(ctx context.Context, uid string, in ReviewInput) (*domain.Review, error) {
	author, err := s.users.GetByUID(ctx, uid)
	if err != nil {
		return nil, mapRepoError(err, "user")
	}
	review := &domain.Review{
		UID:     uid,
		Name:    author.Name,
		Details: strings.TrimSpace(in.Details),
		Rating:  in.Rating,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}
