package services

import (
	"context"
	"math"
	"strings"

	"promasterBack/internal/models"
	"promasterBack/internal/repositories"
)

type RatingService struct {
	RatingsRepo *repositories.RatingRepository
	CompanyRepo *repositories.CompanyRepository
}

// ValidateRatingValue checks the rating bounds used everywhere a rating
// value enters the system.
func ValidateRatingValue(value float64) error {
	if value < 1.0 || value > 5.0 {
		return models.ErrInvalidRating
	}
	return nil
}

func (s *RatingService) CreateRating(ctx context.Context, rating models.Rating) (models.Rating, error) {
	if err := ValidateRatingValue(rating.Rating); err != nil {
		return models.Rating{}, err
	}

	exists, err := s.CompanyRepo.CompanyExists(ctx, rating.CompanyID)
	if err != nil {
		return models.Rating{}, err
	}
	if !exists {
		return models.Rating{}, models.ErrCompanyNotFound
	}

	rating.Review = strings.TrimSpace(rating.Review)
	created, err := s.RatingsRepo.CreateRating(ctx, rating)
	if err != nil {
		return models.Rating{}, err
	}

	if err := s.recomputeCompanyRating(ctx, rating.CompanyID); err != nil {
		return models.Rating{}, err
	}
	return created, nil
}

func (s *RatingService) GetRatingsByCompanyID(ctx context.Context, companyID, page, perPage int) (models.RatingListResponse, error) {
	offset := (page - 1) * perPage
	ratings, total, err := s.RatingsRepo.GetRatingsByCompanyID(ctx, companyID, perPage, offset)
	if err != nil {
		return models.RatingListResponse{}, err
	}
	return models.RatingListResponse{
		Ratings:    ratings,
		Pagination: models.NewPagination(total, page, perPage),
	}, nil
}

// UpdateRating lets a client change their own rating and keeps the
// company average in step.
func (s *RatingService) UpdateRating(ctx context.Context, clientID int, rating models.Rating) error {
	if err := ValidateRatingValue(rating.Rating); err != nil {
		return err
	}

	existing, err := s.RatingsRepo.GetRatingByID(ctx, rating.ID)
	if err != nil {
		return err
	}
	if existing.ClientID != clientID {
		return models.ErrRatingNotFound
	}

	rating.Review = strings.TrimSpace(rating.Review)
	if err := s.RatingsRepo.UpdateRating(ctx, rating); err != nil {
		return err
	}
	return s.recomputeCompanyRating(ctx, existing.CompanyID)
}

func (s *RatingService) DeleteRating(ctx context.Context, clientID, ratingID int) error {
	existing, err := s.RatingsRepo.GetRatingByID(ctx, ratingID)
	if err != nil {
		return err
	}
	if existing.ClientID != clientID {
		return models.ErrRatingNotFound
	}
	if err := s.RatingsRepo.DeleteRating(ctx, ratingID); err != nil {
		return err
	}
	return s.recomputeCompanyRating(ctx, existing.CompanyID)
}

// recomputeCompanyRating stores AVG(rating) rounded to 2 decimals on
// the company row; 0 when the last rating was removed.
func (s *RatingService) recomputeCompanyRating(ctx context.Context, companyID int) error {
	avg, err := s.RatingsRepo.AverageForCompany(ctx, companyID)
	if err != nil {
		return err
	}
	rounded := math.Round(avg*100) / 100
	return s.CompanyRepo.UpdateRating(ctx, companyID, rounded)
}
