package service

import (
	"context"
	"errors"
	"log/slog"

	"feedback-service/internal/clients"
	"feedback-service/internal/http-api/dto"
	"feedback-service/internal/http-api/models"
	"feedback-service/internal/http-api/repository"

	"gorm.io/gorm"
)

var (
	ErrRatingNotFound   = errors.New("rating not found")
	ErrRiderNotFound    = errors.New("no such rider found")
	ErrTripNotCompleted = errors.New("trip is not completed yet")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

type RatingService interface {
	CreateRating(ctx context.Context, req dto.CreateRatingDTO) (*dto.RatingResponse, error)
	ListRatings(ctx context.Context) ([]dto.RatingResponse, error)
	GetRating(ctx context.Context, id int64) (*dto.RatingResponse, error)
}

type ratingService struct {
	ratingRepo           repository.RatingRepository
	riderClient          clients.RiderClient
	tripClient           clients.TripClient
	requireCompletedTrip bool
	logger               *slog.Logger
}

func NewRatingService(
	ratingRepo repository.RatingRepository,
	riderClient clients.RiderClient,
	tripClient clients.TripClient,
	requireCompletedTrip bool,
	logger *slog.Logger,
) RatingService {
	return &ratingService{
		ratingRepo:           ratingRepo,
		riderClient:          riderClient,
		tripClient:           tripClient,
		requireCompletedTrip: requireCompletedTrip,
		logger:               logger,
	}
}

// CreateRating verifies the rider exists, then persists the rating and returns
// the stored entity with its assigned id and timestamps.
func (s *ratingService) CreateRating(ctx context.Context, req dto.CreateRatingDTO) (*dto.RatingResponse, error) {
	riderExists, err := s.riderClient.RiderExists(ctx, req.RiderID)
	if err != nil {
		return nil, err
	}
	if !riderExists {
		s.logger.Warn("create rating rejected, rider unknown", "rider_id", req.RiderID)
		return nil, ErrRiderNotFound
	}

	if s.requireCompletedTrip {
		completed, err := s.tripClient.TripCompleted(ctx, req.TripID)
		if err != nil {
			return nil, err
		}
		if !completed {
			s.logger.Warn("create rating rejected, trip not completed", "trip_id", req.TripID)
			return nil, ErrTripNotCompleted
		}
	}

	rating := &models.Rating{
		TripID:   req.TripID,
		RiderID:  req.RiderID,
		DriverID: req.DriverID,
		Rating:   req.Rating,
		Comment:  req.Comment,
	}
	if err := s.ratingRepo.Create(rating); err != nil {
		if errors.Is(err, repository.ErrCheckViolation) {
			return nil, ErrInvalidRating
		}
		return nil, err
	}

	s.logger.Info("rating created", "rating_id", rating.ID, "rider_id", rating.RiderID)
	return dto.FromModelToRatingResponse(rating), nil
}

// ListRatings returns every stored rating in insertion order
func (s *ratingService) ListRatings(ctx context.Context) ([]dto.RatingResponse, error) {
	ratings, err := s.ratingRepo.List()
	if err != nil {
		return nil, err
	}

	responses := make([]dto.RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		responses = append(responses, *dto.FromModelToRatingResponse(&rating))
	}

	s.logger.Info("ratings listed", "count", len(responses))
	return responses, nil
}

// GetRating retrieves a single rating by id
func (s *ratingService) GetRating(ctx context.Context, id int64) (*dto.RatingResponse, error) {
	rating, err := s.ratingRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return dto.FromModelToRatingResponse(rating), nil
}
