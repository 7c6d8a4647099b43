package dto

import (
	"time"

	"feedback-service/internal/http-api/models"
)

// CreateRatingDTO for submitting a new trip rating
type CreateRatingDTO struct {
	TripID   int64   `json:"trip_id" binding:"required"`
	RiderID  int64   `json:"rider_id" binding:"required"`
	DriverID int64   `json:"driver_id" binding:"required"`
	Rating   int     `json:"rating" binding:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
}

// RatingResponse for returning a stored rating
type RatingResponse struct {
	ID        int64     `json:"id"`
	TripID    int64     `json:"trip_id"`
	RiderID   int64     `json:"rider_id"`
	DriverID  int64     `json:"driver_id"`
	Rating    int       `json:"rating"`
	Comment   *string   `json:"comment,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rating model to RatingResponse DTO
func FromModelToRatingResponse(rating *models.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        rating.ID,
		TripID:    rating.TripID,
		RiderID:   rating.RiderID,
		DriverID:  rating.DriverID,
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
		UpdatedAt: rating.UpdatedAt,
	}
}

// HealthResponse for the health endpoint
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}
