package repository

import (
	"errors"

	"feedback-service/internal/http-api/models"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrCheckViolation marks writes rejected by the ratings check constraint.
var ErrCheckViolation = errors.New("check constraint violation")

// RatingRepository defines the interface for rating data operations.
type RatingRepository interface {
	Create(rating *models.Rating) error
	List() ([]models.Rating, error)
	GetByID(id int64) (*models.Rating, error)
	Ping() error
}

// ratingRepository is the GORM implementation of RatingRepository.
type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository creates a new instance of RatingRepository in a GORM implementation
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

// Create a new rating
func (r *ratingRepository) Create(rating *models.Rating) error {
	if err := r.db.Create(rating).Error; err != nil {
		// Postgres class 23 integrity violations come back as PgError; the
		// ratings table carries a CHECK on the rating column (code 23514).
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23514" {
			return ErrCheckViolation
		}
		return err
	}
	return nil
}

// List retrieves all ratings in insertion order
func (r *ratingRepository) List() ([]models.Rating, error) {
	var ratings []models.Rating
	if err := r.db.Order("id ASC").Find(&ratings).Error; err != nil {
		return nil, err
	}
	return ratings, nil
}

// GetByID retrieves a single rating
func (r *ratingRepository) GetByID(id int64) (*models.Rating, error) {
	var rating models.Rating
	// prevent returning a zero-value rating struct on error
	if err := r.db.First(&rating, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rating, nil
}

// Ping verifies database connectivity for the health endpoint
func (r *ratingRepository) Ping() error {
	return r.db.Exec("SELECT 1").Error
}
