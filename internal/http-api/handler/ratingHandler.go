package handler

import (
	"errors"
	"net/http"
	"strconv"

	"feedback-service/internal/http-api/dto"
	"feedback-service/internal/http-api/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{
		ratingService: ratingService,
	}
}

// RegisterRoutes registers rating-related routes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup) {
	ratings := router.Group("/ratings")
	{
		ratings.GET("", h.List)           // Get all ratings
		ratings.GET("/:rating_id", h.Get) // Get a single rating
		ratings.POST("", h.Create)        // Submit a rating
	}
}

// Create persists a new trip rating
// POST /v1/ratings
func (h *RatingHandler) Create(c *gin.Context) {
	var req dto.CreateRatingDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	rating, err := h.ratingService.CreateRating(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRiderNotFound), errors.Is(err, service.ErrTripNotCompleted):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrInvalidRating):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save rating to database."})
		}
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// Get retrieves a single rating by id
// GET /v1/ratings/:rating_id
func (h *RatingHandler) Get(c *gin.Context) {
	// Ids are numeric; anything else can never match a stored rating
	ratingID, err := strconv.ParseInt(c.Param("rating_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Rating with ID " + c.Param("rating_id") + " not found"})
		return
	}

	rating, err := h.ratingService.GetRating(c.Request.Context(), ratingID)
	if err != nil {
		if errors.Is(err, service.ErrRatingNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Rating with ID " + c.Param("rating_id") + " not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve rating from the database."})
		return
	}

	c.JSON(http.StatusOK, rating)
}

// List retrieves all ratings in insertion order
// GET /v1/ratings
func (h *RatingHandler) List(c *gin.Context) {
	ratings, err := h.ratingService.ListRatings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve ratings from the database."})
		return
	}

	c.JSON(http.StatusOK, ratings)
}
