// handlers/review.go
package handlers

import (
	"net/http"

	reviewRepo "dochouse/database/repository/review"
	"dochouse/models"
	"dochouse/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// latestReviews caps the public review listing.
const latestReviews = 5

// ReviewHandler serves the review endpoints.
type ReviewHandler struct {
	Repo reviewRepo.ReviewRepository
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(repo reviewRepo.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// ListReviewsHandler handles GET /reviews.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Repo.GetLatest(latestReviews)
	if err != nil {
		utils.GetLogger().Error("Failed to list reviews", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReviewHandler handles POST /reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, utils.ErrBadRequest, err.Error())
		return
	}

	id, err := h.Repo.Create(&review)
	if err != nil {
		utils.GetLogger().Error("Failed to create review", zap.Error(err))
		utils.AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insertedId": id.Hex()})
}
