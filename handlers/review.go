package handlers

import (
	"net/http"

	"havenhotel/database/repository"
	"havenhotel/middleware"
	"havenhotel/models"
	"havenhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ReviewHandler serves review creation and listing.
type ReviewHandler struct {
	Repo repository.ReviewRepository
}

func NewReviewHandler(repo repository.ReviewRepository) *ReviewHandler {
	return &ReviewHandler{Repo: repo}
}

// CreateReviewHandler handles POST /api/v1/user/review. The author is always
// the authenticated identity; an author field in the body carries no trust
// and is discarded.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	authedEmail, ok := middleware.AuthedEmail(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
		return
	}

	var req struct {
		RoomID  string `json:"roomId" binding:"required"`
		Rating  int    `json:"rating" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review", "roomId and a rating from 1 to 5 are required")
		return
	}

	review := &models.Review{
		ID:      uuid.New().String(),
		RoomID:  req.RoomID,
		Email:   authedEmail,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := h.Repo.Create(review); err != nil {
		storeError(c, "Failed to create review", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": review.ID})
}

// ListReviewsHandler handles GET /api/v1/user/review.
func (h *ReviewHandler) ListReviewsHandler(c *gin.Context) {
	reviews, err := h.Repo.ListAll()
	if err != nil {
		storeError(c, "Failed to list reviews", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// ListRoomReviewsHandler handles GET /api/v1/user/review/:roomId.
func (h *ReviewHandler) ListRoomReviewsHandler(c *gin.Context) {
	reviews, err := h.Repo.ListByRoom(c.Param("roomId"))
	if err != nil {
		storeError(c, "Failed to list reviews", err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}
