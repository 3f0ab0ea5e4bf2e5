package handlers

import (
	"errors"
	"net/http"

	"havenhotel/database/repository"
	"havenhotel/middleware"
	"havenhotel/models"
	"havenhotel/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// BookingHandler serves the owner-scoped booking endpoints. All of them sit
// behind the session middleware.
type BookingHandler struct {
	Repo repository.BookingRepository
}

func NewBookingHandler(repo repository.BookingRepository) *BookingHandler {
	return &BookingHandler{Repo: repo}
}

// CreateBookingHandler handles POST /api/v1/user/create-booking. The body must
// carry the owner email and a room reference; the owner must be the caller.
// Any further fields are stored as-is alongside the typed ones.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	authedEmail, ok := middleware.AuthedEmail(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
		return
	}

	var body map[string]interface{}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", "request body must be a JSON object")
		return
	}

	owner, _ := body["email"].(string)
	roomID, _ := body["roomId"].(string)
	if owner == "" || roomID == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking", "email and roomId are required")
		return
	}
	if owner != authedEmail {
		utils.JSONError(c, http.StatusForbidden, "Forbidden Access", "")
		return
	}

	date, _ := body["date"].(string)
	booking := &models.Booking{
		ID:     uuid.New().String(),
		Email:  owner,
		RoomID: roomID,
		Date:   date,
		Extra:  extraFields(body),
	}

	if err := h.Repo.Create(booking); err != nil {
		storeError(c, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "insertedId": booking.ID})
}

// extraFields strips the typed booking fields out of the raw body, keeping
// whatever else the client sent.
func extraFields(body map[string]interface{}) map[string]interface{} {
	extra := make(map[string]interface{})
	for k, v := range body {
		switch k {
		case "email", "roomId", "date":
		default:
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return nil
	}
	return extra
}

// ListBookingsHandler handles GET /api/v1/user/bookings?email=. The query
// email must equal the authenticated identity; a mismatch is 403 regardless
// of what the query would have matched.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	authedEmail, ok := middleware.AuthedEmail(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
		return
	}

	queryEmail := c.Query("email")
	if queryEmail == "" {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "email query parameter is required")
		return
	}
	if queryEmail != authedEmail {
		utils.JSONError(c, http.StatusForbidden, "Forbidden Access", "")
		return
	}

	bookings, err := h.Repo.ListByEmail(queryEmail)
	if err != nil {
		storeError(c, "Failed to list bookings", err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// ManageBookingHandler handles PUT /api/v1/user/manage-booking/:id. It updates
// the stay date of an existing booking owned by the caller. A missing booking
// is 404; nothing is upserted.
func (h *BookingHandler) ManageBookingHandler(c *gin.Context) {
	authedEmail, ok := middleware.AuthedEmail(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
		return
	}

	var req struct {
		Date string `json:"date" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "date is required")
		return
	}

	id := c.Param("id")
	booking, err := h.Repo.GetByID(id)
	if err != nil {
		storeError(c, "Failed to fetch booking", err)
		return
	}
	if booking.Email != authedEmail {
		utils.JSONError(c, http.StatusForbidden, "Forbidden Access", "")
		return
	}

	if err := h.Repo.UpdateDate(id, req.Date); err != nil {
		storeError(c, "Failed to update booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true})
}

// CancelBookingHandler handles DELETE /api/v1/user/cancel-booking/:id.
// Deleting an id that does not exist is a successful no-op.
func (h *BookingHandler) CancelBookingHandler(c *gin.Context) {
	authedEmail, ok := middleware.AuthedEmail(c)
	if !ok {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized Access"})
		return
	}

	id := c.Param("id")
	booking, err := h.Repo.GetByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": 0})
			return
		}
		storeError(c, "Failed to fetch booking", err)
		return
	}
	if booking.Email != authedEmail {
		utils.JSONError(c, http.StatusForbidden, "Forbidden Access", "")
		return
	}

	deleted, err := h.Repo.Delete(id)
	if err != nil {
		storeError(c, "Failed to delete booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"acknowledged": true, "deletedCount": deleted})
}
