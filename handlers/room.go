package handlers

import (
	"net/http"

	"havenhotel/database/repository"
	"havenhotel/models"
	"havenhotel/utils"

	"github.com/gin-gonic/gin"
)

// RoomHandler serves the read-only room catalog.
type RoomHandler struct {
	Repo repository.RoomRepository
}

func NewRoomHandler(repo repository.RoomRepository) *RoomHandler {
	return &RoomHandler{Repo: repo}
}

// ListRoomsHandler handles GET /api/v1/rooms with optional "search" and
// "sort" (asc/desc over price) query parameters.
func (h *RoomHandler) ListRoomsHandler(c *gin.Context) {
	order := repository.SortNone
	switch c.Query("sort") {
	case "":
	case "asc":
		order = repository.SortPriceAsc
	case "desc":
		order = repository.SortPriceDesc
	default:
		utils.JSONError(c, http.StatusBadRequest, "Invalid request", "sort must be asc or desc")
		return
	}

	rooms, err := h.Repo.List(c.Query("search"), order)
	if err != nil {
		storeError(c, "Failed to list rooms", err)
		return
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	c.JSON(http.StatusOK, rooms)
}

// GetRoomByIDHandler handles GET /api/v1/rooms/:id.
func (h *RoomHandler) GetRoomByIDHandler(c *gin.Context) {
	room, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		storeError(c, "Failed to fetch room", err)
		return
	}
	c.JSON(http.StatusOK, room)
}
