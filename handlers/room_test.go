package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"havenhotel/database/repository"
	"havenhotel/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roomRouter(repo repository.RoomRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewRoomHandler(repo)
	r := gin.New()
	r.GET("/api/v1/rooms", h.ListRoomsHandler)
	r.GET("/api/v1/rooms/:id", h.GetRoomByIDHandler)
	return r
}

func testCatalog() *repository.MemoryRoomRepo {
	return repository.NewMemoryRoomRepo(
		models.Room{ID: "r1", Name: "Deluxe Suite", PricePerNight: 120, Available: true},
		models.Room{ID: "r2", Name: "Garden View", PricePerNight: 80, Available: true},
		models.Room{ID: "r3", Name: "Ocean Villa", PricePerNight: 200, Available: false},
	)
}

func listRooms(t *testing.T, r *gin.Engine, target string) []models.Room {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var rooms []models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rooms))
	return rooms
}

func TestListRoomsSortAsc(t *testing.T) {
	r := roomRouter(testCatalog())

	rooms := listRooms(t, r, "/api/v1/rooms?sort=asc")
	require.Len(t, rooms, 3)
	for i := 1; i < len(rooms); i++ {
		assert.LessOrEqual(t, rooms[i-1].PricePerNight, rooms[i].PricePerNight)
	}
}

func TestListRoomsSortDesc(t *testing.T) {
	r := roomRouter(testCatalog())

	rooms := listRooms(t, r, "/api/v1/rooms?sort=desc")
	require.Len(t, rooms, 3)
	for i := 1; i < len(rooms); i++ {
		assert.GreaterOrEqual(t, rooms[i-1].PricePerNight, rooms[i].PricePerNight)
	}
}

func TestListRoomsSearch(t *testing.T) {
	r := roomRouter(testCatalog())

	rooms := listRooms(t, r, "/api/v1/rooms?search=villa")
	require.Len(t, rooms, 1)
	assert.Equal(t, "Ocean Villa", rooms[0].Name)

	rooms = listRooms(t, r, "/api/v1/rooms?search=penthouse")
	assert.Empty(t, rooms)
}

func TestListRoomsInvalidSort(t *testing.T) {
	r := roomRouter(testCatalog())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms?sort=sideways", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetRoomByID(t *testing.T) {
	r := roomRouter(testCatalog())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/r2", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var room models.Room
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &room))
	assert.Equal(t, "Garden View", room.Name)
}

func TestGetRoomByIDNotFound(t *testing.T) {
	r := roomRouter(testCatalog())

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/rooms/missing", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}
