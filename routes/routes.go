package routes

import (
	"net/http"
	"strings"
	"time"

	"havenhotel/config"
	"havenhotel/handlers"
	"havenhotel/middleware"
	"havenhotel/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the handlers wired by RegisterRoutes.
type HandlerBundle struct {
	Auth     *handlers.AuthHandler
	Rooms    *handlers.RoomHandler
	Bookings *handlers.BookingHandler
	Reviews  *handlers.ReviewHandler
	Tokens   *utils.TokenManager
}

// route pairs an endpoint with its protection policy. Keeping the whole
// policy in one table stops protected and public routes from drifting apart.
type route struct {
	method    string
	path      string
	protected bool
	handler   gin.HandlerFunc
}

func (hb *HandlerBundle) routeTable() []route {
	return []route{
		{http.MethodPost, "/auth/access-token", false, hb.Auth.AccessTokenHandler},
		{http.MethodGet, "/rooms", false, hb.Rooms.ListRoomsHandler},
		{http.MethodGet, "/rooms/:id", false, hb.Rooms.GetRoomByIDHandler},
		{http.MethodPost, "/user/create-booking", true, hb.Bookings.CreateBookingHandler},
		{http.MethodGet, "/user/bookings", true, hb.Bookings.ListBookingsHandler},
		{http.MethodPut, "/user/manage-booking/:id", true, hb.Bookings.ManageBookingHandler},
		{http.MethodDelete, "/user/cancel-booking/:id", true, hb.Bookings.CancelBookingHandler},
		{http.MethodPost, "/user/review", true, hb.Reviews.CreateReviewHandler},
		{http.MethodGet, "/user/review", false, hb.Reviews.ListReviewsHandler},
		{http.MethodGet, "/user/review/:roomId", false, hb.Reviews.ListRoomReviewsHandler},
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(config.AppConfig.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Server is running...")
	})

	authRequired := middleware.SessionAuth(hb.Tokens)
	api := r.Group("/api/v1")
	for _, rt := range hb.routeTable() {
		if rt.protected {
			api.Handle(rt.method, rt.path, authRequired, rt.handler)
		} else {
			api.Handle(rt.method, rt.path, rt.handler)
		}
	}
}
