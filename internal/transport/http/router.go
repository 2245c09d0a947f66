package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/courtbook/courtbook/internal/service"
)

// NewRouter wires the REST surface. Availability reads are public; all
// mutating booking routes sit behind the JWT middleware.
func NewRouter(ids *service.IdentityService, bookings *service.BookingService, corsOrigin string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), CORS(corsOrigin), Observe())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	ah := NewAuthHandler(ids)
	bh := NewBookingHandler(bookings)
	ch := NewCourtHandler(bookings)

	api := r.Group("/api")
	{
		api.POST("/auth/register", ah.Register)
		api.POST("/auth/login", ah.Login)

		api.GET("/courts", ch.List)
		api.GET("/booking/slots", bh.Slots)

		secured := api.Group("")
		secured.Use(JWTAuth(ids))
		{
			secured.POST("/booking/book", bh.Book)
			secured.GET("/bookings", bh.History)
			secured.POST("/bookings/:id/cancel", bh.Cancel)
		}
	}

	return r
}
