package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/courtbook/courtbook/internal/service"
)

type CourtHandler struct {
	bookings *service.BookingService
}

func NewCourtHandler(bookings *service.BookingService) *CourtHandler {
	return &CourtHandler{bookings: bookings}
}

// GET /api/courts  (public)
func (h *CourtHandler) List(c *gin.Context) {
	courts, err := h.bookings.Courts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "temporary server problem"})
		return
	}
	c.JSON(http.StatusOK, courts)
}
