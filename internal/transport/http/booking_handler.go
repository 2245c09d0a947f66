package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/courtbook/courtbook/internal/schedule"
	"github.com/courtbook/courtbook/internal/service"
)

type BookingHandler struct {
	bookings *service.BookingService
}

func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

// GET /api/booking/slots?courtId=...&date=...  (public)
func (h *BookingHandler) Slots(c *gin.Context) {
	slots, err := h.bookings.AvailableSlots(c.Request.Context(), c.Query("courtId"), c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "courtId and date are required"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "temporary server problem"})
		return
	}
	c.JSON(http.StatusOK, slots)
}

// POST /api/booking/book  (authenticated)
func (h *BookingHandler) Book(c *gin.Context) {
	var in struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "slotId is required"})
		return
	}

	booking, slot, err := h.bookings.Book(c.Request.Context(), c.GetString("sub"), in.SlotID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "not logged in"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid slotId"})
		case errors.Is(err, service.ErrSlotUnavailable):
			// The normal outcome of a lost race: the client should
			// re-query availability and pick again.
			c.JSON(http.StatusConflict, gin.H{"message": "Slot unavailable"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "temporary server problem"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Booking confirmed",
		"slot":    slot,
		"booking": booking,
	})
}

// GET /api/bookings?page=1&pageSize=20  (authenticated)
func (h *BookingHandler) History(c *gin.Context) {
	bookings, err := h.bookings.UserBookings(c.Request.Context(), c.GetString("sub"))
	if err != nil {
		if errors.Is(err, service.ErrUnauthenticated) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "not logged in"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "temporary server problem"})
		return
	}

	page, _ := strconv.Atoi(c.Query("page"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize"))
	p := schedule.Paginate(bookings, page, pageSize)

	c.JSON(http.StatusOK, gin.H{
		"items":    p.Items,
		"page":     p.Page,
		"pageSize": p.PageSize,
		"total":    p.Total,
		"hasNext":  p.HasNext,
		"hasPrev":  p.HasPrev,
	})
}

// POST /api/bookings/:id/cancel  (authenticated)
func (h *BookingHandler) Cancel(c *gin.Context) {
	booking, err := h.bookings.Cancel(c.Request.Context(), c.GetString("sub"), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"message": "not logged in"})
		case errors.Is(err, service.ErrInvalidInput):
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid booking id"})
		case errors.Is(err, service.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "booking not found"})
		case errors.Is(err, service.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{"message": "forbidden"})
		case errors.Is(err, service.ErrAlreadyCancelled):
			c.JSON(http.StatusConflict, gin.H{"message": "booking already cancelled"})
		default:
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "temporary server problem"})
		}
		return
	}
	c.JSON(http.StatusOK, booking)
}
