package api

import (
	"errors"
	"net/http"

	resdto "clinic-agenda/internal/handler/dto/response"
	"clinic-agenda/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AvailabilityHandler struct {
	availability queries.AvailabilityQueries
}

func NewAvailabilityHandler(availability queries.AvailabilityQueries) *AvailabilityHandler {
	return &AvailabilityHandler{availability: availability}
}

// ListSlots returns the bookable slots for a public link over a civil date
// range. The payload is an advisory snapshot; checkout re-validates.
func (h *AvailabilityHandler) ListSlots(c *gin.Context) {
	token := c.Param("token")
	from := c.Query("start_date")
	to := c.Query("end_date")
	if from == "" || to == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "start_date and end_date query parameters are required",
		})
		return
	}

	slots, err := h.availability.ListSlots(c.Request.Context(), token, from, to)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking link not found",
			})
		case errors.Is(err, queries.ErrInvalidRange):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date range",
			})
		case errors.Is(err, queries.ErrRangeTooLarge):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Date range exceeds 31 days",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(slots))
}
