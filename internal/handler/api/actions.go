package api

import (
	"errors"
	"net/http"

	reqdto "clinic-agenda/internal/handler/dto/request"
	resdto "clinic-agenda/internal/handler/dto/response"
	"clinic-agenda/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// ActionHandler serves the customer self-service endpoints reached through
// the one-time manage token from the confirmation notification.
type ActionHandler struct {
	actions commands.ActionCommands
}

func NewActionHandler(actions commands.ActionCommands) *ActionHandler {
	return &ActionHandler{actions: actions}
}

func (h *ActionHandler) GetBooking(c *gin.Context) {
	snap, err := h.actions.Inspect(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.writeActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

func (h *ActionHandler) CancelBooking(c *gin.Context) {
	snap, err := h.actions.Cancel(c.Request.Context(), c.Param("token"))
	if err != nil {
		h.writeActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingSnapshot(snap))
}

func (h *ActionHandler) RescheduleBooking(c *gin.Context) {
	var req reqdto.RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.actions.Reschedule(c.Request.Context(), commands.RescheduleParams{
		Token:   c.Param("token"),
		StartAt: req.StartAt,
		EndAt:   req.EndAt,
	})
	if err != nil {
		h.writeActionError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRescheduleResult(result))
}

func (h *ActionHandler) writeActionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrActionTokenInvalid), errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrActionTokenUsed):
		c.JSON(http.StatusGone, gin.H{
			"error": "This link has already been used",
		})
	case errors.Is(err, commands.ErrActionTokenExpired):
		c.JSON(http.StatusGone, gin.H{
			"error": "This link has expired",
		})
	case errors.Is(err, commands.ErrNotReschedulable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking is not active",
		})
	case errors.Is(err, commands.ErrInvalidTimeSlot):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid time slot",
		})
	case errors.Is(err, commands.ErrDurationMismatch):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot does not match the service duration",
		})
	case errors.Is(err, commands.ErrInsufficientLeadTime):
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Slot does not meet the minimum advance",
		})
	case errors.Is(err, commands.ErrSlotConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Slot is no longer available",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
