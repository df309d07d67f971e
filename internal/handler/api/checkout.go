package api

import (
	"errors"
	"net/http"

	reqdto "clinic-agenda/internal/handler/dto/request"
	resdto "clinic-agenda/internal/handler/dto/response"
	"clinic-agenda/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutHandler struct {
	checkout commands.CheckoutCommands
}

func NewCheckoutHandler(checkout commands.CheckoutCommands) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CreateCheckout starts a booking for the slot: direct confirmation for
// free services, a lock plus payment redirect otherwise. The Idempotency-Key
// header makes client retries safe.
func (h *CheckoutHandler) CreateCheckout(c *gin.Context) {
	idempotencyKey, err := getIdempotencyKey(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": err.Error(),
		})
		return
	}

	var req reqdto.CreateCheckoutRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	params, err := req.ToParams(c.Param("token"), idempotencyKey)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid birth date format",
		})
		return
	}

	result, err := h.checkout.CreateCheckout(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrLinkNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking link not found",
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
		case errors.Is(err, commands.ErrUpstreamGateway):
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "Payment provider is unavailable",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	status := http.StatusCreated
	if result.IsReplayed {
		status = http.StatusOK
	}
	c.JSON(status, resdto.FromCheckoutResult(result))
}

func getIdempotencyKey(c *gin.Context) (uuid.UUID, error) {
	keyStr := c.GetHeader("Idempotency-Key")
	if keyStr == "" {
		return uuid.Nil, errors.New("Idempotency-Key header is required")
	}

	key, err := uuid.Parse(keyStr)
	if err != nil {
		return uuid.Nil, errors.New("invalid idempotency key format")
	}

	return key, nil
}
