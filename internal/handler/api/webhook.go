package api

import (
	"errors"
	"net/http"

	"clinic-agenda/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type WebhookHandler struct {
	gateway commands.PaymentGateway
	confirm commands.ConfirmationCommands
}

func NewWebhookHandler(gateway commands.PaymentGateway, confirm commands.ConfirmationCommands) *WebhookHandler {
	return &WebhookHandler{gateway: gateway, confirm: confirm}
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// HandleGatewayEvent ingests payment notifications. The event payload is
// only a pointer: the payment object is re-fetched from the provider before
// anything is trusted. Duplicate and out-of-order deliveries are safe.
func (h *WebhookHandler) HandleGatewayEvent(c *gin.Context) {
	var evt webhookEvent
	if err := c.ShouldBindJSON(&evt); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid event format",
		})
		return
	}

	if evt.Type != "payment" || evt.Data.ID == "" {
		// Not a payment event; acknowledge so the provider stops retrying.
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	gp, err := h.gateway.FetchPayment(c.Request.Context(), evt.Data.ID)
	if err != nil {
		// A 5xx makes the provider redeliver once the API is reachable.
		c.JSON(http.StatusBadGateway, gin.H{
			"error": "Failed to fetch payment",
		})
		return
	}

	if err := h.confirm.ApplyGatewayStatus(c.Request.Context(), gp); err != nil {
		switch {
		case errors.Is(err, commands.ErrPaymentNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Unknown payment reference",
			})
		case errors.Is(err, commands.ErrAmountMismatch):
			// Never folded in; the raw event stays in the provider
			// dashboard for investigation.
			c.JSON(http.StatusConflict, gin.H{
				"error": "Payment amount does not match",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
