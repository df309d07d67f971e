// Package notify delivers booking lifecycle notifications. Delivery is
// best-effort: a failure is logged and never propagated, so notification
// problems cannot roll back bookings.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"clinic-agenda/internal/usecase/commands"
)

type WebhookNotifier struct {
	endpoint   string
	httpClient *http.Client
}

// NewWebhookNotifier posts events to the tenant-facing endpoint. An empty
// endpoint degrades to log-only delivery.
func NewWebhookNotifier(endpoint string) *WebhookNotifier {
	return &WebhookNotifier{
		endpoint:   endpoint,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

type eventPayload struct {
	Event         string    `json:"event"`
	BookingID     string    `json:"booking_id"`
	TenantID      string    `json:"tenant_id"`
	ServiceName   string    `json:"service_name,omitempty"`
	CustomerName  string    `json:"customer_name"`
	CustomerEmail string    `json:"customer_email"`
	StartAt       time.Time `json:"start_at"`
	EndAt         time.Time `json:"end_at"`
	ActionToken   string    `json:"action_token,omitempty"`
}

func (n *WebhookNotifier) BookingConfirmed(ctx context.Context, bn commands.BookingNotification) {
	n.deliver(ctx, "booking.confirmed", bn)
}

func (n *WebhookNotifier) BookingCancelled(ctx context.Context, bn commands.BookingNotification) {
	n.deliver(ctx, "booking.cancelled", bn)
}

func (n *WebhookNotifier) deliver(ctx context.Context, event string, bn commands.BookingNotification) {
	slog.InfoContext(ctx, "booking notification",
		"event", event,
		"booking_id", bn.BookingID,
		"customer_email", bn.CustomerEmail,
		"start_at", bn.StartAt,
	)
	if n.endpoint == "" {
		return
	}

	payload := eventPayload{
		Event:         event,
		BookingID:     bn.BookingID.String(),
		TenantID:      bn.TenantID.String(),
		ServiceName:   bn.ServiceName,
		CustomerName:  bn.CustomerName,
		CustomerEmail: bn.CustomerEmail,
		StartAt:       bn.StartAt,
		EndAt:         bn.EndAt,
		ActionToken:   bn.ActionToken,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		slog.WarnContext(ctx, "notification encode failed", "event", event, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		slog.WarnContext(ctx, "notification request build failed", "event", event, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		slog.WarnContext(ctx, "notification delivery failed", "event", event, "error", err)
		return
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		slog.WarnContext(ctx, "notification rejected", "event", event, "status", resp.StatusCode)
	}
}

var _ commands.Notifier = (*WebhookNotifier)(nil)
