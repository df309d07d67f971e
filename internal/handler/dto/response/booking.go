package response

import (
	"time"

	"clinic-agenda/internal/usecase/commands"
	"clinic-agenda/internal/usecase/queries"
	"clinic-agenda/internal/usecase/shared"

	"github.com/google/uuid"
)

type SlotResponse struct {
	StartAt time.Time `json:"startAt"`
	EndAt   time.Time `json:"endAt"`
}

type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

func FromSlotViews(views []queries.SlotView) *SlotListResponse {
	slots := make([]SlotResponse, len(views))
	for i, v := range views {
		slots[i] = SlotResponse{StartAt: v.StartAt, EndAt: v.EndAt}
	}
	return &SlotListResponse{Slots: slots}
}

type CheckoutResponse struct {
	Status      string     `json:"status"`
	BookingID   *uuid.UUID `json:"bookingId,omitempty"`
	PaymentID   *uuid.UUID `json:"paymentId,omitempty"`
	LockToken   *uuid.UUID `json:"lockToken,omitempty"`
	RedirectURL *string    `json:"redirectUrl,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Replayed    bool       `json:"replayed,omitempty"`
}

func FromCheckoutResult(r *commands.CheckoutResult) *CheckoutResponse {
	return &CheckoutResponse{
		Status:      string(r.Status),
		BookingID:   r.BookingID,
		PaymentID:   r.PaymentID,
		LockToken:   r.LockToken,
		RedirectURL: r.RedirectURL,
		ExpiresAt:   r.ExpiresAt,
		Replayed:    r.IsReplayed,
	}
}

type BookingResponse struct {
	ID             uuid.UUID `json:"id"`
	ServiceName    string    `json:"serviceName"`
	ProfessionalID uuid.UUID `json:"professionalId"`
	CustomerName   string    `json:"customerName"`
	StartAt        time.Time `json:"startAt"`
	EndAt          time.Time `json:"endAt"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"createdAt"`
}

func FromBookingSnapshot(s *shared.BookingSnapshot) *BookingResponse {
	return &BookingResponse{
		ID:             s.ID,
		ServiceName:    s.ServiceName,
		ProfessionalID: s.ProfessionalID,
		CustomerName:   s.CustomerName,
		StartAt:        s.StartAt,
		EndAt:          s.EndAt,
		Status:         s.Status,
		CreatedAt:      s.CreatedAt,
	}
}

type RescheduleResponse struct {
	Booking  *BookingResponse `json:"booking"`
	NewToken string           `json:"newToken"`
}

func FromRescheduleResult(r *commands.RescheduleResult) *RescheduleResponse {
	return &RescheduleResponse{
		Booking:  FromBookingSnapshot(r.Booking),
		NewToken: r.NewToken,
	}
}

type JobRunResponse struct {
	LocksExpired    int64 `json:"locksExpired,omitempty"`
	PaymentsExpired int64 `json:"paymentsExpired,omitempty"`
	Checked         int   `json:"checked,omitempty"`
	Resolved        int   `json:"resolved,omitempty"`
	Failed          int   `json:"failed,omitempty"`
}
