package request

import (
	"strings"
	"time"

	"clinic-agenda/internal/usecase/commands"
	"clinic-agenda/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateCheckoutRequest struct {
	StartAt   time.Time      `json:"start_at" binding:"required"`
	EndAt     time.Time      `json:"end_at" binding:"required"`
	Patient   PatientRequest `json:"patient" binding:"required"`
	ReturnURL *string        `json:"return_url,omitempty"`
}

// PatientRequest carries the customer intake form. Every field is required;
// partial patient records are not accepted at checkout.
type PatientRequest struct {
	FullName       string `json:"full_name" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	DocumentNumber string `json:"document_number" binding:"required"`
	BirthDate      string `json:"birth_date" binding:"required"`
	Gender         string `json:"gender" binding:"required"`
	AddressLine    string `json:"address_line" binding:"required"`
	City           string `json:"city" binding:"required"`
	State          string `json:"state" binding:"required"`
}

func (r CreateCheckoutRequest) ToParams(linkToken string, idempotencyKey uuid.UUID) (commands.CreateCheckoutParams, error) {
	birthDate, err := time.Parse("2006-01-02", r.Patient.BirthDate)
	if err != nil {
		return commands.CreateCheckoutParams{}, err
	}

	return commands.CreateCheckoutParams{
		LinkToken:      linkToken,
		StartAt:        r.StartAt,
		EndAt:          r.EndAt,
		CustomerName:   strings.TrimSpace(r.Patient.FullName),
		CustomerEmail:  strings.TrimSpace(r.Patient.Email),
		IdempotencyKey: idempotencyKey,
		ReturnURL:      r.ReturnURL,
		Patient: shared.PatientDraft{
			FullName:       strings.TrimSpace(r.Patient.FullName),
			Email:          strings.TrimSpace(r.Patient.Email),
			Phone:          strings.TrimSpace(r.Patient.Phone),
			DocumentNumber: strings.TrimSpace(r.Patient.DocumentNumber),
			BirthDate:      birthDate,
			Gender:         r.Patient.Gender,
			AddressLine:    strings.TrimSpace(r.Patient.AddressLine),
			City:           strings.TrimSpace(r.Patient.City),
			State:          strings.TrimSpace(r.Patient.State),
		},
	}, nil
}

type RescheduleRequest struct {
	StartAt time.Time `json:"start_at" binding:"required"`
	EndAt   time.Time `json:"end_at" binding:"required"`
}
