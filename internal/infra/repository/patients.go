package repository

import (
	"context"

	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/usecase/shared"

	"github.com/google/uuid"
)

type PatientRepository struct {
	db DBTX
}

func NewPatientRepository(db DBTX) *PatientRepository {
	return &PatientRepository{db: db}
}

// Upsert merges on (tenant, document number) so a returning customer keeps
// one patient record with their latest contact details.
func (r *PatientRepository) Upsert(ctx context.Context, draft shared.PatientDraft) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO patients (
			tenant_id, full_name, email, phone, document_number,
			birth_date, gender, address_line, city, state
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (tenant_id, document_number) DO UPDATE SET
			full_name    = EXCLUDED.full_name,
			email        = EXCLUDED.email,
			phone        = EXCLUDED.phone,
			birth_date   = EXCLUDED.birth_date,
			gender       = EXCLUDED.gender,
			address_line = EXCLUDED.address_line,
			city         = EXCLUDED.city,
			state        = EXCLUDED.state,
			updated_at   = now()
		RETURNING id`,
		draft.TenantID, draft.FullName, draft.Email, draft.Phone, draft.DocumentNumber,
		draft.BirthDate, draft.Gender, draft.AddressLine, draft.City, draft.State,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to upsert patient", err)
	}
	return id, nil
}
