package repository

import (
	"context"
	"time"

	"clinic-agenda/internal/domain/actiontoken"
	"clinic-agenda/internal/infra"

	"github.com/google/uuid"
)

type ActionTokenRepository struct {
	db DBTX
}

func NewActionTokenRepository(db DBTX) *ActionTokenRepository {
	return &ActionTokenRepository{db: db}
}

func (r *ActionTokenRepository) Insert(ctx context.Context, t *actiontoken.Token) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO action_tokens (id, booking_id, token_hash, expires_at)
		VALUES ($1, $2, $3, $4)`,
		t.ID(), t.BookingID(), t.HashValue(), t.ExpiresAt(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert action token", err)
	}
	return nil
}

// Consume sets used_at exactly once; the guarded WHERE makes a replayed
// token lose.
func (r *ActionTokenRepository) Consume(ctx context.Context, id uuid.UUID, usedAt time.Time) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE action_tokens SET used_at = $2
		WHERE id = $1 AND used_at IS NULL`,
		id, usedAt,
	)
	if err != nil {
		return false, infra.WrapRepoErr("failed to consume action token", err)
	}
	return tag.RowsAffected() > 0, nil
}
