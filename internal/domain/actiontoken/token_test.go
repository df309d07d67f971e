//go:build unit

package actiontoken_test

import (
	"testing"
	"time"

	"clinic-agenda/internal/domain/actiontoken"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

func TestIssue(t *testing.T) {
	bookingID := uuid.New()

	token, plaintext, err := actiontoken.Issue(bookingID, now, 72*time.Hour)
	require.NoError(t, err)

	assert.Len(t, plaintext, 64)
	assert.Equal(t, bookingID, token.BookingID())
	assert.Equal(t, now.Add(72*time.Hour), token.ExpiresAt())
	assert.Nil(t, token.UsedAt())

	// The plaintext never appears in the stored entity.
	assert.NotEqual(t, plaintext, token.HashValue())
	assert.Equal(t, actiontoken.Hash(plaintext), token.HashValue())
}

func TestMatches(t *testing.T) {
	token, plaintext, err := actiontoken.Issue(uuid.New(), now, time.Hour)
	require.NoError(t, err)

	assert.True(t, token.Matches(plaintext))
	assert.False(t, token.Matches("not-the-token"))
	assert.False(t, token.Matches(""))
}

func TestConsume(t *testing.T) {
	t.Run("consumes once", func(t *testing.T) {
		token, _, err := actiontoken.Issue(uuid.New(), now, time.Hour)
		require.NoError(t, err)

		require.NoError(t, token.Consume(now.Add(time.Minute)))
		require.NotNil(t, token.UsedAt())
		assert.Equal(t, now.Add(time.Minute), *token.UsedAt())

		assert.ErrorIs(t, token.Consume(now.Add(2*time.Minute)), actiontoken.ErrAlreadyUsed)
	})

	t.Run("rejects expired", func(t *testing.T) {
		token, _, err := actiontoken.Issue(uuid.New(), now, time.Hour)
		require.NoError(t, err)

		assert.ErrorIs(t, token.Consume(now.Add(2*time.Hour)), actiontoken.ErrExpired)
		assert.Nil(t, token.UsedAt())
	})

	t.Run("used wins over expired", func(t *testing.T) {
		used := now
		token := actiontoken.Reconstruct(uuid.New(), uuid.New(), actiontoken.Hash("x"), now.Add(-time.Hour), &used)

		assert.ErrorIs(t, token.Consume(now), actiontoken.ErrAlreadyUsed)
		assert.ErrorIs(t, token.Validate(now), actiontoken.ErrAlreadyUsed)
	})
}

func TestValidate(t *testing.T) {
	token, _, err := actiontoken.Issue(uuid.New(), now, time.Hour)
	require.NoError(t, err)

	assert.NoError(t, token.Validate(now))
	assert.ErrorIs(t, token.Validate(now.Add(2*time.Hour)), actiontoken.ErrExpired)

	// Validation does not consume.
	assert.Nil(t, token.UsedAt())
	assert.NoError(t, token.Consume(now))
}
