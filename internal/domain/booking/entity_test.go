//go:build unit

package booking_test

import (
	"testing"
	"time"

	"clinic-agenda/internal/domain/booking"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2026, time.March, 9, 12, 0, 0, 0, time.UTC)

func mustSlot(t *testing.T, start time.Time, d time.Duration) booking.TimeSlot {
	t.Helper()
	slot, err := booking.NewTimeSlot(start, start.Add(d))
	require.NoError(t, err)
	return slot
}

func TestTimeSlot(t *testing.T) {
	t.Run("rejects inverted and empty ranges", func(t *testing.T) {
		_, err := booking.NewTimeSlot(baseTime, baseTime)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)

		_, err = booking.NewTimeSlot(baseTime.Add(time.Hour), baseTime)
		assert.ErrorIs(t, err, booking.ErrInvalidTimeSlot)
	})

	t.Run("validates exact duration", func(t *testing.T) {
		slot := mustSlot(t, baseTime, time.Hour)

		assert.NoError(t, slot.ValidateExactDuration(time.Hour))
		assert.ErrorIs(t, slot.ValidateExactDuration(30*time.Minute), booking.ErrDurationMismatch)
		assert.ErrorIs(t, slot.ValidateExactDuration(90*time.Minute), booking.ErrDurationMismatch)
	})

	t.Run("validates lead time against a fixed now", func(t *testing.T) {
		slot := mustSlot(t, baseTime, time.Hour)

		assert.NoError(t, slot.ValidateLeadTimeAt(baseTime.Add(-25*time.Hour), 24*time.Hour))
		assert.ErrorIs(t, slot.ValidateLeadTimeAt(baseTime.Add(-23*time.Hour), 24*time.Hour), booking.ErrInsufficientLead)
		assert.ErrorIs(t, slot.ValidateLeadTimeAt(baseTime.Add(time.Minute), 0), booking.ErrInsufficientLead)
	})

	t.Run("overlap is half-open", func(t *testing.T) {
		slot := mustSlot(t, baseTime, time.Hour)

		assert.False(t, slot.Overlaps(baseTime.Add(-time.Hour), baseTime))
		assert.False(t, slot.Overlaps(baseTime.Add(time.Hour), baseTime.Add(2*time.Hour)))
		assert.True(t, slot.Overlaps(baseTime.Add(30*time.Minute), baseTime.Add(90*time.Minute)))
		assert.True(t, slot.Overlaps(baseTime.Add(-30*time.Minute), baseTime.Add(30*time.Minute)))
	})
}

func TestLock(t *testing.T) {
	newLock := func(t *testing.T, expiresAt time.Time) *booking.Lock {
		t.Helper()
		return booking.NewLock(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			"Ana Souza", "ana@example.com",
			mustSlot(t, baseTime, time.Hour),
			expiresAt,
		)
	}

	t.Run("starts active with fresh id and token", func(t *testing.T) {
		l := newLock(t, baseTime.Add(15*time.Minute))

		assert.Equal(t, booking.LockStatusActive, l.Status())
		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.NotEqual(t, uuid.Nil, l.Token())
		assert.NotEqual(t, l.ID(), l.Token())
		assert.True(t, l.IsActive(baseTime))
		assert.False(t, l.IsActive(baseTime.Add(15*time.Minute)))
	})

	t.Run("converts exactly once", func(t *testing.T) {
		l := newLock(t, baseTime.Add(15*time.Minute))

		require.NoError(t, l.Convert(baseTime))
		assert.Equal(t, booking.LockStatusConverted, l.Status())
		assert.ErrorIs(t, l.Convert(baseTime), booking.ErrAlreadyFinalized)
	})

	t.Run("rejects conversion past expiry", func(t *testing.T) {
		l := newLock(t, baseTime.Add(15*time.Minute))

		assert.ErrorIs(t, l.Convert(baseTime.Add(15*time.Minute)), booking.ErrLockExpired)
		assert.Equal(t, booking.LockStatusActive, l.Status())
	})

	t.Run("release frees an active hold", func(t *testing.T) {
		l := newLock(t, baseTime.Add(15*time.Minute))

		require.NoError(t, l.Release())
		assert.Equal(t, booking.LockStatusExpired, l.Status())
	})

	t.Run("release of a converted lock fails", func(t *testing.T) {
		l := newLock(t, baseTime.Add(15*time.Minute))

		require.NoError(t, l.Convert(baseTime))
		assert.ErrorIs(t, l.Release(), booking.ErrAlreadyFinalized)
	})
}

func TestBooking(t *testing.T) {
	t.Run("from lock captures fields and links the payment", func(t *testing.T) {
		slot := mustSlot(t, baseTime, time.Hour)
		l := booking.NewLock(
			uuid.New(), uuid.New(), uuid.New(), uuid.New(),
			"Ana Souza", "ana@example.com",
			slot,
			baseTime.Add(15*time.Minute),
		)
		paymentID := uuid.New()

		b := booking.FromLock(l, paymentID)

		assert.True(t, b.IsConfirmed())
		assert.Equal(t, l.TenantID(), b.TenantID())
		assert.Equal(t, l.ServiceID(), b.ServiceID())
		assert.Equal(t, l.ProfessionalID(), b.ProfessionalID())
		assert.Equal(t, l.PatientID(), b.PatientID())
		assert.Equal(t, slot, b.Slot())
		require.NotNil(t, b.PaymentID())
		assert.Equal(t, paymentID, *b.PaymentID())
	})

	t.Run("cancel is terminal", func(t *testing.T) {
		b := booking.NewConfirmed(uuid.New(), uuid.New(), uuid.New(), uuid.New(), mustSlot(t, baseTime, time.Hour), nil)

		require.NoError(t, b.Cancel())
		assert.Equal(t, booking.StatusCancelled, b.Status())
		assert.ErrorIs(t, b.Cancel(), booking.ErrNotCancellable)
	})

	t.Run("reschedule requires confirmed status", func(t *testing.T) {
		b := booking.NewConfirmed(uuid.New(), uuid.New(), uuid.New(), uuid.New(), mustSlot(t, baseTime, time.Hour), nil)
		moved := mustSlot(t, baseTime.Add(24*time.Hour), time.Hour)

		require.NoError(t, b.Reschedule(moved))
		assert.Equal(t, moved, b.Slot())

		require.NoError(t, b.Cancel())
		assert.ErrorIs(t, b.Reschedule(moved), booking.ErrInvalidStatus)
	})
}
