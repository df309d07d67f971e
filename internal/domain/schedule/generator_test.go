//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"clinic-agenda/internal/domain/schedule"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lt(hour, minute int) schedule.LocalTime {
	return schedule.LocalTime(hour*60 + minute)
}

func utc(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

func slotStartsUTC(slots []schedule.Slot) []time.Time {
	out := make([]time.Time, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.StartAt.UTC())
	}
	return out
}

func TestGenerateCandidates(t *testing.T) {
	professionalID := uuid.New()
	serviceID := uuid.New()

	baseInput := func() schedule.GeneratorInput {
		return schedule.GeneratorInput{
			ServiceID:       serviceID,
			Duration:        time.Hour,
			TenantTimezone:  "America/Sao_Paulo",
			DefaultDayStart: lt(8, 0),
			DefaultDayEnd:   lt(18, 0),
			From:            schedule.NewDate(2026, time.March, 9),
			To:              schedule.NewDate(2026, time.March, 9),
			Now:             utc(2026, time.March, 1, 0, 0),
		}
	}

	t.Run("expands a rule window into contiguous slots in UTC", func(t *testing.T) {
		in := baseInput()
		in.Rules = []schedule.Rule{{
			ID:             uuid.New(),
			ProfessionalID: professionalID,
			Weekday:        time.Monday,
			Start:          lt(9, 0),
			End:            lt(12, 0),
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)

		// Sao Paulo is UTC-3, so 09:00 local is 12:00Z.
		want := []time.Time{
			utc(2026, time.March, 9, 12, 0),
			utc(2026, time.March, 9, 13, 0),
			utc(2026, time.March, 9, 14, 0),
		}
		if diff := cmp.Diff(want, slotStartsUTC(slots)); diff != "" {
			t.Errorf("slot starts mismatch (-want +got):\n%s", diff)
		}
		for _, s := range slots {
			assert.Equal(t, time.Hour, s.EndAt.Sub(s.StartAt))
		}
	})

	t.Run("discards trailing partial slot", func(t *testing.T) {
		in := baseInput()
		in.Rules = []schedule.Rule{{
			ProfessionalID: professionalID,
			Weekday:        time.Monday,
			Start:          lt(9, 0),
			End:            lt(10, 30),
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, utc(2026, time.March, 9, 12, 0), slots[0].StartAt.UTC())
	})

	t.Run("spring-forward day yields only the absolute hours that exist", func(t *testing.T) {
		// New York loses 02:00-03:00 on 2026-03-08. A 01:00-04:00 wall
		// window spans two absolute hours, not three.
		in := baseInput()
		in.TenantTimezone = "America/New_York"
		in.From = schedule.NewDate(2026, time.March, 8)
		in.To = in.From
		in.Rules = []schedule.Rule{{
			ProfessionalID: professionalID,
			Weekday:        time.Sunday,
			Start:          lt(1, 0),
			End:            lt(4, 0),
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			utc(2026, time.March, 8, 6, 0),
			utc(2026, time.March, 8, 7, 0),
		}, slotStartsUTC(slots))
	})

	t.Run("fall-back day yields the repeated absolute hour", func(t *testing.T) {
		// New York repeats 01:00-02:00 on 2026-11-01: a 00:00-03:00 wall
		// window covers four absolute hours.
		in := baseInput()
		in.TenantTimezone = "America/New_York"
		in.From = schedule.NewDate(2026, time.November, 1)
		in.To = in.From
		in.Rules = []schedule.Rule{{
			ProfessionalID: professionalID,
			Weekday:        time.Sunday,
			Start:          lt(0, 0),
			End:            lt(3, 0),
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		assert.Len(t, slots, 4)
		assert.Equal(t, utc(2026, time.November, 1, 4, 0), slots[0].StartAt.UTC())
		assert.Equal(t, utc(2026, time.November, 1, 8, 0), slots[3].EndAt.UTC())
	})

	t.Run("rule timezone overrides tenant timezone", func(t *testing.T) {
		in := baseInput()
		in.Rules = []schedule.Rule{{
			ProfessionalID: professionalID,
			Weekday:        time.Monday,
			Start:          lt(9, 0),
			End:            lt(10, 0),
			Timezone:       "UTC",
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, utc(2026, time.March, 9, 9, 0), slots[0].StartAt.UTC())
	})

	t.Run("min advance drops slots before the cutoff", func(t *testing.T) {
		in := baseInput()
		in.TenantTimezone = "UTC"
		in.MinAdvance = time.Hour
		in.Now = utc(2026, time.March, 9, 8, 30)
		in.Rules = []schedule.Rule{{
			ProfessionalID: professionalID,
			Weekday:        time.Monday,
			Start:          lt(9, 0),
			End:            lt(12, 0),
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			utc(2026, time.March, 9, 10, 0),
			utc(2026, time.March, 9, 11, 0),
		}, slotStartsUTC(slots))
	})

	t.Run("whole-day availability exception uses the default window", func(t *testing.T) {
		in := baseInput()
		in.TenantTimezone = "UTC"
		in.DefaultDayStart = lt(8, 0)
		in.DefaultDayEnd = lt(10, 0)
		in.Exceptions = []schedule.Exception{{
			ProfessionalID: professionalID,
			Date:           schedule.NewDate(2026, time.March, 9),
			Available:      true,
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			utc(2026, time.March, 9, 8, 0),
			utc(2026, time.March, 9, 9, 0),
		}, slotStartsUTC(slots))
	})

	t.Run("timed availability exception adds its own window", func(t *testing.T) {
		start := lt(14, 0)
		end := lt(16, 0)
		in := baseInput()
		in.TenantTimezone = "UTC"
		in.Exceptions = []schedule.Exception{{
			ProfessionalID: professionalID,
			Date:           schedule.NewDate(2026, time.March, 9),
			Start:          &start,
			End:            &end,
			Available:      true,
		}}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		assert.Equal(t, []time.Time{
			utc(2026, time.March, 9, 14, 0),
			utc(2026, time.March, 9, 15, 0),
		}, slotStartsUTC(slots))
	})

	t.Run("scoped rules replace professional-wide ones", func(t *testing.T) {
		scoped := serviceID
		in := baseInput()
		in.TenantTimezone = "UTC"
		in.Rules = []schedule.Rule{
			{
				ProfessionalID: professionalID,
				Weekday:        time.Monday,
				Start:          lt(9, 0),
				End:            lt(12, 0),
			},
			{
				ProfessionalID: professionalID,
				ServiceID:      &scoped,
				Weekday:        time.Monday,
				Start:          lt(15, 0),
				End:            lt(16, 0),
			},
		}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, utc(2026, time.March, 9, 15, 0), slots[0].StartAt.UTC())
	})

	t.Run("scoped rules that match no day still suppress the fallback", func(t *testing.T) {
		scoped := serviceID
		in := baseInput()
		in.TenantTimezone = "UTC"
		in.Rules = []schedule.Rule{
			{
				ProfessionalID: professionalID,
				Weekday:        time.Monday,
				Start:          lt(9, 0),
				End:            lt(12, 0),
			},
			{
				ProfessionalID: professionalID,
				ServiceID:      &scoped,
				Weekday:        time.Tuesday,
				Start:          lt(9, 0),
				End:            lt(10, 0),
			},
		}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("rules scoped to another service fall back to professional-wide", func(t *testing.T) {
		other := uuid.New()
		in := baseInput()
		in.TenantTimezone = "UTC"
		in.Rules = []schedule.Rule{
			{
				ProfessionalID: professionalID,
				Weekday:        time.Monday,
				Start:          lt(9, 0),
				End:            lt(10, 0),
			},
			{
				ProfessionalID: professionalID,
				ServiceID:      &other,
				Weekday:        time.Monday,
				Start:          lt(15, 0),
				End:            lt(16, 0),
			},
		}

		slots, err := schedule.GenerateCandidates(in)
		require.NoError(t, err)
		require.Len(t, slots, 1)
		assert.Equal(t, utc(2026, time.March, 9, 9, 0), slots[0].StartAt.UTC())
	})

	t.Run("rejects non-positive duration", func(t *testing.T) {
		in := baseInput()
		in.Duration = 0

		_, err := schedule.GenerateCandidates(in)
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("rejects inverted rule window", func(t *testing.T) {
		in := baseInput()
		in.Rules = []schedule.Rule{{
			ProfessionalID: professionalID,
			Weekday:        time.Monday,
			Start:          lt(12, 0),
			End:            lt(9, 0),
		}}

		_, err := schedule.GenerateCandidates(in)
		assert.ErrorIs(t, err, schedule.ErrInvalidWindow)
	})

	t.Run("rejects unknown timezone", func(t *testing.T) {
		in := baseInput()
		in.TenantTimezone = "Mars/Olympus_Mons"
		in.Rules = []schedule.Rule{{
			ProfessionalID: professionalID,
			Weekday:        time.Monday,
			Start:          lt(9, 0),
			End:            lt(10, 0),
		}}

		_, err := schedule.GenerateCandidates(in)
		assert.ErrorIs(t, err, schedule.ErrUnknownTimezone)
	})
}

func TestLocalTime(t *testing.T) {
	t.Run("parses HH:MM", func(t *testing.T) {
		parsed, err := schedule.ParseLocalTime("09:30")
		require.NoError(t, err)
		assert.Equal(t, 9, parsed.Hour())
		assert.Equal(t, 30, parsed.Minute())
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		_, err := schedule.NewLocalTime(24, 0)
		assert.ErrorIs(t, err, schedule.ErrInvalidLocalTime)

		_, err = schedule.NewLocalTime(10, 60)
		assert.ErrorIs(t, err, schedule.ErrInvalidLocalTime)

		_, err = schedule.ParseLocalTime("banana")
		assert.ErrorIs(t, err, schedule.ErrInvalidLocalTime)
	})
}
