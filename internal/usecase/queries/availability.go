package queries

import (
	"context"
	"time"

	"clinic-agenda/internal/domain/schedule"
	"clinic-agenda/internal/infra"
	"clinic-agenda/internal/pkg/clock"
	"clinic-agenda/internal/pkg/config"
	"clinic-agenda/internal/pkg/errs"
	"clinic-agenda/internal/usecase/shared"
)

var (
	ErrLinkNotFound    = errs.New("booking link not found")
	ErrInvalidRange    = errs.New("invalid date range")
	ErrRangeTooLarge   = errs.New("date range exceeds 31 days")
	ErrScheduleFailure = errs.New("failed to compute availability")
)

const maxRangeDays = 31

type SlotView struct {
	StartAt time.Time `json:"start_at"`
	EndAt   time.Time `json:"end_at"`
}

type AvailabilityQueries interface {
	// ListSlots computes bookable slots for a public link over an inclusive
	// date range of at most 31 days. The result is an advisory snapshot.
	ListSlots(ctx context.Context, linkToken, startDate, endDate string) ([]SlotView, error)
}

type availabilityQueriesImpl struct {
	reads shared.CommandReads
	clock clock.Clock
	cfg   config.BookingConfig
}

func NewAvailabilityQueries(reads shared.CommandReads, clk clock.Clock, cfg config.BookingConfig) AvailabilityQueries {
	return &availabilityQueriesImpl{
		reads: reads,
		clock: clk,
		cfg:   cfg,
	}
}

func (q *availabilityQueriesImpl) ListSlots(ctx context.Context, linkToken, startDate, endDate string) ([]SlotView, error) {
	from, to, err := parseRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	svc, err := q.reads.LinkByToken(ctx, linkToken)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLinkNotFound
		}
		return nil, errs.Mark(err, ErrScheduleFailure)
	}
	if !svc.Active {
		return nil, ErrLinkNotFound
	}

	rules, err := q.reads.RulesForProfessional(ctx, svc.ProfessionalID)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}
	exceptions, err := q.reads.ExceptionsBetween(ctx, svc.ProfessionalID, from, to)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}

	defaultStart, err := schedule.ParseLocalTime(q.cfg.DefaultDayStart)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}
	defaultEnd, err := schedule.ParseLocalTime(q.cfg.DefaultDayEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}

	now := q.clock.Now()
	candidates, err := schedule.GenerateCandidates(schedule.GeneratorInput{
		Rules:           rules,
		Exceptions:      exceptions,
		ServiceID:       svc.ServiceID,
		Duration:        svc.Duration(),
		MinAdvance:      svc.MinAdvance(),
		TenantTimezone:  svc.Timezone,
		DefaultDayStart: defaultStart,
		DefaultDayEnd:   defaultEnd,
		From:            from,
		To:              to,
		Now:             now,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}

	rangeStart, rangeEnd, err := absoluteBounds(from, to, svc.Timezone)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}

	bookings, err := q.reads.ConfirmedBookingsOverlapping(ctx, svc.ProfessionalID, rangeStart, rangeEnd)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}
	locks, err := q.reads.ActiveLocksOverlapping(ctx, svc.ProfessionalID, rangeStart, rangeEnd, now)
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}

	slots, err := schedule.FilterConflicts(schedule.FilterInput{
		Candidates:     candidates,
		Busy:           append(bookings, locks...),
		Exceptions:     exceptions,
		ServiceID:      svc.ServiceID,
		TenantTimezone: svc.Timezone,
	})
	if err != nil {
		return nil, errs.Mark(err, ErrScheduleFailure)
	}

	views := make([]SlotView, len(slots))
	for i, s := range slots {
		views[i] = SlotView{StartAt: s.StartAt, EndAt: s.EndAt}
	}
	return views, nil
}

func parseRange(startDate, endDate string) (schedule.Date, schedule.Date, error) {
	start, err := time.Parse("2006-01-02", startDate)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, ErrInvalidRange
	}
	end, err := time.Parse("2006-01-02", endDate)
	if err != nil {
		return schedule.Date{}, schedule.Date{}, ErrInvalidRange
	}
	if end.Before(start) {
		return schedule.Date{}, schedule.Date{}, ErrInvalidRange
	}
	if end.Sub(start) >= maxRangeDays*24*time.Hour {
		return schedule.Date{}, schedule.Date{}, ErrRangeTooLarge
	}
	return schedule.DateOf(start), schedule.DateOf(end), nil
}

// absoluteBounds covers the whole inclusive civil range in the tenant's
// zone, for loading bookings and locks that might overlap any candidate.
func absoluteBounds(from, to schedule.Date, tz string) (time.Time, time.Time, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	start := time.Date(from.Year, from.Month, from.Day, 0, 0, 0, 0, loc)
	endDay := to.Next()
	end := time.Date(endDay.Year, endDay.Month, endDay.Day, 0, 0, 0, 0, loc)
	return start, end, nil
}
