package schedule

import (
	"time"

	"github.com/google/uuid"
)

// GeneratorInput bounds one candidate-slot computation. Rules and Exceptions
// hold everything loaded for the professional over [From, To]; scoping to the
// service happens here.
type GeneratorInput struct {
	Rules      []Rule
	Exceptions []Exception
	ServiceID  uuid.UUID
	Duration   time.Duration
	MinAdvance time.Duration

	// TenantTimezone resolves rule windows without their own zone and
	// exception wall-clock times.
	TenantTimezone string

	// Default window applied when an availability-adding exception covers
	// the whole day without explicit times.
	DefaultDayStart LocalTime
	DefaultDayEnd   LocalTime

	From Date
	To   Date
	Now  time.Time
}

// GenerateCandidates expands recurring rules and availability-adding
// exceptions into duration-sized candidate slots over the date range.
// Duplicates are possible; blocking exceptions, bookings and locks are the
// conflict filter's concern.
//
// When the service has no scoped rules and no scoped adding exceptions, the
// professional-wide (unscoped) ones apply instead. Scoped rows that exist but
// yield nothing still suppress the fallback: an intentionally empty scoped
// agenda must not leak professional-wide hours.
func GenerateCandidates(in GeneratorInput) ([]Slot, error) {
	if in.Duration <= 0 {
		return nil, ErrInvalidWindow
	}

	rules, adds := scopeToService(in.Rules, in.Exceptions, in.ServiceID)
	cutoff := in.Now.Add(in.MinAdvance)

	var out []Slot
	for day := in.From; !day.After(in.To); day = day.Next() {
		for _, r := range rules {
			if r.Weekday != day.Weekday() {
				continue
			}
			if r.End <= r.Start {
				return nil, ErrInvalidWindow
			}
			loc, err := loadLocation(ruleTimezone(r, in.TenantTimezone))
			if err != nil {
				return nil, err
			}
			out = appendWindowSlots(out, day, r.Start, r.End, loc, in.Duration, cutoff)
		}

		for _, e := range adds {
			if !e.Date.Equal(day) {
				continue
			}
			start, end := e.Window(in.DefaultDayStart, in.DefaultDayEnd)
			if end <= start {
				continue
			}
			loc, err := loadLocation(in.TenantTimezone)
			if err != nil {
				return nil, err
			}
			out = appendWindowSlots(out, day, start, end, loc, in.Duration, cutoff)
		}
	}

	return out, nil
}

// Window returns the exception's local window, substituting the defaults for
// a whole-day availability grant.
func (e Exception) Window(defaultStart, defaultEnd LocalTime) (LocalTime, LocalTime) {
	if e.WholeDay() {
		return defaultStart, defaultEnd
	}
	return *e.Start, *e.End
}

// appendWindowSlots slices [start, end) into contiguous duration-sized slots
// anchored at the window start. A trailing partial slot is discarded, as is
// anything starting before the min-advance cutoff.
func appendWindowSlots(out []Slot, day Date, start, end LocalTime, loc *time.Location, duration time.Duration, cutoff time.Time) []Slot {
	windowStart := day.At(start, loc)
	windowEnd := day.At(end, loc)

	for s := windowStart; !s.Add(duration).After(windowEnd); s = s.Add(duration) {
		if s.Before(cutoff) {
			continue
		}
		out = append(out, Slot{StartAt: s, EndAt: s.Add(duration)})
	}
	return out
}

func scopeToService(rules []Rule, exceptions []Exception, serviceID uuid.UUID) ([]Rule, []Exception) {
	var scopedRules, unscopedRules []Rule
	for _, r := range rules {
		switch {
		case r.ServiceID == nil:
			unscopedRules = append(unscopedRules, r)
		case *r.ServiceID == serviceID:
			scopedRules = append(scopedRules, r)
		}
	}

	var scopedAdds, unscopedAdds []Exception
	for _, e := range exceptions {
		if !e.Available {
			continue
		}
		switch {
		case e.ServiceID == nil:
			unscopedAdds = append(unscopedAdds, e)
		case *e.ServiceID == serviceID:
			scopedAdds = append(scopedAdds, e)
		}
	}

	if len(scopedRules) == 0 && len(scopedAdds) == 0 {
		return unscopedRules, unscopedAdds
	}
	return scopedRules, scopedAdds
}

func ruleTimezone(r Rule, tenantTZ string) string {
	if r.Timezone != "" {
		return r.Timezone
	}
	return tenantTZ
}
