package schedule

import (
	"sort"

	"github.com/google/uuid"
)

// FilterInput carries the occupancy snapshot a candidate set is checked
// against. Busy holds confirmed bookings and active unexpired locks in
// absolute time.
type FilterInput struct {
	Candidates []Slot
	Busy       []Interval
	Exceptions []Exception
	ServiceID  uuid.UUID

	// TenantTimezone resolves exception wall-clock times to instants.
	TenantTimezone string
}

// FilterConflicts drops candidates overlapping any busy interval or blocking
// exception, then deduplicates by (start, end) and sorts ascending. The
// result is advisory: a snapshot of availability, not a reservation.
func FilterConflicts(in FilterInput) ([]Slot, error) {
	loc, err := loadLocation(in.TenantTimezone)
	if err != nil {
		return nil, err
	}

	busy := make([]Interval, 0, len(in.Busy))
	busy = append(busy, in.Busy...)

	blockedDays := make(map[Date]struct{})
	for _, e := range in.Exceptions {
		if e.Available || !blockApplies(e, in.ServiceID) {
			continue
		}
		if e.WholeDay() {
			// A whole-day block removes the date regardless of rules.
			blockedDays[e.Date] = struct{}{}
			continue
		}
		busy = append(busy, Interval{
			StartAt: e.Date.At(*e.Start, loc),
			EndAt:   e.Date.At(*e.End, loc),
		})
	}

	// Keyed on instants: candidates from rules in different zones carry
	// distinct *time.Location values for the same absolute slot.
	type slotKey struct{ start, end int64 }
	seen := make(map[slotKey]struct{}, len(in.Candidates))
	var out []Slot
	for _, s := range in.Candidates {
		k := slotKey{s.StartAt.UnixNano(), s.EndAt.UnixNano()}
		if _, dup := seen[k]; dup {
			continue
		}
		if _, blocked := blockedDays[DateOf(s.StartAt.In(loc))]; blocked {
			continue
		}
		if overlapsAny(s, busy) {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartAt.Equal(out[j].StartAt) {
			return out[i].EndAt.Before(out[j].EndAt)
		}
		return out[i].StartAt.Before(out[j].StartAt)
	})

	return out, nil
}

func overlapsAny(s Slot, busy []Interval) bool {
	for _, b := range busy {
		if b.Overlaps(s.StartAt, s.EndAt) {
			return true
		}
	}
	return false
}

// A professional-wide block always applies; a scoped block only hits its own
// service.
func blockApplies(e Exception, serviceID uuid.UUID) bool {
	return e.ServiceID == nil || *e.ServiceID == serviceID
}
