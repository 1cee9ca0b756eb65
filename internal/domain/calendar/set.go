package calendar

import (
	"slices"

	"hotel-booking/internal/pkg/errs"
)

// Expand lists every day from checkIn to checkOut inclusive, ascending.
func Expand(checkIn, checkOut Date) ([]Date, error) {
	if checkOut.Before(checkIn) {
		return nil, errs.Wrapf(errs.ErrInvalidRange, "expand %s..%s", checkIn, checkOut)
	}
	dates := make([]Date, 0, 8)
	for d := checkIn; !d.After(checkOut); d = d.AddDays(1) {
		dates = append(dates, d)
	}
	return dates, nil
}

// DateSet is an immutable set of occupied days. Operations return new sets.
type DateSet struct {
	days map[Date]struct{}
}

func NewDateSet(dates ...Date) DateSet {
	days := make(map[Date]struct{}, len(dates))
	for _, d := range dates {
		days[d] = struct{}{}
	}
	return DateSet{days: days}
}

func (s DateSet) Len() int { return len(s.days) }

func (s DateSet) Contains(d Date) bool {
	_, ok := s.days[d]
	return ok
}

// Union adds dates; a day already present stays present once.
func (s DateSet) Union(dates []Date) DateSet {
	out := s.clone(len(dates))
	for _, d := range dates {
		out.days[d] = struct{}{}
	}
	return out
}

// Difference removes dates. Removing a day that is not in the set fails with
// ErrInconsistentState and leaves the receiver untouched.
func (s DateSet) Difference(dates []Date) (DateSet, error) {
	var missing []Date
	for _, d := range dates {
		if !s.Contains(d) {
			missing = append(missing, d)
		}
	}
	if len(missing) > 0 {
		return s, errs.Wrapf(errs.ErrInconsistentState, "dates %v are not booked", missing)
	}
	out := s.clone(0)
	for _, d := range dates {
		delete(out.days, d)
	}
	return out, nil
}

func (s DateSet) Overlaps(dates []Date) bool {
	for _, d := range dates {
		if s.Contains(d) {
			return true
		}
	}
	return false
}

// Sorted returns the days in ascending order.
func (s DateSet) Sorted() []Date {
	out := make([]Date, 0, len(s.days))
	for d := range s.days {
		out = append(out, d)
	}
	slices.SortFunc(out, Date.Compare)
	return out
}

func (s DateSet) Equal(other DateSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for d := range s.days {
		if !other.Contains(d) {
			return false
		}
	}
	return true
}

func (s DateSet) clone(extra int) DateSet {
	days := make(map[Date]struct{}, len(s.days)+extra)
	for d := range s.days {
		days[d] = struct{}{}
	}
	return DateSet{days: days}
}
