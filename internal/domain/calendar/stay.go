package calendar

import (
	"hotel-booking/internal/pkg/errs"
)

const secondsPerDay = 24 * 60 * 60

// Stay is an inclusive [CheckIn, CheckOut] range: both ends are occupied days.
type Stay struct {
	checkIn  Date
	checkOut Date
}

func NewStay(checkIn, checkOut Date) (Stay, error) {
	if checkOut.Before(checkIn) {
		return Stay{}, errs.Wrapf(errs.ErrInvalidRange, "stay %s..%s", checkIn, checkOut)
	}
	return Stay{checkIn: checkIn, checkOut: checkOut}, nil
}

func (s Stay) CheckIn() Date  { return s.checkIn }
func (s Stay) CheckOut() Date { return s.checkOut }

// Days counts occupied days, check-out included. Unix seconds are used rather
// than time.Duration, which saturates after roughly 292 years.
func (s Stay) Days() int {
	return int((s.checkOut.Time().Unix()-s.checkIn.Time().Unix())/secondsPerDay) + 1
}

func (s Stay) Dates() []Date {
	dates, _ := Expand(s.checkIn, s.checkOut)
	return dates
}

// StayLimit caps how many days one stay may occupy. Zero or less disables it.
type StayLimit int

// NewStay validates the range and then its length. The length is computed
// arithmetically so an oversized range is never expanded day by day.
func (l StayLimit) NewStay(checkIn, checkOut Date) (Stay, error) {
	stay, err := NewStay(checkIn, checkOut)
	if err != nil {
		return Stay{}, err
	}
	if l > 0 && stay.Days() > int(l) {
		return Stay{}, errs.Wrapf(errs.ErrValidation, "stay of %d days exceeds the %d-day limit", stay.Days(), int(l))
	}
	return stay, nil
}
