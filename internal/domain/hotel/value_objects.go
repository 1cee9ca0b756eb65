package hotel

import (
	"strings"

	"hotel-booking/internal/pkg/errs"
)

const (
	MinRating     = 1
	MaxRating     = 5
	MaxNameLength = 100
)

var (
	ErrInvalidRating   = errs.Wrap(errs.ErrValidation, "rating must be between 1 and 5")
	ErrInvalidName     = errs.Wrap(errs.ErrValidation, "hotel name must be 1-100 characters")
	ErrInvalidDistance = errs.Wrap(errs.ErrValidation, "distance to center must not be negative")
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < MinRating || v > MaxRating {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

func validateName(name string) (string, error) {
	n := strings.TrimSpace(name)
	if n == "" || len(n) > MaxNameLength {
		return "", ErrInvalidName
	}
	return n, nil
}
