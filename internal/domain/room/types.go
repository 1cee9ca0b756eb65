package room

import (
	"strings"

	"hotel-booking/internal/pkg/errs"
)

type Category string

const (
	CategoryStandard  Category = "STANDARD"
	CategorySuperior  Category = "SUPERIOR"
	CategorySuite     Category = "SUITE"
	CategoryPresident Category = "PRESIDENT"
)

var ErrInvalidCategory = errs.Wrap(errs.ErrValidation, "unknown room category")

func Categories() []Category {
	return []Category{CategoryStandard, CategorySuperior, CategorySuite, CategoryPresident}
}

func (c Category) IsValid() bool {
	switch c {
	case CategoryStandard, CategorySuperior, CategorySuite, CategoryPresident:
		return true
	default:
		return false
	}
}

func (c Category) String() string { return string(c) }

// ParseCategory is case-insensitive.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", ErrInvalidCategory
	}
	return c, nil
}
