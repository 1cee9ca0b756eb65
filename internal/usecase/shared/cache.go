package shared

import (
	"context"

	"github.com/google/uuid"
)

// HotelCacheInvalidator drops cached hotel views after a write commits.
// Implementations are best effort and never fail the command.
type HotelCacheInvalidator interface {
	Invalidate(ctx context.Context, hotelID uuid.UUID)
}

type NopHotelCache struct{}

func (NopHotelCache) Invalidate(context.Context, uuid.UUID) {}
