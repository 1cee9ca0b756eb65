package commands

import (
	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

// authorize lets the owner or an ADMIN act on a resource.
func authorize(requester *user.User, ownerID uuid.UUID) error {
	if requester.CanActOn(ownerID) {
		return nil
	}
	return errs.Wrapf(errs.ErrAccessDenied, "user %s on resource owned by %s", requester.ID(), ownerID)
}
