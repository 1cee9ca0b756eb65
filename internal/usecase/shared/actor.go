package shared

import (
	"slices"

	"github.com/google/uuid"
)

// Actor is the authenticated caller as carried by the access token.
type Actor struct {
	UserID   uuid.UUID
	Username string
	Roles    []string
}

func (a Actor) IsAdmin() bool {
	return slices.Contains(a.Roles, "ADMIN")
}

func (a Actor) CanAccess(ownerID uuid.UUID) bool {
	return a.IsAdmin() || a.UserID == ownerID
}
