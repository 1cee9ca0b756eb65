package user

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type User struct {
	id           uuid.UUID
	username     Username
	email        Email
	passwordHash string
	roles        []Role
	createdAt    time.Time
}

func NewUser(username Username, email Email, passwordHash string, roles []Role, now time.Time) *User {
	if len(roles) == 0 {
		roles = []Role{RoleUser}
	}
	return &User{
		id:           uuid.New(),
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		roles:        slices.Clone(roles),
		createdAt:    now,
	}
}

// ReconstructUser rebuilds a persisted user without re-validating it.
func ReconstructUser(id uuid.UUID, username, email, passwordHash string, roles []Role, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     Username{value: username},
		email:        Email{value: email},
		passwordHash: passwordHash,
		roles:        slices.Clone(roles),
		createdAt:    createdAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() Username   { return u.username }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Roles() []Role        { return slices.Clone(u.roles) }
func (u *User) CreatedAt() time.Time { return u.createdAt }

func (u *User) HasRole(r Role) bool {
	return slices.Contains(u.roles, r)
}

func (u *User) IsAdmin() bool {
	return u.HasRole(RoleAdmin)
}

// CanActOn reports whether u may act on a resource owned by ownerID.
func (u *User) CanActOn(ownerID uuid.UUID) bool {
	return u.IsAdmin() || u.id == ownerID
}
