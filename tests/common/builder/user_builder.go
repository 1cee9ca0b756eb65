//go:build unit || e2e

package builder

import (
	"time"

	"hotel-booking/internal/domain/user"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Roles        []string
	CreatedAt    time.Time
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		ID:           uuid.New(),
		Username:     "guest.user",
		Email:        "guest@example.com",
		PasswordHash: "hashed_password",
		Roles:        []string{"USER"},
		CreatedAt:    time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	username, err := user.NewUsername(u.Username)
	if err != nil {
		return nil, err
	}
	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}
	roles, err := user.NewRoles(u.Roles)
	if err != nil {
		return nil, err
	}
	return user.NewUser(username, email, u.PasswordHash, roles, u.CreatedAt), nil
}

// BuildPersisted skips validation, as loading from the database does.
func (u *UserBuilder) BuildPersisted() *user.User {
	roles := make([]user.Role, len(u.Roles))
	for i, r := range u.Roles {
		roles[i] = user.Role(r)
	}
	return user.ReconstructUser(u.ID, u.Username, u.Email, u.PasswordHash, roles, u.CreatedAt)
}

func (u *UserBuilder) BuildView() *queries.UserView {
	return &queries.UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Roles:     append([]string(nil), u.Roles...),
		CreatedAt: u.CreatedAt,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithID(id uuid.UUID) *UserBuilder {
	u.ID = id
	return u
}

func (u *UserBuilder) WithUsername(username string) *UserBuilder {
	u.Username = username
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRoles(roles ...string) *UserBuilder {
	u.Roles = roles
	return u
}

func (u *UserBuilder) AsAdmin() *UserBuilder {
	u.Roles = []string{"ADMIN"}
	return u
}
