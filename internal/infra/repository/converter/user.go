package converter

import (
	"hotel-booking/internal/domain/user"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Username:     u.Username().Value(),
		Email:        u.Email().Value(),
		PasswordHash: u.PasswordHash(),
		Roles:        user.RoleStrings(u.Roles()),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	}
}

func UserFromRow(row sqlc.Users) *user.User {
	roles := make([]user.Role, len(row.Roles))
	for i, r := range row.Roles {
		roles[i] = user.Role(r)
	}
	return user.ReconstructUser(row.ID, row.Username, row.Email, row.PasswordHash, roles, pgconv.TimeFromPgtype(row.CreatedAt))
}
