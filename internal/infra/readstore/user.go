package readstore

import (
	"context"

	"hotel-booking/internal/infra"
	sqlc "hotel-booking/internal/infra/sqlc/generated"
	"hotel-booking/internal/pkg/pgconv"
	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	FindUserByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Users, error)
	ListUsers(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUsersParams) ([]sqlc.Users, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      sqlc.DBTX
}

func NewUserReadStore(queries UserReadQueries, db sqlc.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.FindUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toUserView(row), nil
}

func (r *UserReadStore) List(ctx context.Context, limit, offset int) ([]*queries.UserView, error) {
	rows, err := r.queries.ListUsers(ctx, r.db, sqlc.ListUsersParams{
		Limit:  int32(limit),
		Offset: int32(offset),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list users", err)
	}

	result := make([]*queries.UserView, len(rows))
	for i, row := range rows {
		result[i] = toUserView(row)
	}
	return result, nil
}

// Password hashes never leave the command side.
func toUserView(row sqlc.Users) *queries.UserView {
	return &queries.UserView{
		ID:        row.ID,
		Username:  row.Username,
		Email:     row.Email,
		Roles:     row.Roles,
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
