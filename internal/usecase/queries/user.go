package queries

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/queries/mock_user.go -package=queries

type UserQueries interface {
	GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error)
	List(ctx context.Context, limit, offset int) ([]*UserView, error)
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	List(ctx context.Context, limit, offset int) ([]*UserView, error)
}

type userQueriesImpl struct {
	readStore UserReadStore
}

func NewUserQueries(readStore UserReadStore) UserQueries {
	return &userQueriesImpl{
		readStore: readStore,
	}
}

func (q *userQueriesImpl) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	return q.readStore.FindByID(ctx, userID)
}

func (q *userQueriesImpl) List(ctx context.Context, limit, offset int) ([]*UserView, error) {
	if offset < 0 {
		offset = 0
	}
	return q.readStore.List(ctx, ValidateLimit(limit), offset)
}
