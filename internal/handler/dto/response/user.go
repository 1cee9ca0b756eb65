package response

import (
	"time"

	"hotel-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Roles     []string  `json:"roles"`
	CreatedAt time.Time `json:"createdAt"`
}

type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        *UserResponse `json:"user"`
}

type RefreshResponse struct {
	AccessToken string `json:"accessToken"`
}

type CreatedResponse struct {
	ID uuid.UUID `json:"id"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:        v.ID,
		Username:  v.Username,
		Email:     v.Email,
		Roles:     v.Roles,
		CreatedAt: v.CreatedAt,
	}
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, len(vs))
	for i, v := range vs {
		out[i] = FromUserView(v)
	}
	return out
}
