package request

// CreateUserRequest is the admin variant of registration that may grant roles.
type CreateUserRequest struct {
	RegisterRequest
	Roles []string `json:"roles" binding:"omitempty,dive,oneof=USER ADMIN"`
}
