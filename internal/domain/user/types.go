package user

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// NewRoles validates every role and drops duplicates. An empty input yields USER.
func NewRoles(ss []string) ([]Role, error) {
	if len(ss) == 0 {
		return []Role{RoleUser}, nil
	}
	seen := make(map[Role]bool, len(ss))
	roles := make([]Role, 0, len(ss))
	for _, s := range ss {
		r, err := NewRole(s)
		if err != nil {
			return nil, err
		}
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	return roles, nil
}

func RoleStrings(roles []Role) []string {
	out := make([]string, len(roles))
	for i, r := range roles {
		out[i] = r.String()
	}
	return out
}
