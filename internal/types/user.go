package types

const RoleAdmin = "admin"

type User struct {
	ID          int    `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Name        string `json:"name,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Preferences string `json:"preferences,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
}

// IsAdmin gates display-only affordances. It is not an authorization
// boundary; the server enforces roles on every admin endpoint.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
