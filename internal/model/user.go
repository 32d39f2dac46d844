package model

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a row in the users sheet. PasswordHash is a bcrypt hash; the
// plaintext never leaves the auth service.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"password"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	CreatedAt    int64  `json:"createdAt"`
}

// UserProfile is the identity attached to a session. Guests exist only for
// the lifetime of their token and are never written to the users sheet.
type UserProfile struct {
	Name    string `json:"name"`
	IsGuest bool   `json:"isGuest"`
	Role    string `json:"role,omitempty"`
}
