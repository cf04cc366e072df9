package models

// User is the logged-in identity. Token is the bearer token issued at
// login; it is persisted alongside the identity so a restart can restore
// the session.
type User struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Token    string `json:"token,omitempty"`
}
