package domain

// User is an account that can authenticate against the registry.
// Accounts are created at registration and never updated afterwards.
type User struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
