package domain

// User is the authenticated identity owning recipes and their attributes.
// Only the auth layer reads PasswordHash; it never leaves the process.
type User struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
}
