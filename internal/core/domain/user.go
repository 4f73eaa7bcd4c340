package domain

import "time"

// User models a registered account. Only the bcrypt hash of the
// password is ever persisted.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the identity decoded from a verified session token.
// Exactly these two fields are trusted from decoded input; anything
// else a token may carry is ignored.
type Session struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
}
