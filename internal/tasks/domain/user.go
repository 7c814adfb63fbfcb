package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        *string
	FirstName    string
	LastName     string
	PasswordHash string // argon2id encoded, legacy rows may be bcrypt
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is the verified caller extracted from an access token.
type Identity struct {
	Username string
	UserID   string
}

// IsZero reports whether no caller has been identified.
func (i Identity) IsZero() bool { return i.UserID == "" }
