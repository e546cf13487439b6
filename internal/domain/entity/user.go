// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the identity record of the system. Username and email are unique
// across all users; PasswordHash is an opaque bcrypt digest and is never
// empty once the user is persisted.
type User struct {
	ID           int64     // Numeric primary key, generated by the database.
	Username     string    // Unique display name, at most 50 characters.
	Email        string    // Unique login identifier, at most 100 characters.
	PasswordHash string    // Opaque salted hash of the password. Never the plaintext.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}
