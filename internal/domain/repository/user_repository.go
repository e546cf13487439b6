// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
//
// Reads execute immediately against the unit-of-work session. Create and
// Update only queue the change; nothing reaches the database until the unit
// of work's SaveChanges commits.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address (exact match).
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByUsername retrieves a single user by their username (exact match).
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// EmailExists reports whether any user already uses the email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// UsernameExists reports whether any user already uses the username.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// Count returns the total number of users.
	Count(ctx context.Context) (int64, error)

	// Create queues the insertion of a new user.
	Create(user *entity.User)

	// Update queues the modification of an existing user.
	Update(user *entity.User)
}
