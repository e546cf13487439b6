package entity

import (
	"time"
)

// TodoItem is a record owned by exactly one User. Every read or mutation
// must be filtered by both item id and owner id; an item is never
// addressable by id alone.
//
// CompletedAt is non-nil if and only if IsCompleted was true at the moment
// of the last mutation. The persistence layer enforces this as part of the
// unit-of-work flush, so only the final in-memory state before a commit
// determines whether the timestamp is stamped or cleared.
type TodoItem struct {
	ID          int64
	Title       string  // Required, 1-200 characters.
	Description *string // Optional, at most 1000 characters.
	IsCompleted bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	UserID      int64 // Owning user. Rows are cascade-deleted with the user.
}
