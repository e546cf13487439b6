package repository

import (
	"context"
	"errors"

	"todo/internal/domain/entity"
)

// ErrTodoNotFound is returned when a todo does not exist or belongs to
// another user. The two cases are deliberately indistinguishable; this is
// the tenant-isolation boundary.
var ErrTodoNotFound = errors.New("todo not found")

// TodoRepository defines the persistence operations for todo items. Every
// read and mutation is scoped to an owning user id.
type TodoRepository interface {
	// FindByUser retrieves all todos of a user, newest first.
	FindByUser(ctx context.Context, userID int64) ([]*entity.TodoItem, error)

	// FindOwned retrieves one todo constrained to both the todo id and the
	// owner id. Returns ErrTodoNotFound when the id exists but belongs to a
	// different user.
	FindOwned(ctx context.Context, userID, todoID int64) (*entity.TodoItem, error)

	// FindOwnedPaged returns one page of a user's todos ordered by creation
	// time descending, plus the total number of the user's todos. The total
	// is counted before the page window is applied.
	FindOwnedPaged(ctx context.Context, userID int64, page, pageSize int) ([]*entity.TodoItem, int64, error)

	// CountByUser returns the total number of todos owned by the user.
	CountByUser(ctx context.Context, userID int64) (int64, error)

	// CountCompletedByUser returns the number of completed todos owned by the user.
	CountCompletedByUser(ctx context.Context, userID int64) (int64, error)

	// Create queues the insertion of a new todo.
	Create(todo *entity.TodoItem)

	// Update queues the modification of an existing todo.
	Update(todo *entity.TodoItem)

	// Remove queues the deletion of a todo.
	Remove(todo *entity.TodoItem)
}
