package usecase

import (
	"context"

	"todo/internal/domain/entity"
)

// Pagination bounds applied to every list request. Out-of-range values are
// clamped, never rejected.
const (
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// --- Input DTOs ---

// ListTodosInput defines the pagination window for listing a user's todos.
type ListTodosInput struct {
	UserID   int64
	Page     int
	PageSize int
}

// CreateTodoInput defines the data required to create a todo. The owner is
// always the authenticated user; callers cannot create on behalf of others.
type CreateTodoInput struct {
	UserID      int64
	Title       string
	Description *string
}

// UpdateTodoInput defines the full replacement state for an existing todo.
type UpdateTodoInput struct {
	UserID      int64
	TodoID      int64
	Title       string
	Description *string
	IsCompleted bool
}

// --- Output DTOs ---

// TodoPageOutput returns one page of todos plus the pagination metadata
// computed from the total count.
type TodoPageOutput struct {
	Items           []*entity.TodoItem
	TotalCount      int64
	Page            int
	PageSize        int
	TotalPages      int
	HasNextPage     bool
	HasPreviousPage bool
}

// TodoStatsOutput returns the aggregate completion statistics of a user's todos.
type TodoStatsOutput struct {
	TotalTodos     int64
	CompletedTodos int64
	PendingTodos   int64
	CompletionRate float64
}

// TodoUsecase defines the interface for todo-related business operations.
// Every operation is scoped to the authenticated user's own todos.
type TodoUsecase interface {
	List(ctx context.Context, input *ListTodosInput) (*TodoPageOutput, error)
	Get(ctx context.Context, userID, todoID int64) (*entity.TodoItem, error)
	Create(ctx context.Context, input *CreateTodoInput) (*entity.TodoItem, error)
	Update(ctx context.Context, input *UpdateTodoInput) (*entity.TodoItem, error)
	Delete(ctx context.Context, userID, todoID int64) (bool, error)
	Stats(ctx context.Context, userID int64) (*TodoStatsOutput, error)
}
