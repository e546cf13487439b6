package postgres

import (
	"context"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// todoRepository implements the domain's TodoRepository interface using GORM.
// Every query it builds filters on the owning user id; nothing here is
// addressable by todo id alone.
type todoRepository struct {
	uow  *unitOfWork
	repo repo[model.TodoItemModel]
}

func newTodoRepository(uow *unitOfWork) repository.TodoRepository {
	return &todoRepository{
		uow:  uow,
		repo: repo[model.TodoItemModel]{session: uow.conn},
	}
}

// FindByUser retrieves all todos of a user, newest first.
func (r *todoRepository) FindByUser(ctx context.Context, userID int64) ([]*entity.TodoItem, error) {
	todoMs, err := r.repo.findAll(ctx, "created_at DESC", "user_id = ?", userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find todos by user")
	}

	return toTodoDomainList(todoMs), nil
}

// FindOwned retrieves one todo constrained to both the todo id and the
// owner id. An id that exists under another user is indistinguishable from
// an id that does not exist.
func (r *todoRepository) FindOwned(ctx context.Context, userID, todoID int64) (*entity.TodoItem, error) {
	todoM, err := r.repo.first(ctx, "id = ? AND user_id = ?", todoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTodoNotFound
		}

		return nil, errors.Wrap(err, "failed to find todo")
	}

	return toTodoDomain(todoM), nil
}

// FindOwnedPaged returns one page of a user's todos ordered by creation
// time descending, plus the total count of the user's todos.
func (r *todoRepository) FindOwnedPaged(ctx context.Context, userID int64, page, pageSize int) ([]*entity.TodoItem, int64, error) {
	todoMs, total, err := r.repo.findPaged(ctx, page, pageSize, "created_at DESC", "user_id = ?", userID)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to page todos")
	}

	return toTodoDomainList(todoMs), total, nil
}

// CountByUser returns the total number of todos owned by the user.
func (r *todoRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	count, err := r.repo.count(ctx, "user_id = ?", userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count todos")
	}

	return count, nil
}

// CountCompletedByUser returns the number of completed todos owned by the user.
func (r *todoRepository) CountCompletedByUser(ctx context.Context, userID int64) (int64, error) {
	count, err := r.repo.count(ctx, "user_id = ? AND is_completed = ?", userID, true)
	if err != nil {
		return 0, errors.Wrap(err, "failed to count completed todos")
	}

	return count, nil
}

// Create queues the insertion of a new todo.
func (r *todoRepository) Create(todo *entity.TodoItem) {
	r.uow.enqueue(pendingChange{
		kind:   changeInsert,
		build:  func() stamped { return fromTodoDomain(todo) },
		sync:   func(m stamped) { syncTodo(todo, m.(*model.TodoItemModel)) },
		mapErr: mapTodoWriteError,
	})
}

// Update queues the modification of an existing todo. The model is built
// from the entity's state at flush time, so the completion-timestamp rule
// sees only the final value of IsCompleted.
func (r *todoRepository) Update(todo *entity.TodoItem) {
	r.uow.enqueue(pendingChange{
		kind:   changeUpdate,
		build:  func() stamped { return fromTodoDomain(todo) },
		sync:   func(m stamped) { syncTodo(todo, m.(*model.TodoItemModel)) },
		mapErr: mapTodoWriteError,
	})
}

// Remove queues the deletion of a todo.
func (r *todoRepository) Remove(todo *entity.TodoItem) {
	r.uow.enqueue(pendingChange{
		kind:  changeDelete,
		build: func() stamped { return fromTodoDomain(todo) },
	})
}

// mapTodoWriteError converts PostgreSQL constraint violations into domain errors.
func mapTodoWriteError(err error) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrUserNotFound.WrapMessage("todo references a missing user")
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to persist todo")
}

// --- Mapper Functions ---

func toTodoDomain(data *model.TodoItemModel) *entity.TodoItem {
	if data == nil {
		return nil
	}

	return &entity.TodoItem{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		CompletedAt: data.CompletedAt,
		UserID:      data.UserID,
	}
}

func toTodoDomainList(data []*model.TodoItemModel) []*entity.TodoItem {
	out := make([]*entity.TodoItem, 0, len(data))
	for _, m := range data {
		out = append(out, toTodoDomain(m))
	}

	return out
}

func fromTodoDomain(data *entity.TodoItem) *model.TodoItemModel {
	if data == nil {
		return nil
	}

	return &model.TodoItemModel{
		ID:          data.ID,
		Title:       data.Title,
		Description: data.Description,
		IsCompleted: data.IsCompleted,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		CompletedAt: data.CompletedAt,
		UserID:      data.UserID,
	}
}

// syncTodo copies generated ids and stamped timestamps (including the
// completion timestamp) back onto the domain entity after a flush.
func syncTodo(todo *entity.TodoItem, m *model.TodoItemModel) {
	todo.ID = m.ID
	todo.CreatedAt = m.CreatedAt
	todo.UpdatedAt = m.UpdatedAt
	todo.CompletedAt = m.CompletedAt
}
