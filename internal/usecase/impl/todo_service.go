package impl

import (
	"context"
	"log/slog"
	"math"

	deliverycontext "todo/internal/delivery/context"
	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	"todo/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// todoService implements the TodoUsecase interface. Every operation receives
// the authenticated user's id and never touches rows outside that scope; a
// todo owned by someone else is reported as not found, not as forbidden.
type todoService struct {
	uowFactory repository.UnitOfWorkFactory
	logger     *slog.Logger
}

// TodoServiceParams holds dependencies for todoService, injected by Fx.
type TodoServiceParams struct {
	fx.In

	UowFactory repository.UnitOfWorkFactory
	Logger     *slog.Logger
}

// NewTodoService is the constructor for todoService.
func NewTodoService(params TodoServiceParams) usecase.TodoUsecase {
	return &todoService{
		uowFactory: params.UowFactory,
		logger:     params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *todoService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// clampPage normalizes the pagination window: page floors at 1, pageSize
// falls back to the default when not positive and caps at the maximum.
func clampPage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = usecase.DefaultPageSize
	}
	if pageSize > usecase.MaxPageSize {
		pageSize = usecase.MaxPageSize
	}

	return page, pageSize
}

// List returns one page of the user's todos, newest first, with pagination
// metadata derived from the total count. A page beyond the end yields an
// empty item list, not an error.
func (srv *todoService) List(ctx context.Context, input *usecase.ListTodosInput) (*usecase.TodoPageOutput, error) {
	page, pageSize := clampPage(input.Page, input.PageSize)

	uow := srv.uowFactory.New()
	defer uow.Close()

	items, total, err := uow.Todos().FindOwnedPaged(ctx, input.UserID, page, pageSize)
	if err != nil {
		srv.log(ctx).Error("Failed to list todos", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list todos")
	}

	totalPages := int(math.Ceil(float64(total) / float64(pageSize)))

	return &usecase.TodoPageOutput{
		Items:           items,
		TotalCount:      total,
		Page:            page,
		PageSize:        pageSize,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}

// Get returns a single todo owned by the user.
func (srv *todoService) Get(ctx context.Context, userID, todoID int64) (*entity.TodoItem, error) {
	uow := srv.uowFactory.New()
	defer uow.Close()

	todo, err := srv.findOwned(ctx, uow, userID, todoID)
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// Create adds a new todo for the user. The owner id comes from the
// authenticated identity regardless of the request body.
func (srv *todoService) Create(ctx context.Context, input *usecase.CreateTodoInput) (*entity.TodoItem, error) {
	uow := srv.uowFactory.New()
	defer uow.Close()

	todo := &entity.TodoItem{
		Title:       input.Title,
		Description: input.Description,
		UserID:      input.UserID,
	}

	uow.Todos().Create(todo)
	if err := uow.SaveChanges(ctx); err != nil {
		srv.log(ctx).Error("Failed to create todo", slog.Int64("userID", input.UserID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Todo created", slog.Int64("userID", input.UserID), slog.Int64("todoID", todo.ID))

	return todo, nil
}

// Update replaces the mutable fields of an existing todo. The completion
// timestamp is stamped or cleared at flush time from the final value of
// IsCompleted.
func (srv *todoService) Update(ctx context.Context, input *usecase.UpdateTodoInput) (*entity.TodoItem, error) {
	uow := srv.uowFactory.New()
	defer uow.Close()

	todo, err := srv.findOwned(ctx, uow, input.UserID, input.TodoID)
	if err != nil {
		return nil, err
	}

	todo.Title = input.Title
	todo.Description = input.Description
	todo.IsCompleted = input.IsCompleted

	uow.Todos().Update(todo)
	if err := uow.SaveChanges(ctx); err != nil {
		srv.log(ctx).Error("Failed to update todo", slog.Int64("userID", input.UserID), slog.Int64("todoID", input.TodoID), slog.Any("error", err))

		return nil, err
	}

	return todo, nil
}

// Delete removes a todo owned by the user. A missing or foreign todo is
// reported as not deleted rather than as an error.
func (srv *todoService) Delete(ctx context.Context, userID, todoID int64) (bool, error) {
	uow := srv.uowFactory.New()
	defer uow.Close()

	todo, err := uow.Todos().FindOwned(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			srv.log(ctx).Debug("Todo not found for delete", slog.Int64("userID", userID), slog.Int64("todoID", todoID))

			return false, nil
		}

		return false, errors.Wrap(err, "failed to find todo")
	}

	uow.Todos().Remove(todo)
	if err := uow.SaveChanges(ctx); err != nil {
		srv.log(ctx).Error("Failed to delete todo", slog.Int64("userID", userID), slog.Int64("todoID", todoID), slog.Any("error", err))

		return false, err
	}

	srv.log(ctx).Debug("Todo deleted", slog.Int64("userID", userID), slog.Int64("todoID", todoID))

	return true, nil
}

// Stats aggregates the user's completion statistics. The rate is a percentage
// rounded to two decimals; a user with no todos reports zero across the board.
func (srv *todoService) Stats(ctx context.Context, userID int64) (*usecase.TodoStatsOutput, error) {
	uow := srv.uowFactory.New()
	defer uow.Close()

	total, err := uow.Todos().CountByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to count todos", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count todos")
	}

	completed, err := uow.Todos().CountCompletedByUser(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to count completed todos", slog.Int64("userID", userID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to count completed todos")
	}

	var rate float64
	if total > 0 {
		rate = math.Round(float64(completed)/float64(total)*100*100) / 100
	}

	return &usecase.TodoStatsOutput{
		TotalTodos:     total,
		CompletedTodos: completed,
		PendingTodos:   total - completed,
		CompletionRate: rate,
	}, nil
}

func (srv *todoService) findOwned(ctx context.Context, uow repository.UnitOfWork, userID, todoID int64) (*entity.TodoItem, error) {
	todo, err := uow.Todos().FindOwned(ctx, userID, todoID)
	if err != nil {
		if errors.Is(err, repository.ErrTodoNotFound) {
			srv.log(ctx).Debug("Todo not found", slog.Int64("userID", userID), slog.Int64("todoID", todoID))

			return nil, domainerrors.ErrTodoNotFound
		}

		srv.log(ctx).Error("Failed to find todo", slog.Int64("userID", userID), slog.Int64("todoID", todoID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find todo")
	}

	return todo, nil
}
