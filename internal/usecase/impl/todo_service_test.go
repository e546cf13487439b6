package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"todo/internal/domain/entity"
	domainerrors "todo/internal/domain/errors"
	"todo/internal/domain/repository"
	mockRepo "todo/internal/mocks/repository"
	"todo/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// todoServiceFixtures holds all test dependencies for todo service tests.
type todoServiceFixtures struct {
	service    usecase.TodoUsecase
	uowFactory *mockRepo.MockUnitOfWorkFactory
	uow        *mockRepo.MockUnitOfWork
	todoRepo   *mockRepo.MockTodoRepository
}

func createTestTodoService(t *testing.T) todoServiceFixtures {
	uowFactory := mockRepo.NewMockUnitOfWorkFactory(t)
	uow := mockRepo.NewMockUnitOfWork(t)
	todoRepo := mockRepo.NewMockTodoRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	uowFactory.EXPECT().New().Return(uow)
	uow.EXPECT().Close().Return(nil)
	uow.EXPECT().Todos().Return(todoRepo)

	service := NewTodoService(TodoServiceParams{
		UowFactory: uowFactory,
		Logger:     logger,
	})

	return todoServiceFixtures{
		service:    service,
		uowFactory: uowFactory,
		uow:        uow,
		todoRepo:   todoRepo,
	}
}

func TestTodoService_List_ClampsPagination(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"zero page floors to one", 0, 20, 1, 20},
		{"negative page floors to one", -5, 20, 1, 20},
		{"zero page size uses default", 1, 0, 1, 10},
		{"negative page size uses default", 1, -1, 1, 10},
		{"oversized page size caps at max", 1, 500, 1, 100},
		{"in-range values pass through", 3, 25, 3, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTodoService(t)

			fx.todoRepo.EXPECT().
				FindOwnedPaged(ctx, int64(1), tt.wantPage, tt.wantPageSize).
				Return([]*entity.TodoItem{}, 0, nil)

			output, err := fx.service.List(ctx, &usecase.ListTodosInput{
				UserID:   1,
				Page:     tt.page,
				PageSize: tt.pageSize,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantPage, output.Page)
			assert.Equal(t, tt.wantPageSize, output.PageSize)
		})
	}
}

func TestTodoService_List_PaginationMetadata(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		page      int
		pageSize  int
		total     int64
		wantPages int
		wantNext  bool
		wantPrev  bool
	}{
		{"first of three pages", 1, 10, 25, 3, true, false},
		{"middle page", 2, 10, 25, 3, true, true},
		{"last page", 3, 10, 25, 3, false, true},
		{"exact multiple", 2, 10, 20, 2, false, true},
		{"empty set", 1, 10, 0, 0, false, false},
		{"page beyond the end", 9, 10, 25, 3, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTodoService(t)

			fx.todoRepo.EXPECT().
				FindOwnedPaged(ctx, int64(1), tt.page, tt.pageSize).
				Return([]*entity.TodoItem{}, tt.total, nil)

			output, err := fx.service.List(ctx, &usecase.ListTodosInput{
				UserID:   1,
				Page:     tt.page,
				PageSize: tt.pageSize,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.total, output.TotalCount)
			assert.Equal(t, tt.wantPages, output.TotalPages)
			assert.Equal(t, tt.wantNext, output.HasNextPage)
			assert.Equal(t, tt.wantPrev, output.HasPreviousPage)
		})
	}
}

func TestTodoService_Get_NotFoundCoversForeignTodos(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()

	// The repository reports a todo owned by someone else exactly like a
	// missing row, so the service cannot leak its existence.
	fx.todoRepo.EXPECT().
		FindOwned(ctx, int64(1), int64(99)).
		Return(nil, repository.ErrTodoNotFound)

	todo, err := fx.service.Get(ctx, 1, 99)

	assert.Nil(t, todo)
	assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
}

func TestTodoService_Create_ForcesOwner(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	desc := "details"
	input := &usecase.CreateTodoInput{
		UserID:      7,
		Title:       "buy milk",
		Description: &desc,
	}

	fx.todoRepo.EXPECT().
		Create(mock.AnythingOfType("*entity.TodoItem")).
		Run(func(todo *entity.TodoItem) {
			assert.Equal(t, int64(7), todo.UserID)
			assert.False(t, todo.IsCompleted)
			todo.ID = 101
		}).
		Return()
	fx.uow.EXPECT().SaveChanges(ctx).Return(nil)

	todo, err := fx.service.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(101), todo.ID)
	assert.Equal(t, int64(7), todo.UserID)
	assert.Equal(t, "buy milk", todo.Title)
}

func TestTodoService_Update_AppliesInputAndSaves(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	existing := &entity.TodoItem{ID: 5, Title: "old", UserID: 1}

	fx.todoRepo.EXPECT().FindOwned(ctx, int64(1), int64(5)).Return(existing, nil)
	fx.todoRepo.EXPECT().
		Update(mock.AnythingOfType("*entity.TodoItem")).
		Run(func(todo *entity.TodoItem) {
			assert.Equal(t, "new title", todo.Title)
			assert.True(t, todo.IsCompleted)
		}).
		Return()
	fx.uow.EXPECT().SaveChanges(ctx).Return(nil)

	todo, err := fx.service.Update(ctx, &usecase.UpdateTodoInput{
		UserID:      1,
		TodoID:      5,
		Title:       "new title",
		IsCompleted: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "new title", todo.Title)
	assert.True(t, todo.IsCompleted)
}

func TestTodoService_Update_NotFound(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()

	fx.todoRepo.EXPECT().
		FindOwned(ctx, int64(1), int64(5)).
		Return(nil, repository.ErrTodoNotFound)

	todo, err := fx.service.Update(ctx, &usecase.UpdateTodoInput{
		UserID: 1,
		TodoID: 5,
		Title:  "new title",
	})

	assert.Nil(t, todo)
	assert.ErrorIs(t, err, domainerrors.ErrTodoNotFound)
}

func TestTodoService_Delete_Success(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()
	existing := &entity.TodoItem{ID: 5, Title: "old", UserID: 1}

	fx.todoRepo.EXPECT().FindOwned(ctx, int64(1), int64(5)).Return(existing, nil)
	fx.todoRepo.EXPECT().Remove(existing).Return()
	fx.uow.EXPECT().SaveChanges(ctx).Return(nil)

	deleted, err := fx.service.Delete(ctx, 1, 5)

	require.NoError(t, err)
	assert.True(t, deleted)
}

func TestTodoService_Delete_AbsentIsNotAnError(t *testing.T) {
	fx := createTestTodoService(t)

	ctx := context.Background()

	fx.todoRepo.EXPECT().
		FindOwned(ctx, int64(1), int64(5)).
		Return(nil, repository.ErrTodoNotFound)

	deleted, err := fx.service.Delete(ctx, 1, 5)

	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestTodoService_Stats(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		total       int64
		completed   int64
		wantPending int64
		wantRate    float64
	}{
		{"no todos reports zero rate", 0, 0, 0, 0},
		{"one of three completed", 3, 1, 2, 33.33},
		{"two of three completed", 3, 2, 1, 66.67},
		{"all completed", 4, 4, 0, 100},
		{"none completed", 5, 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTodoService(t)

			fx.todoRepo.EXPECT().CountByUser(ctx, int64(1)).Return(tt.total, nil)
			fx.todoRepo.EXPECT().CountCompletedByUser(ctx, int64(1)).Return(tt.completed, nil)

			output, err := fx.service.Stats(ctx, 1)

			require.NoError(t, err)
			assert.Equal(t, tt.total, output.TotalTodos)
			assert.Equal(t, tt.completed, output.CompletedTodos)
			assert.Equal(t, tt.wantPending, output.PendingTodos)
			assert.InDelta(t, tt.wantRate, output.CompletionRate, 0.0001)
		})
	}
}
