package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/domain/entity"
	"todo/internal/infra/persistence/model"
)

// The flush contract: queued changes are materialized from the entity's
// in-memory state at flush time, not at queue time. A service may flip a
// flag any number of times before SaveChanges; only the final state counts.

func TestTodoUpdate_BuildsModelFromFinalEntityState(t *testing.T) {
	uow := &unitOfWork{}
	todos := newTodoRepository(uow)

	todo := &entity.TodoItem{ID: 7, Title: "buy milk", UserID: 1, IsCompleted: false}
	todos.Update(todo)

	// Mutations after queueing must still be visible at flush time.
	todo.IsCompleted = true
	todo.Title = "buy oat milk"

	require.Len(t, uow.pending, 1)
	m, ok := uow.pending[0].build().(*model.TodoItemModel)
	require.True(t, ok)
	assert.True(t, m.IsCompleted)
	assert.Equal(t, "buy oat milk", m.Title)

	now := time.Now().UTC()
	m.StampUpdate(now)
	require.NotNil(t, m.CompletedAt)
	assert.Equal(t, now, *m.CompletedAt)
}

func TestTodoUpdate_FlipFlopEndsUncompleted(t *testing.T) {
	uow := &unitOfWork{}
	todos := newTodoRepository(uow)

	completed := time.Now().UTC().Add(-time.Hour)
	todo := &entity.TodoItem{ID: 7, Title: "buy milk", UserID: 1, IsCompleted: true, CompletedAt: &completed}
	todos.Update(todo)

	todo.IsCompleted = false
	todo.IsCompleted = true
	todo.IsCompleted = false

	m := uow.pending[0].build().(*model.TodoItemModel)
	m.StampUpdate(time.Now().UTC())
	assert.Nil(t, m.CompletedAt)
}

func TestUserCreate_SyncCopiesGeneratedFields(t *testing.T) {
	uow := &unitOfWork{}
	users := newUserRepository(uow)

	user := &entity.User{Username: "ann", Email: "a@x.com", PasswordHash: "hash"}
	users.Create(user)

	require.Len(t, uow.pending, 1)
	change := uow.pending[0]
	assert.Equal(t, changeInsert, change.kind)

	now := time.Now().UTC()
	m := change.build().(*model.UserModel)
	m.StampCreate(now)
	m.ID = 42 // what the database would generate
	change.sync(m)

	assert.Equal(t, int64(42), user.ID)
	assert.Equal(t, now, user.CreatedAt)
	assert.Equal(t, now, user.UpdatedAt)
}

func TestUnitOfWork_SaveChangesWithoutPendingIsNoop(t *testing.T) {
	uow := &unitOfWork{}

	// No connection is touched when the change set is empty.
	assert.NoError(t, uow.SaveChanges(t.Context()))
}

func TestUnitOfWork_CommitWithoutBeginFails(t *testing.T) {
	uow := &unitOfWork{}

	assert.Error(t, uow.Commit(t.Context()))
	assert.Error(t, uow.Rollback())
	assert.NoError(t, uow.Close())
}
