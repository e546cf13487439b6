package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserModel_StampCreate(t *testing.T) {
	now := time.Now().UTC()
	m := &UserModel{Username: "ann", Email: "a@x.com"}

	m.StampCreate(now)

	assert.Equal(t, now, m.CreatedAt)
	assert.Equal(t, now, m.UpdatedAt)
}

func TestTodoItemModel_StampUpdate_TransitionToCompleted(t *testing.T) {
	created := time.Now().UTC().Add(-time.Hour)
	m := &TodoItemModel{Title: "buy milk", CreatedAt: created, UpdatedAt: created, IsCompleted: true}

	now := time.Now().UTC()
	m.StampUpdate(now)

	require.NotNil(t, m.CompletedAt)
	assert.Equal(t, now, *m.CompletedAt)
	assert.Equal(t, now, m.UpdatedAt)
	assert.False(t, m.CompletedAt.Before(m.CreatedAt))
}

func TestTodoItemModel_StampUpdate_TransitionAwayClears(t *testing.T) {
	completed := time.Now().UTC().Add(-time.Minute)
	m := &TodoItemModel{Title: "buy milk", IsCompleted: false, CompletedAt: &completed}

	m.StampUpdate(time.Now().UTC())

	assert.Nil(t, m.CompletedAt)
}

func TestTodoItemModel_StampUpdate_AlreadyCompletedKeepsOriginalInstant(t *testing.T) {
	completed := time.Now().UTC().Add(-time.Minute)
	m := &TodoItemModel{Title: "buy milk", IsCompleted: true, CompletedAt: &completed}

	m.StampUpdate(time.Now().UTC())

	require.NotNil(t, m.CompletedAt)
	assert.Equal(t, completed, *m.CompletedAt)
}
