package model

import (
	"time"
)

// TodoItemModel mirrors the 'todo_items' table. Rows are cascade-deleted
// with their owning user.
type TodoItemModel struct {
	ID          int64   `gorm:"primaryKey;autoIncrement"`
	Title       string  `gorm:"type:varchar(200);not null"`
	Description *string `gorm:"type:varchar(1000)"`
	IsCompleted bool    `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	CompletedAt *time.Time
	UserID      int64 `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (TodoItemModel) TableName() string {
	return "todo_items"
}

// StampCreate sets both timestamps on a newly added row.
func (m *TodoItemModel) StampCreate(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// StampUpdate refreshes the modification timestamp and keeps the
// completion timestamp consistent with the completion flag: transitioning
// to completed stamps the current instant, transitioning away clears it.
// The rule runs at flush time, so only the final in-memory state of the
// entity before a commit matters.
func (m *TodoItemModel) StampUpdate(now time.Time) {
	m.UpdatedAt = now

	if m.IsCompleted && m.CompletedAt == nil {
		completedAt := now
		m.CompletedAt = &completedAt
	} else if !m.IsCompleted {
		m.CompletedAt = nil
	}
}
