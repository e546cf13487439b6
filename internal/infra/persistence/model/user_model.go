// Package model contains the GORM persistence models. They mirror the
// database tables and are kept separate from the pure domain entities.
package model

import (
	"time"
)

// UserModel mirrors the 'users' table.
type UserModel struct {
	ID           int64  `gorm:"primaryKey;autoIncrement"`
	Username     string `gorm:"type:varchar(50);uniqueIndex;not null"`
	Email        string `gorm:"type:varchar(100);uniqueIndex;not null"`
	PasswordHash string `gorm:"type:text;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	TodoItems []TodoItemModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// StampCreate sets both timestamps on a newly added row. Called by the unit
// of work immediately before the insert is executed.
func (m *UserModel) StampCreate(now time.Time) {
	m.CreatedAt = now
	m.UpdatedAt = now
}

// StampUpdate refreshes the modification timestamp.
func (m *UserModel) StampUpdate(now time.Time) {
	m.UpdatedAt = now
}
