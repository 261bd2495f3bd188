package models

import (
	"time"
)

type User struct {
	ID           uint   `gorm:"primaryKey;autoIncrement"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string `gorm:"type:varchar(100);not null"`
	PasswordHash string `gorm:"type:varchar(255);not null"`
	Role         string `gorm:"type:varchar(20);not null;default:'member'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// All lists every model for schema migration.
func All() []interface{} {
	return []interface{}{
		&Event{},
		&TeamMember{},
		&FAQ{},
		&ContactMessage{},
		&User{},
	}
}
