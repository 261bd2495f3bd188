package models

import (
	"time"
)

type Event struct {
	ID          uint      `gorm:"primaryKey;autoIncrement"`
	Title       string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text;not null"`
	Date        time.Time `gorm:"not null;index"`
	Time        string    `gorm:"type:varchar(20);not null"`
	Location    string    `gorm:"type:varchar(255);not null"`
	Category    string    `gorm:"type:varchar(100);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
