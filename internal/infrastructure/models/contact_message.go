package models

import (
	"time"
)

type ContactMessage struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	Name      string    `gorm:"type:varchar(120);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Subject   string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(20);not null;default:'unread'"`
	CreatedAt time.Time `gorm:"index"`
}
