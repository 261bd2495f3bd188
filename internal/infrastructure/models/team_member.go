package models

import (
	"time"

	"github.com/volatiletech/null/v8"
)

type TeamMember struct {
	ID          uint        `gorm:"primaryKey;autoIncrement"`
	Name        string      `gorm:"type:varchar(120);not null"`
	Role        string      `gorm:"type:varchar(120);not null"`
	Bio         string      `gorm:"type:text;not null"`
	Image       null.String `gorm:"type:text"`
	LinkedinURL null.String `gorm:"column:linkedin_url;type:text"`
	GithubURL   null.String `gorm:"type:text"`
	TwitterURL  null.String `gorm:"type:text"`
	Email       null.String `gorm:"type:varchar(255)"`
	Order       int         `gorm:"column:display_order;not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
