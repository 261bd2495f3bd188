package models

import (
	"time"
)

type FAQ struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Question  string `gorm:"type:text;not null"`
	Answer    string `gorm:"type:text;not null"`
	Order     int    `gorm:"column:display_order;not null;default:0"`
	// No default tag: gorm skips zero-value fields that carry one, which
	// would turn an explicitly inactive FAQ active on insert. The omission
	// default lives in FAQInput.Active().
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (FAQ) TableName() string {
	return "faqs"
}
