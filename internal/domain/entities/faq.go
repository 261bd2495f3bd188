package entities

import (
	"time"
)

// FAQ represents a question shown on the public FAQ page. Inactive FAQs
// stay visible in the admin listing only.
type FAQ struct {
	ID        uint      `json:"id"`
	Question  string    `json:"question"`
	Answer    string    `json:"answer"`
	Order     int       `json:"order"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FAQInput represents the request body for creating or replacing a FAQ.
// A missing isActive means true; a missing order means 0.
type FAQInput struct {
	Question string `json:"question" binding:"required"`
	Answer   string `json:"answer" binding:"required"`
	Order    int    `json:"order"`
	IsActive *bool  `json:"isActive"`
}

// Active resolves the isActive default.
func (in *FAQInput) Active() bool {
	if in.IsActive == nil {
		return true
	}
	return *in.IsActive
}
