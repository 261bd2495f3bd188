package entities

import (
	"time"
)

// Contact message statuses.
const (
	ContactStatusUnread = "unread"
	ContactStatusRead   = "read"
)

// ContactMessage represents a message submitted through the public contact
// form. Immutable after creation except status and deletion.
type ContactMessage struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

// ContactMessageInput represents the public contact form body. All fields
// are required; a missing one rejects the submission outright.
type ContactMessageInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
