package entities

import (
	"time"
)

// Event represents an organization event shown on the public events page.
type Event struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Category    string    `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// EventInput represents the request body for creating or replacing an event.
// Date accepts "2006-01-02" or RFC 3339.
type EventInput struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Category    string `json:"category" binding:"required"`
}

// ParseDate parses the input date, accepting a bare calendar date or a
// full RFC 3339 timestamp.
func (in *EventInput) ParseDate() (time.Time, error) {
	if d, err := time.Parse("2006-01-02", in.Date); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, in.Date)
}
