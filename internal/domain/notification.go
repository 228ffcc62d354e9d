package domain

import "time"

// Notification is an in-app inbox entry written by the notification bridge on
// lifecycle transitions. Attributes carry typed routing hints (reservation id,
// event type) so clients deep-link without re-parsing the message text.
type Notification struct {
	ID         int32             `json:"id"`
	UserID     int32             `json:"user_id"`
	Title      string            `json:"title"`
	Message    string            `json:"message"`
	IsRead     bool              `json:"is_read"`
	Attributes map[string]string `json:"attributes"`
	CreatedOn  time.Time         `json:"created_on"`
}
