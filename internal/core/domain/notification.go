package domain

import "time"

// Notification type tokens are cosmetic; they select the badge style in the UI.
const (
	NotificationInfo        = "info"
	NotificationSuccess     = "success"
	NotificationDestructive = "destructive"
)

// Notification is an in-app, per-user message describing a state change
// relevant to that user.
type Notification struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	UserID    string    `json:"user_id" bson:"user_id"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message" bson:"message"`
	Type      string    `json:"type" bson:"type"`
	Read      bool      `json:"read" bson:"read"`
	Link      string    `json:"link,omitempty" bson:"link,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
