package domain

import "time"

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

// ChatSession groups the messages of one visitor conversation with the
// site chat widget.
type ChatSession struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	VisitorID string    `json:"visitor_id" bson:"visitor_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// ChatMessage is a single turn in a chat session.
type ChatMessage struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	SessionID string    `json:"session_id" bson:"session_id"`
	Role      string    `json:"role" bson:"role"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
