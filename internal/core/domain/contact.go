package domain

import "time"

// Contact is a marketing lead captured by the public contact form.
type Contact struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Company   string    `json:"company,omitempty" bson:"company,omitempty"`
	Service   string    `json:"service,omitempty" bson:"service,omitempty"`
	Message   string    `json:"message" bson:"message"`
	Read      bool      `json:"read" bson:"read"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
