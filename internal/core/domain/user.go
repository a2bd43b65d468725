package domain

import "time"

const (
	RoleAdmin  = "admin"
	RoleClient = "client"
)

// User models an authenticated actor in the system. PasswordHash is empty for
// accounts that only ever signed in through a federated identity provider.
type User struct {
	ID                 string     `json:"id"`
	Username           string     `json:"username"`
	Email              string     `json:"email"`
	PasswordHash       string     `json:"-"`
	DisplayName        string     `json:"display_name"`
	Role               string     `json:"role"`
	Company            string     `json:"company,omitempty"`
	ExternalUID        string     `json:"-"`
	Verified           bool       `json:"verified"`
	VerificationToken  string     `json:"-"`
	VerificationExpiry *time.Time `json:"-"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}
