package domain

import "time"

// ProjectStatus represents the lifecycle state of a client project.
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "pending"
	StatusApproved   ProjectStatus = "approved"
	StatusRejected   ProjectStatus = "rejected"
	StatusPlanning   ProjectStatus = "planning"
	StatusInProgress ProjectStatus = "in_progress"
	StatusReview     ProjectStatus = "review"
	StatusCompleted  ProjectStatus = "completed"
)

// validTransitions defines the allowed state machine transitions.
// rejected and completed are terminal.
var validTransitions = map[ProjectStatus][]ProjectStatus{
	StatusPending:    {StatusApproved, StatusRejected},
	StatusApproved:   {StatusPlanning, StatusInProgress},
	StatusPlanning:   {StatusInProgress},
	StatusInProgress: {StatusReview},
	StatusReview:     {StatusInProgress, StatusCompleted},
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s ProjectStatus) CanTransitionTo(next ProjectStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ParseProjectStatus normalizes a wire-level status token, accepting the
// legacy aliases "new" and "in-progress". Unknown tokens return false.
func ParseProjectStatus(raw string) (ProjectStatus, bool) {
	switch raw {
	case "new":
		return StatusPending, true
	case "in-progress":
		return StatusInProgress, true
	case string(StatusPending), string(StatusApproved), string(StatusRejected),
		string(StatusPlanning), string(StatusInProgress), string(StatusReview),
		string(StatusCompleted):
		return ProjectStatus(raw), true
	}
	return "", false
}

// ProjectMetadata captures the intake-form answers attached to a request.
type ProjectMetadata struct {
	Services     []string `json:"services,omitempty" bson:"services,omitempty"`
	NeedsDomain  bool     `json:"needs_domain" bson:"needs_domain"`
	NeedsLogo    bool     `json:"needs_logo" bson:"needs_logo"`
	ContactName  string   `json:"contact_name,omitempty" bson:"contact_name,omitempty"`
	ContactEmail string   `json:"contact_email,omitempty" bson:"contact_email,omitempty"`
	ContactPhone string   `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
}

// Project is the core aggregate: a client's request for agency services,
// tracked through the approval workflow.
type Project struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	OwnerID     string          `json:"owner_id" bson:"owner_id"`
	Name        string          `json:"name" bson:"name"`
	Type        string          `json:"type" bson:"type"`
	Description string          `json:"description" bson:"description"`
	Status      ProjectStatus   `json:"status" bson:"status"`
	StartDate   *time.Time      `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate     *time.Time      `json:"end_date,omitempty" bson:"end_date,omitempty"`
	Budget      string          `json:"budget,omitempty" bson:"budget,omitempty"`
	Metadata    ProjectMetadata `json:"metadata" bson:"metadata"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
}
