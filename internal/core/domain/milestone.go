package domain

import "time"

// MilestoneStatus is advanced manually; there is no automatic completion.
type MilestoneStatus string

const (
	MilestonePending    MilestoneStatus = "pending"
	MilestoneInProgress MilestoneStatus = "in_progress"
	MilestoneCompleted  MilestoneStatus = "completed"
)

// Milestone is a dated sub-goal within a project's execution.
// OrderIndex determines display order along the project timeline.
type Milestone struct {
	ID          string          `json:"id" bson:"_id,omitempty"`
	ProjectID   string          `json:"project_id" bson:"project_id"`
	Title       string          `json:"title" bson:"title"`
	Description string          `json:"description,omitempty" bson:"description,omitempty"`
	Status      MilestoneStatus `json:"status" bson:"status"`
	DueDate     *time.Time      `json:"due_date,omitempty" bson:"due_date,omitempty"`
	CompletedAt *time.Time      `json:"completed_at,omitempty" bson:"completed_at,omitempty"`
	OrderIndex  int             `json:"order_index" bson:"order_index"`
	CreatedAt   time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at" bson:"updated_at"`
}
