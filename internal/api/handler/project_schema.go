package handler

import (
	"time"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type projectMetadataRequest struct {
	Services     []string `json:"services"`
	NeedsDomain  bool     `json:"needs_domain"`
	NeedsLogo    bool     `json:"needs_logo"`
	ContactName  string   `json:"contact_name"`
	ContactEmail string   `json:"contact_email" validate:"omitempty,email"`
	ContactPhone string   `json:"contact_phone"`
}

type createProjectRequest struct {
	Name        string                 `json:"name"        validate:"required,min=3"`
	Type        string                 `json:"type"        validate:"required,oneof=website webapp ecommerce dashboard mobile other"`
	Description string                 `json:"description" validate:"required,min=10"`
	Budget      string                 `json:"budget"`
	Metadata    projectMetadataRequest `json:"metadata"`
	// Status is accepted and discarded: creation always starts at pending.
	Status string `json:"status"`
}

// updateProjectRequest carries a partial update; absent fields stay untouched.
type updateProjectRequest struct {
	Name        *string                 `json:"name"        validate:"omitempty,min=3"`
	Type        *string                 `json:"type"        validate:"omitempty,oneof=website webapp ecommerce dashboard mobile other"`
	Description *string                 `json:"description" validate:"omitempty,min=10"`
	Status      *string                 `json:"status"`
	StartDate   *string                 `json:"start_date"`
	EndDate     *string                 `json:"end_date"`
	Budget      *string                 `json:"budget"`
	Metadata    *projectMetadataRequest `json:"metadata"`
}

type projectResponse struct {
	Project *domain.Project `json:"project"`
}

type projectListResponse struct {
	Projects []*domain.Project `json:"projects"`
}

// --- Milestones ---

type createMilestoneRequest struct {
	Title       string     `json:"title"       validate:"required,min=3"`
	Description string     `json:"description"`
	DueDate     *time.Time `json:"due_date"`
	OrderIndex  int        `json:"order_index"`
}

type updateMilestoneStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

type milestoneResponse struct {
	Milestone *domain.Milestone `json:"milestone"`
}

type milestoneListResponse struct {
	Milestones []*domain.Milestone `json:"milestones"`
	Progress   int                 `json:"progress"`
}

// --- Files ---

type fileResponse struct {
	File *domain.ProjectFile `json:"file"`
}

type fileListResponse struct {
	Files []*domain.ProjectFile `json:"files"`
}
