package handler

import (
	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// --- Request → Service input ---

func toCreateProjectInput(req createProjectRequest) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		Budget:      req.Budget,
		Metadata:    toMetadata(req.Metadata),
	}
}

func toMetadata(m projectMetadataRequest) domain.ProjectMetadata {
	return domain.ProjectMetadata{
		Services:     m.Services,
		NeedsDomain:  m.NeedsDomain,
		NeedsLogo:    m.NeedsLogo,
		ContactName:  m.ContactName,
		ContactEmail: m.ContactEmail,
		ContactPhone: m.ContactPhone,
	}
}

// toProjectPatch maps a partial update request onto the repository patch.
// The status string, when present, must parse against the closed status set.
func toProjectPatch(req updateProjectRequest) (ports.ProjectPatch, bool) {
	patch := ports.ProjectPatch{
		Name:        req.Name,
		Type:        req.Type,
		Description: req.Description,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Budget:      req.Budget,
	}
	if req.Metadata != nil {
		md := toMetadata(*req.Metadata)
		patch.Metadata = &md
	}
	if req.Status != nil {
		status, ok := domain.ParseProjectStatus(*req.Status)
		if !ok {
			return ports.ProjectPatch{}, false
		}
		patch.Status = &status
	}
	return patch, true
}
