package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// MilestoneHandler handles the milestone endpoints under a project.
type MilestoneHandler struct {
	service ports.MilestoneService
}

func NewMilestoneHandler(service ports.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{service: service}
}

// List handles GET /api/dashboard/projects/:id/milestones.
//
// @Summary      List a project's milestones
// @Tags         milestones
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  milestoneListResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dashboard/projects/{id}/milestones [get]
func (h *MilestoneHandler) List(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	timeline, err := h.service.List(c.Request().Context(), req, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, milestoneListResponse{
		Milestones: timeline.Milestones,
		Progress:   timeline.Progress,
	})
}

// Create handles POST /api/dashboard/projects/:id/milestones.
//
// @Summary      Add a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        id    path      string                  true  "Project id"
// @Param        body  body      createMilestoneRequest  true  "Milestone"
// @Success      201   {object}  milestoneResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/dashboard/projects/{id}/milestones [post]
func (h *MilestoneHandler) Create(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	var body createMilestoneRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	milestone, err := h.service.Create(c.Request().Context(), req, c.Param("id"), ports.CreateMilestoneInput{
		Title:       body.Title,
		Description: body.Description,
		DueDate:     body.DueDate,
		OrderIndex:  body.OrderIndex,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, milestoneResponse{Milestone: milestone})
}

// UpdateStatus handles PUT /api/dashboard/milestones/:id/status.
//
// @Summary      Advance a milestone
// @Tags         milestones
// @Accept       json
// @Produce      json
// @Param        id    path      string                        true  "Milestone id"
// @Param        body  body      updateMilestoneStatusRequest  true  "New status"
// @Success      200   {object}  milestoneResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/dashboard/milestones/{id}/status [put]
func (h *MilestoneHandler) UpdateStatus(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	var body updateMilestoneStatusRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	milestone, err := h.service.UpdateStatus(c.Request().Context(), req, c.Param("id"), domain.MilestoneStatus(body.Status))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, milestoneResponse{Milestone: milestone})
}
