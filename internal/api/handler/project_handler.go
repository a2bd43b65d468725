package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/ports"
)

// ProjectHandler handles the client dashboard's project endpoints.
type ProjectHandler struct {
	service ports.ProjectService
}

func NewProjectHandler(service ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// List handles GET /api/dashboard/projects — the caller's own projects.
//
// @Summary      List own projects
// @Tags         projects
// @Produce      json
// @Success      200  {object}  projectListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard/projects [get]
func (h *ProjectHandler) List(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	projects, err := h.service.ListForOwner(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectListResponse{Projects: projects})
}

// Create handles POST /api/dashboard/projects. The persisted status is always
// pending, whatever the payload says.
//
// @Summary      Submit a project request
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        body  body      createProjectRequest  true  "Project request"
// @Success      201   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/dashboard/projects [post]
func (h *ProjectHandler) Create(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	var body createProjectRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	project, err := h.service.Create(c.Request().Context(), req.UserID, toCreateProjectInput(body))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, projectResponse{Project: project})
}

// Get handles GET /api/dashboard/projects/:id.
//
// @Summary      Get one project
// @Tags         projects
// @Produce      json
// @Param        id  path      string  true  "Project id"
// @Success      200  {object}  projectResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dashboard/projects/{id} [get]
func (h *ProjectHandler) Get(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	project, err := h.service.Get(c.Request().Context(), req, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectResponse{Project: project})
}

// Update handles PUT /api/dashboard/projects/:id — a partial field merge.
// A status field in the body is treated as a lifecycle transition and is
// rejected for non-admin callers.
//
// @Summary      Update a project
// @Tags         projects
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/dashboard/projects/{id} [put]
func (h *ProjectHandler) Update(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	var body updateProjectRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	patch, ok := toProjectPatch(body)
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unknown status")
	}

	project, err := h.service.Update(c.Request().Context(), req, c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectResponse{Project: project})
}

// Delete handles DELETE /api/dashboard/projects/:id. Owner-only; removes the
// project together with its milestones and file metadata.
//
// @Summary      Delete a project
// @Tags         projects
// @Produce      json
// @Param        id  path  string  true  "Project id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dashboard/projects/{id} [delete]
func (h *ProjectHandler) Delete(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), req, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "project deleted"})
}
