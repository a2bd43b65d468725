package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

type clientListResponse struct {
	Clients []*domain.User `json:"clients"`
}

type contactListResponse struct {
	Contacts []*domain.Contact `json:"contacts"`
}

// AdminHandler handles the admin area: client accounts, the global project
// list with lifecycle transitions, and the lead inbox.
type AdminHandler struct {
	authService    ports.AuthService
	projectService ports.ProjectService
	contactService ports.ContactService
}

func NewAdminHandler(authService ports.AuthService, projectService ports.ProjectService, contactService ports.ContactService) *AdminHandler {
	return &AdminHandler{
		authService:    authService,
		projectService: projectService,
		contactService: contactService,
	}
}

// ListClients handles GET /api/admin/clients.
//
// @Summary      List client accounts
// @Tags         admin
// @Produce      json
// @Success      200  {object}  clientListResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/clients [get]
func (h *AdminHandler) ListClients(c echo.Context) error {
	clients, err := h.authService.ListClients(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clientListResponse{Clients: clients})
}

// CreateClient handles POST /api/admin/clients — provisioning a pre-verified
// client account.
//
// @Summary      Create a client account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      createClientRequest  true  "Client account"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/admin/clients [post]
func (h *AdminHandler) CreateClient(c echo.Context) error {
	var body createClientRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.authService.CreateClient(c.Request().Context(), ports.CreateClientInput{
		Username:    body.Username,
		Password:    body.Password,
		Email:       body.Email,
		DisplayName: body.DisplayName,
		Company:     body.Company,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, userResponse{User: user})
}

// ListProjects handles GET /api/admin/projects — every project, unscoped.
//
// @Summary      List all projects
// @Tags         admin
// @Produce      json
// @Success      200  {object}  projectListResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/projects [get]
func (h *AdminHandler) ListProjects(c echo.Context) error {
	projects, err := h.projectService.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectListResponse{Projects: projects})
}

// UpdateProject handles PUT /api/admin/projects/:id. Approve and reject are
// expressed as a generic update carrying a status field; the status change is
// validated against the lifecycle state machine.
//
// @Summary      Update a project (admin)
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      string                true  "Project id"
// @Param        body  body      updateProjectRequest  true  "Fields to update"
// @Success      200   {object}  projectResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/projects/{id} [put]
func (h *AdminHandler) UpdateProject(c echo.Context) error {
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

	project, err := h.projectService.Update(c.Request().Context(), req, c.Param("id"), patch)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, projectResponse{Project: project})
}

// ListContacts handles GET /api/admin/contacts — the lead inbox.
//
// @Summary      List contact messages
// @Tags         admin
// @Produce      json
// @Success      200  {object}  contactListResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/admin/contacts [get]
func (h *AdminHandler) ListContacts(c echo.Context) error {
	contacts, err := h.contactService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, contactListResponse{Contacts: contacts})
}

// MarkContactRead handles POST /api/admin/contacts/read/:id.
//
// @Summary      Mark a contact message read
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Contact id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/contacts/read/{id} [post]
func (h *AdminHandler) MarkContactRead(c echo.Context) error {
	if err := h.contactService.MarkRead(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "marked read"})
}
