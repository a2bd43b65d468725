package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

type submitContactRequest struct {
	Name    string `json:"name"    validate:"required,min=2"`
	Email   string `json:"email"   validate:"required,email"`
	Company string `json:"company"`
	Service string `json:"service"`
	Message string `json:"message" validate:"required,min=10"`
}

type contactResponse struct {
	Contact *domain.Contact `json:"contact"`
}

// ContactHandler handles the public lead-capture form.
type ContactHandler struct {
	service ports.ContactService
}

func NewContactHandler(service ports.ContactService) *ContactHandler {
	return &ContactHandler{service: service}
}

// Submit handles POST /api/contact.
//
// @Summary      Submit a contact message
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      submitContactRequest  true  "Contact message"
// @Success      201   {object}  contactResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/contact [post]
func (h *ContactHandler) Submit(c echo.Context) error {
	var body submitContactRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	contact, err := h.service.Submit(c.Request().Context(), ports.SubmitContactInput{
		Name:    body.Name,
		Email:   body.Email,
		Company: body.Company,
		Service: body.Service,
		Message: body.Message,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, contactResponse{Contact: contact})
}
