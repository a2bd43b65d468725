package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

type chatRequest struct {
	SessionID string `json:"session_id"`
	VisitorID string `json:"visitor_id" validate:"required"`
	Message   string `json:"message"    validate:"required,max=2000"`
}

type chatResponse struct {
	SessionID string              `json:"session_id"`
	Reply     *domain.ChatMessage `json:"reply"`
}

// ChatHandler handles the public chat widget endpoint.
type ChatHandler struct {
	service ports.ChatService
}

func NewChatHandler(service ports.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

// Send handles POST /api/chat. An empty session_id starts a new conversation.
//
// @Summary      Send a chat message
// @Tags         chat
// @Accept       json
// @Produce      json
// @Param        body  body      chatRequest  true  "Chat message"
// @Success      200   {object}  chatResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/chat [post]
func (h *ChatHandler) Send(c echo.Context) error {
	var body chatRequest
	if err := c.Bind(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&body); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	reply, err := h.service.Send(c.Request().Context(), body.SessionID, body.VisitorID, body.Message)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, chatResponse{SessionID: reply.SessionID, Reply: reply.Message})
}
