package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

type notificationListResponse struct {
	Notifications []*domain.Notification `json:"notifications"`
}

type unreadCountResponse struct {
	Count int64 `json:"count"`
}

// NotificationHandler handles the in-app notification endpoints.
type NotificationHandler struct {
	service ports.NotificationService
}

func NewNotificationHandler(service ports.NotificationService) *NotificationHandler {
	return &NotificationHandler{service: service}
}

// List handles GET /api/dashboard/notifications, newest first.
//
// @Summary      List own notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  notificationListResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard/notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	list, err := h.service.ListForUser(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, notificationListResponse{Notifications: list})
}

// UnreadCount handles GET /api/dashboard/notifications/unread/count — the
// cheap badge endpoint that avoids shipping full bodies.
//
// @Summary      Unread notification count
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  unreadCountResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard/notifications/unread/count [get]
func (h *NotificationHandler) UnreadCount(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	count, err := h.service.UnreadCount(c.Request().Context(), req.UserID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Count: count})
}

// MarkRead handles POST /api/dashboard/notifications/read/:id. Idempotent.
//
// @Summary      Mark one notification read
// @Tags         notifications
// @Produce      json
// @Param        id  path  string  true  "Notification id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/dashboard/notifications/read/{id} [post]
func (h *NotificationHandler) MarkRead(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkRead(c.Request().Context(), req.UserID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "marked read"})
}

// MarkAllRead handles POST /api/dashboard/notifications/read-all. Idempotent.
//
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/dashboard/notifications/read-all [post]
func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	req, err := requester(c)
	if err != nil {
		return err
	}

	if err := h.service.MarkAllRead(c.Request().Context(), req.UserID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "all marked read"})
}
