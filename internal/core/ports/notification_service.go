package ports

import (
	"context"

	"github.com/pixelforge/agency-api/internal/core/domain"
)

// Notifier is the write side of the notification side-channel. It is
// fire-and-forget: implementations log failures and never return them, so a
// failed insert can never fail the operation that triggered it.
type Notifier interface {
	Notify(ctx context.Context, userID, title, message, ntype, link string)
	// NotifyAdmins fans the notification out to every admin account.
	NotifyAdmins(ctx context.Context, title, message, ntype, link string)
}

// NotificationService defines the read/ack side of the notification channel.
type NotificationService interface {
	ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID, id string) error
	MarkAllRead(ctx context.Context, userID string) error
}
