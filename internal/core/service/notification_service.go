package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/pixelforge/agency-api/internal/api/metrics"
	"github.com/pixelforge/agency-api/internal/core/domain"
	"github.com/pixelforge/agency-api/internal/core/ports"
)

// NotificationService implements both sides of the notification channel:
// the fire-and-forget write helper used by other services (ports.Notifier)
// and the list/ack operations behind the dashboard endpoints.
type NotificationService struct {
	repo  ports.NotificationRepository
	users ports.UserRepository
	log   zerolog.Logger
}

func NewNotificationService(repo ports.NotificationRepository, users ports.UserRepository, log zerolog.Logger) *NotificationService {
	return &NotificationService{repo: repo, users: users, log: log}
}

// Notify appends a notification row for userID. Best-effort: insert failures
// are logged and dropped so the triggering operation still succeeds.
func (s *NotificationService) Notify(ctx context.Context, userID, title, message, ntype, link string) {
	n := &domain.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      ntype,
		Link:      link,
		CreatedAt: time.Now().UTC(),
	}
	if _, err := s.repo.Create(ctx, n); err != nil {
		metrics.NotificationsDroppedTotal.Inc()
		s.log.Warn().Err(err).Str("user_id", userID).Str("title", title).Msg("notification insert failed, dropped")
		return
	}
	metrics.NotificationsCreatedTotal.WithLabelValues(ntype).Inc()
}

// NotifyAdmins fans the notification out to every admin account.
func (s *NotificationService) NotifyAdmins(ctx context.Context, title, message, ntype, link string) {
	admins, err := s.users.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		s.log.Warn().Err(err).Str("title", title).Msg("admin lookup failed, notification dropped")
		return
	}
	for _, admin := range admins {
		s.Notify(ctx, admin.ID, title, message, ntype, link)
	}
}

func (s *NotificationService) ListForUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *NotificationService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return s.repo.CountUnread(ctx, userID)
}

func (s *NotificationService) MarkRead(ctx context.Context, userID, id string) error {
	return s.repo.MarkRead(ctx, userID, id)
}

func (s *NotificationService) MarkAllRead(ctx context.Context, userID string) error {
	return s.repo.MarkAllRead(ctx, userID)
}
