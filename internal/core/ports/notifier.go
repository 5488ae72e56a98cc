package ports

import (
	"context"

	"github.com/pneumatic/guestbook/internal/core/domain"
)

// Notifier composes and sends the new-user email. Implementations own the
// transport; callers never learn whether delivery succeeded.
type Notifier interface {
	NotifyNewUser(ctx context.Context, user *domain.User) error
}

// NotificationQueue hands a registration event to the background send path.
// Enqueue must never block the request cycle.
type NotificationQueue interface {
	Enqueue(user *domain.User)
}
