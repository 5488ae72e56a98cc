package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pneumatic/guestbook/internal/core/domain"
	"github.com/pneumatic/guestbook/internal/core/ports"
)

// RegistrationService implements the lookup-then-insert registration flow.
// The two steps are not atomic: a concurrent submission of the same name can
// make Create fail with domain.ErrUserExists, which is left to the generic
// error handler.
type RegistrationService struct {
	repo  ports.UserRepository
	queue ports.NotificationQueue
}

// NewRegistrationService builds a RegistrationService. queue may be nil when
// no admin recipient is configured; registrations then skip notification.
func NewRegistrationService(repo ports.UserRepository, queue ports.NotificationQueue) *RegistrationService {
	return &RegistrationService{repo: repo, queue: queue}
}

func (s *RegistrationService) Register(ctx context.Context, name string) (*domain.User, bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, domain.ErrEmptyName
	}

	user, err := s.repo.FindByUsername(ctx, name)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, false, err
	}

	created, err := s.repo.Create(ctx, &domain.User{Username: name})
	if err != nil {
		return nil, false, err
	}

	if s.queue != nil {
		s.queue.Enqueue(created)
	}
	return created, false, nil
}
