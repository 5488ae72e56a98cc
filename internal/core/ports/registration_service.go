package ports

import (
	"context"

	"github.com/pneumatic/guestbook/internal/core/domain"
)

// RegistrationService records submitted names and reports whether the
// visitor was already known.
type RegistrationService interface {
	// Register looks the name up and creates a user row when absent.
	// known is true when the username already existed at submission time.
	Register(ctx context.Context, name string) (user *domain.User, known bool, err error)
}
