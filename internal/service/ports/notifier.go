package ports

import (
	"context"

	"github.com/trailcrew/offroad-backend/internal/domain"
)

// Notifier delivers outbound WhatsApp messages. Failures are reported to the
// caller but must never fail the operation that triggered them.
type Notifier interface {
	NotifyRegistration(ctx context.Context, r *domain.Registration, e *domain.Event) error
	NotifyContact(ctx context.Context, c *domain.Contact) error
}
