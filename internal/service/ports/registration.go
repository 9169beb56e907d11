package ports

import (
	"context"
	"time"

	"github.com/trailcrew/offroad-backend/internal/domain"
)

type RegistrationRepo interface {
	// Create persists the registration and takes one participant slot on the
	// event in a single transaction.
	Create(ctx context.Context, r *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	List(ctx context.Context, f domain.RegistrationFilter) ([]*domain.Registration, error)
	// UpdateStatus moves the registration from its current status to the given
	// one, releasing the event slot in the same transaction when freeSeat is set.
	UpdateStatus(ctx context.Context, r *domain.Registration, to domain.RegistrationStatus, freeSeat bool) error
	UpdatePayment(ctx context.Context, id string, status domain.PaymentStatus, paymentDate *time.Time) error
}
