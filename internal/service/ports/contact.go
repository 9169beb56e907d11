package ports

import (
	"context"
	"time"

	"github.com/trailcrew/offroad-backend/internal/domain"
)

type ContactRepo interface {
	Create(ctx context.Context, c *domain.Contact) error
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, f domain.ContactFilter) ([]*domain.Contact, error)
	Update(ctx context.Context, c *domain.Contact) error
	MarkNotified(ctx context.Context, id string, at time.Time) error
}
