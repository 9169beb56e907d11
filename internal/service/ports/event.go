package ports

import (
	"context"

	"github.com/trailcrew/offroad-backend/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	UpdateStatus(ctx context.Context, id string, status domain.EventStatus) error
	Delete(ctx context.Context, id string) error
	CompletePast(ctx context.Context) ([]*domain.Event, error)
}
