package ports

import (
	"context"

	"github.com/trailcrew/offroad-backend/internal/domain"
)

type GalleryRepo interface {
	Create(ctx context.Context, img *domain.GalleryImage) error
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	List(ctx context.Context, f domain.GalleryFilter) ([]*domain.GalleryImage, error)
	Update(ctx context.Context, img *domain.GalleryImage) error
	Deactivate(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
	IncrementLikes(ctx context.Context, id string) error
}
