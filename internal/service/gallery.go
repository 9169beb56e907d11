package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type GalleryService struct {
	repo   ports.GalleryRepo
	logger logger.Logger
}

func NewGalleryService(repo ports.GalleryRepo, logger logger.Logger) *GalleryService {
	return &GalleryService{repo: repo, logger: logger}
}

func (s *GalleryService) Create(ctx context.Context, in domain.CreateGalleryImageInput, uploadedBy string) (*domain.GalleryImage, error) {
	if err := domain.ValidateNewGalleryImage(in); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	img := &domain.GalleryImage{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		URL:         in.URL,
		AltText:     in.AltText,
		Category:    in.Category,
		Tags:        in.Tags,
		EventID:     in.EventID,
		UploadedBy:  uploadedBy,
		IsActive:    true,
		Featured:    in.Featured,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, img); err != nil {
		return nil, fmt.Errorf("create gallery image: %w", err)
	}

	return img, nil
}

// GetByID bumps the view counter as a side effect; a failed bump never fails
// the read.
func (s *GalleryService) GetByID(ctx context.Context, id string) (*domain.GalleryImage, error) {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementViews(ctx, id); err != nil {
		s.logger.Error("failed to count gallery view",
			logger.String("image_id", id),
			logger.String("error", err.Error()),
		)
	} else {
		img.Views++
	}

	return img, nil
}

// List hides inactive images from non-admin callers.
func (s *GalleryService) List(ctx context.Context, f domain.GalleryFilter, isAdmin bool) ([]*domain.GalleryImage, error) {
	if !isAdmin {
		f.ActiveOnly = true
	}

	return s.repo.List(ctx, f)
}

func (s *GalleryService) Update(ctx context.Context, id string, in domain.UpdateGalleryImageInput) (*domain.GalleryImage, error) {
	if in.Category != nil && !in.Category.Valid() {
		v := &domain.ValidationError{}
		v.Add("category", "must be one of events, vehicles, landscapes, camp, action")
		return nil, v
	}

	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		img.Title = *in.Title
	}
	if in.Description != nil {
		img.Description = *in.Description
	}
	if in.AltText != nil {
		img.AltText = *in.AltText
	}
	if in.Category != nil {
		img.Category = *in.Category
	}
	if in.Tags != nil {
		img.Tags = in.Tags
	}
	if in.Featured != nil {
		img.Featured = *in.Featured
	}

	if err = s.repo.Update(ctx, img); err != nil {
		return nil, fmt.Errorf("update gallery image: %w", err)
	}

	return img, nil
}

func (s *GalleryService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.logger.Info("gallery image deactivated", logger.String("image_id", id))
	return nil
}

func (s *GalleryService) Like(ctx context.Context, id string) error {
	return s.repo.IncrementLikes(ctx, id)
}
