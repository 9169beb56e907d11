package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/service/ports/mocks"
)

func newGalleryService(t *testing.T) (*GalleryService, *mocks.MockGalleryRepo) {
	t.Helper()
	repo := mocks.NewMockGalleryRepo(t)
	return NewGalleryService(repo, newTestLogger(t)), repo
}

func TestGalleryService_Create_Success(t *testing.T) {
	svc, repo := newGalleryService(t)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	img, err := svc.Create(context.Background(), domain.CreateGalleryImageInput{
		Title:    "Sunset climb",
		URL:      "https://img.example.com/sunset.jpg",
		Category: domain.GalleryCategoryLandscapes,
	}, "admin-1")

	require.NoError(t, err)
	assert.NotEmpty(t, img.ID)
	assert.True(t, img.IsActive)
	assert.Equal(t, "admin-1", img.UploadedBy)
	assert.Equal(t, 0, img.Views)
}

func TestGalleryService_Create_Invalid(t *testing.T) {
	svc, _ := newGalleryService(t)

	_, err := svc.Create(context.Background(), domain.CreateGalleryImageInput{Category: "portraits"}, "admin-1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGalleryService_GetByID_BumpsViews(t *testing.T) {
	svc, repo := newGalleryService(t)

	stored := &domain.GalleryImage{ID: "g1", Title: "Mud pit", Views: 41}
	repo.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil)
	repo.EXPECT().IncrementViews(mock.Anything, "g1").Return(nil)

	img, err := svc.GetByID(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, 42, img.Views)
}

func TestGalleryService_GetByID_ViewBumpFailureIgnored(t *testing.T) {
	svc, repo := newGalleryService(t)

	stored := &domain.GalleryImage{ID: "g1", Views: 41}
	repo.EXPECT().GetByID(mock.Anything, "g1").Return(stored, nil)
	repo.EXPECT().IncrementViews(mock.Anything, "g1").Return(assert.AnError)

	img, err := svc.GetByID(context.Background(), "g1")

	require.NoError(t, err)
	assert.Equal(t, 41, img.Views)
}

func TestGalleryService_GetByID_NotFound(t *testing.T) {
	svc, repo := newGalleryService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrImageNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrImageNotFound)
}

func TestGalleryService_List_NonAdminSeesActiveOnly(t *testing.T) {
	svc, repo := newGalleryService(t)

	repo.EXPECT().List(mock.Anything, domain.GalleryFilter{ActiveOnly: true}).
		Return([]*domain.GalleryImage{}, nil)

	_, err := svc.List(context.Background(), domain.GalleryFilter{}, false)

	require.NoError(t, err)
}

func TestGalleryService_List_AdminSeesInactive(t *testing.T) {
	svc, repo := newGalleryService(t)

	repo.EXPECT().List(mock.Anything, domain.GalleryFilter{}).
		Return([]*domain.GalleryImage{}, nil)

	_, err := svc.List(context.Background(), domain.GalleryFilter{}, true)

	require.NoError(t, err)
}

func TestGalleryService_Update_Success(t *testing.T) {
	svc, repo := newGalleryService(t)

	existing := &domain.GalleryImage{ID: "g1", Title: "Old", Category: domain.GalleryCategoryAction}
	repo.EXPECT().GetByID(mock.Anything, "g1").Return(existing, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	title := "New"
	featured := true
	img, err := svc.Update(context.Background(), "g1", domain.UpdateGalleryImageInput{
		Title:    &title,
		Featured: &featured,
	})

	require.NoError(t, err)
	assert.Equal(t, "New", img.Title)
	assert.True(t, img.Featured)
	assert.Equal(t, domain.GalleryCategoryAction, img.Category)
}

func TestGalleryService_Update_InvalidCategory(t *testing.T) {
	svc, _ := newGalleryService(t)

	bad := domain.GalleryCategory("portraits")
	_, err := svc.Update(context.Background(), "g1", domain.UpdateGalleryImageInput{Category: &bad})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestGalleryService_Delete_Deactivates(t *testing.T) {
	svc, repo := newGalleryService(t)

	repo.EXPECT().Deactivate(mock.Anything, "g1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "g1"))
}

func TestGalleryService_Like(t *testing.T) {
	svc, repo := newGalleryService(t)

	repo.EXPECT().IncrementLikes(mock.Anything, "g1").Return(nil)

	require.NoError(t, svc.Like(context.Background(), "g1"))
}
