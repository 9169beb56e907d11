package domain

import "time"

type GalleryCategory string

const (
	GalleryCategoryEvents     GalleryCategory = "events"
	GalleryCategoryVehicles   GalleryCategory = "vehicles"
	GalleryCategoryLandscapes GalleryCategory = "landscapes"
	GalleryCategoryCamp       GalleryCategory = "camp"
	GalleryCategoryAction     GalleryCategory = "action"
)

func (c GalleryCategory) Valid() bool {
	switch c {
	case GalleryCategoryEvents, GalleryCategoryVehicles, GalleryCategoryLandscapes,
		GalleryCategoryCamp, GalleryCategoryAction:
		return true
	}
	return false
}

type GalleryImage struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	URL         string          `json:"url"`
	AltText     string          `json:"alt_text,omitempty"`
	Category    GalleryCategory `json:"category"`
	Tags        []string        `json:"tags"`
	EventID     *string         `json:"event_id,omitempty"`
	UploadedBy  string          `json:"uploaded_by"`
	IsActive    bool            `json:"is_active"`
	Views       int             `json:"views"`
	Likes       int             `json:"likes"`
	Featured    bool            `json:"featured"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type CreateGalleryImageInput struct {
	Title       string
	Description string
	URL         string
	AltText     string
	Category    GalleryCategory
	Tags        []string
	EventID     *string
	Featured    bool
}

type UpdateGalleryImageInput struct {
	Title       *string
	Description *string
	AltText     *string
	Category    *GalleryCategory
	Tags        []string
	Featured    *bool
}

type GalleryFilter struct {
	Category   *GalleryCategory
	EventID    string
	Featured   *bool
	ActiveOnly bool
	Limit      int
	Offset     int
}
