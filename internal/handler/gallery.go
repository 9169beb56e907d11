package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/handler/dto"
	"github.com/trailcrew/offroad-backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateGalleryImage(c *ginext.Context) {
	var req dto.CreateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	adminID, _ := middleware.Identity(c)
	img, err := h.galleryService.Create(c.Request.Context(), domain.CreateGalleryImageInput{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		AltText:     req.AltText,
		Category:    domain.GalleryCategory(req.Category),
		Tags:        req.Tags,
		EventID:     req.EventID,
		Featured:    req.Featured,
	}, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToGalleryImageResponse(img))
}

func (h *Handler) ListGalleryImages(c *ginext.Context) {
	f := domain.GalleryFilter{
		EventID: c.Query("event_id"),
		Limit:   intQuery(c, "limit"),
		Offset:  intQuery(c, "offset"),
	}
	if s := c.Query("category"); s != "" {
		category := domain.GalleryCategory(s)
		f.Category = &category
	}
	if s := c.Query("featured"); s == "true" {
		featured := true
		f.Featured = &featured
	}

	_, isAdmin := middleware.Identity(c)
	images, err := h.galleryService.List(c.Request.Context(), f, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.GalleryImageResponse, 0, len(images))
	for _, img := range images {
		resp = append(resp, dto.ToGalleryImageResponse(img))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetGalleryImage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid image id"})
		return
	}

	img, err := h.galleryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGalleryImageResponse(img))
}

func (h *Handler) UpdateGalleryImage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid image id"})
		return
	}

	var req dto.UpdateGalleryImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.UpdateGalleryImageInput{
		Title:       req.Title,
		Description: req.Description,
		AltText:     req.AltText,
		Tags:        req.Tags,
		Featured:    req.Featured,
	}
	if req.Category != nil {
		category := domain.GalleryCategory(*req.Category)
		in.Category = &category
	}

	img, err := h.galleryService.Update(c.Request.Context(), id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToGalleryImageResponse(img))
}

func (h *Handler) DeleteGalleryImage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid image id"})
		return
	}

	if err := h.galleryService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) LikeGalleryImage(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid image id"})
		return
	}

	if err := h.galleryService.Like(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "liked"})
}
