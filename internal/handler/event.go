package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/handler/dto"
	"github.com/trailcrew/offroad-backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.CreateEventInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Location:         req.Location.ToDomain(),
		Price:            req.Price,
		MaxParticipants:  req.MaxParticipants,
		Difficulty:       domain.Difficulty(req.Difficulty),
		Duration:         req.Duration,
		Images:           nil,
		Equipment:        req.Equipment,
		Requirements:     req.Requirements,
		Includes:         req.Includes,
		Status:           domain.EventStatus(req.Status),
		Tags:             req.Tags,
	}
	for _, img := range req.Images {
		in.Images = append(in.Images, domain.EventImage{URL: img.URL, AltText: img.AltText, IsPrimary: img.IsPrimary})
	}

	if req.Date != "" {
		date, err := time.Parse(time.RFC3339, req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected RFC3339"})
			return
		}
		in.Date = date
	}
	if req.RegistrationDeadline != "" {
		deadline, err := time.Parse(time.RFC3339, req.RegistrationDeadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration_deadline format, expected RFC3339"})
			return
		}
		in.RegistrationDeadline = deadline
	}

	adminID, _ := middleware.Identity(c)
	event, err := h.eventService.Create(c.Request.Context(), in, adminID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	event, err := h.eventService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	f := domain.EventFilter{
		Tag:    c.Query("tag"),
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}
	if s := c.Query("status"); s != "" {
		status := domain.EventStatus(s)
		f.Status = &status
	}
	if d := c.Query("difficulty"); d != "" {
		difficulty := domain.Difficulty(d)
		f.Difficulty = &difficulty
	}
	_, f.IncludeDrafts = middleware.Identity(c)

	events, err := h.eventService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.UpdateEventInput{
		Title:            req.Title,
		Description:      req.Description,
		ShortDescription: req.ShortDescription,
		Price:            req.Price,
		MaxParticipants:  req.MaxParticipants,
		Duration:         req.Duration,
		Equipment:        req.Equipment,
		Requirements:     req.Requirements,
		Includes:         req.Includes,
		Tags:             req.Tags,
	}
	if req.Difficulty != nil {
		d := domain.Difficulty(*req.Difficulty)
		in.Difficulty = &d
	}
	if req.Location != nil {
		loc := req.Location.ToDomain()
		in.Location = &loc
	}
	if req.Images != nil {
		in.Images = make([]domain.EventImage, 0, len(req.Images))
		for _, img := range req.Images {
			in.Images = append(in.Images, domain.EventImage{URL: img.URL, AltText: img.AltText, IsPrimary: img.IsPrimary})
		}
	}
	if req.Date != nil {
		date, err := time.Parse(time.RFC3339, *req.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid date format, expected RFC3339"})
			return
		}
		in.Date = &date
	}
	if req.RegistrationDeadline != nil {
		deadline, err := time.Parse(time.RFC3339, *req.RegistrationDeadline)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration_deadline format, expected RFC3339"})
			return
		}
		in.RegistrationDeadline = &deadline
	}

	event, err := h.eventService.Update(c.Request.Context(), id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ChangeEventStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	var req dto.ChangeEventStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.ChangeStatus(c.Request.Context(), id, domain.EventStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func intQuery(c *ginext.Context, name string) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil || v < 0 {
		return 0
	}
	return v
}
