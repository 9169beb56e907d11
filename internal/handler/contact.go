package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateContact(c *ginext.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	contact, err := h.contactService.Create(c.Request.Context(), domain.CreateContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToContactResponse(contact))
}

func (h *Handler) ListContacts(c *ginext.Context) {
	f := domain.ContactFilter{
		Limit:  intQuery(c, "limit"),
		Offset: intQuery(c, "offset"),
	}
	if s := c.Query("status"); s != "" {
		status := domain.ContactStatus(s)
		f.Status = &status
	}
	if p := c.Query("priority"); p != "" {
		priority := domain.ContactPriority(p)
		f.Priority = &priority
	}

	contacts, err := h.contactService.List(c.Request.Context(), f)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.ContactResponse, 0, len(contacts))
	for _, contact := range contacts {
		resp = append(resp, dto.ToContactResponse(contact))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetContact(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid contact id"})
		return
	}

	contact, err := h.contactService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}

func (h *Handler) UpdateContact(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid contact id"})
		return
	}

	var req dto.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	in := domain.UpdateContactInput{AdminNotes: req.AdminNotes}
	if req.Status != nil {
		status := domain.ContactStatus(*req.Status)
		in.Status = &status
	}
	if req.Priority != nil {
		priority := domain.ContactPriority(*req.Priority)
		in.Priority = &priority
	}

	contact, err := h.contactService.Update(c.Request.Context(), id, in)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToContactResponse(contact))
}
