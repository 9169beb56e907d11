package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/handler/dto"
	"github.com/trailcrew/offroad-backend/internal/middleware"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) CreateRegistration(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	userID, _ := middleware.Identity(c)
	reg, err := h.registrationService.Register(c.Request.Context(), domain.RegisterInput{
		EventID:      req.EventID,
		UserID:       userID,
		Details:      req.ParticipantDetails.ToDomain(),
		WaiverSigned: req.WaiverSigned,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) ListRegistrations(c *ginext.Context) {
	f := domain.RegistrationFilter{
		EventID: c.Query("event_id"),
		Limit:   intQuery(c, "limit"),
		Offset:  intQuery(c, "offset"),
	}
	if s := c.Query("status"); s != "" {
		status := domain.RegistrationStatus(s)
		f.Status = &status
	}

	userID, isAdmin := middleware.Identity(c)
	regs, err := h.registrationService.List(c.Request.Context(), f, userID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.RegistrationResponse, 0, len(regs))
	for _, r := range regs {
		resp = append(resp, dto.ToRegistrationResponse(r))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	userID, isAdmin := middleware.Identity(c)
	reg, err := h.registrationService.Get(c.Request.Context(), id, userID, isAdmin)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) ChangeRegistrationStatus(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.ChangeRegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.ChangeStatus(c.Request.Context(), id, domain.RegistrationStatus(req.Status))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

func (h *Handler) UpdateRegistrationPayment(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	var req dto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.UpdatePayment(c.Request.Context(), id, domain.PaymentStatus(req.PaymentStatus))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToRegistrationResponse(reg))
}

// CancelRegistration backs DELETE; cancellation is a status transition, the
// row is never removed.
func (h *Handler) CancelRegistration(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	userID, isAdmin := middleware.Identity(c)
	if err := h.registrationService.Cancel(c.Request.Context(), id, userID, isAdmin); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}
