package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/trailcrew/offroad-backend/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, in domain.CreateEventInput, createdBy string) (*domain.Event, error)
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error)
	Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error)
	ChangeStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error)
	Delete(ctx context.Context, id string) error
}

type RegistrationSvc interface {
	Register(ctx context.Context, in domain.RegisterInput) (*domain.Registration, error)
	Get(ctx context.Context, id, requesterID string, isAdmin bool) (*domain.Registration, error)
	List(ctx context.Context, f domain.RegistrationFilter, requesterID string, isAdmin bool) ([]*domain.Registration, error)
	ChangeStatus(ctx context.Context, id string, to domain.RegistrationStatus) (*domain.Registration, error)
	Cancel(ctx context.Context, id, requesterID string, isAdmin bool) error
	UpdatePayment(ctx context.Context, id string, to domain.PaymentStatus) (*domain.Registration, error)
}

type ContactSvc interface {
	Create(ctx context.Context, in domain.CreateContactInput) (*domain.Contact, error)
	GetByID(ctx context.Context, id string) (*domain.Contact, error)
	List(ctx context.Context, f domain.ContactFilter) ([]*domain.Contact, error)
	Update(ctx context.Context, id string, in domain.UpdateContactInput) (*domain.Contact, error)
}

type GallerySvc interface {
	Create(ctx context.Context, in domain.CreateGalleryImageInput, uploadedBy string) (*domain.GalleryImage, error)
	GetByID(ctx context.Context, id string) (*domain.GalleryImage, error)
	List(ctx context.Context, f domain.GalleryFilter, isAdmin bool) ([]*domain.GalleryImage, error)
	Update(ctx context.Context, id string, in domain.UpdateGalleryImageInput) (*domain.GalleryImage, error)
	Delete(ctx context.Context, id string) error
	Like(ctx context.Context, id string) error
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	contactService      ContactSvc
	galleryService      GallerySvc
}

func NewHandler(eventService EventSvc, registrationService RegistrationSvc, contactService ContactSvc, galleryService GallerySvc) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		contactService:      contactService,
		galleryService:      galleryService,
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	var vErr *domain.ValidationError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: vErr.Error(), Fields: vErr.Fields})

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEventFull),
		errors.Is(err, domain.ErrRegistrationClosed),
		errors.Is(err, domain.ErrCancellationWindow):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrContactNotFound),
		errors.Is(err, domain.ErrImageNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrEventHasRegistrations),
		errors.Is(err, domain.ErrIllegalTransition):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
