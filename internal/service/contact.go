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

type ContactService struct {
	repo     ports.ContactRepo
	notifier ports.Notifier
	logger   logger.Logger
	now      func() time.Time
}

func NewContactService(repo ports.ContactRepo, notifier ports.Notifier, logger logger.Logger) *ContactService {
	return &ContactService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *ContactService) Create(ctx context.Context, in domain.CreateContactInput) (*domain.Contact, error) {
	if err := domain.ValidateNewContact(in); err != nil {
		return nil, err
	}

	now := s.now()
	contact := &domain.Contact{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		Status:    domain.ContactStatusNew,
		Priority:  domain.ContactPriorityMedium,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.logger.Info("contact message received",
		logger.String("contact_id", contact.ID),
		logger.String("subject", contact.Subject),
	)

	go s.notifyContact(context.WithoutCancel(ctx), contact)

	return contact, nil
}

func (s *ContactService) GetByID(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *ContactService) List(ctx context.Context, f domain.ContactFilter) ([]*domain.Contact, error) {
	return s.repo.List(ctx, f)
}

// Update handles admin edits. Moving a contact to resolved or closed stamps
// the response date once.
func (s *ContactService) Update(ctx context.Context, id string, in domain.UpdateContactInput) (*domain.Contact, error) {
	var v domain.ValidationError
	if in.Status != nil && !in.Status.Valid() {
		v.Add("status", "must be one of new, in-progress, resolved, closed")
	}
	if in.Priority != nil && !in.Priority.Valid() {
		v.Add("priority", "must be one of low, medium, high, urgent")
	}
	if err := v.AsError(); err != nil {
		return nil, err
	}

	contact, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Status != nil {
		contact.Status = *in.Status
		resolved := *in.Status == domain.ContactStatusResolved || *in.Status == domain.ContactStatusClosed
		if resolved && contact.ResponseDate == nil {
			now := s.now()
			contact.ResponseDate = &now
		}
	}
	if in.Priority != nil {
		contact.Priority = *in.Priority
	}
	if in.AdminNotes != nil {
		contact.AdminNotes = *in.AdminNotes
	}

	if err = s.repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}

	return contact, nil
}

func (s *ContactService) notifyContact(ctx context.Context, contact *domain.Contact) {
	if err := s.notifier.NotifyContact(ctx, contact); err != nil {
		s.logger.Error("contact notification failed",
			logger.String("contact_id", contact.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	if err := s.repo.MarkNotified(ctx, contact.ID, s.now()); err != nil {
		s.logger.Error("failed to record contact notification",
			logger.String("contact_id", contact.ID),
			logger.String("error", err.Error()),
		)
	}
}
