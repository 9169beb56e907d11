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

type RegistrationService struct {
	regRepo   ports.RegistrationRepo
	eventRepo ports.EventRepo
	notifier  ports.Notifier
	logger    logger.Logger
	now       func() time.Time
}

func NewRegistrationService(
	regRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	notifier ports.Notifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		regRepo:   regRepo,
		eventRepo: eventRepo,
		notifier:  notifier,
		logger:    logger,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *RegistrationService) Register(ctx context.Context, in domain.RegisterInput) (*domain.Registration, error) {
	if err := domain.ValidateParticipantDetails(in.Details); err != nil {
		return nil, err
	}

	event, err := s.eventRepo.GetByID(ctx, in.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	if err = domain.IsRegistrationOpen(event, s.now()); err != nil {
		return nil, err
	}

	now := s.now()
	reg := &domain.Registration{
		ID:            uuid.New().String(),
		EventID:       in.EventID,
		UserID:        in.UserID,
		Details:       in.Details,
		Status:        domain.RegistrationStatusPending,
		Payment:       domain.PaymentStatusPending,
		PaymentAmount: event.Price,
		RegisteredAt:  now,
		WaiverSigned:  in.WaiverSigned,
		UpdatedAt:     now,
	}

	// Insert and counter increment are one transaction in the repository; the
	// conditional increment settles any race the open-check above lost.
	if err = s.regRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", in.EventID),
		logger.String("user_id", in.UserID),
	)

	go s.notifyRegistration(context.WithoutCancel(ctx), reg, event)

	return reg, nil
}

func (s *RegistrationService) Get(ctx context.Context, id, requesterID string, isAdmin bool) (*domain.Registration, error) {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !isAdmin && reg.UserID != requesterID {
		return nil, domain.ErrForbidden
	}

	return reg, nil
}

// List scopes non-admin callers to their own registrations regardless of the
// requested filter.
func (s *RegistrationService) List(ctx context.Context, f domain.RegistrationFilter, requesterID string, isAdmin bool) ([]*domain.Registration, error) {
	if !isAdmin {
		f.UserID = requesterID
	}

	return s.regRepo.List(ctx, f)
}

// ChangeStatus applies an admin-driven transition of the registration state
// machine. Leaving the confirmed state returns the participant slot.
func (s *RegistrationService) ChangeStatus(ctx context.Context, id string, to domain.RegistrationStatus) (*domain.Registration, error) {
	if !to.Valid() {
		v := &domain.ValidationError{}
		v.Add("status", "must be one of pending, confirmed, cancelled, completed")
		return nil, v
	}

	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.CanTransitionRegistration(reg.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", domain.ErrIllegalTransition, reg.Status, to)
	}

	freeSeat := domain.FreesSeat(reg.Status, to)
	if err = s.regRepo.UpdateStatus(ctx, reg, to, freeSeat); err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("registration status changed",
		logger.String("registration_id", reg.ID),
		logger.String("from", string(reg.Status)),
		logger.String("to", string(to)),
	)

	reg.Status = to
	return reg, nil
}

// Cancel is available to the registration's own user and to admins, inside
// the whole-day notice window.
func (s *RegistrationService) Cancel(ctx context.Context, id, requesterID string, isAdmin bool) error {
	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !isAdmin && reg.UserID != requesterID {
		return domain.ErrForbidden
	}

	if !domain.CanTransitionRegistration(reg.Status, domain.RegistrationStatusCancelled) {
		return fmt.Errorf("%w: %s -> cancelled", domain.ErrIllegalTransition, reg.Status)
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return fmt.Errorf("check event: %w", err)
	}

	if !domain.IsCancellationAllowed(event.Date, s.now()) {
		return domain.ErrCancellationWindow
	}

	// Only confirmed registrations hold a counted seat to give back; the
	// prior status is checked before the write, not after.
	freeSeat := reg.Status == domain.RegistrationStatusConfirmed
	if err = s.regRepo.UpdateStatus(ctx, reg, domain.RegistrationStatusCancelled, freeSeat); err != nil {
		return fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", reg.EventID),
		logger.String("requested_by", requesterID),
	)

	return nil
}

// UpdatePayment stamps payment_date only on the transition to paid.
func (s *RegistrationService) UpdatePayment(ctx context.Context, id string, to domain.PaymentStatus) (*domain.Registration, error) {
	if !to.Valid() {
		v := &domain.ValidationError{}
		v.Add("payment_status", "must be one of pending, paid, refunded")
		return nil, v
	}

	reg, err := s.regRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var paymentDate *time.Time
	if to == domain.PaymentStatusPaid {
		now := s.now()
		paymentDate = &now
	}

	if err = s.regRepo.UpdatePayment(ctx, id, to, paymentDate); err != nil {
		return nil, fmt.Errorf("update payment: %w", err)
	}

	reg.Payment = to
	if paymentDate != nil {
		reg.PaymentDate = paymentDate
	}

	return reg, nil
}

func (s *RegistrationService) notifyRegistration(ctx context.Context, reg *domain.Registration, event *domain.Event) {
	if err := s.notifier.NotifyRegistration(ctx, reg, event); err != nil {
		s.logger.Error("registration notification failed",
			logger.String("registration_id", reg.ID),
			logger.String("error", err.Error()),
		)
	}
}
