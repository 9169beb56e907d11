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

type EventService struct {
	repo   ports.EventRepo
	logger logger.Logger
	now    func() time.Time
}

func NewEventService(repo ports.EventRepo, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *EventService) Create(ctx context.Context, in domain.CreateEventInput, createdBy string) (*domain.Event, error) {
	if in.Status == "" {
		in.Status = domain.EventStatusDraft
	}
	if err := domain.ValidateNewEvent(in, s.now()); err != nil {
		return nil, err
	}

	event := &domain.Event{
		ID:                   uuid.New().String(),
		Title:                in.Title,
		Description:          in.Description,
		ShortDescription:     in.ShortDescription,
		Date:                 in.Date,
		Location:             in.Location,
		Price:                in.Price,
		MaxParticipants:      in.MaxParticipants,
		Difficulty:           in.Difficulty,
		Duration:             in.Duration,
		Images:               in.Images,
		Equipment:            in.Equipment,
		Requirements:         in.Requirements,
		Includes:             in.Includes,
		Status:               in.Status,
		RegistrationDeadline: in.RegistrationDeadline,
		CreatedBy:            createdBy,
		Tags:                 in.Tags,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
		logger.String("created_by", createdBy),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context, f domain.EventFilter) ([]*domain.Event, error) {
	return s.repo.List(ctx, f)
}

// Update applies partial field edits, re-validating the date ordering
// whenever the event date or the registration deadline change.
func (s *EventService) Update(ctx context.Context, id string, in domain.UpdateEventInput) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	timingChanged := false
	if in.Title != nil {
		event.Title = *in.Title
	}
	if in.Description != nil {
		event.Description = *in.Description
	}
	if in.ShortDescription != nil {
		event.ShortDescription = *in.ShortDescription
	}
	if in.Date != nil {
		event.Date = *in.Date
		timingChanged = true
	}
	if in.RegistrationDeadline != nil {
		event.RegistrationDeadline = *in.RegistrationDeadline
		timingChanged = true
	}
	if in.Location != nil {
		event.Location = *in.Location
	}
	if in.Price != nil {
		event.Price = *in.Price
	}
	if in.MaxParticipants != nil {
		event.MaxParticipants = *in.MaxParticipants
	}
	if in.Difficulty != nil {
		event.Difficulty = *in.Difficulty
	}
	if in.Duration != nil {
		event.Duration = *in.Duration
	}
	if in.Images != nil {
		event.Images = in.Images
	}
	if in.Equipment != nil {
		event.Equipment = in.Equipment
	}
	if in.Requirements != nil {
		event.Requirements = in.Requirements
	}
	if in.Includes != nil {
		event.Includes = in.Includes
	}
	if in.Tags != nil {
		event.Tags = in.Tags
	}

	var v domain.ValidationError
	if timingChanged {
		if err := domain.ValidateEventTiming(event.Date, event.RegistrationDeadline, s.now()); err != nil {
			return nil, err
		}
	}
	if in.Price != nil && event.Price < 0 {
		v.Add("price", "must not be negative")
	}
	if in.MaxParticipants != nil && event.MaxParticipants < 1 {
		v.Add("max_participants", "must be at least 1")
	}
	if in.Difficulty != nil && !event.Difficulty.Valid() {
		v.Add("difficulty", "must be one of beginner, intermediate, advanced, expert")
	}
	if in.Images != nil && domain.PrimaryImageCount(event.Images) > 1 {
		v.Add("images", "at most one image may be primary")
	}
	if err := v.AsError(); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) ChangeStatus(ctx context.Context, id string, status domain.EventStatus) (*domain.Event, error) {
	if !status.Valid() {
		v := &domain.ValidationError{}
		v.Add("status", "must be one of draft, active, cancelled, completed")
		return nil, v
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("update event status: %w", err)
	}

	s.logger.Info("event status changed",
		logger.String("event_id", id),
		logger.String("from", string(event.Status)),
		logger.String("to", string(status)),
	)

	event.Status = status
	return event, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("event deleted", logger.String("event_id", id))
	return nil
}

// CompletePastEvents is invoked by the scheduler.
func (s *EventService) CompletePastEvents(ctx context.Context) ([]*domain.Event, error) {
	completed, err := s.repo.CompletePast(ctx)
	if err != nil {
		return nil, fmt.Errorf("complete past events: %w", err)
	}

	return completed, nil
}
