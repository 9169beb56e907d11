package scheduler

import (
	"context"
	"time"

	"github.com/trailcrew/offroad-backend/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventCompleter interface {
	CompletePastEvents(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically sweeps active events whose date has passed and marks
// them completed.
type Scheduler struct {
	eventService eventCompleter
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventCompleter,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	completed, err := s.eventService.CompletePastEvents(ctx)
	if err != nil {
		s.logger.Error("failed to complete past events",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range completed {
		s.logger.Info("event completed",
			logger.String("event_id", e.ID),
			logger.String("title", e.Title),
			logger.String("date", e.Date.Format(time.RFC3339)),
		)
	}
}
